package roster

import (
	"sort"

	"github.com/grafikbg/grafik/pkg/core/model"
)

// BalancerState holds the per-run rotation counters of the shift balancer,
// keyed by position. The day offset decides which shifts absorb the
// remainder when headcount doesn't divide evenly, and advances once per
// processed day so the extra load rotates across shifts over the month.
type BalancerState struct {
	dayOffsets map[string]int
}

// NewBalancerState creates fresh balancer state for one generation run
func NewBalancerState() *BalancerState {
	return &BalancerState{dayOffsets: make(map[string]int)}
}

// AdvanceDay moves the remainder rotation forward for a position.
// The generator calls this once per processed open day.
func (b *BalancerState) AdvanceDay(positionID string) {
	b.dayOffsets[positionID]++
}

// AssignShifts distributes the employees confirmed to work a position on one
// day across the shift catalogue as evenly as possible.
//
// Every shift receives floor(employees/shifts) workers; the remainder goes to
// shifts picked by the rotating day offset. The employee order is rotated by
// the day-number before pairing with slots, so who gets which shift - and who
// absorbs the extra slot - spreads across the roster over the month.
//
// Returns an empty assignment when there are no shifts or no employees; the
// generator then falls back to contract-hours accounting.
func (b *BalancerState) AssignShifts(positionID string, day int, employees []model.Employee, shifts []model.Shift) map[string]*model.Shift {
	assignments := make(map[string]*model.Shift)

	if len(shifts) == 0 || len(employees) == 0 {
		return assignments
	}

	base := len(employees) / len(shifts)
	remainder := len(employees) % len(shifts)
	dayOffset := b.dayOffsets[positionID]

	// Build the slot list: base copies of every shift, plus the rotated
	// remainder slots.
	slots := make([]*model.Shift, 0, len(employees))
	for i := range shifts {
		for j := 0; j < base; j++ {
			slots = append(slots, &shifts[i])
		}
	}
	for i := 0; i < remainder; i++ {
		slots = append(slots, &shifts[(i+dayOffset)%len(shifts)])
	}

	// Stable identity order, then rotate by the day so the same employee
	// doesn't land on the same slot every day.
	ordered := make([]model.Employee, len(employees))
	copy(ordered, employees)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	rotation := (day - 1) % len(ordered)
	rotated := append(ordered[rotation:], ordered[:rotation]...)

	// base*len(shifts)+remainder == len(employees), so slots and rotated
	// always pair one to one
	for i, emp := range rotated {
		assignments[emp.ID] = slots[i]
	}

	return assignments
}
