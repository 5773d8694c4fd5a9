package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(time.July, 2025))
	assert.Equal(t, 30, DaysInMonth(time.June, 2026))
	assert.Equal(t, 28, DaysInMonth(time.February, 2026))
	assert.Equal(t, 29, DaysInMonth(time.February, 2028))
}

func TestRuleProvider_FixedDates(t *testing.T) {
	provider, err := NewRuleProvider(nil, []string{"2026-06-10"}, nil)
	require.NoError(t, err)

	assert.True(t, provider.IsHoliday(time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, provider.IsHoliday(time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC)))
}

func TestRuleProvider_YearlyRule(t *testing.T) {
	provider, err := NewRuleProvider(
		[]string{"DTSTART=20200101T000000Z;FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"},
		nil, nil)
	require.NoError(t, err)

	assert.True(t, provider.IsHoliday(time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)))
	assert.True(t, provider.IsHoliday(time.Date(2027, time.December, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, provider.IsHoliday(time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC)))
}

func TestRuleProvider_RejectsMalformedInput(t *testing.T) {
	_, err := NewRuleProvider([]string{"FREQ=NEVERISH"}, nil, nil)
	assert.Error(t, err)

	_, err = NewRuleProvider(nil, []string{"10.06.2026"}, nil)
	assert.Error(t, err)
}

func TestRuleProvider_MonthInfo(t *testing.T) {
	// June 2026 has 22 weekdays; the fixed holiday on Wednesday the 10th
	// takes one working day away.
	provider, err := NewRuleProvider(nil, []string{"2026-06-10"}, nil)
	require.NoError(t, err)

	info, err := provider.MonthInfo(time.June, 2026)
	require.NoError(t, err)

	assert.Equal(t, 21, info.WorkingDays)
	assert.Equal(t, 168, info.WorkingHours)
	assert.Equal(t, []int{10}, info.Holidays)
}

func TestStaticProvider(t *testing.T) {
	provider := NewStaticProvider(nil)
	provider.SetHolidays(time.July, 2025, []int{8})

	assert.True(t, provider.IsHoliday(time.Date(2025, time.July, 8, 0, 0, 0, 0, time.UTC)))
	assert.False(t, provider.IsHoliday(time.Date(2025, time.August, 8, 0, 0, 0, 0, time.UTC)))

	info, err := provider.MonthInfo(time.July, 2025)
	require.NoError(t, err)
	assert.Equal(t, 22, info.WorkingDays, "23 weekdays minus the Tuesday holiday")
	assert.Equal(t, []int{8}, info.Holidays)
}
