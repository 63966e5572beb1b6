package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendease/attendease/internal/model"
)

func date(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateOnly, iso)
	require.NoError(t, err)
	return d
}

func TestCalendarWeekdayWithHolidayIsNotInstructional(t *testing.T) {
	env := newTestEnv(t)
	env.seed("holidays.txt", "Republic Day,2024-01-26") // a Friday

	ok, err := env.calendar.IsInstructionalDay(context.Background(), date(t, "2024-01-26"))
	require.NoError(t, err)
	assert.False(t, ok)

	// The label stays the natural weekday even on a holiday.
	label, err := env.calendar.WeekdayLabelFor(context.Background(), date(t, "2024-01-26"))
	require.NoError(t, err)
	assert.Equal(t, model.Friday, label)
}

func TestCalendarPlainWeekdayIsInstructional(t *testing.T) {
	env := newTestEnv(t)

	ok, err := env.calendar.IsInstructionalDay(context.Background(), date(t, "2024-01-08")) // a Monday
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCalendarWeekendWithoutOverrideIsNotInstructional(t *testing.T) {
	env := newTestEnv(t)

	ok, err := env.calendar.IsInstructionalDay(context.Background(), date(t, "2024-01-06")) // a Saturday
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCalendarWeekendOverrideUsesOverrideLabel(t *testing.T) {
	env := newTestEnv(t)
	env.seed("working_days.txt", "2024-01-06,MON")

	ok, err := env.calendar.IsInstructionalDay(context.Background(), date(t, "2024-01-06"))
	require.NoError(t, err)
	assert.True(t, ok)

	label, err := env.calendar.WeekdayLabelFor(context.Background(), date(t, "2024-01-06"))
	require.NoError(t, err)
	assert.Equal(t, model.Monday, label)
}

func TestCalendarHolidayNeverSuppressesWeekendOverride(t *testing.T) {
	env := newTestEnv(t)
	env.seed("holidays.txt", "Makeup Holiday,2024-01-06")
	env.seed("working_days.txt", "2024-01-06,TUE")

	// Weekend dates are not checked against the holiday list.
	ok, err := env.calendar.IsInstructionalDay(context.Background(), date(t, "2024-01-06"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCalendarAcceptsLegacyDateOnlyHolidayRows(t *testing.T) {
	env := newTestEnv(t)
	env.seed("holidays.txt", "2024-01-08")

	ok, err := env.calendar.IsInstructionalDay(context.Background(), date(t, "2024-01-08"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCalendarSkipsMalformedHolidayRows(t *testing.T) {
	env := newTestEnv(t)
	env.seed("holidays.txt",
		"not-a-date",
		"Sports Day,08-01-2024",
		"Founders Day,2024-01-08",
	)

	ok, err := env.calendar.IsInstructionalDay(context.Background(), date(t, "2024-01-08"))
	require.NoError(t, err)
	assert.False(t, ok)
}
