package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendease/attendease/internal/model"
)

func TestSlotsForOrdersByTimeKeepingTies(t *testing.T) {
	env := newTestEnv(t)
	env.seed("timetable.txt",
		"MON,11:00,C,103",
		"MON,09:00,A,101",
		"TUE,08:00,F,301",
		"MON,09:00,B,102", // same time as A: store order is the tie-break
	)

	slots, err := env.timetable.SlotsFor(context.Background(), model.Monday)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, model.CourseCode("A"), slots[0].Course)
	assert.Equal(t, model.CourseCode("B"), slots[1].Course)
	assert.Equal(t, model.CourseCode("C"), slots[2].Course)
}

func TestSlotsForUnknownLabelIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.seed("timetable.txt", "MON,09:00,A,101")

	slots, err := env.timetable.SlotsFor(context.Background(), model.Sunday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestNextSlotAtOrAfter(t *testing.T) {
	env := newTestEnv(t)
	env.seed("timetable.txt",
		"MON,09:00,A,101",
		"MON,10:00,B,102",
	)
	ctx := context.Background()

	// Between slots: the later one is next.
	next, err := env.timetable.NextSlotAtOrAfter(ctx, model.Monday, at(t, "2024-01-08 09:30"))
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, model.CourseCode("B"), next.Course)

	// Exactly at a slot's start: that slot still counts.
	next, err = env.timetable.NextSlotAtOrAfter(ctx, model.Monday, at(t, "2024-01-08 09:00"))
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, model.CourseCode("A"), next.Course)

	// Past every slot: none remain.
	next, err = env.timetable.NextSlotAtOrAfter(ctx, model.Monday, at(t, "2024-01-08 10:01"))
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestWeekGrid(t *testing.T) {
	env := newTestEnv(t)
	env.seed("timetable.txt",
		"MON,09:00,A,101",
		"TUE,10:00,B,202",
		"MON,13:00,C,103", // outside the displayed times: not placed
	)

	days := []model.DayLabel{model.Monday, model.Tuesday}
	times := []string{"09:00", "10:00"}
	grid, err := env.timetable.WeekGrid(context.Background(), days, times)
	require.NoError(t, err)

	assert.Equal(t, "A (101)", grid[model.Monday]["09:00"])
	assert.Equal(t, FreeSlot, grid[model.Monday]["10:00"])
	assert.Equal(t, FreeSlot, grid[model.Tuesday]["09:00"])
	assert.Equal(t, "B (202)", grid[model.Tuesday]["10:00"])
}

func TestTimetableSkipsMalformedRows(t *testing.T) {
	env := newTestEnv(t)
	env.seed("timetable.txt",
		"MON,09:00,A,101",
		"MONDAY-ish,09:00,A,101",
		"MON,9am,A,101",
		"MON,10:00,B",
	)

	slots, err := env.timetable.SlotsFor(context.Background(), model.Monday)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, model.CourseCode("A"), slots[0].Course)
}
