package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFor(t *testing.T) {
	d, err := time.Parse(DateOnly, "2024-01-08")
	require.NoError(t, err)
	assert.Equal(t, Monday, LabelFor(d))
	assert.Equal(t, Sunday, LabelFor(d.AddDate(0, 0, 6)))
}

func TestParseDayLabel(t *testing.T) {
	label, ok := ParseDayLabel(" tue ")
	assert.True(t, ok)
	assert.Equal(t, Tuesday, label)

	_, ok = ParseDayLabel("TUESDAY")
	assert.False(t, ok)
}

func TestCourseName(t *testing.T) {
	assert.Equal(t, "OOP", CourseName("A"))
	assert.Equal(t, "Ecology", CourseName("F"))
	// Codes outside the table display as themselves.
	assert.Equal(t, "Z", CourseName("Z"))
}

func TestTimeOfDayOf(t *testing.T) {
	now, err := time.Parse("2006-01-02 15:04:05", "2024-01-08 09:30:59")
	require.NoError(t, err)

	tod := TimeOfDayOf(now)
	slot, err := time.Parse(TimeOfDay, "09:30")
	require.NoError(t, err)
	assert.True(t, tod.Equal(slot))
}

func TestAttendanceKey(t *testing.T) {
	d, err := time.Parse(DateOnly, "2024-01-08")
	require.NoError(t, err)
	assert.Equal(t, "alice|2024-01-08|A", AttendanceKey("alice", d, "A"))
}
