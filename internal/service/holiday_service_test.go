package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendease/attendease/internal/model"
)

func TestDeclareHoliday(t *testing.T) {
	env := newTestEnv(t)

	h, err := env.holidays.Declare(context.Background(), model.DeclareHolidayRequest{
		Name: "Founders Day",
		Date: "2024-01-08",
	})
	require.NoError(t, err)
	assert.Equal(t, "Founders Day", h.Name)
	assert.Equal(t, "Founders Day,2024-01-08\n", env.read("holidays.txt"))
}

func TestDeclareHolidayRejectsSecondHolidayOnSameDate(t *testing.T) {
	env := newTestEnv(t)
	env.seed("holidays.txt", "Founders Day,2024-01-08")

	_, err := env.holidays.Declare(context.Background(), model.DeclareHolidayRequest{
		Name: "Sports Day",
		Date: "2024-01-08",
	})
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Founders Day,2024-01-08\n", env.read("holidays.txt"))
}

func TestDeclareHolidayRejectsDelimitersInName(t *testing.T) {
	env := newTestEnv(t)

	// A comma in the name would split into an extra column on read.
	_, err := env.holidays.Declare(context.Background(), model.DeclareHolidayRequest{
		Name: "New Year, Eve",
		Date: "2024-12-31",
	})
	assert.True(t, IsValidation(err))
	assert.Empty(t, env.read("holidays.txt"))
}

func TestDeclareHolidayRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.holidays.Declare(context.Background(), model.DeclareHolidayRequest{
		Name: "Founders Day",
		Date: "08/01/2024",
	})
	assert.True(t, IsValidation(err))
	assert.Empty(t, env.read("holidays.txt"))
}

func TestRevokeHolidayRewritesStore(t *testing.T) {
	env := newTestEnv(t)
	env.seed("holidays.txt",
		"Founders Day,2024-01-08",
		"Sports Day,2024-02-12",
	)

	err := env.holidays.Revoke(context.Background(), "founders day", "2024-01-08")
	require.NoError(t, err)
	assert.Equal(t, "Sports Day,2024-02-12\n", env.read("holidays.txt"))
}

func TestRevokeHolidayWithNoMatchLeavesStoreAlone(t *testing.T) {
	env := newTestEnv(t)
	env.seed("holidays.txt", "Founders Day,2024-01-08")

	err := env.holidays.Revoke(context.Background(), "Sports Day", "2024-01-08")
	require.NoError(t, err)
	assert.Equal(t, "Founders Day,2024-01-08\n", env.read("holidays.txt"))
}

func TestDeclareWorkingDay(t *testing.T) {
	env := newTestEnv(t)

	err := env.holidays.DeclareWorkingDay(context.Background(), "2024-01-06", "mon")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-06,MON\n", env.read("working_days.txt"))
}

func TestDeclareWorkingDayRejectsWeekdays(t *testing.T) {
	env := newTestEnv(t)

	err := env.holidays.DeclareWorkingDay(context.Background(), "2024-01-08", "TUE")
	assert.True(t, IsValidation(err))
	assert.Empty(t, env.read("working_days.txt"))
}

func TestDeclareWorkingDayRejectsDuplicateDate(t *testing.T) {
	env := newTestEnv(t)
	env.seed("working_days.txt", "2024-01-06,MON")

	err := env.holidays.DeclareWorkingDay(context.Background(), "2024-01-06", "TUE")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "2024-01-06,MON\n", env.read("working_days.txt"))
}
