package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/repository"
	"github.com/attendease/attendease/internal/validator"
)

// testEnv wires every service over a throwaway data directory.
type testEnv struct {
	t   *testing.T
	dir string

	calendar   *CalendarService
	timetable  *TimetableService
	enrollment *EnrollmentService
	attendance *AttendanceService
	auth       *AuthService
	holidays   *HolidayService

	students   *repository.StudentRepository
	professors *repository.ProfessorRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	log := zerolog.Nop()
	v := validator.New()

	students := repository.NewStudentRepository(dir, log)
	professors := repository.NewProfessorRepository(dir, log)
	admins := repository.NewAdminRepository(dir, log)
	users := repository.NewUserRepository(dir, log)
	timetable := repository.NewTimetableRepository(dir, log)
	holidays := repository.NewHolidayRepository(dir, log)
	overrides := repository.NewOverrideRepository(dir, log)
	attendance := repository.NewAttendanceRepository(dir, log)

	return &testEnv{
		t:          t,
		dir:        dir,
		calendar:   NewCalendarService(holidays, overrides),
		timetable:  NewTimetableService(timetable),
		enrollment: NewEnrollmentService(students, professors, users, v),
		attendance: NewAttendanceService(attendance),
		auth:       NewAuthService(students, professors, admins),
		holidays:   NewHolidayService(holidays, overrides, v),
		students:   students,
		professors: professors,
	}
}

// summaries builds a SummaryService with a fixed semester start and clock.
func (e *testEnv) summaries(semesterStart string, now time.Time) *SummaryService {
	e.t.Helper()
	start, err := time.Parse(model.DateOnly, semesterStart)
	require.NoError(e.t, err)

	s := NewSummaryService(e.calendar, e.timetable, e.enrollment, e.attendance, start)
	s.clock = func() time.Time { return now }
	return s
}

// seed writes raw lines into one of the store files.
func (e *testEnv) seed(name string, lines ...string) {
	e.t.Helper()
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	err := os.WriteFile(filepath.Join(e.dir, name), []byte(content), 0o644)
	require.NoError(e.t, err)
}

// read returns the raw content of one of the store files, "" if absent.
func (e *testEnv) read(name string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, name))
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(e.t, err)
	return string(data)
}

// at parses a test timestamp like "2024-01-08 09:30".
func at(t *testing.T, stamp string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", stamp)
	require.NoError(t, err)
	return ts
}
