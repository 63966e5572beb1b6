package service

import (
	"context"
	"time"

	"github.com/attendease/attendease/internal/model"
)

// The engine depends on narrow store interfaces rather than concrete
// repositories, so the flat-file backing can be swapped for an indexed
// store without touching computation logic. The repository package
// satisfies all of them.

// StudentStore reads and appends student enrollment rows.
type StudentStore interface {
	ListAll(ctx context.Context) ([]model.Student, error)
	GetByUsername(ctx context.Context, username string) (*model.Student, error)
	Append(ctx context.Context, s model.Student) error
}

// ProfessorStore reads and appends professor assignment rows.
type ProfessorStore interface {
	ListAll(ctx context.Context) ([]model.Professor, error)
	GetByUsername(ctx context.Context, username string) (*model.Professor, error)
	Append(ctx context.Context, p model.Professor) error
}

// AdminStore reads and appends administrator rows.
type AdminStore interface {
	ListAll(ctx context.Context) ([]model.Admin, error)
	Append(ctx context.Context, a model.Admin) error
}

// UserStore reads and appends rows of the combined users store.
type UserStore interface {
	ListAll(ctx context.Context) ([]model.UserAccount, error)
	Append(ctx context.Context, a model.UserAccount) error
}

// TimetableStore reads timetable slot rows.
type TimetableStore interface {
	ListAll(ctx context.Context) ([]model.TimetableSlot, error)
}

// HolidayStore reads, appends, and rewrites holiday rows.
type HolidayStore interface {
	ListAll(ctx context.Context) ([]model.Holiday, error)
	Append(ctx context.Context, h model.Holiday) error
	RewriteAll(ctx context.Context, holidays []model.Holiday) error
}

// OverrideStore reads and appends working-day override rows.
type OverrideStore interface {
	ListAll(ctx context.Context) ([]model.WorkingDayOverride, error)
	GetByDate(ctx context.Context, date time.Time) (*model.WorkingDayOverride, error)
	Append(ctx context.Context, o model.WorkingDayOverride) error
}

// AttendanceStore reads and appends attendance ledger entries.
type AttendanceStore interface {
	ListAll(ctx context.Context) ([]model.AttendanceRecord, error)
	ExistingKeys(ctx context.Context) (map[string]struct{}, error)
	Append(ctx context.Context, records ...model.AttendanceRecord) error
}
