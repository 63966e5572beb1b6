package service

import (
	"context"
	"time"

	"github.com/attendease/attendease/internal/model"
)

// AttendanceService owns the append-only attendance ledger. It is the
// only writer; aggregation paths just read.
type AttendanceService struct {
	ledger AttendanceStore
	clock  func() time.Time
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(ledger AttendanceStore) *AttendanceService {
	return &AttendanceService{
		ledger: ledger,
		clock:  time.Now,
	}
}

// Record writes one ledger entry. The call is idempotent on the
// (student, date, course) key: when an entry already exists it is a
// no-op — the later value is dropped, not applied, and no error is
// returned.
func (s *AttendanceService) Record(ctx context.Context, studentID string, date time.Time, course model.CourseCode, present bool) error {
	existing, err := s.ledger.ExistingKeys(ctx)
	if err != nil {
		return err
	}
	rec := model.AttendanceRecord{StudentID: studentID, Date: date, Course: course, Present: present}
	if _, ok := existing[rec.Key()]; ok {
		return nil
	}
	return s.ledger.Append(ctx, rec)
}

// AttendedCount returns how many ledger entries mark the student present
// for the course.
func (s *AttendanceService) AttendedCount(ctx context.Context, studentID string, course model.CourseCode) (int, error) {
	return s.countWhere(ctx, studentID, course, true)
}

// MissedCount returns how many ledger entries mark the student absent
// for the course.
func (s *AttendanceService) MissedCount(ctx context.Context, studentID string, course model.CourseCode) (int, error) {
	return s.countWhere(ctx, studentID, course, false)
}

func (s *AttendanceService) countWhere(ctx context.Context, studentID string, course model.CourseCode, present bool) (int, error) {
	records, err := s.ledger.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, rec := range records {
		if rec.StudentID == studentID && rec.Course == course && rec.Present == present {
			count++
		}
	}
	return count, nil
}

// BulkSubmit records today's attendance for a whole roster: every
// roster member without an entry for (today, course) is written with
// present set by membership in selected. Members already recorded today
// are skipped entirely, selected or not. Returns how many entries were
// written.
func (s *AttendanceService) BulkSubmit(ctx context.Context, course model.CourseCode, roster []string, selected []string) (int, error) {
	today := s.clock()

	existing, err := s.ledger.ExistingKeys(ctx)
	if err != nil {
		return 0, err
	}

	present := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		present[id] = struct{}{}
	}

	var toWrite []model.AttendanceRecord
	for _, studentID := range roster {
		key := model.AttendanceKey(studentID, today, course)
		if _, ok := existing[key]; ok {
			continue
		}
		// Claim the key so a student listed twice in roster still
		// yields a single record.
		existing[key] = struct{}{}
		_, isPresent := present[studentID]
		toWrite = append(toWrite, model.AttendanceRecord{
			StudentID: studentID,
			Date:      today,
			Course:    course,
			Present:   isPresent,
		})
	}

	if len(toWrite) == 0 {
		return 0, nil
	}
	if err := s.ledger.Append(ctx, toWrite...); err != nil {
		return 0, err
	}
	return len(toWrite), nil
}
