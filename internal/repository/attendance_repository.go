package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/store"
)

// AttendanceRepository handles the pipe-delimited attendance ledger:
// studentId|date|courseCode|presentFlag. The ledger is append-only;
// rows are never updated or removed.
type AttendanceRepository struct {
	file *store.File
	log  zerolog.Logger
}

// NewAttendanceRepository creates a new AttendanceRepository over a data directory.
func NewAttendanceRepository(dataDir string, log zerolog.Logger) *AttendanceRepository {
	return &AttendanceRepository{
		file: store.NewFile(dataDir, store.AttendanceFile),
		log:  log.With().Str("store", store.AttendanceFile).Logger(),
	}
}

// ListAll returns every parseable ledger entry in file order.
func (r *AttendanceRepository) ListAll(ctx context.Context) ([]model.AttendanceRecord, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, err
	}

	var records []model.AttendanceRecord
	for _, line := range lines {
		rec, ok := parseAttendance(line)
		if !ok {
			r.log.Debug().Str("line", line).Msg("skipping malformed attendance row")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// ExistingKeys returns the set of (student, date, course) identities
// already present in the ledger.
func (r *AttendanceRepository) ExistingKeys(ctx context.Context) (map[string]struct{}, error) {
	records, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	keys := make(map[string]struct{}, len(records))
	for _, rec := range records {
		keys[rec.Key()] = struct{}{}
	}
	return keys, nil
}

// Append adds ledger entries. Callers are responsible for keeping the
// one-record-per-key invariant; see service.AttendanceService.
func (r *AttendanceRepository) Append(ctx context.Context, records ...model.AttendanceRecord) error {
	lines := make([]string, len(records))
	for i, rec := range records {
		flag := "0"
		if rec.Present {
			flag = "1"
		}
		lines[i] = fmt.Sprintf("%s|%s", rec.Key(), flag)
	}
	return r.file.Append(lines...)
}

func parseAttendance(line string) (model.AttendanceRecord, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != 4 {
		return model.AttendanceRecord{}, false
	}
	date, err := time.Parse(model.DateOnly, strings.TrimSpace(parts[1]))
	if err != nil {
		return model.AttendanceRecord{}, false
	}
	var present bool
	switch strings.TrimSpace(parts[3]) {
	case "1":
		present = true
	case "0":
		present = false
	default:
		return model.AttendanceRecord{}, false
	}
	return model.AttendanceRecord{
		StudentID: strings.TrimSpace(parts[0]),
		Date:      date,
		Course:    model.CourseCode(strings.ToUpper(strings.TrimSpace(parts[2]))),
		Present:   present,
	}, true
}
