package repository

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/store"
)

// TimetableRepository handles slot rows in the timetable store:
// WEEKDAY,HH:MM,courseCode,room.
type TimetableRepository struct {
	file *store.File
	log  zerolog.Logger
}

// NewTimetableRepository creates a new TimetableRepository over a data directory.
func NewTimetableRepository(dataDir string, log zerolog.Logger) *TimetableRepository {
	return &TimetableRepository{
		file: store.NewFile(dataDir, store.TimetableFile),
		log:  log.With().Str("store", store.TimetableFile).Logger(),
	}
}

// ListAll returns every parseable slot in file order. File order is the
// tie-break for slots sharing the same day and time.
func (r *TimetableRepository) ListAll(ctx context.Context) ([]model.TimetableSlot, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, err
	}

	var slots []model.TimetableSlot
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) < 4 {
			r.log.Debug().Str("line", line).Msg("skipping malformed timetable row")
			continue
		}
		day, ok := model.ParseDayLabel(parts[0])
		if !ok {
			r.log.Debug().Str("line", line).Msg("skipping timetable row with unknown day")
			continue
		}
		start, err := time.Parse(model.TimeOfDay, strings.TrimSpace(parts[1]))
		if err != nil {
			r.log.Debug().Str("line", line).Msg("skipping timetable row with unparseable time")
			continue
		}
		slots = append(slots, model.TimetableSlot{
			Day:    day,
			Start:  start,
			Course: model.CourseCode(strings.ToUpper(strings.TrimSpace(parts[2]))),
			Room:   strings.TrimSpace(parts[3]),
		})
	}
	return slots, nil
}
