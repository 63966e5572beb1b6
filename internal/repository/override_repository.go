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

// OverrideRepository handles working-day override rows:
// date,weekdayLabel. An override declares a weekend date instructional
// under the given timetable label.
type OverrideRepository struct {
	file *store.File
	log  zerolog.Logger
}

// NewOverrideRepository creates a new OverrideRepository over a data directory.
func NewOverrideRepository(dataDir string, log zerolog.Logger) *OverrideRepository {
	return &OverrideRepository{
		file: store.NewFile(dataDir, store.WorkingDaysFile),
		log:  log.With().Str("store", store.WorkingDaysFile).Logger(),
	}
}

// ListAll returns every parseable override in file order.
func (r *OverrideRepository) ListAll(ctx context.Context) ([]model.WorkingDayOverride, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, err
	}

	var overrides []model.WorkingDayOverride
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			r.log.Debug().Str("line", line).Msg("skipping malformed working-day row")
			continue
		}
		date, err := time.Parse(model.DateOnly, strings.TrimSpace(parts[0]))
		if err != nil {
			r.log.Debug().Str("line", line).Msg("skipping working-day row with unparseable date")
			continue
		}
		label, ok := model.ParseDayLabel(parts[1])
		if !ok {
			r.log.Debug().Str("line", line).Msg("skipping working-day row with unknown label")
			continue
		}
		overrides = append(overrides, model.WorkingDayOverride{Date: date, Label: label})
	}
	return overrides, nil
}

// GetByDate returns the override for an exact date, or nil when the date
// has none.
func (r *OverrideRepository) GetByDate(ctx context.Context, date time.Time) (*model.WorkingDayOverride, error) {
	overrides, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	key := date.Format(model.DateOnly)
	for i := range overrides {
		if overrides[i].Date.Format(model.DateOnly) == key {
			return &overrides[i], nil
		}
	}
	return nil, nil
}

// Append adds an override row to the store.
func (r *OverrideRepository) Append(ctx context.Context, o model.WorkingDayOverride) error {
	return r.file.Append(fmt.Sprintf("%s,%s", o.Date.Format(model.DateOnly), o.Label))
}
