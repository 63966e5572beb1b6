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

// HolidayRepository handles holiday rows. The current format is
// name,date; a legacy single-column variant carrying only the date is
// still accepted on read and yields a holiday with an empty name.
type HolidayRepository struct {
	file *store.File
	log  zerolog.Logger
}

// NewHolidayRepository creates a new HolidayRepository over a data directory.
func NewHolidayRepository(dataDir string, log zerolog.Logger) *HolidayRepository {
	return &HolidayRepository{
		file: store.NewFile(dataDir, store.HolidaysFile),
		log:  log.With().Str("store", store.HolidaysFile).Logger(),
	}
}

// ListAll returns every parseable holiday in file order.
func (r *HolidayRepository) ListAll(ctx context.Context) ([]model.Holiday, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, err
	}

	var holidays []model.Holiday
	for _, line := range lines {
		h, ok := parseHoliday(line)
		if !ok {
			r.log.Debug().Str("line", line).Msg("skipping malformed holiday row")
			continue
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}

// Append adds a holiday row in name,date form.
func (r *HolidayRepository) Append(ctx context.Context, h model.Holiday) error {
	return r.file.Append(fmt.Sprintf("%s,%s", h.Name, h.Date.Format(model.DateOnly)))
}

// RewriteAll replaces the whole store with the given holidays, all in
// name,date form. Used by the revoke flow.
func (r *HolidayRepository) RewriteAll(ctx context.Context, holidays []model.Holiday) error {
	lines := make([]string, len(holidays))
	for i, h := range holidays {
		lines[i] = fmt.Sprintf("%s,%s", h.Name, h.Date.Format(model.DateOnly))
	}
	return r.file.Rewrite(lines)
}

func parseHoliday(line string) (model.Holiday, bool) {
	parts := strings.Split(line, ",")
	switch {
	case len(parts) >= 2:
		date, err := time.Parse(model.DateOnly, strings.TrimSpace(parts[1]))
		if err != nil {
			return model.Holiday{}, false
		}
		return model.Holiday{Name: strings.TrimSpace(parts[0]), Date: date}, true
	default:
		// Legacy single-column rows carry just the date.
		date, err := time.Parse(model.DateOnly, strings.TrimSpace(parts[0]))
		if err != nil {
			return model.Holiday{}, false
		}
		return model.Holiday{Date: date}, true
	}
}
