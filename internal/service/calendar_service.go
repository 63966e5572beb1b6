package service

import (
	"context"
	"time"

	"github.com/attendease/attendease/internal/model"
)

// CalendarService decides which calendar dates are instructional and
// which timetable label to honor on each date.
//
// The rule is deliberately asymmetric: a holiday entry only suppresses
// instruction on weekdays, and a weekend date is instructional only when
// an explicit working-day override exists for it — an override is never
// suppressed by a holiday on the same date.
type CalendarService struct {
	holidays  HolidayStore
	overrides OverrideStore
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(holidays HolidayStore, overrides OverrideStore) *CalendarService {
	return &CalendarService{holidays: holidays, overrides: overrides}
}

// Calendar is an in-memory view of the holiday and override stores,
// loaded fresh for one query.
type Calendar struct {
	holidayDates  map[string]struct{}
	overrideByDay map[string]model.DayLabel
}

// Load reads both stores and returns a resolvable calendar view.
func (s *CalendarService) Load(ctx context.Context) (*Calendar, error) {
	holidays, err := s.holidays.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	overrides, err := s.overrides.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	cal := &Calendar{
		holidayDates:  make(map[string]struct{}, len(holidays)),
		overrideByDay: make(map[string]model.DayLabel, len(overrides)),
	}
	for _, h := range holidays {
		cal.holidayDates[h.Date.Format(model.DateOnly)] = struct{}{}
	}
	for _, o := range overrides {
		cal.overrideByDay[o.Date.Format(model.DateOnly)] = o.Label
	}
	return cal, nil
}

// Resolve returns the effective day label for a date and whether the
// date is instructional.
//
// A weekend date with an override is instructional under the override's
// label, even when that label has no timetable rows — zero classes on an
// instructional day is a valid outcome, not an error.
func (c *Calendar) Resolve(date time.Time) (model.DayLabel, bool) {
	key := date.Format(model.DateOnly)

	if model.IsWeekend(date) {
		if label, ok := c.overrideByDay[key]; ok {
			return label, true
		}
		return model.LabelFor(date), false
	}

	if _, ok := c.holidayDates[key]; ok {
		return model.LabelFor(date), false
	}
	return model.LabelFor(date), true
}

// IsInstructionalDay reports whether attendance is expected to be
// recordable on a date.
func (s *CalendarService) IsInstructionalDay(ctx context.Context, date time.Time) (bool, error) {
	cal, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	_, instructional := cal.Resolve(date)
	return instructional, nil
}

// WeekdayLabelFor returns the label used for timetable lookups on a
// date: the natural weekday unless a working-day override substitutes
// another label.
func (s *CalendarService) WeekdayLabelFor(ctx context.Context, date time.Time) (model.DayLabel, error) {
	cal, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	label, _ := cal.Resolve(date)
	return label, nil
}
