package service

import (
	"context"
	"strings"
	"time"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/validator"
)

// HolidayService owns the admin calendar writes: declaring and revoking
// holidays and declaring weekend working days.
type HolidayService struct {
	holidays  HolidayStore
	overrides OverrideStore
	validate  *validator.Validator
}

// NewHolidayService creates a new HolidayService.
func NewHolidayService(holidays HolidayStore, overrides OverrideStore, validate *validator.Validator) *HolidayService {
	return &HolidayService{holidays: holidays, overrides: overrides, validate: validate}
}

// List returns every declared holiday in store order.
func (s *HolidayService) List(ctx context.Context) ([]model.Holiday, error) {
	return s.holidays.ListAll(ctx)
}

// Declare records a new holiday. A date may carry at most one holiday;
// declaring a second one for the same date is rejected before any write.
func (s *HolidayService) Declare(ctx context.Context, req model.DeclareHolidayRequest) (model.Holiday, error) {
	if fields := s.validate.Check(req); fields != nil {
		return model.Holiday{}, &ValidationError{Fields: fields}
	}
	date, err := time.Parse(model.DateOnly, req.Date)
	if err != nil {
		return model.Holiday{}, NewValidationError("Date", "date must be in yyyy-MM-dd form")
	}

	existing, err := s.holidays.ListAll(ctx)
	if err != nil {
		return model.Holiday{}, err
	}
	for _, h := range existing {
		if h.Date.Equal(date) {
			return model.Holiday{}, NewValidationError("Date", "a holiday is already declared for "+req.Date)
		}
	}

	holiday := model.Holiday{Name: strings.TrimSpace(req.Name), Date: date}
	if err := s.holidays.Append(ctx, holiday); err != nil {
		return model.Holiday{}, err
	}
	return holiday, nil
}

// Revoke removes the holiday matching name and date, rewriting the
// whole store in one swap. Unmatched revocations leave the store as is.
func (s *HolidayService) Revoke(ctx context.Context, name, dateStr string) error {
	date, err := time.Parse(model.DateOnly, dateStr)
	if err != nil {
		return NewValidationError("Date", "date must be in yyyy-MM-dd form")
	}

	existing, err := s.holidays.ListAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Holiday, 0, len(existing))
	for _, h := range existing {
		if h.Date.Equal(date) && strings.EqualFold(h.Name, strings.TrimSpace(name)) {
			continue
		}
		kept = append(kept, h)
	}
	if len(kept) == len(existing) {
		return nil
	}
	return s.holidays.RewriteAll(ctx, kept)
}

// DeclareWorkingDay marks a weekend date as instructional under the
// given timetable label. Weekday dates and already-overridden dates are
// rejected before any write.
func (s *HolidayService) DeclareWorkingDay(ctx context.Context, dateStr string, rawLabel string) error {
	date, err := time.Parse(model.DateOnly, dateStr)
	if err != nil {
		return NewValidationError("Date", "date must be in yyyy-MM-dd form")
	}
	label, ok := model.ParseDayLabel(rawLabel)
	if !ok {
		return NewValidationError("Label", "label must be one of MON..SUN")
	}
	if !model.IsWeekend(date) {
		return NewValidationError("Date", "working-day overrides apply to weekend dates only")
	}

	existing, err := s.overrides.GetByDate(ctx, date)
	if err != nil {
		return err
	}
	if existing != nil {
		return NewValidationError("Date", "a working-day override already exists for "+dateStr)
	}

	return s.overrides.Append(ctx, model.WorkingDayOverride{Date: date, Label: label})
}
