package service

import (
	"context"
	"sort"
	"time"

	"github.com/attendease/attendease/internal/model"
)

// FreeSlot fills week-grid cells with no scheduled class.
const FreeSlot = "FREE"

// TimetableService answers slot queries over the timetable store.
type TimetableService struct {
	timetable TimetableStore
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(timetable TimetableStore) *TimetableService {
	return &TimetableService{timetable: timetable}
}

// SlotsFor returns the slots scheduled under a day label in ascending
// start-time order. Slots sharing the same time keep their store order.
func (s *TimetableService) SlotsFor(ctx context.Context, label model.DayLabel) ([]model.TimetableSlot, error) {
	all, err := s.timetable.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var slots []model.TimetableSlot
	for _, slot := range all {
		if slot.Day == label {
			slots = append(slots, slot)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
	return slots, nil
}

// SlotsByDay returns every slot grouped by day label, each group in
// ascending start-time order. One store scan serves all seven labels.
func (s *TimetableService) SlotsByDay(ctx context.Context) (map[model.DayLabel][]model.TimetableSlot, error) {
	all, err := s.timetable.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[model.DayLabel][]model.TimetableSlot)
	for _, slot := range all {
		byDay[slot.Day] = append(byDay[slot.Day], slot)
	}
	for label := range byDay {
		slots := byDay[label]
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].Start.Before(slots[j].Start)
		})
	}
	return byDay, nil
}

// NextSlotAtOrAfter returns the earliest slot under label whose start
// time is at or after t (a time-of-day value), or nil when every slot
// for that label has already passed.
func (s *TimetableService) NextSlotAtOrAfter(ctx context.Context, label model.DayLabel, t time.Time) (*model.TimetableSlot, error) {
	slots, err := s.SlotsFor(ctx, label)
	if err != nil {
		return nil, err
	}
	at := model.TimeOfDayOf(t)
	for i := range slots {
		if !slots[i].Start.Before(at) {
			return &slots[i], nil
		}
	}
	return nil, nil
}

// WeekGrid renders the day × time matrix the schedule view displays.
// Cells carry "CODE (room)" for a scheduled slot and FreeSlot otherwise;
// only exact matches on the given times are placed.
func (s *TimetableService) WeekGrid(ctx context.Context, days []model.DayLabel, times []string) (map[model.DayLabel]map[string]string, error) {
	all, err := s.timetable.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	grid := make(map[model.DayLabel]map[string]string, len(days))
	for _, day := range days {
		row := make(map[string]string, len(times))
		for _, t := range times {
			row[t] = FreeSlot
		}
		grid[day] = row
	}

	for _, slot := range all {
		row, ok := grid[slot.Day]
		if !ok {
			continue
		}
		start := slot.StartString()
		if _, ok := row[start]; !ok {
			continue
		}
		row[start] = string(slot.Course) + " (" + slot.Room + ")"
	}
	return grid, nil
}
