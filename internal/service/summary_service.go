package service

import (
	"context"
	"time"

	"github.com/attendease/attendease/internal/model"
)

// Sentinels for the today/next-class view.
const (
	NoClassesToday     = "No classes today"
	NoMoreClassesToday = "No more classes today"
)

// TodaySchedule is the dashboard's today view: each class rendered as
// "course at HH:MM" in ascending time order, and the next class at or
// after the current time.
type TodaySchedule struct {
	Classes   []string
	NextClass string
}

// SummaryService combines the calendar, the timetable, and the
// attendance ledger into per-course aggregates.
type SummaryService struct {
	calendar      *CalendarService
	timetable     *TimetableService
	enrollment    *EnrollmentService
	attendance    *AttendanceService
	semesterStart time.Time
	clock         func() time.Time
}

// NewSummaryService creates a new SummaryService. semesterStart bounds
// the expected-session count on the left; "today" bounds it on the right.
func NewSummaryService(
	calendar *CalendarService,
	timetable *TimetableService,
	enrollment *EnrollmentService,
	attendance *AttendanceService,
	semesterStart time.Time,
) *SummaryService {
	return &SummaryService{
		calendar:      calendar,
		timetable:     timetable,
		enrollment:    enrollment,
		attendance:    attendance,
		semesterStart: semesterStart,
		clock:         time.Now,
	}
}

// Summary computes {total, attended, missed, percentage} for one
// student/course pair.
//
// Total counts every scheduled session of the course on instructional
// days from semester start through today inclusive: a day contributes
// one per slot the course has under that day's effective label.
// Attended and missed come from the ledger independently, so they need
// not add up to total when sessions go unrecorded.
func (s *SummaryService) Summary(ctx context.Context, studentID string, course model.CourseCode) (model.CourseSummary, error) {
	total, err := s.totalSessions(ctx, course)
	if err != nil {
		return model.CourseSummary{}, err
	}
	attended, err := s.attendance.AttendedCount(ctx, studentID, course)
	if err != nil {
		return model.CourseSummary{}, err
	}
	missed, err := s.attendance.MissedCount(ctx, studentID, course)
	if err != nil {
		return model.CourseSummary{}, err
	}

	return model.CourseSummary{
		Course:     course,
		CourseName: model.CourseName(course),
		Total:      total,
		Attended:   attended,
		Missed:     missed,
		Percentage: Percentage(attended, total),
	}, nil
}

// Summaries computes the per-course aggregate for every course the
// student is enrolled in, in enrollment order. This single view backs
// both the attendance table and the per-course charts.
func (s *SummaryService) Summaries(ctx context.Context, studentID string) ([]model.CourseSummary, error) {
	courses, err := s.enrollment.CoursesFor(ctx, studentID)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.CourseSummary, 0, len(courses))
	for _, course := range courses {
		summary, err := s.Summary(ctx, studentID, course)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Breakdowns returns the attended/missed split for every course the
// student is enrolled in, in enrollment order. Only recorded sessions
// count, so courses with an empty ledger come back all-zero.
func (s *SummaryService) Breakdowns(ctx context.Context, studentID string) ([]model.CourseBreakdown, error) {
	courses, err := s.enrollment.CoursesFor(ctx, studentID)
	if err != nil {
		return nil, err
	}

	breakdowns := make([]model.CourseBreakdown, 0, len(courses))
	for _, course := range courses {
		attended, err := s.attendance.AttendedCount(ctx, studentID, course)
		if err != nil {
			return nil, err
		}
		missed, err := s.attendance.MissedCount(ctx, studentID, course)
		if err != nil {
			return nil, err
		}
		breakdowns = append(breakdowns, model.CourseBreakdown{
			Course:     course,
			CourseName: model.CourseName(course),
			Attended:   attended,
			Missed:     missed,
		})
	}
	return breakdowns, nil
}

// TodayAndNext returns today's classes for the student's enrolled
// courses and the next one at or after the current time. When today is
// not instructional the timetable is never consulted.
func (s *SummaryService) TodayAndNext(ctx context.Context, studentID string) (TodaySchedule, error) {
	now := s.clock()

	cal, err := s.calendar.Load(ctx)
	if err != nil {
		return TodaySchedule{}, err
	}
	label, instructional := cal.Resolve(now)
	if !instructional {
		return TodaySchedule{NextClass: NoClassesToday}, nil
	}

	courses, err := s.enrollment.CoursesFor(ctx, studentID)
	if err != nil {
		return TodaySchedule{}, err
	}
	enrolled := make(map[model.CourseCode]struct{}, len(courses))
	for _, c := range courses {
		enrolled[c] = struct{}{}
	}

	slots, err := s.timetable.SlotsFor(ctx, label)
	if err != nil {
		return TodaySchedule{}, err
	}

	schedule := TodaySchedule{NextClass: NoMoreClassesToday}
	at := model.TimeOfDayOf(now)
	for _, slot := range slots {
		if _, ok := enrolled[slot.Course]; !ok {
			continue
		}
		rendered := string(slot.Course) + " at " + slot.StartString()
		schedule.Classes = append(schedule.Classes, rendered)
		if schedule.NextClass == NoMoreClassesToday && !slot.Start.Before(at) {
			schedule.NextClass = rendered
		}
	}
	return schedule, nil
}

// totalSessions walks every date from semester start through today and
// counts the course's slots on instructional days under each day's
// effective label. Both stores are loaded once per query.
func (s *SummaryService) totalSessions(ctx context.Context, course model.CourseCode) (int, error) {
	cal, err := s.calendar.Load(ctx)
	if err != nil {
		return 0, err
	}
	byDay, err := s.timetable.SlotsByDay(ctx)
	if err != nil {
		return 0, err
	}

	// Count the course's slots per label once, then walk the days.
	perLabel := make(map[model.DayLabel]int)
	for label, slots := range byDay {
		for _, slot := range slots {
			if slot.Course == course {
				perLabel[label]++
			}
		}
	}

	today := dateOf(s.clock())
	total := 0
	for d := dateOf(s.semesterStart); !d.After(today); d = d.AddDate(0, 0, 1) {
		label, instructional := cal.Resolve(d)
		if !instructional {
			continue
		}
		total += perLabel[label]
	}
	return total, nil
}

// Percentage computes attended/total as a whole percent, truncated
// toward zero. A zero total yields 0, never a division fault.
func Percentage(attended, total int) int {
	if total == 0 {
		return 0
	}
	return attended * 100 / total
}

// dateOf strips t to a UTC midnight so day-walking compares calendar
// dates regardless of the zone the inputs carried.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
