package model

import "time"

// TimeOfDay is the layout for slot start times at the store boundary.
const TimeOfDay = "15:04"

// TimetableSlot represents one row of the timetable store:
// WEEKDAY,HH:MM,courseCode,room. A slot is a point event with no
// modeled end time.
type TimetableSlot struct {
	Day    DayLabel
	Start  time.Time // time-of-day only; date part is the zero reference
	Course CourseCode
	Room   string
}

// StartString renders the slot's start back in store form.
func (s TimetableSlot) StartString() string {
	return s.Start.Format(TimeOfDay)
}

// TimeOfDayOf strips t down to its HH:MM time-of-day on the zero
// reference date, so it is comparable with slot start times.
func TimeOfDayOf(t time.Time) time.Time {
	tod, _ := time.Parse(TimeOfDay, t.Format(TimeOfDay))
	return tod
}
