package model

import (
	"strings"
	"time"
)

// DayLabel is the three-letter uppercase weekday code used by the
// timetable and working-day override stores.
type DayLabel string

const (
	Monday    DayLabel = "MON"
	Tuesday   DayLabel = "TUE"
	Wednesday DayLabel = "WED"
	Thursday  DayLabel = "THU"
	Friday    DayLabel = "FRI"
	Saturday  DayLabel = "SAT"
	Sunday    DayLabel = "SUN"
)

// labelByWeekday maps the calendar weekday onto its store label.
var labelByWeekday = map[time.Weekday]DayLabel{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// LabelFor returns the natural day label for a date.
func LabelFor(date time.Time) DayLabel {
	return labelByWeekday[date.Weekday()]
}

// ParseDayLabel normalizes a raw store value into a DayLabel. It accepts
// any casing but requires one of the seven known codes.
func ParseDayLabel(raw string) (DayLabel, bool) {
	label := DayLabel(strings.ToUpper(strings.TrimSpace(raw)))
	switch label {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return label, true
	default:
		return "", false
	}
}

// IsWeekend reports whether a date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
