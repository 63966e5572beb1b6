package model

import "time"

// DateOnly is the layout for calendar dates at the store boundary.
const DateOnly = "2006-01-02"

// Holiday represents one row of the holidays store: name,date. A legacy
// single-column variant carrying only the date is also accepted on read;
// such entries have an empty Name.
type Holiday struct {
	Name string
	Date time.Time
}

// WorkingDayOverride declares a weekend date as instructional. Its label
// selects which timetable row to honor for that date instead of the
// natural weekday.
type WorkingDayOverride struct {
	Date  time.Time
	Label DayLabel
}

// DeclareHolidayRequest is the payload for declaring a new holiday.
// Name must not contain the store delimiters (comma, pipe, semicolon).
type DeclareHolidayRequest struct {
	Name string `validate:"required,min=1,max=100,excludesall=0x2C0x7C;"`
	Date string `validate:"required,isodate"`
}
