package model

import (
	"fmt"
	"time"
)

// AttendanceRecord represents one row of the pipe-delimited attendance
// store: studentId|date|courseCode|presentFlag. Records are immutable
// once written; there is no update or delete path.
type AttendanceRecord struct {
	StudentID string
	Date      time.Time
	Course    CourseCode
	Present   bool
}

// Key returns the identity of a record. At most one record may exist per
// key; later submissions for the same key are dropped.
func (r AttendanceRecord) Key() string {
	return AttendanceKey(r.StudentID, r.Date, r.Course)
}

// AttendanceKey builds the (student, date, course) ledger identity.
func AttendanceKey(studentID string, date time.Time, course CourseCode) string {
	return fmt.Sprintf("%s|%s|%s", studentID, date.Format(DateOnly), course)
}

// CourseSummary is the aggregate a student sees per enrolled course.
// Attended and Missed come from the ledger independently of Total, so
// they need not add up to Total when sessions go unrecorded.
type CourseSummary struct {
	Course     CourseCode
	CourseName string
	Total      int
	Attended   int
	Missed     int
	Percentage int
}

// CourseBreakdown is the attended/missed split per course that backs the
// per-course charts. Unlike CourseSummary it carries only recorded
// sessions, so no calendar walk is needed to produce it.
type CourseBreakdown struct {
	Course     CourseCode
	CourseName string
	Attended   int
	Missed     int
}
