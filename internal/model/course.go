package model

// CourseCode is the short identifier a course is keyed by across every
// store (enrollments, timetable, attendance ledger).
type CourseCode string

// courseNames is the fixed code → display-name table.
var courseNames = map[CourseCode]string{
	"A": "OOP",
	"B": "Physics",
	"C": "Elec",
	"D": "DSML",
	"E": "Math",
	"F": "Ecology",
}

// CourseName returns the display name for a code. Unknown codes display
// as themselves.
func CourseName(code CourseCode) string {
	if name, ok := courseNames[code]; ok {
		return name
	}
	return string(code)
}

// ValidCourseCode reports whether code is a key in the course table.
func ValidCourseCode(code CourseCode) bool {
	_, ok := courseNames[code]
	return ok
}

// CourseCodes returns all known codes in display order (A..F).
func CourseCodes() []CourseCode {
	return []CourseCode{"A", "B", "C", "D", "E", "F"}
}
