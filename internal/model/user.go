package model

// Student represents one row of the students store:
// username,password,courseCode[;courseCode...].
// The course list keeps source order and is not deduplicated.
type Student struct {
	Username string
	Password string
	Courses  []CourseCode
}

// Professor represents one row of the professors store:
// username,password,courseCode. A professor teaches exactly one course.
type Professor struct {
	Username string
	Password string
	Course   CourseCode
}

// Admin represents one row of the admin store: username,password.
type Admin struct {
	Username string
	Password string
}

// UserAccount represents one row of the combined users store:
// role,username,password.
type UserAccount struct {
	Role     Role
	Username string
	Password string
}

// CreateUserRequest is the payload for the admin account-creation flow.
// Courses carries the raw semicolon-separated course code input.
// Username and Password must not contain the store delimiters
// (comma, pipe, semicolon), or the written row would fail to parse back.
type CreateUserRequest struct {
	Username string `validate:"required,min=1,max=64,excludesall=0x2C0x7C;"`
	Password string `validate:"required,min=1,max=128,excludesall=0x2C0x7C;"`
	Role     Role   `validate:"required,oneof=Student Professor"`
	Courses  string `validate:"required,coursecodes"`
}
