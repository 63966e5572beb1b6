package service

import (
	"context"
	"sort"
	"strings"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/validator"
)

// EnrollmentService answers who-takes-what queries and owns the
// account-creation write contract.
type EnrollmentService struct {
	students   StudentStore
	professors ProfessorStore
	users      UserStore
	validate   *validator.Validator
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(students StudentStore, professors ProfessorStore, users UserStore, validate *validator.Validator) *EnrollmentService {
	return &EnrollmentService{
		students:   students,
		professors: professors,
		users:      users,
		validate:   validate,
	}
}

// CoursesFor returns a student's enrolled course codes in store order.
// An unknown student or a record without a course field yields an empty
// list, never an error.
func (s *EnrollmentService) CoursesFor(ctx context.Context, studentID string) ([]model.CourseCode, error) {
	student, err := s.students.GetByUsername(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, nil
	}
	return student.Courses, nil
}

// EnrolledCourseNames maps a student's course codes through the display
// table. Unknown codes display as themselves.
func (s *EnrollmentService) EnrolledCourseNames(ctx context.Context, studentID string) ([]string, error) {
	codes, err := s.CoursesFor(ctx, studentID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = model.CourseName(code)
	}
	return names, nil
}

// CourseFor returns the course a professor teaches, or "" when the
// professor is unknown.
func (s *EnrollmentService) CourseFor(ctx context.Context, professorID string) (model.CourseCode, error) {
	prof, err := s.professors.GetByUsername(ctx, professorID)
	if err != nil {
		return "", err
	}
	if prof == nil {
		return "", nil
	}
	return prof.Course, nil
}

// StudentsIn returns the usernames enrolled in a course, in the order
// their records appear in the store, so repeated renders stay stable.
func (s *EnrollmentService) StudentsIn(ctx context.Context, course model.CourseCode) ([]string, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var roster []string
	for _, student := range students {
		for _, enrolled := range student.Courses {
			if strings.EqualFold(string(enrolled), string(course)) {
				roster = append(roster, student.Username)
				break
			}
		}
	}
	return roster, nil
}

// CreateUser validates and persists a new student or professor account.
// All rejections happen before any store write:
//   - the payload must pass field validation, course codes included
//   - an account for the same (username, role) must not already exist,
//     in the combined users store or the role-specific one
//   - a student's course set must not equal an existing student's set
//   - a professor takes exactly one course, not yet assigned to anyone
func (s *EnrollmentService) CreateUser(ctx context.Context, req model.CreateUserRequest) error {
	if fields := s.validate.Check(req); fields != nil {
		return &ValidationError{Fields: fields}
	}

	accounts, err := s.users.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if a.Role == req.Role && strings.EqualFold(a.Username, req.Username) {
			return NewValidationError("Username", "an account with this username and role already exists")
		}
	}

	codes := splitCourseCodes(req.Courses)

	switch req.Role {
	case model.RoleStudent:
		if err := s.checkNewStudent(ctx, req.Username, codes); err != nil {
			return err
		}
	case model.RoleProfessor:
		if err := s.checkNewProfessor(ctx, req.Username, codes); err != nil {
			return err
		}
	}

	account := model.UserAccount{Role: req.Role, Username: req.Username, Password: req.Password}
	if err := s.users.Append(ctx, account); err != nil {
		return err
	}

	if req.Role == model.RoleStudent {
		return s.students.Append(ctx, model.Student{
			Username: req.Username,
			Password: req.Password,
			Courses:  codes,
		})
	}
	return s.professors.Append(ctx, model.Professor{
		Username: req.Username,
		Password: req.Password,
		Course:   codes[0],
	})
}

func (s *EnrollmentService) checkNewStudent(ctx context.Context, username string, codes []model.CourseCode) error {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, existing := range students {
		if strings.EqualFold(existing.Username, username) {
			return NewValidationError("Username", "username already exists in the student records")
		}
		if sameCourseSet(existing.Courses, codes) {
			return NewValidationError("Courses", "a student with this exact course set already exists")
		}
	}
	return nil
}

func (s *EnrollmentService) checkNewProfessor(ctx context.Context, username string, codes []model.CourseCode) error {
	if len(codes) != 1 {
		return NewValidationError("Courses", "professors can only be assigned to one course")
	}
	professors, err := s.professors.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, existing := range professors {
		if strings.EqualFold(existing.Username, username) {
			return NewValidationError("Username", "username already exists in the professor records")
		}
		if strings.EqualFold(string(existing.Course), string(codes[0])) {
			return NewValidationError("Courses", "course "+string(codes[0])+" is already assigned to a professor")
		}
	}
	return nil
}

// splitCourseCodes parses the raw semicolon-separated input into
// normalized codes, keeping input order and repeats.
func splitCourseCodes(raw string) []model.CourseCode {
	var codes []model.CourseCode
	for _, part := range strings.Split(raw, ";") {
		code := model.CourseCode(strings.ToUpper(strings.TrimSpace(part)))
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// sameCourseSet compares two course lists order-independently.
func sameCourseSet(a, b []model.CourseCode) bool {
	if len(a) != len(b) {
		return false
	}
	as := make([]string, len(a))
	bs := make([]string, len(b))
	for i := range a {
		as[i] = string(a[i])
	}
	for i := range b {
		bs[i] = string(b[i])
	}
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
