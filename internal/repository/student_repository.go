package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/store"
)

// StudentRepository handles student rows in the students store:
// username,password,courseCode[;courseCode...].
type StudentRepository struct {
	file *store.File
	log  zerolog.Logger
}

// NewStudentRepository creates a new StudentRepository over a data directory.
func NewStudentRepository(dataDir string, log zerolog.Logger) *StudentRepository {
	return &StudentRepository{
		file: store.NewFile(dataDir, store.StudentsFile),
		log:  log.With().Str("store", store.StudentsFile).Logger(),
	}
}

// ListAll returns every parseable student row in file order. Malformed
// rows are skipped and processing continues.
func (r *StudentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, err
	}

	var students []model.Student
	for _, line := range lines {
		s, ok := parseStudent(line)
		if !ok {
			r.log.Debug().Str("line", line).Msg("skipping malformed student row")
			continue
		}
		students = append(students, s)
	}
	return students, nil
}

// GetByUsername returns the first student row matching username, or nil
// when no row matches.
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*model.Student, error) {
	students, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].Username == username {
			return &students[i], nil
		}
	}
	return nil, nil
}

// Append adds a student row to the store.
func (r *StudentRepository) Append(ctx context.Context, s model.Student) error {
	codes := make([]string, len(s.Courses))
	for i, c := range s.Courses {
		codes[i] = string(c)
	}
	line := fmt.Sprintf("%s,%s,%s", s.Username, s.Password, strings.Join(codes, ";"))
	return r.file.Append(line)
}

// parseStudent parses a students-store row. A row without a course field
// is still a valid student with an empty course list.
func parseStudent(line string) (model.Student, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
		return model.Student{}, false
	}
	s := model.Student{
		Username: strings.TrimSpace(parts[0]),
		Password: parts[1],
	}
	if len(parts) >= 3 && strings.TrimSpace(parts[2]) != "" {
		for _, raw := range strings.Split(parts[2], ";") {
			code := model.CourseCode(strings.ToUpper(strings.TrimSpace(raw)))
			if code == "" {
				continue
			}
			s.Courses = append(s.Courses, code)
		}
	}
	return s, true
}
