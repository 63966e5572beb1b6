package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/store"
)

// ProfessorRepository handles professor rows in the professors store:
// username,password,courseCode.
type ProfessorRepository struct {
	file *store.File
	log  zerolog.Logger
}

// NewProfessorRepository creates a new ProfessorRepository over a data directory.
func NewProfessorRepository(dataDir string, log zerolog.Logger) *ProfessorRepository {
	return &ProfessorRepository{
		file: store.NewFile(dataDir, store.ProfessorsFile),
		log:  log.With().Str("store", store.ProfessorsFile).Logger(),
	}
}

// ListAll returns every parseable professor row in file order.
func (r *ProfessorRepository) ListAll(ctx context.Context) ([]model.Professor, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, err
	}

	var professors []model.Professor
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) < 3 || strings.TrimSpace(parts[0]) == "" {
			r.log.Debug().Str("line", line).Msg("skipping malformed professor row")
			continue
		}
		professors = append(professors, model.Professor{
			Username: strings.TrimSpace(parts[0]),
			Password: parts[1],
			Course:   model.CourseCode(strings.ToUpper(strings.TrimSpace(parts[2]))),
		})
	}
	return professors, nil
}

// GetByUsername returns the first professor row matching username, or
// nil when no row matches.
func (r *ProfessorRepository) GetByUsername(ctx context.Context, username string) (*model.Professor, error) {
	professors, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range professors {
		if professors[i].Username == username {
			return &professors[i], nil
		}
	}
	return nil, nil
}

// Append adds a professor row to the store.
func (r *ProfessorRepository) Append(ctx context.Context, p model.Professor) error {
	return r.file.Append(fmt.Sprintf("%s,%s,%s", p.Username, p.Password, p.Course))
}
