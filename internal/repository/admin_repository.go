package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/store"
)

// AdminRepository handles admin rows in the admin store: username,password.
type AdminRepository struct {
	file *store.File
	log  zerolog.Logger
}

// NewAdminRepository creates a new AdminRepository over a data directory.
func NewAdminRepository(dataDir string, log zerolog.Logger) *AdminRepository {
	return &AdminRepository{
		file: store.NewFile(dataDir, store.AdminFile),
		log:  log.With().Str("store", store.AdminFile).Logger(),
	}
}

// ListAll returns every parseable admin row in file order.
func (r *AdminRepository) ListAll(ctx context.Context) ([]model.Admin, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, err
	}

	var admins []model.Admin
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
			r.log.Debug().Str("line", line).Msg("skipping malformed admin row")
			continue
		}
		admins = append(admins, model.Admin{
			Username: strings.TrimSpace(parts[0]),
			Password: parts[1],
		})
	}
	return admins, nil
}

// Append adds an admin row to the store.
func (r *AdminRepository) Append(ctx context.Context, a model.Admin) error {
	return r.file.Append(fmt.Sprintf("%s,%s", a.Username, a.Password))
}
