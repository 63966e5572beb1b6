package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/store"
)

// UserRepository handles the combined users store: role,username,password.
// The role-specific stores remain the source of truth for login; this
// store mirrors every created account.
type UserRepository struct {
	file *store.File
	log  zerolog.Logger
}

// NewUserRepository creates a new UserRepository over a data directory.
func NewUserRepository(dataDir string, log zerolog.Logger) *UserRepository {
	return &UserRepository{
		file: store.NewFile(dataDir, store.UsersFile),
		log:  log.With().Str("store", store.UsersFile).Logger(),
	}
}

// ListAll returns every parseable account row in file order.
func (r *UserRepository) ListAll(ctx context.Context) ([]model.UserAccount, error) {
	lines, err := r.file.ReadLines()
	if err != nil {
		return nil, err
	}

	var accounts []model.UserAccount
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			r.log.Debug().Str("line", line).Msg("skipping malformed user row")
			continue
		}
		role := model.Role(strings.TrimSpace(parts[0]))
		if !role.Valid() {
			r.log.Debug().Str("line", line).Msg("skipping user row with unknown role")
			continue
		}
		accounts = append(accounts, model.UserAccount{
			Role:     role,
			Username: strings.TrimSpace(parts[1]),
			Password: parts[2],
		})
	}
	return accounts, nil
}

// Append adds an account row to the store.
func (r *UserRepository) Append(ctx context.Context, a model.UserAccount) error {
	return r.file.Append(fmt.Sprintf("%s,%s,%s", a.Role, a.Username, a.Password))
}
