// Package session carries the logged-in identity as an explicit value.
// Callers pass it into engine queries instead of relying on any ambient
// current-user state.
package session

import (
	"github.com/google/uuid"

	"github.com/attendease/attendease/internal/model"
)

// Session identifies one logged-in user.
type Session struct {
	ID       uuid.UUID
	Username string
	Role     model.Role
}

// New creates a session with a fresh identifier.
func New(username string, role model.Role) *Session {
	return &Session{
		ID:       uuid.New(),
		Username: username,
		Role:     role,
	}
}
