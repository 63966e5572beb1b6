package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/session"
)

// AuthService checks credentials against the role-specific stores and
// hands back an explicit session value on success.
type AuthService struct {
	students   StudentStore
	professors ProfessorStore
	admins     AdminStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(students StudentStore, professors ProfessorStore, admins AdminStore) *AuthService {
	return &AuthService{students: students, professors: professors, admins: admins}
}

// Login validates (username, password) against the store for role.
// Returns ErrInvalidCredentials on any mismatch, unknown role included.
func (s *AuthService) Login(ctx context.Context, role model.Role, username, password string) (*session.Session, error) {
	var stored string
	var found bool

	switch role {
	case model.RoleStudent:
		student, err := s.students.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if student != nil {
			stored, found = student.Password, true
		}
	case model.RoleProfessor:
		prof, err := s.professors.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if prof != nil {
			stored, found = prof.Password, true
		}
	case model.RoleAdmin:
		admins, err := s.admins.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range admins {
			if a.Username == username {
				stored, found = a.Password, true
				break
			}
		}
	default:
		return nil, ErrInvalidCredentials
	}

	if !found || !matchPassword(stored, password) {
		return nil, ErrInvalidCredentials
	}
	return session.New(username, role), nil
}

// HashPassword hashes a password for storage with the given bcrypt cost.
// Stores remain compatible with plaintext rows; matchPassword accepts
// both forms.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), err
}

// matchPassword compares a stored credential with the given password.
// Bcrypt-shaped stored values are verified as hashes; anything else is
// compared as a plaintext column in constant time.
func matchPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
