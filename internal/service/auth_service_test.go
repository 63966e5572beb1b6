package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendease/attendease/internal/model"
)

func TestLoginAgainstRoleStores(t *testing.T) {
	env := newTestEnv(t)
	env.seed("students.txt", "alice,secret,A")
	env.seed("professors.txt", "drake,hunter2,C")
	env.seed("admin.txt", "root,toor")
	ctx := context.Background()

	sess, err := env.auth.Login(ctx, model.RoleStudent, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, model.RoleStudent, sess.Role)
	assert.NotZero(t, sess.ID)

	sess, err = env.auth.Login(ctx, model.RoleProfessor, "drake", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, model.RoleProfessor, sess.Role)

	sess, err = env.auth.Login(ctx, model.RoleAdmin, "root", "toor")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, sess.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.seed("students.txt", "alice,secret,A")
	ctx := context.Background()

	_, err := env.auth.Login(ctx, model.RoleStudent, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, model.RoleStudent, "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// A student's credentials do not open a professor login.
	_, err = env.auth.Login(ctx, model.RoleProfessor, "alice", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, model.Role("Janitor"), "alice", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAcceptsBcryptStoredPasswords(t *testing.T) {
	env := newTestEnv(t)
	hash, err := HashPassword("secret", 4)
	require.NoError(t, err)
	env.seed("admin.txt", "root,"+hash)

	_, err = env.auth.Login(context.Background(), model.RoleAdmin, "root", "secret")
	require.NoError(t, err)

	_, err = env.auth.Login(context.Background(), model.RoleAdmin, "root", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithMissingStoreBehavesAsEmpty(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(context.Background(), model.RoleAdmin, "root", "toor")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
