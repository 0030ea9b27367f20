package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filebox/service/internal/apperr"
)

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	a, err := svc.Register(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "alice@example.com", a.Email)
	assert.NotEqual(t, "secret", a.PasswordHash)
}

func TestService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	_, err := svc.Register(ctx, "", "secret")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))
	assert.Equal(t, "Missing email", apperr.MessageOf(err))

	_, err = svc.Register(ctx, "alice@example.com", "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))
	assert.Equal(t, "Missing password", apperr.MessageOf(err))
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	_, err := svc.Register(ctx, "alice@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@example.com", "other")
	require.Error(t, err)
	assert.Equal(t, apperr.KindAlreadyExists, apperr.KindOf(err))
}

func TestService_VerifyCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	a, err := svc.Register(ctx, "alice@example.com", "secret")
	require.NoError(t, err)

	id, err := svc.VerifyCredentials(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)

	_, err = svc.VerifyCredentials(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email is indistinguishable from a wrong password.
	_, err = svc.VerifyCredentials(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Count(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	_, err = svc.Register(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bob@example.com", "hunter2")
	require.NoError(t, err)

	n, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
