package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanp2002/project-x-backend/internal/domain/user"
	"github.com/rohanp2002/project-x-backend/internal/infra/memory"
	"github.com/rohanp2002/project-x-backend/internal/service/auth"
)

const testSecret = "test-signing-secret"

func newService() *auth.Service {
	return auth.NewService(memory.NewUserRepository(), []byte(testSecret), 60*time.Minute)
}

func TestSignUp(t *testing.T) {
	svc := newService()

	u, err := svc.SignUp(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.True(t, u.IsActive)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "s3cret", u.HashedPassword, "stored hash must never equal the plaintext")
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc := newService()

	_, err := svc.SignUp(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), "alice@example.com", "other")
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	svc := newService()

	_, err := svc.SignUp(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	t.Run("right password", func(t *testing.T) {
		u, err := svc.Authenticate(context.Background(), "alice@example.com", "s3cret")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		u, err := svc.Authenticate(context.Background(), "alice@example.com", "wrong")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("unknown email", func(t *testing.T) {
		u, err := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := newService()

	token, err := svc.IssueToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := newService()

	token, err := svc.IssueTokenWithTTL("alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	svc := newService()
	other := auth.NewService(memory.NewUserRepository(), []byte("different-secret"), 60*time.Minute)

	token, err := other.IssueToken("alice@example.com")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newService()

	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
