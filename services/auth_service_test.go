package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

type fakeAdminUsers struct {
	users map[string]models.AdminUser
}

func (f *fakeAdminUsers) FindByEmail(_ context.Context, email string) (models.AdminUser, error) {
	u, ok := f.users[email]
	if !ok {
		return models.AdminUser{}, fmt.Errorf("admin user %s: %w", email, errs.ErrNotFound)
	}
	return u, nil
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	users := &fakeAdminUsers{users: map[string]models.AdminUser{
		"evelina@portfolio.test": {ID: "u1", Email: "evelina@portfolio.test", PasswordHash: hash},
	}}
	return NewAuthService(users, "test-secret", time.Hour)
}

func TestSignInAndVerifyRoundTrip(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.SignIn(context.Background(), "evelina@portfolio.test", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "evelina@portfolio.test", claims.Email)
	assert.NotEmpty(t, claims.SID)
}

func TestSignInWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.SignIn(context.Background(), "evelina@portfolio.test", "wrong")
	require.Error(t, err)
	// Unknown email reads identically to a wrong password.
	_, err2 := svc.SignIn(context.Background(), "unknown@portfolio.test", "correct horse")
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTestAuthService(t)

	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, err := svc.SignIn(context.Background(), "evelina@portfolio.test", "correct horse")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrExpiredToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.SignIn(context.Background(), "evelina@portfolio.test", "correct horse")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyEmptyToken(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, errs.ErrMissingToken)
}
