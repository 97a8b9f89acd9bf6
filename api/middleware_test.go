package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
	"github.com/evelinalundqvist/portfolio-backend/services"
)

type fakeAdminUsers struct {
	user models.AdminUser
}

func (f *fakeAdminUsers) FindByEmail(_ context.Context, email string) (models.AdminUser, error) {
	if email != f.user.Email {
		return models.AdminUser{}, fmt.Errorf("admin user %s: %w", email, errs.ErrNotFound)
	}
	return f.user, nil
}

func newTestMiddleware(t *testing.T) (authMiddleware, string) {
	t.Helper()

	hash, err := services.HashPassword("hunter2")
	require.NoError(t, err)

	auth := services.NewAuthService(&fakeAdminUsers{
		user: models.AdminUser{ID: "u1", Email: "[email protected]", PasswordHash: hash},
	}, "test-secret", time.Hour)

	token, err := auth.SignIn(context.Background(), "[email protected]", "hunter2")
	require.NoError(t, err)

	return newAuthMiddleware(auth), token
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	m, _ := newTestMiddleware(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	m.authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	m, _ := newTestMiddleware(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a bad token")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	m.authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateAttachesClaims(t *testing.T) {
	m, token := newTestMiddleware(t)

	var got services.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetAdmin(r.Context())
		require.NoError(t, err)
		got = claims
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	m.authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "[email protected]", got.Email)
}
