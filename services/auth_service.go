package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

// AdminUserStore looks up admin accounts for sign-in.
type AdminUserStore interface {
	FindByEmail(ctx context.Context, email string) (models.AdminUser, error)
}

// Claims is the validated identity attached to an admin request.
type Claims struct {
	UserID string
	Email  string
	SID    string
}

type tokenClaims struct {
	Email string `json:"email"`
	SID   string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthService issues and validates admin session tokens. Sessions are
// stateless JWTs; sign-out is the client discarding its token.
type AuthService struct {
	users  AdminUserStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(users AdminUserStore, jwtSecret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{
		users:  users,
		secret: []byte(jwtSecret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// SignIn checks the password against the stored bcrypt hash and returns a
// signed session token. Unknown email and wrong password are deliberately
// indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errs.NewUnauthorizedError("invalid email or password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.NewUnauthorizedError("invalid email or password")
		}
		return "", errs.NewDatabaseError("find", "admin user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errs.NewUnauthorizedError("invalid email or password")
	}

	now := s.now()
	claims := tokenClaims{
		Email: user.Email,
		SID:   uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to sign session token", err)
	}
	return token, nil
}

// Verify parses and validates a session token.
func (s *AuthService) Verify(token string) (Claims, error) {
	if token == "" {
		return Claims{}, errs.NewMissingTokenError()
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, errs.NewExpiredTokenError()
		}
		return Claims{}, errs.NewInvalidTokenError()
	}
	if !parsed.Valid {
		return Claims{}, errs.NewInvalidTokenError()
	}

	return Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		SID:    claims.SID,
	}, nil
}

// HashPassword produces a bcrypt hash for seeding admin accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
