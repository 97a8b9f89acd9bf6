package api

import (
	"context"
	"errors"

	"github.com/evelinalundqvist/portfolio-backend/services"
)

type keyType string

const (
	adminKey keyType = "admin"
)

// ctxWithAdmin attaches the validated admin identity to the context
func ctxWithAdmin(ctx context.Context, claims services.Claims) context.Context {
	return context.WithValue(ctx, adminKey, claims)
}

// ctxGetAdmin retrieves the validated admin identity from the context
func ctxGetAdmin(ctx context.Context) (services.Claims, error) {
	value := ctx.Value(adminKey)
	if value == nil {
		return services.Claims{}, errors.New("no admin identity in context")
	}
	claims, ok := value.(services.Claims)
	if !ok {
		return services.Claims{}, errors.New("admin identity has unexpected type")
	}
	return claims, nil
}
