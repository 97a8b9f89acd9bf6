package database

import (
	"context"
	"fmt"

	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

const adminUsersCollection = "admin_users"

type AdminUserRepo struct {
	store DocStore
}

func NewAdminUserRepo(store DocStore) *AdminUserRepo {
	return &AdminUserRepo{store}
}

func (r *AdminUserRepo) FindByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	docs, err := r.store.List(ctx, adminUsersCollection, ListOptions{
		Filter: &Filter{Field: "email", Op: "==", Value: email},
	})
	if err != nil {
		return models.AdminUser{}, err
	}
	if len(docs) == 0 {
		return models.AdminUser{}, fmt.Errorf("admin user %s: %w", email, errs.ErrNotFound)
	}

	d := docs[0]
	return models.AdminUser{
		ID:           d.ID,
		Email:        docString(d.Data, "email"),
		PasswordHash: docString(d.Data, "passwordHash"),
		CreatedAt:    docTime(d.Data, "createdAt"),
	}, nil
}
