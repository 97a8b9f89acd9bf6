package models

import "time"

// AdminUser is an account allowed into the admin area. PasswordHash is a
// bcrypt hash and never leaves the backend.
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
