// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategories is the quick-pick category list assigned to new users.
var DefaultCategories = []string{
	"Comida",
	"Transporte",
	"Hogar",
	"Salud",
	"Entretenimiento",
	"Otros",
}

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Categories   []string // Quick-pick category labels shown when recording transactions
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with the default category list.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()

	categories := make([]string, len(DefaultCategories))
	copy(categories, DefaultCategories)

	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Categories:   categories,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
