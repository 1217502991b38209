package domain

import (
	"time"

	"github.com/aussiebroadwan/todo/pkg/idx"
)

// User is a registered account. Username is an email address and doubles as
// the contact email at registration.
type User struct {
	ID           idx.ID[User]
	Username     string
	Email        string
	PasswordHash string
	Fullname     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser is what the store needs to insert an account. The password must
// already be hashed.
type NewUser struct {
	ID           idx.ID[User]
	Username     string
	PasswordHash string
	Fullname     string
}
