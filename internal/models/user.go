package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
// Users join groups via join codes and add orders; their ID doubles as the
// opaque participant identifier the settlement engine sees.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// FirstName and LastName are the display name parts.
	FirstName string
	LastName  string

	// Email is the user's email address (unique). Used for login.
	Email string

	// Phone is optional, kept for the notification channel.
	Phone string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a fresh ID and creation timestamp.
func NewUser(email, firstName, lastName, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// DisplayName returns the name shown in summaries.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
