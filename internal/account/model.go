package account

import (
	"strings"
	"time"
)

// Account is the durable identity record. PasswordHash is the encoded
// argon2id credential; the raw password is never stored. CodeHash and
// CodeExpiresAt are set only while a verification code is outstanding.
type Account struct {
	ID            string
	FullName      string
	Email         string
	PasswordHash  string
	Verified      bool
	CodeHash      *string
	CodeExpiresAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Identity is the public projection of an account returned on login.
type Identity struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (a *Account) Identity() Identity {
	return Identity{
		ID:       a.ID,
		FullName: a.FullName,
		Email:    a.Email,
	}
}

// NormalizeEmail lowercases and trims an address. Every store access keys on
// the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
