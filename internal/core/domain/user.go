package domain

import (
	"strings"
	"time"
)

// Account models a registered user. Email and username are unique across
// all accounts; email is compared lower-cased.
type Account struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"-"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// Claims is the identity payload carried by a session or reset token.
// Session tokens carry all three fields, reset tokens only Username.
type Claims struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// NormalizeEmail lower-cases and trims an address so uniqueness checks are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUsername trims surrounding whitespace from a username.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
