package domain

import (
	"net/mail"
	"strings"
	"unicode"
)

type User struct {
	UserID string
	Name   string
	Email  string
}

// Credentials carry the write-only password; it never reaches [User].
type Credentials struct {
	Name     string
	Email    string
	Password string
}

type Session struct {
	Token string
	User  User
}

// NormalizeEmail trims, lowercases and drops zero-width and whitespace
// characters anywhere in the address.
func NormalizeEmail(email string) string {
	var b strings.Builder
	b.Grow(len(email))
	for _, r := range strings.ToLower(email) {
		if unicode.IsSpace(r) || isZeroWidth(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isZeroWidth(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff':
		return true
	}
	return false
}

// ValidateEmail expects an already normalized address.
func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}
