// Package password hashes and verifies customer passwords and enforces the
// password policy applied at registration and password change.
package password

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const MinLength = 8

// Hasher is a one-way digest over customer passwords.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// BcryptHasher implements Hasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, or bcrypt.DefaultCost when cost is out of range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify never returns an error; any failure reads as a mismatch.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// IsAcceptable reports whether candidate is at least MinLength characters
// long and contains at least one digit and one letter.
func IsAcceptable(candidate string) bool {
	if len([]rune(candidate)) < MinLength {
		return false
	}
	var hasDigit, hasLetter bool
	for _, r := range candidate {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			hasLetter = true
		}
	}
	return hasDigit && hasLetter
}
