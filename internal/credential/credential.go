// Package credential owns password hashing for user records. Only the hash
// ever leaves this package; plaintext secrets are never stored.
package credential

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 4
	DefaultCost       = 10
)

type Hasher struct {
	cost int
}

// NewHasher returns a bcrypt hasher. Costs outside bcrypt's accepted range
// fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Cost() int {
	return h.cost
}

// Hash enforces the password policy and returns a salted bcrypt hash.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if utf8.RuneCountInString(plaintext) < MinPasswordLength {
		return "", models.NewValidationError("password",
			fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", models.NewValidationError("password", "must be at most 72 bytes")
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches hash.
func (h *Hasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
