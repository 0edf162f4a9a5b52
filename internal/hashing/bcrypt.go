package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes with golang.org/x/crypto/bcrypt, passing the work-factor
// exponent straight through as the bcrypt cost. Safe for concurrent use,
// though the interactive loop never calls it concurrently.
type Bcrypt struct{}

// Hash returns the Modular Crypt Format hash string (e.g. "$2a$10$...").
// Callers validate rounds before calling; the range is re-checked here so
// a bug upstream fails fast instead of starting a 2^31-round computation.
func (Bcrypt) Hash(secret string, rounds int) (string, error) {
	if rounds < MinRounds || rounds > MaxRounds {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrRoundsOutOfRange, rounds, MinRounds, MaxRounds)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), rounds)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}
