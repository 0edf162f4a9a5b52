// Package hashing wraps the password-hashing primitive behind a narrow
// interface so the interactive loop can be tested without paying for real
// bcrypt work.
package hashing

import "errors"

// Benchmark work-factor bounds. The exponent is the log2 of the number of
// internal hashing rounds, so cost grows exponentially; 30 is already
// hours of work on current hardware. bcrypt itself accepts up to 31, but
// the tool stops one short of that on purpose.
const (
	MinRounds = 4
	MaxRounds = 30
)

// ErrRoundsOutOfRange is returned when the work-factor exponent falls
// outside [MinRounds, MaxRounds].
var ErrRoundsOutOfRange = errors.New("hashing: rounds out of range")

// Hasher computes one salted hash of secret at the given work-factor
// exponent. Each call generates a fresh salt, so outputs differ between
// calls with identical inputs.
type Hasher interface {
	Hash(secret string, rounds int) (string, error)
}
