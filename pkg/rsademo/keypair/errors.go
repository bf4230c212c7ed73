package keypair

import "errors"

var (
	// ErrDuplicatePrime is returned when both seeds produce the same prime.
	// Distinct seeds are the caller's responsibility.
	ErrDuplicatePrime = errors.New("keypair: p and q are equal")

	// ErrInvalidKey is returned by FromDecimal for values that cannot form a
	// key pair, and by Decrypt on the zero Keypair.
	ErrInvalidKey = errors.New("keypair: invalid key")
)
