package seed

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the exact length of a seed in bytes.
const Size = 32

// ErrInvalidLength is returned when seed material is not exactly Size bytes.
var ErrInvalidLength = errors.New("seed: invalid length")

// Seed is opaque material that initializes a Generator.
type Seed [Size]byte

// New copies b into a Seed. Input that is not exactly Size bytes is rejected
// rather than padded or truncated.
func New(b []byte) (Seed, error) {
	var s Seed
	if len(b) != Size {
		return s, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}
	copy(s[:], b)
	return s, nil
}

// ParseHex decodes a seed written as 2*Size hexadecimal digits.
func ParseHex(s string) (Seed, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Seed{}, fmt.Errorf("seed: decode hex: %w", err)
	}
	return New(b)
}

// Bytes returns a copy of the seed material.
func (s Seed) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, s[:])
	return out
}

// Generator returns a fresh generator positioned at the start of the stream
// for s.
func (s Seed) Generator() *Generator {
	return NewGenerator(s)
}
