// Package prime samples probable primes of an exact bit length.
package prime

import (
	"errors"
	"math/big"

	"github.com/colbycyphersociety/rsademo/pkg/rsademo/primality"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/seed"
)

// ErrExhausted is returned by callers that treat a failed search as fatal.
// Generate itself reports failure through its boolean result.
var ErrExhausted = errors.New("prime: tries exhausted without a probable prime")

// Generate draws up to tries candidates from [2^(bits-1), 2^bits) using a
// generator keyed by s and returns the first probable prime. Even candidates
// are bumped by one, so the top of the range can overshoot by one unit.
//
// The same seed keys the primality test. Generate returns nil, false when the
// tries run out or when bits < 2 or tries < 1; that is a final verdict, not a
// transient failure.
func Generate(bits, tries int, s seed.Seed) (*big.Int, bool) {
	if bits < 2 || tries < 1 {
		return nil, false
	}

	lo := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	hi := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	g := s.Generator()

	for i := 0; i < tries; i++ {
		c := g.Int(lo, hi)
		if c.Bit(0) == 0 {
			c.SetBit(c, 0, 1)
		}
		if primality.IsPrime(c, s) {
			return c, true
		}
	}
	return nil, false
}
