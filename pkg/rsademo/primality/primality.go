package primality

import (
	"math/big"

	"github.com/colbycyphersociety/rsademo/pkg/rsademo/numtheory"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/seed"
)

// Rounds is the number of Miller-Rabin witnesses tried per candidate.
const Rounds = 50

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsPrime reports whether n is a probable prime. The seed keys the
// Miller-Rabin witness generator; the same (n, s) always gives the same answer.
func IsPrime(n *big.Int, s seed.Seed) bool {
	if n.Cmp(two) < 0 {
		return false
	}

	m := new(big.Int)
	for _, p := range smallPrimes {
		m.SetInt64(p)
		if n.Cmp(m) == 0 {
			return true
		}
	}
	for _, p := range smallPrimes {
		m.SetInt64(p)
		if m.Rem(n, m).Sign() == 0 {
			return false
		}
	}

	nMinus1 := new(big.Int).Sub(n, one)
	for _, b := range fermatBases {
		m.SetInt64(b)
		if m.Exp(m, nMinus1, n).Cmp(one) != 0 {
			return false
		}
	}

	return MillerRabin(n, s)
}

// MillerRabin runs Rounds rounds of the Miller-Rabin test on n with witnesses
// drawn uniformly from [2, n-2).
func MillerRabin(n *big.Int, s seed.Seed) bool {
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true
	}
	if n.Cmp(two) < 0 || n.Bit(0) == 0 {
		return false
	}

	// n-1 = d * 2^r with d odd
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	hi := new(big.Int).Sub(n, two)
	g := s.Generator()
	x := new(big.Int)

	for round := 0; round < Rounds; round++ {
		a := g.Int(two, hi)
		if numtheory.GCD(a, n).Cmp(one) != 0 {
			return false
		}

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		composite := true
		for i := 1; i < r; i++ {
			x.Exp(x, two, n)
			if x.Cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}
