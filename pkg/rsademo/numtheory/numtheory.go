// Package numtheory implements the integer algorithms the RSA core is built
// on: gcd, lcm, Bézout coefficients and modular inverse.
//
// Division is truncating (big.Int.Quo) and remainders follow the sign of the
// dividend (big.Int.Rem). Inputs are never modified.
package numtheory

import "math/big"

var one = big.NewInt(1)

// GCD returns the last non-zero remainder of Euclid's algorithm on a and b.
// GCD(a, 0) == a.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		x.Rem(x, y)
		x, y = y, x
	}
	return x
}

// LCM returns (a*b) / GCD(a, b). The caller must ensure the gcd is non-zero.
func LCM(a, b *big.Int) *big.Int {
	prod := new(big.Int).Mul(a, b)
	return prod.Quo(prod, GCD(a, b))
}

// ExtendedGCD returns Bézout coefficients x and y with a*x + b*y = gcd(a, b).
func ExtendedGCD(a, b *big.Int) (x, y *big.Int) {
	r := new(big.Int).Set(a)
	oldR := new(big.Int).Set(b)

	// s tracks the coefficient of b, t the coefficient of a.
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, oldR.Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, oldS.Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, oldT.Sub(oldT, tmp)
	}
	return oldT, oldS
}

// ModInverse returns the inverse of a modulo m and true, or nil and false when
// GCD(a, m) != 1 or m is zero.
//
// The result is the Bézout coefficient of a reduced with the sign-following
// remainder, so it may be negative. Use Normalize for a residue in [0, m).
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	if m.Sign() == 0 || GCD(a, m).Cmp(one) != 0 {
		return nil, false
	}
	x, _ := ExtendedGCD(a, m)
	return x.Rem(x, m), true
}

// Normalize returns x mod m in [0, |m|).
func Normalize(x, m *big.Int) *big.Int {
	if m.Sign() == 0 {
		panic("numtheory: zero modulus")
	}
	return new(big.Int).Mod(x, m)
}
