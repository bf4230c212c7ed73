package decimal

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalid is returned for text that is not a canonical decimal integer.
var ErrInvalid = errors.New("decimal: invalid integer")

// Parse decodes a canonical decimal integer.
func Parse(s string) (*big.Int, error) {
	if err := checkCanonical(s); err != nil {
		return nil, err
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return x, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// constants and tests.
func MustParse(s string) *big.Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// Format returns the canonical decimal form of x. A nil x formats as "0".
func Format(x *big.Int) string {
	if x == nil {
		return "0"
	}
	return x.String()
}

func checkCanonical(s string) error {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
		if digits == "0" {
			return fmt.Errorf("%w: negative zero", ErrInvalid)
		}
	}
	if digits == "" {
		return fmt.Errorf("%w: empty", ErrInvalid)
	}
	if len(digits) > 1 && digits[0] == '0' {
		return fmt.Errorf("%w: leading zero in %q", ErrInvalid, s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return fmt.Errorf("%w: unexpected %q in %q", ErrInvalid, digits[i], s)
		}
	}
	return nil
}
