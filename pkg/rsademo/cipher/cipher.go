// Package cipher applies textbook RSA to a message one byte at a time.
//
// There is no padding and no block packing: each plaintext byte b becomes the
// decimal integer b^e mod n. The wire form is the comma-joined list of those
// integers with a separator in front of every element, including the first:
//
//	Encrypt([]byte("Hi"), e, n) == ",<c1>,<c2>"
//
// Callers strip the leading separator (see TrimLeadingSeparator) before
// handing the text to Decrypt.
package cipher

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/colbycyphersociety/rsademo/pkg/rsademo/decimal"
)

// Separator joins ciphertext elements.
const Separator = ","

var (
	// ErrMalformedCiphertext is returned when a segment is not a decimal integer.
	ErrMalformedCiphertext = errors.New("cipher: malformed ciphertext")

	// ErrInvalidModulus is returned by Decrypt for a nil or non-positive
	// modulus.
	ErrInvalidModulus = errors.New("cipher: modulus must be positive")
)

var maxByte = big.NewInt(255)

// Encrypt returns the wire form of msg under the public exponent e and
// modulus n. It panics if n is nil or not positive.
func Encrypt(msg []byte, e, n *big.Int) string {
	if !validModulus(n) {
		panic(ErrInvalidModulus)
	}

	var sb strings.Builder
	m := new(big.Int)
	c := new(big.Int)
	for _, b := range msg {
		m.SetUint64(uint64(b))
		c.Exp(m, e, n)
		sb.WriteString(Separator)
		sb.WriteString(decimal.Format(c))
	}
	return sb.String()
}

// Decrypt reverses Encrypt for a ciphertext whose leading separator has
// already been removed.
//
// A decrypted value that does not fit in a byte is dropped without an error.
// Only messages produced by Encrypt under the matching key round-trip; the
// output is silently shorter for anything else.
func Decrypt(ciphertext string, d, n *big.Int) ([]byte, error) {
	if !validModulus(n) {
		return nil, ErrInvalidModulus
	}
	if ciphertext == "" {
		return []byte{}, nil
	}

	segments := strings.Split(ciphertext, Separator)
	out := make([]byte, 0, len(segments))
	m := new(big.Int)
	for i, seg := range segments {
		c, err := decimal.Parse(seg)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %w", ErrMalformedCiphertext, i, err)
		}
		m.Exp(c, d, n)
		if m.Cmp(maxByte) > 0 {
			continue
		}
		out = append(out, byte(m.Uint64()))
	}
	return out, nil
}

// validModulus rejects moduli for which big.Int.Exp would skip reduction.
func validModulus(n *big.Int) bool {
	return n != nil && n.Sign() > 0
}

// TrimLeadingSeparator removes the separator Encrypt places before the first
// element, if present.
func TrimLeadingSeparator(ciphertext string) string {
	return strings.TrimPrefix(ciphertext, Separator)
}
