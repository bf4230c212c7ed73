package rsademo

import (
	"context"
	"fmt"
	"math/big"

	"github.com/colbycyphersociety/rsademo/pkg/rsademo/cipher"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/decimal"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/keypair"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/seed"
)

// GenerateKeypair derives a key pair from two 32-byte seeds with the default
// Config. The seeds must differ.
func GenerateKeypair(seedA, seedB []byte) (*keypair.Keypair, error) {
	return Config{}.GenerateKeypair(context.Background(), seedA, seedB)
}

// GenerateKeypair derives a key pair from two 32-byte seeds. Seeds of any
// other length fail before any work is done.
func (c Config) GenerateKeypair(ctx context.Context, seedA, seedB []byte) (*keypair.Keypair, error) {
	sa, err := seed.New(seedA)
	if err != nil {
		return nil, wrap("GenerateKeypair", err)
	}
	sb, err := seed.New(seedB)
	if err != nil {
		return nil, wrap("GenerateKeypair", err)
	}

	kp, err := c.builder().Build(ctx, sa, sb)
	if err != nil {
		return nil, wrap("GenerateKeypair", err)
	}
	return kp, nil
}

// Encrypt encrypts message for the public identity given as decimal e and n.
// The result carries the leading separator of the wire form.
func Encrypt(message []byte, e, n string) (string, error) {
	ev, nv, err := parsePublic(e, n)
	if err != nil {
		return "", wrap("Encrypt", err)
	}
	return cipher.Encrypt(message, ev, nv), nil
}

// Decrypt decrypts ciphertext with kp. The leading separator is optional.
func Decrypt(ciphertext string, kp *keypair.Keypair) ([]byte, error) {
	if kp == nil {
		return nil, errorf("Decrypt", "%w: nil keypair", ErrInvalidParameter)
	}
	pt, err := kp.Decrypt(cipher.TrimLeadingSeparator(ciphertext))
	if err != nil {
		return nil, wrap("Decrypt", err)
	}
	return pt, nil
}

// PublicIdentity renders the public identity of kp as "(e, n)".
func PublicIdentity(kp *keypair.Keypair) string {
	if kp == nil {
		return ""
	}
	return kp.String()
}

func parsePublic(e, n string) (*big.Int, *big.Int, error) {
	ev, err := decimal.Parse(e)
	if err != nil {
		return nil, nil, err
	}
	nv, err := decimal.Parse(n)
	if err != nil {
		return nil, nil, err
	}
	if ev.Sign() <= 0 {
		return nil, nil, fmt.Errorf("%w: exponent must be positive", ErrInvalidParameter)
	}
	if nv.Cmp(big.NewInt(2)) <= 0 {
		return nil, nil, fmt.Errorf("%w: modulus must exceed 2", ErrInvalidParameter)
	}
	return ev, nv, nil
}
