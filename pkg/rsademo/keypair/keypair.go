package keypair

import (
	"context"
	"fmt"
	"math/big"

	"github.com/colbycyphersociety/rsademo/pkg/rsademo/cipher"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/decimal"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/logging"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/numtheory"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/prime"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/seed"
)

const (
	// PrimeBits is the size of each of p and q.
	PrimeBits = 256
	// PrimeTries bounds the candidates drawn per prime.
	PrimeTries = 1000
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Keypair is an immutable RSA key pair. Accessors return copies.
//
// The zero value holds no key: its accessors report zero and Decrypt fails
// with ErrInvalidKey. Obtain key pairs from New, a Builder or FromDecimal.
type Keypair struct {
	e, d, n *big.Int
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger routes construction diagnostics to logger.
func WithLogger(logger logging.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Builder constructs key pairs. The zero value is not usable; call NewBuilder.
type Builder struct {
	logger logging.Logger
}

// NewBuilder returns a Builder with opts applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: logging.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// New builds a key pair with default options.
func New(seedP, seedQ seed.Seed) (*Keypair, error) {
	return NewBuilder().Build(context.Background(), seedP, seedQ)
}

// Build derives a key pair from two seeds. ctx is used for log correlation
// only; construction does not block.
//
// A prime search that runs out of tries aborts construction with an error
// wrapping prime.ErrExhausted; there is no retry.
func (b *Builder) Build(ctx context.Context, seedP, seedQ seed.Seed) (*Keypair, error) {
	p, ok := prime.Generate(PrimeBits, PrimeTries, seedP)
	if !ok {
		return nil, fmt.Errorf("keypair: generate p: %w", prime.ErrExhausted)
	}
	b.logger.Debug(ctx, "prime generated", "factor", "p", "bits", p.BitLen())

	q, ok := prime.Generate(PrimeBits, PrimeTries, seedQ)
	if !ok {
		return nil, fmt.Errorf("keypair: generate q: %w", prime.ErrExhausted)
	}
	b.logger.Debug(ctx, "prime generated", "factor", "q", "bits", q.BitLen())

	if p.Cmp(q) == 0 {
		return nil, ErrDuplicatePrime
	}

	n := new(big.Int).Mul(p, q)
	lambda := numtheory.LCM(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	e, attempts := searchExponent(lambda, seedP)
	b.logger.Debug(ctx, "public exponent selected", "attempts", attempts, "bits", e.BitLen())

	// e is coprime to λ, so the inverse exists.
	d, _ := numtheory.ModInverse(e, lambda)
	if d.Sign() < 0 {
		d.Add(d, lambda)
	}
	b.logger.Debug(ctx, "private exponent derived", logging.Redacted("d"), "modulus_bits", n.BitLen())

	return &Keypair{e: e, d: d, n: n}, nil
}

// searchExponent draws from [2, λ-2) until it finds a value coprime to λ.
// The loop has no cap; for 512-bit λ a hit takes a handful of draws.
func searchExponent(lambda *big.Int, s seed.Seed) (*big.Int, int) {
	hi := new(big.Int).Sub(lambda, two)
	g := s.Generator()
	for attempts := 1; ; attempts++ {
		e := g.Int(two, hi)
		if numtheory.GCD(e, lambda).Cmp(one) == 0 {
			return e, attempts
		}
	}
}

// FromDecimal rebuilds a key pair from the decimal form of its exponents and
// modulus. The values are checked for shape only; FromDecimal cannot verify
// that e and d are inverses without the factors of n.
func FromDecimal(e, d, n string) (*Keypair, error) {
	ev, err := decimal.Parse(e)
	if err != nil {
		return nil, fmt.Errorf("%w: e: %w", ErrInvalidKey, err)
	}
	dv, err := decimal.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%w: d: %w", ErrInvalidKey, err)
	}
	nv, err := decimal.Parse(n)
	if err != nil {
		return nil, fmt.Errorf("%w: n: %w", ErrInvalidKey, err)
	}
	if nv.Cmp(two) <= 0 {
		return nil, fmt.Errorf("%w: modulus must exceed 2", ErrInvalidKey)
	}
	if ev.Sign() <= 0 || dv.Sign() <= 0 {
		return nil, fmt.Errorf("%w: exponents must be positive", ErrInvalidKey)
	}
	return &Keypair{e: ev, d: dv, n: nv}, nil
}

// E returns the public exponent.
func (k *Keypair) E() *big.Int { return clone(k.e) }

// D returns the private exponent.
func (k *Keypair) D() *big.Int { return clone(k.d) }

// N returns the modulus.
func (k *Keypair) N() *big.Int { return clone(k.n) }

func clone(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x)
}

// PublicIdentity returns (e, n), everything a correspondent needs to encrypt
// to this key pair.
func (k *Keypair) PublicIdentity() (e, n *big.Int) {
	return k.E(), k.N()
}

// String renders the public identity as "(e, n)". The private exponent is
// never included.
func (k *Keypair) String() string {
	return fmt.Sprintf("(%s, %s)", decimal.Format(k.e), decimal.Format(k.n))
}

// Encrypt encrypts msg to this key pair's public identity. It panics on the
// zero value.
func (k *Keypair) Encrypt(msg []byte) string {
	return cipher.Encrypt(msg, k.e, k.n)
}

// Decrypt decrypts a ciphertext whose leading separator has been removed.
func (k *Keypair) Decrypt(ciphertext string) ([]byte, error) {
	if k.d == nil || k.n == nil {
		return nil, fmt.Errorf("%w: empty key pair", ErrInvalidKey)
	}
	return cipher.Decrypt(ciphertext, k.d, k.n)
}
