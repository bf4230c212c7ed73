package seed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

const (
	extractSalt = "rsademo-seed-generator"
	blockInfo   = "rsademo-seed-block"
)

// Generator is a deterministic byte stream keyed by a Seed. It implements
// io.Reader and never returns an error. A Generator is not safe for
// concurrent use; derive one per goroutine.
type Generator struct {
	// prk is the HKDF-Extract output keyed by the seed
	prk []byte
	// counter is the index of the next block
	counter uint64
	// cache holds leftover bytes from the last block
	cache []byte
}

// NewGenerator keys a generator with s.
func NewGenerator(s Seed) *Generator {
	return &Generator{
		prk: hkdf.Extract(sha256.New, s[:], []byte(extractSalt)),
	}
}

// Read fills p with the next len(p) bytes of the stream.
func (g *Generator) Read(p []byte) (int, error) {
	out := copy(p, g.cache)
	g.cache = g.cache[out:]

	for out < len(p) {
		block := g.nextBlock()
		n := copy(p[out:], block)
		out += n
		if n < len(block) {
			g.cache = block[n:]
		}
	}
	return out, nil
}

func (g *Generator) nextBlock() []byte {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], g.counter)
	g.counter++

	mac := hmac.New(sha256.New, g.prk)
	mac.Write([]byte(blockInfo))
	mac.Write(ctr[:])
	return mac.Sum(nil)
}

// Int returns a value drawn uniformly from the half-open range [lo, hi) by
// rejection sampling. It panics if hi <= lo.
func (g *Generator) Int(lo, hi *big.Int) *big.Int {
	width := new(big.Int).Sub(hi, lo)
	if width.Sign() <= 0 {
		panic("seed: empty range")
	}

	bits := width.BitLen()
	buf := make([]byte, (bits+7)/8)
	var mask byte = 0xff
	if r := bits % 8; r != 0 {
		mask = byte(1<<r) - 1
	}

	v := new(big.Int)
	for {
		_, _ = g.Read(buf)
		buf[0] &= mask
		v.SetBytes(buf)
		if v.Cmp(width) < 0 {
			return v.Add(v, lo)
		}
	}
}
