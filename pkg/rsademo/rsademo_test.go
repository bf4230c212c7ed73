package rsademo_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbycyphersociety/rsademo/pkg/rsademo"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/decimal"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/keypair"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/logging"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/seed"
)

var (
	seedA = []byte{
		10, 16, 51, 42, 123, 31, 212, 31, 233, 15, 9, 7, 41, 32, 4, 3,
		144, 122, 1, 35, 1, 13, 55, 23, 1, 33, 1, 1, 1, 1, 2, 1,
	}
	seedB = bytes.Repeat([]byte{1}, 32)
)

func TestEndToEnd(t *testing.T) {
	kp, err := rsademo.GenerateKeypair(seedA, seedB)
	require.NoError(t, err)

	ct, err := rsademo.Encrypt([]byte("HelloWorld!"), decimal.Format(kp.E()), decimal.Format(kp.N()))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ct, ","))

	pt, err := rsademo.Decrypt(ct, kp)
	require.NoError(t, err)
	assert.Equal(t, "HelloWorld!", string(pt))

	// Pre-stripped input decrypts the same.
	pt, err = rsademo.Decrypt(ct[1:], kp)
	require.NoError(t, err)
	assert.Equal(t, "HelloWorld!", string(pt))
}

func TestGenerateKeypairSeedLength(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
	}{
		{"short a", seedA[:31], seedB},
		{"short b", seedA, seedB[:16]},
		{"long a", append(bytes.Clone(seedA), 0), seedB},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := rsademo.GenerateKeypair(tt.a, tt.b)
			require.Error(t, err)
			assert.Nil(t, kp)
			assert.ErrorIs(t, err, seed.ErrInvalidLength)

			var rerr *rsademo.Error
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, "GenerateKeypair", rerr.Op)
		})
	}
}

func TestGenerateKeypairSameSeeds(t *testing.T) {
	_, err := rsademo.GenerateKeypair(seedB, seedB)
	assert.ErrorIs(t, err, keypair.ErrDuplicatePrime)
}

func TestEncryptRejectsBadPublicIdentity(t *testing.T) {
	tests := []struct {
		name string
		e, n string
	}{
		{"non-decimal e", "abc", "3233"},
		{"non-decimal n", "17", "12x"},
		{"zero exponent", "0", "3233"},
		{"negative exponent", "-17", "3233"},
		{"modulus too small", "17", "2"},
		{"negative modulus", "17", "-3233"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rsademo.Encrypt([]byte("x"), tt.e, tt.n)
			var rerr *rsademo.Error
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, "Encrypt", rerr.Op)
		})
	}
}

func TestDecryptNilKeypair(t *testing.T) {
	_, err := rsademo.Decrypt(",1", nil)
	assert.ErrorIs(t, err, rsademo.ErrInvalidParameter)
}

func TestDecryptMalformed(t *testing.T) {
	kp, err := keypair.FromDecimal("17", "413", "3233")
	require.NoError(t, err)

	_, err = rsademo.Decrypt(",1,,2", kp)
	assert.Error(t, err)
}

func TestPublicIdentity(t *testing.T) {
	kp, err := keypair.FromDecimal("17", "413", "3233")
	require.NoError(t, err)

	assert.Equal(t, "(17, 3233)", rsademo.PublicIdentity(kp))
	assert.Equal(t, "", rsademo.PublicIdentity(nil))
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := rsademo.Config{
		Logger: logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	}

	_, err := cfg.GenerateKeypair(context.Background(), seedA, seedB)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "prime generated")
}

func TestErrorFormatting(t *testing.T) {
	err := &rsademo.Error{Op: "Encrypt", Err: rsademo.ErrInvalidParameter}
	assert.Equal(t, "rsademo.Encrypt: rsademo: invalid parameter", err.Error())
	assert.ErrorIs(t, err, rsademo.ErrInvalidParameter)
}

func TestWrapperVersion(t *testing.T) {
	assert.Equal(t, rsademo.Version, rsademo.WrapperVersion())
}
