package cipher_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbycyphersociety/rsademo/pkg/rsademo/cipher"
)

// Textbook key: p=61, q=53, λ=780, e=17, d=413.
var (
	testN = big.NewInt(3233)
	testE = big.NewInt(17)
	testD = big.NewInt(413)
)

func TestEncryptWireForm(t *testing.T) {
	ct := cipher.Encrypt([]byte("A"), testE, testN)

	// 65^17 mod 3233
	want := new(big.Int).Exp(big.NewInt(65), testE, testN)
	assert.Equal(t, ","+want.String(), ct)
}

func TestEncryptLeadingSeparator(t *testing.T) {
	ct := cipher.Encrypt([]byte("HelloWorld!"), testE, testN)

	require.True(t, strings.HasPrefix(ct, cipher.Separator))
	parts := strings.Split(cipher.TrimLeadingSeparator(ct), cipher.Separator)
	assert.Len(t, parts, len("HelloWorld!"))
}

func TestEncryptEmpty(t *testing.T) {
	assert.Equal(t, "", cipher.Encrypt(nil, testE, testN))

	pt, err := cipher.Decrypt("", testD, testN)
	require.NoError(t, err)
	assert.Empty(t, pt)
}

func TestRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	tests := []struct {
		name string
		msg  []byte
	}{
		{"ascii", []byte("HelloWorld!")},
		{"single byte", []byte{0x42}},
		{"zero byte", []byte{0}},
		{"every byte value", all},
		{"utf-8", []byte("héllo, wörld")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := cipher.Encrypt(tt.msg, testE, testN)
			pt, err := cipher.Decrypt(cipher.TrimLeadingSeparator(ct), testD, testN)
			require.NoError(t, err)
			assert.Equal(t, tt.msg, pt)
		})
	}
}

func TestDecryptDropsValuesAboveByte(t *testing.T) {
	// With d=1 decryption is the identity, so 300 cannot narrow to a byte.
	pt, err := cipher.Decrypt("72,300,105", big.NewInt(1), testN)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hi"), pt)
}

func TestDecryptMalformed(t *testing.T) {
	tests := []string{
		",123",   // leading separator left in place
		"12,,34", // empty element
		"12,abc",
		"007",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := cipher.Decrypt(in, testD, testN)
			assert.ErrorIs(t, err, cipher.ErrMalformedCiphertext)
		})
	}
}

func TestNonPositiveModulus(t *testing.T) {
	for _, n := range []*big.Int{nil, big.NewInt(0), big.NewInt(-3233)} {
		_, err := cipher.Decrypt("1,2", testD, n)
		assert.ErrorIs(t, err, cipher.ErrInvalidModulus, "n=%v", n)

		assert.PanicsWithValue(t, cipher.ErrInvalidModulus, func() {
			cipher.Encrypt([]byte("Hi"), testE, n)
		}, "n=%v", n)
	}
}

func TestTrimLeadingSeparator(t *testing.T) {
	assert.Equal(t, "1,2", cipher.TrimLeadingSeparator(",1,2"))
	assert.Equal(t, "1,2", cipher.TrimLeadingSeparator("1,2"))
	assert.Equal(t, ",1", cipher.TrimLeadingSeparator(",,1"))
}
