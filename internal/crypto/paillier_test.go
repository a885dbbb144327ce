package crypto

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 256-bit keys keep the tests fast; the math is the same at any length.
const testKeyBits = 256

func testKeyPair(t *testing.T) (*KeyPair, Cryptosystem) {
	t.Helper()
	system := NewPaillierSystem()
	kp, err := system.GenerateKeyPair(testKeyBits)
	require.NoError(t, err)
	return kp, system
}

// ── Key generation ───────────────────────────────────────────────────────────

func TestPaillier_GenerateKeyPair(t *testing.T) {
	kp, _ := testKeyPair(t)

	assert.Equal(t, 1, kp.Public.N.Sign())
	// g = n+1 in the simplified scheme
	assert.Equal(t, 0, kp.Public.G.Cmp(new(big.Int).Add(kp.Public.N, big.NewInt(1))))
}

func TestPaillier_GenerateKeyPair_TooShort(t *testing.T) {
	_, err := NewPaillierSystem().GenerateKeyPair(16)
	assert.ErrorIs(t, err, ErrKeyGeneration)
}

// ── Round trip ───────────────────────────────────────────────────────────────

func TestPaillier_EncryptDecrypt_RoundTrip(t *testing.T) {
	kp, system := testKeyPair(t)

	plaintexts := []string{
		"motor_speed",
		"42",
		"3.14159",
		"-17",
		"tag with spaces & symbols!",
		"x",
	}

	for _, pt := range plaintexts {
		ct, err := system.Encrypt(&kp.Public, pt)
		require.NoError(t, err, "plaintext %q", pt)
		require.NotEqual(t, pt, ct)

		got, err := system.Decrypt(kp, ct)
		require.NoError(t, err, "plaintext %q", pt)
		assert.Equal(t, pt, got)
	}
}

func TestPaillier_Encrypt_Probabilistic(t *testing.T) {
	kp, system := testKeyPair(t)

	first, err := system.Encrypt(&kp.Public, "same input")
	require.NoError(t, err)
	second, err := system.Encrypt(&kp.Public, "same input")
	require.NoError(t, err)

	// random blinding factor: identical plaintexts give distinct ciphertexts
	assert.NotEqual(t, first, second)
}

func TestPaillier_Encrypt_PlaintextTooLong(t *testing.T) {
	kp, system := testKeyPair(t)

	long := make([]byte, testKeyBits/8+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := system.Encrypt(&kp.Public, string(long))
	assert.ErrorIs(t, err, ErrPlaintextTooLong)
}

// ── Homomorphic property ─────────────────────────────────────────────────────

func TestPaillier_AdditiveHomomorphism(t *testing.T) {
	kp, system := testKeyPair(t)

	encrypt := func(m int64) *big.Int {
		ct, err := system.Encrypt(&kp.Public, string(big.NewInt(m).Bytes()))
		require.NoError(t, err)
		c, ok := new(big.Int).SetString(ct, 10)
		require.True(t, ok)
		return c
	}

	// Enc(a) * Enc(b) mod n² decrypts to a+b
	product := new(big.Int).Mul(encrypt(1200), encrypt(34))
	product.Mod(product, kp.Public.NSquared())

	pt, err := system.Decrypt(kp, product.Text(10))
	require.NoError(t, err)
	assert.Equal(t, int64(1234), new(big.Int).SetBytes([]byte(pt)).Int64())
}

// ── Malformed inputs ─────────────────────────────────────────────────────────

func TestPaillier_Decrypt_Malformed(t *testing.T) {
	kp, system := testKeyPair(t)

	for _, ct := range []string{"", "not-a-number", "-5", "0"} {
		_, err := system.Decrypt(kp, ct)
		assert.ErrorIs(t, err, ErrMalformedCiphertext, "ciphertext %q", ct)
	}
}

func TestPaillier_ParsePublicKey(t *testing.T) {
	system := NewPaillierSystem()

	pub, err := system.ParsePublicKey("1234567891", "2")
	require.NoError(t, err)
	assert.Equal(t, int64(1234567891), pub.N.Int64())
	assert.Equal(t, int64(2), pub.G.Int64())

	_, err = system.ParsePublicKey("abc", "2")
	assert.ErrorIs(t, err, ErrMalformedKey)
	_, err = system.ParsePublicKey("123", "")
	assert.ErrorIs(t, err, ErrMalformedKey)
	_, err = system.ParsePublicKey("-123", "2")
	assert.ErrorIs(t, err, ErrMalformedKey)
}

func TestPaillier_PublicKeyRepresentation(t *testing.T) {
	kp, system := testKeyPair(t)

	rep := system.PublicKeyRepresentation(kp)
	assert.Contains(t, rep, ":")
	assert.Equal(t, kp.Public.N.Text(10)+":"+kp.Public.G.Text(10), rep)
}
