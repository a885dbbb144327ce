package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// PublicKey is the public half of a Paillier key: the modulus n and the
// generator g. The master's key arrives as two decimal strings and is
// immutable after parsing.
type PublicKey struct {
	N *big.Int
	G *big.Int
}

// NSquared returns n², the ciphertext modulus.
func (pub *PublicKey) NSquared() *big.Int {
	return new(big.Int).Mul(pub.N, pub.N)
}

// KeyPair is a local Paillier key pair. The private half (lambda, mu) never
// leaves this package.
type KeyPair struct {
	Public PublicKey

	lambda *big.Int
	mu     *big.Int
}

// paillierSystem implements [Cryptosystem] with the Paillier cryptosystem
// in its common simplified form (g = n+1, lambda = (p-1)(q-1)).
type paillierSystem struct{}

// NewPaillierSystem constructs the default [Cryptosystem] implementation.
func NewPaillierSystem() Cryptosystem {
	return &paillierSystem{}
}

// GenerateKeyPair implements [Cryptosystem]. It draws two random primes of
// bits/2 each from the OS CSPRNG and derives the private exponents. Returns
// an error if bits is too small or prime generation fails.
func (p *paillierSystem) GenerateKeyPair(bits int) (*KeyPair, error) {
	if bits < 64 {
		return nil, fmt.Errorf("%w: modulus of %d bits is too short", ErrKeyGeneration, bits)
	}

	for {
		prime1, err := rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, fmt.Errorf("generate prime: %w", err)
		}
		prime2, err := rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, fmt.Errorf("generate prime: %w", err)
		}
		if prime1.Cmp(prime2) == 0 {
			continue
		}

		n := new(big.Int).Mul(prime1, prime2)
		lambda := new(big.Int).Mul(
			new(big.Int).Sub(prime1, one),
			new(big.Int).Sub(prime2, one),
		)

		// With g = n+1, decryption reduces to mu = lambda^-1 mod n.
		mu := new(big.Int).ModInverse(lambda, n)
		if mu == nil {
			continue
		}

		return &KeyPair{
			Public: PublicKey{
				N: n,
				G: new(big.Int).Add(n, one),
			},
			lambda: lambda,
			mu:     mu,
		}, nil
	}
}

// PublicKeyRepresentation implements [Cryptosystem]. The wire form is the
// two decimal components joined by a colon: "n:g".
func (p *paillierSystem) PublicKeyRepresentation(kp *KeyPair) string {
	return kp.Public.N.Text(10) + ":" + kp.Public.G.Text(10)
}

// ParsePublicKey implements [Cryptosystem]. Both components must be decimal
// representations of positive integers.
func (p *paillierSystem) ParsePublicKey(n, g string) (*PublicKey, error) {
	modulus, ok := new(big.Int).SetString(n, 10)
	if !ok || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus %q", ErrMalformedKey, n)
	}

	generator, ok := new(big.Int).SetString(g, 10)
	if !ok || generator.Sign() <= 0 {
		return nil, fmt.Errorf("%w: generator %q", ErrMalformedKey, g)
	}

	return &PublicKey{N: modulus, G: generator}, nil
}

// Encrypt implements [Cryptosystem]. The plaintext bytes are interpreted as
// one big integer m, which must be smaller than the modulus; the ciphertext
// is g^m * r^n mod n² for a fresh random r coprime to n.
func (p *paillierSystem) Encrypt(pub *PublicKey, plaintext string) (string, error) {
	m := new(big.Int).SetBytes([]byte(plaintext))
	if m.Cmp(pub.N) >= 0 {
		return "", fmt.Errorf("%w: %d bytes exceed the modulus", ErrPlaintextTooLong, len(plaintext))
	}

	r, err := randomCoprime(pub.N)
	if err != nil {
		return "", err
	}

	nSquared := pub.NSquared()
	c := new(big.Int).Exp(pub.G, m, nSquared)
	c.Mul(c, new(big.Int).Exp(r, pub.N, nSquared))
	c.Mod(c, nSquared)

	return c.Text(10), nil
}

// Decrypt implements [Cryptosystem]. It inverts Encrypt for ciphertexts
// produced under kp's public half: m = L(c^lambda mod n²) * mu mod n, with
// L(x) = (x-1)/n.
func (p *paillierSystem) Decrypt(kp *KeyPair, ciphertext string) (string, error) {
	nSquared := kp.Public.NSquared()

	c, ok := new(big.Int).SetString(ciphertext, 10)
	if !ok || c.Sign() <= 0 || c.Cmp(nSquared) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrMalformedCiphertext, truncate(ciphertext))
	}

	u := new(big.Int).Exp(c, kp.lambda, nSquared)
	l := new(big.Int).Div(new(big.Int).Sub(u, one), kp.Public.N)

	m := l.Mul(l, kp.mu)
	m.Mod(m, kp.Public.N)

	return string(m.Bytes()), nil
}

// randomCoprime draws a uniform random integer in [1, n) coprime to n.
func randomCoprime(n *big.Int) (*big.Int, error) {
	gcd := new(big.Int)
	for {
		r, err := rand.Int(rand.Reader, n)
		if err != nil {
			return nil, fmt.Errorf("draw random blinding factor: %w", err)
		}
		if r.Sign() == 0 {
			continue
		}
		if gcd.GCD(nil, nil, r, n).Cmp(one) == 0 {
			return r, nil
		}
	}
}

func truncate(s string) string {
	const max = 32
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
