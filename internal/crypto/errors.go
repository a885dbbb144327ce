package crypto

import "errors"

var (
	// ErrKeyGeneration indicates the requested key parameters cannot
	// produce a usable key pair.
	ErrKeyGeneration = errors.New("key generation failed")
	// ErrMalformedKey indicates a public key component that is missing or
	// not a positive decimal integer.
	ErrMalformedKey = errors.New("malformed public key")
	// ErrPlaintextTooLong indicates a plaintext whose integer encoding does
	// not fit under the key modulus.
	ErrPlaintextTooLong = errors.New("plaintext too long for modulus")
	// ErrMalformedCiphertext indicates a ciphertext string that is not a
	// decimal integer inside the ciphertext space.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)
