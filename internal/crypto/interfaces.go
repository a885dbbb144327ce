package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cryptosystem_mock.go -package=mock

// Cryptosystem is the capability the session core consumes for homomorphic
// channel encryption. It knows nothing about the network or the master; its
// only job is key material and string encryption/decryption.
//
// Handshake flow:
//
//	kp  = GenerateKeyPair(bits)            (client side, once)
//	rep = PublicKeyRepresentation(kp)      (sent to the master)
//	pub = ParsePublicKey(n, g)             (master's response components)
//	ct  = Encrypt(pub, plaintext)          (outbound tag writes)
//	pt  = Decrypt(kp, ct)                  (inbound snapshot chunks)
type Cryptosystem interface {
	// GenerateKeyPair creates a fresh local key pair of the given modulus
	// length in bits.
	GenerateKeyPair(bits int) (*KeyPair, error)

	// PublicKeyRepresentation renders the key pair's public half in the
	// wire form expected by the key-exchange route.
	PublicKeyRepresentation(kp *KeyPair) string

	// ParsePublicKey builds a remote public key from its two decimal
	// big-integer components. Returns an error if either component is not
	// a valid positive integer.
	ParsePublicKey(n, g string) (*PublicKey, error)

	// Encrypt encrypts plaintext under pub and returns the ciphertext as a
	// decimal string. Fails if the plaintext does not fit the modulus.
	Encrypt(pub *PublicKey, plaintext string) (string, error)

	// Decrypt decrypts a decimal ciphertext string with the private half
	// of kp and returns the original plaintext.
	Decrypt(kp *KeyPair, ciphertext string) (string, error)
}
