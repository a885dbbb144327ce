package service

import "errors"

var (
	// ErrWrongMode is returned by privileged operations attempted outside
	// control mode. The call performs no side effect.
	ErrWrongMode = errors.New("operation not permitted in current mode")
	// ErrNotNegotiated is returned by encryption paths used before a
	// successful key exchange.
	ErrNotNegotiated = errors.New("encryption channel not negotiated")
	// ErrHandshakeFailed marks a malformed or failed key exchange. Fatal
	// to session startup.
	ErrHandshakeFailed = errors.New("key exchange failed")
	// ErrDecryptionFailed marks a snapshot chunk or value that could not
	// be decrypted. Recovered per poll tick; the previous mapping is kept.
	ErrDecryptionFailed = errors.New("snapshot decryption failed")
	// ErrMalformedPayload marks decrypted plaintext that does not parse as
	// structured data.
	ErrMalformedPayload = errors.New("malformed snapshot payload")
	// ErrInvalidArgument is returned for out-of-range call parameters
	// (stream frequency, polling period).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSessionClosed is returned by operations on a closed session.
	ErrSessionClosed = errors.New("session is closed")
)
