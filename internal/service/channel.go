package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secure-telemetry/internal/adapter"
	"github.com/MKhiriev/go-secure-telemetry/internal/config"
	"github.com/MKhiriev/go-secure-telemetry/internal/crypto"
	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/models"
)

// metadataSectionShift is the number of trailing metadata sections a
// plaintext snapshot carries. The fully encrypted decode path produces a
// snapshot without them.
const metadataSectionShift = 2

type cryptoChannel struct {
	master adapter.MasterAdapter
	system crypto.Cryptosystem
	device string

	mode    config.EncryptionMode
	keyBits int

	// Written once during Negotiate, before any concurrent reads begin;
	// immutable thereafter.
	keys   *crypto.KeyPair
	remote *crypto.PublicKey

	logger *logger.Logger
}

// NewCryptoChannel constructs the [CryptoChannel] for one session. The
// decode and write policy is fixed here from the encryption configuration.
func NewCryptoChannel(master adapter.MasterAdapter, system crypto.Cryptosystem, device string, encCfg config.ClientEncryption, log *logger.Logger) CryptoChannel {
	return &cryptoChannel{
		master:  master,
		system:  system,
		device:  device,
		mode:    encCfg.Mode(),
		keyBits: encCfg.KeyBits,
		logger:  log,
	}
}

// Negotiate implements [CryptoChannel]. It generates the local key pair,
// posts its public representation to the key-exchange route, and parses the
// master's two public key components. Any failure wraps
// [ErrHandshakeFailed] and must abort session startup.
func (c *cryptoChannel) Negotiate(ctx context.Context) error {
	if c.mode == config.EncryptionOff {
		return nil
	}

	keys, err := c.system.GenerateKeyPair(c.keyBits)
	if err != nil {
		return fmt.Errorf("%w: generate key pair: %w", ErrHandshakeFailed, err)
	}

	resp, err := c.master.ExchangeKey(ctx, c.device, c.system.PublicKeyRepresentation(keys))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHandshakeFailed, err)
	}

	remote, err := c.system.ParsePublicKey(resp.N, resp.G)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHandshakeFailed, err)
	}

	c.keys = keys
	c.remote = remote
	metricHandshakes.Inc()
	c.logger.Info().Str("device", c.device).Str("mode", c.mode.String()).Msg("encryption channel negotiated")
	return nil
}

// EncryptTag implements [CryptoChannel]. Name and value are encrypted
// independently under the master's public key. With encryption off the
// record passes through as plaintext.
func (c *cryptoChannel) EncryptTag(name, value string) (models.EncryptedTagRecord, error) {
	if c.mode == config.EncryptionOff {
		return models.EncryptedTagRecord{Name: name, Value: value}, nil
	}
	if c.remote == nil {
		return models.EncryptedTagRecord{}, ErrNotNegotiated
	}

	encName, err := c.system.Encrypt(c.remote, name)
	if err != nil {
		return models.EncryptedTagRecord{}, fmt.Errorf("encrypt tag name: %w", err)
	}
	encValue, err := c.system.Encrypt(c.remote, value)
	if err != nil {
		return models.EncryptedTagRecord{}, fmt.Errorf("encrypt tag value: %w", err)
	}

	return models.EncryptedTagRecord{Name: encName, Value: encValue}, nil
}

// Snapshot implements [CryptoChannel].
func (c *cryptoChannel) Snapshot(ctx context.Context) (models.Snapshot, int, error) {
	switch c.mode {
	case config.EncryptionFull:
		encrypted, err := c.master.FetchEncryptedSnapshot(ctx, c.device)
		if err != nil {
			return models.Snapshot{}, 0, err
		}
		snap, err := c.decodeEncrypted(encrypted)
		return snap, 0, err

	case config.EncryptionValuesOnly:
		snap, err := c.master.FetchSnapshot(ctx, c.device)
		if err != nil {
			return models.Snapshot{}, 0, err
		}
		decoded, err := c.decodeValues(snap)
		return decoded, metadataSectionShift, err

	default:
		snap, err := c.master.FetchSnapshot(ctx, c.device)
		return snap, metadataSectionShift, err
	}
}

// decodeEncrypted decrypts every ciphertext chunk in order, concatenates
// the plaintext fragments without separators, and parses the result as one
// JSON snapshot. Chunk order determines the parse result, so decryption is
// strictly sequential.
func (c *cryptoChannel) decodeEncrypted(encrypted models.EncryptedSnapshot) (models.Snapshot, error) {
	if c.keys == nil {
		return models.Snapshot{}, ErrNotNegotiated
	}

	var plaintext strings.Builder
	for i, chunk := range encrypted.Chunks {
		fragment, err := c.system.Decrypt(c.keys, chunk)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: chunk %d: %w", ErrDecryptionFailed, i, err)
		}
		plaintext.WriteString(fragment)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(plaintext.String()), &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return snap, nil
}

// decodeValues handles the values-only depth: structure and tag names are
// plaintext, each record's value field is an individual ciphertext string.
// Records are rebuilt on copies; published snapshots are never mutated.
func (c *cryptoChannel) decodeValues(snap models.Snapshot) (models.Snapshot, error) {
	if c.keys == nil {
		return models.Snapshot{}, ErrNotNegotiated
	}

	decoded := models.Snapshot{Sections: make([]models.Section, 0, len(snap.Sections))}
	for secIdx, sec := range snap.Sections {
		// trailing metadata sections stay plaintext on the wire
		if secIdx >= len(snap.Sections)-metadataSectionShift {
			decoded.Sections = append(decoded.Sections, sec)
			continue
		}

		out := models.Section{Name: sec.Name, Tags: make(map[string]models.TagRecord, len(sec.Tags))}
		for name, rec := range sec.Tags {
			ciphertext, ok := rec.Value().(string)
			if !ok {
				out.Tags[name] = rec
				continue
			}

			plain, err := c.system.Decrypt(c.keys, ciphertext)
			if err != nil {
				return models.Snapshot{}, fmt.Errorf("%w: tag %q: %w", ErrDecryptionFailed, name, err)
			}

			clone := rec.Clone()
			clone["value"] = parseScalar(plain)
			out.Tags[name] = clone
		}
		decoded.Sections = append(decoded.Sections, out)
	}

	return decoded, nil
}

// parseScalar interprets a decrypted value as a JSON scalar where possible,
// falling back to the raw string.
func parseScalar(plain string) any {
	dec := json.NewDecoder(strings.NewReader(plain))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return plain
	}
	switch v.(type) {
	case json.Number, bool, string, nil:
		return v
	default:
		return plain
	}
}
