package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Section is one named group of tags inside a snapshot. The master reports
// device data as an ordered object of sections; the trailing sections hold
// device metadata rather than tags.
type Section struct {
	Name string
	Tags map[string]TagRecord
}

// Snapshot is one decoded data payload: all sections in the exact order the
// master declared them. Order matters because tag names may collide across
// sections and the merge is last-write-wins in declaration order.
type Snapshot struct {
	Sections []Section
}

// UnmarshalJSON decodes a snapshot from a JSON object of sections while
// preserving the server's key order. encoding/json maps would lose that
// order, so the object is walked token by token.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read snapshot start: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("snapshot is not a JSON object")
	}

	s.Sections = s.Sections[:0]
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("read section name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("section name is not a string")
		}

		var tags map[string]TagRecord
		if err = dec.Decode(&tags); err != nil {
			return fmt.Errorf("decode section %q: %w", name, err)
		}
		s.Sections = append(s.Sections, Section{Name: name, Tags: tags})
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("read snapshot end: %w", err)
	}
	return nil
}

// MarshalJSON encodes the snapshot back into a JSON object with sections in
// declaration order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range s.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(sec.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		tags, err := json.Marshal(sec.Tags)
		if err != nil {
			return nil, fmt.Errorf("encode section %q: %w", sec.Name, err)
		}
		buf.Write(tags)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Flatten merges all sections except the trailing shift metadata sections
// into one TagMapping. Sections are merged in declaration order, so a tag
// name appearing in several sections resolves to the last section's record.
func (s Snapshot) Flatten(shift int) TagMapping {
	if shift < 0 {
		shift = 0
	}
	end := len(s.Sections) - shift
	if end < 0 {
		end = 0
	}

	mapping := make(TagMapping)
	for _, sec := range s.Sections[:end] {
		for name, rec := range sec.Tags {
			mapping[name] = rec
		}
	}
	return mapping
}

// EncryptedSnapshot is the wire form of a fully encrypted snapshot: an
// ordered sequence of ciphertext chunks whose decrypted concatenation is one
// JSON snapshot document. Chunk order is significant.
type EncryptedSnapshot struct {
	Chunks []string `json:"data"`
}
