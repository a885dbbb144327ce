package models

// TagRecord is one named measurement as reported by the master: the current
// value plus whatever metadata the device attaches (units, quality, limits).
// The metadata set is device-defined, so the record is kept as an open map
// rather than a fixed struct.
type TagRecord map[string]any

// Value returns the record's "value" field, or nil if the device did not
// report one.
func (r TagRecord) Value() any {
	return r["value"]
}

// Clone returns a shallow copy of the record. Published records are shared
// with foreground readers, so mutating decode paths must work on copies.
func (r TagRecord) Clone() TagRecord {
	out := make(TagRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// TagMapping is the flattened tag-name → record view derived from one
// snapshot. It is replaced wholesale on every poll tick and never mutated
// after publication.
type TagMapping map[string]TagRecord
