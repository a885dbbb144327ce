package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Snapshot decode ──────────────────────────────────────────────────────────

func TestSnapshot_UnmarshalJSON_PreservesSectionOrder(t *testing.T) {
	raw := `{"analog":{"t1":{"value":5}},"digital":{"t2":{"value":6}},"meta_a":{},"meta_b":{}}`

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snap))

	require.Len(t, snap.Sections, 4)
	assert.Equal(t, "analog", snap.Sections[0].Name)
	assert.Equal(t, "digital", snap.Sections[1].Name)
	assert.Equal(t, "meta_a", snap.Sections[2].Name)
	assert.Equal(t, "meta_b", snap.Sections[3].Name)
}

func TestSnapshot_UnmarshalJSON_RejectsNonObject(t *testing.T) {
	var snap Snapshot
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &snap))
	assert.Error(t, json.Unmarshal([]byte(`"text"`), &snap))
}

func TestSnapshot_MarshalJSON_RoundTrip(t *testing.T) {
	snap := Snapshot{Sections: []Section{
		{Name: "b", Tags: map[string]TagRecord{"x": {"value": json.Number("1")}}},
		{Name: "a", Tags: map[string]TagRecord{"y": {"value": json.Number("2")}}},
	}}

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var back Snapshot
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back.Sections, 2)
	// declaration order survives the round trip
	assert.Equal(t, "b", back.Sections[0].Name)
	assert.Equal(t, "a", back.Sections[1].Name)
}

// ── Flatten ──────────────────────────────────────────────────────────────────

func TestSnapshot_Flatten_DropsTrailingMetadataSections(t *testing.T) {
	raw := `{"s1":{"t1":{"value":5}},"s2":{"t2":{"value":6}},"meta_a":{"serial":{"value":"x"}},"meta_b":{"fw":{"value":"y"}}}`

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snap))

	mapping := snap.Flatten(2)
	require.Len(t, mapping, 2)
	assert.Equal(t, json.Number("5"), mapping["t1"].Value())
	assert.Equal(t, json.Number("6"), mapping["t2"].Value())
}

func TestSnapshot_Flatten_LastSectionWinsOnCollision(t *testing.T) {
	raw := `{"s1":{"t":{"value":1}},"s2":{"t":{"value":2}}}`

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snap))

	mapping := snap.Flatten(0)
	assert.Equal(t, json.Number("2"), mapping["t"].Value())
}

func TestSnapshot_Flatten_ShiftLargerThanSections(t *testing.T) {
	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{"only":{"t":{"value":1}}}`), &snap))

	assert.Empty(t, snap.Flatten(5))
	assert.Empty(t, Snapshot{}.Flatten(2))
}
