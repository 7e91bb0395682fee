package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// It covers everything a snapshot manifest needs: stable, portable, no
// dependency. If you need custom encoding (e.g. protobuf/msgpack),
// implement Codec and pass it where a codec is accepted.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-created snapshots. Existing persisted files are
// self-describing (they store the codec name in their manifest) and are
// opened by selecting the appropriate codec by name.
var Default Codec = JSON{}
