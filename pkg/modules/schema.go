package modules

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// mustSchema parses a JSON Schema literal into the SDK's schema type,
// panicking on malformed input since the literals are compile-time fixed.
func mustSchema(raw string) *jsonschema.Schema {
	s := new(jsonschema.Schema)
	if err := json.Unmarshal([]byte(raw), s); err != nil {
		panic(err)
	}
	return s
}
