package profile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var schemaJSON string

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Decode parses a serialized profile. Data whose shape does not match the
// current schema, or which breaks the identifier invariants, is rejected.
func Decode(data []byte) (Profile, error) {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return Profile{}, fmt.Errorf("profile is not valid JSON: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return Profile{}, fmt.Errorf("profile schema validation failed: %s", strings.Join(msgs, "; "))
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Encode serializes a profile with every key present.
func Encode(p Profile) ([]byte, error) {
	return json.Marshal(p.Normalize())
}
