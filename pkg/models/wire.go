package models

import (
	"encoding/json"

	"github.com/iancoleman/strcase"
)

// The ETAPI wire surface uses camelCase keys while this package exposes
// Go structs whose field identities follow the server's documented
// snake_case names. Each entity declares its mapping once, as a static
// alias table consulted by both the decoder and the encoder, so the two
// directions cannot drift apart.

// wireAliases builds the internal→wire key table for one entity. Keys
// derive mechanically from the snake_case name via lowerCamel casing;
// overrides document the exceptions (currently only note_type↔type).
func wireAliases(overrides map[string]string, names ...string) map[string]string {
	m := make(map[string]string, len(names))
	for _, name := range names {
		if wire, ok := overrides[name]; ok {
			m[name] = wire
			continue
		}
		m[name] = strcase.ToLowerCamel(name)
	}
	return m
}

// wireObject is one decoded JSON object keyed by wire names. Keys the
// typed accessors never ask for are ignored.
type wireObject map[string]json.RawMessage

func decodeWireObject(data []byte) (wireObject, error) {
	var obj wireObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &ValidationError{Reason: "malformed JSON object", Err: err}
	}
	return obj, nil
}

// require decodes the named key into dest. A missing, null or malformed
// value is a ValidationError.
func (o wireObject) require(key string, dest any) error {
	raw, ok := o[key]
	if !ok || string(raw) == "null" {
		return &ValidationError{Field: key, Reason: "required field missing"}
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return &ValidationError{Field: key, Reason: "malformed value", Err: err}
	}
	return nil
}

// optional decodes the named key into dest when present, leaving dest
// untouched otherwise.
func (o wireObject) optional(key string, dest any) error {
	raw, ok := o[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return &ValidationError{Field: key, Reason: "malformed value", Err: err}
	}
	return nil
}

// emptyIfNil keeps id lists stable for callers: absent on the wire means
// an empty ordered sequence, never nil.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
