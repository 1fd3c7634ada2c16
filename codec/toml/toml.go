// Package toml is the TOML resource codec. TOML output is inherently
// multi-line, so there is no separate pretty form. The top-level value
// must serialize to a table; encoding anything else fails.
package toml

import (
	tomllib "github.com/pelletier/go-toml/v2"

	"appres/codec"
	"appres/resources"
)

var Codec = codec.New("toml", tomllib.Marshal, nil, tomllib.Unmarshal)

// Decode deserializes TOML content into v.
func Decode(content []byte, v any) error {
	return Codec.Decode(content, v)
}

// DecodeString deserializes a TOML string into v.
func DecodeString(content string, v any) error {
	return Codec.DecodeString(content, v)
}

// Encode serializes v as TOML.
func Encode(v any) ([]byte, error) {
	return Codec.Encode(v)
}

// Load reads a TOML file from the store and deserializes it into v.
func Load(store *resources.Store, relativePath string, v any) error {
	return Codec.Load(store, relativePath, v)
}

// Save serializes v as TOML and writes it to a file within the store.
func Save(store *resources.Store, relativePath string, v any) error {
	return Codec.Save(store, relativePath, v)
}

// LoadFile reads the TOML file at the given path, bypassing any store,
// and deserializes it into v.
func LoadFile(path string, v any) error {
	return Codec.LoadFile(path, v)
}

// SaveFile serializes v as TOML and writes it to the given path,
// bypassing any store.
func SaveFile(path string, v any) error {
	return Codec.SaveFile(path, v)
}
