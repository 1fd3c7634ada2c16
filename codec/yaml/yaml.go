// Package yaml is the YAML resource codec. Output is standard block
// style, so there is no separate pretty form.
package yaml

import (
	yamllib "gopkg.in/yaml.v3"

	"appres/codec"
	"appres/resources"
)

var Codec = codec.New("yaml", yamllib.Marshal, nil, yamllib.Unmarshal)

// Decode deserializes YAML content into v.
func Decode(content []byte, v any) error {
	return Codec.Decode(content, v)
}

// DecodeString deserializes a YAML string into v.
func DecodeString(content string, v any) error {
	return Codec.DecodeString(content, v)
}

// Encode serializes v as YAML.
func Encode(v any) ([]byte, error) {
	return Codec.Encode(v)
}

// Load reads a YAML file from the store and deserializes it into v.
func Load(store *resources.Store, relativePath string, v any) error {
	return Codec.Load(store, relativePath, v)
}

// Save serializes v as YAML and writes it to a file within the store.
func Save(store *resources.Store, relativePath string, v any) error {
	return Codec.Save(store, relativePath, v)
}

// LoadFile reads the YAML file at the given path, bypassing any store,
// and deserializes it into v.
func LoadFile(path string, v any) error {
	return Codec.LoadFile(path, v)
}

// SaveFile serializes v as YAML and writes it to the given path,
// bypassing any store.
func SaveFile(path string, v any) error {
	return Codec.SaveFile(path, v)
}
