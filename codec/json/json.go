// Package json is the JSON resource codec. The compact form is produced
// by Encode/Save; the Pretty variants emit indented multi-line output.
package json

import (
	encjson "encoding/json"

	"appres/codec"
	"appres/resources"
)

var Codec = codec.New("json", encjson.Marshal, marshalPretty, encjson.Unmarshal)

func marshalPretty(v any) ([]byte, error) {
	return encjson.MarshalIndent(v, "", "  ")
}

// Decode deserializes JSON content into v.
func Decode(content []byte, v any) error {
	return Codec.Decode(content, v)
}

// DecodeString deserializes a JSON string into v.
func DecodeString(content string, v any) error {
	return Codec.DecodeString(content, v)
}

// Encode serializes v as compact JSON.
func Encode(v any) ([]byte, error) {
	return Codec.Encode(v)
}

// EncodePretty serializes v as indented JSON.
func EncodePretty(v any) ([]byte, error) {
	return Codec.EncodePretty(v)
}

// Load reads a JSON file from the store and deserializes it into v.
func Load(store *resources.Store, relativePath string, v any) error {
	return Codec.Load(store, relativePath, v)
}

// Save serializes v as compact JSON and writes it to a file within the
// store.
func Save(store *resources.Store, relativePath string, v any) error {
	return Codec.Save(store, relativePath, v)
}

// PrettySave serializes v as indented JSON and writes it to a file
// within the store.
func PrettySave(store *resources.Store, relativePath string, v any) error {
	return Codec.PrettySave(store, relativePath, v)
}

// LoadFile reads the JSON file at the given path, bypassing any store,
// and deserializes it into v.
func LoadFile(path string, v any) error {
	return Codec.LoadFile(path, v)
}

// SaveFile serializes v as compact JSON and writes it to the given
// path, bypassing any store.
func SaveFile(path string, v any) error {
	return Codec.SaveFile(path, v)
}

// PrettySaveFile serializes v as indented JSON and writes it to the
// given path, bypassing any store.
func PrettySaveFile(path string, v any) error {
	return Codec.PrettySaveFile(path, v)
}
