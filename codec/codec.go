// Package codec provides the shared encode/decode machinery behind the
// per-format packages codec/json, codec/toml and codec/yaml. Each format
// contributes a marshal/unmarshal function pair; everything else — error
// wrapping, store composition, file helpers — is identical across
// formats and lives here. Importing only the format packages you need
// keeps the unused parser libraries out of the binary.
package codec

import (
	"fmt"
	"path/filepath"

	"appres/adapters/filesystem"
	"appres/ports"
	"appres/resources"
)

// Codec is a format tag carrying the encode/decode functions for one
// serialization format. Codecs are pure values; all operations are safe
// for concurrent use.
type Codec struct {
	format        string
	marshal       func(v any) ([]byte, error)
	marshalPretty func(v any) ([]byte, error)
	unmarshal     func(content []byte, v any) error
}

// New creates a codec for a format. marshalPretty may be nil for
// formats whose output has no distinct pretty form; EncodePretty then
// falls back to the plain encoding.
func New(
	format string,
	marshal func(v any) ([]byte, error),
	marshalPretty func(v any) ([]byte, error),
	unmarshal func(content []byte, v any) error,
) Codec {
	return Codec{
		format:        format,
		marshal:       marshal,
		marshalPretty: marshalPretty,
		unmarshal:     unmarshal,
	}
}

// Format returns the codec's format name, e.g. "json".
func (c Codec) Format() string {
	return c.format
}

// Decode deserializes content into v. Malformed input yields a
// *FormatError carrying the parser's diagnostic.
func (c Codec) Decode(content []byte, v any) error {
	if err := c.unmarshal(content, v); err != nil {
		return &FormatError{Format: c.format, Err: err}
	}
	return nil
}

// DecodeString deserializes a string into v.
func (c Codec) DecodeString(content string, v any) error {
	return c.Decode([]byte(content), v)
}

// Encode serializes v. A value graph not representable in the format
// yields a *FormatError.
func (c Codec) Encode(v any) ([]byte, error) {
	content, err := c.marshal(v)
	if err != nil {
		return nil, &FormatError{Format: c.format, Err: err}
	}
	return content, nil
}

// EncodePretty serializes v in the format's pretty form, or in the
// plain form when the format has no distinct one.
func (c Codec) EncodePretty(v any) ([]byte, error) {
	if c.marshalPretty == nil {
		return c.Encode(v)
	}
	content, err := c.marshalPretty(v)
	if err != nil {
		return nil, &FormatError{Format: c.format, Err: err}
	}
	return content, nil
}

// Load reads a file from the store and deserializes it into v.
func (c Codec) Load(store *resources.Store, relativePath string, v any) error {
	text, err := store.LoadText(relativePath)
	if err != nil {
		return err
	}
	return c.DecodeString(text, v)
}

// Save serializes v and writes it to a file within the store.
func (c Codec) Save(store *resources.Store, relativePath string, v any) error {
	content, err := c.Encode(v)
	if err != nil {
		return err
	}
	return store.SaveBytes(relativePath, content)
}

// PrettySave serializes v in the format's pretty form and writes it to
// a file within the store.
func (c Codec) PrettySave(store *resources.Store, relativePath string, v any) error {
	content, err := c.EncodePretty(v)
	if err != nil {
		return err
	}
	return store.SaveBytes(relativePath, content)
}

// LoadFile reads the file at the given path, bypassing any store, and
// deserializes it into v.
func (c Codec) LoadFile(path string, v any) error {
	content, err := filesystem.ProvideOsFileSystem().ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resource file: %w", err)
	}
	return c.Decode(content, v)
}

// SaveFile serializes v and writes it to the given path, bypassing any
// store. The parent directory is created recursively, matching the
// store's save contract.
func (c Codec) SaveFile(path string, v any) error {
	content, err := c.Encode(v)
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

// PrettySaveFile serializes v in the format's pretty form and writes it
// to the given path, bypassing any store.
func (c Codec) PrettySaveFile(path string, v any) error {
	content, err := c.EncodePretty(v)
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

func writeFile(path string, content []byte) error {
	if filepath.Dir(path) == path {
		return resources.ErrNoParentDirectory
	}

	if err := filesystem.ProvideOsFileSystem().WriteFile(path, content, ports.ReadAllWriteOwner); err != nil {
		return fmt.Errorf("failed to write resource file: %w", err)
	}
	return nil
}
