package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"appres/codec"
	"appres/codec/json"
	"appres/codec/toml"
	"appres/codec/yaml"
)

// codecForPath selects a codec from a file's extension.
func codecForPath(path string) (codec.Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Codec, nil
	case ".toml":
		return toml.Codec, nil
	case ".yaml", ".yml":
		return yaml.Codec, nil
	default:
		return codec.Codec{}, fmt.Errorf("unsupported resource format: %s", path)
	}
}
