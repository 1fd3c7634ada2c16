package handler

import (
	"fmt"

	"appres/codec/json"
	"appres/ports"
)

type ShowCommandHandler struct {
	fileSystem ports.FileSystem
}

func ProvideShowCommandHandler(fileSystem ports.FileSystem) ShowCommandHandler {
	return ShowCommandHandler{
		fileSystem: fileSystem,
	}
}

// Handle reads a resource file, decodes it according to its extension
// and renders it as indented JSON.
func (h *ShowCommandHandler) Handle(path string) (string, error) {
	fileCodec, err := codecForPath(path)
	if err != nil {
		return "", err
	}

	content, err := h.fileSystem.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var value any
	if err := fileCodec.Decode(content, &value); err != nil {
		return "", err
	}

	rendered, err := json.EncodePretty(value)
	if err != nil {
		return "", err
	}
	return string(rendered), nil
}
