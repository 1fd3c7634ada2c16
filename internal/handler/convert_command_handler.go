package handler

import (
	"fmt"

	"appres/ports"
)

type ConvertCommandHandler struct {
	fileSystem ports.FileSystem
}

func ProvideConvertCommandHandler(fileSystem ports.FileSystem) ConvertCommandHandler {
	return ConvertCommandHandler{
		fileSystem: fileSystem,
	}
}

// Handle reads a resource file, decodes it according to its extension
// and writes it back out in the format implied by the output extension.
func (h *ConvertCommandHandler) Handle(inputPath string, outputPath string, pretty bool) error {
	inputCodec, err := codecForPath(inputPath)
	if err != nil {
		return err
	}
	outputCodec, err := codecForPath(outputPath)
	if err != nil {
		return err
	}

	content, err := h.fileSystem.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	var value any
	if err := inputCodec.Decode(content, &value); err != nil {
		return err
	}

	var converted []byte
	if pretty {
		converted, err = outputCodec.EncodePretty(value)
	} else {
		converted, err = outputCodec.Encode(value)
	}
	if err != nil {
		return err
	}

	if err := h.fileSystem.WriteFile(outputPath, converted, ports.ReadAllWriteOwner); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}
