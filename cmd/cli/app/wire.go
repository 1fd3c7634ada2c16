//go:build wireinject
// +build wireinject

package app

import (
	"appres/adapters/filesystem"
	"appres/internal/handler"
	"appres/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
)

func InjectConvertCommandHandler() (handler.ConvertCommandHandler, error) {
	wire.Build(
		Adapter,
		handler.ProvideConvertCommandHandler,
	)
	return handler.ConvertCommandHandler{}, nil
}

func InjectShowCommandHandler() (handler.ShowCommandHandler, error) {
	wire.Build(
		Adapter,
		handler.ProvideShowCommandHandler,
	)
	return handler.ShowCommandHandler{}, nil
}
