//go:build wireinject
// +build wireinject

package main

import (
	"Attic/cmd"
	"Attic/database"
	"Attic/internal/handlers"
	"Attic/internal/repository"
	"Attic/internal/services"
	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewDocumentRepository,
		services.NewItemService,
		services.NewBoxService,
		services.NewStorageService,
		handlers.NewStorageHandler,
		services.NewShoppingService,
		handlers.NewShoppingHandler,
		services.NewLogService,
		services.NewJanitorService,
		Provider,
	)
	return nil, nil
}
