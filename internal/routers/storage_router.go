package routers

import (
	"Attic/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupStorageRouter(app *fiber.App, server *cmd.Server) {
	storageHandler := server.StorageHandler
	app.Post("/storage/box", storageHandler.RegisterBox)
	app.Get("/storage/box/:id", storageHandler.GetBox)
	app.Patch("/storage/box/:id", storageHandler.UpdateBox)
	app.Post("/storage/box/:id/items", storageHandler.AddBoxItems)
	app.Delete("/storage/box/:id/items", storageHandler.RemoveBoxItems)
	app.Get("/storage/item/:id", storageHandler.GetItem)
	app.Patch("/storage/item/:id", storageHandler.UpdateItem)
	app.Get("/storage/search", storageHandler.Search)
}
