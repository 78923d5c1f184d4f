package routers

import (
	"Attic/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupShoppingRouter(app *fiber.App, server *cmd.Server) {
	shoppingHandler := server.ShoppingHandler
	app.Get("/shopping", shoppingHandler.ListEntries)
	app.Post("/shopping", shoppingHandler.CreateEntries)
	app.Patch("/shopping/:id", shoppingHandler.UpdateEntry)
	app.Delete("/shopping/:id", shoppingHandler.DeleteEntry)
}
