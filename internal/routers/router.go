package routers

import (
	"Attic/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupStorageRouter(app, server)
	SetupShoppingRouter(app, server)
	SetupJanitorRouter(app, server)
}
