package routers

import (
	"Attic/cmd"
	"github.com/gofiber/fiber/v2"
)

// SetupJanitorRouter exposes a manual trigger for the retention sweep.
func SetupJanitorRouter(app *fiber.App, server *cmd.Server) {
	app.Post("/janitor/clean", func(ctx *fiber.Ctx) error {
		if err := server.JanitorService.ForceStartCleanCycle(); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return ctx.JSON(fiber.Map{"status": "clean cycle started"})
	})
}
