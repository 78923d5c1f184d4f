package main

import (
	"Attic/database"
	"Attic/internal/config"
	"Attic/internal/routers"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("attic.yaml")
}

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)
	server.JanitorService.StartCleanCycle()

	cfg := server.Config
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Attic",
	})

	app.Use(logger.New())
	routers.SetupRoutes(app, server)

	err = app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
