package cmd

import (
	"Attic/internal/config"
	"Attic/internal/handlers"
	"Attic/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Config          *config.Configuration
	DB              *gorm.DB
	StorageService  services.StorageService
	StorageHandler  *handlers.StorageHandler
	ItemService     services.ItemService
	BoxService      services.BoxService
	ShoppingService services.ShoppingService
	ShoppingHandler *handlers.ShoppingHandler
	LogService      services.LogService
	JanitorService  *services.Janitor
}

func NewServer(
	cfg *config.Configuration,
	db *gorm.DB,
	storageService services.StorageService,
	storageHandler *handlers.StorageHandler,
	itemService services.ItemService,
	boxService services.BoxService,
	shoppingService services.ShoppingService,
	shoppingHandler *handlers.ShoppingHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		Config:          cfg,
		DB:              db,
		StorageService:  storageService,
		StorageHandler:  storageHandler,
		ItemService:     itemService,
		BoxService:      boxService,
		ShoppingService: shoppingService,
		ShoppingHandler: shoppingHandler,
		LogService:      logService,
		JanitorService:  janitorService,
	}
}
