package main

import (
	"fmt"
	"os"

	"github.com/yungbote/bewear-backend/internal/app"
	"github.com/yungbote/bewear-backend/internal/data/repos"
	"github.com/yungbote/bewear-backend/internal/db"
	"github.com/yungbote/bewear-backend/internal/http/handlers"
	"github.com/yungbote/bewear-backend/internal/http/middleware"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"github.com/yungbote/bewear-backend/internal/server"
	"github.com/yungbote/bewear-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg := app.LoadConfig(log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	categoryRepo := repos.NewCategoryRepo(thePG, log)
	productRepo := repos.NewProductRepo(thePG, log)
	productVariantRepo := repos.NewProductVariantRepo(thePG, log)
	shippingAddressRepo := repos.NewShippingAddressRepo(thePG, log)
	cartRepo := repos.NewCartRepo(thePG, log)
	cartItemRepo := repos.NewCartItemRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	catalogService := services.NewCatalogService(thePG, log, categoryRepo, productRepo, productVariantRepo)
	addressService := services.NewAddressService(thePG, log, shippingAddressRepo)
	cartService := services.NewCartService(thePG, log, cartRepo, cartItemRepo, shippingAddressRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	addressHandler := handlers.NewAddressHandler(addressService)
	cartHandler := handlers.NewCartHandler(cartService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		CatalogHandler: catalogHandler,
		AddressHandler: addressHandler,
		CartHandler:    cartHandler,
	})

	log.Info("Starting server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
