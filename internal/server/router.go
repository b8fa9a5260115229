package server

import (
	"github.com/gin-gonic/gin"
	"github.com/yungbote/bewear-backend/internal/http/handlers"
	"github.com/yungbote/bewear-backend/internal/http/middleware"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	CatalogHandler *handlers.CatalogHandler
	AddressHandler *handlers.AddressHandler
	CartHandler    *handlers.CartHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/auth/register", cfg.AuthHandler.Register)
	router.POST("/auth/login", cfg.AuthHandler.Login)
	router.GET("/categories", cfg.CatalogHandler.ListCategories)
	router.GET("/products", cfg.CatalogHandler.ListProducts)
	router.GET("/products/:slug", cfg.CatalogHandler.GetProduct)
	router.GET("/products/:slug/variants", cfg.CatalogHandler.ListProductVariants)

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)
	// Shipping addresses
	protected.POST("/shipping-addresses", cfg.AddressHandler.CreateShippingAddress)
	protected.GET("/shipping-addresses", cfg.AddressHandler.ListShippingAddresses)
	// Cart
	protected.GET("/cart", cfg.CartHandler.GetCart)
	protected.PATCH("/cart/shipping-address", cfg.CartHandler.UpdateShippingAddress)
	protected.DELETE("/cart/items/:id", cfg.CartHandler.RemoveItem)

	return router
}
