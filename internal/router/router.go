package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront-backend/internal/config"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/store"
)

type Stores struct {
	Users    store.UserStore
	Cart     store.CartStore
	Wishlist store.WishlistStore
	Orders   store.OrderStore
}

func New(cfg config.Config, stores Stores, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	secret := []byte(cfg.JWTSecret)
	authHandler := handlers.NewAuthHandler(stores.Users, secret)
	cartHandler := handlers.NewCartHandler(stores.Cart)
	wishlistHandler := handlers.NewWishlistHandler(stores.Wishlist)
	orderHandler := handlers.NewOrderHandler(stores.Orders)
	catalogHandler := handlers.NewCatalogHandler(cfg.CatalogURL)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)

		authed := api.Group("", middleware.RequireAuth(secret))
		{
			authed.GET("/cart", cartHandler.GetCart)
			authed.POST("/cart/add", cartHandler.AddToCart)
			authed.DELETE("/cart/remove/:id", cartHandler.RemoveFromCart)
			authed.POST("/cart/clear", cartHandler.ClearCart)

			authed.GET("/wishlist", wishlistHandler.GetWishlist)
			authed.POST("/wishlist/add", wishlistHandler.AddToWishlist)
			authed.DELETE("/wishlist/remove/:productId", wishlistHandler.RemoveFromWishlist)

			authed.GET("/orders", orderHandler.GetOrders)
			authed.POST("/orders/create", orderHandler.CreateOrder)
		}
	}

	return r
}
