package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-backend/internal/config"
	"storefront-backend/internal/router"
	"storefront-backend/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logger.Fatal().Msg("JWT_SECRET is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("mongo connect failed")
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal().Err(err).Msg("mongo ping failed")
	}
	db := client.Database(cfg.DBName)

	r := router.New(cfg, router.Stores{
		Users:    store.NewMongoUserStore(db),
		Cart:     store.NewMongoCartStore(db),
		Wishlist: store.NewMongoWishlistStore(db),
		Orders:   store.NewMongoOrderStore(db),
	}, logger)

	logger.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
