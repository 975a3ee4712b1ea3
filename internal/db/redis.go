package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ReserveAquiServices/api-reservas/internal/config"
	"github.com/ReserveAquiServices/api-reservas/internal/logger"
)

// NewRedis abre a conexão usada para tokens de recuperação de senha.
func NewRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Get().Warnf("redis unavailable at %s: %v", cfg.RedisAddr, err)
	}

	return client
}
