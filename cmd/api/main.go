package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ReserveAquiServices/api-reservas/internal/config"
	dbpkg "github.com/ReserveAquiServices/api-reservas/internal/db"
	"github.com/ReserveAquiServices/api-reservas/internal/logger"
	"github.com/ReserveAquiServices/api-reservas/internal/middleware"
	"github.com/ReserveAquiServices/api-reservas/internal/routes"
)

func main() {

	_ = godotenv.Load()
	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	logger.L.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L.Fatalf("failed to start server: %v", err)
	}
}
