package main

import (
	"os"

	"restaurant-api/config"
	"restaurant-api/logger"
	"restaurant-api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	defer logger.Sync()

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	config.InitDB()

	// Default middleware: logger + recovery. Recovery is the outermost
	// catch for unexpected failures, which surface as a bare 500.
	r := gin.Default()

	// CORS for the single-page frontend
	r.Use(cors.Default())

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Get().Infow("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		logger.Get().Fatalw("server exited", "error", err)
	}
}
