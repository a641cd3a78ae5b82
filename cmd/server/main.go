package main

import (
	"context"                             // context package is needed for Redis operations
	"log"                                 // log package is needed for logging
	"movie_favourites/internal/api"        // Custom package for API handlers
	"movie_favourites/internal/config"     // Custom package for configuration
	"movie_favourites/internal/middleware" // Custom package for middleware
	"movie_favourites/internal/service"    // Custom package for domain services

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Domain services
	authSvc := service.NewAuthService(db, cfg.JWTSecret) // Registration, login, token checks
	favSvc := service.NewFavouriteService(db)            // Favourite toggling and listing

	// Public routes
	r.GET("/", api.HomeHandler())                   // Health check endpoint
	r.POST("/api/register", api.RegisterHandler(authSvc)) // Registration endpoint
	r.POST("/api/login", api.LoginHandler(authSvc))       // Login endpoint

	// Favourite routes (protected by JWT)
	authGroup := r.Group("/api")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	// Route path keeps the original public contract's spelling
	authGroup.POST("/toogle_favourites", api.ToggleFavouritesHandler(favSvc, redisClient)) // Toggle favourite endpoint
	authGroup.GET("/favourites", api.GetFavouritesHandler(favSvc, redisClient))            // List favourites endpoint
	authGroup.GET("/check-token", api.CheckTokenHandler(authSvc))                          // Token check endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
