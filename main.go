package main

import (
	"log"
	"time"

	"habits-be/internal/cache"
	"habits-be/internal/config"
	"habits-be/internal/controllers"
	"habits-be/internal/database"
	"habits-be/internal/jwt"
	"habits-be/internal/middleware"
	"habits-be/internal/repository"
	"habits-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	logRepo := repository.NewHabitLogRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLMinutes)*time.Minute,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	habitService := service.NewHabitService(habitRepo, logRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	habitController := controllers.NewHabitController(habitService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Protected routes - require JWT authentication
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService, userRepo))
		{
			protected.POST("/habitos", habitController.CreateHabit)
			protected.GET("/habitos", habitController.ListHabits)
			protected.DELETE("/habitos/:id", habitController.DeleteHabit)
			protected.POST("/habitos/:id/logs", habitController.CreateLog)
			protected.GET("/habitos/:id/logs", habitController.ListLogs)
			protected.GET("/habitos/:id/stats", habitController.GetStats)
		}
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
