package main

import (
	"log"
	"time"

	"moodly-be/internal/cache"
	"moodly-be/internal/config"
	"moodly-be/internal/controllers"
	"moodly-be/internal/database"
	"moodly-be/internal/jwt"
	"moodly-be/internal/middleware"
	"moodly-be/internal/repository"
	"moodly-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

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
	diaryRepo := repository.NewDiaryRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	diaryService := service.NewDiaryService(diaryRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	diaryController := controllers.NewDiaryController(diaryService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router; any panic surfaces as a generic 500
	router := gin.New()
	router.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(500, gin.H{
			"message": "internal server error",
		})
	}))

	// Unmatched routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"message": "route not found",
		})
	})

	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Health check endpoint
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "moodly API is running",
			})
		})

		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Protected diary routes - require JWT authentication
		diary := api.Group("/diary")
		diary.Use(middleware.AuthMiddleware(jwtService))
		{
			diary.GET("", diaryController.List)
			diary.POST("", diaryController.Create)
			diary.PUT("/:id", diaryController.Update)
			diary.DELETE("/:id", diaryController.Delete)
		}
	}

	addr := ":" + cfg.Port
	log.Printf("Server starting on http://localhost%s", addr)
	router.Run(addr)
}
