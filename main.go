package main

import (
	"log"
	"time"

	"ciphersafe-be/internal/cache"
	"ciphersafe-be/internal/config"
	"ciphersafe-be/internal/controllers"
	"ciphersafe-be/internal/database"
	"ciphersafe-be/internal/jwt"
	"ciphersafe-be/internal/middleware"
	"ciphersafe-be/internal/repository"
	"ciphersafe-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.DBMaxOpenConns)
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
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	passwordRepo := repository.NewPasswordRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	passwordService := service.NewPasswordService(passwordRepo, cacheClient)
	userService := service.NewUserService(userRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	passwordController := controllers.NewPasswordController(passwordService)
	userController := controllers.NewUserController(userService)

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

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	// Protected routes - require JWT authentication
	protected := router.Group("")
	protected.Use(generalRateLimiter.LimitMiddleware())
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		passwords := protected.Group("/passwords")
		{
			passwords.GET("", passwordController.List)
			passwords.POST("", passwordController.Create)
			passwords.PUT("/:id", passwordController.Update)
			passwords.DELETE("/:id", passwordController.Delete)
			passwords.PATCH("/:id/last-used", passwordController.TouchLastUsed)
		}

		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
