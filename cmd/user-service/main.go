package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/config"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/events"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/handler"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/middleware"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/postgres"
	redisclient "github.com/Sokolov-Vladisl/Aston-HW-6/internal/redis"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/repository"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/service"
)

func main() {
	cfg, err := config.LoadUserService()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Write store (source of truth for the uniqueness invariant)
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis (event streaming + read cache)
	rdb, err := redisclient.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	publisher := events.NewPublisher(rdb.Client)
	repo := repository.NewUserRepository(db)
	cache := repository.NewUserCache(rdb.Client)

	svc := service.NewUserService(repo, cache, publisher)
	userHandler := handler.NewUserHandler(svc)

	router := gin.Default()
	router.Use(middleware.CorrelationID())

	api := router.Group("/api/users")
	{
		api.POST("", userHandler.CreateUser)
		api.GET("", userHandler.ListUsers)
		api.GET("/:id", userHandler.GetUser)
		api.PUT("/:id", userHandler.UpdateUser)
		api.DELETE("/:id", userHandler.DeleteUser)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Printf("User service starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
