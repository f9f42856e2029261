package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/config"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/events"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/handler"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/mailer"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/notifier"
	redisclient "github.com/Sokolov-Vladisl/Aston-HW-6/internal/redis"
)

func main() {
	cfg, err := config.LoadNotificationService()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rdb, err := redisclient.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	var sender mailer.Sender
	if cfg.PostmarkServerToken != "" && cfg.PostmarkAccountToken != "" {
		sender, err = mailer.NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken, cfg.SenderEmail)
		if err != nil {
			log.Fatalf("Failed to configure Postmark sender: %v", err)
		}
		log.Println("Using Postmark email sender")
	} else {
		sender = mailer.LogSender{}
		log.Println("No Postmark credentials configured, outgoing mail will be logged only")
	}

	eventRouter := notifier.NewRouter(sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Each instance joins the shared group under its own consumer name, so
	// horizontally scaled instances split the stream between them.
	go func() {
		subscriber := events.NewSubscriber(rdb.Client, events.SubscriberConfig{
			Group:    cfg.ConsumerGroup,
			Consumer: "notifier-" + uuid.NewString()[:8],
			Handler:  eventRouter.HandleUserEvent,
		})
		if err := subscriber.Start(ctx); err != nil {
			log.Printf("Subscriber stopped: %v", err)
		}
	}()

	notificationHandler := handler.NewNotificationHandler(sender)

	router := gin.Default()
	router.POST("/api/notifications/email", notificationHandler.SendEmail)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	log.Printf("Notification service starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
