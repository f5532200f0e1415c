package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/config"
	"github.com/onlinestore/backend/events"
	"github.com/onlinestore/backend/handlers"
	"github.com/onlinestore/backend/storage"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := storage.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			log.Fatal("Failed to connect to message broker:", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	store := storage.NewGormStore(db)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	r := handlers.SetupRouter(store, tokens, publisher)
	log.Printf("Starting online store API on port %s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
