package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ticketfoot/internal/config"
	"ticketfoot/internal/consumers"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/messaging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	cfg.NATS.ClientID = getEnvOr("NATS_CLIENT_ID", "ticketfoot-consumers")

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}

	service := consumers.NewConsumerService(cfg, natsClient)
	if err := service.Start(); err != nil {
		logger.Fatal("Failed to start consumers", "error", err)
	}

	log.Info("Consumers running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	service.Stop()
	if err := natsClient.Close(); err != nil {
		log.Error("Failed to close NATS connection", "error", err)
	}
}

func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
