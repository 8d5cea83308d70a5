package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ticketfoot/internal/api"
	"ticketfoot/internal/config"
	"ticketfoot/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	server, err := api.NewServer(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", "error", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("Shutting down")
		server.Cleanup()
		os.Exit(0)
	}()

	if err := server.Run(); err != nil {
		server.Cleanup()
		logger.Fatal("Server stopped", "error", err)
	}
}
