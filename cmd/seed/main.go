// Command seed resets the database and loads the demo data, the same
// operation POST /api/migrate performs over HTTP.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"ticketfoot/internal/cache"
	"ticketfoot/internal/config"
	"ticketfoot/internal/database"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/repository"
	"ticketfoot/internal/search"
	"ticketfoot/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	var esClient *search.ElasticsearchClient
	if cfg.Search.Enabled {
		esClient, err = search.NewElasticsearchClient(cfg.Search)
		if err != nil {
			log.Warn("Elasticsearch unavailable, skipping index seed", "error", err)
			esClient = nil
		}
	}

	var valkeyClient *cache.ValkeyClient
	if cfg.Valkey.Enabled {
		valkeyClient, err = cache.NewValkeyClient(cfg.Valkey)
		if err != nil {
			log.Warn("Valkey unavailable, skipping cache invalidation", "error", err)
			valkeyClient = nil
		}
	}

	repos := repository.NewRepositories(db)
	seeder := service.NewSeedService(repos, esClient, valkeyClient, cfg.Auth.BcryptCost)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := seeder.Run(ctx)
	if err != nil {
		logger.Fatal("Seeding failed", "error", err)
	}

	log.Info("Seeding complete", "user_email", result.UserEmail, "matches", result.MatchesCount)

	if valkeyClient != nil {
		valkeyClient.Close()
	}
}
