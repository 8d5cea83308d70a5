package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/auth"
	"ticketfoot/internal/cache"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/models"
	"ticketfoot/internal/repository"
	"ticketfoot/internal/search"
)

// Demo account credentials. The password is intentionally weak; the seeded
// environment is for demos only.
const (
	demoUserName  = "Boba Kamate"
	demoUserEmail = "bobakamate09@gmail.com"
	demoUserPhone = "+212 6 12 34 56 78"
	demoPassword  = "azerty"
)

type SeedService struct {
	repos      *repository.Repositories
	esClient   *search.ElasticsearchClient
	valkey     *cache.ValkeyClient
	bcryptCost int
}

func NewSeedService(repos *repository.Repositories, esClient *search.ElasticsearchClient, valkey *cache.ValkeyClient, bcryptCost int) *SeedService {
	return &SeedService{
		repos:      repos,
		esClient:   esClient,
		valkey:     valkey,
		bcryptCost: bcryptCost,
	}
}

// Run wipes every table and reseeds the demo account and match catalog.
// Destructive and idempotent: calling it twice leaves the same state.
func (s *SeedService) Run(ctx context.Context) (*models.SeedResult, error) {
	log := logger.WithContext(ctx)
	log.Warn("Reseeding database, all existing data will be dropped")

	if err := s.repos.TruncateAll(ctx); err != nil {
		return nil, apperrors.Internal("failed to reset tables", err)
	}

	hash, err := auth.HashPassword(demoPassword, s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash demo password", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        demoUserEmail,
		PasswordHash: hash,
		Name:         demoUserName,
		Phone:        demoUserPhone,
		MemberSince:  time.Now().UTC(),
	}
	if err := s.repos.Users.Create(ctx, user); err != nil {
		return nil, apperrors.Internal("failed to seed demo user", err)
	}

	matches := demoMatches(time.Now().UTC())
	for i := range matches {
		if err := s.repos.Matches.Create(ctx, &matches[i]); err != nil {
			return nil, apperrors.Internal("failed to seed matches", err)
		}
	}

	if s.esClient != nil {
		if err := s.esClient.DeleteAll(ctx); err != nil {
			log.Warn("Failed to clear search index", "error", err)
		}
		for i := range matches {
			if err := s.esClient.IndexMatch(ctx, matches[i]); err != nil {
				log.Warn("Failed to index seeded match", "match_id", matches[i].ID, "error", err)
			}
		}
	}

	if s.valkey != nil {
		s.valkey.InvalidateMatches(ctx)
	}

	log.Info("Database reseeded", "user_email", user.Email, "matches", len(matches))

	return &models.SeedResult{
		UserEmail:    user.Email,
		MatchesCount: len(matches),
		SeededAt:     time.Now().UTC(),
	}, nil
}

func strPtr(s string) *string { return &s }

// demoMatches builds the demo catalog with dates relative to now so the
// month-window listing always has something to show. The Casablanca derby is
// pinned to next month to exercise the window cutoff.
func demoMatches(now time.Time) []models.Match {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 4)

	return []models.Match{
		{
			ID:               uuid.New().String(),
			HomeTeam:         "Raja Casablanca",
			AwayTeam:         "FAR Rabat",
			HomeTeamLogo:     "/logos/raja.png",
			AwayTeamLogo:     "/logos/far.png",
			Stadium:          "Stade Mohammed V",
			City:             "Casablanca",
			Date:             today.AddDate(0, 0, 2),
			Time:             "19:00",
			Price:            150,
			AvailableTickets: 25000,
			TotalTickets:     45000,
			Category:         "Botola Pro",
			Description:      strPtr("Choc du championnat entre le Raja et les FAR"),
			Weather:          strPtr("Ensoleillé"),
			Temperature:      strPtr("24°C"),
		},
		{
			ID:               uuid.New().String(),
			HomeTeam:         "Maroc",
			AwayTeam:         "Sénégal",
			HomeTeamLogo:     "/logos/maroc.png",
			AwayTeamLogo:     "/logos/senegal.png",
			Stadium:          "Complexe Sportif Prince Moulay Abdellah",
			City:             "Rabat",
			Date:             today.AddDate(0, 0, 5),
			Time:             "20:00",
			Price:            300,
			AvailableTickets: 40000,
			TotalTickets:     52000,
			Category:         "Match International",
			Description:      strPtr("Match amical international"),
			Weather:          strPtr("Dégagé"),
			Temperature:      strPtr("21°C"),
		},
		{
			ID:               uuid.New().String(),
			HomeTeam:         "AS FAR",
			AwayTeam:         "Maghreb de Fès",
			HomeTeamLogo:     "/logos/far.png",
			AwayTeamLogo:     "/logos/mas.png",
			Stadium:          "Stade Moulay Abdellah",
			City:             "Rabat",
			Date:             today.AddDate(0, 0, 9),
			Time:             "17:00",
			Price:            100,
			AvailableTickets: 15000,
			TotalTickets:     30000,
			Category:         "Botola Pro",
			Description:      strPtr("Rencontre de milieu de tableau"),
			Weather:          strPtr("Nuageux"),
			Temperature:      strPtr("19°C"),
		},
		{
			ID:               uuid.New().String(),
			HomeTeam:         "Wydad Casablanca",
			AwayTeam:         "Raja Casablanca",
			HomeTeamLogo:     "/logos/wydad.png",
			AwayTeamLogo:     "/logos/raja.png",
			Stadium:          "Stade Mohammed V",
			City:             "Casablanca",
			Date:             nextMonth,
			Time:             "21:00",
			Price:            500,
			AvailableTickets: 45000,
			TotalTickets:     45000,
			Category:         "Derby",
			Description:      strPtr("Le derby de Casablanca"),
			Weather:          strPtr("Ensoleillé"),
			Temperature:      strPtr("23°C"),
		},
	}
}
