package service

import (
	"ticketfoot/internal/auth"
	"ticketfoot/internal/cache"
	"ticketfoot/internal/config"
	"ticketfoot/internal/messaging"
	"ticketfoot/internal/repository"
	"ticketfoot/internal/search"
)

type Services struct {
	Matches      *MatchService
	Reservations *ReservationService
	Auth         *AuthService
	Payments     *PaymentService
	Seed         *SeedService
}

// NewServices wires the service layer. natsClient, esClient and valkeyClient
// may be nil; the features they back degrade gracefully.
func NewServices(
	cfg *config.Config,
	repos *repository.Repositories,
	natsClient *messaging.NATSClient,
	esClient *search.ElasticsearchClient,
	valkeyClient *cache.ValkeyClient,
) *Services {
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := NewAuthService(repos.Users, tokenManager, valkeyClient)
	matchService := NewMatchService(repos.Matches, esClient)
	reservationService := NewReservationService(repos.Reservations, repos.Matches, natsClient, valkeyClient)
	paymentService := NewPaymentService(repos.Payments, repos.Reservations, natsClient)
	seedService := NewSeedService(repos, esClient, valkeyClient, cfg.Auth.BcryptCost)

	return &Services{
		Matches:      matchService,
		Reservations: reservationService,
		Auth:         authService,
		Payments:     paymentService,
		Seed:         seedService,
	}
}
