package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/booking"
	"ticketfoot/internal/cache"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/messaging"
	"ticketfoot/internal/metrics"
	"ticketfoot/internal/models"
	"ticketfoot/internal/repository"
)

type ReservationService struct {
	reservationRepo *repository.ReservationRepository
	matchRepo       *repository.MatchRepository
	natsClient      *messaging.NATSClient
	valkey          *cache.ValkeyClient
}

func NewReservationService(
	reservationRepo *repository.ReservationRepository,
	matchRepo *repository.MatchRepository,
	natsClient *messaging.NATSClient,
	valkey *cache.ValkeyClient,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		matchRepo:       matchRepo,
		natsClient:      natsClient,
		valkey:          valkey,
	}
}

// CreateResult reports a committed booking. EmailQueued is false when the
// confirmation event could not be published; the booking itself stands.
type CreateResult struct {
	ReservationID string
	EmailQueued   bool
}

// Create books tickets for the user. The availability check and decrement
// are one conditional update inside a transaction, so either the reservation
// and the decrement both commit or nothing does.
func (s *ReservationService) Create(ctx context.Context, user *models.User, matchID string, quantity int, sectionID, selectedSeats string) (*CreateResult, error) {
	if quantity < 1 {
		metrics.ReservationsRejected.WithLabelValues("validation").Inc()
		return nil, apperrors.Validation("données de réservation invalides")
	}

	seats, err := resolveSeats(sectionID, quantity, selectedSeats)
	if err != nil {
		metrics.ReservationsRejected.WithLabelValues("validation").Inc()
		return nil, err
	}

	res := &models.Reservation{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		MatchID:        matchID,
		TicketQuantity: quantity,
		SelectedSeats:  seats,
	}

	err = s.reservationRepo.CreateConfirmed(ctx, res)
	if errors.Is(err, repository.ErrMatchNotFound) {
		metrics.ReservationsRejected.WithLabelValues("match_not_found").Inc()
		return nil, apperrors.NotFound("match non trouvé")
	}
	if errors.Is(err, repository.ErrInsufficientTickets) {
		metrics.ReservationsRejected.WithLabelValues("capacity").Inc()
		return nil, apperrors.Capacity("billets insuffisants disponibles")
	}
	if err != nil {
		metrics.ReservationsRejected.WithLabelValues("internal").Inc()
		return nil, apperrors.Internal("failed to create reservation", err)
	}

	metrics.ReservationsCreated.Inc()

	if s.valkey != nil {
		s.valkey.InvalidateMatches(ctx)
	}

	return &CreateResult{
		ReservationID: res.ID,
		EmailQueued:   s.publishCreated(ctx, res, user),
	}, nil
}

// resolveSeats decides what to store in selected_seats. A named section gets
// its seats picked and compressed server-side; otherwise the client's
// pre-formatted string is kept for older clients.
func resolveSeats(sectionID string, quantity int, selectedSeats string) (string, error) {
	if sectionID == "" {
		return selectedSeats, nil
	}

	section, ok := booking.SectionByID(sectionID)
	if !ok {
		return "", apperrors.Validation("section invalide")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return booking.CompressSeatLabels(booking.GenerateSeats(section, quantity, rng)), nil
}

// publishCreated emits the reservation.created snapshot for the notification
// consumer. Publish failure only degrades the response message.
func (s *ReservationService) publishCreated(ctx context.Context, res *models.Reservation, user *models.User) bool {
	if s.natsClient == nil {
		return false
	}

	match, err := s.matchRepo.GetByID(ctx, res.MatchID)
	if err != nil || match == nil {
		logger.WithContext(ctx).Error("Failed to load match for confirmation event",
			"match_id", res.MatchID, "error", err)
		metrics.EventPublishFailures.WithLabelValues(models.EventReservationCreated).Inc()
		return false
	}

	event := models.ReservationCreatedEvent{
		ReservationID:  res.ID,
		UserName:       user.Name,
		UserEmail:      user.Email,
		HomeTeam:       match.HomeTeam,
		AwayTeam:       match.AwayTeam,
		Stadium:        match.Stadium,
		City:           match.City,
		MatchDate:      match.Date.Format("2006-01-02"),
		MatchTime:      match.Time,
		Category:       match.Category,
		TicketQuantity: res.TicketQuantity,
		TotalPrice:     res.TotalPrice,
		SelectedSeats:  res.SelectedSeats,
		Status:         res.Status,
		Timestamp:      time.Now().UTC(),
	}

	if err := s.natsClient.Publish(models.EventReservationCreated, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish reservation created event",
			"reservation_id", res.ID, "error", err)
		metrics.EventPublishFailures.WithLabelValues(models.EventReservationCreated).Inc()
		return false
	}

	metrics.EventsPublished.WithLabelValues(models.EventReservationCreated).Inc()
	return true
}

// List returns the user's reservations joined with match details.
func (s *ReservationService) List(ctx context.Context, userID string) ([]models.ReservationItem, error) {
	items, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list reservations", err)
	}
	return items, nil
}

// UpdateStatus overwrites a reservation's status with any allowed value.
// There is deliberately no transition validation: the caller decides.
func (s *ReservationService) UpdateStatus(ctx context.Context, reservationID, status string) error {
	if !models.ValidStatus(status) {
		return apperrors.Validation("statut invalide")
	}

	found, err := s.reservationRepo.UpdateStatus(ctx, reservationID, status)
	if err != nil {
		return apperrors.Internal("failed to update reservation", err)
	}
	if !found {
		return apperrors.NotFound("réservation non trouvée")
	}

	return nil
}
