package repository

import (
	"context"
	"errors"

	"ticketfoot/internal/database"
)

// Sentinel errors surfaced by repositories; the service layer maps them to
// the API error taxonomy.
var (
	ErrMatchNotFound       = errors.New("match not found")
	ErrInsufficientTickets = errors.New("insufficient tickets available")
)

type Repositories struct {
	Matches      *MatchRepository
	Reservations *ReservationRepository
	Users        *UserRepository
	Payments     *PaymentRepository

	db *database.DB
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Matches:      NewMatchRepository(db),
		Reservations: NewReservationRepository(db),
		Users:        NewUserRepository(db),
		Payments:     NewPaymentRepository(db),
		db:           db,
	}
}

// TruncateAll wipes every table. Used only by the destructive reseed.
func (r *Repositories) TruncateAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`TRUNCATE payments, reservations, matches, users RESTART IDENTITY CASCADE`)
	return err
}
