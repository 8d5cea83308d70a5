package repository

import (
	"context"

	"ticketfoot/internal/database"
	"ticketfoot/internal/models"
)

type PaymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (reservation_id, payment_ref, order_ref, status, amount, currency, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		payment.ReservationID,
		payment.PaymentRef,
		payment.OrderRef,
		payment.Status,
		payment.Amount,
		payment.Currency,
		payment.Payload,
	).Scan(&payment.ID, &payment.CreatedAt)
}
