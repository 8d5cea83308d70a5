package service

import (
	"context"
	"encoding/json"
	"time"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/messaging"
	"ticketfoot/internal/metrics"
	"ticketfoot/internal/models"
	"ticketfoot/internal/repository"
)

type PaymentService struct {
	paymentRepo     *repository.PaymentRepository
	reservationRepo *repository.ReservationRepository
	natsClient      *messaging.NATSClient
}

func NewPaymentService(paymentRepo *repository.PaymentRepository, reservationRepo *repository.ReservationRepository, natsClient *messaging.NATSClient) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		natsClient:      natsClient,
	}
}

// Record stores a gateway notification. When the order reference matches a
// known reservation it is linked; unknown references are kept unlinked for
// auditing rather than rejected.
func (s *PaymentService) Record(ctx context.Context, notification *models.PaymentNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return apperrors.Internal("failed to encode notification", err)
	}

	payment := &models.Payment{
		PaymentRef: notification.PaymentID,
		OrderRef:   notification.OrderID,
		Status:     notification.Status,
		Amount:     notification.Amount,
		Currency:   notification.Currency,
		Payload:    payload,
	}
	if payment.Currency == "" {
		payment.Currency = "MAD"
	}

	reservation, err := s.reservationRepo.GetByID(ctx, notification.OrderID)
	if err == nil && reservation != nil {
		payment.ReservationID = &reservation.ID
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return apperrors.Internal("failed to record payment", err)
	}

	if s.natsClient != nil {
		event := models.PaymentRecordedEvent{
			PaymentRef:    payment.PaymentRef,
			OrderRef:      payment.OrderRef,
			ReservationID: payment.ReservationID,
			Status:        payment.Status,
			Amount:        payment.Amount,
			Timestamp:     time.Now().UTC(),
		}
		if err := s.natsClient.Publish(models.EventPaymentRecorded, event); err != nil {
			logger.WithContext(ctx).Error("Failed to publish payment recorded event",
				"payment_ref", payment.PaymentRef, "error", err)
			metrics.EventPublishFailures.WithLabelValues(models.EventPaymentRecorded).Inc()
		} else {
			metrics.EventsPublished.WithLabelValues(models.EventPaymentRecorded).Inc()
		}
	}

	return nil
}
