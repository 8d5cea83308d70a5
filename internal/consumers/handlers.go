package consumers

import (
	"encoding/json"

	"github.com/nats-io/stan.go"

	"ticketfoot/internal/logger"
	"ticketfoot/internal/metrics"
	"ticketfoot/internal/models"
)

// HandleReservationCreated sends the confirmation email for a new booking.
// The event carries a full snapshot, so no database round trip is needed and
// the email reflects the state at booking time.
func (s *ConsumerService) HandleReservationCreated(m *stan.Msg) {
	log := logger.Get()

	var event models.ReservationCreatedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		log.Error("Failed to decode reservation created event", "error", err)
		// Malformed payloads are acked: redelivery cannot fix them.
		m.Ack()
		return
	}

	if err := s.mailer.SendReservationConfirmation(event); err != nil {
		metrics.EmailsFailed.Inc()
		log.Error("Failed to send confirmation email",
			"reservation_id", event.ReservationID,
			"user_email", event.UserEmail,
			"error", err)
		// Ack anyway: email is best effort, the booking already stands.
		m.Ack()
		return
	}

	metrics.EmailsSent.Inc()
	log.Info("Confirmation email sent",
		"reservation_id", event.ReservationID,
		"user_email", event.UserEmail)
	m.Ack()
}

// HandlePaymentRecorded logs gateway notifications for the audit trail.
func (s *ConsumerService) HandlePaymentRecorded(m *stan.Msg) {
	log := logger.Get()

	var event models.PaymentRecordedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		log.Error("Failed to decode payment recorded event", "error", err)
		m.Ack()
		return
	}

	log.Info("Payment recorded",
		"payment_ref", event.PaymentRef,
		"order_ref", event.OrderRef,
		"status", event.Status,
		"amount", event.Amount)
	m.Ack()
}
