package models

import "time"

// NATS subjects.
const (
	EventReservationCreated = "reservation.created"
	EventPaymentRecorded    = "payment.recorded"
)

// ReservationCreatedEvent carries a full snapshot of the reservation, the
// match and the user so the notification consumer can build the confirmation
// email without touching the database.
type ReservationCreatedEvent struct {
	ReservationID  string    `json:"reservation_id"`
	UserName       string    `json:"user_name"`
	UserEmail      string    `json:"user_email"`
	HomeTeam       string    `json:"home_team"`
	AwayTeam       string    `json:"away_team"`
	Stadium        string    `json:"stadium"`
	City           string    `json:"city"`
	MatchDate      string    `json:"match_date"`
	MatchTime      string    `json:"match_time"`
	Category       string    `json:"category"`
	TicketQuantity int       `json:"ticket_quantity"`
	TotalPrice     float64   `json:"total_price"`
	SelectedSeats  string    `json:"selected_seats"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

// PaymentRecordedEvent is published after a gateway notification is stored.
type PaymentRecordedEvent struct {
	PaymentRef    string    `json:"payment_ref"`
	OrderRef      string    `json:"order_ref"`
	ReservationID *string   `json:"reservation_id"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}
