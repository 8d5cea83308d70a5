package models

import (
	"time"
)

// Reservation status values. French on the wire for compatibility with the
// existing front end.
const (
	StatusConfirmed = "confirmé"
	StatusPending   = "en attente"
	StatusCancelled = "annulé"
)

// Match represents a scheduled football match with its ticket inventory.
type Match struct {
	ID               string    `json:"id" db:"id"`
	HomeTeam         string    `json:"homeTeam" db:"home_team"`
	AwayTeam         string    `json:"awayTeam" db:"away_team"`
	HomeTeamLogo     string    `json:"homeTeamLogo" db:"home_team_logo"`
	AwayTeamLogo     string    `json:"awayTeamLogo" db:"away_team_logo"`
	Stadium          string    `json:"stadium" db:"stadium"`
	City             string    `json:"city" db:"city"`
	Date             time.Time `json:"-" db:"match_date"`
	Time             string    `json:"time" db:"match_time"`
	Price            float64   `json:"price" db:"price"`
	AvailableTickets int       `json:"availableTickets" db:"available_tickets"`
	TotalTickets     int       `json:"totalTickets" db:"total_tickets"`
	Category         string    `json:"category" db:"category"`
	Description      *string   `json:"description" db:"description"`
	Weather          *string   `json:"weather" db:"weather"`
	Temperature      *string   `json:"temperature" db:"temperature"`
	CreatedAt        time.Time `json:"-" db:"created_at"`
	UpdatedAt        time.Time `json:"-" db:"updated_at"`
}

// User represents an account in the system.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	Avatar       *string   `json:"avatar" db:"avatar"`
	MemberSince  time.Time `json:"-" db:"member_since"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

// Reservation represents a booked block of tickets for one match. The total
// price is snapshotted at creation time and never recomputed.
type Reservation struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"-" db:"user_id"`
	MatchID        string    `json:"matchId" db:"match_id"`
	TicketQuantity int       `json:"ticketQuantity" db:"ticket_quantity"`
	TotalPrice     float64   `json:"totalPrice" db:"total_price"`
	Status         string    `json:"status" db:"status"`
	SelectedSeats  string    `json:"selectedSeats" db:"selected_seats"`
	CreatedAt      time.Time `json:"reservation_date" db:"created_at"`
}

// Payment represents a payment-gateway notification recorded for auditing.
type Payment struct {
	ID            int64     `json:"id" db:"id"`
	ReservationID *string   `json:"reservation_id" db:"reservation_id"`
	PaymentRef    string    `json:"payment_ref" db:"payment_ref"`
	OrderRef      string    `json:"order_ref" db:"order_ref"`
	Status        string    `json:"status" db:"status"`
	Amount        float64   `json:"amount" db:"amount"`
	Currency      string    `json:"currency" db:"currency"`
	Payload       []byte    `json:"-" db:"payload"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ValidStatus reports whether s is one of the allowed reservation statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	}
	return false
}
