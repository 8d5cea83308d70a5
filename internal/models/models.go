package models

import "time"

// Envelope is the JSON body shape shared by every API response. Code carries
// a stable machine-readable error code so callers can branch without parsing
// human-readable strings.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// MatchItem is a match as listed by GET /api/matches.
type MatchItem struct {
	ID               string  `json:"id"`
	HomeTeam         string  `json:"homeTeam"`
	AwayTeam         string  `json:"awayTeam"`
	HomeTeamLogo     string  `json:"homeTeamLogo"`
	AwayTeamLogo     string  `json:"awayTeamLogo"`
	Stadium          string  `json:"stadium"`
	City             string  `json:"city"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Price            float64 `json:"price"`
	AvailableTickets int     `json:"availableTickets"`
	TotalTickets     int     `json:"totalTickets"`
	Category         string  `json:"category"`
	Description      *string `json:"description"`
	Weather          *string `json:"weather"`
	Temperature      *string `json:"temperature"`
}

// MatchItemFrom converts a Match entity to its list representation.
func MatchItemFrom(m Match) MatchItem {
	return MatchItem{
		ID:               m.ID,
		HomeTeam:         m.HomeTeam,
		AwayTeam:         m.AwayTeam,
		HomeTeamLogo:     m.HomeTeamLogo,
		AwayTeamLogo:     m.AwayTeamLogo,
		Stadium:          m.Stadium,
		City:             m.City,
		Date:             m.Date.Format("2006-01-02"),
		Time:             m.Time,
		Price:            m.Price,
		AvailableTickets: m.AvailableTickets,
		TotalTickets:     m.TotalTickets,
		Category:         m.Category,
		Description:      m.Description,
		Weather:          m.Weather,
		Temperature:      m.Temperature,
	}
}

// ReservationItem is a reservation joined with its match, as returned by
// GET /api/reservations.
type ReservationItem struct {
	ID              string  `json:"id"`
	MatchID         string  `json:"matchId"`
	HomeTeam        string  `json:"homeTeam"`
	AwayTeam        string  `json:"awayTeam"`
	HomeTeamLogo    string  `json:"homeTeamLogo"`
	AwayTeamLogo    string  `json:"awayTeamLogo"`
	Stadium         string  `json:"stadium"`
	City            string  `json:"city"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	TicketQuantity  int     `json:"ticketQuantity"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	Category        string  `json:"category"`
	ReservationDate string  `json:"reservation_date"`
	SelectedSeats   string  `json:"selectedSeats"`
}

// UserProfile is the public view of a user. Token is only set by login and
// session responses.
type UserProfile struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Avatar      *string `json:"avatar"`
	MemberSince string  `json:"memberSince"`
	Token       string  `json:"token,omitempty"`
}

// ProfileFrom builds a UserProfile from a User entity.
func ProfileFrom(u *User) UserProfile {
	return UserProfile{
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Avatar:      u.Avatar,
		MemberSince: u.MemberSince.Format("2006-01-02"),
	}
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionRequest is the body of POST /api/session.
type SessionRequest struct {
	Token string `json:"token" binding:"required"`
}

// LogoutRequest is the body of POST /api/logout.
type LogoutRequest struct {
	Token string `json:"token" binding:"required"`
}

// CreateReservationRequest is the body of POST /api/reservation. When
// SectionID names a seat section the seats are picked server-side and
// SelectedSeats is ignored.
type CreateReservationRequest struct {
	Token          string `json:"token" binding:"required"`
	MatchID        string `json:"matchId" binding:"required"`
	TicketQuantity int    `json:"ticketQuantity" binding:"required,min=1"`
	SectionID      string `json:"sectionId"`
	SelectedSeats  string `json:"selectedSeats"`
}

// CreateReservationResponse is the data of a successful reservation.
type CreateReservationResponse struct {
	ReservationID string `json:"reservationId"`
}

// UpdateReservationRequest is the body of PUT /api/reservation.
type UpdateReservationRequest struct {
	ReservationID string `json:"reservationId" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// PaymentNotification is the payload posted by the payment gateway to
// POST /api/payments/notifications.
type PaymentNotification struct {
	PaymentID string  `json:"paymentId" binding:"required"`
	OrderID   string  `json:"orderId" binding:"required"`
	Status    string  `json:"status" binding:"required"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Timestamp string  `json:"timestamp"`
}

// SeedResult is the data of POST /api/migrate.
type SeedResult struct {
	UserEmail    string    `json:"userEmail"`
	MatchesCount int       `json:"matchesCount"`
	SeededAt     time.Time `json:"seededAt"`
}

// SectionItem is a seat section as returned by GET /api/sections.
type SectionItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"availableSeats"`
	TotalSeats     int     `json:"totalSeats"`
}
