package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ticketfoot/internal/models"
)

func TestRenderConfirmation(t *testing.T) {
	event := models.ReservationCreatedEvent{
		ReservationID:  "res-1",
		UserName:       "Boba Kamate",
		UserEmail:      "boba@example.com",
		HomeTeam:       "Raja Casablanca",
		AwayTeam:       "Wydad Casablanca",
		Stadium:        "Stade Mohammed V",
		City:           "Casablanca",
		MatchDate:      "2026-09-15",
		MatchTime:      "20:00:00",
		Category:       "Botola Pro",
		TicketQuantity: 2,
		TotalPrice:     300,
		Status:         models.StatusConfirmed,
	}

	body, err := RenderConfirmation(event)
	assert.NoError(t, err)

	assert.Contains(t, body, "Bonjour Boba Kamate")
	assert.Contains(t, body, "Raja Casablanca vs Wydad Casablanca")
	assert.Contains(t, body, "Stade Mohammed V - Casablanca")
	assert.Contains(t, body, "2026-09-15")
	assert.Contains(t, body, "300 MAD")
	assert.Contains(t, body, "confirmé")
}

func TestBuildMessageHeaders(t *testing.T) {
	msg := string(buildMessage("TicketFoot", "noreply@ticketfoot.ma", "fan@example.com", "Sujet", "<p>corps</p>"))

	assert.Contains(t, msg, "From: TicketFoot <noreply@ticketfoot.ma>\r\n")
	assert.Contains(t, msg, "To: <fan@example.com>\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.Contains(t, msg, "\r\n\r\n<p>corps</p>")
}
