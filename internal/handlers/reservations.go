package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/models"
)

// ListReservations handles GET /api/reservations?token=.
func (h *Handlers) ListReservations(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondError(c, apperrors.Validation("token est requis"))
		return
	}

	ctx := c.Request.Context()

	user, err := h.services.Auth.ResolveUser(ctx, token)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.services.Reservations.List(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, items)
}

// CreateReservation handles POST /api/reservation. The booking either fully
// commits or fails; a failed confirmation email only changes the message.
func (h *Handlers) CreateReservation(c *gin.Context) {
	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	ctx := c.Request.Context()

	user, err := h.services.Auth.ResolveUser(ctx, req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.services.Reservations.Create(ctx, user, req.MatchID, req.TicketQuantity, req.SectionID, req.SelectedSeats)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "réservation confirmée, un email de confirmation vous a été envoyé"
	if !result.EmailQueued {
		message = "réservation confirmée, mais l'email de confirmation n'a pas pu être envoyé"
	}

	respondMessage(c, models.CreateReservationResponse{ReservationID: result.ReservationID}, message)
}

// UpdateReservation handles PUT /api/reservation.
func (h *Handlers) UpdateReservation(c *gin.Context) {
	var req models.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	if err := h.services.Reservations.UpdateStatus(c.Request.Context(), req.ReservationID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, nil, "réservation mise à jour")
}
