package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/booking"
	"ticketfoot/internal/models"
)

// ListMatches handles GET /api/matches. The unfiltered listing is served from
// the Valkey cache when possible; query searches always hit the backend.
func (h *Handlers) ListMatches(c *gin.Context) {
	query := c.Query("query")
	ctx := c.Request.Context()

	if query == "" && h.valkey != nil {
		if raw, err := h.valkey.GetMatchesRaw(ctx); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
			return
		}
	}

	items, err := h.services.Matches.List(ctx, query)
	if err != nil {
		respondError(c, err)
		return
	}

	envelope := models.Envelope{Success: true, Data: items}
	if query == "" && h.valkey != nil {
		h.valkey.SetMatches(ctx, envelope)
	}

	c.JSON(http.StatusOK, envelope)
}

// ListSections handles GET /api/sections. The section layout is the same for
// every match today, but the matchId parameter is required so per-match
// inventory can slot in later without an API change.
func (h *Handlers) ListSections(c *gin.Context) {
	if c.Query("matchId") == "" {
		respondError(c, apperrors.Validation("matchId est requis"))
		return
	}

	sections := booking.Sections()
	items := make([]models.SectionItem, 0, len(sections))
	for _, s := range sections {
		items = append(items, models.SectionItem{
			ID:             s.ID,
			Name:           s.Name,
			Price:          s.Price,
			AvailableSeats: s.AvailableSeats,
			TotalSeats:     s.TotalSeats,
		})
	}

	respondData(c, http.StatusOK, items)
}
