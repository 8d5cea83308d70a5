package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/models"
)

// Login handles POST /api/login.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	profile, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, profile)
}

// Session handles POST /api/session: validates a token and returns the
// profile so the front end can restore state after a reload.
func (h *Handlers) Session(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	profile, err := h.services.Auth.Session(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, profile)
}

// Logout handles POST /api/logout by revoking the session token.
func (h *Handlers) Logout(c *gin.Context) {
	var req models.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), req.Token); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, nil, "déconnexion réussie")
}

// Profile handles GET /api/user?token=.
func (h *Handlers) Profile(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondError(c, apperrors.Validation("token est requis"))
		return
	}

	profile, err := h.services.Auth.Profile(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, profile)
}
