// Package handlers contains the Gin HTTP handlers. They stay thin: bind and
// validate the request, call a service, wrap the result in the response
// envelope.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/cache"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/models"
	"ticketfoot/internal/service"
)

type Handlers struct {
	services *service.Services
	valkey   *cache.ValkeyClient
}

func New(services *service.Services, valkey *cache.ValkeyClient) *Handlers {
	return &Handlers{
		services: services,
		valkey:   valkey,
	}
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, models.Envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, models.Envelope{Success: true, Data: data, Message: message})
}

// respondError maps a service error to its HTTP status and stable code. The
// full error chain goes to the log, only the tagged message to the client.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).Error("Request failed", "error", err)
	}
	c.JSON(status, models.Envelope{
		Success: false,
		Error:   apperrors.MessageOf(err),
		Code:    string(apperrors.KindOf(err)),
	})
}

// respondBindError handles Gin binding failures: malformed JSON, unknown
// fields and missing required fields all come back as one validation error.
func respondBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.Envelope{
		Success: false,
		Error:   "données de requête invalides",
		Code:    string(apperrors.KindValidation),
	})
}
