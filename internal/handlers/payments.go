package handlers

import (
	"github.com/gin-gonic/gin"

	"ticketfoot/internal/models"
)

// PaymentNotification handles POST /api/payments/notifications, the webhook
// the payment gateway calls after processing an order.
func (h *Handlers) PaymentNotification(c *gin.Context) {
	var notification models.PaymentNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		respondBindError(c)
		return
	}

	if err := h.services.Payments.Record(c.Request.Context(), &notification); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, nil, "notification enregistrée")
}
