package handlers

import (
	"github.com/gin-gonic/gin"
)

// Migrate handles POST /api/migrate: drops all data and reseeds the demo
// account and catalog. The response reports what was seeded but never the
// demo credentials.
func (h *Handlers) Migrate(c *gin.Context) {
	result, err := h.services.Seed.Run(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, result, "base de données initialisée")
}
