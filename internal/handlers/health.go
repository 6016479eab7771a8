package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Catalog string `json:"catalog"`
}

// HealthCheck reports liveness and whether the catalog file is
// readable.
func (h *Handler) HealthCheck(c *gin.Context) {
	response := HealthResponse{Status: "ok"}

	if _, err := h.catalog.All(); err != nil {
		response.Catalog = "unavailable"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	response.Catalog = "ok"

	c.JSON(http.StatusOK, response)
}
