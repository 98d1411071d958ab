package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/services"
)

// DashboardHandler serves the reporting endpoints.
type DashboardHandler struct {
	Service *services.DashboardService
	Log     *zap.Logger
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats()
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Activities handles GET /dashboard/activities.
func (h *DashboardHandler) Activities(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	activities, err := h.Service.Activities(limit)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
