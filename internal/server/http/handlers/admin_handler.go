package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tigercart/internal/server/http/dto"
	"github.com/polkiloo/tigercart/internal/server/http/middleware"
)

// AdminHandler exposes operator actions and the health probe.
type AdminHandler struct {
	admin  AdminFacade
	health HealthFacade
	logger *slog.Logger
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin AdminFacade, health HealthFacade, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, health: health, logger: logger}
}

// ResetOrders handles POST /api/admin/orders/reset.
func (h *AdminHandler) ResetOrders(c *gin.Context) {
	actor := "admin"
	if id := c.GetString(middleware.RequestIDContextKey); id != "" {
		actor = "admin:" + id
	}
	n, err := h.admin.ResetOrders(c.Request.Context(), actor)
	if err != nil {
		respondError(c, h.logger, "reset orders", err)
		return
	}
	c.JSON(http.StatusOK, dto.ResetResponse{Success: true, Deleted: n})
}

// Health handles GET /health.
func (h *AdminHandler) Health(c *gin.Context) {
	if err := h.health.Health(c.Request.Context()); err != nil {
		h.logger.Error("health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{Success: false, Message: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "ok"})
}
