package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tigercart/internal/server/http/dto"
)

// DeliveryHandler serves the deliverer dashboard.
type DeliveryHandler struct {
	facade DeliveryFacade
	logger *slog.Logger
}

// NewDeliveryHandler constructs DeliveryHandler.
func NewDeliveryHandler(facade DeliveryFacade, logger *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{facade: facade, logger: logger}
}

// List handles GET /api/deliveries.
func (h *DeliveryHandler) List(c *gin.Context) {
	d, err := h.facade.Deliveries(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "list deliveries", err)
		return
	}
	c.JSON(http.StatusOK, dto.DeliveriesResponse{
		Available: toOrderResponses(d.Available),
		Mine:      toOrderResponses(d.Mine),
	})
}

// Claim handles POST /api/deliveries/:id/claim.
func (h *DeliveryHandler) Claim(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := h.facade.ClaimDelivery(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "claim delivery", err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Decline handles POST /api/deliveries/:id/decline.
func (h *DeliveryHandler) Decline(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := h.facade.DeclineDelivery(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "decline delivery", err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Checklist handles POST /api/deliveries/:id/checklist.
func (h *DeliveryHandler) Checklist(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	var req dto.ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	order, err := h.facade.UpdateChecklist(c.Request.Context(), id, CurrentUserID(c), req.Step, *req.Checked)
	if err != nil {
		respondError(c, h.logger, "update checklist", err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
