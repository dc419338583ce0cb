package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tigercart/internal/server/http/dto"
	"github.com/polkiloo/tigercart/internal/usecase"
)

// OrderHandler manages shopper order endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), req.DeliveryLocation)
	if err != nil {
		respondError(c, h.logger, "place order", err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Orders: toOrderResponses(orders)})
}

// Current handles GET /api/orders/current.
func (h *OrderHandler) Current(c *gin.Context) {
	order, err := h.facade.CurrentOrder(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "current order", err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	details, err := h.facade.Order(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "get order", err)
		return
	}
	c.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// Timeline handles GET /api/orders/:id/timeline.
func (h *OrderHandler) Timeline(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := h.facade.OrderTimeline(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "order timeline", err)
		return
	}
	c.JSON(http.StatusOK, dto.TimelineResponse{
		OrderID:   order.ID,
		Status:    string(order.Status),
		Timeline:  order.Timeline,
		Delivered: order.Timeline.Delivered(),
	})
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := h.facade.CancelOrder(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "cancel order", err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toOrderDetailsResponse(d *usecase.OrderDetails) dto.OrderDetailsResponse {
	resp := dto.OrderDetailsResponse{
		Order:  toOrderResponse(d.Order),
		Viewer: d.Viewer,
	}
	if cp := d.Counterparty; cp != nil {
		resp.Counterparty = &dto.CounterpartyResponse{
			UserID:      cp.UserID,
			VenmoHandle: cp.VenmoHandle,
			PhoneNumber: cp.PhoneNumber,
			Rating:      toRoleRatingResponse(cp.Rating),
		}
	}
	return resp
}
