package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tigercart/internal/server/http/dto"
)

// CartHandler manages cart endpoints.
type CartHandler struct {
	facade CartFacade
	logger *slog.Logger
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade, logger *slog.Logger) *CartHandler {
	return &CartHandler{facade: facade, logger: logger}
}

// View handles GET /api/cart.
func (h *CartHandler) View(c *gin.Context) {
	view, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "view cart", err)
		return
	}
	lines := make([]dto.CartLineResponse, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, dto.CartLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}
	c.JSON(http.StatusOK, dto.CartResponse{
		Items:          lines,
		Missing:        view.Missing,
		Count:          view.Count,
		TotalsResponse: toTotalsResponse(view.Totals),
	})
}

// Count handles GET /api/cart/count.
func (h *CartHandler) Count(c *gin.Context) {
	n, err := h.facade.CartCount(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "count cart", err)
		return
	}
	c.JSON(http.StatusOK, dto.CartCountResponse{Count: n})
}

// Add handles POST /api/cart/items/:item_id.
func (h *CartHandler) Add(c *gin.Context) {
	itemID := c.Param("item_id")
	qty, err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), itemID)
	if err != nil {
		respondError(c, h.logger, "add to cart", err)
		return
	}
	c.JSON(http.StatusOK, dto.CartQuantityResponse{Success: true, ItemID: itemID, Quantity: qty})
}

// Update handles PUT /api/cart/items/:item_id.
func (h *CartHandler) Update(c *gin.Context) {
	var req dto.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	itemID := c.Param("item_id")
	if err := h.facade.UpdateCartItem(c.Request.Context(), CurrentUserID(c), itemID, req.Quantity); err != nil {
		respondError(c, h.logger, "update cart", err)
		return
	}
	c.JSON(http.StatusOK, dto.CartQuantityResponse{Success: true, ItemID: itemID, Quantity: req.Quantity})
}

// Adjust handles POST /api/cart/items/:item_id/:action.
func (h *CartHandler) Adjust(c *gin.Context) {
	itemID := c.Param("item_id")
	qty, err := h.facade.AdjustCartItem(c.Request.Context(), CurrentUserID(c), itemID, c.Param("action"))
	if err != nil {
		respondError(c, h.logger, "adjust cart", err)
		return
	}
	c.JSON(http.StatusOK, dto.CartQuantityResponse{Success: true, ItemID: itemID, Quantity: qty})
}

// Remove handles DELETE /api/cart/items/:item_id.
func (h *CartHandler) Remove(c *gin.Context) {
	if err := h.facade.RemoveFromCart(c.Request.Context(), CurrentUserID(c), c.Param("item_id")); err != nil {
		respondError(c, h.logger, "remove from cart", err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true})
}
