package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tigercart/internal/server/http/dto"
)

// CatalogHandler serves items and categories.
type CatalogHandler struct {
	facade CatalogFacade
	logger *slog.Logger
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{facade: facade, logger: logger}
}

// Items handles GET /api/items.
func (h *CatalogHandler) Items(c *gin.Context) {
	items, err := h.facade.Items(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "list items", err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemsResponse{Items: toCatalogResponses(items)})
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// CategoryItems handles GET /api/categories/:category/items.
func (h *CatalogHandler) CategoryItems(c *gin.Context) {
	items, err := h.facade.CategoryItems(c.Request.Context(), CurrentUserID(c), c.Param("category"))
	if err != nil {
		respondError(c, h.logger, "list category items", err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemsResponse{Items: toCatalogResponses(items)})
}
