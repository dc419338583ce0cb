package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/server/http/dto"
	"github.com/polkiloo/tigercart/internal/usecase"
)

// ProfileHandler serves the profile page and favorites.
type ProfileHandler struct {
	profiles  ProfileFacade
	favorites FavoriteFacade
	logger    *slog.Logger
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(profiles ProfileFacade, favorites FavoriteFacade, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, favorites: favorites, logger: logger}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profiles.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "get profile", err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(p))
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	usr, err := h.profiles.UpdateProfile(c.Request.Context(), CurrentUserID(c), model.Contact{
		VenmoHandle: req.VenmoHandle,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, h.logger, "update profile", err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*usr))
}

// Favorites handles GET /api/favorites.
func (h *ProfileHandler) Favorites(c *gin.Context) {
	items, err := h.favorites.Favorites(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "list favorites", err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemsResponse{Items: toFavoriteResponses(items)})
}

// AddFavorite handles POST /api/favorites/:item_id.
func (h *ProfileHandler) AddFavorite(c *gin.Context) {
	if err := h.favorites.AddFavorite(c.Request.Context(), CurrentUserID(c), c.Param("item_id")); err != nil {
		respondError(c, h.logger, "add favorite", err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "Added to favorites"})
}

// RemoveFavorite handles DELETE /api/favorites/:item_id.
func (h *ProfileHandler) RemoveFavorite(c *gin.Context) {
	if err := h.favorites.RemoveFavorite(c.Request.Context(), CurrentUserID(c), c.Param("item_id")); err != nil {
		respondError(c, h.logger, "remove favorite", err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "Removed from favorites"})
}

func toFavoriteResponses(items []model.Item) []dto.ItemResponse {
	resp := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toItemResponse(it, true))
	}
	return resp
}

func toProfileResponse(p *usecase.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserResponse: toUserResponse(p.User),
		Stats: dto.StatsResponse{
			TotalOrders: p.Stats.TotalOrders,
			TotalSpent:  p.Stats.TotalSpent,
			TotalItems:  p.Stats.TotalItems,
		},
		Orders:    toOrderResponses(p.Orders),
		Favorites: toFavoriteResponses(p.Favorites),
		Ratings: dto.RatingsResponse{
			UserID:    p.User.ID,
			Shopper:   toRoleRatingResponse(p.Shopper),
			Deliverer: toRoleRatingResponse(p.Deliverer),
		},
	}
}
