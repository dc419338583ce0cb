package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tigercart/internal/server/http/dto"
	"github.com/polkiloo/tigercart/internal/usecase"
)

// RatingHandler submits and reads ratings.
type RatingHandler struct {
	facade RatingFacade
	logger *slog.Logger
}

// NewRatingHandler constructs RatingHandler.
func NewRatingHandler(facade RatingFacade, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{facade: facade, logger: logger}
}

// Submit handles POST /api/ratings.
func (h *RatingHandler) Submit(c *gin.Context) {
	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	order, err := h.facade.SubmitRating(c.Request.Context(), usecase.RatingInput{
		OrderID:     req.OrderID,
		RaterID:     CurrentUserID(c),
		RaterRole:   req.RaterRole,
		RatedUserID: req.RatedUserID,
		Rating:      req.Rating,
	})
	if err != nil {
		respondError(c, h.logger, "submit rating", err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// User handles GET /api/users/:id/ratings.
func (h *RatingHandler) User(c *gin.Context) {
	summary, err := h.facade.Ratings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "user ratings", err)
		return
	}
	c.JSON(http.StatusOK, toRatingsResponse(summary))
}

func toRatingsResponse(s *usecase.RatingSummary) dto.RatingsResponse {
	return dto.RatingsResponse{
		UserID:    s.UserID,
		Shopper:   toRoleRatingResponse(s.Shopper),
		Deliverer: toRoleRatingResponse(s.Deliverer),
	}
}
