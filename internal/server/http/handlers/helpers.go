package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/server/http/dto"
	"github.com/polkiloo/tigercart/internal/server/http/middleware"
	"github.com/polkiloo/tigercart/internal/usecase"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDContextKey)
}

func statusOf(err error) int {
	switch domainErrors.KindOf(err) {
	case domainErrors.KindValidation:
		return http.StatusBadRequest
	case domainErrors.KindAuthorization:
		return http.StatusForbidden
	case domainErrors.KindNotFound:
		return http.StatusNotFound
	case domainErrors.KindState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the failure envelope. Internal failures are logged and
// their details kept out of the response.
func respondError(c *gin.Context, logger *slog.Logger, op string, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("op", op),
			slog.String("request_id", c.GetString(middleware.RequestIDContextKey)),
			slog.String("error", err.Error()),
		)
		if !errors.Is(err, domainErrors.ErrFavoritesUnavailable) {
			msg = "Internal server error"
		}
	}
	c.JSON(status, dto.ErrorResponse{Success: false, Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: msg})
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid order id")
		return 0, false
	}
	return id, true
}

func toTotalsResponse(t model.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{Subtotal: t.Subtotal, DeliveryFee: t.DeliveryFee, Total: t.Total}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	totals := order.Totals()
	cart := make(map[string]model.CartLine, len(order.Cart))
	for id, line := range order.Cart {
		cart[id] = line
	}
	return dto.OrderResponse{
		ID:             order.ID,
		Status:         string(order.Status),
		UserID:         order.UserID,
		ClaimedBy:      order.ClaimedBy,
		Cart:           cart,
		TotalItems:     order.TotalItems,
		Location:       order.Location,
		Timeline:       order.Timeline,
		ShopperRated:   order.ShopperRated,
		DelivererRated: order.DelivererRated,
		CreatedAt:      order.CreatedAt,
		Earnings:       totals.Earnings(),
		TotalsResponse: toTotalsResponse(totals),
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	return resp
}

func toRoleRatingResponse(r usecase.RoleRating) dto.RoleRatingResponse {
	resp := dto.RoleRatingResponse{Count: r.Count}
	if r.Rated {
		avg := r.Average
		resp.Average = &avg
	}
	return resp
}

func toItemResponse(item model.Item, favorite bool) dto.ItemResponse {
	return dto.ItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Category:   item.Category,
		IsFavorite: favorite,
	}
}

func toCatalogResponses(items []usecase.CatalogItem) []dto.ItemResponse {
	resp := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toItemResponse(it.Item, it.IsFavorite))
	}
	return resp
}

func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:          u.ID,
		VenmoHandle:     u.VenmoHandle,
		PhoneNumber:     u.PhoneNumber,
		ProfileComplete: u.ProfileComplete(),
	}
}
