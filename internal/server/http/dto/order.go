package dto

import (
	"time"

	"github.com/polkiloo/tigercart/internal/domain/model"
)

// PlaceOrderRequest carries the delivery location of a new order.
type PlaceOrderRequest struct {
	DeliveryLocation string `json:"delivery_location"`
}

// ChecklistRequest toggles one timeline step.
type ChecklistRequest struct {
	Step    string `json:"step" binding:"required"`
	Checked *bool  `json:"checked" binding:"required"`
}

// OrderResponse describes an order with its price breakdown.
type OrderResponse struct {
	ID             int64                     `json:"id"`
	Status         string                    `json:"status"`
	UserID         string                    `json:"user_id"`
	ClaimedBy      string                    `json:"claimed_by,omitempty"`
	Cart           map[string]model.CartLine `json:"cart"`
	TotalItems     int                       `json:"total_items"`
	Location       string                    `json:"location"`
	Timeline       model.Timeline            `json:"timeline"`
	ShopperRated   bool                      `json:"shopper_rated"`
	DelivererRated bool                      `json:"deliverer_rated"`
	CreatedAt      time.Time                 `json:"timestamp"`
	Earnings       float64                   `json:"earnings"`
	TotalsResponse
}

// CounterpartyResponse is the other party's contact and rating.
type CounterpartyResponse struct {
	UserID      string             `json:"user_id"`
	VenmoHandle string             `json:"venmo_handle,omitempty"`
	PhoneNumber string             `json:"phone_number,omitempty"`
	Rating      RoleRatingResponse `json:"rating"`
}

// OrderDetailsResponse is an order as seen by one participant.
type OrderDetailsResponse struct {
	Order        OrderResponse         `json:"order"`
	Viewer       string                `json:"viewer"`
	Counterparty *CounterpartyResponse `json:"counterparty,omitempty"`
}

// TimelineResponse is the checklist progress of an order.
type TimelineResponse struct {
	OrderID   int64          `json:"order_id"`
	Status    string         `json:"status"`
	Timeline  model.Timeline `json:"timeline"`
	Delivered bool           `json:"delivered"`
}

// OrdersResponse wraps an order list.
type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// DeliveriesResponse is the deliverer dashboard.
type DeliveriesResponse struct {
	Available []OrderResponse `json:"available"`
	Mine      []OrderResponse `json:"mine"`
}

// ResetResponse reports how many orders an admin reset removed.
type ResetResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}
