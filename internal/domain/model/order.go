package model

import (
	"strings"
	"time"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
)

// OrderStatus describes the delivery lifecycle.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusClaimed   OrderStatus = "CLAIMED"
	OrderStatusFulfilled OrderStatus = "FULFILLED"
	OrderStatusDeclined  OrderStatus = "DECLINED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusFulfilled, OrderStatusDeclined, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a shopper's request delivered by at most one deliverer.
type Order struct {
	ID             int64
	Status         OrderStatus
	UserID         string
	ClaimedBy      string
	Cart           CartSnapshot
	TotalItems     int
	Location       string
	Timeline       Timeline
	ShopperRated   bool
	DelivererRated bool
	CreatedAt      time.Time
}

// CheckPlacement validates placement input before any catalog lookup.
func CheckPlacement(location string, cart Cart) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", domainErrors.ErrMissingLocation
	}
	if cart.Empty() {
		return "", domainErrors.ErrEmptyCart
	}
	return location, nil
}

// NewOrder builds a PLACED order with an unchecked timeline.
func NewOrder(userID, location string, snapshot CartSnapshot, now time.Time) (*Order, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domainErrors.ErrMissingLocation
	}
	if len(snapshot) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}
	for _, line := range snapshot {
		if line.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidQuantity
		}
	}
	return &Order{
		Status:     OrderStatusPlaced,
		UserID:     userID,
		Cart:       snapshot,
		TotalItems: snapshot.TotalItems(),
		Location:   location,
		CreatedAt:  now,
	}, nil
}

// Totals prices the cart snapshot.
func (o *Order) Totals() Totals {
	return PriceOf(o.Cart.Subtotal())
}

// Claim assigns the order to a deliverer.
func (o *Order) Claim(delivererID string) error {
	if o.Status != OrderStatusPlaced {
		return domainErrors.ErrAlreadyClaimed
	}
	if delivererID == o.UserID {
		return domainErrors.ErrSelfClaim
	}
	o.Status = OrderStatusClaimed
	o.ClaimedBy = delivererID
	return nil
}

// Decline abandons the order.
func (o *Order) Decline() error {
	if o.Status.Terminal() {
		return domainErrors.ErrInvalidTransition
	}
	o.Status = OrderStatusDeclined
	return nil
}

// Cancel withdraws an unclaimed order on behalf of its shopper.
func (o *Order) Cancel(userID string) error {
	if userID != o.UserID {
		return domainErrors.ErrNotAuthorized
	}
	if o.Status != OrderStatusPlaced {
		return domainErrors.ErrInvalidTransition
	}
	o.Status = OrderStatusCancelled
	return nil
}

// UpdateStep toggles a checklist step on behalf of the claiming deliverer.
func (o *Order) UpdateStep(delivererID string, step Step, checked bool) error {
	if o.ClaimedBy == "" || delivererID != o.ClaimedBy {
		return domainErrors.ErrNotAuthorized
	}
	if o.Status != OrderStatusClaimed {
		return domainErrors.ErrInvalidTransition
	}
	if step == StepDelivered && !checked && (o.ShopperRated || o.DelivererRated) {
		return domainErrors.ErrInvalidTransition
	}
	return o.Timeline.Set(step, checked)
}

// ApplyRating records that raterID rated the counterparty from the given side.
// Once both sides have rated, the order becomes FULFILLED.
func (o *Order) ApplyRating(raterID string, role RatingRole, ratedUserID string, rating int) error {
	if _, err := ParseRatingRole(string(role)); err != nil {
		return err
	}
	if err := ValidateRating(rating); err != nil {
		return err
	}
	if !o.Timeline.Delivered() {
		return domainErrors.ErrNotDelivered
	}

	var counterparty string
	var rated *bool
	switch role {
	case RoleDeliverer:
		if raterID != o.ClaimedBy {
			return domainErrors.ErrNotAuthorized
		}
		counterparty, rated = o.UserID, &o.DelivererRated
	case RoleShopper:
		if raterID != o.UserID {
			return domainErrors.ErrNotAuthorized
		}
		counterparty, rated = o.ClaimedBy, &o.ShopperRated
	}
	if ratedUserID != counterparty {
		return domainErrors.ErrInvalidRatedUser
	}
	if *rated {
		return domainErrors.ErrAlreadyRated
	}
	if o.Status != OrderStatusClaimed {
		return domainErrors.ErrInvalidTransition
	}

	*rated = true
	if o.ShopperRated && o.DelivererRated {
		o.Status = OrderStatusFulfilled
	}
	return nil
}
