package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

// Viewer roles reported with order details.
const (
	ViewerShopper   = "shopper"
	ViewerDeliverer = "deliverer"
	ViewerBrowser   = "browser"
)

// Counterparty is the contact shown to the other side of an order.
type Counterparty struct {
	UserID      string
	VenmoHandle string
	PhoneNumber string
	Rating      RoleRating
}

// OrderDetails is an order as seen by one participant.
type OrderDetails struct {
	Order        model.Order
	Totals       model.Totals
	Viewer       string
	Counterparty *Counterparty
}

// Deliveries splits the deliverer dashboard into open and assigned orders.
type Deliveries struct {
	Available []model.Order
	Mine      []model.Order
}

// RatingInput is a rating submission for one order.
type RatingInput struct {
	OrderID     int64
	RaterID     string
	RaterRole   string
	RatedUserID string
	Rating      int
}

// OrderUseCase drives the order lifecycle.
type OrderUseCase struct {
	orders  repository.OrderRepository
	users   repository.UserRepository
	carts   repository.CartRepository
	ratings *RatingUseCase
	catalog CatalogProvider
	tx      repository.Transactor
	events  EventSink
	logger  *slog.Logger
	now     func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	users repository.UserRepository,
	carts repository.CartRepository,
	ratings *RatingUseCase,
	catalog CatalogProvider,
	tx repository.Transactor,
	events EventSink,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:  orders,
		users:   users,
		carts:   carts,
		ratings: ratings,
		catalog: catalog,
		tx:      tx,
		events:  events,
		logger:  logger,
		now:     time.Now,
	}
}

// PlaceOrder snapshots the shopper's cart into a new PLACED order and empties the cart.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, userID, location string) (*model.Order, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	location, err = model.CheckPlacement(location, cart)
	if err != nil {
		return nil, err
	}

	catalog, err := u.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, missing := cart.Snapshot(catalog)
	if len(missing) > 0 {
		u.logger.Warn("cart references unknown items",
			slog.String("user_id", userID),
			slog.Any("items", missing),
		)
		return nil, domainErrors.ErrUnknownItem
	}

	order, err := model.NewOrder(userID, location, snapshot, u.now().UTC())
	if err != nil {
		return nil, err
	}
	if _, err := u.users.Ensure(ctx, userID); err != nil {
		return nil, err
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	// Placement and cart clear span two stores and are not atomic.
	if err := u.carts.Clear(ctx, userID); err != nil {
		u.logger.Error("failed to clear cart after placement",
			slog.String("user_id", userID),
			slog.Int64("order_id", created.ID),
			slog.String("error", err.Error()),
		)
	}

	u.emit(model.EventOrderPlaced, created, userID, nil)
	return created, nil
}

// Claim assigns a PLACED order to the deliverer. Concurrent claims resolve
// to exactly one winner; the others get ErrAlreadyClaimed.
func (u *OrderUseCase) Claim(ctx context.Context, orderID int64, delivererID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Claim(delivererID); err != nil {
		return nil, err
	}
	if err := u.orders.Claim(ctx, orderID, delivererID); err != nil {
		return nil, err
	}

	u.emit(model.EventOrderClaimed, order, delivererID, nil)
	return order, nil
}

// Decline abandons a non-terminal order.
func (u *OrderUseCase) Decline(ctx context.Context, orderID int64, actorID string) (*model.Order, error) {
	order, err := u.mutate(ctx, orderID, func(o *model.Order) error {
		return o.Decline()
	})
	if err != nil {
		return nil, err
	}
	u.emit(model.EventOrderDeclined, order, actorID, nil)
	return order, nil
}

// Cancel withdraws a PLACED order on behalf of its shopper.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID int64, userID string) (*model.Order, error) {
	order, err := u.mutate(ctx, orderID, func(o *model.Order) error {
		return o.Cancel(userID)
	})
	if err != nil {
		return nil, err
	}
	u.emit(model.EventOrderCancelled, order, userID, nil)
	return order, nil
}

// UpdateChecklistStep checks or unchecks a timeline step of a claimed order.
func (u *OrderUseCase) UpdateChecklistStep(ctx context.Context, orderID int64, delivererID, stepName string, checked bool) (*model.Order, error) {
	step, err := model.ParseStep(stepName)
	if err != nil {
		return nil, err
	}
	order, err := u.mutate(ctx, orderID, func(o *model.Order) error {
		return o.UpdateStep(delivererID, step, checked)
	})
	if err != nil {
		return nil, err
	}
	u.emit(model.EventOrderStepUpdated, order, delivererID, map[string]string{
		"step":    step.String(),
		"checked": strconv.FormatBool(checked),
	})
	return order, nil
}

// SubmitRating records a rating and the matching order flag in one transaction.
// The order becomes FULFILLED once both sides have rated.
func (u *OrderUseCase) SubmitRating(ctx context.Context, in RatingInput) (*model.Order, error) {
	role, err := model.ParseRatingRole(in.RaterRole)
	if err != nil {
		return nil, err
	}
	if err := model.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	var order *model.Order
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		o, err := u.orders.GetForUpdate(ctx, in.OrderID)
		if err != nil {
			return err
		}
		if err := o.ApplyRating(in.RaterID, role, in.RatedUserID, in.Rating); err != nil {
			return err
		}
		if err := u.ratings.Record(ctx, role, in.RatedUserID, in.Rating); err != nil {
			return err
		}
		if err := u.orders.Save(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.emit(model.EventOrderRated, order, in.RaterID, map[string]string{
		"rater_role": string(role),
		"rating":     strconv.Itoa(in.Rating),
	})
	if order.Status == model.OrderStatusFulfilled {
		u.emit(model.EventOrderFulfilled, order, in.RaterID, nil)
	}
	return order, nil
}

// Order returns the order as seen by viewerID together with the counterparty contact.
func (u *OrderUseCase) Order(ctx context.Context, orderID int64, viewerID string) (*OrderDetails, error) {
	order, err := u.visibleOrder(ctx, orderID, viewerID)
	if err != nil {
		return nil, err
	}

	details := &OrderDetails{Order: *order, Totals: order.Totals(), Viewer: ViewerBrowser}
	var counterpartyID string
	var counterpartyRole model.RatingRole
	switch viewerID {
	case order.UserID:
		details.Viewer = ViewerShopper
		counterpartyID, counterpartyRole = order.ClaimedBy, model.RoleDeliverer
	case order.ClaimedBy:
		details.Viewer = ViewerDeliverer
		counterpartyID, counterpartyRole = order.UserID, model.RoleShopper
	}
	if counterpartyID == "" {
		return details, nil
	}

	other, err := u.users.GetByID(ctx, counterpartyID)
	if err != nil {
		return nil, err
	}
	details.Counterparty = &Counterparty{
		UserID:      other.ID,
		VenmoHandle: other.VenmoHandle,
		PhoneNumber: other.PhoneNumber,
		Rating:      roleRatingOf(other.Rating(counterpartyRole)),
	}
	return details, nil
}

// Timeline returns the order with its checklist for a participant.
func (u *OrderUseCase) Timeline(ctx context.Context, orderID int64, viewerID string) (*model.Order, error) {
	return u.visibleOrder(ctx, orderID, viewerID)
}

// ShopperOrders lists the user's own orders, newest first.
func (u *OrderUseCase) ShopperOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// CurrentOrder returns the most recent order of the shopper regardless of status.
func (u *OrderUseCase) CurrentOrder(ctx context.Context, userID string) (*model.Order, error) {
	return u.orders.LatestByUser(ctx, userID)
}

// Deliveries returns open orders of other shoppers and orders the user is delivering.
func (u *OrderUseCase) Deliveries(ctx context.Context, userID string) (*Deliveries, error) {
	placed, err := u.orders.ListByStatus(ctx, model.OrderStatusPlaced)
	if err != nil {
		return nil, err
	}
	mine, err := u.orders.ListClaimedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	available := make([]model.Order, 0, len(placed))
	for _, o := range placed {
		if o.UserID != userID {
			available = append(available, o)
		}
	}
	return &Deliveries{Available: available, Mine: mine}, nil
}

// ResetOrders deletes every order. Users and ratings are kept.
func (u *OrderUseCase) ResetOrders(ctx context.Context, actorID string) (int64, error) {
	n, err := u.orders.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	u.logger.Warn("orders reset", slog.String("actor", actorID), slog.Int64("deleted", n))
	u.emit(model.EventOrdersReset, &model.Order{}, actorID, map[string]string{
		"deleted": strconv.FormatInt(n, 10),
	})
	return n, nil
}

func (u *OrderUseCase) visibleOrder(ctx context.Context, orderID int64, viewerID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID == viewerID || (order.ClaimedBy != "" && order.ClaimedBy == viewerID) {
		return order, nil
	}
	if order.Status == model.OrderStatusPlaced {
		return order, nil
	}
	return nil, domainErrors.ErrNotAuthorized
}

// mutate applies fn to a locked copy of the order and persists the result.
func (u *OrderUseCase) mutate(ctx context.Context, orderID int64, fn func(*model.Order) error) (*model.Order, error) {
	var order *model.Order
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		o, err := u.orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := fn(o); err != nil {
			return err
		}
		if err := u.orders.Save(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (u *OrderUseCase) emit(eventType model.EventType, order *model.Order, actorID string, attrs map[string]string) {
	event := model.OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		ActorID:    actorID,
		Status:     order.Status,
		Attributes: attrs,
		OccurredAt: u.now().UTC(),
	}
	if !u.events.Enqueue(event) {
		u.logger.Debug("order event not queued",
			slog.String("event_type", string(eventType)),
			slog.Int64("order_id", order.ID),
		)
	}
}
