package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// UseCases groups the business use cases composed by MarketFacade.
type UseCases struct {
	fx.In

	Auth      *usecase.AuthUseCase
	Orders    *usecase.OrderUseCase
	Ratings   *usecase.RatingUseCase
	Cart      *usecase.CartUseCase
	Catalog   *usecase.CatalogUseCase
	Favorites *usecase.FavoriteUseCase
	Profiles  *usecase.ProfileUseCase
}

type MarketFacade struct {
	uc     UseCases
	health HealthChecker
}

func NewMarketFacade(uc UseCases, health HealthChecker) *MarketFacade {
	return &MarketFacade{uc: uc, health: health}
}

func (f *MarketFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

// --- auth ---

func (f *MarketFacade) LoginURL(service string) string {
	return f.uc.Auth.LoginURL(service)
}

func (f *MarketFacade) Login(ctx context.Context, service, ticket string) (*model.User, string, error) {
	return f.uc.Auth.Login(ctx, service, ticket)
}

func (f *MarketFacade) ParseToken(token string) (string, error) {
	return f.uc.Auth.ParseToken(token)
}

func (f *MarketFacade) VerifyAdmin(token string) error {
	return f.uc.Auth.VerifyAdmin(token)
}

// --- catalog ---

func (f *MarketFacade) Items(ctx context.Context, userID string) ([]usecase.CatalogItem, error) {
	return f.uc.Catalog.Items(ctx, userID)
}

func (f *MarketFacade) Categories(ctx context.Context, userID string) ([]string, error) {
	return f.uc.Catalog.Categories(ctx, userID)
}

func (f *MarketFacade) CategoryItems(ctx context.Context, userID, category string) ([]usecase.CatalogItem, error) {
	return f.uc.Catalog.CategoryItems(ctx, userID, category)
}

// --- cart ---

func (f *MarketFacade) Cart(ctx context.Context, userID string) (*usecase.CartView, error) {
	return f.uc.Cart.View(ctx, userID)
}

func (f *MarketFacade) CartCount(ctx context.Context, userID string) (int, error) {
	return f.uc.Cart.Count(ctx, userID)
}

func (f *MarketFacade) AddToCart(ctx context.Context, userID, itemID string) (int, error) {
	return f.uc.Cart.Add(ctx, userID, itemID)
}

func (f *MarketFacade) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) error {
	return f.uc.Cart.Update(ctx, userID, itemID, quantity)
}

func (f *MarketFacade) AdjustCartItem(ctx context.Context, userID, itemID, action string) (int, error) {
	return f.uc.Cart.Adjust(ctx, userID, itemID, action)
}

func (f *MarketFacade) RemoveFromCart(ctx context.Context, userID, itemID string) error {
	return f.uc.Cart.Remove(ctx, userID, itemID)
}

// --- orders ---

func (f *MarketFacade) PlaceOrder(ctx context.Context, userID, location string) (*model.Order, error) {
	return f.uc.Orders.PlaceOrder(ctx, userID, location)
}

func (f *MarketFacade) Orders(ctx context.Context, userID string) ([]model.Order, error) {
	return f.uc.Orders.ShopperOrders(ctx, userID)
}

func (f *MarketFacade) CurrentOrder(ctx context.Context, userID string) (*model.Order, error) {
	return f.uc.Orders.CurrentOrder(ctx, userID)
}

func (f *MarketFacade) Order(ctx context.Context, orderID int64, userID string) (*usecase.OrderDetails, error) {
	return f.uc.Orders.Order(ctx, orderID, userID)
}

func (f *MarketFacade) OrderTimeline(ctx context.Context, orderID int64, userID string) (*model.Order, error) {
	return f.uc.Orders.Timeline(ctx, orderID, userID)
}

func (f *MarketFacade) CancelOrder(ctx context.Context, orderID int64, userID string) (*model.Order, error) {
	return f.uc.Orders.Cancel(ctx, orderID, userID)
}

// --- deliveries ---

func (f *MarketFacade) Deliveries(ctx context.Context, userID string) (*usecase.Deliveries, error) {
	return f.uc.Orders.Deliveries(ctx, userID)
}

func (f *MarketFacade) ClaimDelivery(ctx context.Context, orderID int64, userID string) (*model.Order, error) {
	return f.uc.Orders.Claim(ctx, orderID, userID)
}

func (f *MarketFacade) DeclineDelivery(ctx context.Context, orderID int64, userID string) (*model.Order, error) {
	return f.uc.Orders.Decline(ctx, orderID, userID)
}

func (f *MarketFacade) UpdateChecklist(ctx context.Context, orderID int64, userID, step string, checked bool) (*model.Order, error) {
	return f.uc.Orders.UpdateChecklistStep(ctx, orderID, userID, step, checked)
}

// --- ratings ---

func (f *MarketFacade) SubmitRating(ctx context.Context, in usecase.RatingInput) (*model.Order, error) {
	return f.uc.Orders.SubmitRating(ctx, in)
}

func (f *MarketFacade) Ratings(ctx context.Context, userID string) (*usecase.RatingSummary, error) {
	return f.uc.Ratings.Summary(ctx, userID)
}

// --- favorites ---

func (f *MarketFacade) Favorites(ctx context.Context, userID string) ([]model.Item, error) {
	return f.uc.Favorites.List(ctx, userID)
}

func (f *MarketFacade) AddFavorite(ctx context.Context, userID, itemID string) error {
	return f.uc.Favorites.Add(ctx, userID, itemID)
}

func (f *MarketFacade) RemoveFavorite(ctx context.Context, userID, itemID string) error {
	return f.uc.Favorites.Remove(ctx, userID, itemID)
}

// --- profile ---

func (f *MarketFacade) Profile(ctx context.Context, userID string) (*usecase.Profile, error) {
	return f.uc.Profiles.Profile(ctx, userID)
}

func (f *MarketFacade) UpdateProfile(ctx context.Context, userID string, contact model.Contact) (*model.User, error) {
	return f.uc.Profiles.UpdateContact(ctx, userID, contact)
}

// --- admin ---

func (f *MarketFacade) ResetOrders(ctx context.Context, actor string) (int64, error) {
	return f.uc.Orders.ResetOrders(ctx, actor)
}
