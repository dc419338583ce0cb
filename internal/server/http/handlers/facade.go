package handlers

import (
	"context"

	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	LoginURL(service string) string
	Login(ctx context.Context, service, ticket string) (*model.User, string, error)
	ParseToken(token string) (string, error)
	VerifyAdmin(token string) error
}

// CatalogFacade serves the shop views.
type CatalogFacade interface {
	Items(ctx context.Context, userID string) ([]usecase.CatalogItem, error)
	Categories(ctx context.Context, userID string) ([]string, error)
	CategoryItems(ctx context.Context, userID, category string) ([]usecase.CatalogItem, error)
}

// CartFacade manages the live cart.
type CartFacade interface {
	Cart(ctx context.Context, userID string) (*usecase.CartView, error)
	CartCount(ctx context.Context, userID string) (int, error)
	AddToCart(ctx context.Context, userID, itemID string) (int, error)
	UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) error
	AdjustCartItem(ctx context.Context, userID, itemID, action string) (int, error)
	RemoveFromCart(ctx context.Context, userID, itemID string) error
}

// OrderFacade encapsulates shopper order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID, location string) (*model.Order, error)
	Orders(ctx context.Context, userID string) ([]model.Order, error)
	CurrentOrder(ctx context.Context, userID string) (*model.Order, error)
	Order(ctx context.Context, orderID int64, userID string) (*usecase.OrderDetails, error)
	OrderTimeline(ctx context.Context, orderID int64, userID string) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID int64, userID string) (*model.Order, error)
}

// DeliveryFacade encapsulates deliverer operations.
type DeliveryFacade interface {
	Deliveries(ctx context.Context, userID string) (*usecase.Deliveries, error)
	ClaimDelivery(ctx context.Context, orderID int64, userID string) (*model.Order, error)
	DeclineDelivery(ctx context.Context, orderID int64, userID string) (*model.Order, error)
	UpdateChecklist(ctx context.Context, orderID int64, userID, step string, checked bool) (*model.Order, error)
}

// RatingFacade submits and reads ratings.
type RatingFacade interface {
	SubmitRating(ctx context.Context, in usecase.RatingInput) (*model.Order, error)
	Ratings(ctx context.Context, userID string) (*usecase.RatingSummary, error)
}

// FavoriteFacade manages favorite items.
type FavoriteFacade interface {
	Favorites(ctx context.Context, userID string) ([]model.Item, error)
	AddFavorite(ctx context.Context, userID, itemID string) error
	RemoveFavorite(ctx context.Context, userID, itemID string) error
}

// ProfileFacade reads and edits profiles.
type ProfileFacade interface {
	Profile(ctx context.Context, userID string) (*usecase.Profile, error)
	UpdateProfile(ctx context.Context, userID string, contact model.Contact) (*model.User, error)
}

// AdminFacade holds operator actions.
type AdminFacade interface {
	ResetOrders(ctx context.Context, actor string) (int64, error)
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	DeliveryFacade
	RatingFacade
	FavoriteFacade
	ProfileFacade
	AdminFacade
	HealthFacade
}
