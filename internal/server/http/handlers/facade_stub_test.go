package handlers

import (
	"context"

	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/usecase"
)

// marketStub implements MarketFacade with overridable behaviour.
type marketStub struct {
	LoginURLFn      func(string) string
	LoginFn         func(context.Context, string, string) (*model.User, string, error)
	ParseTokenFn    func(string) (string, error)
	VerifyAdminFn   func(string) error
	ItemsFn         func(context.Context, string) ([]usecase.CatalogItem, error)
	CategoriesFn    func(context.Context, string) ([]string, error)
	CategoryItemsFn func(context.Context, string, string) ([]usecase.CatalogItem, error)
	CartFn          func(context.Context, string) (*usecase.CartView, error)
	CartCountFn     func(context.Context, string) (int, error)
	AddToCartFn     func(context.Context, string, string) (int, error)
	UpdateCartFn    func(context.Context, string, string, int) error
	AdjustCartFn    func(context.Context, string, string, string) (int, error)
	RemoveCartFn    func(context.Context, string, string) error
	PlaceOrderFn    func(context.Context, string, string) (*model.Order, error)
	OrdersFn        func(context.Context, string) ([]model.Order, error)
	CurrentOrderFn  func(context.Context, string) (*model.Order, error)
	OrderFn         func(context.Context, int64, string) (*usecase.OrderDetails, error)
	TimelineFn      func(context.Context, int64, string) (*model.Order, error)
	CancelFn        func(context.Context, int64, string) (*model.Order, error)
	DeliveriesFn    func(context.Context, string) (*usecase.Deliveries, error)
	ClaimFn         func(context.Context, int64, string) (*model.Order, error)
	DeclineFn       func(context.Context, int64, string) (*model.Order, error)
	ChecklistFn     func(context.Context, int64, string, string, bool) (*model.Order, error)
	SubmitRatingFn  func(context.Context, usecase.RatingInput) (*model.Order, error)
	RatingsFn       func(context.Context, string) (*usecase.RatingSummary, error)
	FavoritesFn     func(context.Context, string) ([]model.Item, error)
	AddFavoriteFn   func(context.Context, string, string) error
	RemoveFavFn     func(context.Context, string, string) error
	ProfileFn       func(context.Context, string) (*usecase.Profile, error)
	UpdateProfileFn func(context.Context, string, model.Contact) (*model.User, error)
	ResetOrdersFn   func(context.Context, string) (int64, error)
	HealthFn        func(context.Context) error
}

var _ MarketFacade = (*marketStub)(nil)

func (s *marketStub) LoginURL(service string) string {
	if s.LoginURLFn != nil {
		return s.LoginURLFn(service)
	}
	return "https://cas.example/login?service=" + service
}

func (s *marketStub) Login(ctx context.Context, service, ticket string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, service, ticket)
	}
	return &model.User{ID: "alice"}, "token", nil
}

func (s *marketStub) ParseToken(token string) (string, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return "alice", nil
}

func (s *marketStub) VerifyAdmin(token string) error {
	if s.VerifyAdminFn != nil {
		return s.VerifyAdminFn(token)
	}
	return nil
}

func (s *marketStub) Items(ctx context.Context, userID string) ([]usecase.CatalogItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	return nil, nil
}

func (s *marketStub) Categories(ctx context.Context, userID string) ([]string, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx, userID)
	}
	return nil, nil
}

func (s *marketStub) CategoryItems(ctx context.Context, userID, category string) ([]usecase.CatalogItem, error) {
	if s.CategoryItemsFn != nil {
		return s.CategoryItemsFn(ctx, userID, category)
	}
	return nil, nil
}

func (s *marketStub) Cart(ctx context.Context, userID string) (*usecase.CartView, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return &usecase.CartView{}, nil
}

func (s *marketStub) CartCount(ctx context.Context, userID string) (int, error) {
	if s.CartCountFn != nil {
		return s.CartCountFn(ctx, userID)
	}
	return 0, nil
}

func (s *marketStub) AddToCart(ctx context.Context, userID, itemID string) (int, error) {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, userID, itemID)
	}
	return 1, nil
}

func (s *marketStub) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) error {
	if s.UpdateCartFn != nil {
		return s.UpdateCartFn(ctx, userID, itemID, quantity)
	}
	return nil
}

func (s *marketStub) AdjustCartItem(ctx context.Context, userID, itemID, action string) (int, error) {
	if s.AdjustCartFn != nil {
		return s.AdjustCartFn(ctx, userID, itemID, action)
	}
	return 1, nil
}

func (s *marketStub) RemoveFromCart(ctx context.Context, userID, itemID string) error {
	if s.RemoveCartFn != nil {
		return s.RemoveCartFn(ctx, userID, itemID)
	}
	return nil
}

func (s *marketStub) PlaceOrder(ctx context.Context, userID, location string) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, location)
	}
	return &model.Order{ID: 1, Status: model.OrderStatusPlaced, UserID: userID, Location: location}, nil
}

func (s *marketStub) Orders(ctx context.Context, userID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return nil, nil
}

func (s *marketStub) CurrentOrder(ctx context.Context, userID string) (*model.Order, error) {
	if s.CurrentOrderFn != nil {
		return s.CurrentOrderFn(ctx, userID)
	}
	return &model.Order{ID: 1, UserID: userID}, nil
}

func (s *marketStub) Order(ctx context.Context, orderID int64, userID string) (*usecase.OrderDetails, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, userID)
	}
	return &usecase.OrderDetails{Order: model.Order{ID: orderID}}, nil
}

func (s *marketStub) OrderTimeline(ctx context.Context, orderID int64, userID string) (*model.Order, error) {
	if s.TimelineFn != nil {
		return s.TimelineFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s *marketStub) CancelOrder(ctx context.Context, orderID int64, userID string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCancelled}, nil
}

func (s *marketStub) Deliveries(ctx context.Context, userID string) (*usecase.Deliveries, error) {
	if s.DeliveriesFn != nil {
		return s.DeliveriesFn(ctx, userID)
	}
	return &usecase.Deliveries{}, nil
}

func (s *marketStub) ClaimDelivery(ctx context.Context, orderID int64, userID string) (*model.Order, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusClaimed, ClaimedBy: userID}, nil
}

func (s *marketStub) DeclineDelivery(ctx context.Context, orderID int64, userID string) (*model.Order, error) {
	if s.DeclineFn != nil {
		return s.DeclineFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusDeclined}, nil
}

func (s *marketStub) UpdateChecklist(ctx context.Context, orderID int64, userID, step string, checked bool) (*model.Order, error) {
	if s.ChecklistFn != nil {
		return s.ChecklistFn(ctx, orderID, userID, step, checked)
	}
	return &model.Order{ID: orderID}, nil
}

func (s *marketStub) SubmitRating(ctx context.Context, in usecase.RatingInput) (*model.Order, error) {
	if s.SubmitRatingFn != nil {
		return s.SubmitRatingFn(ctx, in)
	}
	return &model.Order{ID: in.OrderID}, nil
}

func (s *marketStub) Ratings(ctx context.Context, userID string) (*usecase.RatingSummary, error) {
	if s.RatingsFn != nil {
		return s.RatingsFn(ctx, userID)
	}
	return &usecase.RatingSummary{UserID: userID}, nil
}

func (s *marketStub) Favorites(ctx context.Context, userID string) ([]model.Item, error) {
	if s.FavoritesFn != nil {
		return s.FavoritesFn(ctx, userID)
	}
	return nil, nil
}

func (s *marketStub) AddFavorite(ctx context.Context, userID, itemID string) error {
	if s.AddFavoriteFn != nil {
		return s.AddFavoriteFn(ctx, userID, itemID)
	}
	return nil
}

func (s *marketStub) RemoveFavorite(ctx context.Context, userID, itemID string) error {
	if s.RemoveFavFn != nil {
		return s.RemoveFavFn(ctx, userID, itemID)
	}
	return nil
}

func (s *marketStub) Profile(ctx context.Context, userID string) (*usecase.Profile, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &usecase.Profile{User: model.User{ID: userID}}, nil
}

func (s *marketStub) UpdateProfile(ctx context.Context, userID string, contact model.Contact) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, contact)
	}
	return &model.User{ID: userID, VenmoHandle: contact.VenmoHandle, PhoneNumber: contact.PhoneNumber}, nil
}

func (s *marketStub) ResetOrders(ctx context.Context, actor string) (int64, error) {
	if s.ResetOrdersFn != nil {
		return s.ResetOrdersFn(ctx, actor)
	}
	return 0, nil
}

func (s *marketStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
