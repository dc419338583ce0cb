package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
	testhelpers "github.com/polkiloo/tigercart/internal/test"
	"github.com/polkiloo/tigercart/internal/usecase"
)

type healthStub struct {
	err error
}

func (h healthStub) HealthCheck(context.Context) error { return h.err }

type facadeFixture struct {
	facade *MarketFacade
	users  *testhelpers.UserRepositoryStub
	orders *testhelpers.OrderRepositoryStub
	carts  *testhelpers.CartRepositoryStub
	events *testhelpers.EventSinkStub
}

func newFacade(health HealthChecker) *facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	users := testhelpers.NewUserRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub()
	carts := testhelpers.NewCartRepositoryStub()
	favorites := &testhelpers.FavoriteRepositoryStub{}
	events := &testhelpers.EventSinkStub{}
	catalog := testhelpers.CatalogStub{Catalog: testhelpers.SampleCatalog()}

	ratings := usecase.NewRatingUseCase(&testhelpers.RatingRepositoryStub{Users: users})
	favoriteUC := usecase.NewFavoriteUseCase(favorites, catalog, logger)
	uc := UseCases{
		Auth: usecase.NewAuthUseCase(users, testhelpers.CASStub{}, testhelpers.StrategyStub{},
			testhelpers.HasherStub{}, "hash:letmein"),
		Orders:    usecase.NewOrderUseCase(orders, users, carts, ratings, catalog, &testhelpers.TransactorStub{}, events, logger),
		Ratings:   ratings,
		Cart:      usecase.NewCartUseCase(carts, catalog),
		Catalog:   usecase.NewCatalogUseCase(catalog, favorites),
		Favorites: favoriteUC,
		Profiles:  usecase.NewProfileUseCase(users, orders, favoriteUC),
	}
	return &facadeFixture{
		facade: NewMarketFacade(uc, health),
		users:  users,
		orders: orders,
		carts:  carts,
		events: events,
	}
}

func mustLogin(t *testing.T, f *MarketFacade, netID string) string {
	t.Helper()
	_, token, err := f.Login(context.Background(), "https://tigercart.example/api/auth/login", "ST-"+netID)
	if err != nil {
		t.Fatalf("login %s: %v", netID, err)
	}
	id, err := f.ParseToken(token)
	if err != nil || id != netID {
		t.Fatalf("token round trip failed: id=%q err=%v", id, err)
	}
	return id
}

func TestMarketFacadeDeliveryFlow(t *testing.T) {
	fx := newFacade(healthStub{})
	f := fx.facade
	ctx := context.Background()

	shopper := mustLogin(t, f, "alice")
	deliverer := mustLogin(t, f, "dan")

	if _, err := f.AddToCart(ctx, shopper, "1"); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if _, err := f.AdjustCartItem(ctx, shopper, "1", usecase.CartIncrease); err != nil {
		t.Fatalf("increase: %v", err)
	}
	if err := f.UpdateCartItem(ctx, shopper, "2", 3); err != nil {
		t.Fatalf("update: %v", err)
	}
	if n, _ := f.CartCount(ctx, shopper); n != 2 {
		t.Fatalf("expected two distinct items, got %d", n)
	}
	view, err := f.Cart(ctx, shopper)
	if err != nil {
		t.Fatalf("cart: %v", err)
	}
	if view.Totals.Subtotal != 8.75 {
		t.Fatalf("unexpected subtotal %v", view.Totals.Subtotal)
	}

	order, err := f.PlaceOrder(ctx, shopper, "Whitman College")
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if n, _ := f.CartCount(ctx, shopper); n != 0 {
		t.Fatalf("cart should be empty after placement")
	}

	deliveries, err := f.Deliveries(ctx, deliverer)
	if err != nil || len(deliveries.Available) != 1 {
		t.Fatalf("expected order to be available: %+v %v", deliveries, err)
	}
	if _, err := f.ClaimDelivery(ctx, order.ID, deliverer); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if _, err := f.ClaimDelivery(ctx, order.ID, "erin"); !errors.Is(err, domainErrors.ErrAlreadyClaimed) {
		t.Fatalf("expected second claim to fail, got %v", err)
	}

	for _, step := range model.Steps() {
		if _, err := f.UpdateChecklist(ctx, order.ID, deliverer, step.String(), true); err != nil {
			t.Fatalf("check %s: %v", step, err)
		}
	}
	timeline, err := f.OrderTimeline(ctx, order.ID, shopper)
	if err != nil || !timeline.Timeline.Delivered() {
		t.Fatalf("expected delivered timeline: %v", err)
	}

	if _, err := f.SubmitRating(ctx, usecase.RatingInput{OrderID: order.ID, RaterID: shopper, RaterRole: "shopper", RatedUserID: deliverer, Rating: 5}); err != nil {
		t.Fatalf("shopper rating: %v", err)
	}
	rated, err := f.SubmitRating(ctx, usecase.RatingInput{OrderID: order.ID, RaterID: deliverer, RaterRole: "deliverer", RatedUserID: shopper, Rating: 4})
	if err != nil {
		t.Fatalf("deliverer rating: %v", err)
	}
	if rated.Status != model.OrderStatusFulfilled {
		t.Fatalf("expected fulfilled order, got %s", rated.Status)
	}

	summary, err := f.Ratings(ctx, deliverer)
	if err != nil {
		t.Fatalf("ratings: %v", err)
	}
	if !summary.Shopper.Rated || summary.Shopper.Average != 5 || summary.Deliverer.Rated {
		t.Fatalf("unexpected summary %+v", summary)
	}

	details, err := f.Order(ctx, order.ID, shopper)
	if err != nil {
		t.Fatalf("order details: %v", err)
	}
	if details.Counterparty == nil || details.Counterparty.UserID != deliverer {
		t.Fatalf("shopper should see the deliverer: %+v", details.Counterparty)
	}

	current, err := f.CurrentOrder(ctx, shopper)
	if err != nil || current.ID != order.ID {
		t.Fatalf("unexpected current order %+v %v", current, err)
	}
	history, err := f.Orders(ctx, shopper)
	if err != nil || len(history) != 1 {
		t.Fatalf("unexpected history %v %v", history, err)
	}

	types := fx.events.Types()
	if types[0] != model.EventOrderPlaced || types[len(types)-1] != model.EventOrderFulfilled {
		t.Fatalf("unexpected event sequence %v", types)
	}
}

func TestMarketFacadeCancelAndDecline(t *testing.T) {
	fx := newFacade(healthStub{})
	f := fx.facade
	ctx := context.Background()

	for _, id := range []string{"1", "3"} {
		if _, err := f.AddToCart(ctx, "alice", id); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	first, err := f.PlaceOrder(ctx, "alice", "Forbes")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	cancelled, err := f.CancelOrder(ctx, first.ID, "alice")
	if err != nil || cancelled.Status != model.OrderStatusCancelled {
		t.Fatalf("cancel: %+v %v", cancelled, err)
	}

	if _, err := f.AddToCart(ctx, "alice", "2"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.RemoveFromCart(ctx, "alice", "2"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := f.PlaceOrder(ctx, "alice", "Forbes"); !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected empty cart, got %v", err)
	}

	_, _ = f.AddToCart(ctx, "alice", "2")
	second, err := f.PlaceOrder(ctx, "alice", "Forbes")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if _, err := f.ClaimDelivery(ctx, second.ID, "dan"); err != nil {
		t.Fatalf("claim: %v", err)
	}
	declined, err := f.DeclineDelivery(ctx, second.ID, "dan")
	if err != nil || declined.Status != model.OrderStatusDeclined {
		t.Fatalf("decline: %+v %v", declined, err)
	}

	n, err := f.ResetOrders(ctx, "operator")
	if err != nil || n != 2 {
		t.Fatalf("reset: n=%d err=%v", n, err)
	}
}

func TestMarketFacadeCatalogFavoritesProfile(t *testing.T) {
	fx := newFacade(healthStub{})
	f := fx.facade
	ctx := context.Background()
	mustLogin(t, f, "alice")

	if err := f.AddFavorite(ctx, "alice", "2"); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	categories, err := f.Categories(ctx, "alice")
	if err != nil || len(categories) != 3 || categories[0] != usecase.FavoritesCategory {
		t.Fatalf("unexpected categories %v %v", categories, err)
	}
	items, err := f.CategoryItems(ctx, "alice", "Cold Drinks")
	if err != nil || len(items) != 1 || !items[0].IsFavorite {
		t.Fatalf("unexpected category items %+v %v", items, err)
	}
	all, err := f.Items(ctx, "alice")
	if err != nil || len(all) != 3 {
		t.Fatalf("unexpected items %+v %v", all, err)
	}
	favorites, err := f.Favorites(ctx, "alice")
	if err != nil || len(favorites) != 1 {
		t.Fatalf("unexpected favorites %+v %v", favorites, err)
	}
	if err := f.RemoveFavorite(ctx, "alice", "2"); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}

	usr, err := f.UpdateProfile(ctx, "alice", model.Contact{VenmoHandle: "@alice", PhoneNumber: "609-555-0101"})
	if err != nil || !usr.ProfileComplete() {
		t.Fatalf("update profile: %+v %v", usr, err)
	}
	profile, err := f.Profile(ctx, "alice")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.User.VenmoHandle != "@alice" || len(profile.Favorites) != 0 {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestMarketFacadeAdminAndHealth(t *testing.T) {
	dbErr := errors.New("db down")
	f := newFacade(healthStub{err: dbErr}).facade

	if err := f.VerifyAdmin("letmein"); err != nil {
		t.Fatalf("expected admin token to verify: %v", err)
	}
	if err := f.VerifyAdmin("guess"); !errors.Is(err, domainErrors.ErrNotAuthorized) {
		t.Fatalf("expected not authorized, got %v", err)
	}
	if err := f.Health(context.Background()); !errors.Is(err, dbErr) {
		t.Fatalf("expected health error, got %v", err)
	}
	if got := f.LoginURL("svc"); got == "" {
		t.Fatalf("expected login url")
	}
}
