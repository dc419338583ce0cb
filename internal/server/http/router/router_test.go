package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tigercart/internal/app"
	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/metrics"
	"github.com/polkiloo/tigercart/internal/server/http/dto"
	"github.com/polkiloo/tigercart/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/tigercart/internal/test"
	"github.com/polkiloo/tigercart/internal/usecase"
)

type healthStub struct{}

func (healthStub) HealthCheck(context.Context) error { return nil }

func newEngine() *gin.Engine {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	users := testhelpers.NewUserRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub()
	carts := testhelpers.NewCartRepositoryStub()
	favorites := &testhelpers.FavoriteRepositoryStub{}
	catalog := testhelpers.CatalogStub{Catalog: testhelpers.SampleCatalog()}

	ratings := usecase.NewRatingUseCase(&testhelpers.RatingRepositoryStub{Users: users})
	favoriteUC := usecase.NewFavoriteUseCase(favorites, catalog, logger)
	facade := app.NewMarketFacade(app.UseCases{
		Auth: usecase.NewAuthUseCase(users, testhelpers.CASStub{}, testhelpers.StrategyStub{},
			testhelpers.HasherStub{}, "hash:letmein"),
		Orders:    usecase.NewOrderUseCase(orders, users, carts, ratings, catalog, &testhelpers.TransactorStub{}, &testhelpers.EventSinkStub{}, logger),
		Ratings:   ratings,
		Cart:      usecase.NewCartUseCase(carts, catalog),
		Catalog:   usecase.NewCatalogUseCase(catalog, favorites),
		Favorites: favoriteUC,
		Profiles:  usecase.NewProfileUseCase(users, orders, favoriteUC),
	}, healthStub{})

	engine := Setup(Params{Facade: facade, Logger: logger, Metrics: metrics.New()})
	gin.SetMode(gin.TestMode)
	return engine
}

type client struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func (c *client) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp := httptest.NewRecorder()
	c.engine.ServeHTTP(resp, req)
	return resp
}

func (c *client) expect(method, path string, body any, status int) *httptest.ResponseRecorder {
	c.t.Helper()
	resp := c.do(method, path, body)
	if resp.Code != status {
		c.t.Fatalf("%s %s: expected %d, got %d (%s)", method, path, status, resp.Code, resp.Body.String())
	}
	return resp
}

func login(t *testing.T, engine *gin.Engine, netID string) *client {
	t.Helper()
	c := &client{t: t, engine: engine}
	resp := c.expect(http.MethodGet, "/api/auth/login?ticket=ST-"+netID, nil, http.StatusOK)
	header := resp.Header().Get("Authorization")
	c.token = strings.TrimPrefix(header, "Bearer ")
	if c.token == "" {
		t.Fatalf("expected session token for %s", netID)
	}
	return c
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newEngine()
	anon := &client{t: t, engine: engine}

	anon.expect(http.MethodGet, "/health", nil, http.StatusOK)
	anon.expect(http.MethodGet, "/api/items", nil, http.StatusUnauthorized)

	resp := anon.expect(http.MethodGet, "/api/auth/login", nil, http.StatusFound)
	if !strings.HasPrefix(resp.Header().Get("Location"), "https://cas.example/login") {
		t.Fatalf("unexpected redirect %q", resp.Header().Get("Location"))
	}
	anon.expect(http.MethodGet, "/api/auth/login?ticket=bogus", nil, http.StatusFound)
	anon.expect(http.MethodPost, "/api/auth/logout", nil, http.StatusOK)

	resp = anon.expect(http.MethodGet, "/metrics", nil, http.StatusOK)
	if !strings.Contains(resp.Body.String(), "tigercart_http_request_duration_seconds") {
		t.Fatalf("expected request histogram in metrics output")
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestSetupDeliveryFlow(t *testing.T) {
	engine := newEngine()
	alice := login(t, engine, "alice")
	dan := login(t, engine, "dan")

	resp := alice.expect(http.MethodGet, "/api/categories", nil, http.StatusOK)
	var cats dto.CategoriesResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &cats)
	if len(cats.Categories) != 2 {
		t.Fatalf("unexpected categories %+v", cats)
	}
	alice.expect(http.MethodGet, "/api/categories/snacks/items", nil, http.StatusOK)

	alice.expect(http.MethodPost, "/api/cart/items/1", nil, http.StatusOK)
	alice.expect(http.MethodPost, "/api/cart/items/1/increase", nil, http.StatusOK)
	alice.expect(http.MethodPut, "/api/cart/items/2", dto.UpdateCartRequest{Quantity: 2}, http.StatusOK)
	alice.expect(http.MethodPost, "/api/cart/items/404", nil, http.StatusNotFound)
	resp = alice.expect(http.MethodGet, "/api/cart/count", nil, http.StatusOK)
	if !strings.Contains(resp.Body.String(), `"count":2`) {
		t.Fatalf("unexpected count %s", resp.Body.String())
	}

	alice.expect(http.MethodPost, "/api/orders", dto.PlaceOrderRequest{}, http.StatusBadRequest)
	resp = alice.expect(http.MethodPost, "/api/orders", dto.PlaceOrderRequest{DeliveryLocation: "Butler"}, http.StatusCreated)
	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Subtotal != 7.5 || order.DeliveryFee != 0.75 || order.Total != 8.25 {
		t.Fatalf("unexpected totals %+v", order.TotalsResponse)
	}
	base := "/api/deliveries/" + itoa(order.ID)

	alice.expect(http.MethodPost, base+"/claim", nil, http.StatusForbidden)
	dan.expect(http.MethodPost, base+"/claim", nil, http.StatusOK)
	alice.expect(http.MethodPost, "/api/orders/"+itoa(order.ID)+"/cancel", nil, http.StatusConflict)

	dan.expect(http.MethodPost, base+"/checklist", map[string]any{"step": model.StepDelivered.String(), "checked": true}, http.StatusConflict)
	dan.expect(http.MethodPost, base+"/checklist", map[string]any{"step": "delivered", "checked": true}, http.StatusBadRequest)
	for _, step := range model.Steps() {
		dan.expect(http.MethodPost, base+"/checklist", map[string]any{"step": step.String(), "checked": true}, http.StatusOK)
	}

	alice.expect(http.MethodPost, "/api/ratings", dto.RatingRequest{OrderID: order.ID, RatedUserID: "dan", RaterRole: "shopper", Rating: 5}, http.StatusOK)
	alice.expect(http.MethodPost, "/api/ratings", dto.RatingRequest{OrderID: order.ID, RatedUserID: "dan", RaterRole: "shopper", Rating: 5}, http.StatusConflict)
	resp = dan.expect(http.MethodPost, "/api/ratings", dto.RatingRequest{OrderID: order.ID, RatedUserID: "alice", RaterRole: "deliverer", Rating: 4}, http.StatusOK)
	if !strings.Contains(resp.Body.String(), `"status":"FULFILLED"`) {
		t.Fatalf("expected fulfilled order, got %s", resp.Body.String())
	}

	resp = alice.expect(http.MethodGet, "/api/users/dan/ratings", nil, http.StatusOK)
	if !strings.Contains(resp.Body.String(), `"shopper":{"average":5,"count":1},"deliverer":{"average":null,"count":0}`) {
		t.Fatalf("unexpected ratings %s", resp.Body.String())
	}

	alice.expect(http.MethodGet, "/api/orders/current", nil, http.StatusOK)
	alice.expect(http.MethodGet, "/api/orders/"+itoa(order.ID)+"/timeline", nil, http.StatusOK)
	login(t, engine, "erin").expect(http.MethodGet, "/api/orders/"+itoa(order.ID), nil, http.StatusForbidden)
}

func TestSetupProfileAndFavorites(t *testing.T) {
	engine := newEngine()
	alice := login(t, engine, "alice")

	alice.expect(http.MethodPost, "/api/favorites/3", nil, http.StatusOK)
	resp := alice.expect(http.MethodGet, "/api/favorites", nil, http.StatusOK)
	if !strings.Contains(resp.Body.String(), `"name":"Cookies"`) {
		t.Fatalf("unexpected favorites %s", resp.Body.String())
	}
	resp = alice.expect(http.MethodGet, "/api/categories", nil, http.StatusOK)
	if !strings.Contains(resp.Body.String(), `["Favorites",`) {
		t.Fatalf("favorites category should come first: %s", resp.Body.String())
	}
	alice.expect(http.MethodDelete, "/api/favorites/3", nil, http.StatusOK)

	alice.expect(http.MethodPut, "/api/profile", dto.ProfileRequest{VenmoHandle: "@alice", PhoneNumber: "609-555-0101"}, http.StatusOK)
	resp = alice.expect(http.MethodGet, "/api/profile", nil, http.StatusOK)
	if !strings.Contains(resp.Body.String(), `"profile_complete":true`) {
		t.Fatalf("unexpected profile %s", resp.Body.String())
	}
}

func TestSetupAdminReset(t *testing.T) {
	engine := newEngine()
	anon := &client{t: t, engine: engine}

	anon.expect(http.MethodPost, "/api/admin/orders/reset", nil, http.StatusForbidden)
	resp := anon.do(http.MethodPost, "/api/admin/orders/reset", nil, "X-Admin-Token", "letmein")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with admin token, got %d", resp.Code)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

var _ handlers.MarketFacade = (*app.MarketFacade)(nil)
