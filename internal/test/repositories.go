package test

import (
	"context"
	"sort"
	"sync"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Err   error

	mu sync.Mutex
}

// NewUserRepositoryStub constructs stub repository seeded with the given users.
func NewUserRepositoryStub(users ...model.User) *UserRepositoryStub {
	s := &UserRepositoryStub{Users: make(map[string]*model.User)}
	for _, u := range users {
		u := u
		s.Users[u.ID] = &u
	}
	return s
}

// Ensure returns the existing user or creates one named after the id.
func (s *UserRepositoryStub) Ensure(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if u, ok := s.Users[id]; ok {
		cp := *u
		return &cp, nil
	}
	u := &model.User{ID: id, Name: id}
	s.Users[id] = u
	cp := *u
	return &cp, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if u, ok := s.Users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

// UpdateContact replaces contact details of a stored user.
func (s *UserRepositoryStub) UpdateContact(ctx context.Context, id string, contact model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	u, ok := s.Users[id]
	if !ok {
		return domainErrors.ErrUserNotFound
	}
	u.VenmoHandle = contact.VenmoHandle
	u.PhoneNumber = contact.PhoneNumber
	return nil
}

// RatingRepositoryStub keeps rating aggregates on the users of a UserRepositoryStub.
type RatingRepositoryStub struct {
	Users     *UserRepositoryStub
	RecordErr error
}

// Record adds a score to the user's aggregate for role.
func (s *RatingRepositoryStub) Record(ctx context.Context, userID string, role model.RatingRole, rating int) error {
	if s.RecordErr != nil {
		return s.RecordErr
	}
	s.Users.mu.Lock()
	defer s.Users.mu.Unlock()
	u, ok := s.Users.Users[userID]
	if !ok {
		return domainErrors.ErrUserNotFound
	}
	stats := &u.ShopperRating
	if role == model.RoleDeliverer {
		stats = &u.DelivererRating
	}
	stats.Sum += rating
	stats.Count++
	return nil
}

// Stats returns the user's aggregate for role.
func (s *RatingRepositoryStub) Stats(ctx context.Context, userID string, role model.RatingRole) (model.RatingStats, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return model.RatingStats{}, err
	}
	return u.Rating(role), nil
}

// OrderRepositoryStub is an in-memory order store. Claim is a conditional
// update guarded by a mutex, so concurrent claims have a single winner.
type OrderRepositoryStub struct {
	Orders map[int64]*model.Order
	Next   int64

	CreateErr error
	SaveErr   error
	ListErr   error

	Saved int

	mu sync.Mutex
}

// NewOrderRepositoryStub constructs an empty order store.
func NewOrderRepositoryStub(orders ...model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{Orders: make(map[int64]*model.Order)}
	for _, o := range orders {
		o := o
		s.Orders[o.ID] = &o
		if o.ID > s.Next {
			s.Next = o.ID
		}
	}
	return s
}

// Create stores a copy of the order under the next identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	s.Next++
	stored := *order
	stored.ID = s.Next
	s.Orders[stored.ID] = &stored
	created := stored
	return &created, nil
}

// GetByID returns a copy of the stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

// GetForUpdate behaves like GetByID.
func (s *OrderRepositoryStub) GetForUpdate(ctx context.Context, id int64) (*model.Order, error) {
	return s.GetByID(ctx, id)
}

// Save overwrites the stored order.
func (s *OrderRepositoryStub) Save(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if _, ok := s.Orders[order.ID]; !ok {
		return domainErrors.ErrOrderNotFound
	}
	cp := *order
	s.Orders[order.ID] = &cp
	s.Saved++
	return nil
}

// Claim moves a PLACED order to CLAIMED.
func (s *OrderRepositoryStub) Claim(ctx context.Context, id int64, delivererID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrOrderNotFound
	}
	if o.Status != model.OrderStatusPlaced {
		return domainErrors.ErrAlreadyClaimed
	}
	o.Status = model.OrderStatusClaimed
	o.ClaimedBy = delivererID
	return nil
}

// ListByUser returns the user's orders, newest first.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	result, err := s.filter(func(o *model.Order) bool { return o.UserID == userID })
	if err != nil {
		return nil, err
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// ListByStatus returns orders with the status, oldest first.
func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return s.filter(func(o *model.Order) bool { return o.Status == status })
}

// ListClaimedBy returns CLAIMED orders of the deliverer, oldest first.
func (s *OrderRepositoryStub) ListClaimedBy(ctx context.Context, delivererID string) ([]model.Order, error) {
	return s.filter(func(o *model.Order) bool {
		return o.Status == model.OrderStatusClaimed && o.ClaimedBy == delivererID
	})
}

// LatestByUser returns the user's most recent order.
func (s *OrderRepositoryStub) LatestByUser(ctx context.Context, userID string) (*model.Order, error) {
	orders, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domainErrors.ErrOrderNotFound
	}
	return &orders[0], nil
}

// DeleteAll drops every order.
func (s *OrderRepositoryStub) DeleteAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.Orders))
	s.Orders = make(map[int64]*model.Order)
	return n, nil
}

func (s *OrderRepositoryStub) filter(keep func(*model.Order) bool) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	result := make([]model.Order, 0)
	for _, o := range s.Orders {
		if keep(o) {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// FavoriteRepositoryStub stores favorites per user in insertion order.
type FavoriteRepositoryStub struct {
	Items map[string][]string
	Err   error
}

// Add appends the item unless already present.
func (s *FavoriteRepositoryStub) Add(ctx context.Context, userID, itemID string) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Items == nil {
		s.Items = make(map[string][]string)
	}
	for _, id := range s.Items[userID] {
		if id == itemID {
			return nil
		}
	}
	s.Items[userID] = append(s.Items[userID], itemID)
	return nil
}

// Remove drops the item if present.
func (s *FavoriteRepositoryStub) Remove(ctx context.Context, userID, itemID string) error {
	if s.Err != nil {
		return s.Err
	}
	kept := s.Items[userID][:0]
	for _, id := range s.Items[userID] {
		if id != itemID {
			kept = append(kept, id)
		}
	}
	if s.Items != nil {
		s.Items[userID] = kept
	}
	return nil
}

// List returns the user's favorites.
func (s *FavoriteRepositoryStub) List(ctx context.Context, userID string) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]string(nil), s.Items[userID]...), nil
}

// CartRepositoryStub keeps carts in memory.
type CartRepositoryStub struct {
	Carts    map[string]model.Cart
	Err      error
	ClearErr error
}

// NewCartRepositoryStub constructs an empty cart store.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[string]model.Cart)}
}

func (s *CartRepositoryStub) cart(userID string) model.Cart {
	if s.Carts == nil {
		s.Carts = make(map[string]model.Cart)
	}
	c, ok := s.Carts[userID]
	if !ok {
		c = model.Cart{}
		s.Carts[userID] = c
	}
	return c
}

// Get returns a copy of the user's cart.
func (s *CartRepositoryStub) Get(ctx context.Context, userID string) (model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	cp := model.Cart{}
	for id, qty := range s.Carts[userID] {
		cp[id] = qty
	}
	return cp, nil
}

// Add increments the quantity.
func (s *CartRepositoryStub) Add(ctx context.Context, userID, itemID string, quantity int) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if quantity <= 0 {
		return 0, domainErrors.ErrInvalidQuantity
	}
	c := s.cart(userID)
	c[itemID] += quantity
	return c[itemID], nil
}

// SetQuantity overwrites the quantity.
func (s *CartRepositoryStub) SetQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	s.cart(userID)[itemID] = quantity
	return nil
}

// Decrement lowers the quantity and drops the item at zero.
func (s *CartRepositoryStub) Decrement(ctx context.Context, userID, itemID string) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	c := s.cart(userID)
	qty, ok := c[itemID]
	if !ok {
		return 0, domainErrors.ErrNotInCart
	}
	qty--
	if qty <= 0 {
		delete(c, itemID)
		return 0, nil
	}
	c[itemID] = qty
	return qty, nil
}

// Remove deletes the item.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, itemID string) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.cart(userID), itemID)
	return nil
}

// Clear empties the cart.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID string) error {
	if s.ClearErr != nil {
		return s.ClearErr
	}
	delete(s.Carts, userID)
	return nil
}

// TransactorStub runs the callback directly and counts invocations.
type TransactorStub struct {
	Calls int
	Err   error
}

// WithinTransaction invokes fn unless a begin error is configured.
func (s *TransactorStub) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	return fn(ctx)
}

var (
	_ repository.UserRepository     = (*UserRepositoryStub)(nil)
	_ repository.RatingRepository   = (*RatingRepositoryStub)(nil)
	_ repository.OrderRepository    = (*OrderRepositoryStub)(nil)
	_ repository.FavoriteRepository = (*FavoriteRepositoryStub)(nil)
	_ repository.CartRepository     = (*CartRepositoryStub)(nil)
	_ repository.Transactor         = (*TransactorStub)(nil)
)
