package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

// Cart adjustments accepted by Adjust.
const (
	CartIncrease = "increase"
	CartDecrease = "decrease"
)

// CartLineView is one priced cart entry.
type CartLineView struct {
	ItemID    string
	Name      string
	Price     float64
	Quantity  int
	LineTotal float64
}

// CartView is the live cart priced against the current catalog.
type CartView struct {
	Lines   []CartLineView
	Missing []string
	Totals  model.Totals
	Count   int
}

// CartUseCase manages the shopper's live cart.
type CartUseCase struct {
	carts   repository.CartRepository
	catalog CatalogProvider
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, catalog CatalogProvider) *CartUseCase {
	return &CartUseCase{carts: carts, catalog: catalog}
}

// View prices the cart. Items no longer in the catalog are listed in Missing
// and left out of the totals.
func (u *CartUseCase) View(ctx context.Context, userID string) (*CartView, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := u.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, missing := cart.Snapshot(catalog)
	view := &CartView{
		Lines:   make([]CartLineView, 0, len(snapshot)),
		Missing: missing,
		Totals:  model.PriceOf(snapshot.Subtotal()),
		Count:   cart.Count(),
	}
	for _, id := range snapshot.ItemIDs() {
		line := snapshot[id]
		view.Lines = append(view.Lines, CartLineView{
			ItemID:    id,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: model.Round(float64(line.Quantity)*line.Price, 2),
		})
	}
	return view, nil
}

// Add puts one more unit of a catalog item into the cart.
func (u *CartUseCase) Add(ctx context.Context, userID, itemID string) (int, error) {
	if err := u.requireItem(ctx, itemID); err != nil {
		return 0, err
	}
	return u.carts.Add(ctx, userID, itemID, 1)
}

// Update sets an explicit quantity.
func (u *CartUseCase) Update(ctx context.Context, userID, itemID string, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	if err := u.requireItem(ctx, itemID); err != nil {
		return err
	}
	return u.carts.SetQuantity(ctx, userID, itemID, quantity)
}

// Adjust increases or decreases the quantity by one. Decreasing the last unit
// removes the item. It returns the resulting quantity.
func (u *CartUseCase) Adjust(ctx context.Context, userID, itemID, action string) (int, error) {
	switch action {
	case CartIncrease:
		return u.Add(ctx, userID, itemID)
	case CartDecrease:
		return u.carts.Decrement(ctx, userID, itemID)
	default:
		return 0, domainErrors.ErrInvalidCartAction
	}
}

// Remove deletes the item from the cart.
func (u *CartUseCase) Remove(ctx context.Context, userID, itemID string) error {
	return u.carts.Remove(ctx, userID, itemID)
}

// Count returns the number of distinct items in the cart.
func (u *CartUseCase) Count(ctx context.Context, userID string) (int, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (u *CartUseCase) requireItem(ctx context.Context, itemID string) error {
	catalog, err := u.catalog.Items(ctx)
	if err != nil {
		return err
	}
	if _, ok := catalog[itemID]; !ok {
		return domainErrors.ErrItemNotFound
	}
	return nil
}
