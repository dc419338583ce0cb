package repository

import (
	"context"

	"github.com/polkiloo/tigercart/internal/domain/model"
)

// CartRepository keeps the live cart of each shopper.
type CartRepository interface {
	Get(ctx context.Context, userID string) (model.Cart, error)
	Add(ctx context.Context, userID, itemID string, quantity int) (int, error)
	SetQuantity(ctx context.Context, userID, itemID string, quantity int) error
	// Decrement lowers the quantity by one and drops the item at zero.
	Decrement(ctx context.Context, userID, itemID string) (int, error)
	Remove(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}
