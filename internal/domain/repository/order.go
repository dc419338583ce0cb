package repository

import (
	"context"

	"github.com/polkiloo/tigercart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// GetForUpdate locks the row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*model.Order, error)
	Save(ctx context.Context, order *model.Order) error
	// Claim moves a PLACED order to CLAIMED in a single conditional update.
	Claim(ctx context.Context, id int64, delivererID string) error
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	ListClaimedBy(ctx context.Context, delivererID string) ([]model.Order, error)
	LatestByUser(ctx context.Context, userID string) (*model.Order, error)
	DeleteAll(ctx context.Context) (int64, error)
}
