package repository

import (
	"context"

	"github.com/polkiloo/tigercart/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Ensure(ctx context.Context, id string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	UpdateContact(ctx context.Context, id string, contact model.Contact) error
}

// RatingRepository keeps per-user rating aggregates.
type RatingRepository interface {
	Record(ctx context.Context, userID string, role model.RatingRole, rating int) error
	Stats(ctx context.Context, userID string, role model.RatingRole) (model.RatingStats, error)
}

// FavoriteRepository stores items a user marked as favorite.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, itemID string) error
	Remove(ctx context.Context, userID, itemID string) error
	List(ctx context.Context, userID string) ([]string, error)
}
