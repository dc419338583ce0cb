package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

// FavoriteUseCase manages favorite items.
type FavoriteUseCase struct {
	favorites repository.FavoriteRepository
	catalog   CatalogProvider
	logger    *slog.Logger
}

// NewFavoriteUseCase constructs FavoriteUseCase.
func NewFavoriteUseCase(favorites repository.FavoriteRepository, catalog CatalogProvider, logger *slog.Logger) *FavoriteUseCase {
	return &FavoriteUseCase{favorites: favorites, catalog: catalog, logger: logger}
}

// Add marks a catalog item as favorite. Adding twice is a no-op.
func (u *FavoriteUseCase) Add(ctx context.Context, userID, itemID string) error {
	catalog, err := u.catalog.Items(ctx)
	if err != nil {
		return err
	}
	if _, ok := catalog[itemID]; !ok {
		return domainErrors.ErrItemNotFound
	}
	if err := u.favorites.Add(ctx, userID, itemID); err != nil {
		u.logger.Error("failed to add favorite",
			slog.String("user_id", userID),
			slog.String("item_id", itemID),
			slog.String("error", err.Error()),
		)
		return domainErrors.ErrFavoritesUnavailable
	}
	return nil
}

// Remove unmarks an item.
func (u *FavoriteUseCase) Remove(ctx context.Context, userID, itemID string) error {
	if err := u.favorites.Remove(ctx, userID, itemID); err != nil {
		u.logger.Error("failed to remove favorite",
			slog.String("user_id", userID),
			slog.String("item_id", itemID),
			slog.String("error", err.Error()),
		)
		return domainErrors.ErrFavoritesUnavailable
	}
	return nil
}

// List returns favorite items still present in the catalog.
func (u *FavoriteUseCase) List(ctx context.Context, userID string) ([]model.Item, error) {
	ids, err := u.favorites.List(ctx, userID)
	if err != nil {
		u.logger.Error("failed to list favorites",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil, domainErrors.ErrFavoritesUnavailable
	}
	if len(ids) == 0 {
		return []model.Item{}, nil
	}

	catalog, err := u.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := catalog[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}
