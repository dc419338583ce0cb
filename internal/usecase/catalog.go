package usecase

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

// FavoritesCategory is the pseudo category listing a user's favorite items.
const FavoritesCategory = "Favorites"

// CatalogItem is a catalog entry flagged for the requesting user.
type CatalogItem struct {
	model.Item
	IsFavorite bool
}

// CatalogUseCase serves the shop views of the catalog.
type CatalogUseCase struct {
	catalog   CatalogProvider
	favorites repository.FavoriteRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog CatalogProvider, favorites repository.FavoriteRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, favorites: favorites}
}

// Items returns the whole catalog ordered by item id.
func (u *CatalogUseCase) Items(ctx context.Context, userID string) ([]CatalogItem, error) {
	catalog, err := u.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}
	favorites, err := u.favoriteSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return flagItems(catalog, favorites, func(model.Item) bool { return true }), nil
}

// Categories returns display names sorted alphabetically, with Favorites
// first when the user has any.
func (u *CatalogUseCase) Categories(ctx context.Context, userID string) ([]string, error) {
	catalog, err := u.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, item := range catalog {
		name := displayName(item.Category)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)

	favorites, err := u.favorites.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) > 0 {
		names = append([]string{FavoritesCategory}, names...)
	}
	return names, nil
}

// CategoryItems returns the items of one category. Names match regardless of
// case, spaces and underscores; an unknown category yields an empty list.
func (u *CatalogUseCase) CategoryItems(ctx context.Context, userID, category string) ([]CatalogItem, error) {
	catalog, err := u.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}
	favorites, err := u.favoriteSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	if category == FavoritesCategory {
		return flagItems(catalog, favorites, func(item model.Item) bool {
			_, ok := favorites[item.ID]
			return ok
		}), nil
	}

	want := categoryKey(category)
	return flagItems(catalog, favorites, func(item model.Item) bool {
		return want != "" && categoryKey(item.Category) == want
	}), nil
}

// displayName turns a stored category such as SNACKS_AND_DRINKS into "Snacks And Drinks".
func displayName(category string) string {
	category = strings.TrimSpace(strings.ReplaceAll(category, "_", " "))
	return cases.Title(language.English).String(category)
}

func (u *CatalogUseCase) favoriteSet(ctx context.Context, userID string) (map[string]struct{}, error) {
	ids, err := u.favorites.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func categoryKey(category string) string {
	return strings.ToUpper(strings.NewReplacer(" ", "", "_", "").Replace(category))
}

func flagItems(catalog model.Catalog, favorites map[string]struct{}, keep func(model.Item) bool) []CatalogItem {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]CatalogItem, 0, len(ids))
	for _, id := range ids {
		item := catalog[id]
		if !keep(item) {
			continue
		}
		_, fav := favorites[id]
		items = append(items, CatalogItem{Item: item, IsFavorite: fav})
	}
	return items
}
