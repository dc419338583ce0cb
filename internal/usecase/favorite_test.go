package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	testhelpers "github.com/polkiloo/tigercart/internal/test"
)

func TestFavoriteUseCaseLifecycle(t *testing.T) {
	repo := &testhelpers.FavoriteRepositoryStub{}
	uc := NewFavoriteUseCase(repo, testhelpers.CatalogStub{Catalog: testhelpers.SampleCatalog()}, discardLogger())
	ctx := context.Background()

	for _, id := range []string{"2", "1", "2"} {
		if err := uc.Add(ctx, "alice", id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	items, err := uc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Soda" || items[1].Name != "Chips" {
		t.Fatalf("unexpected favorites %+v", items)
	}

	if err := uc.Remove(ctx, "alice", "2"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items, _ = uc.List(ctx, "alice")
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("unexpected favorites after removal %+v", items)
	}

	if err := uc.Add(ctx, "alice", "404"); !errors.Is(err, domainErrors.ErrItemNotFound) {
		t.Fatalf("expected item not found, got %v", err)
	}
}

func TestFavoriteUseCaseSkipsItemsMissingFromCatalog(t *testing.T) {
	repo := &testhelpers.FavoriteRepositoryStub{Items: map[string][]string{"alice": {"retired", "3"}}}
	uc := NewFavoriteUseCase(repo, testhelpers.CatalogStub{Catalog: testhelpers.SampleCatalog()}, discardLogger())

	items, err := uc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != "3" {
		t.Fatalf("unexpected favorites %+v", items)
	}

	empty, err := uc.List(context.Background(), "bob")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %v (%v)", empty, err)
	}
}

func TestFavoriteUseCaseHidesPersistenceErrors(t *testing.T) {
	repo := &testhelpers.FavoriteRepositoryStub{Err: errors.New("constraint violation")}
	uc := NewFavoriteUseCase(repo, testhelpers.CatalogStub{Catalog: testhelpers.SampleCatalog()}, discardLogger())
	ctx := context.Background()

	if err := uc.Add(ctx, "alice", "1"); !errors.Is(err, domainErrors.ErrFavoritesUnavailable) {
		t.Fatalf("add: expected generic failure, got %v", err)
	}
	if err := uc.Remove(ctx, "alice", "1"); !errors.Is(err, domainErrors.ErrFavoritesUnavailable) {
		t.Fatalf("remove: expected generic failure, got %v", err)
	}
	if _, err := uc.List(ctx, "alice"); !errors.Is(err, domainErrors.ErrFavoritesUnavailable) {
		t.Fatalf("list: expected generic failure, got %v", err)
	}
}
