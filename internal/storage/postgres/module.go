package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/tigercart/internal/config"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

// Module provides the PostgreSQL pool together with the user, order, rating
// and favorite repositories backed by it.
var Module = fx.Options(
	fx.Provide(newStorage, newRepositories),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type repositories struct {
	fx.Out

	Users      repository.UserRepository
	Orders     repository.OrderRepository
	Ratings    repository.RatingRepository
	Favorites  repository.FavoriteRepository
	Transactor repository.Transactor
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func newRepositories(s *Storage) repositories {
	return repositories{
		Users:      s.Users(),
		Orders:     s.Orders(),
		Ratings:    s.Ratings(),
		Favorites:  s.Favorites(),
		Transactor: s,
	}
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			storage.Close()
			logger.Info("postgres pool closed")
			return nil
		},
	})
}
