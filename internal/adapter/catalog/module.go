package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/tigercart/internal/config"
)

// Module exposes catalog client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.CatalogServiceAddress, p.Config.RequestTimeout, p.Logger)
}
