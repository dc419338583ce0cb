package cas

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/tigercart/internal/config"
)

// Module exposes the CAS client to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.CASURL, p.Config.RequestTimeout, p.Logger)
}
