package di

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/polkiloo/tigercart/internal/adapter/cas"
	"github.com/polkiloo/tigercart/internal/adapter/catalog"
	"github.com/polkiloo/tigercart/internal/adapter/events"
	"github.com/polkiloo/tigercart/internal/app"
	"github.com/polkiloo/tigercart/internal/config"
	"github.com/polkiloo/tigercart/internal/logger"
	"github.com/polkiloo/tigercart/internal/metrics"
	"github.com/polkiloo/tigercart/internal/pkg/auth"
	"github.com/polkiloo/tigercart/internal/server/http/handlers"
	"github.com/polkiloo/tigercart/internal/server/http/router"
	"github.com/polkiloo/tigercart/internal/storage/postgres"
	"github.com/polkiloo/tigercart/internal/storage/redis"
	"github.com/polkiloo/tigercart/internal/usecase"
	"github.com/polkiloo/tigercart/internal/worker"
)

// Module assembles the application graph. Extra options are appended last so
// tests can replace infrastructure.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: l}
		}),
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		redis.Module,
		catalog.Module,
		cas.Module,
		events.Module,
		metrics.Module,
		usecase.Module,
		fx.Provide(
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(c catalog.Client) usecase.CatalogProvider { return c },
			func(c cas.Client) usecase.TicketValidator { return c },
			func(d *worker.EventDispatcher) usecase.EventSink { return d },
			func(p events.Publisher) worker.Publisher { return p },
			func(m *metrics.Metrics) worker.Recorder { return m },
			func(f *app.MarketFacade) handlers.MarketFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
