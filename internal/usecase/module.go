package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/tigercart/internal/config"
	"github.com/polkiloo/tigercart/internal/domain/repository"
	pkgAuth "github.com/polkiloo/tigercart/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewRatingUseCase,
	NewOrderUseCase,
	NewCartUseCase,
	NewCatalogUseCase,
	NewFavoriteUseCase,
	NewProfileUseCase,
)

type authParams struct {
	fx.In

	Config   *config.Config
	Users    repository.UserRepository
	CAS      TicketValidator
	Strategy pkgAuth.Strategy
	Hasher   pkgAuth.SecretHasher
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.CAS, p.Strategy, p.Hasher, p.Config.AdminTokenHash)
}
