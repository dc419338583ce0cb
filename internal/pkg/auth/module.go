package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/tigercart/internal/config"
)

// Module provides session token and secret hashing primitives via fx.
var Module = fx.Options(
	fx.Provide(newSecretHasher),
	fx.Provide(newTokenStrategy),
)

func newSecretHasher() SecretHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	opts := Options{TTL: p.Config.SessionTTL}
	if p.Config.TokenStrategy == config.TokenStrategyJWT {
		return NewJWTStrategy(p.Config.SessionSecret, opts)
	}
	return NewHMACStrategy(p.Config.SessionSecret, opts)
}
