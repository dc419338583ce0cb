package config

import "go.uber.org/fx"

// Module provides the *Config parsed from flags, the environment and .env.
var Module = fx.Provide(Load)
