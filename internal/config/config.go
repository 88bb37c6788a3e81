package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/virgilvox/launchcue-sub001/internal/client"
)

type contextKey string

const configKey contextKey = "cuectl-config"

// GlobalConfig holds shared configuration for all cuectl commands. Defaults
// come from the environment; the root command overrides them from flags and
// injects the result into the cobra command context.
type GlobalConfig struct {
	ServerURL      string `env:"LAUNCHCUE_SERVER" envDefault:"http://localhost:3000"`
	NonInteractive bool   `env:"LAUNCHCUE_NON_INTERACTIVE"`
	Provider       *client.Provider
}

// FromEnv builds a GlobalConfig from environment variables.
func FromEnv() (*GlobalConfig, error) {
	cfg := &GlobalConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// InjectConfig adds config to the cobra command context. Called by the root
// command's PersistentPreRunE.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for command
// RunE functions that run below the root command.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("cuectl: config not found in context - this is a bug in cuectl")
	}
	return cfg
}
