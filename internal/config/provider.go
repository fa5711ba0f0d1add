// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// Provider loads configuration. Commands depend on it so tests can swap
	// in a fixed config.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
	}

	fileProvider struct{}

	staticProvider struct {
		cfg *Config
	}
)

// NewProvider returns the file and environment backed provider.
func NewProvider() Provider {
	return fileProvider{}
}

// NewStaticProvider returns a provider that always yields cfg.
func NewStaticProvider(cfg *Config) Provider {
	return staticProvider{cfg: cfg}
}

func (fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := Load(ctx, opts)
	return cfg, err
}

func (p staticProvider) Load(context.Context, LoadOptions) (*Config, error) {
	c := *p.cfg
	return &c, nil
}
