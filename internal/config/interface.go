package config

import (
	"context"
	"fmt"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given files or directories and
	// translates it into the format-agnostic model. Paths holding no file
	// of the loader's format contribute nothing.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Chain returns a Loader that runs each loader over the same paths and
// merges their models in order.
func Chain(loaders ...Loader) Loader {
	return chain(loaders)
}

type chain []Loader

func (c chain) Load(ctx context.Context, paths ...string) (*Model, error) {
	model := &Model{}
	for _, l := range c {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return model, nil
}
