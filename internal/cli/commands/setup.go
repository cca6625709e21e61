package commands

import (
	"context"
	"log/slog"

	"github.com/datavisbr/painel-salarios/internal/cli/config"
	"github.com/datavisbr/painel-salarios/internal/dataset"
	"github.com/datavisbr/painel-salarios/internal/store"
	"github.com/datavisbr/painel-salarios/internal/translate"
)

// Helper functions shared across commands

// getConfig returns the current configuration, falling back to defaults when
// LoadConfig has not run (tests mostly).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Data: config.DataConfig{URL: dataset.DefaultURL},
		UI: config.UIConfig{
			Port:       config.DefaultPort,
			AutoOpen:   true,
			Watch:      true,
			TableLimit: config.DefaultTableLimit,
		},
	}
}

// buildStore fetches the salary dataset and loads its translated rows into an
// in-memory analytical store. The returned cache is the handle for reloads.
func buildStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store.Store, *dataset.Cache, error) {
	cache := dataset.NewCache(dataset.Source{URL: cfg.Data.URL, File: cfg.Data.File}, logger)

	snap, err := cache.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(ctx, "", logger)
	if err != nil {
		return nil, nil, err
	}
	if err := st.Load(ctx, translate.ApplyAll(snap.Records)); err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return st, cache, nil
}
