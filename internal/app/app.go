// Package app assembles translators and the router from configuration.
package app

import (
	"fmt"
	"log/slog"

	"github.com/pricofy/pirate-translator/internal/config"
	"github.com/pricofy/pirate-translator/internal/dialect"
	"github.com/pricofy/pirate-translator/internal/history"
	"github.com/pricofy/pirate-translator/internal/router"
	"github.com/pricofy/pirate-translator/internal/translator"
)

// NewRouter builds a Router serving the built-in pirate dialect plus the
// dialect in cfg.DialectFile, if set. Each translator gets its own history
// buffer and cache.
func NewRouter(cfg config.Config, logger *slog.Logger) (*router.Router, error) {
	dialects := []*dialect.Dialect{dialect.Pirate()}

	if cfg.DialectFile != "" {
		d, err := dialect.LoadFile(cfg.DialectFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load dialect: %w", err)
		}
		dialects = append(dialects, d)
		logger.Info("dialect loaded", "dialect", d.Name(), "file", cfg.DialectFile, "phrases", len(d.Phrases()))
	}

	translators := make([]*translator.Translator, 0, len(dialects))
	for _, d := range dialects {
		opts := []translator.Option{
			translator.WithLogger(logger),
			translator.WithCache(cfg.CacheSize),
		}
		if cfg.HistorySize > 0 {
			opts = append(opts, translator.WithHistory(history.New(cfg.HistorySize, nil)))
		}
		translators = append(translators, translator.New(d, opts...))
	}

	r, err := router.New(cfg.Dialect, translators...)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}
	return r, nil
}
