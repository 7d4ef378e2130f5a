// Package main is the entry point for the translator Lambda function.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/pricofy/pirate-translator/internal/app"
	"github.com/pricofy/pirate-translator/internal/config"
	"github.com/pricofy/pirate-translator/internal/handler"
	"github.com/pricofy/pirate-translator/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.Init(cfg.LogLevel, cfg.LogFormat)

	r, err := app.NewRouter(cfg, logger)
	if err != nil {
		logger.Error("failed to build translators", "error", err)
		os.Exit(1)
	}

	h := handler.New(r, logger)
	w := newWarmer(cfg.FunctionName, r, logger)

	logger.Info("translator ready",
		"environment", cfg.Environment,
		"dialects", r.SupportedDialects(),
		"default", r.Default(),
	)
	lambda.Start(handleRequest(h, w))
}

func handleRequest(h *handler.Handler, w *warmer) func(context.Context, json.RawMessage) (interface{}, error) {
	return func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		// Warmup detection (MUST be first - before any other processing)
		if warmup, ok := IsWarmupEvent(event); ok {
			return w.Handle(ctx, warmup)
		}

		var req handler.Request
		if err := json.Unmarshal(event, &req); err != nil {
			return nil, err
		}

		return h.Handle(ctx, req)
	}
}
