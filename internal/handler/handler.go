// Package handler provides the Lambda handler for the translator.
package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pricofy/pirate-translator/internal/domain"
	"github.com/pricofy/pirate-translator/internal/router"
)

// Request is the input to the translator.
type Request = domain.Request

// Response is the output from the translator.
type Response = domain.Response

// Handler answers translation requests.
type Handler struct {
	router *router.Router
	logger *slog.Logger
}

// New creates a Handler. A nil logger uses slog.Default().
func New(r *router.Router, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{router: r, logger: logger}
}

// Handle processes a translation request.
// Failures are reported in Response.Error; the returned error is reserved for
// conditions the Lambda runtime itself should see.
func (h *Handler) Handle(ctx context.Context, req Request) (*Response, error) {
	if req.Dialect == "" {
		req.Dialect = h.router.Default()
	}

	// Validate request
	if err := h.validateRequest(req); err != nil {
		h.logger.WarnContext(ctx, "invalid request", "dialect", req.Dialect, "error", err)
		return &Response{Error: err.Error()}, nil
	}

	resp := &Response{Dialect: req.Dialect}

	// Empty input - nothing to translate
	if len(req.Texts) == 0 {
		resp.Translations = []string{}
	} else {
		translations, err := h.router.Translate(req.Dialect, req.Texts)
		if err != nil {
			return &Response{Error: fmt.Sprintf("translation failed: %v", err)}, nil
		}
		resp.Translations = translations
	}

	if req.IncludeHistory {
		entries, err := h.router.History(req.Dialect)
		if err != nil {
			return &Response{Error: fmt.Sprintf("failed to read history: %v", err)}, nil
		}
		resp.History = entries
	}

	h.logger.InfoContext(ctx, "translated request",
		"dialect", req.Dialect,
		"texts", len(req.Texts),
		"history", len(resp.History),
	)
	return resp, nil
}

// validateRequest checks the request is valid. The dialect has already been
// defaulted.
func (h *Handler) validateRequest(req Request) error {
	if req.Texts == nil {
		return fmt.Errorf("texts is required")
	}
	if !h.router.IsValidDialect(req.Dialect) {
		return fmt.Errorf("no translator for dialect %q", req.Dialect)
	}
	return nil
}
