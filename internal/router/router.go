// Package router routes translation requests to the translator serving the
// requested dialect.
package router

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pricofy/pirate-translator/internal/history"
	"github.com/pricofy/pirate-translator/internal/translator"
)

// ErrUnsupportedDialect is returned for dialects no translator serves.
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// Router maps dialect names to translators.
type Router struct {
	translators    map[string]*translator.Translator
	defaultDialect string
}

// New creates a Router. defaultDialect must be served by one of translators.
// When two translators share a dialect name, the later one wins.
func New(defaultDialect string, translators ...*translator.Translator) (*Router, error) {
	r := &Router{
		translators:    make(map[string]*translator.Translator, len(translators)),
		defaultDialect: defaultDialect,
	}
	for _, t := range translators {
		r.translators[t.Dialect()] = t
	}

	if !r.IsValidDialect(defaultDialect) {
		return nil, fmt.Errorf("default dialect %q: %w", defaultDialect, ErrUnsupportedDialect)
	}
	return r, nil
}

// IsValidDialect checks if a dialect can be translated.
func (r *Router) IsValidDialect(name string) bool {
	_, ok := r.translators[name]
	return ok
}

// Default returns the dialect used when a request names none.
func (r *Router) Default() string {
	return r.defaultDialect
}

// SupportedDialects returns the served dialect names, sorted.
func (r *Router) SupportedDialects() []string {
	names := make([]string, 0, len(r.translators))
	for name := range r.translators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translator returns the translator for a dialect.
func (r *Router) Translator(name string) (*translator.Translator, error) {
	t, ok := r.translators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, name)
	}
	return t, nil
}

// Translate translates every text with the given dialect, preserving order.
func (r *Router) Translate(dialect string, texts []string) ([]string, error) {
	t, err := r.Translator(dialect)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = t.Translate(text)
	}
	return out, nil
}

// History returns the recent translations for a dialect, oldest first.
// Dialects without a history buffer return nil.
func (r *Router) History(dialect string) ([]history.Entry, error) {
	t, err := r.Translator(dialect)
	if err != nil {
		return nil, err
	}
	if t.History() == nil {
		return nil, nil
	}
	return t.History().Recent(), nil
}
