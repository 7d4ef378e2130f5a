// Package domain contains the request and response types of the translator.
package domain

import "github.com/pricofy/pirate-translator/internal/history"

// Request is the input to the translator.
type Request struct {
	Texts          []string `json:"texts"`
	Dialect        string   `json:"dialect,omitempty"`
	IncludeHistory bool     `json:"includeHistory,omitempty"`
}

// Response is the output from the translator.
type Response struct {
	Translations []string        `json:"translations,omitempty"`
	Dialect      string          `json:"dialect,omitempty"`
	History      []history.Entry `json:"history,omitempty"`
	Error        string          `json:"error,omitempty"`
}
