// Package translator rewrites sentences into a dialect.
//
// A translation is a straight pipeline: fold to lowercase, apply every phrase
// substitution in table order, look for sentiment keywords in the substituted
// text, append the closing remark for a single detected polarity, then run the
// dialect's patches. Translators never fail and keep no state that affects
// results, so one value can serve any number of goroutines.
package translator

import (
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pricofy/pirate-translator/internal/dialect"
	"github.com/pricofy/pirate-translator/internal/history"
)

// Sentiment is the polarity detected in a substituted sentence.
type Sentiment int

const (
	None Sentiment = iota
	Positive
	Negative
	// Mixed means both polarities matched. No remark is appended.
	Mixed
)

func (s Sentiment) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Mixed:
		return "mixed"
	default:
		return "none"
	}
}

// Result exposes every stage of a translation.
type Result struct {
	Folded      string
	Substituted string
	Positive    bool
	Negative    bool
	Sentiment   Sentiment
	Remark      string
	Output      string
}

// Translator applies one dialect.
type Translator struct {
	name     string
	phrases  []dialect.Phrase
	positive dialect.Sentiment
	negative dialect.Sentiment
	patches  []dialect.Patch

	history *history.Buffer
	cache   *lru.Cache[string, Result]
	logger  *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithHistory records every translation into b.
func WithHistory(b *history.Buffer) Option {
	return func(t *Translator) { t.history = b }
}

// WithCache memoizes up to size results keyed by the lowercased input.
// A size of zero or less disables the cache.
func WithCache(size int) Option {
	return func(t *Translator) {
		if size <= 0 {
			t.cache = nil
			return
		}
		c, err := lru.New[string, Result](size)
		if err != nil {
			return
		}
		t.cache = c
	}
}

// WithLogger sets the logger used for per-translation debug output.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) { t.logger = l }
}

// New creates a Translator for d.
func New(d *dialect.Dialect, opts ...Option) *Translator {
	t := &Translator{
		name:     d.Name(),
		phrases:  d.Phrases(),
		positive: d.Positive(),
		negative: d.Negative(),
		patches:  d.Patches(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Dialect returns the name of the dialect this Translator applies.
func (t *Translator) Dialect() string { return t.name }

// History returns the attached history buffer, or nil.
func (t *Translator) History() *history.Buffer { return t.history }

// Translate returns input rewritten into the dialect.
func (t *Translator) Translate(input string) string {
	return t.Analyze(input).Output
}

// Analyze translates input and reports the intermediate stages.
func (t *Translator) Analyze(input string) Result {
	folded := fold(input)

	res, hit := t.lookup(folded)
	if !hit {
		res = t.run(folded)
		if t.cache != nil {
			t.cache.Add(folded, res)
		}
	}

	if t.history != nil {
		t.history.Record(history.Entry{
			Dialect:   t.name,
			Input:     input,
			Output:    res.Output,
			Sentiment: res.Sentiment.String(),
		})
	}
	t.logger.Debug("translated",
		"dialect", t.name,
		"sentiment", res.Sentiment.String(),
		"cached", hit,
		"output", res.Output,
	)
	return res
}

// Preview translates input without touching the cache, the history buffer or
// the logger.
func (t *Translator) Preview(input string) Result {
	return t.run(fold(input))
}

func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

func (t *Translator) lookup(folded string) (Result, bool) {
	if t.cache == nil {
		return Result{}, false
	}
	return t.cache.Get(folded)
}

func (t *Translator) run(folded string) Result {
	res := Result{Folded: folded}

	// Sequential on purpose: each phrase sees the output of the ones before it.
	text := folded
	for _, p := range t.phrases {
		text = strings.ReplaceAll(text, p.From, p.To)
	}
	res.Substituted = text

	res.Positive = containsAny(text, t.positive.Keywords)
	res.Negative = containsAny(text, t.negative.Keywords)

	switch {
	case res.Positive && res.Negative:
		res.Sentiment = Mixed
	case res.Negative:
		res.Sentiment = Negative
		res.Remark = t.negative.Remark
	case res.Positive:
		res.Sentiment = Positive
		res.Remark = t.positive.Remark
	}
	text += res.Remark

	for _, p := range t.patches {
		text = strings.ReplaceAll(text, p.From, p.To)
	}
	res.Output = text
	return res
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
