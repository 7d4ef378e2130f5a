// Package dialect holds the constant rule tables a translator applies:
// ordered phrase substitutions, sentiment keywords with their closing
// remarks, and named post-processing patches.
package dialect

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// PirateName is the name of the built-in dialect.
const PirateName = "pirate"

//go:embed pirate.toml
var pirateTOML []byte

// ErrInvalidDialect is wrapped by every validation failure.
var ErrInvalidDialect = errors.New("invalid dialect")

// Phrase is a single literal substitution.
type Phrase struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Sentiment is the keyword set for one polarity and the remark appended when
// only that polarity is detected.
type Sentiment struct {
	Keywords []string `toml:"keywords"`
	Remark   string   `toml:"remark"`
}

// Patch is a literal fix-up applied after the closing remark. Patches exist to
// repair artifacts one phrase substitution leaves behind in another word.
type Patch struct {
	Name string `toml:"name"`
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Dialect is a complete, immutable rule set.
type Dialect struct {
	name     string
	phrases  []Phrase
	positive Sentiment
	negative Sentiment
	patches  []Patch
}

// file mirrors the TOML layout.
type file struct {
	Name     string    `toml:"name"`
	Phrases  []Phrase  `toml:"phrases"`
	Positive Sentiment `toml:"positive"`
	Negative Sentiment `toml:"negative"`
	Patches  []Patch   `toml:"patches"`
}

var pirate = sync.OnceValue(func() *Dialect {
	d, err := Parse(pirateTOML)
	if err != nil {
		panic(fmt.Sprintf("dialect: embedded pirate table: %v", err))
	}
	return d
})

// Pirate returns the built-in pirate dialect.
func Pirate() *Dialect {
	return pirate()
}

// Parse decodes and validates a dialect from TOML.
func Parse(data []byte) (*Dialect, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse dialect: %w", err)
	}

	d := &Dialect{
		name:     strings.TrimSpace(f.Name),
		phrases:  f.Phrases,
		positive: f.Positive,
		negative: f.Negative,
		patches:  f.Patches,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile reads a dialect from a TOML file.
func LoadFile(path string) (*Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect file %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Validate checks the tables can be applied. An empty source string would
// match between every rune, so it is rejected everywhere.
func (d *Dialect) Validate() error {
	if d.name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDialect)
	}
	if len(d.phrases) == 0 {
		return fmt.Errorf("%w: %s: at least one phrase is required", ErrInvalidDialect, d.name)
	}
	for i, p := range d.phrases {
		if p.From == "" {
			return fmt.Errorf("%w: %s: phrase %d has an empty source", ErrInvalidDialect, d.name, i+1)
		}
	}
	for _, s := range []struct {
		polarity string
		set      Sentiment
	}{
		{"positive", d.positive},
		{"negative", d.negative},
	} {
		for i, kw := range s.set.Keywords {
			if kw == "" {
				return fmt.Errorf("%w: %s: %s keyword %d is empty", ErrInvalidDialect, d.name, s.polarity, i+1)
			}
		}
	}
	for i, p := range d.patches {
		if p.From == "" {
			return fmt.Errorf("%w: %s: patch %d (%s) has an empty source", ErrInvalidDialect, d.name, i+1, p.Name)
		}
	}
	return nil
}

// Name returns the dialect name.
func (d *Dialect) Name() string { return d.name }

// Phrases returns the substitutions in priority order.
func (d *Dialect) Phrases() []Phrase {
	return append([]Phrase(nil), d.phrases...)
}

// Positive returns the positive keyword set.
func (d *Dialect) Positive() Sentiment { return d.positive.clone() }

// Negative returns the negative keyword set.
func (d *Dialect) Negative() Sentiment { return d.negative.clone() }

// Patches returns the post-processing patches in application order.
func (d *Dialect) Patches() []Patch {
	return append([]Patch(nil), d.patches...)
}

func (s Sentiment) clone() Sentiment {
	return Sentiment{
		Keywords: append([]string(nil), s.Keywords...),
		Remark:   s.Remark,
	}
}
