package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/pirate-translator/internal/dialect"
	"github.com/pricofy/pirate-translator/internal/history"
	"github.com/pricofy/pirate-translator/internal/translator"
)

func cowboy(t *testing.T) *translator.Translator {
	t.Helper()
	d, err := dialect.Parse([]byte("name = \"cowboy\"\n[[phrases]]\nfrom = \"hello\"\nto = \"howdy\"\n"))
	require.NoError(t, err)
	return translator.New(d)
}

func newRouter(t *testing.T) *Router {
	t.Helper()
	pirate := translator.New(dialect.Pirate(), translator.WithHistory(history.New(5, nil)))
	r, err := New(dialect.PirateName, pirate, cowboy(t))
	require.NoError(t, err)
	return r
}

func TestNew_UnknownDefault(t *testing.T) {
	_, err := New("klingon", translator.New(dialect.Pirate()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestIsValidDialect(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		dialect  string
		expected bool
	}{
		{"pirate", true},
		{"cowboy", true},
		{"", false},
		{"Pirate", false},
		{"klingon", false},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.IsValidDialect(tt.dialect))
		})
	}
}

func TestSupportedDialects(t *testing.T) {
	r := newRouter(t)
	assert.Equal(t, []string{"cowboy", "pirate"}, r.SupportedDialects())
	assert.Equal(t, "pirate", r.Default())
}

func TestTranslate(t *testing.T) {
	r := newRouter(t)

	out, err := r.Translate("pirate", []string{"Hello", "I love you", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"ahoy", "i love ye 'tis like me pirate treasure!", ""}, out)

	out, err = r.Translate("cowboy", []string{"hello there"})
	require.NoError(t, err)
	assert.Equal(t, []string{"howdy there"}, out)

	out, err = r.Translate("pirate", []string{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTranslate_UnsupportedDialect(t *testing.T) {
	r := newRouter(t)

	_, err := r.Translate("klingon", []string{"hello"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
	assert.Contains(t, err.Error(), "klingon")
}

func TestHistory(t *testing.T) {
	r := newRouter(t)

	_, err := r.Translate("pirate", []string{"hello", "my friend"})
	require.NoError(t, err)

	entries, err := r.History("pirate")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ahoy", entries[0].Output)
	assert.Equal(t, "me me bucko", entries[1].Output)

	entries, err = r.History("cowboy")
	require.NoError(t, err)
	assert.Nil(t, entries)

	_, err = r.History("klingon")
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}
