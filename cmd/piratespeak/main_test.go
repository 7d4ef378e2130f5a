package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DIALECT", "DIALECT_FILE", "HISTORY_SIZE", "CACHE_SIZE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestRun_Args(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	err := run([]string{"Hello,", "my", "friend"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "ahoy, me me bucko\n", stdout.String())
}

func TestRun_Stdin(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	in := strings.NewReader("I love you\nI love and hate you\n\n")
	err := run(nil, in, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "i love ye 'tis like me pirate treasure!\ni love and hate ye\n\n", stdout.String())
}

func TestRun_History(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	err := run([]string{"-history", "where", "is", "the", "officer"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "whar be the foul blaggart\n", stdout.String())
	assert.Contains(t, stderr.String(), `"input": "where is the officer"`)
	assert.Contains(t, stderr.String(), `"output": "whar be the foul blaggart"`)
}

func TestRun_DialectFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cowboy.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"cowboy\"\n[[phrases]]\nfrom = \"hello\"\nto = \"howdy\"\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-dialect-file", path, "-dialect", "cowboy", "hello", "you"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "howdy you\n", stdout.String())
}

func TestRun_UnknownDialect(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	err := run([]string{"-dialect", "klingon", "hello"}, strings.NewReader(""), &stdout, &stderr)
	assert.Error(t, err)
	assert.Empty(t, stdout.String())
}

func TestRun_LongLine(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	line := strings.Repeat("hello ", 20000)
	require.Greater(t, len(line), 64*1024)

	err := run(nil, strings.NewReader(line+"\nyou\n"), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ahoy ", 20000)+"\nye\n", stdout.String())
}
