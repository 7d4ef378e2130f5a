// Command piratespeak translates text from the command line or stdin.
//
//	piratespeak hello my friend
//	echo "i love you" | piratespeak
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pricofy/pirate-translator/internal/app"
	"github.com/pricofy/pirate-translator/internal/config"
	"github.com/pricofy/pirate-translator/internal/logging"
	"github.com/pricofy/pirate-translator/internal/router"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 * 1024 * 1024

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "piratespeak:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("piratespeak", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Dialect, "dialect", cfg.Dialect, "dialect to translate into")
	fs.StringVar(&cfg.DialectFile, "dialect-file", cfg.DialectFile, "TOML file with an additional dialect")
	dumpHistory := fs.Bool("history", false, "print the translation history as JSON to stderr on exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Logs go to stderr so stdout carries only translations.
	logger := logging.InitWriter(stderr, cfg.LogLevel, "text")

	r, err := app.NewRouter(cfg, logger)
	if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		if err := translate(r, cfg.Dialect, strings.Join(fs.Args(), " "), stdout); err != nil {
			return err
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if err := translate(r, cfg.Dialect, scanner.Text(), stdout); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	if *dumpHistory {
		return writeHistory(r, cfg.Dialect, stderr, logger)
	}
	return nil
}

func translate(r *router.Router, dialect, line string, w io.Writer) error {
	out, err := r.Translate(dialect, []string{line})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out[0])
	return err
}

func writeHistory(r *router.Router, dialect string, w io.Writer, logger *slog.Logger) error {
	entries, err := r.History(dialect)
	if err != nil {
		return err
	}
	if entries == nil {
		logger.Warn("history is disabled", "dialect", dialect)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
