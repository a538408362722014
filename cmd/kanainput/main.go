package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"

	"github.com/jusunglee/kanainput/internal/dictionary"
	"github.com/jusunglee/kanainput/internal/dictionary/sqlite"
	"github.com/jusunglee/kanainput/internal/kanji"
	"github.com/jusunglee/kanainput/internal/logger"
	"github.com/jusunglee/kanainput/internal/morph"
	"github.com/jusunglee/kanainput/internal/session"
	"github.com/jusunglee/kanainput/internal/suggest"
	"github.com/jusunglee/kanainput/internal/tui"
)

// The UI owns the terminal and logs usually go to a file or nowhere, so fatal
// errors are printed once the UI has exited.
func main() {
	if err := mainE(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "kanainput: %v\n", err)
		os.Exit(1)
	}
}

func mainE(args []string) (err error) {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("kanainput")
	var (
		dictDB       = fs.StringLong("dict-db", "", "SQLite dictionary built with dictimport (sqlite://path or path)")
		dictFile     = fs.StringLong("dict-file", "", "JSON lines dictionary, optionally .xz compressed")
		requireKanji = fs.BoolLong("require-kanji", "only suggest entries written with kanji")
		logFile      = fs.StringLong("log-file", "", "write logs to this file (the terminal is taken by the UI)")
		logLevel     = fs.StringEnumLong("log-level", "log level", "info", "debug", "warn", "error")
		logFormat    = fs.StringEnumLong("log-format", "log format", "pretty", "plain", "json")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *dictDB != "" && *dictFile != "" {
		return errors.New("dict-db and dict-file are mutually exclusive")
	}

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(filepath.Clean(*logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.Init(logOut, *logLevel, *logFormat)
	defer func() {
		if err != nil {
			log.Error("fatal", "error", err)
		}
	}()

	ctx := context.Background()

	var (
		catalog *kanji.DB
		corpus  dictionary.Corpus
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = kanji.Load()
		if err != nil {
			return fmt.Errorf("loading kanji catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		corpus, err = loadDictionary(gctx, *dictDB, *dictFile)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("dictionary ready", "entries", len(corpus), "kanji", catalog.Len())

	engine := suggest.New(log.With("component", "suggest"), corpus, morph.NewRules(), catalog, suggest.Config{
		RequireKanji: *requireKanji,
	})
	sess := session.New(log.With("component", "session"), engine, catalog)

	return tui.Run(log.With("component", "tui"), sess, catalog)
}

func loadDictionary(ctx context.Context, dbPath, file string) (dictionary.Corpus, error) {
	switch {
	case dbPath != "":
		store, err := sqlite.New(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("opening dictionary database: %w", err)
		}
		defer store.Close()
		corpus, err := store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading dictionary database: %w", err)
		}
		return corpus, nil
	case file != "":
		corpus, err := dictionary.Open(file)
		if err != nil {
			return nil, fmt.Errorf("loading dictionary file: %w", err)
		}
		return corpus, nil
	default:
		corpus, err := dictionary.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("loading embedded dictionary: %w", err)
		}
		return corpus, nil
	}
}
