package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/jusunglee/kanainput/internal/dictionary"
	"github.com/jusunglee/kanainput/internal/dictionary/sqlite"
	"github.com/jusunglee/kanainput/internal/logger"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("dictimport")
	var (
		input     = fs.StringLong("input", "", "JSON lines dictionary to import, optionally .xz compressed (default: built in)")
		dbPath    = fs.StringLong("db", "", "SQLite database to write (sqlite://path or path)")
		replace   = fs.BoolLong("replace", "delete existing entries before importing")
		export    = fs.StringLong("export", "", "write the database back out as JSON lines to this file instead of importing")
		logLevel  = fs.StringEnumLong("log-level", "log level", "info", "debug", "warn", "error")
		logFormat = fs.StringEnumLong("log-format", "log format", "pretty", "plain", "json")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *dbPath == "" {
		return errors.New("db is required")
	}

	log := logger.Init(os.Stderr, *logLevel, *logFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if *export != "" {
		return exportCorpus(ctx, log, store, *export)
	}

	var corpus dictionary.Corpus
	if *input != "" {
		corpus, err = dictionary.Open(*input)
	} else {
		corpus, err = dictionary.LoadEmbedded()
	}
	if err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}

	start := time.Now()
	var n int
	if *replace {
		var removed int64
		n, removed, err = store.Replace(ctx, corpus)
		if err != nil {
			return fmt.Errorf("replacing dictionary: %w", err)
		}
		log.Info("replaced existing entries", "removed", removed)
	} else {
		n, err = store.Import(ctx, corpus)
		if err != nil {
			return fmt.Errorf("importing dictionary: %w", err)
		}
	}
	total, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting entries: %w", err)
	}
	log.Info("import complete", "imported", n, "total", total, "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

func exportCorpus(ctx context.Context, log *slog.Logger, store *sqlite.Store, path string) error {
	corpus, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading database: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := dictionary.Encode(f, corpus); err != nil {
		f.Close()
		return fmt.Errorf("writing export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	log.Info("export complete", "entries", len(corpus), "path", path)
	return nil
}
