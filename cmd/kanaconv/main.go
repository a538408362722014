package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"

	"github.com/jusunglee/kanainput/internal/dictionary"
	"github.com/jusunglee/kanainput/internal/kanji"
	"github.com/jusunglee/kanainput/internal/logger"
	"github.com/jusunglee/kanainput/internal/morph"
	"github.com/jusunglee/kanainput/internal/overlay"
	"github.com/jusunglee/kanainput/internal/segment"
	"github.com/jusunglee/kanainput/internal/suggest"
	"github.com/jusunglee/kanainput/internal/transliteration"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("kanaconv")
	var (
		katakana  = fs.BoolLong("katakana", "convert words to katakana instead of hiragana")
		withKanji = fs.BoolLong("kanji", "replace each word with its first dictionary suggestion")
		dictFile  = fs.StringLong("dict-file", "", "JSON lines dictionary used by --kanji (default: built in)")
		logLevel  = fs.StringEnumLong("log-level", "log level", "info", "debug", "warn", "error")
		logFormat = fs.StringEnumLong("log-format", "log format", "pretty", "plain", "json")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init(os.Stderr, *logLevel, *logFormat)

	script := transliteration.ScriptHiragana
	if *katakana {
		script = transliteration.ScriptKatakana
	}
	conv := &converter{script: script}

	if *withKanji {
		g, _ := errgroup.WithContext(context.Background())
		var corpus dictionary.Corpus
		g.Go(func() error {
			var err error
			conv.catalog, err = kanji.Load()
			if err != nil {
				return fmt.Errorf("loading kanji catalog: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if *dictFile != "" {
				corpus, err = dictionary.Open(*dictFile)
			} else {
				corpus, err = dictionary.LoadEmbedded()
			}
			if err != nil {
				return fmt.Errorf("loading dictionary: %w", err)
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}
		conv.engine = suggest.New(log, corpus, morph.NewRules(), conv.catalog, suggest.Config{RequireKanji: true})
		log.Debug("dictionary ready", "entries", len(corpus))
	}

	n, err := conv.run(os.Stdin, os.Stdout)
	log.Debug("converted input", "lines", n)
	return err
}

type converter struct {
	script  transliteration.Script
	engine  *suggest.Engine
	catalog *kanji.DB
}

func (c *converter) line(text string) string {
	spans := segment.Segment(text)
	ov := overlay.New()
	for i, span := range spans {
		if span.Kind != segment.Word {
			continue
		}
		ov.Set(i, overlay.Phonetic{Script: c.script})
		if c.engine == nil {
			continue
		}
		if sugs := c.engine.Suggest(span.Text(text)); len(sugs) > 0 {
			ov.Set(i, sugs[0].Interpretation(0))
		}
	}
	var catalog overlay.Catalog
	if c.catalog != nil {
		catalog = c.catalog
	}
	return overlay.Render(text, spans, ov, catalog)
}

func (c *converter) run(r io.Reader, w io.Writer) (int, error) {
	sc := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	n := 0
	for sc.Scan() {
		if _, err := fmt.Fprintln(out, c.line(sc.Text())); err != nil {
			return n, fmt.Errorf("writing output: %w", err)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("reading input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return n, fmt.Errorf("writing output: %w", err)
	}
	return n, nil
}
