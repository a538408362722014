// Seed script for local development. Fills a SQLite dictionary with the
// built-in corpus plus a few extra words, so the suggestion lists have
// something beyond the embedded data to show.
//
// Usage:
//
//	go run scripts/seed.go
//	go run scripts/seed.go --db sqlite://dev.db --clear
//	go run scripts/seed.go --pack internal/dictionary/data/jmdict.jsonl.xz  (rewrite the embedded corpus from the database)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jusunglee/kanainput/internal/dictionary"
	"github.com/jusunglee/kanainput/internal/dictionary/sqlite"
	"github.com/ulikunitz/xz"
)

var samples = dictionary.Corpus{
	{ID: 1001, Kanji: []string{"寿司"}, Readings: []string{"すし"}, Senses: []dictionary.Sense{{Glosses: []string{"sushi"}, PartsOfSpeech: []dictionary.PartOfSpeech{dictionary.Noun}}}},
	{ID: 1002, Kanji: []string{"東京"}, Readings: []string{"とうきょう"}, Senses: []dictionary.Sense{{Glosses: []string{"Tokyo"}, PartsOfSpeech: []dictionary.PartOfSpeech{dictionary.Noun}}}},
	{ID: 1003, Kanji: []string{"走る"}, Readings: []string{"はしる"}, Senses: []dictionary.Sense{{Glosses: []string{"to run"}, PartsOfSpeech: []dictionary.PartOfSpeech{dictionary.GodanRuVerb, dictionary.Intransitive}}}},
	{ID: 1004, Kanji: []string{"起きる"}, Readings: []string{"おきる"}, Senses: []dictionary.Sense{{Glosses: []string{"to get up", "to wake up"}, PartsOfSpeech: []dictionary.PartOfSpeech{dictionary.IchidanVerb, dictionary.Intransitive}}}},
	{ID: 1005, Kanji: []string{"美味しい"}, Readings: []string{"おいしい"}, Senses: []dictionary.Sense{{Glosses: []string{"delicious", "tasty"}, PartsOfSpeech: []dictionary.PartOfSpeech{dictionary.Adjective}}}},
	{ID: 1006, Readings: []string{"テレビ"}, Senses: []dictionary.Sense{{Glosses: []string{"television", "TV"}, PartsOfSpeech: []dictionary.PartOfSpeech{dictionary.Noun}}}},
	{ID: 1007, Kanji: []string{"電車"}, Readings: []string{"でんしゃ"}, Senses: []dictionary.Sense{{Glosses: []string{"train", "electric train"}, PartsOfSpeech: []dictionary.PartOfSpeech{dictionary.Noun}}}},
}

func main() {
	dbPath := flag.String("db", "sqlite://kanainput-dev.db", "SQLite dictionary to seed")
	clear := flag.Bool("clear", false, "Delete all entries before seeding")
	pack := flag.String("pack", "", "Write the seeded database as xz-compressed JSON lines to this path")
	flag.Parse()

	ctx := context.Background()
	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer store.Close()

	corpus, err := dictionary.LoadEmbedded()
	if err != nil {
		log.Fatalf("loading embedded corpus: %v", err)
	}
	corpus = append(corpus[:len(corpus):len(corpus)], samples...)

	log.Printf("Seeding %d entries...", len(corpus))
	var n int
	if *clear {
		log.Println("Replacing existing entries...")
		n, _, err = store.Replace(ctx, corpus)
	} else {
		n, err = store.Import(ctx, corpus)
	}
	if err != nil {
		log.Fatalf("importing: %v", err)
	}
	for _, s := range samples {
		fmt.Printf("  ✓ %s %s → %s\n", s.Headword(), s.Readings[0], s.Summary())
	}

	count, _ := store.Count(ctx)
	log.Printf("Done! %d imported, %d entries in database.", n, count)

	if *pack != "" {
		if err := packCorpus(ctx, store, *pack); err != nil {
			log.Fatalf("packing: %v", err)
		}
		log.Printf("Wrote %s", *pack)
		return
	}

	log.Println("")
	log.Println("To try it:")
	log.Printf("  go run ./cmd/kanainput --dict-db %s", *dbPath)
}

func packCorpus(ctx context.Context, store *sqlite.Store, path string) error {
	corpus, err := store.Load(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := xz.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating xz writer: %w", err)
	}
	if err := dictionary.Encode(zw, corpus); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}
