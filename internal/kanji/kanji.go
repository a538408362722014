// Package kanji is a catalog of individual kanji with meanings and readings,
// used when a span is rendered as a single character. The embedded catalog is
// a small sample covering the built-in dictionary; Parse accepts a full one in
// the same format.
package kanji

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
)

//go:embed data/sample.bin
var embeddedCatalog string

const (
	fieldsPerRecord = 5
	readingSep      = "・"
	okuriganaSep    = "."
)

// ErrMalformed is returned when a catalog blob does not split into whole records.
var ErrMalformed = errors.New("kanji: malformed catalog")

// Kanji is one catalog record. Glyphs holds up to three variants, most common
// first; unused slots are empty. Kun readings mark okurigana with a dot.
type Kanji struct {
	Glyphs   [3]string
	Meaning  string
	Readings []string
}

// Glyph returns the first non-empty variant.
func (k Kanji) Glyph() string {
	for _, g := range k.Glyphs {
		if g != "" {
			return g
		}
	}
	return ""
}

// Matches reports whether reading equals one of the kanji's readings with
// okurigana markers removed.
func (k Kanji) Matches(reading string) bool {
	if reading == "" {
		return false
	}
	return lo.ContainsBy(k.Readings, func(r string) bool {
		return strings.ReplaceAll(r, okuriganaSep, "") == reading
	})
}

type DB struct {
	kanji []Kanji
}

// Parse decodes a NUL-separated blob of five-field records: three glyph
// variants, the meaning, and the readings joined by ・.
func Parse(blob string) (*DB, error) {
	blob = strings.TrimSuffix(blob, "\x00")
	if blob == "" {
		return &DB{}, nil
	}
	fields := strings.Split(blob, "\x00")
	if len(fields)%fieldsPerRecord != 0 {
		return nil, fmt.Errorf("%w: %d fields is not a multiple of %d", ErrMalformed, len(fields), fieldsPerRecord)
	}

	db := &DB{kanji: make([]Kanji, 0, len(fields)/fieldsPerRecord)}
	for i := 0; i < len(fields); i += fieldsPerRecord {
		rec := fields[i : i+fieldsPerRecord]
		k := Kanji{
			Glyphs:  [3]string{rec[0], rec[1], rec[2]},
			Meaning: rec[3],
		}
		if k.Glyph() == "" {
			return nil, fmt.Errorf("%w: record %d has no glyph", ErrMalformed, i/fieldsPerRecord)
		}
		if rec[4] != "" {
			k.Readings = strings.Split(rec[4], readingSep)
		}
		db.kanji = append(db.kanji, k)
	}
	return db, nil
}

// Load parses the embedded catalog once.
var Load = sync.OnceValues(func() (*DB, error) {
	return Parse(embeddedCatalog)
})

func (db *DB) Len() int {
	if db == nil {
		return 0
	}
	return len(db.kanji)
}

// At returns record i; ok is false when i is out of range.
func (db *DB) At(i int) (k Kanji, ok bool) {
	if i < 0 || i >= db.Len() {
		return Kanji{}, false
	}
	return db.kanji[i], true
}

// ByReading returns, in catalog order, the indices of kanji matching any of
// the given readings.
func (db *DB) ByReading(readings ...string) []int {
	if db == nil {
		return nil
	}
	var out []int
	for i, k := range db.kanji {
		if lo.SomeBy(readings, k.Matches) {
			out = append(out, i)
		}
	}
	return out
}

// FilterMeaning returns the indices of kanji whose meaning contains q,
// case-insensitively. An empty q matches everything.
func (db *DB) FilterMeaning(q string) []int {
	if db == nil {
		return nil
	}
	q = strings.ToLower(strings.TrimSpace(q))
	var out []int
	for i, k := range db.kanji {
		if strings.Contains(strings.ToLower(k.Meaning), q) {
			out = append(out, i)
		}
	}
	return out
}
