package dictionary

import (
	"iter"
	"slices"
	"strings"
)

// Source enumerates headwords in corpus order. Every call to Entries starts
// a fresh pass.
type Source interface {
	Entries() iter.Seq[Entry]
}

// Corpus is an in-memory Source.
type Corpus []Entry

var _ Source = Corpus(nil)

func (c Corpus) Entries() iter.Seq[Entry] {
	return slices.Values(c)
}

// SearchGloss returns up to limit entries with a gloss containing q,
// case-insensitively. A limit <= 0 means no limit.
func (c Corpus) SearchGloss(q string, limit int) []Entry {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []Entry
	for _, e := range c {
		if limit > 0 && len(out) >= limit {
			break
		}
		if e.matchesGloss(q) {
			out = append(out, e)
		}
	}
	return out
}

func (e Entry) matchesGloss(q string) bool {
	for _, s := range e.Senses {
		for _, g := range s.Glosses {
			if strings.Contains(strings.ToLower(g), q) {
				return true
			}
		}
	}
	return false
}
