// Package suggest looks up dictionary, kanji and radical candidates for the
// romaji of a single span.
package suggest

import (
	"log/slog"
	"strings"

	"github.com/jusunglee/kanainput/internal/dictionary"
	"github.com/jusunglee/kanainput/internal/kanji"
	"github.com/jusunglee/kanainput/internal/morph"
	"github.com/jusunglee/kanainput/internal/overlay"
	"github.com/jusunglee/kanainput/internal/radical"
	"github.com/jusunglee/kanainput/internal/transliteration"
	"github.com/samber/lo"
)

type Config struct {
	// RequireKanji drops entries that have no kanji form.
	RequireKanji bool
}

// Suggestion is a matched entry. Root is set when the match went through
// deconjugation.
type Suggestion struct {
	Entry dictionary.Entry
	Root  *morph.Root
}

// Interpretation returns the overlay value that renders kanji variant of the
// suggestion.
func (s Suggestion) Interpretation(variant int) overlay.DictionaryForm {
	return overlay.DictionaryForm{Entry: s.Entry, Variant: variant, Root: s.Root}
}

type Engine struct {
	log     *slog.Logger
	source  dictionary.Source
	deconj  morph.Deconjugator
	catalog *kanji.DB
	config  Config
}

// New builds an engine. Any collaborator may be nil, in which case the
// matching kind of suggestion is simply empty.
func New(
	log *slog.Logger,
	source dictionary.Source,
	deconj morph.Deconjugator,
	catalog *kanji.DB,
	config Config,
) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		log:     log,
		source:  source,
		deconj:  deconj,
		catalog: catalog,
		config:  config,
	}
}

func readings(text string) (hiragana, katakana string) {
	hiragana = strings.TrimSpace(transliteration.Transliterate(text, transliteration.Hiragana))
	katakana = strings.TrimSpace(transliteration.Transliterate(text, transliteration.Katakana))
	return hiragana, katakana
}

// Suggest returns the entries matching the romaji text, in corpus order.
//
// An entry matches when one of its readings is the hiragana reading of text,
// or the dictionary form of a deconjugated root whose class the entry
// declares, or the katakana reading of text. The corpus is walked once.
func (e *Engine) Suggest(text string) []Suggestion {
	if e == nil || e.source == nil {
		return nil
	}
	hiragana, katakana := readings(text)
	if hiragana == "" {
		return nil
	}

	var roots []morph.Root
	if e.deconj != nil {
		roots = e.deconj.Deconjugate(hiragana)
	}

	var out []Suggestion
	for entry := range e.source.Entries() {
		s, ok := match(entry, hiragana, katakana, roots)
		if !ok {
			continue
		}
		if e.config.RequireKanji && !entry.HasKanji() {
			continue
		}
		out = append(out, s)
	}

	e.log.Debug("looked up suggestions", "text", text, "reading", hiragana, "roots", len(roots), "matches", len(out))
	return out
}

func match(entry dictionary.Entry, hiragana, katakana string, roots []morph.Root) (Suggestion, bool) {
	if entry.HasReading(hiragana) {
		return Suggestion{Entry: entry}, true
	}
	for _, root := range roots {
		declared := lo.SomeBy(root.Class.Codes(), func(code string) bool {
			return entry.HasPartOfSpeech(dictionary.PartOfSpeech(code))
		})
		if declared && entry.HasReading(root.DictionaryForm()) {
			return Suggestion{Entry: entry, Root: &root}, true
		}
	}
	if entry.HasReading(katakana) {
		return Suggestion{Entry: entry}, true
	}
	return Suggestion{}, false
}

// Kanji returns the catalog indices of kanji read as text, in hiragana or
// katakana.
func (e *Engine) Kanji(text string) []int {
	if e == nil || e.catalog == nil {
		return nil
	}
	hiragana, katakana := readings(text)
	return e.catalog.ByReading(hiragana, katakana)
}

// Radicals returns the radicals whose name contains the hiragana reading of
// text.
func (e *Engine) Radicals(text string) []radical.Radical {
	hiragana, _ := readings(text)
	return radical.ByName(hiragana)
}
