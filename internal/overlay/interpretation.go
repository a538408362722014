// Package overlay records how individual spans should be rendered and turns
// a segmented buffer into output text.
package overlay

import (
	"fmt"

	"github.com/jusunglee/kanainput/internal/dictionary"
	"github.com/jusunglee/kanainput/internal/morph"
	"github.com/jusunglee/kanainput/internal/transliteration"
)

// Interpretation is one of Phonetic, Verbatim, DictionaryForm, CatalogKanji
// or RadicalGlyph.
type Interpretation interface {
	isInterpretation()
}

// Phonetic renders the span in the given kana script.
type Phonetic struct {
	Script transliteration.Script
}

// Verbatim renders the raw romaji.
type Verbatim struct{}

// DictionaryForm renders a kanji form of Entry. With a Root the form is
// re-inflected to match what was typed.
type DictionaryForm struct {
	Entry   dictionary.Entry
	Variant int
	Root    *morph.Root
}

// CatalogKanji renders a single kanji from the catalog.
type CatalogKanji struct {
	Index int
}

// RadicalGlyph renders a radical character.
type RadicalGlyph struct {
	Char string
}

func (Phonetic) isInterpretation()       {}
func (Verbatim) isInterpretation()       {}
func (DictionaryForm) isInterpretation() {}
func (CatalogKanji) isInterpretation()   {}
func (RadicalGlyph) isInterpretation()   {}

// Default applies to every span without an explicit interpretation.
var Default Interpretation = Phonetic{Script: transliteration.ScriptHiragana}

// Glyph is the selected kanji form, falling back to the entry's headword.
func (d DictionaryForm) Glyph() string {
	return d.Entry.Glyph(d.Variant)
}

// Text is the glyph with the dictionary ending replaced by the typed
// inflection, e.g. 食べる with root たべない gives 食べない.
func (d DictionaryForm) Text() string {
	glyph := d.Glyph()
	if d.Root == nil {
		return glyph
	}
	runes := []rune(glyph)
	trim := min(d.Root.Class.StemTrim(), len(runes))
	return string(runes[:len(runes)-trim]) + d.Root.ConjugationSuffix()
}

// Describe is a short label for status lines.
func Describe(in Interpretation) string {
	switch in := in.(type) {
	case Phonetic:
		return in.Script.String()
	case Verbatim:
		return "verbatim"
	case DictionaryForm:
		if in.Root != nil {
			return fmt.Sprintf("%s (%s)", in.Text(), in.Root.Describe())
		}
		return in.Text()
	case CatalogKanji:
		return fmt.Sprintf("kanji #%d", in.Index)
	case RadicalGlyph:
		return "radical " + in.Char
	default:
		return Describe(Default)
	}
}
