package overlay

import (
	"strings"

	"github.com/jusunglee/kanainput/internal/kanji"
	"github.com/jusunglee/kanainput/internal/segment"
	"github.com/jusunglee/kanainput/internal/transliteration"
)

// Catalog resolves CatalogKanji indices. *kanji.DB implements it.
type Catalog interface {
	At(i int) (kanji.Kanji, bool)
}

// Render concatenates the rendering of every span of buf. Opaque spans are
// copied as-is; overlay entries for them are ignored. catalog may be nil.
func Render(buf string, spans []segment.Span, ov Overlay, catalog Catalog) string {
	var sb strings.Builder
	for i, s := range spans {
		text := s.Text(buf)
		if !s.Interpretable() {
			sb.WriteString(text)
			continue
		}
		sb.WriteString(RenderSpan(text, ov.Get(i), catalog))
	}
	return sb.String()
}

// RenderSpan renders the raw text of one interpretable span.
func RenderSpan(text string, in Interpretation, catalog Catalog) string {
	switch in := in.(type) {
	case Phonetic:
		return transliteration.Transliterate(text, transliteration.TableFor(in.Script))
	case Verbatim:
		return text
	case DictionaryForm:
		return in.Text()
	case CatalogKanji:
		if catalog != nil {
			if k, ok := catalog.At(in.Index); ok {
				return k.Glyph()
			}
		}
	case RadicalGlyph:
		return in.Char
	}
	return transliteration.Transliterate(text, transliteration.Hiragana)
}
