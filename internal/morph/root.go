package morph

import (
	"strings"
	"unicode/utf8"
)

// Root is a candidate dictionary form for an inflected reading.
type Root struct {
	Class Class
	// Steps lists the inflections from the dictionary form to Surface.
	Steps []Step
	// Surface is the inflected reading that was deconjugated.
	Surface string
	// Text is the dictionary form reading.
	Text string
}

func (r Root) DictionaryForm() string {
	return r.Text
}

// ConjugationSuffix returns the inflected ending that follows the fixed stem
// of the dictionary form, e.g. "ない" for たべない or "かない" for かかない.
// The stem is measured in characters so くる → こない keeps only "ない".
func (r Root) ConjugationSuffix() string {
	stem := utf8.RuneCountInString(r.Text) - r.Class.StemTrim()
	if stem < 0 {
		stem = 0
	}
	rest := r.Surface
	for range stem {
		if rest == "" {
			return ""
		}
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}
	return rest
}

// Describe renders the class and the step chain, e.g.
// "ichidan verb ➡ negative ➡ past".
func (r Root) Describe() string {
	var sb strings.Builder
	sb.WriteString(r.Class.String())
	for _, s := range r.Steps {
		sb.WriteString(" ➡ ")
		sb.WriteString(s.String())
	}
	return sb.String()
}
