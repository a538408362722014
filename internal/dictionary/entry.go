// Package dictionary holds the headword corpus used for suggestions.
package dictionary

import (
	"slices"
	"strings"
)

// PartOfSpeech is a JMdict part-of-speech entity code.
type PartOfSpeech string

const (
	Noun           PartOfSpeech = "n"
	Pronoun        PartOfSpeech = "pn"
	Adverb         PartOfSpeech = "adv"
	Particle       PartOfSpeech = "prt"
	Expression     PartOfSpeech = "exp"
	Interjection   PartOfSpeech = "int"
	Suffix         PartOfSpeech = "suf"
	Counter        PartOfSpeech = "ctr"
	Copula         PartOfSpeech = "cop"
	Adjective      PartOfSpeech = "adj-i"
	AdjectivalNoun PartOfSpeech = "adj-na"
	NoAdjective    PartOfSpeech = "adj-no"
	IchidanVerb    PartOfSpeech = "v1"
	GodanBuVerb    PartOfSpeech = "v5b"
	GodanGuVerb    PartOfSpeech = "v5g"
	GodanKuVerb    PartOfSpeech = "v5k"
	GodanIkuVerb   PartOfSpeech = "v5k-s"
	GodanMuVerb    PartOfSpeech = "v5m"
	GodanNuVerb    PartOfSpeech = "v5n"
	GodanRuVerb    PartOfSpeech = "v5r"
	GodanSuVerb    PartOfSpeech = "v5s"
	GodanTsuVerb   PartOfSpeech = "v5t"
	GodanUVerb     PartOfSpeech = "v5u"
	SuruVerb       PartOfSpeech = "vs-i"
	SuruSpecial    PartOfSpeech = "vs-s"
	SuruNoun       PartOfSpeech = "vs"
	KuruVerb       PartOfSpeech = "vk"
	Transitive     PartOfSpeech = "vt"
	Intransitive   PartOfSpeech = "vi"
)

var posLabels = map[PartOfSpeech]string{
	Noun:           "noun",
	Pronoun:        "pronoun",
	Adverb:         "adverb",
	Particle:       "particle",
	Expression:     "expression",
	Interjection:   "interjection",
	Suffix:         "suffix",
	Counter:        "counter",
	Copula:         "copula",
	Adjective:      "adjective",
	AdjectivalNoun: "な adjective",
	NoAdjective:    "の adjective",
	IchidanVerb:    "ichidan verb",
	GodanBuVerb:    "ぶ verb",
	GodanGuVerb:    "ぐ verb",
	GodanKuVerb:    "く verb",
	GodanIkuVerb:   "行く verb",
	GodanMuVerb:    "む verb",
	GodanNuVerb:    "ぬ verb",
	GodanRuVerb:    "godan る verb",
	GodanSuVerb:    "す verb",
	GodanTsuVerb:   "つ verb",
	GodanUVerb:     "う verb",
	SuruVerb:       "する verb",
	SuruSpecial:    "する verb (special)",
	SuruNoun:       "する noun",
	KuruVerb:       "くる verb",
	Transitive:     "transitive",
	Intransitive:   "intransitive",
}

// Label returns a short human readable name, or the raw code.
func (p PartOfSpeech) Label() string {
	if label, ok := posLabels[p]; ok {
		return label
	}
	return string(p)
}

type Sense struct {
	Glosses       []string       `json:"glosses"`
	PartsOfSpeech []PartOfSpeech `json:"pos,omitempty"`
}

// Entry is a single headword. Kanji and Readings keep corpus order; the first
// of each is the preferred form.
type Entry struct {
	ID       int64    `json:"id,omitempty"`
	Kanji    []string `json:"kanji,omitempty"`
	Readings []string `json:"readings"`
	Senses   []Sense  `json:"senses"`
}

func (e Entry) HasKanji() bool {
	return len(e.Kanji) > 0
}

func (e Entry) HasReading(reading string) bool {
	return reading != "" && slices.Contains(e.Readings, reading)
}

func (e Entry) HasPartOfSpeech(p PartOfSpeech) bool {
	for _, s := range e.Senses {
		if slices.Contains(s.PartsOfSpeech, p) {
			return true
		}
	}
	return false
}

// Headword is the first kanji form, or the first reading for kana-only words.
func (e Entry) Headword() string {
	if len(e.Kanji) > 0 {
		return e.Kanji[0]
	}
	if len(e.Readings) > 0 {
		return e.Readings[0]
	}
	return ""
}

// Glyph returns kanji form i, falling back to the headword when i is out of
// range.
func (e Entry) Glyph(i int) string {
	if i >= 0 && i < len(e.Kanji) {
		return e.Kanji[i]
	}
	return e.Headword()
}

// Summary joins the glosses of the first sense.
func (e Entry) Summary() string {
	if len(e.Senses) == 0 {
		return ""
	}
	return strings.Join(e.Senses[0].Glosses, ", ")
}
