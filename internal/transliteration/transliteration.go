package transliteration

import (
	"strings"
	"unicode/utf8"
)

// MaxAtomLen is the length of the longest romaji atom ("sshi", "xtsu").
const MaxAtomLen = 4

// Script selects the kana syllabary a table produces.
type Script uint8

const (
	ScriptHiragana Script = iota
	ScriptKatakana
)

func (s Script) String() string {
	if s == ScriptKatakana {
		return "katakana"
	}
	return "hiragana"
}

// Table is a read-only romaji to kana lookup table.
type Table struct {
	script Script
	kana   map[string]string
	nasal  string
}

var (
	Hiragana = newTable(ScriptHiragana, "ん")
	Katakana = newTable(ScriptKatakana, "ン")
)

func newTable(script Script, nasal string) *Table {
	t := &Table{script: script, kana: make(map[string]string, len(atoms)), nasal: nasal}
	for _, a := range atoms {
		if script == ScriptKatakana {
			t.kana[a.romaji] = a.katakana
		} else {
			t.kana[a.romaji] = a.hiragana
		}
	}
	return t
}

// TableFor returns the static table for s.
func TableFor(s Script) *Table {
	if s == ScriptKatakana {
		return Katakana
	}
	return Hiragana
}

func (t *Table) Script() Script {
	return t.script
}

// Lookup returns the kana for a single atom.
func (t *Table) Lookup(atom string) (string, bool) {
	kana, ok := t.kana[atom]
	return kana, ok
}

// Nasal returns the syllabic nasal (ん / ン).
func (t *Table) Nasal() string {
	return t.nasal
}

// longest finds the longest atom at the start of s. Candidate lengths that
// would cut a multi-byte character in half are skipped.
func (t *Table) longest(s string) (string, int, bool) {
	for n := min(MaxAtomLen, len(s)); n > 0; n-- {
		if n < len(s) && !utf8.RuneStart(s[n]) {
			continue
		}
		if kana, ok := t.kana[s[:n]]; ok {
			return kana, n, true
		}
	}
	return "", 0, false
}

// Transliterate converts romaji to kana using greedy longest-match over t.
// Characters that start no atom are copied through, except a lone "n" which
// becomes the syllabic nasal.
func Transliterate(romaji string, t *Table) string {
	var b strings.Builder
	b.Grow(len(romaji) * 3)
	for i := 0; i < len(romaji); {
		if kana, n, ok := t.longest(romaji[i:]); ok {
			b.WriteString(kana)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(romaji[i:])
		if romaji[i] == 'n' {
			b.WriteString(t.nasal)
		} else {
			b.WriteString(romaji[i : i+size])
		}
		i += size
	}
	return b.String()
}
