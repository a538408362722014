// Package segment splits a romaji input buffer into typed spans.
//
// Spans only carry byte offsets; their text is always re-sliced from the
// buffer they were produced from, so a span list stays valid exactly as long
// as the buffer it describes.
package segment

import "github.com/samber/lo"

type Kind uint8

const (
	// Word is a run of ASCII letters and hyphens, converted to kana.
	Word Kind = iota
	// Punctuation is a run of '.', ',', '!' or '?'.
	Punctuation
	// Opaque text is copied to the output untouched. Escaped blocks ({...})
	// are always opaque.
	Opaque
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Punctuation:
		return "punct"
	case Opaque:
		return "opaque"
	default:
		return "unknown"
	}
}

type Span struct {
	Kind  Kind
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the part of buf covered by the span. A span that does not fit
// buf (it belongs to another buffer) yields "".
func (s Span) Text(buf string) string {
	if s.Start < 0 || s.End > len(buf) || s.Start > s.End {
		return ""
	}
	return buf[s.Start:s.End]
}

// ContainsCursor reports whether a cursor at byte offset pos is "on" the span.
// Both edges count, so a cursor right after the last character still selects it.
func (s Span) ContainsCursor(pos int) bool {
	return s.Start <= pos && pos <= s.End
}

// Interpretable reports whether the overlay may change how the span renders.
func (s Span) Interpretable() bool {
	return s.Kind != Opaque
}

type state uint8

const (
	stateInit state = iota
	stateWord
	statePunct
	stateOpaque
	stateEscaped
)

func (st state) kind() Kind {
	switch st {
	case stateWord:
		return Word
	case statePunct:
		return Punctuation
	default:
		return Opaque
	}
}

func classify(b byte) state {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '-':
		return stateWord
	case b == '.', b == ',', b == '!', b == '?':
		return statePunct
	default:
		return stateOpaque
	}
}

// Segment classifies buf into ordered, non-overlapping spans.
//
// Spans consisting of exactly one space are dropped so converted words are not
// separated in the output; two or more spaces survive as an opaque span. An
// unterminated escape block runs to the end of the buffer.
func Segment(buf string) []Span {
	var spans []Span
	st := stateInit
	begin := 0

	flush := func(end int) {
		if st != stateInit && end > begin {
			spans = append(spans, Span{Kind: st.kind(), Start: begin, End: end})
		}
	}

	for pos := 0; pos < len(buf); pos++ {
		b := buf[pos]
		if st == stateEscaped {
			if b == '}' {
				flush(pos)
				st = stateInit
				begin = pos + 1
			}
			continue
		}
		if b == '{' {
			flush(pos)
			st = stateEscaped
			begin = pos + 1
			continue
		}
		next := classify(b)
		if next == st {
			continue
		}
		flush(pos)
		st = next
		begin = pos
	}
	flush(len(buf))

	return lo.Filter(spans, func(s Span, _ int) bool {
		return s.Text(buf) != " "
	})
}

// Texts returns the text of every span, in order.
func Texts(buf string, spans []Span) []string {
	return lo.Map(spans, func(s Span, _ int) string {
		return s.Text(buf)
	})
}

// At returns the index of the span containing the byte offset pos, or -1.
// When pos sits on the boundary of two adjacent spans the earlier one wins.
func At(spans []Span, pos int) int {
	for i, s := range spans {
		if s.ContainsCursor(pos) {
			return i
		}
	}
	return -1
}
