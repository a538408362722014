package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"watashi ha", []string{"watashi", "ha"}},
		{"watashi  ha", []string{"watashi", "  ", "ha"}},
		{"hai, sou desu. nani?", []string{"hai", ",", "sou", "desu", ".", "nani", "?"}},
		{"are ha nandesu ka? zenkai boosto da!", []string{"are", "ha", "nandesu", "ka", "?", "zenkai", "boosto", "da", "!"}},
		{"supe-su ha sugoi ne", []string{"supe-su", "ha", "sugoi", "ne"}},
		{"konnichiha {Yes. This is a free space 空.} rafaeru san.", []string{"konnichiha", "Yes. This is a free space 空.", "rafaeru", "san", "."}},
		{"{free space}", []string{"free space"}},
		{"ok{}ok", []string{"ok", "ok"}},
		{"ore 123 da", []string{"ore", " 123 ", "da"}},
		{"ee...", []string{"ee", "..."}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Texts(tt.input, Segment(tt.input)))
		})
	}
}

func TestSegmentEmpty(t *testing.T) {
	assert.Empty(t, Segment(""))
	assert.Empty(t, Segment(" "))
}

func TestSegmentEscape(t *testing.T) {
	buf := "a {free 1} b"
	spans := Segment(buf)
	require.Len(t, spans, 3)

	assert.Equal(t, Span{Kind: Word, Start: 0, End: 1}, spans[0])
	assert.Equal(t, Span{Kind: Opaque, Start: 3, End: 9}, spans[1])
	assert.Equal(t, "free 1", spans[1].Text(buf))
	assert.Equal(t, Span{Kind: Word, Start: 11, End: 12}, spans[2])
}

func TestSegmentEscapedContentIsOpaque(t *testing.T) {
	buf := "{watashi}"
	spans := Segment(buf)
	require.Len(t, spans, 1)
	assert.Equal(t, Opaque, spans[0].Kind)
	assert.Equal(t, "watashi", spans[0].Text(buf))
}

func TestSegmentUnterminatedEscape(t *testing.T) {
	buf := "ore {no namae"
	spans := Segment(buf)
	require.Len(t, spans, 2)
	assert.Equal(t, Opaque, spans[1].Kind)
	assert.Equal(t, "no namae", spans[1].Text(buf))
}

func TestSegmentDoubleSpace(t *testing.T) {
	buf := "a  b"
	spans := Segment(buf)
	require.Len(t, spans, 3)
	assert.Equal(t, Word, spans[0].Kind)
	assert.Equal(t, Opaque, spans[1].Kind)
	assert.Equal(t, "  ", spans[1].Text(buf))
	assert.Equal(t, Word, spans[2].Kind)
}

func TestSegmentKinds(t *testing.T) {
	buf := "sou, 3ko"
	spans := Segment(buf)
	kinds := make([]Kind, len(spans))
	for i, s := range spans {
		kinds[i] = s.Kind
	}
	// the space before "3" joins the opaque run
	assert.Equal(t, []Kind{Word, Punctuation, Opaque, Word}, kinds)
	assert.Equal(t, " 3", spans[2].Text(buf))
}

func TestSegmentCoverage(t *testing.T) {
	inputs := []string{
		"watashi ha gakusei desu.",
		"kyou, ame ga futte iru!",
		"nani? sore ha 5 en desu",
		"supe-su",
	}
	for _, input := range inputs {
		spans := Segment(input)
		var sb strings.Builder
		prevEnd := 0
		for _, s := range spans {
			require.GreaterOrEqual(t, s.Start, prevEnd, "spans must be ordered and disjoint")
			gap := input[prevEnd:s.Start]
			assert.True(t, gap == "" || gap == " ", "only single spaces may be dropped, got %q", gap)
			sb.WriteString(s.Text(input))
			prevEnd = s.End
		}
		assert.Equal(t, len(input), prevEnd, "spans must reach the end of %q", input)
		assert.Equal(t, strings.ReplaceAll(input, " ", ""), strings.ReplaceAll(sb.String(), " ", ""))
	}
}

func TestSpanContainsCursor(t *testing.T) {
	s := Span{Kind: Word, Start: 2, End: 5}
	assert.False(t, s.ContainsCursor(1))
	assert.True(t, s.ContainsCursor(2))
	assert.True(t, s.ContainsCursor(5))
	assert.False(t, s.ContainsCursor(6))
}

func TestSpanTextOutOfRange(t *testing.T) {
	s := Span{Kind: Word, Start: 2, End: 10}
	assert.Equal(t, "", s.Text("abc"))
}

func TestAt(t *testing.T) {
	buf := "watashi no yume"
	spans := Segment(buf)
	assert.Equal(t, 0, At(spans, 0))
	assert.Equal(t, 0, At(spans, 7))
	assert.Equal(t, 1, At(spans, 9))
	assert.Equal(t, 2, At(spans, len(buf)))
	assert.Equal(t, -1, At(nil, 0))
}
