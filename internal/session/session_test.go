package session

import (
	"iter"
	"testing"

	"github.com/jusunglee/kanainput/internal/dictionary"
	"github.com/jusunglee/kanainput/internal/kanji"
	"github.com/jusunglee/kanainput/internal/morph"
	"github.com/jusunglee/kanainput/internal/overlay"
	"github.com/jusunglee/kanainput/internal/segment"
	"github.com/jusunglee/kanainput/internal/suggest"
	"github.com/jusunglee/kanainput/internal/transliteration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	corpus dictionary.Corpus
	calls  int
}

func (c *countingSource) Entries() iter.Seq[dictionary.Entry] {
	c.calls++
	return c.corpus.Entries()
}

func newTestSession(t *testing.T, source dictionary.Source) *Session {
	t.Helper()
	if source == nil {
		corpus, err := dictionary.LoadEmbedded()
		require.NoError(t, err)
		source = corpus
	}
	catalog, err := kanji.Load()
	require.NoError(t, err)
	engine := suggest.New(nil, source, morph.NewRules(), catalog, suggest.Config{})
	return New(nil, engine, catalog)
}

func typeText(s *Session, text string) {
	s.SetText(text, len(text))
}

func TestSetTextRenders(t *testing.T) {
	s := newTestSession(t, nil)
	assert.Equal(t, -1, s.Selected())

	typeText(s, "watashi ha ningen desu.")
	assert.Equal(t, "わたしはにんげんです。", s.Output())
	assert.Len(t, s.Spans(), 5)
	assert.Equal(t, 4, s.Selected())
	assert.Equal(t, ".", s.SpanText(4))
	assert.Equal(t, "。", s.RenderedSpan(4))
	assert.Empty(t, s.SpanText(5))
	assert.Empty(t, s.RenderedSpan(-1))
}

func TestInterpretationsFollowEdits(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "watashi ha ningen desu.")
	s.Select(0)
	require.True(t, s.ChooseSuggestion(0, 0))
	assert.Equal(t, "私はにんげんです。", s.Output())

	// Insert two spans in front; the cursor sits after the comma.
	s.SetText("hai, watashi ha ningen desu.", 4)
	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, "はい、私はにんげんです。", s.Output())

	// Delete them again.
	s.SetText("watashi ha ningen desu.", 0)
	assert.Equal(t, 0, s.Selected())
	assert.Equal(t, "私はにんげんです。", s.Output())
	assert.IsType(t, overlay.DictionaryForm{}, s.Interpretation())
}

func TestCursorSelectsSpan(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "ka ki ku")
	assert.Equal(t, 2, s.Selected())

	s.SetText("ka ki ku", 0)
	assert.Equal(t, 0, s.Selected())

	s.SetText("ka ki ku", 3)
	assert.Equal(t, 1, s.Selected())

	// A selection made without moving the cursor sticks.
	s.SelectNext()
	s.SetText("ka ki ku", 3)
	assert.Equal(t, 2, s.Selected())
}

func TestSelectionClamps(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "ka ki")
	s.Select(10)
	assert.Equal(t, 1, s.Selected())
	s.SelectNext()
	assert.Equal(t, 1, s.Selected())
	s.Select(-5)
	assert.Equal(t, 0, s.Selected())
	s.SelectPrev()
	assert.Equal(t, 0, s.Selected())

	s.SetText("", 0)
	assert.Equal(t, -1, s.Selected())
	assert.Empty(t, s.Output())
	assert.False(t, s.Interpret(overlay.Verbatim{}))
	assert.Empty(t, s.Suggestions())

	// Cursor past the end is clamped to the buffer.
	s.SetText("ka", 99)
	assert.Equal(t, 2, s.Cursor())
	assert.Equal(t, 0, s.Selected())
}

func TestPhoneticHotkeys(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "supe-su desu")
	s.Select(0)
	require.True(t, s.Interpret(overlay.Phonetic{Script: transliteration.ScriptKatakana}))
	assert.Equal(t, "スペースです", s.Output())

	s.Select(1)
	require.True(t, s.Interpret(overlay.Verbatim{}))
	assert.Equal(t, "スペースdesu", s.Output())

	s.ClearInterpretation()
	assert.Equal(t, "スペースです", s.Output())

	s.ClearInterpretations()
	assert.Equal(t, "すぺーすです", s.Output())
}

func TestOpaqueSpansCannotBeInterpreted(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "{Tokyo}")
	require.Equal(t, 0, s.Selected())
	assert.Equal(t, segment.Opaque, s.Spans()[0].Kind)
	assert.False(t, s.Interpret(overlay.Verbatim{}))
	assert.Empty(t, s.Suggestions())
	assert.Equal(t, "Tokyo", s.Output())
}

func TestCycleSuggestion(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "tabenai")
	sugs := s.Suggestions()
	require.Len(t, sugs, 1)
	assert.Equal(t, "食べる", sugs[0].Entry.Headword())

	s.CycleSuggestion(false)
	assert.Equal(t, 0, s.ActiveSuggestion())
	assert.Equal(t, "食べない", s.Output())

	// Forward past the last suggestion stays put.
	s.CycleSuggestion(false)
	assert.Equal(t, 0, s.ActiveSuggestion())

	s.CycleSuggestion(true)
	assert.Equal(t, -1, s.ActiveSuggestion())
	assert.Equal(t, "たべない", s.Output())
}

func TestCycleSuggestionOrder(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "kaeru")
	var outputs []string
	for range 5 {
		s.CycleSuggestion(false)
		outputs = append(outputs, s.Output())
	}
	// Corpus order; 買う matches through its potential form.
	assert.Equal(t, []string{"帰る", "変える", "蛙", "買える", "買える"}, outputs)

	s.CycleSuggestion(true)
	assert.Equal(t, "蛙", s.Output())

	// Typing resets the cycle.
	typeText(s, "kaeru desu")
	assert.Equal(t, -1, s.ActiveSuggestion())
}

func TestCycleSuggestionWithoutMatches(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "zzz")
	s.CycleSuggestion(false)
	assert.Equal(t, -1, s.ActiveSuggestion())
	assert.Equal(t, "zzz", s.Output())
}

func TestChooseSuggestionVariant(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "iku")
	require.True(t, s.ChooseSuggestion(0, 1))
	assert.Equal(t, "往く", s.Output())
	assert.Equal(t, 0, s.ActiveSuggestion())

	assert.False(t, s.ChooseSuggestion(5, 0))
	assert.False(t, s.ChooseSuggestion(-1, 0))
}

func TestSuggestionsAreCached(t *testing.T) {
	corpus, err := dictionary.LoadEmbedded()
	require.NoError(t, err)
	source := &countingSource{corpus: corpus}
	s := newTestSession(t, source)

	typeText(s, "neko")
	s.Suggestions()
	s.Suggestions()
	assert.Equal(t, 1, source.calls)

	typeText(s, "neko inu")
	s.Suggestions()
	assert.Equal(t, 2, source.calls)

	s.SelectPrev()
	s.Suggestions()
	assert.Equal(t, 3, source.calls)

	// Punctuation has no suggestions and does not touch the corpus.
	typeText(s, "neko.")
	assert.Empty(t, s.Suggestions())
	assert.Equal(t, 3, source.calls)
}

func TestChooseKanjiAndRadical(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "ame")
	indices := s.KanjiSuggestions()
	require.Len(t, indices, 2)
	require.True(t, s.ChooseKanji(indices[1]))
	assert.Equal(t, "飴", s.Output())
	assert.False(t, s.ChooseKanji(-1))

	typeText(s, "sanzui")
	radicals := s.RadicalSuggestions()
	require.Len(t, radicals, 1)
	require.True(t, s.ChooseRadical(radicals[0]))
	assert.Equal(t, "氵", s.Output())
}

func TestCommit(t *testing.T) {
	s := newTestSession(t, nil)

	typeText(s, "neko desu")
	s.Select(0)
	require.True(t, s.ChooseSuggestion(0, 0))

	assert.Equal(t, "猫です", s.Commit())
	assert.Empty(t, s.Text())
	assert.Empty(t, s.Output())
	assert.Empty(t, s.Spans())
	assert.Equal(t, -1, s.Selected())

	// Old interpretations do not leak into the next buffer.
	typeText(s, "neko")
	assert.Equal(t, "ねこ", s.Output())
}

func TestNilCollaborators(t *testing.T) {
	s := New(nil, nil, nil)

	typeText(s, "ame")
	assert.Equal(t, "あめ", s.Output())
	assert.Empty(t, s.Suggestions())
	assert.Empty(t, s.KanjiSuggestions())
	assert.Empty(t, s.RadicalSuggestions())
	assert.False(t, s.ChooseKanji(0))
	s.CycleSuggestion(false)
	assert.Equal(t, "あめ", s.Output())
}
