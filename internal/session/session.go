// Package session owns the romaji buffer and everything derived from it:
// spans, per-span interpretations, the selected span and its suggestions.
package session

import (
	"log/slog"

	"github.com/jusunglee/kanainput/internal/kanji"
	"github.com/jusunglee/kanainput/internal/overlay"
	"github.com/jusunglee/kanainput/internal/radical"
	"github.com/jusunglee/kanainput/internal/segment"
	"github.com/jusunglee/kanainput/internal/suggest"
)

const noSelection = -1

// Session is not safe for concurrent use.
type Session struct {
	log     *slog.Logger
	engine  *suggest.Engine
	catalog *kanji.DB

	buf      string
	cursor   int
	spans    []segment.Span
	overlay  overlay.Overlay
	selected int
	output   string

	suggestions suggest.Cache[suggest.Suggestion]
	kanji       suggest.Cache[int]
	radicals    suggest.Cache[radical.Radical]
	// active is the index of the suggestion last applied with
	// CycleSuggestion or ChooseSuggestion, or -1.
	active int
}

func New(log *slog.Logger, engine *suggest.Engine, catalog *kanji.DB) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		log:      log,
		engine:   engine,
		catalog:  catalog,
		overlay:  overlay.New(),
		selected: noSelection,
		active:   noSelection,
	}
}

// SetText replaces the buffer. cursor is a byte offset into text.
//
// Interpretations follow their spans across the edit. When the text or the
// cursor moved, the span under the cursor becomes selected.
func (s *Session) SetText(text string, cursor int) {
	cursor = max(0, min(cursor, len(text)))
	textChanged := text != s.buf
	if !textChanged && cursor == s.cursor {
		return
	}

	if textChanged {
		spans := segment.Segment(text)
		s.overlay = overlay.Remap(s.overlay, segment.Texts(s.buf, s.spans), segment.Texts(text, spans))
		s.buf, s.spans = text, spans
	}
	s.cursor = cursor

	selected := segment.At(s.spans, cursor)
	if selected == noSelection {
		selected = len(s.spans) - 1
	}
	s.setSelected(selected)
	if textChanged {
		s.active = noSelection
	}
	s.render()

	s.log.Debug("buffer updated", "spans", len(s.spans), "selected", s.selected, "interpretations", len(s.overlay))
}

func (s *Session) render() {
	var catalog overlay.Catalog
	if s.catalog != nil {
		catalog = s.catalog
	}
	s.output = overlay.Render(s.buf, s.spans, s.overlay, catalog)
}

func (s *Session) Text() string {
	return s.buf
}

func (s *Session) Cursor() int {
	return s.cursor
}

// Output is the rendered buffer.
func (s *Session) Output() string {
	return s.output
}

func (s *Session) Spans() []segment.Span {
	return s.spans
}

// SpanText returns the raw text of span i, or "".
func (s *Session) SpanText(i int) string {
	if i < 0 || i >= len(s.spans) {
		return ""
	}
	return s.spans[i].Text(s.buf)
}

// RenderedSpan returns how span i currently renders.
func (s *Session) RenderedSpan(i int) string {
	if i < 0 || i >= len(s.spans) {
		return ""
	}
	span := s.spans[i]
	if !span.Interpretable() {
		return span.Text(s.buf)
	}
	var catalog overlay.Catalog
	if s.catalog != nil {
		catalog = s.catalog
	}
	return overlay.RenderSpan(span.Text(s.buf), s.overlay.Get(i), catalog)
}

// Selected returns the selected span index, or -1 when there are no spans.
func (s *Session) Selected() int {
	return s.selected
}

func (s *Session) setSelected(i int) {
	if n := len(s.spans); n == 0 {
		i = noSelection
	} else {
		i = max(0, min(i, n-1))
	}
	if i != s.selected {
		s.active = noSelection
	}
	s.selected = i
}

// Select selects span i, clamped to the span list.
func (s *Session) Select(i int) {
	s.setSelected(i)
}

func (s *Session) SelectNext() {
	s.setSelected(s.selected + 1)
}

func (s *Session) SelectPrev() {
	s.setSelected(s.selected - 1)
}

func (s *Session) selectedSpan() (segment.Span, bool) {
	if s.selected < 0 || s.selected >= len(s.spans) {
		return segment.Span{}, false
	}
	return s.spans[s.selected], true
}

// Interpretation returns the interpretation of the selected span.
func (s *Session) Interpretation() overlay.Interpretation {
	return s.overlay.Get(s.selected)
}

// Interpret sets how the selected span renders. It reports false when
// nothing is selected or the selected span is opaque.
func (s *Session) Interpret(in overlay.Interpretation) bool {
	span, ok := s.selectedSpan()
	if !ok || !span.Interpretable() {
		return false
	}
	s.overlay.Set(s.selected, in)
	s.render()
	return true
}

// ClearInterpretation resets the selected span to the default rendering.
func (s *Session) ClearInterpretation() {
	s.overlay.Clear(s.selected)
	s.active = noSelection
	s.render()
}

// ClearInterpretations resets every span.
func (s *Session) ClearInterpretations() {
	s.overlay.ClearAll()
	s.active = noSelection
	s.render()
}

func (s *Session) selectedWord() (string, bool) {
	span, ok := s.selectedSpan()
	if !ok || span.Kind != segment.Word {
		return "", false
	}
	return span.Text(s.buf), true
}

// Suggestions returns the dictionary suggestions for the selected word.
// Results are cached until the selection or its text changes.
func (s *Session) Suggestions() []suggest.Suggestion {
	text, ok := s.selectedWord()
	if !ok || s.engine == nil {
		return nil
	}
	return s.suggestions.Refresh(s.selected, text, s.engine.Suggest)
}

// KanjiSuggestions returns catalog indices of kanji read as the selected word.
func (s *Session) KanjiSuggestions() []int {
	text, ok := s.selectedWord()
	if !ok || s.engine == nil {
		return nil
	}
	return s.kanji.Refresh(s.selected, text, s.engine.Kanji)
}

// RadicalSuggestions returns radicals named like the selected word.
func (s *Session) RadicalSuggestions() []radical.Radical {
	text, ok := s.selectedWord()
	if !ok || s.engine == nil {
		return nil
	}
	return s.radicals.Refresh(s.selected, text, s.engine.Radicals)
}

// ActiveSuggestion is the index of the applied suggestion, or -1.
func (s *Session) ActiveSuggestion() int {
	return s.active
}

// CycleSuggestion applies the next suggestion, or the previous one when back
// is set. Going back from the first suggestion clears the interpretation.
func (s *Session) CycleSuggestion(back bool) {
	sugs := s.Suggestions()
	if len(sugs) == 0 {
		return
	}
	switch {
	case s.active == noSelection:
		s.active = 0
	case back && s.active == 0:
		s.ClearInterpretation()
		return
	case back:
		s.active--
	case s.active+1 < len(sugs):
		s.active++
	}
	if s.active < len(sugs) {
		s.Interpret(sugs[s.active].Interpretation(0))
	}
}

// ChooseSuggestion applies kanji form variant of suggestion i.
func (s *Session) ChooseSuggestion(i, variant int) bool {
	sugs := s.Suggestions()
	if i < 0 || i >= len(sugs) {
		return false
	}
	if !s.Interpret(sugs[i].Interpretation(variant)) {
		return false
	}
	s.active = i
	return true
}

// ChooseKanji renders the selected span as catalog kanji index.
func (s *Session) ChooseKanji(index int) bool {
	if _, ok := s.catalog.At(index); !ok {
		return false
	}
	return s.Interpret(overlay.CatalogKanji{Index: index})
}

func (s *Session) ChooseRadical(r radical.Radical) bool {
	return s.Interpret(overlay.RadicalGlyph{Char: r.Char})
}

// Commit returns the output and resets the session to an empty buffer.
func (s *Session) Commit() string {
	out := s.output
	s.buf, s.cursor, s.spans, s.output = "", 0, nil, ""
	s.overlay.ClearAll()
	s.selected, s.active = noSelection, noSelection
	s.suggestions.Invalidate()
	s.kanji.Invalidate()
	s.radicals.Invalidate()
	s.log.Debug("committed output", "length", len(out))
	return out
}
