package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/kanainput/internal/dictionary"
	"github.com/jusunglee/kanainput/internal/kanji"
	"github.com/jusunglee/kanainput/internal/morph"
	"github.com/jusunglee/kanainput/internal/session"
	"github.com/jusunglee/kanainput/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	texts []string
	err   error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.texts = append(f.texts, text)
	return nil
}

func newTestModel(t *testing.T) (model, *fakeClipboard) {
	t.Helper()
	corpus, err := dictionary.LoadEmbedded()
	require.NoError(t, err)
	catalog, err := kanji.Load()
	require.NoError(t, err)

	engine := suggest.New(nil, corpus, morph.NewRules(), catalog, suggest.Config{})
	cb := &fakeClipboard{}
	return newModel(nil, session.New(nil, engine, catalog), catalog, cb), cb
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func press(m model, msgs ...tea.KeyMsg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestTypingRenders(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, runes("tabenai"))
	assert.Equal(t, "tabenai", m.input.Value())
	assert.Equal(t, "たべない", m.session.Output())
	assert.Contains(t, m.View(), "たべない")
	assert.Contains(t, m.View(), "食べる")
}

func TestTabCyclesSuggestions(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, runes("tabenai"), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "食べない", m.session.Output())
	// The editor keeps the romaji.
	assert.Equal(t, "tabenai", m.input.Value())

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "たべない", m.session.Output())
}

func TestInterpretationHotkeys(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, runes("neko desu"))
	require.Equal(t, 1, m.session.Selected())

	m = press(m, tea.KeyMsg{Type: tea.KeyF6})
	assert.Equal(t, "ねこデス", m.session.Output())

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft, Alt: true}, tea.KeyMsg{Type: tea.KeyF7})
	assert.Equal(t, 0, m.session.Selected())
	assert.Equal(t, "nekoデス", m.session.Output())

	m = press(m, tea.KeyMsg{Type: tea.KeyRight, Alt: true}, tea.KeyMsg{Type: tea.KeyF5})
	assert.Equal(t, "nekoです", m.session.Output())

	m = press(m, tea.KeyMsg{Type: tea.KeyF3})
	assert.Equal(t, "ねこです", m.session.Output())
}

func TestPickSuggestionAndVariant(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, runes("kaeru"), alt('2'))
	assert.Equal(t, "変える", m.session.Output())

	m = press(m, alt('9'))
	assert.Equal(t, "no suggestion 9", m.status)

	m, _ = newTestModel(t)
	m = press(m, runes("iku"), alt('1'))
	assert.Equal(t, "行く", m.session.Output())
	m = press(m, alt('v'))
	assert.Equal(t, "往く", m.session.Output())
	m = press(m, alt('v'))
	assert.Equal(t, "行く", m.session.Output())
}

func TestKanjiCycling(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, runes("ame"), tea.KeyMsg{Type: tea.KeyF8})
	assert.Equal(t, "雨", m.session.Output())
	m = press(m, tea.KeyMsg{Type: tea.KeyF8})
	assert.Equal(t, "飴", m.session.Output())
	m = press(m, tea.KeyMsg{Type: tea.KeyF8})
	assert.Equal(t, "雨", m.session.Output())

	m = press(m, runes(" sanzui"), tea.KeyMsg{Type: tea.KeyF9})
	assert.Equal(t, "雨氵", m.session.Output())
}

func TestCommit(t *testing.T) {
	m, cb := newTestModel(t)

	m = press(m, runes("tabenai"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"食べない"}, cb.texts)
	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.session.Output())
	assert.Equal(t, "committed", m.status)

	// Nothing to commit.
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, cb.texts, 1)
}

func TestCopyFailure(t *testing.T) {
	m, cb := newTestModel(t)
	cb.err = errors.New("no display")

	m = press(m, runes("ka"), tea.KeyMsg{Type: tea.KeyF2})
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "no display")
}

func TestCommitKeepsBufferWhenCopyFails(t *testing.T) {
	m, cb := newTestModel(t)
	cb.err = errors.New("no clipboard utility")

	m = press(m, runes("watashi"), tea.KeyMsg{Type: tea.KeyF6}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Error(t, m.err)
	assert.Equal(t, "watashi", m.input.Value())
	assert.Equal(t, "watashi", m.session.Text())
	assert.Equal(t, "ワタシ", m.session.Output())
	assert.Empty(t, m.status)

	cb.err = nil
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"ワタシ"}, cb.texts)
	assert.Empty(t, m.session.Text())
}

func TestKanjiBrowser(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, runes("ame"), tea.KeyMsg{Type: tea.KeyF4})
	require.Equal(t, modeKanji, m.mode)

	m = press(m, runes("candy"))
	assert.Equal(t, "candy", m.filter.Value())
	assert.Equal(t, "ame", m.input.Value())
	assert.Contains(t, m.View(), "飴")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeInput, m.mode)
	assert.Equal(t, "飴", m.session.Output())
}

func TestRadicalBrowser(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, runes("mizu"), tea.KeyMsg{Type: tea.KeyF4}, tea.KeyMsg{Type: tea.KeyTab}, runes("sanzui"))
	require.Equal(t, tabRadicals, m.tab)
	assert.Contains(t, m.View(), "さんずい")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "氵", m.session.Output())
}

func TestBrowserNeedsWordSpan(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyF4}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeKanji, m.mode)
	require.Error(t, m.err)

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeInput, m.mode)
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, modeHelp, m.mode)
	assert.Contains(t, m.View(), "Help")
	m = press(m, runes("x"))
	assert.Equal(t, modeInput, m.mode)
	assert.Empty(t, m.input.Value())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestByteOffset(t *testing.T) {
	assert.Equal(t, 0, byteOffset("", 0))
	assert.Equal(t, 3, byteOffset("aé b", 2))
	assert.Equal(t, 5, byteOffset("aé b", 10))
}
