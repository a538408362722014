// Package tui is the terminal front end: a single-line romaji editor with the
// converted output, per-span interpretation hotkeys and suggestion lists.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/jusunglee/kanainput/internal/kanji"
	"github.com/jusunglee/kanainput/internal/overlay"
	"github.com/jusunglee/kanainput/internal/radical"
	"github.com/jusunglee/kanainput/internal/session"
	"github.com/jusunglee/kanainput/internal/suggest"
	"github.com/jusunglee/kanainput/internal/transliteration"
)

type mode int

const (
	modeInput mode = iota
	modeKanji
	modeHelp
)

type browserTab int

const (
	tabKanji browserTab = iota
	tabRadicals
)

const maxListed = 9

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("86"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	readingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Clipboard receives copied and committed output.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard writes to the OS clipboard.
var SystemClipboard Clipboard = systemClipboard{}

type model struct {
	log       *slog.Logger
	session   *session.Session
	catalog   *kanji.DB
	clipboard Clipboard

	mode   mode
	input  textinput.Model
	filter textinput.Model
	tab    browserTab
	browse int

	kanjiPick   int
	radicalPick int

	status string
	err    error
	width  int
	height int
}

func newModel(log *slog.Logger, sess *session.Session, catalog *kanji.DB, cb Clipboard) model {
	if log == nil {
		log = slog.Default()
	}
	if cb == nil {
		cb = SystemClipboard
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "romaji, {verbatim}"
	input.CharLimit = 4096
	input.Focus()

	filter := textinput.New()
	filter.Prompt = "filter: "
	filter.Placeholder = "meaning or radical name"

	return model{
		log:         log,
		session:     sess,
		catalog:     catalog,
		clipboard:   cb,
		input:       input,
		filter:      filter,
		kanjiPick:   -1,
		radicalPick: -1,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(0, msg.Width-4)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeKanji:
			return m.updateBrowser(msg)
		case modeHelp:
			m.mode = modeInput
			return m, nil
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch key := msg.String(); key {
	case "esc":
		return m, tea.Quit
	case "f1":
		m.mode = modeHelp
		return m, nil
	case "f2":
		m.copy(m.session.Output(), "copied")
		return m, nil
	case "f3":
		m.session.ClearInterpretations()
		return m, nil
	case "f4":
		m.mode = modeKanji
		m.browse = 0
		m.input.Blur()
		cmd := m.filter.Focus()
		return m, cmd
	case "f5":
		m.session.Interpret(overlay.Phonetic{Script: transliteration.ScriptHiragana})
		return m, nil
	case "f6":
		m.session.Interpret(overlay.Phonetic{Script: transliteration.ScriptKatakana})
		return m, nil
	case "f7":
		m.session.Interpret(overlay.Verbatim{})
		return m, nil
	case "f8":
		m.cycleKanji()
		return m, nil
	case "f9":
		m.cycleRadical()
		return m, nil
	case "tab", "shift+tab":
		m.session.CycleSuggestion(key == "shift+tab")
		return m, nil
	case "alt+left":
		m.session.SelectPrev()
		m.resetPicks()
		return m, nil
	case "alt+right":
		m.session.SelectNext()
		m.resetPicks()
		return m, nil
	case "enter":
		out := m.session.Output()
		if out == "" {
			return m, nil
		}
		if !m.copy(out, "committed") {
			return m, nil
		}
		m.session.Commit()
		m.input.Reset()
		m.resetPicks()
		return m, nil
	case "alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9":
		i := int(key[len(key)-1] - '1')
		if !m.session.ChooseSuggestion(i, 0) {
			m.status = fmt.Sprintf("no suggestion %d", i+1)
		}
		return m, nil
	case "alt+v":
		m.cycleVariant()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sync()
	return m, cmd
}

// sync pushes the editor state into the session.
func (m *model) sync() {
	value := m.input.Value()
	before := m.session.Text()
	m.session.SetText(value, byteOffset(value, m.input.Position()))
	if value != before {
		m.resetPicks()
	}
}

// byteOffset converts a rune position to a byte offset.
func byteOffset(s string, runePos int) int {
	i := 0
	for off := range s {
		if i == runePos {
			return off
		}
		i++
	}
	return len(s)
}

func (m *model) resetPicks() {
	m.kanjiPick = -1
	m.radicalPick = -1
}

// copy reports whether text reached the clipboard.
func (m *model) copy(text, what string) bool {
	if err := m.clipboard.WriteAll(text); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		m.err = fmt.Errorf("clipboard: %w", err)
		return false
	}
	m.status = what
	return true
}

func (m *model) cycleKanji() {
	indices := m.session.KanjiSuggestions()
	if len(indices) == 0 {
		m.status = "no kanji for this span"
		return
	}
	m.kanjiPick = (m.kanjiPick + 1) % len(indices)
	m.session.ChooseKanji(indices[m.kanjiPick])
}

func (m *model) cycleRadical() {
	radicals := m.session.RadicalSuggestions()
	if len(radicals) == 0 {
		m.status = "no radical for this span"
		return
	}
	m.radicalPick = (m.radicalPick + 1) % len(radicals)
	m.session.ChooseRadical(radicals[m.radicalPick])
}

// cycleVariant moves the selected span to the next kanji form of its entry.
func (m *model) cycleVariant() {
	form, ok := m.session.Interpretation().(overlay.DictionaryForm)
	if !ok {
		return
	}
	n := max(1, len(form.Entry.Kanji))
	form.Variant = (form.Variant + 1) % n
	m.session.Interpret(form)
}

func (m model) browserKanji() []int {
	return m.catalog.FilterMeaning(m.filter.Value())
}

func (m model) browserRadicals() []radical.Radical {
	q := strings.TrimSpace(m.filter.Value())
	if q == "" {
		return radical.All()
	}
	return radical.ByName(transliteration.Transliterate(q, transliteration.Hiragana))
}

func (m model) browserLen() int {
	if m.tab == tabRadicals {
		return len(m.browserRadicals())
	}
	return len(m.browserKanji())
}

func (m model) updateBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f4":
		m.mode = modeInput
		m.filter.Blur()
		cmd := m.input.Focus()
		return m, cmd
	case "tab":
		m.tab = (m.tab + 1) % 2
		m.browse = 0
		return m, nil
	case "up":
		m.browse = max(0, m.browse-1)
		return m, nil
	case "down":
		m.browse = max(0, min(m.browse+1, m.browserLen()-1))
		return m, nil
	case "enter":
		var ok bool
		if m.tab == tabRadicals {
			if rs := m.browserRadicals(); m.browse < len(rs) {
				ok = m.session.ChooseRadical(rs[m.browse])
			}
		} else {
			if ks := m.browserKanji(); m.browse < len(ks) {
				ok = m.session.ChooseKanji(ks[m.browse])
			}
		}
		if !ok {
			m.err = errors.New("select a word span first")
			return m, nil
		}
		m.mode = modeInput
		m.filter.Blur()
		cmd := m.input.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.browse = 0
	return m, cmd
}

func (m model) View() string {
	var s strings.Builder

	switch m.mode {
	case modeInput:
		m.viewInput(&s)
	case modeKanji:
		m.viewBrowser(&s)
	case modeHelp:
		m.viewHelp(&s)
	}

	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()))
	} else if m.status != "" {
		s.WriteString("\n" + successStyle.Render(m.status))
	}
	s.WriteString("\n")
	return s.String()
}

func (m model) viewInput(s *strings.Builder) {
	s.WriteString(titleStyle.Render("kanainput"))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")
	s.WriteString(outputStyle.Render(m.session.Output()))
	s.WriteString("\n\n")

	selected := m.session.Selected()
	for i := range m.session.Spans() {
		rendered := m.session.RenderedSpan(i)
		if i == selected {
			rendered = selectedStyle.Render(rendered)
		}
		s.WriteString(rendered)
		s.WriteString(" ")
	}
	s.WriteString("\n")
	if selected >= 0 {
		s.WriteString(labelStyle.Render(fmt.Sprintf("%q → %s", m.session.SpanText(selected), overlay.Describe(m.session.Interpretation()))))
		s.WriteString("\n")
	}

	m.viewSuggestions(s)

	s.WriteString("\n")
	s.WriteString(dimStyle.Render("tab/shift+tab suggestions · alt+←/→ span · F5 は F6 ハ F7 ha · F8 kanji F9 radical · enter commit · F1 help"))
}

func (m model) viewSuggestions(s *strings.Builder) {
	sugs := m.session.Suggestions()
	active := m.session.ActiveSuggestion()
	for i, sug := range sugs {
		if i == maxListed {
			s.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(sugs)-maxListed)))
			s.WriteString("\n")
			break
		}
		line := fmt.Sprintf("%d %s %s", i+1, sug.Entry.Headword(), readingStyle.Render(strings.Join(sug.Entry.Readings, ", ")))
		if sug.Root != nil {
			line += " " + dimStyle.Render("("+sug.Root.Describe()+")")
		}
		line += " " + sug.Entry.Summary()
		if pos := partsOfSpeech(sug); pos != "" {
			line += " " + dimStyle.Render("["+pos+"]")
		}
		if i == active {
			line = activeStyle.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	if indices := m.session.KanjiSuggestions(); len(indices) > 0 {
		var glyphs []string
		for _, i := range indices {
			if k, ok := m.catalog.At(i); ok {
				glyphs = append(glyphs, k.Glyph())
			}
		}
		s.WriteString(labelStyle.Render("kanji: ") + strings.Join(glyphs, " "))
		s.WriteString("\n")
	}
	if radicals := m.session.RadicalSuggestions(); len(radicals) > 0 {
		var chars []string
		for _, r := range radicals {
			chars = append(chars, r.Char+" "+r.Name)
		}
		s.WriteString(labelStyle.Render("radicals: ") + strings.Join(chars, ", "))
		s.WriteString("\n")
	}
}

// partsOfSpeech lists the entry's part-of-speech labels, minus the one
// already shown by the root description.
func partsOfSpeech(sug suggest.Suggestion) string {
	var labels []string
	for _, sense := range sug.Entry.Senses {
		for _, p := range sense.PartsOfSpeech {
			if sug.Root != nil && lo.Contains(sug.Root.Class.Codes(), string(p)) {
				continue
			}
			labels = append(labels, p.Label())
		}
	}
	return strings.Join(lo.Uniq(labels), ", ")
}

func (m model) viewBrowser(s *strings.Builder) {
	kanjiTab, radicalTab := "Kanji", "Radicals"
	if m.tab == tabKanji {
		kanjiTab = selectedStyle.Render(kanjiTab)
	} else {
		radicalTab = selectedStyle.Render(radicalTab)
	}
	s.WriteString(titleStyle.Render("Catalog") + "  " + kanjiTab + " " + radicalTab)
	s.WriteString("\n")
	s.WriteString(m.filter.View())
	s.WriteString("\n\n")

	rows := max(5, m.height-8)
	start := max(0, m.browse-rows+1)

	if m.tab == tabRadicals {
		rs := m.browserRadicals()
		for i := start; i < len(rs) && i < start+rows; i++ {
			line := fmt.Sprintf("%s  %s", rs[i].Char, rs[i].Name)
			s.WriteString(m.browserLine(i, line))
		}
	} else {
		for n, idx := range m.browserKanji() {
			if n < start || n >= start+rows {
				continue
			}
			k, _ := m.catalog.At(idx)
			glyphs := strings.TrimSpace(strings.Join(k.Glyphs[:], " "))
			line := fmt.Sprintf("%s  %s  %s", glyphs, k.Meaning, readingStyle.Render(strings.Join(k.Readings, " ")))
			s.WriteString(m.browserLine(n, line))
		}
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render("↑/↓ move · tab kanji/radicals · enter apply to span · esc back"))
}

func (m model) browserLine(i int, line string) string {
	if i == m.browse {
		return activeStyle.Render("▸ ") + line + "\n"
	}
	return "  " + line + "\n"
}

func (m model) viewHelp(s *strings.Builder) {
	s.WriteString(titleStyle.Render("Help"))
	s.WriteString("\n")
	s.WriteString("Type romaji; words become hiragana as you type. Text in {braces} is kept as is.\n\n")
	for _, row := range [][2]string{
		{"tab / shift+tab", "next / previous dictionary suggestion"},
		{"alt+1 … alt+9", "pick a dictionary suggestion"},
		{"alt+v", "next kanji form of the picked word"},
		{"alt+← / alt+→", "select span"},
		{"F5 / F6 / F7", "hiragana / katakana / romaji"},
		{"F8 / F9", "cycle kanji / radicals read like the span"},
		{"F3", "reset every span"},
		{"F2", "copy output"},
		{"F4", "kanji and radical catalog"},
		{"enter", "copy output and start over"},
		{"esc / ctrl+c", "quit"},
	} {
		fmt.Fprintf(s, "  %-16s %s\n", row[0], dimStyle.Render(row[1]))
	}
	s.WriteString("\n")
	s.WriteString(dimStyle.Render("Press any key to go back"))
}

// Run starts the terminal program and blocks until the user quits.
func Run(log *slog.Logger, sess *session.Session, catalog *kanji.DB) error {
	p := tea.NewProgram(newModel(log, sess, catalog, SystemClipboard), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
