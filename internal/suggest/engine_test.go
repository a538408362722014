package suggest

import (
	"iter"
	"testing"

	"github.com/jusunglee/kanainput/internal/dictionary"
	"github.com/jusunglee/kanainput/internal/kanji"
	"github.com/jusunglee/kanainput/internal/morph"
	"github.com/jusunglee/kanainput/internal/radical"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeconjugator struct {
	mock.Mock
}

func (m *MockDeconjugator) Deconjugate(reading string) []morph.Root {
	ret := m.Called(reading)
	return ret.Get(0).([]morph.Root)
}

type MockSource struct {
	mock.Mock
}

func (m *MockSource) Entries() iter.Seq[dictionary.Entry] {
	ret := m.Called()
	return ret.Get(0).(iter.Seq[dictionary.Entry])
}

func entry(kanji, reading string, pos ...dictionary.PartOfSpeech) dictionary.Entry {
	e := dictionary.Entry{
		Readings: []string{reading},
		Senses:   []dictionary.Sense{{Glosses: []string{reading}, PartsOfSpeech: pos}},
	}
	if kanji != "" {
		e.Kanji = []string{kanji}
	}
	return e
}

var corpus = dictionary.Corpus{
	entry("食べ物", "たべもの", dictionary.Noun),
	entry("食べる", "たべる", dictionary.IchidanVerb, dictionary.Transitive),
	entry("帰る", "かえる", dictionary.GodanRuVerb),
	entry("変える", "かえる", dictionary.IchidanVerb),
	entry("蛙", "かえる", dictionary.Noun),
	entry("", "スペース", dictionary.Noun),
	entry("書", "かく", dictionary.Noun),
	entry("勉強", "べんきょう", dictionary.Noun, dictionary.SuruNoun),
	entry("来る", "くる", dictionary.KuruVerb),
	entry("察する", "さっする", dictionary.SuruSpecial, dictionary.Transitive),
	entry("愛する", "あいする", dictionary.SuruVerb),
}

func headwords(ss []Suggestion) []string {
	return lo.Map(ss, func(s Suggestion, _ int) string { return s.Entry.Headword() })
}

func TestSuggestDeconjugated(t *testing.T) {
	engine := New(nil, corpus, morph.NewRules(), nil, Config{})

	got := engine.Suggest("tabenai")
	require.Len(t, got, 1)
	assert.Equal(t, "食べる", got[0].Entry.Headword())
	require.NotNil(t, got[0].Root)
	assert.Equal(t, morph.ClassIchidan, got[0].Root.Class)
	assert.Equal(t, "たべない", got[0].Root.Surface)
	assert.Equal(t, "食べない", got[0].Interpretation(0).Text())
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		config Config
		want   []string
	}{
		{"exact reading keeps corpus order", "kaeru", Config{}, []string{"帰る", "変える", "蛙"}},
		{"katakana reading", "supe-su", Config{}, []string{"スペース"}},
		{"require kanji", "supe-su", Config{RequireKanji: true}, nil},
		{"part of speech must match", "kakanai", Config{}, nil},
		{"suru noun", "benkyoushita", Config{}, []string{"勉強"}},
		{"kuru", "konai", Config{}, []string{"来る"}},
		{"suru verb", "aishita", Config{}, []string{"愛する"}},
		{"special suru verb", "sasshinai", Config{}, []string{"察する"}},
		{"whitespace trimmed", "taberu ", Config{}, []string{"食べる"}},
		{"no match", "zzz", Config{}, nil},
		{"empty", "", Config{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(nil, corpus, morph.NewRules(), nil, tt.config)
			got := headwords(engine.Suggest(tt.text))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestExactReadingHasNoRoot(t *testing.T) {
	engine := New(nil, corpus, morph.NewRules(), nil, Config{})

	got := engine.Suggest("taberu")
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Root)
	assert.Equal(t, "食べる", got[0].Interpretation(0).Text())
}

func TestSuggestSinglePass(t *testing.T) {
	deconj := new(MockDeconjugator)
	source := new(MockSource)

	root := morph.Root{Class: morph.ClassIchidan, Steps: []morph.Step{morph.StepNegative}, Surface: "たべない", Text: "たべる"}
	deconj.On("Deconjugate", "たべない").Return([]morph.Root{root}).Once()
	source.On("Entries").Return(corpus.Entries()).Once()

	engine := New(nil, source, deconj, nil, Config{})
	got := engine.Suggest("tabenai")

	require.Len(t, got, 1)
	assert.Equal(t, root, *got[0].Root)
	deconj.AssertExpectations(t)
	source.AssertExpectations(t)
}

func TestSuggestFirstMatchingRootWins(t *testing.T) {
	deconj := new(MockDeconjugator)
	deconj.On("Deconjugate", "かえらない").Return([]morph.Root{
		{Class: morph.ClassIchidan, Surface: "かえらない", Text: "かえらる"},
		{Class: morph.ClassGodanRu, Surface: "かえらない", Text: "かえる"},
	})

	engine := New(nil, corpus, deconj, nil, Config{})
	got := engine.Suggest("kaeranai")

	require.Len(t, got, 1)
	assert.Equal(t, "帰る", got[0].Entry.Headword())
	assert.Equal(t, morph.ClassGodanRu, got[0].Root.Class)
}

func TestSuggestWithoutCollaborators(t *testing.T) {
	assert.Empty(t, New(nil, nil, nil, nil, Config{}).Suggest("taberu"))
	assert.Empty(t, New(nil, dictionary.Corpus{}, nil, nil, Config{}).Suggest("taberu"))

	var engine *Engine
	assert.Empty(t, engine.Suggest("taberu"))
	assert.Empty(t, engine.Kanji("ame"))

	// Without a deconjugator only exact readings match.
	got := New(nil, corpus, nil, nil, Config{}).Suggest("tabenai")
	assert.Empty(t, got)
}

func TestKanji(t *testing.T) {
	catalog, err := kanji.Load()
	require.NoError(t, err)
	engine := New(nil, corpus, nil, catalog, Config{})

	got := lo.Map(engine.Kanji("ame"), func(i int, _ int) string {
		k, _ := catalog.At(i)
		return k.Glyph()
	})
	assert.Equal(t, []string{"雨", "飴"}, got)

	// On'yomi are stored in katakana.
	got = lo.Map(engine.Kanji("kan"), func(i int, _ int) string {
		k, _ := catalog.At(i)
		return k.Glyph()
	})
	assert.Equal(t, []string{"漢"}, got)

	assert.Empty(t, New(nil, corpus, nil, nil, Config{}).Kanji("ame"))
}

func TestRadicals(t *testing.T) {
	engine := New(nil, nil, nil, nil, Config{})

	got := engine.Radicals("sanzui")
	require.Len(t, got, 1)
	assert.Equal(t, radical.Radical{Char: "氵", Name: "さんずい", Stroke: 3}, got[0])
	assert.Empty(t, engine.Radicals(""))
}
