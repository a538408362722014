// Package morph finds dictionary forms of inflected Japanese readings.
//
// Deconjugation works backwards from the surface form by repeatedly replacing
// a known inflected ending with the ending it was derived from. Each
// intermediate form is tagged with the word types it can be, and a rule only
// applies to forms of the type it expects.
package morph

import (
	"strings"
	"unicode/utf8"
)

// Deconjugator proposes dictionary forms for an inflected reading.
type Deconjugator interface {
	Deconjugate(reading string) []Root
}

// form types
type kind uint16

const (
	kindV1 kind = 1 << iota
	kindV5
	kindVS
	kindVK
	kindAdjI
	kindAdjNa
	kindMasu
	kindTe
)

const dictionaryKinds = kindV1 | kindV5 | kindVS | kindVK | kindAdjI | kindAdjNa

type rule struct {
	from  string
	to    string
	in    kind
	out   kind
	steps []Step
}

// Rules is a table-driven Deconjugator.
type Rules struct {
	rules    []rule
	maxForms int
}

var _ Deconjugator = (*Rules)(nil)

var defaultRules = NewRules()

// Deconjugate runs the built-in rule set.
func Deconjugate(reading string) []Root {
	return defaultRules.Deconjugate(reading)
}

func NewRules() *Rules {
	r := &Rules{maxForms: 512}
	r.addIchidan()
	r.addGodan()
	r.addIrregular()
	r.addAdjectives()
	r.addAuxiliaries()
	return r
}

func (r *Rules) add(from, to string, in, out kind, steps ...Step) {
	r.rules = append(r.rules, rule{from: from, to: to, in: in, out: out, steps: steps})
}

func (r *Rules) addIchidan() {
	r.add("ない", "る", kindAdjI, kindV1, StepNegative)
	r.add("ます", "る", kindMasu, kindV1, StepPolite)
	r.add("たい", "る", kindAdjI, kindV1, StepDesire)
	r.add("た", "る", 0, kindV1, StepPast)
	r.add("て", "る", kindTe, kindV1, StepTe)
	r.add("よう", "る", 0, kindV1, StepVolitional)
	r.add("られる", "る", kindV1, kindV1, StepPassive)
	r.add("れる", "る", kindV1, kindV1, StepPotential)
	r.add("させる", "る", kindV1, kindV1, StepCausative)
	r.add("ろ", "る", 0, kindV1, StepImperative)
	r.add("れば", "る", 0, kindV1, StepConditional)
}

// godanRows lists, per dictionary ending, the a/i/e/o-row kana and the te and
// past endings.
var godanRows = []struct {
	u, a, i, e, o string
	te, ta        string
}{
	{"く", "か", "き", "け", "こ", "いて", "いた"},
	{"ぐ", "が", "ぎ", "げ", "ご", "いで", "いだ"},
	{"す", "さ", "し", "せ", "そ", "して", "した"},
	{"つ", "た", "ち", "て", "と", "って", "った"},
	{"ぬ", "な", "に", "ね", "の", "んで", "んだ"},
	{"ぶ", "ば", "び", "べ", "ぼ", "んで", "んだ"},
	{"む", "ま", "み", "め", "も", "んで", "んだ"},
	{"る", "ら", "り", "れ", "ろ", "って", "った"},
	{"う", "わ", "い", "え", "お", "って", "った"},
}

func (r *Rules) addGodan() {
	for _, g := range godanRows {
		r.add(g.a+"ない", g.u, kindAdjI, kindV5, StepNegative)
		r.add(g.i+"ます", g.u, kindMasu, kindV5, StepPolite)
		r.add(g.i+"たい", g.u, kindAdjI, kindV5, StepDesire)
		r.add(g.ta, g.u, 0, kindV5, StepPast)
		r.add(g.te, g.u, kindTe, kindV5, StepTe)
		r.add(g.o+"う", g.u, 0, kindV5, StepVolitional)
		r.add(g.e+"る", g.u, kindV1, kindV5, StepPotential)
		r.add(g.a+"れる", g.u, kindV1, kindV5, StepPassive)
		r.add(g.a+"せる", g.u, kindV1, kindV5, StepCausative)
		r.add(g.e, g.u, 0, kindV5, StepImperative)
		r.add(g.e+"ば", g.u, 0, kindV5, StepConditional)
	}
	// 行く has an irregular te/past form.
	r.add("いった", "いく", 0, kindV5, StepPast)
	r.add("いって", "いく", kindTe, kindV5, StepTe)
}

func (r *Rules) addIrregular() {
	r.add("しない", "する", kindAdjI, kindVS, StepNegative)
	r.add("します", "する", kindMasu, kindVS, StepPolite)
	r.add("したい", "する", kindAdjI, kindVS, StepDesire)
	r.add("した", "する", 0, kindVS, StepPast)
	r.add("して", "する", kindTe, kindVS, StepTe)
	r.add("しよう", "する", 0, kindVS, StepVolitional)
	r.add("できる", "する", kindV1, kindVS, StepPotential)
	r.add("される", "する", kindV1, kindVS, StepPassive)
	r.add("させる", "する", kindV1, kindVS, StepCausative)
	r.add("しろ", "する", 0, kindVS, StepImperative)
	r.add("すれば", "する", 0, kindVS, StepConditional)

	r.add("こない", "くる", kindAdjI, kindVK, StepNegative)
	r.add("きます", "くる", kindMasu, kindVK, StepPolite)
	r.add("きたい", "くる", kindAdjI, kindVK, StepDesire)
	r.add("きた", "くる", 0, kindVK, StepPast)
	r.add("きて", "くる", kindTe, kindVK, StepTe)
	r.add("こよう", "くる", 0, kindVK, StepVolitional)
	r.add("こられる", "くる", kindV1, kindVK, StepPotential)
	r.add("こさせる", "くる", kindV1, kindVK, StepCausative)
	r.add("こい", "くる", 0, kindVK, StepImperative)
	r.add("くれば", "くる", 0, kindVK, StepConditional)
}

func (r *Rules) addAdjectives() {
	r.add("くない", "い", kindAdjI, kindAdjI, StepNegative)
	r.add("かった", "い", 0, kindAdjI, StepPast)
	r.add("くて", "い", kindTe, kindAdjI, StepTe)
	r.add("く", "い", 0, kindAdjI, StepAdverbial)
	r.add("ければ", "い", 0, kindAdjI, StepConditional)

	r.add("だ", "", 0, kindAdjNa, StepCopula)
	r.add("だった", "", 0, kindAdjNa, StepCopula, StepPast)
	r.add("です", "", 0, kindAdjNa, StepCopula, StepPolite)
	r.add("でした", "", 0, kindAdjNa, StepCopula, StepPolite, StepPast)
	r.add("じゃない", "", 0, kindAdjNa, StepCopula, StepNegative)
	r.add("ではない", "", 0, kindAdjNa, StepCopula, StepNegative)
	r.add("な", "", 0, kindAdjNa, StepAttributive)
	r.add("に", "", 0, kindAdjNa, StepAdverbial)
}

func (r *Rules) addAuxiliaries() {
	r.add("ました", "ます", 0, kindMasu, StepPast)
	r.add("ません", "ます", 0, kindMasu, StepNegative)
	r.add("ませんでした", "ます", 0, kindMasu, StepNegative, StepPast)
	r.add("ましょう", "ます", 0, kindMasu, StepVolitional)
	r.add("ている", "て", kindV1, kindTe, StepProgressive)
	r.add("でいる", "で", kindV1, kindTe, StepProgressive)
	r.add("てる", "て", kindV1, kindTe, StepProgressive)
	r.add("でる", "で", kindV1, kindTe, StepProgressive)
}

type form struct {
	text  string
	kinds kind
	steps []Step
}

// Deconjugate returns every dictionary form reachable from reading, shortest
// derivations first. The reading itself is never returned.
func (r *Rules) Deconjugate(reading string) []Root {
	if reading == "" {
		return nil
	}
	queue := []form{{text: reading}}
	seen := map[string]kind{reading: 0}

	for i := 0; i < len(queue) && len(queue) < r.maxForms; i++ {
		cur := queue[i]
		for _, ru := range r.rules {
			if cur.kinds != 0 && cur.kinds&ru.in == 0 {
				continue
			}
			if !strings.HasSuffix(cur.text, ru.from) {
				continue
			}
			text := strings.TrimSuffix(cur.text, ru.from) + ru.to
			if text == "" || text == reading {
				continue
			}
			if prev, ok := seen[text]; ok && prev&ru.out == ru.out {
				continue
			}
			seen[text] |= ru.out
			steps := make([]Step, 0, len(ru.steps)+len(cur.steps))
			steps = append(steps, ru.steps...)
			steps = append(steps, cur.steps...)
			queue = append(queue, form{text: text, kinds: ru.out, steps: steps})
		}
	}

	var roots []Root
	type key struct {
		class Class
		text  string
	}
	found := make(map[key]bool)
	for _, f := range queue[1:] {
		if f.kinds&dictionaryKinds == 0 {
			continue
		}
		for _, root := range f.roots(reading) {
			k := key{root.Class, root.Text}
			if found[k] {
				continue
			}
			found[k] = true
			roots = append(roots, root)
		}
	}
	return roots
}

func (f form) roots(surface string) []Root {
	mk := func(c Class, text string) Root {
		return Root{Class: c, Steps: f.steps, Surface: surface, Text: text}
	}
	var out []Root
	if f.kinds&kindV1 != 0 && strings.HasSuffix(f.text, "る") {
		out = append(out, mk(ClassIchidan, f.text))
	}
	if f.kinds&kindV5 != 0 {
		if c, ok := godanClass(f.text); ok {
			out = append(out, mk(c, f.text))
		}
	}
	if f.kinds&kindVS != 0 {
		out = append(out, mk(ClassSuru, f.text))
		if noun := strings.TrimSuffix(f.text, "する"); noun != "" && noun != f.text {
			out = append(out, mk(ClassSuruNoun, noun))
		}
	}
	if f.kinds&kindVK != 0 {
		out = append(out, mk(ClassKuru, f.text))
	}
	if f.kinds&kindAdjI != 0 && strings.HasSuffix(f.text, "い") {
		out = append(out, mk(ClassIAdjective, f.text))
	}
	if f.kinds&kindAdjNa != 0 {
		out = append(out, mk(ClassNaAdjective, f.text))
	}
	return out
}

var godanEndings = map[rune]Class{
	'ぶ': ClassGodanBu,
	'ぐ': ClassGodanGu,
	'く': ClassGodanKu,
	'む': ClassGodanMu,
	'ぬ': ClassGodanNu,
	'る': ClassGodanRu,
	'す': ClassGodanSu,
	'つ': ClassGodanTsu,
	'う': ClassGodanU,
}

func godanClass(text string) (Class, bool) {
	if text == "いく" || text == "ゆく" {
		return ClassGodanIku, true
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	c, ok := godanEndings[last]
	return c, ok
}
