package morph

// Class is the conjugation class of a dictionary form.
type Class uint8

const (
	ClassIchidan Class = iota + 1
	ClassGodanBu
	ClassGodanGu
	ClassGodanKu
	ClassGodanIku
	ClassGodanMu
	ClassGodanNu
	ClassGodanRu
	ClassGodanSu
	ClassGodanTsu
	ClassGodanU
	// ClassSuru is a verb that carries its own する (する, 愛する).
	ClassSuru
	// ClassSuruNoun is a noun that becomes a verb with a trailing する (勉強).
	ClassSuruNoun
	ClassKuru
	ClassIAdjective
	ClassNaAdjective
)

var classInfo = map[Class]struct {
	label   string
	code    string
	aliases []string
}{
	ClassIchidan:     {"ichidan verb", "v1", nil},
	ClassGodanBu:     {"ぶ verb", "v5b", nil},
	ClassGodanGu:     {"ぐ verb", "v5g", nil},
	ClassGodanKu:     {"く verb", "v5k", nil},
	ClassGodanIku:    {"行く verb", "v5k-s", nil},
	ClassGodanMu:     {"む verb", "v5m", nil},
	ClassGodanNu:     {"ぬ verb", "v5n", nil},
	ClassGodanRu:     {"godan る verb", "v5r", nil},
	ClassGodanSu:     {"す verb", "v5s", nil},
	ClassGodanTsu:    {"つ verb", "v5t", nil},
	ClassGodanU:      {"う verb", "v5u", nil},
	ClassSuru:        {"する verb", "vs-i", []string{"vs-s"}},
	ClassSuruNoun:    {"する noun", "vs", nil},
	ClassKuru:        {"くる verb", "vk", nil},
	ClassIAdjective:  {"adjective", "adj-i", nil},
	ClassNaAdjective: {"な adjective", "adj-na", nil},
}

func (c Class) String() string {
	if info, ok := classInfo[c]; ok {
		return info.label
	}
	return "unknown"
}

// Code returns the JMdict part-of-speech code a dictionary entry of this class
// declares.
func (c Class) Code() string {
	return classInfo[c].code
}

// Codes returns Code followed by any other part-of-speech codes JMdict uses
// for the class.
func (c Class) Codes() []string {
	info, ok := classInfo[c]
	if !ok {
		return nil
	}
	return append([]string{info.code}, info.aliases...)
}

// StemTrim is the number of trailing characters removed from a dictionary
// form to get the part that stays fixed under conjugation.
func (c Class) StemTrim() int {
	switch c {
	case ClassSuru:
		return 2
	case ClassNaAdjective, ClassSuruNoun, 0:
		return 0
	default:
		return 1
	}
}

// Step is one inflection applied on the way from the dictionary form to the
// surface form.
type Step uint8

const (
	StepNegative Step = iota + 1
	StepPast
	StepTe
	StepProgressive
	StepPolite
	StepDesire
	StepVolitional
	StepPotential
	StepPassive
	StepCausative
	StepImperative
	StepConditional
	StepAdverbial
	StepCopula
	StepAttributive
)

var stepLabels = map[Step]string{
	StepNegative:    "negative",
	StepPast:        "past",
	StepTe:          "te",
	StepProgressive: "progressive",
	StepPolite:      "polite",
	StepDesire:      "desire",
	StepVolitional:  "volitional",
	StepPotential:   "potential",
	StepPassive:     "passive",
	StepCausative:   "causative",
	StepImperative:  "imperative",
	StepConditional: "conditional",
	StepAdverbial:   "adverbial",
	StepCopula:      "copula",
	StepAttributive: "attributive",
}

func (s Step) String() string {
	if label, ok := stepLabels[s]; ok {
		return label
	}
	return "unknown"
}
