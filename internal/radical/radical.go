// Package radical lists common kanji components by their Japanese names.
package radical

import (
	"strings"

	"github.com/samber/lo"
)

type Radical struct {
	Char   string
	Name   string
	Stroke int
}

var radicals = []Radical{
	{"一", "いち", 1},
	{"亻", "にんべん", 2},
	{"冫", "にすい", 2},
	{"刂", "りっとう", 2},
	{"力", "ちから", 2},
	{"口", "くち", 3},
	{"囗", "くにがまえ", 3},
	{"土", "つち", 3},
	{"女", "おんな", 3},
	{"宀", "うかんむり", 3},
	{"彳", "ぎょうにんべん", 3},
	{"忄", "りっしんべん", 3},
	{"扌", "てへん", 3},
	{"氵", "さんずい", 3},
	{"犭", "けものへん", 3},
	{"艹", "くさかんむり", 3},
	{"辶", "しんにょう", 3},
	{"阝", "こざとへん", 3},
	{"心", "こころ", 4},
	{"日", "ひへん", 4},
	{"木", "きへん", 4},
	{"火", "ひへん", 4},
	{"灬", "れっか", 4},
	{"目", "めへん", 5},
	{"石", "いしへん", 5},
	{"礻", "しめすへん", 4},
	{"禾", "のぎへん", 5},
	{"糸", "いとへん", 6},
	{"言", "ごんべん", 7},
	{"金", "かねへん", 8},
	{"門", "もんがまえ", 8},
	{"雨", "あめかんむり", 8},
	{"食", "しょくへん", 9},
}

// All returns every radical in catalog order.
func All() []Radical {
	return append([]Radical(nil), radicals...)
}

// ByName returns the radicals whose name contains fragment.
func ByName(fragment string) []Radical {
	if fragment == "" {
		return nil
	}
	return lo.Filter(radicals, func(r Radical, _ int) bool {
		return strings.Contains(r.Name, fragment)
	})
}
