// Package russian implements the Russian Snowball stemmer.
package russian

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "аеиоуыэюя"

var yo = snowballword.Fold("ё", "е")

// Stem a Russian word.
func Stem(word string) string {
	word = snowballword.Apply(yo, word)
	if len([]rune(word)) < 3 {
		return word
	}
	w := snowballword.New(word)
	w.FindSlavicRV(vowels)
	w.FindR1R2(vowels)

	step1(w)
	step2.Run(w)
	step3.Run(w)
	step4.Run(w)
	return w.String()
}

// afterAOrYa tests for а or я in RV in front of stem.
func afterAOrYa(w *snowballword.SnowballWord, stem int) bool {
	return stem-1 >= w.RVstart && w.IsAny(stem-1, "ая")
}

var perfectiveGerund = rule.NewStep(rule.RV,
	rule.With(rule.Delete(rule.Any, "в", "вши", "вшись"), afterAOrYa, nil),
	rule.Delete(rule.Any, "ив", "ивши", "ившись", "ыв", "ывши", "ывшись"),
)

var reflexive = rule.NewStep(rule.RV, rule.Delete(rule.Any, "ся", "сь"))

var participle = rule.NewStep(rule.RV,
	rule.With(rule.Delete(rule.Any, "ем", "нн", "вш", "ющ", "щ"), afterAOrYa, nil),
	rule.Delete(rule.Any, "ивш", "ывш", "ующ"),
)

var adjective = rule.NewStep(rule.RV,
	rule.With(rule.Delete(rule.Any,
		"ее", "ие", "ые", "ое", "ими", "ыми", "ей", "ий", "ый", "ой", "ем",
		"им", "ым", "ом", "его", "ого", "ему", "ому", "их", "ых", "ую", "юю",
		"ая", "яя", "ою", "ею",
	), nil, func(w *snowballword.SnowballWord) {
		participle.Run(w)
	}),
)

var verb = rule.NewStep(rule.RV,
	rule.With(rule.Delete(rule.Any,
		"ла", "на", "ете", "йте", "ли", "й", "л", "ем", "н", "ло", "но",
		"ет", "ют", "ны", "ть", "ешь", "нно",
	), afterAOrYa, nil),
	rule.Delete(rule.Any,
		"ила", "ыла", "ена", "ейте", "уйте", "ите", "или", "ыли", "ей",
		"уй", "ил", "ыл", "им", "ым", "ен", "ило", "ыло", "ено", "ят", "ует",
		"уют", "ит", "ыт", "ены", "ить", "ыть", "ишь", "ую", "ю",
	),
)

var noun = rule.NewStep(rule.RV, rule.Delete(rule.Any,
	"а", "ев", "ов", "ие", "ье", "е", "иями", "ями", "ами", "еи", "ии",
	"и", "ией", "ей", "ой", "ий", "й", "иям", "ям", "ием", "ем", "ам",
	"ом", "о", "у", "ах", "иях", "ях", "ы", "ь", "ию", "ью", "ю", "ия",
	"ья", "я",
))

// step1 removes a perfective gerund ending, or else a reflexive
// ending followed by an adjectival, verb or noun ending.
func step1(w *snowballword.SnowballWord) {
	if perfectiveGerund.Run(w) {
		return
	}
	reflexive.Run(w)
	if !adjective.Run(w) && !verb.Run(w) {
		noun.Run(w)
	}
}

// Step 2 drops a final и.
var step2 = rule.NewStep(rule.RV, rule.Delete(rule.Any, "и"))

// Step 3 drops the derivational ост and ость in R2.
var step3 = rule.NewStep(rule.RV, rule.Delete(rule.R2, "ост", "ость"))

// Step 4 undoubles н, removes the superlative ейш and ейше, and
// drops a soft sign.
var step4 = rule.NewStep(rule.RV,
	rule.With(rule.Delete(rule.Any, "ейш", "ейше"), nil, func(w *snowballword.SnowballWord) {
		if w.HasSuffixRunesIn(w.RVstart, w.Len(), "нн") {
			w.RemoveLastNRunes(1)
		}
	}),
	[]rule.Rule{{Suffix: "н", When: func(w *snowballword.SnowballWord, stem int) bool {
		return stem-1 >= w.RVstart && w.Is(stem-1, 'н')
	}}},
	rule.Delete(rule.Any, "ь"),
)
