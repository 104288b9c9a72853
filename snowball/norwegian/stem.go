// Package norwegian implements the Norwegian (Bokmål) Snowball
// stemmer.
package norwegian

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "aeiouyæåø"

// Stem a Norwegian word.
func Stem(word string) string {
	if len([]rune(word)) < 3 {
		return word
	}
	w := snowballword.New(word)
	w.FindR1R2WithMinimum(vowels, 3)

	step1.Run(w)
	step2(w)
	step3.Run(w)
	return w.String()
}

// Step 1 removes main suffixes found in R1.
var step1 = rule.NewStep(rule.R1,
	rule.Delete(rule.Any,
		"a", "e", "ede", "ande", "ende", "ane", "ene", "hetene", "en",
		"heten", "ar", "er", "heter", "as", "es", "edes", "endes", "enes",
		"hetenes", "ens", "hetens", "ers", "ets", "et", "het", "ast",
	),
	rule.Replace(rule.Any, "er", "erte", "ert"),
	[]rule.Rule{{Suffix: "s", When: func(w *snowballword.SnowballWord, stem int) bool {
		return w.IsAny(stem-1, "bcdfghjlmnoprtvyz") ||
			(w.Is(stem-1, 'k') && w.IsNonVowel(vowels, stem-2))
	}}},
)

// step2 turns a final dt or vt in R1 into d or v.
func step2(w *snowballword.SnowballWord) {
	if suffix, _ := w.FirstSuffixIn(w.R1start, w.Len(), "dt", "vt"); suffix != "" {
		w.RemoveLastNRunes(1)
	}
}

// Step 3 removes other suffixes in R1.
var step3 = rule.NewStep(rule.R1, rule.Delete(rule.Any,
	"leg", "eleg", "ig", "eig", "lig", "elig", "els", "lov", "elov",
	"slov", "hetslov",
))
