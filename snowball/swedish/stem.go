// Package swedish implements the Swedish Snowball stemmer.
package swedish

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "aeiouyäåö"

// Stem a Swedish word.
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
		"a", "arna", "erna", "heterna", "orna", "ad", "e", "ade", "ande",
		"arne", "are", "aste", "en", "anden", "aren", "heten", "ern", "ar",
		"er", "heter", "or", "as", "arnas", "ernas", "ornas", "es", "ades",
		"andes", "ens", "arens", "hetens", "erns", "at", "andet", "het", "ast",
	),
	[]rule.Rule{{Suffix: "s", When: func(w *snowballword.SnowballWord, stem int) bool {
		return w.IsAny(stem-1, "bcdfghjklmnoprtvy")
	}}},
)

// step2 drops the last letter of a consonant pair in R1.
func step2(w *snowballword.SnowballWord) {
	if suffix, _ := w.FirstSuffixIn(w.R1start, w.Len(), "dd", "gd", "nn", "dt", "gt", "kt", "tt"); suffix != "" {
		w.RemoveLastNRunes(1)
	}
}

// Step 3 removes other suffixes in R1.
var step3 = rule.NewStep(rule.R1,
	rule.Delete(rule.Any, "lig", "ig", "els"),
	rule.Replace(rule.Any, "lös", "löst"),
	rule.Replace(rule.Any, "full", "fullt"),
)
