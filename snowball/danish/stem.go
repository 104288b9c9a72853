// Package danish implements the Danish Snowball stemmer.
package danish

import (
	"unicode"

	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const (
	vowels     snowballword.VowelSet = "aeiouyæåø"
	consonants                       = "bcdfghjklmnpqrstvwxz"
)

// Stem a Danish word.
func Stem(word string) string {
	if len([]rune(word)) < 3 {
		return word
	}
	w := snowballword.New(word)
	w.FindR1R2WithMinimum(vowels, 3)

	step1.Run(w)
	step2(w)
	step3(w)
	step4(w)
	return w.String()
}

// Step 1 removes main suffixes found in R1.
var step1 = rule.NewStep(rule.R1,
	rule.Delete(rule.Any,
		"hed", "ethed", "ered", "e", "erede", "ende", "erende", "ene",
		"erne", "ere", "en", "heden", "eren", "er", "heder", "erer",
		"heds", "es", "endes", "erendes", "enes", "ernes", "eres", "ens",
		"hedens", "erens", "ers", "ets", "erets", "et", "eret",
	),
	[]rule.Rule{{Suffix: "s", When: func(w *snowballword.SnowballWord, stem int) bool {
		return w.IsAny(stem-1, "abcdfghjklmnoprtvyzå")
	}}},
)

// step2 drops the last letter of gd, dt, gt or kt in R1.
func step2(w *snowballword.SnowballWord) {
	if suffix, _ := w.FirstSuffixIn(w.R1start, w.Len(), "gd", "dt", "gt", "kt"); suffix != "" {
		w.RemoveLastNRunes(1)
	}
}

var step3Rules = rule.NewStep(rule.R1,
	rule.With(rule.Delete(rule.Any, "ig", "lig", "elig", "els"), nil, step2),
	rule.Replace(rule.Any, "løs", "løst"),
)

// step3 turns igst into ig, then removes other suffixes in R1.
func step3(w *snowballword.SnowballWord) {
	if w.HasSuffixRunes("igst") {
		w.RemoveLastNRunes(2)
	}
	step3Rules.Run(w)
}

// step4 undoubles a final consonant in R1.
func step4(w *snowballword.SnowballWord) {
	n := w.Len()
	if n-1 < w.R1start || !w.IsAny(n-1, consonants) {
		return
	}
	if w.Is(n-2, unicode.ToLower(w.RS[n-1])) {
		w.RemoveLastNRunes(1)
	}
}
