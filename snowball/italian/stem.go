// Package italian implements the Italian Snowball stemmer.
package italian

import (
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "aeiouàèìòù"

var graveAccents = snowballword.Fold("áéíóú", "àèìòù")

// Stem an Italian word.
func Stem(word string) string {
	if len([]rune(word)) < 3 {
		return word
	}
	w := snowballword.New(snowballword.Apply(graveAccents, word))
	prelude(w)
	w.FindRomanceRV(vowels)
	w.FindR1R2(vowels)

	step0(w)
	if !step1.Run(w) {
		step2.Run(w)
	}
	step3a(w)
	step3b(w)
	return w.String()
}

// prelude protects u after q, then u and i between vowels.
func prelude(w *snowballword.SnowballWord) {
	for i := 0; i+1 < w.Len(); i++ {
		if w.Is(i, 'q') && w.Is(i+1, 'u') {
			w.Protect(i + 1)
		}
	}
	w.HashSemivowels(vowels, "ui", "")
}
