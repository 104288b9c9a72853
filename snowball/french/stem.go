// Package french implements the French Snowball stemmer.
package french

import (
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "aeiouyâàëéêèïîôûù"

// Stem a French word.
func Stem(word string) string {
	if len([]rune(word)) < 3 {
		return word
	}
	w := snowballword.New(word)
	prelude(w)
	w.FindFrenchRV(vowels, "par", "col", "tap")
	w.FindR1R2(vowels)

	// Step 1, or the verb steps when it did not obey, then step 3
	// when one of them changed the word.  Otherwise step 4.
	if step1(w) || step2a(w) || step2b(w) {
		step3(w)
	} else {
		step4(w)
	}
	step5(w)
	step6(w)
	return w.String()
}

// prelude protects u and i between vowels, y next to a vowel and
// u after q.
func prelude(w *snowballword.SnowballWord) {
	n := w.Len()
	for i := 0; i < n; {
		c := i + 1
		switch {
		case w.IsVowel(vowels, i) && w.IsAny(c, "ui") && w.IsVowel(vowels, c+1):
			w.Protect(c)
			i = c + 1
		case w.IsVowel(vowels, i) && w.Is(c, 'y'):
			w.Protect(c)
			i = c + 1
		case w.Is(i, 'y') && w.IsVowel(vowels, c):
			w.Protect(i)
			i = c
		case w.Is(i, 'q') && w.Is(c, 'u'):
			w.Protect(c)
			i = c + 1
		default:
			i++
		}
	}
}
