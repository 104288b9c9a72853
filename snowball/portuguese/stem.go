// Package portuguese implements the Portuguese Snowball stemmer.
package portuguese

import (
	"strings"

	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "aeiouáéíóúâêô"

// Stem a Portuguese word.
func Stem(word string) string {
	if len([]rune(word)) < 3 {
		return word
	}
	w := expandNasals(word)
	w.FindRomanceRV(vowels)
	w.FindR1R2(vowels)

	changed := step1.Run(w)
	if !changed {
		changed = step2.Run(w)
	}
	if changed {
		step3(w)
	} else {
		step4.Run(w)
	}
	step5.Run(w)
	return collapseNasals(w)
}

var (
	nasals = map[rune]rune{'ã': 'a', 'õ': 'o', 'Ã': 'A', 'Õ': 'O'}
	tildes = map[rune]rune{'a': 'ã', 'o': 'õ', 'A': 'Ã', 'O': 'Õ'}
)

// expandNasals writes ã and õ as the plain vowel followed by a
// protected ~, which the suffix tables spell a~ and o~.
func expandNasals(word string) *snowballword.SnowballWord {
	w := snowballword.New("")
	for _, r := range word {
		if v, ok := nasals[r]; ok {
			w.Append(v, false)
			w.Append('~', true)
			continue
		}
		w.Append(r, false)
	}
	return w
}

// collapseNasals folds a vowel and a protected ~ back into ã or õ.
func collapseNasals(w *snowballword.SnowballWord) string {
	var b strings.Builder
	for i, r := range w.RS {
		if w.IsProtected(i+1) && w.RS[i+1] == '~' {
			if t, ok := tildes[r]; ok {
				r = t
			}
		}
		if w.IsProtected(i) && r == '~' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
