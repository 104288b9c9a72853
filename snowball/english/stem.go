// Package english implements the English (Porter2) Snowball
// stemmer.
package english

import (
	"strings"

	"github.com/oarkflow/stemmer/snowball/snowballword"
)

// Stem an English word.
func Stem(word string) string {
	if stem, ok := specialWords.Lookup(word); ok {
		if strings.EqualFold(stem, word) {
			return word
		}
		return stem
	}
	if len([]rune(word)) <= 2 {
		return word
	}

	w := snowballword.New(word)
	prelude(w)
	markRegions(w)

	step0.Run(w)
	step1a.Run(w)
	if _, frozen := postStep1aWords.Lookup(w.String()); frozen {
		return w.String()
	}
	// Regions keep their place across step 1b, so an e it appends
	// is not drawn into R1 or R2.
	r1, r2 := w.R1start, w.R2start
	step1b.Run(w)
	w.R1start, w.R2start = min(r1, w.Len()), min(r2, w.Len())
	step1c(w)
	step2.Run(w)
	step3.Run(w)
	step4.Run(w)
	step5.Run(w)
	return w.String()
}
