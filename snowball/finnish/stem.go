// Package finnish implements the Finnish Snowball stemmer.
package finnish

import (
	"unicode"

	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const (
	vowels       snowballword.VowelSet = "aeiouyäö"
	restrictedV                        = "aeiouäö"
	consonants                         = "bcdfghjklmnpqrstvwxz"
	particleEnds                       = "aeiouyäönt"
)

// Stem a Finnish word.
func Stem(word string) string {
	if len([]rune(word)) < 3 {
		return word
	}
	w := snowballword.New(word)
	w.FindR1R2(vowels)

	particles.Run(w)
	possessives.Run(w)
	endingRemoved := caseEndings.Run(w)
	otherEndings.Run(w)
	if endingRemoved {
		iPlural(w)
	} else {
		tPlural(w)
	}
	tidy(w)
	return w.String()
}

// isLong reports whether RS[:end] ends in a doubled vowel.
func isLong(w *snowballword.SnowballWord, end int) bool {
	suffix, _ := w.FirstSuffixIfIn(0, end, "aa", "ee", "ii", "oo", "uu", "ää", "öö")
	return suffix != ""
}

// iPlural removes a plural i or j in R1.
func iPlural(w *snowballword.SnowballWord) {
	if n := w.Len(); n-1 >= w.R1start && w.IsAny(n-1, "ij") {
		w.RemoveLastNRunes(1)
	}
}

// tPlural removes a plural t after a vowel in R1, then mma or imma
// in R2.
func tPlural(w *snowballword.SnowballWord) {
	n := w.Len()
	if n-2 < w.R1start || !w.Is(n-1, 't') || !w.IsVowel(vowels, n-2) {
		return
	}
	w.RemoveLastNRunes(1)
	switch {
	case w.HasSuffixRunesIn(w.R2start, w.Len(), "imma"):
		w.RemoveLastNRunes(4)
	case w.HasSuffixRunesIn(w.R2start, w.Len(), "mma") && !w.EndsBefore(3, "po"):
		w.RemoveLastNRunes(3)
	}
}

// tidy cleans up the stem: inside R1 it undoubles a final long
// vowel, drops a final a, ä, e or i after a consonant, and drops
// j after o or u and o after j.  Then a doubled consonant before
// the final vowels is undoubled.
func tidy(w *snowballword.SnowballWord) {
	if n := w.Len(); n-2 >= w.R1start && isLong(w, n) {
		w.RemoveLastNRunes(1)
	}
	if n := w.Len(); n-2 >= w.R1start && w.IsAny(n-1, "aäei") && w.IsAny(n-2, consonants) {
		w.RemoveLastNRunes(1)
	}
	if n := w.Len(); n-2 >= w.R1start && w.Is(n-1, 'j') && w.IsAny(n-2, "ou") {
		w.RemoveLastNRunes(1)
	}
	if n := w.Len(); n-2 >= w.R1start && w.Is(n-1, 'o') && w.Is(n-2, 'j') {
		w.RemoveLastNRunes(1)
	}

	i := w.Len() - 1
	for i >= 0 && w.IsVowel(vowels, i) {
		i--
	}
	if i >= 1 && w.IsAny(i, consonants) && w.Is(i-1, unicode.ToLower(w.RS[i])) {
		w.RemoveRune(i)
	}
}
