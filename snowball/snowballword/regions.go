package snowballword

import (
	"strings"
	"unicode"
)

// VowelSet is the set of lower case runes a language treats as
// vowels when locating regions.
type VowelSet string

// Has reports whether r, folded to lower case, is in the set.
func (v VowelSet) Has(r rune) bool {
	return strings.ContainsRune(string(v), unicode.ToLower(r))
}

// VnvSuffix returns the index just past the first non-vowel that
// follows a vowel, looking only at runes from start onwards.  It
// returns len(w.RS) when there is no such non-vowel.
func (w *SnowballWord) VnvSuffix(vowels VowelSet, start int) int {
	for i := max(start, 0) + 1; i < len(w.RS); i++ {
		if w.IsVowel(vowels, i-1) && !w.IsVowel(vowels, i) {
			return i + 1
		}
	}
	return len(w.RS)
}

// FindR1R2 sets R1start and R2start the standard way: R1 is the
// region after the first non-vowel following a vowel, R2 is the
// same rule applied again inside R1.
func (w *SnowballWord) FindR1R2(vowels VowelSet) {
	w.R1start = w.VnvSuffix(vowels, 0)
	w.R2start = w.VnvSuffix(vowels, w.R1start)
}

// FindR1R2WithMinimum is FindR1R2 with R1 moved right so that at
// least `minimum` runes precede it.  R2 is computed from the R1
// found before the adjustment.
func (w *SnowballWord) FindR1R2WithMinimum(vowels VowelSet, minimum int) {
	w.FindR1R2(vowels)
	if w.R1start < minimum {
		w.R1start = min(minimum, len(w.RS))
	}
}

// FindRomanceRV sets RVstart following the Spanish, Italian and
// Portuguese definition.  If the second letter is a consonant, RV
// is the region after the next vowel.  If the first two letters
// are vowels, RV is the region after the next consonant.  Otherwise
// (consonant then vowel) RV is the region after the third letter.
// RV is empty when none of these positions exist.
func (w *SnowballWord) FindRomanceRV(vowels VowelSet) {
	n := len(w.RS)
	w.RVstart = n
	if n < 2 {
		return
	}
	switch {
	case !w.IsVowel(vowels, 1):
		for i := 2; i < n; i++ {
			if w.IsVowel(vowels, i) {
				w.RVstart = i + 1
				return
			}
		}
	case w.IsVowel(vowels, 0):
		for i := 2; i < n; i++ {
			if !w.IsVowel(vowels, i) {
				w.RVstart = i + 1
				return
			}
		}
	default:
		w.RVstart = min(3, n)
	}
}

// FindFrenchRV sets RVstart following the French definition.  A
// word starting with two vowels, or with one of the listed
// prefixes, has RV after its third letter.  Otherwise RV is the
// region after the first vowel that is not the first letter.
func (w *SnowballWord) FindFrenchRV(vowels VowelSet, prefixes ...string) {
	n := len(w.RS)
	w.RVstart = n
	if n >= 3 && w.IsVowel(vowels, 0) && w.IsVowel(vowels, 1) {
		w.RVstart = 3
		return
	}
	if prefix, _ := w.FirstPrefix(prefixes...); prefix != "" {
		w.RVstart = runeCount(prefix)
		return
	}
	for i := 1; i < n; i++ {
		if w.IsVowel(vowels, i) {
			w.RVstart = i + 1
			return
		}
	}
}

// FindSlavicRV sets RVstart to the region after the first vowel.
func (w *SnowballWord) FindSlavicRV(vowels VowelSet) {
	w.RVstart = len(w.RS)
	for i := range w.RS {
		if w.IsVowel(vowels, i) {
			w.RVstart = i + 1
			return
		}
	}
}
