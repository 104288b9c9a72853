/*
This package defines a SnowballWord struct that is used
to encapsulate most of the "state" variables we must track
when stemming a word.  The SnowballWord struct also has
a few methods common to stemming in a variety of languages.

A SnowballWord is the whole per-call stemming context: the
runes being rewritten, a parallel set of protection flags and
the R1, R2 and RV region starts.  It is created fresh for every
word and must never be shared between calls.
*/
package snowballword

import (
	"fmt"
	"strings"
	"unicode"
)

// SnowballWord represents a word that is going to be stemmed.
type SnowballWord struct {

	// A slice of runes
	RS []rune

	// Protected marks runes that must not be treated as vowels
	// (semivowels hashed by a language prelude).  It is always
	// the same length as RS.
	Protected []bool

	// The index in RS where the R1 region begins
	R1start int

	// The index in RS where the R2 region begins
	R2start int

	// The index in RS where the RV region begins
	RVstart int
}

// Create a new SnowballWord struct
func New(in string) (word *SnowballWord) {
	rs := []rune(in)
	word = &SnowballWord{RS: rs, Protected: make([]bool, len(rs))}
	word.R1start = len(word.RS)
	word.R2start = len(word.RS)
	word.RVstart = len(word.RS)
	return
}

// Append adds a rune to the end of the word.
func (w *SnowballWord) Append(r rune, protected bool) {
	w.RS = append(w.RS, r)
	w.Protected = append(w.Protected, protected)
}

// Len returns the number of runes in the word.
func (w *SnowballWord) Len() int {
	return len(w.RS)
}

// Protect marks the rune at i so that vowel tests skip it.
func (w *SnowballWord) Protect(i int) {
	if i >= 0 && i < len(w.RS) {
		w.Protected[i] = true
	}
}

// IsProtected reports whether the rune at i is protected.
func (w *SnowballWord) IsProtected(i int) bool {
	return i >= 0 && i < len(w.RS) && w.Protected[i]
}

// Is reports whether the rune at i is the unprotected letter r,
// ignoring case.
func (w *SnowballWord) Is(i int, r rune) bool {
	if i < 0 || i >= len(w.RS) || w.Protected[i] {
		return false
	}
	return unicode.ToLower(w.RS[i]) == r
}

// IsAny reports whether the rune at i is one of the unprotected
// letters in set, ignoring case.
func (w *SnowballWord) IsAny(i int, set string) bool {
	if i < 0 || i >= len(w.RS) || w.Protected[i] {
		return false
	}
	return strings.ContainsRune(set, unicode.ToLower(w.RS[i]))
}

// IsVowel reports whether the rune at i is an unprotected vowel.
func (w *SnowballWord) IsVowel(vowels VowelSet, i int) bool {
	if i < 0 || i >= len(w.RS) || w.Protected[i] {
		return false
	}
	return vowels.Has(w.RS[i])
}

// IsNonVowel reports whether there is a rune at i and it is not
// an unprotected vowel.
func (w *SnowballWord) IsNonVowel(vowels VowelSet, i int) bool {
	return i >= 0 && i < len(w.RS) && !w.IsVowel(vowels, i)
}

// HasVowel reports whether RS[start:stop] contains a vowel.
func (w *SnowballWord) HasVowel(vowels VowelSet, start, stop int) bool {
	if stop > len(w.RS) {
		stop = len(w.RS)
	}
	for i := max(start, 0); i < stop; i++ {
		if w.IsVowel(vowels, i) {
			return true
		}
	}
	return false
}

// Replace a suffix and adjust R1start and R2start as needed.
// If `force` is false, check to make sure the suffix exists first.
func (w *SnowballWord) ReplaceSuffix(suffix, replacement string, force bool) bool {
	if !force && !w.HasSuffixRunes(suffix) {
		return false
	}
	w.ReplaceSuffixRunes(runeCount(suffix), replacement)
	return true
}

// Remove the last `n` runes from the SnowballWord.
func (w *SnowballWord) RemoveLastNRunes(n int) {
	if n > len(w.RS) {
		n = len(w.RS)
	}
	w.RS = w.RS[:len(w.RS)-n]
	w.Protected = w.Protected[:len(w.Protected)-n]
	w.resetR1R2()
}

// RemoveRune deletes the rune at i, wherever it is in the word.
func (w *SnowballWord) RemoveRune(i int) {
	if i < 0 || i >= len(w.RS) {
		return
	}
	w.RS = append(w.RS[:i], w.RS[i+1:]...)
	w.Protected = append(w.Protected[:i], w.Protected[i+1:]...)
	w.resetR1R2()
}

// ReplaceSuffixRunes drops the last `size` runes and appends the
// replacement.  Upper case ASCII letters in the replacement are
// written as protected lower case letters, the same convention
// the suffix patterns use.
func (w *SnowballWord) ReplaceSuffixRunes(size int, replacement string) {
	if size > len(w.RS) {
		size = len(w.RS)
	}
	lenWithoutSuffix := len(w.RS) - size
	w.RS = w.RS[:lenWithoutSuffix]
	w.Protected = w.Protected[:lenWithoutSuffix]
	for _, r := range replacement {
		if IsMarker(r) {
			w.Append(unmark(r), true)
		} else {
			w.Append(r, false)
		}
	}

	// If R, R2, & RV are now beyond the length
	// of the word, they are set to the length
	// of the word.  Otherwise, they are left
	// as they were.
	w.resetR1R2()
}

// SetRune overwrites the rune at i, keeping the case of the
// rune it replaces and clearing its protection.
func (w *SnowballWord) SetRune(i int, r rune) {
	if i < 0 || i >= len(w.RS) {
		return
	}
	if unicode.IsUpper(w.RS[i]) {
		r = unicode.ToUpper(r)
	}
	w.RS[i] = r
	w.Protected[i] = false
}

// Resets R1start and R2start to ensure they
// are within bounds of the current rune slice.
func (w *SnowballWord) resetR1R2() {
	rsLen := len(w.RS)
	if w.R1start > rsLen {
		w.R1start = rsLen
	}
	if w.R2start > rsLen {
		w.R2start = rsLen
	}
	if w.RVstart > rsLen {
		w.RVstart = rsLen
	}
}

// Returns true if `x` runes would fit into R1.
func (w *SnowballWord) FitsInR1(x int) bool {
	return w.R1start <= len(w.RS)-x
}

// Returns true if `x` runes would fit into R2.
func (w *SnowballWord) FitsInR2(x int) bool {
	return w.R2start <= len(w.RS)-x
}

// Return the SnowballWord as a string.  Protection lives beside
// the runes, so this is also the unhashed form of the word.
func (w *SnowballWord) String() string {
	return string(w.RS)
}

func (w *SnowballWord) DebugString() string {
	var b strings.Builder
	for i, r := range w.RS {
		if w.Protected[i] {
			b.WriteRune(mark(r))
		} else {
			b.WriteRune(r)
		}
	}
	return fmt.Sprintf("{\"%s\", %d, %d, %d}", b.String(), w.R1start, w.R2start, w.RVstart)
}
