// Package dutch implements the Dutch Snowball stemmer.
package dutch

import (
	"unicode"

	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "aeiouyè"

var stripAccents = snowballword.Fold("äëïöüáéíóú", "aeiouaeiou")

// Stem a Dutch word.  Accents are stripped even from words too
// short to stem.
func Stem(word string) string {
	word = snowballword.Apply(stripAccents, word)
	if len([]rune(word)) < 3 {
		return word
	}
	w := snowballword.New(word)
	if w.Is(0, 'y') {
		w.Protect(0)
	}
	w.HashSemivowels(vowels, "i", "y")
	w.FindR1R2WithMinimum(vowels, 3)

	s := &state{SnowballWord: w}
	s.step1()
	s.step2()
	s.step3a()
	s.step3b()
	s.step4()
	return w.String()
}

// state carries the word and the flag step 2 leaves for step 3b.
type state struct {
	*snowballword.SnowballWord
	eFound bool
}

// undouble drops the last letter of a final kk, dd or tt.
func (s *state) undouble() {
	if suffix, _ := s.FirstSuffix("kk", "dd", "tt"); suffix != "" {
		s.RemoveLastNRunes(1)
	}
}

// enEnding deletes an en or ene starting at stem when it lies in
// R1 after a non-vowel and not after gem.
func (s *state) enEnding(stem int) bool {
	if stem < s.R1start || !s.IsNonVowel(vowels, stem-1) || s.HasSuffixRunesIn(0, stem, "gem") {
		return false
	}
	s.RemoveLastNRunes(s.Len() - stem)
	s.undouble()
	return true
}

// step1 handles heden, en, ene, s and se.
func (s *state) step1() {
	suffix, size := s.FirstSuffix("heden", "ene", "en", "se", "s")
	stem := s.Len() - size
	switch suffix {
	case "heden":
		if stem >= s.R1start {
			s.ReplaceSuffixRunes(size, "heid")
		}
	case "en", "ene":
		s.enEnding(stem)
	case "s", "se":
		if stem >= s.R1start && s.IsNonVowel(vowels, stem-1) && !s.Is(stem-1, 'j') {
			s.RemoveLastNRunes(size)
		}
	}
}

// step2 deletes a final e in R1 after a non-vowel.
func (s *state) step2() {
	s.eFound = false
	n := s.Len()
	if !s.Is(n-1, 'e') || n-1 < s.R1start || !s.IsNonVowel(vowels, n-2) {
		return
	}
	s.RemoveLastNRunes(1)
	s.eFound = true
	s.undouble()
}

// step3a deletes heid in R2 when not after c, then retries en.
func (s *state) step3a() {
	if !s.HasSuffixRunesInRegion(s.R2start, "heid") || s.EndsBefore(4, "c") {
		return
	}
	s.RemoveLastNRunes(4)
	if s.HasSuffixRunes("en") {
		s.enEnding(s.Len() - 2)
	}
}

// step3b removes derivational suffixes in R2.
func (s *state) step3b() {
	suffix, size := s.FirstSuffix("end", "ing", "ig", "lijk", "baar", "bar")
	stem := s.Len() - size
	if suffix == "" || stem < s.R2start {
		return
	}
	switch suffix {
	case "end", "ing":
		s.RemoveLastNRunes(size)
		if s.HasSuffixRunesInRegion(s.R2start, "ig") && !s.EndsBefore(2, "e") {
			s.RemoveLastNRunes(2)
		} else {
			s.undouble()
		}
	case "ig":
		if !s.Is(stem-1, 'e') {
			s.RemoveLastNRunes(size)
		}
	case "lijk":
		s.RemoveLastNRunes(size)
		s.step2()
	case "baar":
		s.RemoveLastNRunes(size)
	case "bar":
		if s.eFound {
			s.RemoveLastNRunes(size)
		}
	}
}

// step4 undoubles the vowel of a final non-vowel, double vowel,
// non-vowel sequence, as in "maan".  The last letter may not be a
// protected i.
func (s *state) step4() {
	n := s.Len()
	if n < 4 || !s.IsNonVowel(vowels, n-1) || (s.IsProtected(n-1) && unicode.ToLower(s.RS[n-1]) == 'i') {
		return
	}
	if suffix, _ := s.FirstSuffixIfIn(0, n-1, "aa", "ee", "oo", "uu"); suffix == "" {
		return
	}
	if !s.IsNonVowel(vowels, n-4) {
		return
	}
	s.RS[n-2], s.Protected[n-2] = s.RS[n-1], s.Protected[n-1]
	s.RemoveLastNRunes(1)
}
