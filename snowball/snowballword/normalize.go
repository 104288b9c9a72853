package snowballword

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var apostrophes = "'‘’ʼ"

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// TrimBoundaryPunctuation strips everything that is neither a letter
// nor a digit from both ends of the word, then a trailing possessive
// "'s".
func TrimBoundaryPunctuation(word string) string {
	word = strings.TrimFunc(word, func(r rune) bool { return !isWordRune(r) })
	rs := []rune(word)
	if n := len(rs); n > 2 && unicode.ToLower(rs[n-1]) == 's' && strings.ContainsRune(apostrophes, rs[n-2]) {
		word = strings.TrimRightFunc(string(rs[:n-2]), func(r rune) bool { return !isWordRune(r) })
	}
	return word
}

// HashSemivowels protects semivowels the way the Snowball preludes
// do, scanning left to right.  A letter from `between` that has a
// vowel on both sides is protected, and the vowel on its right may
// open the next match.  A letter from `after` that follows a vowel
// is protected.
func (w *SnowballWord) HashSemivowels(vowels VowelSet, between, after string) {
	n := len(w.RS)
	for i := 0; i < n-1; {
		if !w.IsVowel(vowels, i) {
			i++
			continue
		}
		c := i + 1
		switch {
		case w.IsAny(c, between) && w.IsVowel(vowels, c+1):
			w.Protect(c)
			i = c + 1
		case w.IsAny(c, after):
			w.Protect(c)
			i = c + 1
		default:
			i++
		}
	}
}

// Fold returns a transformer mapping each rune found in `from` to
// the rune at the same position in `to`.  Upper case forms are
// mapped to the upper case of the target.
func Fold(from, to string) transform.Transformer {
	f, t := []rune(from), []rune(to)
	table := make(map[rune]rune, 2*len(f))
	for i, r := range f {
		table[r] = t[i]
		table[unicode.ToUpper(r)] = unicode.ToUpper(t[i])
	}
	return runes.Map(func(r rune) rune {
		if m, ok := table[r]; ok {
			return m
		}
		return r
	})
}

// Apply runs a transformer over s, returning s unchanged on error.
func Apply(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Compose returns the NFC form of s, so decomposed accents from the
// caller meet the precomposed runes the suffix tables are written in.
func Compose(s string) string {
	return norm.NFC.String(s)
}
