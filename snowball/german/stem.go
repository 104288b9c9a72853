// Package german implements the German Snowball stemmer, with the
// optional "German2" transliteration of ae, oe and ue.
package german

import (
	"strings"
	"unicode"

	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "aeiouyäöü"

var stripUmlauts = snowballword.Fold("äöü", "aou")

// Stemmer stems German words.  With Transliterate set, ae, oe and
// ue (but not the ue of que) are read as ä, ö and ü.
type Stemmer struct {
	Transliterate bool
}

// Stem a German word with the default options.
func Stem(word string) string {
	return Stemmer{}.Stem(word)
}

// Stem a German word.
func (s Stemmer) Stem(word string) string {
	word = strings.ReplaceAll(word, "ß", "ss")
	if len([]rune(word)) < 3 {
		return word
	}
	w := snowballword.New(word)
	w.HashSemivowels(vowels, "uy", "")
	if s.Transliterate {
		transliterate(w)
	}
	w.FindR1R2WithMinimum(vowels, 3)

	step1.Run(w)
	step2.Run(w)
	step3.Run(w)
	return snowballword.Apply(stripUmlauts, w.String())
}

var umlauts = map[rune]rune{'a': 'ä', 'o': 'ö', 'u': 'ü'}

// transliterate folds ae, oe and ue into umlauts, leaving qu
// sequences and protected letters alone.
func transliterate(w *snowballword.SnowballWord) {
	rs := make([]rune, 0, w.Len())
	protected := make([]bool, 0, w.Len())
	for i := 0; i < w.Len(); i++ {
		switch {
		case w.Is(i, 'q') && w.Is(i+1, 'u'):
			rs = append(rs, w.RS[i], w.RS[i+1])
			protected = append(protected, false, false)
			i++
		case w.IsAny(i, "aou") && w.Is(i+1, 'e'):
			rs = append(rs, umlauts[unicode.ToLower(w.RS[i])])
			protected = append(protected, false)
			i++
		default:
			rs = append(rs, w.RS[i])
			protected = append(protected, w.Protected[i])
		}
	}
	w.RS, w.Protected = rs, protected
}
