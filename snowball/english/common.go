package english

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "aeiouy"

// Words stemmed before anything else happens.
var specialWords = rule.Exceptions{
	"skis":   "ski",
	"skies":  "sky",
	"dying":  "die",
	"lying":  "lie",
	"tying":  "tie",
	"idly":   "idl",
	"gently": "gentl",
	"ugly":   "ugli",
	"early":  "earli",
	"only":   "onli",
	"singly": "singl",
	"sky":    "sky",
	"news":   "news",
	"howe":   "howe",
	"atlas":  "atlas",
	"cosmos": "cosmos",
	"bias":   "bias",
	"andes":  "andes",
}

// Words left alone once step 1a has run.
var postStep1aWords = rule.Frozen(
	"inning", "outing", "canning", "herring", "earring",
	"proceed", "exceed", "succeed",
)

// Prefixes with a fixed R1 end.
var r1Prefixes = []string{"gener", "commun", "arsen"}

// prelude drops a leading apostrophe and protects an initial y
// and every y that follows a vowel.
func prelude(w *snowballword.SnowballWord) {
	if w.Len() > 0 && w.Is(0, '\'') {
		w.RS = w.RS[1:]
		w.Protected = w.Protected[1:]
	}
	if w.Is(0, 'y') {
		w.Protect(0)
	}
	w.HashSemivowels(vowels, "", "y")
}

func markRegions(w *snowballword.SnowballWord) {
	if prefix, size := w.FirstPrefix(r1Prefixes...); prefix != "" {
		w.R1start = size
	} else {
		w.R1start = w.VnvSuffix(vowels, 0)
	}
	w.R2start = w.VnvSuffix(vowels, w.R1start)
}

// nonVowelWXY is a non-vowel other than w, x or a protected y.
func nonVowelWXY(w *snowballword.SnowballWord, i int) bool {
	return w.IsNonVowel(vowels, i) && !w.IsAny(i, "wx") && !w.IsProtected(i)
}

// endsShortSyllable reports whether RS[:end] ends in a short
// syllable: a vowel followed by a non-vowel other than w, x or Y
// and preceded by a non-vowel, or a vowel at the start of the word
// followed by a non-vowel.
func endsShortSyllable(w *snowballword.SnowballWord, end int) bool {
	if end >= 3 && nonVowelWXY(w, end-1) && w.IsVowel(vowels, end-2) && w.IsNonVowel(vowels, end-3) {
		return true
	}
	return end == 2 && w.IsNonVowel(vowels, 1) && w.IsVowel(vowels, 0)
}

// isShortWord reports whether R1 is empty and the word ends in a
// short syllable.
func isShortWord(w *snowballword.SnowballWord) bool {
	return w.R1start >= w.Len() && endsShortSyllable(w, w.Len())
}
