package english

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

// Step 1a handles plurals.
var step1a = rule.NewStep(rule.Any,
	rule.Replace(rule.Any, "ss", "sses"),
	[]rule.Rule{
		{Suffix: "ied", Do: replaceIes},
		{Suffix: "ies", Do: replaceIes},
		// s goes when a vowel occurs before the letter in front of it.
		{Suffix: "s", When: func(w *snowballword.SnowballWord, stem int) bool {
			return w.HasVowel(vowels, 0, stem-1)
		}},
	},
	rule.Keep("us", "ss"),
)

// ied and ies become i after more than one letter, ie otherwise.
func replaceIes(w *snowballword.SnowballWord, stem int) bool {
	if stem > 1 {
		w.ReplaceSuffixRunes(3, "i")
	} else {
		w.ReplaceSuffixRunes(3, "ie")
	}
	return true
}

// Step 1b handles ed and ing.
var step1b = rule.NewStep(rule.Any,
	rule.Replace(rule.R1, "ee", "eed", "eedly"),
	rule.With(rule.Delete(rule.Any, "ed", "edly", "ing", "ingly"),
		func(w *snowballword.SnowballWord, stem int) bool {
			return w.HasVowel(vowels, 0, stem)
		},
		step1bTidy,
	),
)

var doubles = []string{"bb", "dd", "ff", "gg", "mm", "nn", "pp", "rr", "tt"}

// step1bTidy restores an e or undoubles the consonant left behind
// once ed or ing is gone.
func step1bTidy(w *snowballword.SnowballWord) {
	if suffix, _ := w.FirstSuffix("at", "bl", "iz"); suffix != "" {
		w.Append('e', false)
		return
	}
	if suffix, _ := w.FirstSuffix(doubles...); suffix != "" {
		w.RemoveLastNRunes(1)
		return
	}
	if isShortWord(w) {
		w.Append('e', false)
	}
}

// Step 1c turns a final y into i after a non-vowel that is not the
// first letter.
func step1c(w *snowballword.SnowballWord) bool {
	n := w.Len()
	if n < 3 || !(w.HasSuffixRunes("y") || w.HasSuffixRunes("Y")) {
		return false
	}
	if !w.IsNonVowel(vowels, n-2) {
		return false
	}
	w.SetRune(n-1, 'i')
	return true
}

// Step 2 maps double suffixes to single ones inside R1.
var step2 = rule.NewStep(rule.Any,
	rule.Replace(rule.R1, "tion", "tional"),
	rule.Replace(rule.R1, "ence", "enci"),
	rule.Replace(rule.R1, "ance", "anci"),
	rule.Replace(rule.R1, "able", "abli"),
	rule.Replace(rule.R1, "ent", "entli"),
	rule.Replace(rule.R1, "ize", "izer", "ization"),
	rule.Replace(rule.R1, "ate", "ational", "ation", "ator"),
	rule.Replace(rule.R1, "al", "alism", "aliti", "alli"),
	rule.Replace(rule.R1, "ful", "fulness", "fulli"),
	rule.Replace(rule.R1, "ous", "ousli", "ousness"),
	rule.Replace(rule.R1, "ive", "iveness", "iviti"),
	rule.Replace(rule.R1, "ble", "biliti", "bli"),
	rule.Replace(rule.R1, "less", "lessli"),
	[]rule.Rule{
		{Suffix: "ogi", Region: rule.R1, Replace: "og", When: func(w *snowballword.SnowballWord, stem int) bool {
			return w.Is(stem-1, 'l')
		}},
		{Suffix: "li", Region: rule.R1, When: func(w *snowballword.SnowballWord, stem int) bool {
			return w.IsAny(stem-1, "cdeghkmnrt")
		}},
	},
)

// Step 3 trims derivational endings inside R1.
var step3 = rule.NewStep(rule.Any,
	rule.Replace(rule.R1, "tion", "tional"),
	rule.Replace(rule.R1, "ate", "ational"),
	rule.Replace(rule.R1, "al", "alize"),
	rule.Replace(rule.R1, "ic", "icate", "iciti", "ical"),
	rule.Delete(rule.R1, "ful", "ness"),
	rule.Delete(rule.R2, "ative"),
)

// Step 4 deletes suffixes found in R2.
var step4 = rule.NewStep(rule.Any,
	rule.Delete(rule.R2,
		"al", "ance", "ence", "er", "ic", "able", "ible", "ant",
		"ement", "ment", "ent", "ism", "ate", "iti", "ous", "ive", "ize",
	),
	[]rule.Rule{
		{Suffix: "ion", Region: rule.R2, When: func(w *snowballword.SnowballWord, stem int) bool {
			return w.IsAny(stem-1, "st")
		}},
	},
)

// Step 5 drops a final e or one l of a final ll.
var step5 = rule.NewStep(rule.Any, []rule.Rule{
	{Suffix: "e", When: func(w *snowballword.SnowballWord, stem int) bool {
		return stem >= w.R2start || (stem >= w.R1start && !endsShortSyllable(w, stem))
	}},
	{Suffix: "l", Region: rule.R2, When: func(w *snowballword.SnowballWord, stem int) bool {
		return w.Is(stem-1, 'l')
	}},
})
