package german

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

// Step 1 removes inflectional endings in R1.
var step1 = rule.NewStep(rule.Any,
	rule.Delete(rule.R1, "em", "ern", "er"),
	rule.With(rule.Delete(rule.R1, "e", "en", "es"), nil, func(w *snowballword.SnowballWord) {
		if w.HasSuffixRunes("niss") {
			w.RemoveLastNRunes(1)
		}
	}),
	[]rule.Rule{{Suffix: "s", Region: rule.R1, When: func(w *snowballword.SnowballWord, stem int) bool {
		return w.IsAny(stem-1, "bdfghklmnrt")
	}}},
)

// Step 2 removes en, er, est and st in R1.  An st needs a valid
// st-ending with at least three letters before it.
var step2 = rule.NewStep(rule.Any,
	rule.Delete(rule.R1, "en", "er", "est"),
	[]rule.Rule{{Suffix: "st", Region: rule.R1, When: func(w *snowballword.SnowballWord, stem int) bool {
		return stem-1 >= 3 && w.IsAny(stem-1, "bdfghklmnt")
	}}},
)

func notAfterE(w *snowballword.SnowballWord, stem int) bool {
	return !w.Is(stem-1, 'e')
}

// Step 3 removes derivational suffixes in R2.
var step3 = rule.NewStep(rule.Any,
	rule.With(rule.Delete(rule.R2, "end", "ung"), nil, func(w *snowballword.SnowballWord) {
		if w.HasSuffixRunesInRegion(w.R2start, "ig") && !w.EndsBefore(2, "e") {
			w.RemoveLastNRunes(2)
		}
	}),
	rule.With(rule.Delete(rule.R2, "ig", "ik", "isch"), notAfterE, nil),
	rule.With(rule.Delete(rule.R2, "lich", "heit"), nil, func(w *snowballword.SnowballWord) {
		if suffix, size := w.FirstSuffix("er", "en"); suffix != "" && w.FitsInR1(size) {
			w.RemoveLastNRunes(size)
		}
	}),
	rule.With(rule.Delete(rule.R2, "keit"), nil, func(w *snowballword.SnowballWord) {
		if suffix, size := w.FirstSuffix("lich", "ig"); suffix != "" && w.FitsInR2(size) {
			w.RemoveLastNRunes(size)
		}
	}),
)
