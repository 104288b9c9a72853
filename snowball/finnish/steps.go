package finnish

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

func after(set string) func(*snowballword.SnowballWord, int) bool {
	return func(w *snowballword.SnowballWord, stem int) bool {
		return w.IsAny(stem-1, set)
	}
}

func notAfter(s string) func(*snowballword.SnowballWord, int) bool {
	return func(w *snowballword.SnowballWord, stem int) bool {
		return !w.HasSuffixRunesIn(0, stem, s)
	}
}

func afterAny(prefixes ...string) func(*snowballword.SnowballWord, int) bool {
	return func(w *snowballword.SnowballWord, stem int) bool {
		s, _ := w.FirstSuffixIfIn(0, stem, prefixes...)
		return s != ""
	}
}

// Particles such as kin, kaan and han, and the sti adverb ending.
var particles = rule.NewStep(rule.R1,
	rule.With(rule.Delete(rule.Any,
		"kin", "kaan", "kään", "ko", "kö", "han", "hän", "pa", "pä",
	), after(particleEnds), nil),
	rule.Delete(rule.R2, "sti"),
)

// Possessive suffixes.
var possessives = rule.NewStep(rule.R1,
	[]rule.Rule{
		{Suffix: "si", When: func(w *snowballword.SnowballWord, stem int) bool {
			return !w.Is(stem-1, 'k')
		}},
		{Suffix: "ni", Then: func(w *snowballword.SnowballWord) {
			w.ReplaceSuffix("kse", "ksi", false)
		}},
		{Suffix: "an", When: afterAny("ta", "ssa", "sta", "lla", "lta", "na")},
		{Suffix: "än", When: afterAny("tä", "ssä", "stä", "llä", "ltä", "nä")},
		{Suffix: "en", When: afterAny("lle", "ine")},
	},
	rule.Delete(rule.Any, "nsa", "nsä", "mme", "nne"),
)

// vi tests for an i after a vowel other than y in front of stem.
func vi(w *snowballword.SnowballWord, stem int) bool {
	return w.Is(stem-1, 'i') && w.IsAny(stem-2, restrictedV)
}

// Case endings.  The illative siin, seen, den and tten give way to
// shorter endings when their vowel condition fails, down to the
// bare n.
var caseEndings = rule.NewStep(rule.R1,
	[]rule.Rule{
		{Suffix: "han", When: after("a")},
		{Suffix: "hen", When: after("e")},
		{Suffix: "hin", When: after("i")},
		{Suffix: "hon", When: after("o")},
		{Suffix: "hän", When: after("ä")},
		{Suffix: "hön", When: after("ö")},
		{Suffix: "siin", When: vi, Fallthrough: true},
		{Suffix: "den", When: vi, Fallthrough: true},
		{Suffix: "tten", When: vi, Fallthrough: true},
		{Suffix: "seen", When: func(w *snowballword.SnowballWord, stem int) bool {
			return isLong(w, stem)
		}, Fallthrough: true},
	},
	rule.With(rule.Delete(rule.Any, "a", "ä"), func(w *snowballword.SnowballWord, stem int) bool {
		return w.IsVowel(vowels, stem-1) && w.IsAny(stem-2, consonants)
	}, nil),
	rule.With(rule.Delete(rule.Any, "tta", "ttä"), after("e"), nil),
	rule.Delete(rule.Any,
		"ta", "tä", "ssa", "ssä", "sta", "stä", "lla", "llä", "lta", "ltä",
		"lle", "na", "nä", "ksi", "ine",
	),
	[]rule.Rule{{Suffix: "n", Do: illativeN}},
)

// illativeN deletes a final n, taking the vowel before it too when
// that vowel ends a long vowel or an ie.
func illativeN(w *snowballword.SnowballWord, stem int) bool {
	size := 1
	if isLong(w, stem) || w.HasSuffixRunesIn(0, stem, "ie") {
		size = 2
	}
	w.RemoveLastNRunes(size)
	return true
}

// Comparative and superlative forms and the agent ending, in R2.
var otherEndings = rule.NewStep(rule.R2,
	rule.With(rule.Delete(rule.Any, "mpi", "mpa", "mpä", "mmi", "mma", "mmä"), notAfter("po"), nil),
	rule.Delete(rule.Any, "impi", "impa", "impä", "immi", "imma", "immä", "eja", "ejä"),
)
