package french

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

func inR1(w *snowballword.SnowballWord, stem int) bool { return stem >= w.R1start }
func inR2(w *snowballword.SnowballWord, stem int) bool { return stem >= w.R2start }

// r2OrReplace deletes the suffix in R2, or else rewrites it.
func r2OrReplace(replacement string) func(*snowballword.SnowballWord, int) bool {
	return func(w *snowballword.SnowballWord, stem int) bool {
		if inR2(w, stem) {
			w.RemoveLastNRunes(w.Len() - stem)
		} else {
			w.ReplaceSuffixRunes(w.Len()-stem, replacement)
		}
		return true
	}
}

// eusFollowUp deletes eus in R2, or rewrites it to eux in R1.
func eusFollowUp(w *snowballword.SnowballWord, stem int) bool {
	switch {
	case inR2(w, stem):
		w.RemoveLastNRunes(w.Len() - stem)
	case inR1(w, stem):
		w.ReplaceSuffixRunes(w.Len()-stem, "eux")
	default:
		return false
	}
	return true
}

// After ement(s).
var ementFollowUp = rule.NewStep(rule.Any,
	[]rule.Rule{
		{Suffix: "iv", Region: rule.R2, Then: func(w *snowballword.SnowballWord) {
			if w.HasSuffixRunesInRegion(w.R2start, "at") {
				w.RemoveLastNRunes(2)
			}
		}},
		{Suffix: "eus", Do: eusFollowUp},
	},
	rule.Delete(rule.R2, "abl", "iqU"),
	rule.Replace(rule.RV, "i", "ièr", "Ièr"),
)

// After ité(s).
var iteFollowUp = rule.NewStep(rule.Any, []rule.Rule{
	{Suffix: "abil", Do: r2OrReplace("abl")},
	{Suffix: "ic", Do: r2OrReplace("iqU")},
	{Suffix: "iv", Region: rule.R2},
})

// icFollowUp deletes a preceding ic in R2 or rewrites it to iqU.
func icFollowUp(w *snowballword.SnowballWord) {
	if w.HasSuffixRunes("ic") {
		r2OrReplace("iqU")(w, w.Len()-2)
	}
}

var step1Rules = rule.NewStep(rule.Any,
	rule.Delete(rule.R2,
		"ance", "iqUe", "isme", "able", "iste", "eux",
		"ances", "iqUes", "ismes", "ables", "istes",
	),
	rule.With(rule.Delete(rule.R2, "atrice", "ateur", "ation", "atrices", "ateurs", "ations"), nil,
		icFollowUp),
	rule.Replace(rule.R2, "log", "logie", "logies"),
	rule.Replace(rule.R2, "u", "usion", "ution", "usions", "utions"),
	rule.Replace(rule.R2, "ent", "ence", "ences"),
	rule.With(rule.Delete(rule.RV, "ement", "ements"), nil,
		func(w *snowballword.SnowballWord) { ementFollowUp.Apply(w) }),
	rule.With(rule.Delete(rule.R2, "ité", "ités"), nil,
		func(w *snowballword.SnowballWord) { iteFollowUp.Apply(w) }),
	rule.With(rule.Delete(rule.R2, "if", "ive", "ifs", "ives"), nil,
		func(w *snowballword.SnowballWord) {
			if w.HasSuffixRunesInRegion(w.R2start, "at") {
				w.RemoveLastNRunes(2)
				icFollowUp(w)
			}
		}),
	rule.Replace(rule.Any, "eau", "eaux"),
	rule.Replace(rule.R1, "al", "aux"),
	[]rule.Rule{
		{Suffix: "euse", Do: eusFollowUp},
		{Suffix: "euses", Do: eusFollowUp},
		{Suffix: "issement", Region: rule.R1, When: precededByNonVowel},
		{Suffix: "issements", Region: rule.R1, When: precededByNonVowel},
		{Suffix: "amment", Region: rule.RV, Replace: "ant"},
		{Suffix: "emment", Region: rule.RV, Replace: "ent"},
		{Suffix: "ment", When: vowelInRVBefore},
		{Suffix: "ments", When: vowelInRVBefore},
	},
)

func precededByNonVowel(w *snowballword.SnowballWord, stem int) bool {
	return w.IsNonVowel(vowels, stem-1)
}

func vowelInRVBefore(w *snowballword.SnowballWord, stem int) bool {
	return stem-1 >= w.RVstart && w.IsVowel(vowels, stem-1)
}

// step1 removes standard suffixes.  The amment, emment and ment
// endings change the word but still leave the verb steps their
// turn, so they report false.
func step1(w *snowballword.SnowballWord) bool {
	suffix, ok := step1Rules.Apply(w)
	switch suffix {
	case "amment", "emment", "ment", "ments":
		return false
	}
	return ok
}

var step2aRules = rule.NewStep(rule.RV, rule.With(rule.Delete(rule.Any,
	"îmes", "ît", "îtes", "i", "ie", "ies", "ir", "ira", "irai",
	"iraIent", "irais", "irait", "iras", "irent", "irez", "iriez",
	"irions", "irons", "iront", "is", "issaIent", "issais", "issait",
	"issant", "issante", "issantes", "issants", "isse", "issent", "isses",
	"issez", "issiez", "issions", "issons", "it",
), func(w *snowballword.SnowballWord, stem int) bool {
	return stem-1 >= w.RVstart && w.IsNonVowel(vowels, stem-1)
}, nil))

// step2a removes i-verb endings in RV after a non-vowel.
func step2a(w *snowballword.SnowballWord) bool {
	return step2aRules.Run(w)
}

var step2bRules = rule.NewStep(rule.RV,
	rule.Delete(rule.R2, "ions"),
	rule.Delete(rule.Any,
		"é", "ée", "ées", "és", "èrent", "er", "era", "erai", "eraIent",
		"erais", "erait", "eras", "erez", "eriez", "erions", "erons",
		"eront", "ez", "iez",
	),
	rule.With(rule.Delete(rule.Any,
		"âmes", "ât", "âtes", "a", "ai", "aIent", "ais", "ait", "ant",
		"ante", "antes", "ants", "as", "asse", "assent", "asses",
		"assiez", "assions",
	), nil, func(w *snowballword.SnowballWord) {
		if w.HasSuffixRunesInRegion(w.RVstart, "e") {
			w.RemoveLastNRunes(1)
		}
	}),
)

// step2b removes the other verb endings in RV.
func step2b(w *snowballword.SnowballWord) bool {
	return step2bRules.Run(w)
}

// step3 turns a final Y into i and a final ç into c.
func step3(w *snowballword.SnowballWord) {
	if !w.ReplaceSuffix("Y", "i", false) {
		w.ReplaceSuffix("ç", "c", false)
	}
}

var step4Rules = rule.NewStep(rule.RV,
	[]rule.Rule{
		{Suffix: "ion", Region: rule.R2, When: func(w *snowballword.SnowballWord, stem int) bool {
			return stem-1 >= w.RVstart && w.IsAny(stem-1, "st")
		}},
		{Suffix: "ë", When: func(w *snowballword.SnowballWord, stem int) bool {
			return stem-2 >= w.RVstart && w.EndsBefore(1, "gu")
		}},
	},
	rule.Replace(rule.Any, "i", "ier", "ière", "Ier", "Ière"),
	rule.Delete(rule.Any, "e"),
)

// step4 drops a lone final s and residual endings in RV.
func step4(w *snowballword.SnowballWord) {
	if n := w.Len(); n >= 2 && w.Is(n-1, 's') && !w.IsAny(n-2, "aiouès") {
		w.RemoveLastNRunes(1)
	}
	step4Rules.Apply(w)
}

// step5 undoubles enn, onn, ett, ell and eill.
func step5(w *snowballword.SnowballWord) {
	if suffix, _ := w.FirstSuffix("enn", "onn", "ett", "ell", "eill"); suffix != "" {
		w.RemoveLastNRunes(1)
	}
}

// step6 removes the accent of an é or è followed only by
// non-vowels, at least one of them.
func step6(w *snowballword.SnowballWord) {
	i := w.Len() - 1
	for i >= 0 && w.IsNonVowel(vowels, i) && !w.IsAny(i, "éè") {
		i--
	}
	if i >= 0 && i < w.Len()-1 && w.IsAny(i, "éè") {
		w.SetRune(i, 'e')
	}
}
