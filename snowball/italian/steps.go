package italian

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

var pronouns = rule.NewStep(rule.Any, rule.Keep(
	"ci", "gli", "la", "le", "li", "lo", "mi", "ne", "si", "ti", "vi",
	"sene", "gliela", "gliele", "glieli", "glielo", "gliene",
	"mela", "mele", "meli", "melo", "mene",
	"tela", "tele", "teli", "telo", "tene",
	"cela", "cele", "celi", "celo", "cene",
	"vela", "vele", "veli", "velo", "vene",
)).Suffixes()

// step0 removes an attached pronoun following ando or endo, and
// turns one following ar, er or ir into e.  The verb ending must
// start in RV.
func step0(w *snowballword.SnowballWord) {
	pronoun, size := w.FirstSuffix(pronouns...)
	if pronoun == "" {
		return
	}
	host, hostSize := w.FirstSuffixIfIn(0, w.Len()-size, "ando", "endo", "ar", "er", "ir")
	if host == "" || w.Len()-size-hostSize < w.RVstart {
		return
	}
	switch host {
	case "ando", "endo":
		w.RemoveLastNRunes(size)
	default:
		w.ReplaceSuffixRunes(size, "e")
	}
}

// deleteR2 returns a follow-up deleting suffix when it lies in R2.
func deleteR2(suffix string) func(*snowballword.SnowballWord) {
	return func(w *snowballword.SnowballWord) {
		if w.HasSuffixRunesInRegion(w.R2start, suffix) {
			w.RemoveLastNRunes(len([]rune(suffix)))
		}
	}
}

var amenteFollowUp = rule.NewStep(rule.Any,
	[]rule.Rule{{Suffix: "iv", Region: rule.R2, Then: deleteR2("at")}},
	rule.Delete(rule.R2, "os", "ic", "abil"),
)

var itaFollowUp = rule.NewStep(rule.Any, rule.Delete(rule.R2, "abil", "ic", "iv"))

// Step 1 removes standard suffixes.
var step1 = rule.NewStep(rule.Any,
	rule.Delete(rule.R2,
		"anza", "anze", "ico", "ici", "ica", "ice", "iche", "ichi", "ismo",
		"ismi", "abile", "abili", "ibile", "ibili", "ista", "iste", "isti",
		"istà", "istè", "istì", "oso", "osi", "osa", "ose", "mente",
		"atrice", "atrici", "ante", "anti",
	),
	rule.With(rule.Delete(rule.R2, "azione", "azioni", "atore", "atori"), nil, deleteR2("ic")),
	rule.Replace(rule.R2, "log", "logia", "logie"),
	rule.Replace(rule.R2, "u", "uzione", "uzioni", "usione", "usioni"),
	rule.Replace(rule.R2, "ente", "enza", "enze"),
	rule.Delete(rule.RV, "amento", "amenti", "imento", "imenti"),
	rule.With(rule.Delete(rule.R1, "amente"), nil, func(w *snowballword.SnowballWord) {
		amenteFollowUp.Apply(w)
	}),
	rule.With(rule.Delete(rule.R2, "ità"), nil, func(w *snowballword.SnowballWord) {
		itaFollowUp.Apply(w)
	}),
	rule.With(rule.Delete(rule.R2, "ivo", "ivi", "iva", "ive"), nil, func(w *snowballword.SnowballWord) {
		if w.HasSuffixRunesInRegion(w.R2start, "at") {
			w.RemoveLastNRunes(2)
			deleteR2("ic")(w)
		}
	}),
)

// Step 2 removes verb suffixes in RV.
var step2 = rule.NewStep(rule.RV, rule.Delete(rule.Any,
	"ammo", "ando", "ano", "are", "arono", "asse", "assero", "assi",
	"assimo", "ata", "ate", "ati", "ato", "ava", "avamo", "avano",
	"avate", "avi", "avo", "emmo", "enda", "ende", "endi", "endo",
	"erà", "erai", "eranno", "ere", "erebbe", "erebbero", "erei",
	"eremmo", "eremo", "ereste", "eresti", "erete", "erò", "erono",
	"essero", "ete", "eva", "evamo", "evano", "evate", "evi", "evo",
	"iamo", "immo", "irà", "irai", "iranno", "ire", "irebbe",
	"irebbero", "irei", "iremmo", "iremo", "ireste", "iresti", "irete",
	"irò", "irono", "isca", "iscano", "isce", "isci", "isco", "iscono",
	"issero", "ita", "ite", "iti", "ito", "iva", "ivamo", "ivano",
	"ivate", "ivi", "ivo", "ono", "uta", "ute", "uti", "uto", "ar",
	"ir",
))

// step3a drops a final vowel in RV, then an i before it in RV.
func step3a(w *snowballword.SnowballWord) {
	n := w.Len()
	if n-1 < w.RVstart || !w.IsAny(n-1, "aeioàèìò") {
		return
	}
	w.RemoveLastNRunes(1)
	if n-2 >= w.RVstart && w.Is(n-2, 'i') {
		w.RemoveLastNRunes(1)
	}
}

// step3b drops the h of a final ch or gh in RV.
func step3b(w *snowballword.SnowballWord) {
	n := w.Len()
	if w.Is(n-1, 'h') && w.IsAny(n-2, "cg") && n-2 >= w.RVstart {
		w.RemoveLastNRunes(1)
	}
}
