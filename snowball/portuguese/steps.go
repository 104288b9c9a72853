package portuguese

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

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
	rule.Delete(rule.R2, "os", "ic", "ad"),
)

var menteFollowUp = rule.NewStep(rule.Any, rule.Delete(rule.R2, "ante", "avel", "ível"))

var idadeFollowUp = rule.NewStep(rule.Any, rule.Delete(rule.R2, "abil", "ic", "iv"))

// Step 1 removes standard suffixes.
var step1 = rule.NewStep(rule.Any,
	rule.Delete(rule.R2,
		"eza", "ezas", "ico", "ica", "icos", "icas", "ismo", "ismos", "ável",
		"ível", "ista", "istas", "oso", "osa", "osos", "osas", "amento",
		"amentos", "imento", "imentos", "adora", "ador", "aça~o", "adoras",
		"adores", "aço~es", "ante", "antes", "ância",
	),
	rule.Replace(rule.R2, "log", "logia", "logias"),
	rule.Replace(rule.R2, "u", "uça~o", "uço~es"),
	rule.Replace(rule.R2, "ente", "ência", "ências"),
	rule.With(rule.Delete(rule.R1, "amente"), nil, func(w *snowballword.SnowballWord) {
		amenteFollowUp.Apply(w)
	}),
	rule.With(rule.Delete(rule.R2, "mente"), nil, func(w *snowballword.SnowballWord) {
		menteFollowUp.Apply(w)
	}),
	rule.With(rule.Delete(rule.R2, "idade", "idades"), nil, func(w *snowballword.SnowballWord) {
		idadeFollowUp.Apply(w)
	}),
	rule.With(rule.Delete(rule.R2, "iva", "ivo", "ivas", "ivos"), nil, deleteR2("at")),
	rule.With(rule.Replace(rule.RV, "ir", "ira", "iras"), func(w *snowballword.SnowballWord, stem int) bool {
		return w.Is(stem-1, 'e')
	}, nil),
)

// Step 2 removes verb suffixes in RV.
var step2 = rule.NewStep(rule.RV, rule.Delete(rule.Any,
	"ada", "ida", "ia", "aria", "eria", "iria", "ará", "ara", "erá", "era",
	"irá", "ava", "asse", "esse", "isse", "aste", "este", "iste", "ei",
	"arei", "erei", "irei", "am", "iam", "ariam", "eriam", "iriam", "aram",
	"eram", "iram", "avam", "em", "arem", "erem", "irem", "assem", "essem",
	"issem", "ado", "ido", "ando", "endo", "indo", "ara~o", "era~o",
	"ira~o", "ar", "er", "ir", "as", "adas", "idas", "ias", "arias",
	"erias", "irias", "arás", "aras", "erás", "eras", "irás", "avas", "es",
	"ardes", "erdes", "irdes", "ares", "eres", "ires", "asses", "esses",
	"isses", "astes", "estes", "istes", "is", "ais", "eis", "íeis",
	"aríeis", "eríeis", "iríeis", "áreis", "areis", "éreis", "ereis",
	"íreis", "ireis", "ásseis", "ésseis", "ísseis", "áveis", "ados", "idos",
	"ámos", "amos", "íamos", "aríamos", "eríamos", "iríamos", "áramos",
	"éramos", "íramos", "ávamos", "emos", "aremos", "eremos", "iremos",
	"ássemos", "êssemos", "íssemos", "imos", "armos", "ermos", "irmos",
	"eu", "iu", "ou", "ira", "iras",
))

// step3 drops an i in RV after c.
func step3(w *snowballword.SnowballWord) {
	n := w.Len()
	if n-1 >= w.RVstart && w.Is(n-1, 'i') && w.Is(n-2, 'c') {
		w.RemoveLastNRunes(1)
	}
}

// Step 4 removes a residual suffix in RV.
var step4 = rule.NewStep(rule.Any, rule.Delete(rule.RV, "os", "a", "i", "o", "á", "í", "ó"))

// Step 5 removes a final e in RV, with the u of gu or the i of ci
// when that letter is in RV too, and turns ç into c.
var step5 = rule.NewStep(rule.Any,
	rule.With(rule.Delete(rule.RV, "e", "é", "ê"), nil, func(w *snowballword.SnowballWord) {
		n := w.Len()
		if n-1 < w.RVstart {
			return
		}
		if (w.Is(n-1, 'u') && w.Is(n-2, 'g')) || (w.Is(n-1, 'i') && w.Is(n-2, 'c')) {
			w.RemoveLastNRunes(1)
		}
	}),
	rule.Replace(rule.Any, "c", "ç"),
)
