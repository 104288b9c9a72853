// Package spanish implements the Spanish Snowball stemmer.
package spanish

import (
	"github.com/oarkflow/stemmer/snowball/rule"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

const vowels snowballword.VowelSet = "aeiouáéíóúü"

var unaccent = snowballword.Fold("áéíóú", "aeiou")

// Stem a Spanish word.
func Stem(word string) string {
	if len([]rune(word)) < 3 {
		return word
	}
	w := snowballword.New(word)
	w.FindRomanceRV(vowels)
	w.FindR1R2(vowels)

	step0(w)
	if !step1.Run(w) && !step2a.Run(w) {
		step2b.Run(w)
	}
	step3.Run(w)
	return snowballword.Apply(unaccent, w.String())
}

var pronouns = []string{
	"me", "se", "sela", "selo", "selas", "selos", "la", "le", "lo",
	"las", "les", "los", "nos",
}

// Verb endings that may carry a pronoun, with the form they take
// once it is gone.
var pronounHosts = rule.NewStep(rule.Any,
	rule.Replace(rule.Any, "iendo", "iéndo"),
	rule.Replace(rule.Any, "ando", "ándo"),
	rule.Replace(rule.Any, "ar", "ár"),
	rule.Replace(rule.Any, "er", "ér"),
	rule.Replace(rule.Any, "ir", "ír"),
	rule.Keep("ando", "iendo", "ar", "er", "ir", "yendo"),
)

// step0 removes an attached pronoun after a verb ending in RV.
func step0(w *snowballword.SnowballWord) {
	pronoun, size := w.FirstSuffix(sortedPronouns...)
	if pronoun == "" {
		return
	}
	verb := snowballword.New(string(w.RS[:w.Len()-size]))
	host, _ := verb.FirstSuffix(pronounHosts.Suffixes()...)
	if host == "" || verb.Len()-len([]rune(host)) < w.RVstart {
		return
	}
	if host == "yendo" && !verb.EndsBefore(5, "u") {
		return
	}
	w.RemoveLastNRunes(size)
	pronounHosts.Apply(w)
}

var sortedPronouns = rule.NewStep(rule.Any, rule.Keep(pronouns...)).Suffixes()

// Step 1 removes standard suffixes.
var step1 = rule.NewStep(rule.Any,
	rule.Delete(rule.R2,
		"anza", "anzas", "ico", "ica", "icos", "icas", "ismo", "ismos",
		"able", "ables", "ible", "ibles", "ista", "istas", "oso", "osa",
		"osos", "osas", "amiento", "amientos", "imiento", "imientos",
	),
	rule.With(rule.Delete(rule.R2,
		"adora", "ador", "ación", "adoras", "adores", "aciones",
		"ante", "antes", "ancia", "ancias",
	), nil, deleteR2("ic")),
	rule.Replace(rule.R2, "log", "logía", "logías"),
	rule.Replace(rule.R2, "u", "ución", "uciones"),
	rule.Replace(rule.R2, "ente", "encia", "encias"),
	rule.With(rule.Delete(rule.R1, "amente"), nil, func(w *snowballword.SnowballWord) {
		amenteFollowUp.Apply(w)
	}),
	rule.With(rule.Delete(rule.R2, "mente"), nil, func(w *snowballword.SnowballWord) {
		menteFollowUp.Apply(w)
	}),
	rule.With(rule.Delete(rule.R2, "idad", "idades"), nil, func(w *snowballword.SnowballWord) {
		idadFollowUp.Apply(w)
	}),
	rule.With(rule.Delete(rule.R2, "iva", "ivo", "ivas", "ivos"), nil, deleteR2("at")),
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

var menteFollowUp = rule.NewStep(rule.Any, rule.Delete(rule.R2, "ante", "able", "ible"))

var idadFollowUp = rule.NewStep(rule.Any, rule.Delete(rule.R2, "abil", "ic", "iv"))

func precededByU(w *snowballword.SnowballWord, stem int) bool {
	return w.Is(stem-1, 'u')
}

// Step 2a removes y-verb endings in RV that follow u.
var step2a = rule.NewStep(rule.RV, rule.With(rule.Delete(rule.Any,
	"ya", "ye", "yan", "yen", "yeron", "yendo", "yo", "yó", "yas",
	"yes", "yais", "yamos",
), precededByU, nil))

// Step 2b removes the other verb endings in RV.
var step2b = rule.NewStep(rule.RV,
	[]rule.Rule{
		{Suffix: "en", Do: deleteWithGu},
		{Suffix: "es", Do: deleteWithGu},
		{Suffix: "éis", Do: deleteWithGu},
		{Suffix: "emos", Do: deleteWithGu},
	},
	rule.Delete(rule.Any,
		"arían", "arías", "arán", "arás", "aríais", "aría", "aréis",
		"aríamos", "aremos", "ará", "aré", "erían", "erías", "erán",
		"erás", "eríais", "ería", "eréis", "eríamos", "eremos", "erá",
		"eré", "irían", "irías", "irán", "irás", "iríais", "iría", "iréis",
		"iríamos", "iremos", "irá", "iré", "aba", "ada", "ida", "ía", "ara",
		"iera", "ad", "ed", "id", "ase", "iese", "aste", "iste", "an",
		"aban", "ían", "aran", "ieran", "asen", "iesen", "aron", "ieron",
		"ado", "ido", "ando", "iendo", "ió", "ar", "er", "ir", "as", "abas",
		"adas", "idas", "ías", "aras", "ieras", "ases", "ieses", "ís", "áis",
		"abais", "íais", "arais", "ierais", "aseis", "ieseis", "asteis",
		"isteis", "ados", "idos", "amos", "ábamos", "íamos", "imos",
		"áramos", "iéramos", "iésemos", "ásemos",
	),
)

// deleteWithGu deletes the ending, and the u of a preceding gu.
func deleteWithGu(w *snowballword.SnowballWord, stem int) bool {
	if w.Is(stem-1, 'u') && w.Is(stem-2, 'g') {
		stem--
	}
	w.RemoveLastNRunes(w.Len() - stem)
	return true
}

// Step 3 removes residual vowels in RV.
var step3 = rule.NewStep(rule.Any,
	rule.Delete(rule.RV, "os", "a", "o", "á", "í", "ó"),
	rule.With(rule.Delete(rule.RV, "e", "é"), nil, func(w *snowballword.SnowballWord) {
		n := w.Len()
		if w.Is(n-1, 'u') && w.Is(n-2, 'g') && n-1 >= w.RVstart {
			w.RemoveLastNRunes(1)
		}
	}),
)
