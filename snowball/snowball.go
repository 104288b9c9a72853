package snowball

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oarkflow/stemmer/snowball/danish"
	"github.com/oarkflow/stemmer/snowball/dutch"
	"github.com/oarkflow/stemmer/snowball/english"
	"github.com/oarkflow/stemmer/snowball/finnish"
	"github.com/oarkflow/stemmer/snowball/french"
	"github.com/oarkflow/stemmer/snowball/german"
	"github.com/oarkflow/stemmer/snowball/italian"
	"github.com/oarkflow/stemmer/snowball/norwegian"
	"github.com/oarkflow/stemmer/snowball/portuguese"
	"github.com/oarkflow/stemmer/snowball/russian"
	"github.com/oarkflow/stemmer/snowball/snowballword"
	"github.com/oarkflow/stemmer/snowball/spanish"
	"github.com/oarkflow/stemmer/snowball/swedish"
)

const (
	VERSION string = "v1.0.0"
)

// Language selects a stemming algorithm.
type Language string

const (
	NoStemming Language = "none"
	English    Language = "english"
	French     Language = "french"
	German     Language = "german"
	Italian    Language = "italian"
	Dutch      Language = "dutch"
	Swedish    Language = "swedish"
	Russian    Language = "russian"
	Portuguese Language = "portuguese"
	Spanish    Language = "spanish"
	Danish     Language = "danish"
	Finnish    Language = "finnish"
	Norwegian  Language = "norwegian"
)

var ErrUnknownLanguage = errors.New("unknown language")

// Stemmer reduces a single token to its stem.
type Stemmer interface {
	Stem(word string) string
}

// StemFunc adapts a plain function to Stemmer.
type StemFunc func(word string) string

func (f StemFunc) Stem(word string) string {
	return f(word)
}

// NoOp is the identity stemmer.
var NoOp Stemmer = StemFunc(func(word string) string { return word })

var stemmers = map[Language]StemFunc{
	English:    english.Stem,
	French:     french.Stem,
	German:     german.Stem,
	Italian:    italian.Stem,
	Dutch:      dutch.Stem,
	Swedish:    swedish.Stem,
	Russian:    russian.Stem,
	Portuguese: portuguese.Stem,
	Spanish:    spanish.Stem,
	Danish:     danish.Stem,
	Finnish:    finnish.Stem,
	Norwegian:  norwegian.Stem,
}

// ISO 639-1 codes and a few common aliases.
var aliases = map[string]Language{
	"":          NoStemming,
	"no-stem":   NoStemming,
	"en":        English,
	"porter2":   English,
	"fr":        French,
	"de":        German,
	"it":        Italian,
	"nl":        Dutch,
	"sv":        Swedish,
	"ru":        Russian,
	"pt":        Portuguese,
	"es":        Spanish,
	"da":        Danish,
	"fi":        Finnish,
	"no":        Norwegian,
	"nb":        Norwegian,
	"bokmal":    Norwegian,
	"bokmål":    Norwegian,
	"castilian": Spanish,
}

// Languages lists every language with a stemming algorithm, in a
// stable order.
func Languages() []Language {
	return []Language{
		English, French, German, Italian, Dutch, Swedish, Russian,
		Portuguese, Spanish, Danish, Finnish, Norwegian,
	}
}

// Parse reads a language name or code, ignoring case.
func Parse(name string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if lang, ok := aliases[key]; ok {
		return lang, nil
	}
	lang := Language(key)
	if lang == NoStemming {
		return lang, nil
	}
	if _, ok := stemmers[lang]; ok {
		return lang, nil
	}
	return NoStemming, fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
}

// Options tune the stemmers that have variants.
type Options struct {
	// GermanTransliterate reads ae, oe and ue as umlauts.
	GermanTransliterate bool
}

// New returns the stemmer for a language.  Languages without an
// algorithm get NoOp.
func New(lang Language, opts ...Options) Stemmer {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if lang == German && o.GermanTransliterate {
		return composed(german.Stemmer{Transliterate: true}.Stem)
	}
	if f, ok := stemmers[lang]; ok {
		return composed(f)
	}
	return NoOp
}

// composed runs a stemmer on the NFC form of the word, so that
// decomposed accents reach the tables as single runes.
func composed(f StemFunc) StemFunc {
	return func(word string) string {
		return f(snowballword.Compose(word))
	}
}

// Stem a word in the specified language.  An unknown language
// leaves the word unchanged.
func Stem(word string, language Language) string {
	return New(language).Stem(word)
}
