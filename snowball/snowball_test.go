package snowball

import (
	"errors"
	"sync"
	"testing"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want Language
	}{
		{"english", English},
		{"EN", English},
		{" French ", French},
		{"de", German},
		{"porter2", English},
		{"bokmål", Norwegian},
		{"none", NoStemming},
		{"", NoStemming},
		{"ru", Russian},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := Parse("klingon"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Parse(klingon) error = %v, want ErrUnknownLanguage", err)
	}
}

func TestLanguagesHaveStemmers(t *testing.T) {
	langs := Languages()
	if len(langs) != 12 {
		t.Fatalf("got %d languages", len(langs))
	}
	for _, lang := range langs {
		if _, ok := stemmers[lang]; !ok {
			t.Errorf("no stemmer for %s", lang)
		}
		parsed, err := Parse(string(lang))
		if err != nil || parsed != lang {
			t.Errorf("Parse(%q) = %q, %v", lang, parsed, err)
		}
	}
}

func TestStem(t *testing.T) {
	testCases := []struct {
		lang Language
		in   string
		out  string
	}{
		{English, "documentation", "document"},
		{English, "skies", "sky"},
		{French, "continuellement", "continuel"},
		{German, "häuser", "haus"},
		{Spanish, "chica", "chic"},
		{Italian, "abbandonata", "abbandon"},
		{Dutch, "lichamelijk", "licham"},
		{Swedish, "klokheten", "klok"},
		{Norwegian, "bilene", "bil"},
		{Danish, "bilerne", "bil"},
		{Finnish, "taloissa", "talo"},
		{Russian, "книги", "книг"},
		{Portuguese, "informação", "inform"},
		{NoStemming, "running", "running"},
		{Language("klingon"), "running", "running"},
	}
	for _, tc := range testCases {
		if got := Stem(tc.in, tc.lang); got != tc.out {
			t.Errorf("Stem(%q, %s) = %q, want %q", tc.in, tc.lang, got, tc.out)
		}
	}
}

func TestStemIsStableUnderRepetition(t *testing.T) {
	testCases := []struct {
		lang Language
		word string
	}{
		{English, "documentation"},
		{English, "documenting"},
		{English, "skis"},
		{English, "skies"},
		{English, "dying"},
		{French, "continuellement"},
	}
	for _, tc := range testCases {
		once := Stem(tc.word, tc.lang)
		if twice := Stem(once, tc.lang); twice != once {
			t.Errorf("Stem(Stem(%q)) = %q, Stem = %q", tc.word, twice, once)
		}
	}
}

func TestNewUnknownLanguageIsNoOp(t *testing.T) {
	for _, word := range []string{"running", "häuser", "книги"} {
		if got := New("klingon").Stem(word); got != word {
			t.Errorf("Stem(%q) = %q", word, got)
		}
	}
}

func TestShortWordsUnchanged(t *testing.T) {
	for _, lang := range Languages() {
		for _, word := range []string{"", "a", "ab"} {
			if got := Stem(word, lang); got != word {
				t.Errorf("Stem(%q, %s) = %q", word, lang, got)
			}
		}
	}
}

func TestDecomposedInput(t *testing.T) {
	composed := "canci\u00f3n"
	decomposed := "cancio\u0301n"
	if a, b := Stem(composed, Spanish), Stem(decomposed, Spanish); a != b {
		t.Errorf("composed %q and decomposed %q stems differ", a, b)
	}
}

func TestGermanTransliterateOption(t *testing.T) {
	if got := New(German).Stem("schoen"); got != "schoen" {
		t.Errorf("got %q", got)
	}
	if got := New(German, Options{GermanTransliterate: true}).Stem("schoen"); got != "schon" {
		t.Errorf("got %q", got)
	}
}

var sample = map[Language][]string{
	English:    {"documentation", "generously", "relational", "happiness", "running", "skies"},
	French:     {"continuellement", "chevaux", "nationalité", "majestueusement", "rapidement"},
	German:     {"häuser", "kategorischen", "laufen", "straße", "aufeinanderfolgenden"},
	Spanish:    {"chica", "cantaban", "quería", "haciéndolo", "utilizaciones"},
	Italian:    {"abbandonata", "mangiarlo", "propagandosi", "velocemente"},
	Dutch:      {"lichamelijk", "maan", "boeken", "mogelijkheden"},
	Swedish:    {"klokheten", "hundarna", "jaktkarlarnas"},
	Norwegian:  {"bilene", "hundene", "havnedistriktene"},
	Danish:     {"bilerne", "hestene", "indtagelsen"},
	Finnish:    {"taloissa", "kirjassa", "kaupungeissakin"},
	Russian:    {"красивая", "книги", "ёлка", "вылавливающие"},
	Portuguese: {"informação", "informações", "cantaram", "corações"},
}

func TestDeterministicAcrossGoroutines(t *testing.T) {
	want := make(map[Language][]string)
	for lang, words := range sample {
		for _, word := range words {
			want[lang] = append(want[lang], Stem(word, lang))
		}
	}
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for lang, words := range sample {
				s := New(lang)
				for j, word := range words {
					if got := s.Stem(word); got != want[lang][j] {
						select {
						case errs <- word:
						default:
						}
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for word := range errs {
		t.Errorf("concurrent stem of %q differed", word)
	}
}

func BenchmarkStem(b *testing.B) {
	for lang, words := range sample {
		b.Run(string(lang), func(b *testing.B) {
			s := New(lang)
			for i := 0; i < b.N; i++ {
				for _, word := range words {
					s.Stem(word)
				}
			}
		})
	}
}
