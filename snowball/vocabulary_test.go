package snowball

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

type vocabEntry struct {
	word, stem string
}

// readVocabulary loads testdata/<lang>.tsv, one "word<TAB>stem" pair
// per line.
func readVocabulary(t *testing.T, lang Language) []vocabEntry {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", string(lang)+".tsv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var entries []vocabEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word, stem, ok := strings.Cut(scanner.Text(), "\t")
		if !ok {
			continue
		}
		entries = append(entries, vocabEntry{word: word, stem: stem})
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatalf("no vocabulary for %s", lang)
	}
	return entries
}

func TestVocabulary(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(string(lang), func(t *testing.T) {
			s := New(lang)
			failures := 0
			for _, e := range readVocabulary(t, lang) {
				if got := s.Stem(e.word); got != e.stem {
					t.Errorf("Stem(%q) = %q, want %q", e.word, got, e.stem)
					failures++
					if failures == 25 {
						t.Fatal("too many failures")
					}
				}
			}
		})
	}
}

func TestVocabularyProperties(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(string(lang), func(t *testing.T) {
			s := New(lang)
			for _, e := range readVocabulary(t, lang) {
				stem := s.Stem(e.word)
				if again := s.Stem(e.word); again != stem {
					t.Fatalf("Stem(%q) gave %q then %q", e.word, stem, again)
				}
				// German spells ß as ss before stemming; nothing else grows.
				limit := utf8.RuneCountInString(strings.ReplaceAll(e.word, "ß", "ss"))
				if n := utf8.RuneCountInString(stem); n > limit {
					t.Errorf("Stem(%q) = %q grew the word", e.word, stem)
				}
				if strings.Contains(stem, "~") && !strings.Contains(e.word, "~") {
					t.Errorf("Stem(%q) = %q leaked a marker", e.word, stem)
				}
			}
		})
	}
}
