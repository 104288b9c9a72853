package english

import (
	"testing"

	"github.com/oarkflow/stemmer/snowball/snowballword"
)

func TestStem(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"documentation", "document"},
		{"documenting", "document"},
		{"skis", "ski"},
		{"skies", "sky"},
		{"dying", "die"},
		{"news", "news"},
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"ties", "tie"},
		{"cats", "cat"},
		{"cried", "cri"},
		{"died", "die"},
		{"running", "run"},
		{"hopping", "hop"},
		{"hoping", "hope"},
		{"agreed", "agre"},
		{"knightly", "knight"},
		{"generously", "generous"},
		{"happiness", "happi"},
		{"relational", "relat"},
		{"dog's", "dog"},
		{"yell", "yell"},
		{"is", "is"},
		{"a", "a"},
		{"baked", "bake"},
		{"hoped", "hope"},
		{"filing", "file"},
		{"crying", "cri"},
	}
	for _, tc := range testCases {
		if got := Stem(tc.in); got != tc.out {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestStemKeepsCase(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"CRY", "CRI"},
		{"Cry", "Cri"},
		{"Hoping", "Hope"},
	}
	for _, tc := range testCases {
		if got := Stem(tc.in); got != tc.out {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestIsShortWord(t *testing.T) {
	testCases := []struct {
		word  string
		short bool
	}{
		{"bed", true},
		{"shed", true},
		{"shred", true},
		{"bead", false},
		{"embed", false},
		{"beds", false},
	}
	for _, tc := range testCases {
		w := snowballwordFor(tc.word)
		if got := isShortWord(w); got != tc.short {
			t.Errorf("isShortWord(%q) = %v, want %v", tc.word, got, tc.short)
		}
	}
}

func BenchmarkStem(b *testing.B) {
	words := []string{"documentation", "generously", "relational", "happiness", "running"}
	for i := 0; i < b.N; i++ {
		for _, word := range words {
			Stem(word)
		}
	}
}

func snowballwordFor(word string) *snowballword.SnowballWord {
	w := snowballword.New(word)
	prelude(w)
	markRegions(w)
	return w
}
