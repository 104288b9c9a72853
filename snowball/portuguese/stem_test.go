package portuguese

import (
	"strings"
	"testing"
)

func TestStem(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"informação", "inform"},
		{"informações", "inform"},
		{"cantaram", "cant"},
	}
	for _, tc := range testCases {
		if got := Stem(tc.in); got != tc.out {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestNasalsRoundTrip(t *testing.T) {
	for _, word := range []string{"mão", "corações", "NAÇÃO", "põe"} {
		w := expandNasals(word)
		if got := collapseNasals(w); got != word {
			t.Errorf("collapseNasals(expandNasals(%q)) = %q", word, got)
		}
	}
}

func TestStemLeavesNoMarkers(t *testing.T) {
	for _, word := range []string{"mão", "corações", "nação", "põe", "informação", "irmãos", "limões"} {
		if got := Stem(word); strings.ContainsRune(got, '~') {
			t.Errorf("Stem(%q) = %q", word, got)
		}
	}
}
