package russian

import (
	"testing"
)

func TestStem(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"красивая", "красив"},
		{"книги", "книг"},
		{"ёлка", "елк"},
	}
	for _, tc := range testCases {
		if got := Stem(tc.in); got != tc.out {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
