package danish

import (
	"testing"
)

func TestStem(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"bilerne", "bil"},
		{"hestene", "hest"},
	}
	for _, tc := range testCases {
		if got := Stem(tc.in); got != tc.out {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
