package italian

import (
	"testing"
)

func TestStem(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"abbandonata", "abbandon"},
		{"mangiarlo", "mang"},
		{"tu", "tu"},
		{"abiterono", "abit"},
		{"sospiro", "sospir"},
		{"abbaiaiava", "abbaiai"},
	}
	for _, tc := range testCases {
		if got := Stem(tc.in); got != tc.out {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
