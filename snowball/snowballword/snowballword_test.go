package snowballword

import (
	"testing"
)

const englishVowels VowelSet = "aeiouy"

// region returns the text from start to the end of the word.
func region(w *SnowballWord, start int) string {
	return string(w.RS[start:])
}

func TestFindR1R2(t *testing.T) {
	testCases := []struct {
		word string
		r1   string
		r2   string
	}{
		{"beautiful", "iful", "ul"},
		{"beauty", "y", ""},
		{"beau", "", ""},
		{"animadversion", "imadversion", "adversion"},
		{"sprinkled", "kled", ""},
		{"eucharist", "harist", "ist"},
	}
	for _, tc := range testCases {
		w := New(tc.word)
		w.FindR1R2(englishVowels)
		if got := region(w, w.R1start); got != tc.r1 {
			t.Errorf("R1(%q) = %q, want %q", tc.word, got, tc.r1)
		}
		if got := region(w, w.R2start); got != tc.r2 {
			t.Errorf("R2(%q) = %q, want %q", tc.word, got, tc.r2)
		}
		if w.R1start > w.R2start || w.R2start > w.Len() {
			t.Errorf("%q: regions out of order %s", tc.word, w.DebugString())
		}
	}
}

func TestFindR1R2WithMinimum(t *testing.T) {
	w := New("abend")
	w.FindR1R2WithMinimum("aeiouyäöü", 3)
	if w.R1start != 3 || w.R2start != 4 {
		t.Errorf("got R1=%d R2=%d, want R1=3 R2=4", w.R1start, w.R2start)
	}

	w = New("ab")
	w.FindR1R2WithMinimum("aeiouyäöü", 3)
	if w.R1start != 2 {
		t.Errorf("R1 past the end of a short word: %d", w.R1start)
	}
}

func TestFindRomanceRV(t *testing.T) {
	testCases := []struct {
		word string
		rv   string
	}{
		{"macho", "ho"},
		{"oliva", "va"},
		{"trabajo", "bajo"},
		{"áureo", "eo"},
		{"a", ""},
	}
	for _, tc := range testCases {
		w := New(tc.word)
		w.FindRomanceRV("aeiouáéíóúü")
		if got := region(w, w.RVstart); got != tc.rv {
			t.Errorf("RV(%q) = %q, want %q", tc.word, got, tc.rv)
		}
	}
}

func TestFindFrenchRV(t *testing.T) {
	testCases := []struct {
		word string
		rv   string
	}{
		{"aimer", "er"},
		{"adorer", "rer"},
		{"voler", "ler"},
		{"tapis", "is"},
		{"parole", "ole"},
	}
	for _, tc := range testCases {
		w := New(tc.word)
		w.FindFrenchRV("aeiouyâàëéêèïîôûù", "par", "col", "tap")
		if got := region(w, w.RVstart); got != tc.rv {
			t.Errorf("RV(%q) = %q, want %q", tc.word, got, tc.rv)
		}
	}
}

func TestFindSlavicRV(t *testing.T) {
	w := New("книга")
	w.FindSlavicRV("аеиоуыэюя")
	if got := region(w, w.RVstart); got != "га" {
		t.Errorf("RV = %q, want %q", got, "га")
	}
	w = New("вдр")
	w.FindSlavicRV("аеиоуыэюя")
	if w.RVstart != w.Len() {
		t.Errorf("RV of a word without vowels should be empty, got %d", w.RVstart)
	}
}

func TestProtection(t *testing.T) {
	w := New("saying")
	w.HashSemivowels(englishVowels, "", "y")
	if !w.IsProtected(2) {
		t.Fatalf("y after a vowel should be protected: %s", w.DebugString())
	}
	if w.IsVowel(englishVowels, 2) {
		t.Error("a protected y is not a vowel")
	}
	if w.Is(2, 'y') {
		t.Error("Is must not match a protected letter")
	}
	if !w.HasSuffixRunes("Ying") {
		t.Error("an upper case pattern letter should match the protected y")
	}
	if w.HasSuffixRunes("ying") {
		t.Error("a lower case pattern letter should not match the protected y")
	}
	if w.String() != "saying" {
		t.Errorf("protection changed the text: %q", w.String())
	}
}

func TestHashSemivowelsBetween(t *testing.T) {
	testCases := []struct {
		word      string
		between   string
		protected []int
	}{
		// The vowel right of a protected letter can open the next match.
		{"aiaia", "i", []int{1, 3}},
		{"bauaua", "u", []int{2, 4}},
		{"bauue", "u", []int{2}},
		{"haaiaien", "i", []int{3, 5}},
	}
	for _, tc := range testCases {
		w := New(tc.word)
		w.HashSemivowels("aeiouy", tc.between, "")
		want := make([]bool, w.Len())
		for _, i := range tc.protected {
			want[i] = true
		}
		for i := range want {
			if w.IsProtected(i) != want[i] {
				t.Errorf("HashSemivowels(%q) = %s", tc.word, w.DebugString())
				break
			}
		}
	}
}

func TestReplaceSuffixRunes(t *testing.T) {
	w := New("cries")
	w.FindR1R2(englishVowels)
	w.ReplaceSuffixRunes(3, "Y")
	if w.String() != "cry" {
		t.Fatalf("got %q", w.String())
	}
	if !w.IsProtected(2) {
		t.Error("upper case replacement letters are written protected")
	}
	if len(w.Protected) != len(w.RS) {
		t.Error("protection flags out of step with runes")
	}
	if w.R1start > w.Len() || w.R2start > w.Len() || w.RVstart > w.Len() {
		t.Errorf("regions past the end: %s", w.DebugString())
	}
}

func TestRemoveRune(t *testing.T) {
	w := New("hello")
	w.Protect(3)
	w.RemoveRune(2)
	if w.String() != "helo" {
		t.Fatalf("got %q", w.String())
	}
	if !w.IsProtected(2) || w.IsProtected(3) {
		t.Errorf("protection did not follow the runes: %s", w.DebugString())
	}
	w.RemoveRune(10)
	if w.String() != "helo" {
		t.Errorf("out of range removal changed the word: %q", w.String())
	}
}

func TestSetRuneKeepsCase(t *testing.T) {
	w := New("Élan")
	w.SetRune(0, 'e')
	if w.String() != "Elan" {
		t.Errorf("got %q", w.String())
	}
}

func TestSuffixMatching(t *testing.T) {
	w := New("running")
	if s, _ := w.FirstSuffix("ning", "ing", "ng"); s != "ning" {
		t.Errorf("FirstSuffix = %q", s)
	}
	if s, _ := w.FirstSuffixIfIn(5, w.Len(), "ing", "ng"); s != "" {
		t.Errorf("FirstSuffixIfIn should stop at the first match outside the region, got %q", s)
	}
	if s, _ := w.FirstSuffixIn(5, w.Len(), "ing", "ng"); s != "ng" {
		t.Errorf("FirstSuffixIn = %q, want %q", s, "ng")
	}
	if !w.EndsBefore(3, "nn") {
		t.Error("EndsBefore(3, nn) should hold")
	}
	if w.HasSuffixRunes("ING") {
		t.Error("upper case pattern matched unprotected letters")
	}
	if p, size := w.FirstPrefix("ru", "run"); p != "ru" || size != 2 {
		t.Errorf("FirstPrefix = %q %d", p, size)
	}
}

func TestDeleteIfIn(t *testing.T) {
	w := New("nations")
	if !w.DeleteIfIn(6, "s", false) || w.String() != "nation" {
		t.Fatalf("got %q", w.String())
	}
	if w.DeleteIfIn(5, "ion", false) {
		t.Error("suffix outside the region should not count")
	}
	if !w.DeleteIfIn(5, "ion", true) || w.String() != "nation" {
		t.Errorf("countOutsideRegion should report without deleting, got %q", w.String())
	}
}

func TestTrimBoundaryPunctuation(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"hello!", "hello"},
		{"(world)", "world"},
		{"dog's", "dog"},
		{"James’s", "James"},
		{"«café»", "café"},
		{"...", ""},
		{"it's", "it"},
		{"don't", "don't"},
	}
	for _, tc := range testCases {
		if got := TrimBoundaryPunctuation(tc.in); got != tc.out {
			t.Errorf("TrimBoundaryPunctuation(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestFoldAndCompose(t *testing.T) {
	if got := Apply(Fold("äöü", "aou"), "Über Bäume"); got != "Uber Baume" {
		t.Errorf("Fold = %q", got)
	}
	if got := Compose("e\u0301te\u0301"); got != "\u00e9t\u00e9" {
		t.Errorf("Compose = %q", got)
	}
}
