package snowballword

import (
	"unicode"
	"unicode/utf8"
)

// IsMarker reports whether a pattern rune stands for a protected
// letter.  Patterns are written in lower case; an upper case ASCII
// letter or '~' only matches a protected rune.
func IsMarker(r rune) bool {
	return r == '~' || (r < utf8.RuneSelf && unicode.IsUpper(r))
}

func mark(r rune) rune {
	if r == '~' {
		return r
	}
	return unicode.ToUpper(r)
}

func unmark(r rune) rune {
	return unicode.ToLower(r)
}

func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}

// matchAt compares the word rune at pos with a pattern rune.
func (w *SnowballWord) matchAt(pos int, p rune) bool {
	if IsMarker(p) != w.Protected[pos] {
		return false
	}
	return unicode.ToLower(w.RS[pos]) == unmark(p)
}

// FirstPrefix Return the first prefix found or the empty string.
func (w *SnowballWord) FirstPrefix(prefixes ...string) (foundPrefix string, foundPrefixSize int) {
	rsLen := len(w.RS)
	for _, prefix := range prefixes {
		prefixRunesSize := runeCount(prefix)
		if prefixRunesSize > rsLen {
			continue
		}
		found := true
		i := 0
		for _, r := range prefix {
			if !w.matchAt(i, r) {
				found = false
				break
			}
			i++
		}
		if found {
			return prefix, prefixRunesSize
		}
	}
	return "", 0
}

// Return true if `w.RS[startPos:endPos]` ends with runes from `suffixRunes`.
// That is, the slice of runes between startPos and endPos have a suffix of
// suffixRunes.
func (w *SnowballWord) HasSuffixRunesIn(startPos, endPos int, suffix string) bool {
	if startPos < 0 {
		startPos = 0
	}
	if endPos > len(w.RS) {
		return false
	}
	suffixLen := runeCount(suffix)
	if suffixLen > endPos-startPos {
		return false
	}
	i := endPos
	for len(suffix) > 0 {
		r, n := utf8.DecodeLastRuneInString(suffix)
		suffix = suffix[:len(suffix)-n]
		i--
		if !w.matchAt(i, r) {
			return false
		}
	}
	return true
}

// HasSuffixRunes Return true if `w` ends with `suffixRunes`
func (w *SnowballWord) HasSuffixRunes(suffix string) bool {
	return w.HasSuffixRunesIn(0, len(w.RS), suffix)
}

// HasSuffixRunesInRegion reports whether the word ends with the
// suffix and the whole suffix lies at or after regionStart.
func (w *SnowballWord) HasSuffixRunesInRegion(regionStart int, suffix string) bool {
	return w.HasSuffixRunes(suffix) && regionStart <= len(w.RS)-runeCount(suffix)
}

// EndsBefore reports whether the text in front of the last `skip`
// runes ends with the given string, e.g. EndsBefore(3, "iv") tests
// for "iv" in front of a three rune suffix.
func (w *SnowballWord) EndsBefore(skip int, s string) bool {
	return w.HasSuffixRunesIn(0, len(w.RS)-skip, s)
}

// FirstSuffixIfIn Find the first suffix that ends at `endPos` in the word among
// those provided; then,
// check to see if it begins after startPos.  If it does, return
// it, else return the empty string and empty rune slice.  This
// may seem a counterintuitive manner to do this.  However, it
// matches what is required most of the time by the Snowball
// stemmer steps.
func (w *SnowballWord) FirstSuffixIfIn(startPos, endPos int, suffixes ...string) (suffix string, suffixRunesSize int) {
	for _, suffix = range suffixes {
		if w.HasSuffixRunesIn(0, endPos, suffix) {
			suffixRunesSize = runeCount(suffix)
			if endPos-suffixRunesSize >= startPos {
				return suffix, suffixRunesSize
			}
			return "", 0
		}
	}
	return "", 0
}

// FirstSuffixIn returns the first suffix lying entirely inside
// `w.RS[startPos:endPos]`.  Longer suffixes reaching out of the
// region do not hide shorter ones that fit.
func (w *SnowballWord) FirstSuffixIn(startPos, endPos int, suffixes ...string) (suffix string, suffixRunesSize int) {
	for _, suffix = range suffixes {
		if w.HasSuffixRunesIn(startPos, endPos, suffix) {
			return suffix, runeCount(suffix)
		}
	}
	return "", 0
}

// Return the first suffix found or the empty string.
func (w *SnowballWord) FirstSuffix(suffixes ...string) (suffix string, suffixRunesSize int) {
	return w.FirstSuffixIfIn(0, len(w.RS), suffixes...)
}

// DeleteIfIn removes the suffix when the word ends with it and the
// suffix starts at or after regionStart.  A suffix that is present
// but outside the region is reported as found only when
// countOutsideRegion is set, so callers chaining alternatives can
// choose whether a shorter suffix still gets its turn.
func (w *SnowballWord) DeleteIfIn(regionStart int, suffix string, countOutsideRegion bool) bool {
	if !w.HasSuffixRunes(suffix) {
		return false
	}
	size := runeCount(suffix)
	if len(w.RS)-size >= regionStart {
		w.RemoveLastNRunes(size)
		return true
	}
	return countOutsideRegion
}
