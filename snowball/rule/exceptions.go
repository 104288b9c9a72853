package rule

import "strings"

// Exceptions maps whole lower case words to a fixed stem.  A word
// mapped to itself is frozen: it leaves the pipeline untouched.
type Exceptions map[string]string

// Lookup returns the stem for word, ignoring case.
func (e Exceptions) Lookup(word string) (string, bool) {
	stem, ok := e[strings.ToLower(word)]
	return stem, ok
}

// Frozen builds a table of words that stem to themselves.
func Frozen(words ...string) Exceptions {
	e := make(Exceptions, len(words))
	for _, w := range words {
		e[w] = w
	}
	return e
}
