// Package rule holds the data types every language pipeline is
// written in: suffix rules grouped into steps, evaluated by a
// single "longest suffix wins" interpreter.
package rule

import (
	"sort"
	"unicode/utf8"

	"github.com/oarkflow/stemmer/snowball/snowballword"
)

// Region names the part of the word a suffix must fall in.
type Region int

const (
	Any Region = iota
	R1
	R2
	RV
)

// Start returns the index where the region begins in w.
func (r Region) Start(w *snowballword.SnowballWord) int {
	switch r {
	case R1:
		return w.R1start
	case R2:
		return w.R2start
	case RV:
		return w.RVstart
	}
	return 0
}

func (r Region) String() string {
	switch r {
	case R1:
		return "R1"
	case R2:
		return "R2"
	case RV:
		return "RV"
	}
	return "any"
}

// Rule is one suffix of a step with its condition and action.
//
// The default action replaces the suffix with Replace (deleting
// it when Replace is empty).  Upper case ASCII letters in Suffix
// and Replace stand for protected letters.
type Rule struct {
	Suffix  string
	Region  Region
	Replace string

	// Keep matches the suffix without touching the word.
	Keep bool

	// When is an extra test on the word; stem is the index where
	// the suffix starts.
	When func(w *snowballword.SnowballWord, stem int) bool

	// Do replaces the default action and reports success.
	Do func(w *snowballword.SnowballWord, stem int) bool

	// Then runs after a successful action.
	Then func(w *snowballword.SnowballWord)

	// Fallthrough lets shorter suffixes be tried when the region or
	// When test fails.  Without it the first matching suffix ends
	// the step whatever its conditions say.
	Fallthrough bool

	size int
}

// Delete builds deletion rules for the suffixes.
func Delete(region Region, suffixes ...string) []Rule {
	return Replace(region, "", suffixes...)
}

// Replace builds rules rewriting each suffix to replacement.
func Replace(region Region, replacement string, suffixes ...string) []Rule {
	rules := make([]Rule, 0, len(suffixes))
	for _, s := range suffixes {
		rules = append(rules, Rule{Suffix: s, Region: region, Replace: replacement})
	}
	return rules
}

// Keep builds rules that match the suffixes and leave the word alone.
func Keep(suffixes ...string) []Rule {
	rules := make([]Rule, 0, len(suffixes))
	for _, s := range suffixes {
		rules = append(rules, Rule{Suffix: s, Keep: true})
	}
	return rules
}

// With copies rules, setting the same When and Then on each.
func With(rules []Rule, when func(*snowballword.SnowballWord, int) bool, then func(*snowballword.SnowballWord)) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.When = when
		r.Then = then
		out[i] = r
	}
	return out
}

// Step is an ordered set of rules.  Rules are kept longest suffix
// first, so a suffix can never be tried after a longer suffix that
// ends with it has matched.
type Step struct {
	// Limit restricts the suffix search to a region (Snowball's
	// setlimit): suffixes reaching out of it are not seen at all.
	Limit Region
	rules []Rule
}

// NewStep builds a step from groups of rules.
func NewStep(limit Region, groups ...[]Rule) Step {
	var rules []Rule
	for _, g := range groups {
		for _, r := range g {
			r.size = utf8.RuneCountInString(r.Suffix)
			rules = append(rules, r)
		}
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].size > rules[j].size
	})
	return Step{Limit: limit, rules: rules}
}

// Suffixes lists the step's suffixes in evaluation order.
func (s Step) Suffixes() []string {
	out := make([]string, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Suffix
	}
	return out
}

// Apply finds the longest matching suffix and runs its rule.  It
// returns the suffix ("" when none matched) and whether the rule's
// conditions held and its action succeeded.
func (s Step) Apply(w *snowballword.SnowballWord) (suffix string, ok bool) {
	limit := s.Limit.Start(w)
	for i := range s.rules {
		r := &s.rules[i]
		if !w.HasSuffixRunesIn(limit, len(w.RS), r.Suffix) {
			continue
		}
		stem := len(w.RS) - r.size
		if !w.HasSuffixRunesInRegion(r.Region.Start(w), r.Suffix) || (r.When != nil && !r.When(w, stem)) {
			if r.Fallthrough {
				continue
			}
			return r.Suffix, false
		}
		switch {
		case r.Keep:
			return r.Suffix, false
		case r.Do != nil:
			if !r.Do(w, stem) {
				return r.Suffix, false
			}
		case r.Replace == "":
			w.DeleteIfIn(r.Region.Start(w), r.Suffix, false)
		default:
			w.ReplaceSuffixRunes(r.size, r.Replace)
		}
		if r.Then != nil {
			r.Then(w)
		}
		return r.Suffix, true
	}
	return "", false
}

// Run applies the step and only reports success.
func (s Step) Run(w *snowballword.SnowballWord) bool {
	_, ok := s.Apply(w)
	return ok
}
