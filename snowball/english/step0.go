package english

import (
	"github.com/oarkflow/stemmer/snowball/rule"
)

// Step 0 is to strip off apostrophes and "s".
var step0 = rule.NewStep(rule.Any, rule.Delete(rule.Any, "'s'", "'s", "'"))
