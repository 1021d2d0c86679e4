package webfonts

import (
	"regexp"
	"strings"
)

// Rule pairs a category with a pattern matched against normalized family names.
type Rule struct {
	Category Category
	Pattern  *regexp.Regexp
}

// Classifier assigns a Category to font family names using an ordered rule
// list. It is a pure function of its rules: no I/O, no shared state, safe
// for concurrent use.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier with the given rules, evaluated in
// order. With no rules it uses DefaultRules.
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// DefaultRules returns the built-in classification heuristics.
//
// Monospace rules come first, then sans-serif, then serif: "mono" and
// "serif" tokens are more discriminating than the generic "sans" token, so
// names like "Sans Mono" classify as monospace rather than sans-serif.
func DefaultRules() []Rule {
	var rules []Rule
	add := func(cat Category, patterns ...string) {
		for _, p := range patterns {
			rules = append(rules, Rule{Category: cat, Pattern: regexp.MustCompile(p)})
		}
	}
	add(CategoryMonospace,
		`mono`, `courier`, `consolas`, `menlo`, `fira\s*code`, `source\s*code`, `jetbrains`,
	)
	add(CategorySansSerif,
		`sans`, `arial`, `helvetica`, `verdana`, `tahoma`, `roboto`, `open\s*sans`,
		`lato`, `montserrat`, `proxima`, `futura`, `avenir`, `gotham`, `gill`,
		`franklin`, `econ.*sans`, `economist.*sans`,
	)
	add(CategorySerif,
		`serif`, `georgia`, `times`, `garamond`, `palatino`, `cambria`, `didot`,
		`bodoni`, `caslon`, `baskerville`, `minion`, `sabon`, `bembo`, `plantin`,
		`econ.*serif`, `economist.*serif`,
	)
	return rules
}

// Classify normalizes the family name (quotes stripped, whitespace trimmed,
// case-folded) and returns the category of the first matching rule, or
// CategoryUnknown when nothing matches.
func (c *Classifier) Classify(family string) Category {
	normalized := strings.ToLower(NormalizeFamily(family))
	for _, r := range c.rules {
		if r.Pattern.MatchString(normalized) {
			return r.Category
		}
	}
	return CategoryUnknown
}

// NormalizeFamily strips surrounding quotes and whitespace from a declared
// font-family value. Whitespace-only names normalize to a placeholder so a
// FontFace never carries an empty family.
func NormalizeFamily(family string) string {
	family = strings.TrimSpace(family)
	family = strings.Trim(family, `'"`)
	family = strings.TrimSpace(family)
	if family == "" {
		return "(unnamed)"
	}
	return family
}
