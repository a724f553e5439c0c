// Package classify maps a catalog item's multilingual names onto the bookable
// sub-category of its product family. The catalog has no explicit sub-category
// column, so the display names are pattern-matched instead; rules are ordered
// most specific first and the first match wins.
package classify

import "strings"

type Label string

// Rule matches when every keyword group in All has at least one keyword
// present in the haystack and none of the Exclude keywords appear.
type Rule struct {
	Label   Label
	All     [][]string
	Exclude []string
}

type RuleSet []Rule

func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func haystack(names []string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		name = Normalize(name)
		if name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "\n")
}

func containsAny(hay string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(hay, kw) {
			return true
		}
	}
	return false
}

func (r Rule) matches(hay string) bool {
	if len(r.All) == 0 {
		return false
	}
	for _, group := range r.All {
		if !containsAny(hay, group) {
			return false
		}
	}
	return !containsAny(hay, r.Exclude)
}

// Classify returns the sub-category of the first matching rule. Missing or
// malformed names simply fail every predicate: no error, no label.
func Classify(names []string, rules RuleSet) (Label, bool) {
	hay := haystack(names)
	if hay == "" {
		return "", false
	}
	for _, rule := range rules {
		if rule.matches(hay) {
			return rule.Label, true
		}
	}
	return "", false
}

// ExcludedFromFamily reports whether a record belongs to another family and
// must be dropped from this family's listing before sub-category
// classification runs.
func ExcludedFromFamily(names []string, exclusions []string) bool {
	hay := haystack(names)
	if hay == "" {
		return false
	}
	return containsAny(hay, exclusions)
}
