// Package desugar rewrites Cargo version requirements into node-semver style
// range expressions.
//
// The rewrite is a pattern-dispatch table, not a grammar. The first comma of
// the requirement is replaced by a space, then the result is matched against
// [Rules] in order; the first rule whose pattern matches the whole string
// produces the output. Requirements no rule recognizes pass through
// unchanged.
//
// The table reflects the requirement shapes found in the crates.io index and
// its order is part of the behavior: existing fixtures depend on it.
//
//	desugar.Desugar("^1.0, >= 1.2.0") // "^1.2.0"
//	desugar.Desugar("> 1.0, < 2.0")   // ">= 1.0 < 2.0"
//	desugar.Desugar("1.2.*")          // ">=1.2.0 <1.3.0"
//	desugar.Desugar("~1.2.0")         // "~1.2.0"
package desugar

import (
	"regexp"
	"strings"
)

// Rule is one entry of the rewrite table.
type Rule struct {
	// Name identifies the rule in reports.
	Name string
	// Pattern must match the entire comma-normalized requirement.
	Pattern *regexp.Regexp
	// Rewrite builds the output from the submatches of Pattern.
	Rewrite func(m []string) (string, error)
}

// Rules is the ordered rewrite table. The first matching rule wins.
var Rules = []Rule{
	{Name: "wildcard", Pattern: regexp.MustCompile(`^[0-9.]+[*xX]$`), Rewrite: wildcard},
	{Name: "wildcard-patch", Pattern: regexp.MustCompile(`^[0-9.]+[*xX]\.[*xX]$`), Rewrite: wildcard},
	{Name: "exact", Pattern: regexp.MustCompile(`^= *([0-9a-zA-Z.-]+)$`), Rewrite: func(m []string) (string, error) {
		return m[1], nil
	}},
	{Name: "greater", Pattern: regexp.MustCompile(`^> *([0-9.]+)$`), Rewrite: func(m []string) (string, error) {
		return "^" + m[1], nil
	}},
	{Name: "caret-floor", Pattern: regexp.MustCompile(`^\^([0-9.]+),? *>= *([0-9.]+)$`), Rewrite: func(m []string) (string, error) {
		return "^" + m[2], nil
	}},
	{Name: "caret-below", Pattern: regexp.MustCompile(`^\^([0-9.]+),? *< *([0-9.]+)$`), Rewrite: interval},
	// Collapses to the floor version; the upper bound is ignored.
	{Name: "caret-at-most", Pattern: regexp.MustCompile(`^\^([0-9.]+),? *<= *([0-9.]+)$`), Rewrite: func(m []string) (string, error) {
		return m[1], nil
	}},
	{Name: "closed", Pattern: regexp.MustCompile(`^>= *([0-9.]+),? *<= *([0-9.]+)$`), Rewrite: interval},
	{Name: "caret-pair", Pattern: regexp.MustCompile(`^\^ *([0-9.]+),? *\^ *([0-9.]+)$`), Rewrite: func(m []string) (string, error) {
		return "^" + m[1], nil
	}},
	{Name: "open", Pattern: regexp.MustCompile(`^> *([0-9.]+),? *< *([0-9.]+)$`), Rewrite: interval},
	{Name: "floor-wildcard", Pattern: regexp.MustCompile(`^>= *([0-9.]+),? *([0-9.]+\.[*xX])$`), Rewrite: func(m []string) (string, error) {
		return "^" + m[1], nil
	}},
}

// PassthroughRule is the rule name reported when nothing matched.
const PassthroughRule = "passthrough"

func interval(m []string) (string, error) {
	return ">= " + m[1] + " < " + m[2], nil
}

// Result describes how a requirement was rewritten.
type Result struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Rule       string `json:"rule"`
	Output     string `json:"output"`
}

// Normalize replaces the first comma of expr with a space. Only the first
// comma is touched; requirements with three or more clauses keep their
// remaining commas and fall through to passthrough.
func Normalize(expr string) string {
	return strings.Replace(expr, ",", " ", 1)
}

// Explain rewrites expr and reports which rule fired.
func Explain(expr string) (Result, error) {
	r := Result{Input: expr, Normalized: Normalize(expr)}
	for _, rule := range Rules {
		m := rule.Pattern.FindStringSubmatch(r.Normalized)
		if m == nil {
			continue
		}
		out, err := rule.Rewrite(m)
		if err != nil {
			return Result{}, err
		}
		r.Rule = rule.Name
		r.Output = out
		return r, nil
	}
	r.Rule = PassthroughRule
	r.Output = r.Normalized
	return r, nil
}

// Desugar rewrites a Cargo version requirement into a target range
// expression. The only error is a VERSION_GRAMMAR error for a wildcard
// requirement that is not a valid semver range.
func Desugar(expr string) (string, error) {
	r, err := Explain(expr)
	if err != nil {
		return "", err
	}
	return r.Output, nil
}
