package desugar

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/cargoimport/pkg/errors"
)

func isWildcard(s string) bool {
	return s == "*" || s == "x" || s == "X"
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// wildcard rewrites an x-range such as "1.2.*" or "1.*.*" into the
// canonical comparator pair ">=1.2.0 <1.3.0".
func wildcard(m []string) (string, error) {
	expr := m[0]
	parts := strings.Split(expr, ".")
	if len(parts) > 3 {
		return "", errors.New(errors.ErrCodeVersionGrammar, "invalid wildcard range %q: too many components", expr)
	}

	fixed := 0
	for fixed < len(parts) && isNumeric(parts[fixed]) {
		fixed++
	}
	if fixed == 0 {
		return "", errors.New(errors.ErrCodeVersionGrammar, "invalid wildcard range %q: missing major version", expr)
	}
	for _, p := range parts[fixed:] {
		if !isWildcard(p) {
			return "", errors.New(errors.ErrCodeVersionGrammar, "invalid wildcard range %q: bad component %q", expr, p)
		}
	}

	c, err := semver.NewConstraint(expr)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeVersionGrammar, err, "invalid wildcard range %q", expr)
	}
	lower, err := semver.NewVersion(strings.Join(parts[:fixed], "."))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeVersionGrammar, err, "invalid wildcard range %q", expr)
	}
	if !c.Check(lower) {
		return "", errors.New(errors.ErrCodeVersionGrammar, "invalid wildcard range %q: excludes its own floor %s", expr, lower.String())
	}

	var upper semver.Version
	if fixed == 1 {
		upper = lower.IncMajor()
	} else {
		upper = lower.IncMinor()
	}
	return ">=" + lower.String() + " <" + upper.String(), nil
}
