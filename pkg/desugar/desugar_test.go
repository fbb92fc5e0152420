package desugar

import (
	"testing"

	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/cargoimport/pkg/errors"
)

func TestDesugar(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"= 1.4.0", "1.4.0"},
		{"=1.0.0-beta.2", "1.0.0-beta.2"},
		{"> 1.0.0", "^1.0.0"},
		{">0.3", "^0.3"},
		{"^1.0, >= 1.2.0", "^1.2.0"},
		{"^1.0, < 2.0.0", ">= 1.0 < 2.0.0"},
		{"^1.0, <= 1.5.0", "1.0"},
		{">= 1.0, <= 2.0", ">= 1.0 < 2.0"},
		{"^1.0, ^2.0", "^1.0"},
		{"^ 1.0 ^ 2.0", "^1.0"},
		{"> 1.0, < 2.0", ">= 1.0 < 2.0"},
		{">= 1.0, 1.2.*", "^1.0"},
		{">=0.2 0.3.x", "^0.2"},
		{"1.2.*", ">=1.2.0 <1.3.0"},
		{"1.*", ">=1.0.0 <2.0.0"},
		{"0.x", ">=0.0.0 <1.0.0"},
		{"1.*.*", ">=1.0.0 <2.0.0"},
		{"1.2.X", ">=1.2.0 <1.3.0"},

		// Passthrough keeps the comma-normalized input.
		{"~1.2.0", "~1.2.0"},
		{"^0.4", "^0.4"},
		{"*", "*"},
		{">= 1.0, < 2.0", ">= 1.0  < 2.0"},
		{">= 1.0, < 2.0, != 1.5.0", ">= 1.0  < 2.0, != 1.5.0"},
		{" ^1.0", " ^1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Desugar(tt.in)
			if err != nil {
				t.Fatalf("Desugar(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Desugar(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDesugarWildcardEquivalence(t *testing.T) {
	got, err := Desugar("1.2.*")
	if err != nil {
		t.Fatalf("Desugar() error: %v", err)
	}

	want, err := semver.NewConstraint("1.2.x")
	if err != nil {
		t.Fatal(err)
	}
	canon, err := semver.NewConstraint(got)
	if err != nil {
		t.Fatalf("output %q is not a valid range: %v", got, err)
	}

	for _, v := range []string{"1.1.9", "1.2.0", "1.2.7", "1.2.99", "1.3.0", "2.0.0"} {
		ver := semver.MustParse(v)
		if want.Check(ver) != canon.Check(ver) {
			t.Errorf("%s: 1.2.x says %v, %q says %v", v, want.Check(ver), got, canon.Check(ver))
		}
	}
}

func TestDesugarWildcardErrors(t *testing.T) {
	for _, in := range []string{
		"1.2.3.*",
		"1.2.*.*",
		".*",
		"1..*",
		"1.2*",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Desugar(in)
			if err == nil {
				t.Fatalf("Desugar(%q) should fail", in)
			}
			if !errors.Is(err, errors.ErrCodeVersionGrammar) {
				t.Errorf("Desugar(%q) code = %v, want %v", in, errors.GetCode(err), errors.ErrCodeVersionGrammar)
			}
		})
	}
}

func TestDesugarIdempotentOnPassthrough(t *testing.T) {
	for _, in := range []string{"~1.2.0", "^1.0", ">= 1.0 < 2.0.0", "^1.2.0", ">=1.2.0 <1.3.0"} {
		first, err := Desugar(in)
		if err != nil {
			t.Fatalf("Desugar(%q) error: %v", in, err)
		}
		r, err := Explain(first)
		if err != nil {
			t.Fatalf("Explain(%q) error: %v", first, err)
		}
		if r.Rule != PassthroughRule {
			continue
		}
		if r.Output != first {
			t.Errorf("Desugar(%q) = %q, not idempotent", first, r.Output)
		}
	}
}

func TestExplainReportsRule(t *testing.T) {
	tests := []struct {
		in   string
		rule string
	}{
		{"1.2.*", "wildcard"},
		{"1.*.*", "wildcard-patch"},
		{"= 1.4.0", "exact"},
		{"> 1.0.0", "greater"},
		{"^1.0, >= 1.2.0", "caret-floor"},
		{"^1.0, < 2.0.0", "caret-below"},
		{"^1.0, <= 1.5.0", "caret-at-most"},
		{">= 1.0, <= 2.0", "closed"},
		{"^1.0, ^2.0", "caret-pair"},
		{"> 1.0, < 2.0", "open"},
		{">= 1.0, 1.2.*", "floor-wildcard"},
		{"~1.2.0", PassthroughRule},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := Explain(tt.in)
			if err != nil {
				t.Fatalf("Explain(%q) error: %v", tt.in, err)
			}
			if r.Rule != tt.rule {
				t.Errorf("Explain(%q).Rule = %q, want %q", tt.in, r.Rule, tt.rule)
			}
			if r.Input != tt.in {
				t.Errorf("Explain(%q).Input = %q", tt.in, r.Input)
			}
			if r.Normalized != Normalize(tt.in) {
				t.Errorf("Explain(%q).Normalized = %q, want %q", tt.in, r.Normalized, Normalize(tt.in))
			}
		})
	}
}

func TestRulesDoNotOverlap(t *testing.T) {
	samples := []string{
		"1.2.*", "1.*.*", "= 1.4.0", "> 1.0.0", "^1.0  >= 1.2.0", "^1.0  < 2.0.0",
		"^1.0  <= 1.5.0", ">= 1.0  <= 2.0", "^1.0  ^2.0", "> 1.0  < 2.0", ">= 1.0  1.2.*",
	}
	for _, s := range samples {
		var matched []string
		for _, r := range Rules {
			if r.Pattern.MatchString(s) {
				matched = append(matched, r.Name)
			}
		}
		if len(matched) != 1 {
			t.Errorf("%q matched %v, want exactly one rule", s, matched)
		}
	}
}

func TestNormalizeFirstCommaOnly(t *testing.T) {
	if got := Normalize("a,b,c"); got != "a b,c" {
		t.Errorf("Normalize() = %q, want %q", got, "a b,c")
	}
}
