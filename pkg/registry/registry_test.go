package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo-bar-baz", "test/foo_bar-baz"},
		{"nodash", "test/nodash"},
		{"serde_json", "test/serde_json"},
		{"-leading", "test/_leading"},
		{"", "test/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNamerNamespace(t *testing.T) {
	n := Namer{Namespace: "fixture"}
	if got := n.Normalize("tokio-util"); got != "fixture/tokio_util" {
		t.Errorf("Normalize() = %q, want %q", got, "fixture/tokio_util")
	}
}

func TestStats(t *testing.T) {
	reg := Registry{
		"test/a": Package{
			"1.0.0": Deps{"test/b": "^1.0"},
			"1.1.0": Deps{"test/b": "^1.0", "test/c": "0.2"},
		},
		"test/b": Package{"1.0.0": Deps{}},
	}

	want := Stats{Packages: 2, Versions: 3, Edges: 3}
	if diff := cmp.Diff(want, reg.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"test/a", "test/b"}, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
