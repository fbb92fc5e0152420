package index

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/cargoimport/pkg/errors"
	"github.com/matzehuels/cargoimport/pkg/registry"
)

func parse(t *testing.T, input string) (registry.Registry, error) {
	t.Helper()
	p := &Parser{}
	return p.Parse(strings.NewReader(input), "test-input")
}

func TestParseSkipsBlankLines(t *testing.T) {
	input := `{"name":"foo","vers":"1.0.0","deps":[]}

{"name":"foo","vers":"1.1.0","deps":[]}
   ` + "\t" + `
`
	got, err := parse(t, input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := registry.Registry{"test/foo": registry.Package{
		"1.0.0": registry.Deps{},
		"1.1.0": registry.Deps{},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStripsBuildMetadata(t *testing.T) {
	input := `{"name":"foo","vers":"1.0.0+sha.abc123","deps":[]}
{"name":"foo","vers":"0.1.0+wasi-snapshot-preview1","deps":[]}
{"name":"foo","vers":"2.0.0-rc.1","deps":[]}`

	got, err := parse(t, input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []string{"0.1.0", "1.0.0", "2.0.0-rc.1"}
	if diff := cmp.Diff(want, got["test/foo"].Versions()); diff != "" {
		t.Errorf("versions mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFiltersDependencies(t *testing.T) {
	input := `{"name":"tokio-util","vers":"0.7.0","deps":[` +
		`{"name":"tokio","req":"^1.0, >= 1.2.0","kind":"normal","optional":false},` +
		`{"name":"futures-core","req":"^0.3.0","kind":"normal","optional":false},` +
		`{"name":"slab","req":"^0.4","kind":"normal","optional":true},` +
		`{"name":"tokio-test","req":"^0.4","kind":"dev","optional":false},` +
		`{"name":"cc","req":"^1","kind":"build","optional":false},` +
		`{"name":"legacy","req":"^1","optional":false}` +
		`]}`

	got, err := parse(t, input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := registry.Registry{"test/tokio_util": registry.Package{
		"0.7.0": registry.Deps{
			"test/tokio":        "^1.2.0",
			"test/futures_core": "^0.3.0",
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLaterVersionWins(t *testing.T) {
	input := `{"name":"foo","vers":"1.0.0","deps":[{"name":"a","req":"= 1.0.0","kind":"normal","optional":false}]}
{"name":"foo","vers":"1.0.0+rebuild","deps":[{"name":"b","req":"= 2.0.0","kind":"normal","optional":false}]}`

	got, err := parse(t, input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := registry.Registry{"test/foo": registry.Package{"1.0.0": registry.Deps{"test/b": "2.0.0"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNamespace(t *testing.T) {
	p := &Parser{Namer: registry.Namer{Namespace: "fixture"}}
	got, err := p.Parse(strings.NewReader(`{"name":"a-b","vers":"1.0.0","deps":[{"name":"c-d","req":"^1","kind":"normal","optional":false}]}`), "x")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := registry.Registry{"fixture/a_b": registry.Package{"1.0.0": registry.Deps{"fixture/c_d": "^1"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     errors.Code
		contains string
	}{
		{
			name:     "malformed json",
			input:    "{\"name\":\"foo\",\"vers\":\"1.0.0\",\"deps\":[]}\n\n{\"name\":",
			code:     errors.ErrCodeRecordParse,
			contains: "test-input:3",
		},
		{
			name:     "missing vers",
			input:    `{"name":"foo","deps":[]}`,
			code:     errors.ErrCodeRecordParse,
			contains: "test-input:1",
		},
		{
			name:     "bad wildcard range",
			input:    `{"name":"foo","vers":"1.0.0","deps":[{"name":"bar","req":"1.2.3.*","kind":"normal","optional":false}]}`,
			code:     errors.ErrCodeVersionGrammar,
			contains: "pkg:cargo/foo@1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.input)
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Parse() error %q should contain %q", err, tt.contains)
			}
		})
	}
}

func TestParseIgnoresBadRangeOnFilteredDependency(t *testing.T) {
	input := `{"name":"foo","vers":"1.0.0","deps":[{"name":"bar","req":"1.2.3.*","kind":"dev","optional":false}]}`
	if _, err := parse(t, input); err != nil {
		t.Errorf("Parse() error: %v", err)
	}
}

func TestParseFile(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, "se/rd/serde", []byte(`{"name":"serde","vers":"1.0.0","deps":[]}`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p := &Parser{}
	got, err := p.ParseFile(fs, "se/rd/serde")
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if _, ok := got["test/serde"]["1.0.0"]; !ok {
		t.Errorf("ParseFile() = %v, want test/serde@1.0.0", got)
	}

	_, err = p.ParseFile(fs, "mi/ss/missing")
	if !errors.Is(err, errors.ErrCodeRecordParse) {
		t.Errorf("ParseFile(missing) error = %v, want %s", err, errors.ErrCodeRecordParse)
	}
}

func TestRecordPURL(t *testing.T) {
	r := Record{Name: "serde", Vers: "1.0.0"}
	if got := r.PURL(); got != "pkg:cargo/serde@1.0.0" {
		t.Errorf("PURL() = %q, want %q", got, "pkg:cargo/serde@1.0.0")
	}
}
