package index

import (
	"strings"

	packageurl "github.com/package-url/packageurl-go"
)

// Kind is the dependency kind recorded in the index: "normal", "dev" or
// "build". Only normal dependencies are imported.
type Kind string

// KindNormal marks a dependency needed at run time.
const KindNormal Kind = "normal"

// Record is one line of an index file: one published version of a crate.
// Fields the import does not use (cksum, features, yanked, ...) are not
// decoded.
type Record struct {
	Name string       `json:"name"`
	Vers string       `json:"vers"`
	Deps []Dependency `json:"deps"`
}

// Dependency is one entry of a record's deps list.
type Dependency struct {
	Name     string `json:"name"`
	Req      string `json:"req"`
	Kind     Kind   `json:"kind"`
	Optional bool   `json:"optional"`
}

// Runtime reports whether d is a required dependency at run time. Entries
// with a missing kind are not runtime dependencies.
func (d Dependency) Runtime() bool {
	return d.Kind == KindNormal && !d.Optional
}

// Version returns Vers with any "+build" metadata removed.
func (r Record) Version() string {
	v, _, _ := strings.Cut(r.Vers, "+")
	return v
}

// PURL identifies the record as a package URL, e.g. "pkg:cargo/serde@1.0.0".
func (r Record) PURL() string {
	return packageurl.NewPackageURL(packageurl.TypeCargo, "", r.Name, r.Vers, nil, "").ToString()
}
