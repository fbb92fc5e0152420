package registry

import (
	"maps"
	"slices"
	"strings"
)

// DefaultNamespace is the namespace normalized names are placed in.
const DefaultNamespace = "test"

// Deps maps a normalized dependency name to its desugared range.
type Deps map[string]string

// Package maps a version to the runtime dependencies of that version.
type Package map[string]Deps

// Registry maps a normalized package name to its versions.
type Registry map[string]Package

// Names returns the package names in lexical order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Stats summarizes the size of a registry.
type Stats struct {
	Packages int
	Versions int
	Edges    int
}

// Stats counts packages, versions and dependency edges.
func (r Registry) Stats() Stats {
	s := Stats{Packages: len(r)}
	for _, pkg := range r {
		s.Versions += len(pkg)
		for _, deps := range pkg {
			s.Edges += len(deps)
		}
	}
	return s
}

// Versions returns the version keys of p in lexical order.
func (p Package) Versions() []string {
	return slices.Sorted(maps.Keys(p))
}

// Namer normalizes source package names into a namespace.
type Namer struct {
	Namespace string
}

// Normalize prefixes name with the namespace and replaces the first hyphen
// with an underscore. Later hyphens are kept: "foo-bar-baz" becomes
// "test/foo_bar-baz".
func (n Namer) Normalize(name string) string {
	ns := n.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	return ns + "/" + strings.Replace(name, "-", "_", 1)
}

// Normalize normalizes name into [DefaultNamespace].
func Normalize(name string) string {
	return Namer{}.Normalize(name)
}
