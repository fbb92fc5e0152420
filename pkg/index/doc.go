// Package index reads a local mirror of the crates.io registry index.
//
// The index stores one file per crate, laid out by name length ("1/a",
// "2/ab", "3/a/abc", "se/rd/serde"). Each file holds one JSON record per
// published version:
//
//	{"name":"serde_json","vers":"1.0.0","deps":[{"name":"serde","req":"^1.0","kind":"normal","optional":false}],...}
//
// [Discover] finds index files under a root with a glob pattern, and
// [Parser] turns one file into a partial [registry.Registry]: build
// metadata is stripped from versions, only normal non-optional dependencies
// are kept, and every name and requirement is normalized and desugared.
//
// All file access goes through a billy.Filesystem so the same code reads an
// on-disk mirror (osfs) or an in-memory fixture (memfs).
//
// [registry.Registry]: github.com/matzehuels/cargoimport/pkg/registry.Registry
package index
