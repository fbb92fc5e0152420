// Package registry holds the consolidated registry model and the logic that
// builds it: name normalization and the fold of per-file partial registries
// into one.
//
// # Model
//
// A [Registry] maps a normalized package name to a [Package], which maps a
// version string to that version's runtime dependencies ([Deps]). Dependency
// names are normalized the same way as package names, and each value is a
// range expression in the target grammar:
//
//	{
//	  "test/serde_json": {
//	    "1.0.0": {"test/serde": "^1.0", "test/itoa": ">=0.3.0 <0.4.0"}
//	  }
//	}
//
// # Merging
//
// Index files are parsed independently, each yielding a partial registry.
// [Builder] folds partials left to right under a [Strategy]. The default,
// [StrategyReplace], lets a later partial replace an earlier package record
// wholesale; [StrategyUnion] merges version maps instead. Either way every
// name seen in more than one partial is reported as a [Collision].
package registry
