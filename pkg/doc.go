// Package pkg provides the core libraries for cargoimport.
//
// # Overview
//
// cargoimport turns the crates.io index that cargo caches locally into one
// registry document: every package, every version, and the runtime
// dependencies of each version with their requirements rewritten into a
// simpler range grammar. The pkg directory is organized into:
//
//  1. [registry] - The registry model, name normalization and merging
//  2. [desugar] - The version requirement rewrite rules
//  3. [index] - Index file discovery and record parsing
//  4. [io] - MessagePack and JSON serialization
//  5. [pipeline] - Orchestration (discover → parse → merge → encode)
//  6. [render/nodelink] - Graphviz diagrams of a registry
//
// # Architecture
//
// The data flow through one import run:
//
//	~/.cargo/registry/index/*/*/*/*
//	         ↓
//	    [index.Discover]  → sorted file list
//	         ↓
//	    [index.Parser]    → one partial registry per file
//	         ↓                (names via [registry.Namer], ranges via [desugar])
//	    [registry.Builder] → merged registry
//	         ↓
//	    [io.Encode]       → MessagePack or JSON on stdout
//
// Supporting packages: [errors] for coded errors, [observability] for
// pipeline hooks, and [buildinfo] for version information.
package pkg
