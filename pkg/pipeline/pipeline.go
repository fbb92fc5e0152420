// Package pipeline provides the import pipeline for cargoimport.
//
// This package implements the complete discover → parse → merge → encode
// pipeline so that the CLI subcommands share one code path.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Discover: Enumerate index files matching a glob pattern
//  2. Parse: Convert each file into a partial registry
//  3. Merge: Fold the partials into one registry, in discovery order
//  4. Encode: Serialize the registry as MessagePack or JSON
//
// The stages run strictly in sequence on a single goroutine. Any error aborts
// the run; nothing is encoded unless discovery, parsing and merging succeeded.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    IndexDir: "/home/me/.cargo/registry/index",
//	})
//	if err != nil {
//	    return err
//	}
//	err = runner.Write(ctx, os.Stdout, result.Registry, pkgio.FormatText)
package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/cargoimport/pkg/errors"
	"github.com/matzehuels/cargoimport/pkg/index"
	pkgio "github.com/matzehuels/cargoimport/pkg/io"
	"github.com/matzehuels/cargoimport/pkg/registry"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultIndexDir returns the cargo registry index root under $HOME.
// It returns an empty string when the home directory cannot be determined.
func DefaultIndexDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cargo", "registry", "index")
}

// =============================================================================
// Options
// =============================================================================

// Options configures an import run.
type Options struct {
	// IndexDir is the root the pattern is evaluated against. Ignored when
	// the runner was given a filesystem.
	IndexDir string
	// Pattern selects index files below IndexDir.
	Pattern string
	// Namespace prefixes every normalized package name.
	Namespace string
	// Merge decides how packages found in several files combine.
	Merge registry.Strategy
	// Format is the output encoding.
	Format pkgio.Format
}

// ValidateAndSetDefaults fills unset fields and validates the rest.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Pattern == "" {
		o.Pattern = index.DefaultPattern
	}
	if o.Namespace == "" {
		o.Namespace = registry.DefaultNamespace
	}
	if err := errors.ValidatePattern(o.Pattern); err != nil {
		return err
	}
	return errors.ValidateNamespace(o.Namespace)
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of an import run.
type Result struct {
	// Registry is the merged registry.
	Registry registry.Registry

	// Files lists the index files read, in fold order.
	Files []string

	// Collisions lists package names contributed by more than one file.
	Collisions []registry.Collision

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	registry.Stats
	Files     int
	ParseTime time.Duration
}
