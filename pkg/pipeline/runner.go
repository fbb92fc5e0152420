package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/matzehuels/cargoimport/pkg/errors"
	"github.com/matzehuels/cargoimport/pkg/index"
	pkgio "github.com/matzehuels/cargoimport/pkg/io"
	"github.com/matzehuels/cargoimport/pkg/observability"
	"github.com/matzehuels/cargoimport/pkg/registry"
)

// Runner executes import runs.
//
// The Runner is stateless except for the filesystem and logger - it doesn't
// store pipeline results. Each Run owns its own accumulator.
type Runner struct {
	// FS is the index filesystem. When nil, each run opens Options.IndexDir
	// on the host filesystem.
	FS     billy.Filesystem
	Logger *log.Logger
}

// NewRunner creates a runner reading from fs.
// If logger is nil, log.Default() is used.
func NewRunner(fs billy.Filesystem, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		FS:     fs,
		Logger: logger,
	}
}

// Run discovers, parses and merges the index files selected by opts.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger()

	fs, err := r.filesystem(opts)
	if err != nil {
		return nil, err
	}

	// Stage 1: Discover
	files, err := index.Discover(fs, opts.Pattern)
	observability.Pipeline().OnDiscover(ctx, opts.Pattern, len(files), err)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered index files", "pattern", opts.Pattern, "files", len(files))
	if len(files) == 0 {
		logger.Warn("no index files matched", "pattern", opts.Pattern, "root", fs.Root())
	}

	// Stage 2 and 3: Parse each file and fold it in discovery order
	parseStart := time.Now()
	parser := &index.Parser{Namer: registry.Namer{Namespace: opts.Namespace}}
	builder := registry.NewBuilder(opts.Merge)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("import interrupted: %w", err)
		}

		observability.Pipeline().OnParseStart(ctx, path)
		start := time.Now()
		partial, err := parser.ParseFile(fs, path)
		observability.Pipeline().OnParseComplete(ctx, path, partial.Stats().Versions, time.Since(start), err)
		if err != nil {
			return nil, err
		}
		logger.Debug("parsed index file", "path", path, "packages", len(partial))

		builder.Add(partial)
	}

	reg := builder.Registry()
	collisions := builder.Collisions()
	for _, c := range collisions {
		logger.Warn("package found in more than one index file",
			"package", c.Name,
			"merge", opts.Merge,
			"dropped", len(c.Dropped),
			"overridden", len(c.Overridden))
	}
	observability.Pipeline().OnMerge(ctx, len(reg), len(collisions))

	result := &Result{
		Registry:   reg,
		Files:      files,
		Collisions: collisions,
		Stats: Stats{
			Stats:     reg.Stats(),
			Files:     len(files),
			ParseTime: time.Since(parseStart),
		},
	}

	logger.Info("imported index",
		"files", result.Stats.Files,
		"packages", result.Stats.Packages,
		"versions", result.Stats.Versions,
		"duration", result.Stats.ParseTime)

	return result, nil
}

// Write serializes reg to w. Nothing reaches w unless the whole registry
// encodes.
func (r *Runner) Write(ctx context.Context, w io.Writer, reg registry.Registry, f pkgio.Format) error {
	start := time.Now()
	cw := &countingWriter{w: w}
	err := pkgio.WriteRegistry(cw, reg, f)
	observability.Pipeline().OnEncode(ctx, f.String(), cw.n, time.Since(start), err)
	if err != nil {
		return err
	}
	r.logger().Debug("wrote registry", "format", f, "bytes", cw.n)
	return nil
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

func (r *Runner) filesystem(opts Options) (billy.Filesystem, error) {
	if r.FS != nil {
		return r.FS, nil
	}
	dir := opts.IndexDir
	if dir == "" {
		dir = DefaultIndexDir()
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDiscovery, err, "index root %s", dir)
	}
	if !fi.IsDir() {
		return nil, errors.New(errors.ErrCodeDiscovery, "index root %s is not a directory", dir)
	}
	return osfs.New(dir), nil
}
