// Package cli implements the cargoimport command-line interface.
//
// Run without a subcommand, cargoimport imports the local crates.io index
// and writes the registry to stdout. The CLI is built using cobra and logs
// through charmbracelet/log on stderr.
//
// # Commands
//
//   - (root): Import the index and write the registry
//   - desugar: Show how version requirements are rewritten
//   - graph: Draw the registry as a Graphviz diagram
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context and tagged with a per-run id.
//
// # Configuration
//
// Import settings are read from $XDG_CONFIG_HOME/cargoimport/config.toml
// (or --config) and overridden by explicitly set flags.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger shared by every command, stamping
// each line with wall-clock time to the hundredth of a second.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress reports how long an import or render took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time, e.g.
// "Wrote registry (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches the run-tagged logger to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger set by withLogger, or log.Default()
// when a command runs without one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
