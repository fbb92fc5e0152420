package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoimport/pkg/buildinfo"
	"github.com/matzehuels/cargoimport/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "cargoimport"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// FS overrides the index filesystem. When nil, the index root from
	// flags or config is opened on the host.
	FS billy.Filesystem
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it performs the import and writes the registry
// to standard output.
func (c *CLI) RootCommand() *cobra.Command {
	var flags importFlags

	root := &cobra.Command{
		Use:   appName,
		Short: "Convert a local crates.io index into a consolidated registry",
		Long: `cargoimport reads the crates.io index files cached by cargo under
~/.cargo/registry/index and writes every package, version and runtime
dependency as one registry document.

The registry is MessagePack by default, or indented JSON with --json. It is
written to standard output only if the whole index imported cleanly.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImport(cmd, &flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	flags.register(root)
	root.Flags().BoolVar(&flags.json, "json", false, "write indented JSON instead of MessagePack")

	root.AddCommand(c.desugarCommand())
	root.AddCommand(c.graphCommand())

	return root
}

// =============================================================================
// Import
// =============================================================================

func (c *CLI) runImport(cmd *cobra.Command, flags *importFlags) error {
	opts, err := flags.options(cmd)
	if err != nil {
		return err
	}

	ctx := c.startRun(cmd)
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := c.newRunner(logger)
	result, err := runner.Run(ctx, opts)
	if err != nil {
		return err
	}

	if err := runner.Write(ctx, cmd.OutOrStdout(), result.Registry, opts.Format); err != nil {
		return err
	}
	prog.done("Wrote registry")

	printSummary(cmd.ErrOrStderr(), result)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// startRun tags the logger with a fresh run id and attaches it to the
// command's context.
func (c *CLI) startRun(cmd *cobra.Command) context.Context {
	logger := c.Logger.With("run", uuid.NewString())
	logger.Debug("starting", "command", cmd.Name(), "version", buildinfo.Version, "commit", buildinfo.Commit)
	return withLogger(cmd.Context(), logger)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(logger *log.Logger) *pipeline.Runner {
	return pipeline.NewRunner(c.FS, logger)
}
