package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/cargoimport/pkg/io"
	"github.com/matzehuels/cargoimport/pkg/registry"
	"github.com/matzehuels/cargoimport/pkg/render/nodelink"
)

// graphCommand creates the graph command, which draws the imported registry
// as a Graphviz diagram.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		flags    importFlags
		format   string
		input    string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Draw the registry as a dependency graph",
		Long: `Graph imports the index (or reads a registry written earlier with --input)
and prints one node per package with an edge to each dependency of the
package's highest version.

Output is Graphviz DOT by default, or SVG with --format svg.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := nodelink.ParseFormat(format)
			if err != nil {
				return err
			}

			ctx := c.startRun(cmd)
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			var reg registry.Registry
			if input != "" {
				reg, err = pkgio.ImportRegistry(input)
				if err != nil {
					return err
				}
				logger.Debug("read registry", "path", input, "packages", len(reg))
			} else {
				opts, err := flags.options(cmd)
				if err != nil {
					return err
				}
				result, err := c.newRunner(logger).Run(ctx, opts)
				if err != nil {
					return err
				}
				reg = result.Registry
			}

			data, err := nodelink.Render(ctx, reg, f, nodelink.Options{Detailed: detailed})
			if err != nil {
				return fmt.Errorf("render graph: %w", err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("write graph: %w", err)
			}
			prog.done(fmt.Sprintf("Rendered %d packages as %s", len(reg), f))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", string(nodelink.FormatDOT), "output format: dot or svg")
	cmd.Flags().StringVarP(&input, "input", "i", "", "read a registry file instead of importing the index")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with versions and edges with ranges")

	return cmd
}
