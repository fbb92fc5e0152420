package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoimport/pkg/desugar"
)

// desugarCommand creates the desugar command, which shows how version
// requirements are rewritten during an import.
func (c *CLI) desugarCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "desugar <requirement>...",
		Short: "Show how version requirements are rewritten",
		Long: `Desugar rewrites each cargo version requirement exactly as an import would
and prints the result together with the rule that fired.

Requirements that contain spaces must be quoted:

  cargoimport desugar '^1.0, >= 1.2.0' '1.2.*' '~0.3'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(c.startRun(cmd))

			results := make([]desugar.Result, 0, len(args))
			for _, expr := range args {
				r, err := desugar.Explain(expr)
				if err != nil {
					return err
				}
				logger.Debug("desugared requirement", "input", r.Input, "rule", r.Rule, "output", r.Output)
				results = append(results, r)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return fmt.Errorf("write results: %w", err)
				}
				return nil
			}
			for _, r := range results {
				printExplanation(out, r)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}
