package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cargoimport/pkg/desugar"
	"github.com/matzehuels/cargoimport/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, "  "+styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Import Summary
// =============================================================================

// printSummary prints what an import produced. It goes to stderr so that it
// never mixes with the registry on stdout.
func printSummary(w io.Writer, result *pipeline.Result) {
	s := result.Stats
	printSuccess(w, "Imported %s packages", StyleNumber.Render(fmt.Sprint(s.Packages)))
	printKeyValue(w, "files", fmt.Sprint(s.Files))
	printKeyValue(w, "versions", fmt.Sprint(s.Versions))
	printKeyValue(w, "edges", fmt.Sprint(s.Edges))
	if n := len(result.Collisions); n > 0 {
		printWarning(w, "%d packages appear in more than one registry", n)
		for _, c := range result.Collisions {
			printDetail(w, "%s: %d versions dropped, %d overridden", c.Name, len(c.Dropped), len(c.Overridden))
		}
	}
}

// =============================================================================
// Desugar Report
// =============================================================================

// printExplanation prints one rewritten requirement:
//
//	^1.0, >= 1.2.0 → ^1.2.0  (caret-floor)
func printExplanation(w io.Writer, r desugar.Result) {
	fmt.Fprintln(w, StyleValue.Render(r.Input)+" "+StyleDim.Render(iconArrow)+" "+
		StyleHighlight.Render(r.Output)+"  "+StyleDim.Render("("+r.Rule+")"))
}
