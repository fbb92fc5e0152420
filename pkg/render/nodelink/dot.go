package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cargoimport/pkg/registry"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds version information to node labels and the desugared
	// range to edge labels. When false, only the package name is shown.
	Detailed bool
}

// ToDOT converts a registry to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
//
// Output is deterministic: nodes and edges are emitted in lexical order.
func ToDOT(reg registry.Registry, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	names := reg.Names()
	external := make(map[string]bool)
	for _, name := range names {
		latest := Latest(reg[name])
		for dep := range reg[name][latest] {
			if _, ok := reg[dep]; !ok {
				external[dep] = true
			}
		}
	}

	for _, name := range names {
		label := fmtLabel(name, reg[name], opts.Detailed)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", name, label)
	}
	for _, name := range slices.Sorted(maps.Keys(external)) {
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey, fontcolor=black];\n", name, name)
	}

	buf.WriteString("\n")
	for _, name := range names {
		deps := reg[name][Latest(reg[name])]
		for _, dep := range slices.Sorted(maps.Keys(deps)) {
			if opts.Detailed {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", name, dep, deps[dep])
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", name, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(name string, pkg registry.Package, detailed bool) string {
	if !detailed {
		return name
	}
	return fmt.Sprintf("%s\nlatest: %s\nversions: %d", name, Latest(pkg), len(pkg))
}

// Latest returns the highest version of pkg. Versions that are not valid
// semver sort below all valid ones, and among themselves lexically. It
// returns "" for an empty package.
func Latest(pkg registry.Package) string {
	var (
		best    string
		bestVer *semver.Version
	)
	for v := range pkg {
		sv, err := semver.NewVersion(v)
		switch {
		case err != nil && bestVer == nil:
			if v > best {
				best = v
			}
		case err == nil && (bestVer == nil || sv.GreaterThan(bestVer) || (sv.Equal(bestVer) && v > best)):
			best, bestVer = v, sv
		}
	}
	return best
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// Format selects the output of the graph subcommand.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
)

// ParseFormat accepts "dot" or "svg" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDOT, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown graph format %q (want dot or svg)", s)
	}
}

// Render produces the diagram of reg in format f.
func Render(ctx context.Context, reg registry.Registry, f Format, opts Options) ([]byte, error) {
	dot := ToDOT(reg, opts)
	if f == FormatSVG {
		return RenderSVG(ctx, dot)
	}
	return []byte(dot), nil
}
