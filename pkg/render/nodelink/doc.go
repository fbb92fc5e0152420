// Package nodelink renders an imported registry as a node-link diagram.
//
// # Overview
//
// Each package becomes one box. Each runtime dependency of the package's
// highest version becomes an arrow to the dependency's box. Dependencies
// that are not themselves in the registry (the index mirror was partial)
// are drawn with a dashed outline.
//
// # Usage
//
//	dot := nodelink.ToDOT(reg, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels carry the highest version and version count,
//     and edges are labeled with their desugared range
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering and [github.com/Masterminds/semver/v3] to pick the highest
// version of each package.
package nodelink
