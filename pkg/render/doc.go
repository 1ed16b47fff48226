// Package render visualizes demand graphs.
//
// # Overview
//
// This package turns the first-round demand graph of a problem into visual
// outputs:
//
//   - Graphviz DOT source via [ToDOT]
//   - SVG via [RenderSVG]
//
// # Usage
//
// Convert a demand graph to DOT format, then render to SVG:
//
//	demand, err := ttc.DemandGraph(prefs, ends, priority)
//	dot := render.ToDOT(demand, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Agents whose top preference is out of reach are drawn with a grey fill so
// the cycles that will actually trade stand out.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package render
