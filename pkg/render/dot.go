package render

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/cyclelab/tradecycle/pkg/ttc"
)

// Options configures demand graph rendering.
type Options struct {
	// Detailed includes the held object in node labels.
	// When false, only the agent name is shown.
	Detailed bool
}

// ToDOT converts a demand graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Unsatisfied agents (whose top preference is held by someone else) are
// rendered with a grey fill to distinguish them from agents already holding
// a top choice.
func ToDOT[A cmp.Ordered](d ttc.Demand[A], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph demand {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, a := range slices.Sorted(maps.Keys(d.Edges)) {
		label := fmtLabel(d, a, opts.Detailed)
		attrs := fmtAttrs(d, a, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", fmt.Sprint(a), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, a := range slices.Sorted(maps.Keys(d.Edges)) {
		for _, to := range d.Edges[a] {
			fmt.Fprintf(&buf, "  %q -> %q;\n", fmt.Sprint(a), fmt.Sprint(to))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel[A cmp.Ordered](d ttc.Demand[A], a A, detailed bool) string {
	name := fmt.Sprint(a)
	if !detailed {
		return name
	}
	return name + "\nholds: " + d.Holding[a]
}

func fmtAttrs[A cmp.Ordered](d ttc.Demand[A], a A, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if d.Unsatisfied[a] {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
