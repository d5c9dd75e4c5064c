// Package dot exports scenes to Graphviz DOT and rasterizes them.
//
// Graphviz computes its own placement from the abstract graph, ignoring the
// engine's geometry. Rendering the same scene through both paths makes
// placement differences easy to eyeball during strategy work.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/narravis/narravis/pkg/graph"
)

// ToDOT converts a scene to Graphviz DOT format. The resulting DOT string
// can be rendered with [RenderSVG] or [RenderPNG].
//
// The archetype picks the Graphviz layout: cycle scenes use circo, flow and
// timeline scenes run left to right, everything else top to bottom.
func ToDOT(s graph.Scene) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")

	switch s.Archetype {
	case "cycle":
		buf.WriteString("  layout=circo;\n")
	case "flow", "timeline":
		buf.WriteString("  rankdir=LR;\n")
	default:
		buf.WriteString("  rankdir=TB;\n")
	}

	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.DisplayLabel())
	}

	buf.WriteString("\n")
	for _, e := range s.Edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
