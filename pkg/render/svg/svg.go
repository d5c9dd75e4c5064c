// Package svg renders a computed layout to a standalone SVG document.
//
// The output draws exactly what the engine produced: node boxes at their
// computed positions, labels centered in the boxes, and edge polylines with
// arrowheads. It exists for visual inspection, not production frames.
package svg

import (
	"bytes"
	"fmt"
	"html"

	"github.com/narravis/narravis/pkg/graph"
)

// Options configures SVG rendering.
type Options struct {
	// Width and Height set the SVG canvas. Zero values size the canvas to
	// the layout bounds plus a small border.
	Width  float64
	Height float64

	// ShowMetrics adds a small overlay with confidence and overlap count.
	ShowMetrics bool
}

const (
	boundsBorder = 20.0
	fontSize     = 13.0
	cornerRadius = 6.0
)

// Render draws a layout as a standalone SVG document.
func Render(l graph.Layout, opts Options) []byte {
	w, h := opts.Width, opts.Height
	if w == 0 || h == 0 {
		w = l.Bounds.MaxX + boundsBorder
		h = l.Bounds.MaxY + boundsBorder
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	buf.WriteString(`  <defs><marker id="arrow" markerWidth="10" markerHeight="8" refX="9" refY="4" orient="auto"><path d="M0,0 L10,4 L0,8 z" fill="#555"/></marker></defs>` + "\n")
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="white"/>`+"\n", w, h)

	// Edges first so boxes draw over the line ends.
	for _, e := range l.Edges {
		if len(e.Points) < 2 {
			continue
		}
		buf.WriteString(`  <polyline points="`)
		for i, p := range e.Points {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%.1f,%.1f", p.X, p.Y)
		}
		buf.WriteString(`" fill="none" stroke="#555" stroke-width="1.5" marker-end="url(#arrow)"/>` + "\n")
		if e.Label != "" {
			mid := e.Points[len(e.Points)/2]
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="%.0f" fill="#777" text-anchor="middle">%s</text>`+"\n",
				(e.Points[0].X+mid.X)/2, (e.Points[0].Y+mid.Y)/2-4, fontSize-2, html.EscapeString(e.Label))
		}
	}

	for _, n := range l.Nodes {
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" fill="#eef3fb" stroke="#3b6ea5" stroke-width="1.5"/>`+"\n",
			n.X, n.Y, n.W, n.H, cornerRadius)
		label := n.Label
		if label == "" {
			label = n.ID
		}
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="%.0f" font-family="sans-serif" fill="#1c2d40" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			n.X+n.W/2, n.Y+n.H/2, fontSize, html.EscapeString(label))
	}

	if opts.ShowMetrics {
		fmt.Fprintf(&buf, `  <text x="8" y="%.0f" font-size="11" font-family="monospace" fill="#999">confidence %.2f, overlaps %d, crossings %d</text>`+"\n",
			h-8, l.Confidence, l.Metrics.OverlapCount, l.Metrics.EdgeCrossings)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
