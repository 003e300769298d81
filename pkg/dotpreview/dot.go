package dotpreview

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/avnlabs/gsgraph/pkg/gsdoc"
)

// ToDOT converts a Document to Graphviz DOT source. Node positions from the
// layout engine are passed as fixed coordinates (pos="x,y!"), scaled by 1/8
// and with the y axis flipped, so Graphviz keeps the layout engine's
// arrangement instead of re-laying the graph out itself.
func ToDOT(doc gsdoc.Document) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=10, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	for _, n := range doc.Nodes {
		label := fmt.Sprintf("#%d %s", n.Index, n.ClassName)
		x := n.Position.X / 8
		y := -n.Position.Y / 8
		fmt.Fprintf(&buf, "  %q [label=%q, pos=%q];\n", nodeID(n.Index), label, posAttr(x, y))
	}

	buf.WriteString("\n")
	for _, e := range doc.Edges {
		style := ""
		if e.Kind == "variable" {
			style = " [style=dashed]"
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", nodeID(e.SourceIndex), nodeID(e.TargetIndex), style)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(index int) string {
	return "n" + strconv.Itoa(index)
}

func posAttr(x, y float64) string {
	return fmt.Sprintf("%.2f,%.2f!", x, y)
}

// RenderSVG renders DOT source to SVG using Graphviz, with the fixed-point
// engine (neato honors pos="x,y!" coordinates; dot does not).
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

	g.SetLayout(string(graphviz.NEATO))

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDOT is a convenience that builds and renders in one call.
func RenderDOT(doc gsdoc.Document) (dot string, svg []byte, err error) {
	dot = ToDOT(doc)
	svg, err = RenderSVG(dot)
	return dot, svg, err
}
