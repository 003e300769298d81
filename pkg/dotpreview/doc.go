// Package dotpreview renders a gsdoc.Document as a Graphviz node-link
// diagram, for debugging a decode run without a full viewport. Flow edges
// draw as solid arrows; variable edges draw as dashed arrows, matching the
// distinction the layout engine itself draws between functional flow and
// variable-producing supply.
//
// Convert a Document to DOT, then render to SVG:
//
//	dot := dotpreview.ToDOT(doc)
//	svg, err := dotpreview.RenderSVG(dot)
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package dotpreview
