package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avnlabs/gsgraph/pkg/dotpreview"
	"github.com/avnlabs/gsgraph/pkg/gsdoc"
	"github.com/avnlabs/gsgraph/pkg/hash32"
)

// renderCommand creates the "render" command: decode a container and write a
// Graphviz DOT or SVG debug preview of the computed layout.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a decoded Document as a DOT or SVG debug preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			hash32.Init(loadExtraDictionary(c.Config.Dictionary.Path))

			buf, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			doc, err := gsdoc.DecodeContainer(buf)
			if err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}
			printStats(len(doc.Nodes), len(doc.Edges), false)

			var out []byte
			switch strings.ToLower(format) {
			case "dot":
				out = []byte(dotpreview.ToDOT(doc))
			case "svg":
				dot := dotpreview.ToDOT(doc)
				svg, err := dotpreview.RenderSVG(dot)
				if err != nil {
					return fmt.Errorf("render svg: %w", err)
				}
				out = svg
			default:
				return fmt.Errorf("unknown format %q, want dot or svg", format)
			}

			if output == "" {
				output = defaultRenderPath(path, format)
			}
			if err := os.WriteFile(output, out, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (defaults to <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: dot or svg")
	return cmd
}

func defaultRenderPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + strings.ToLower(format)
}
