package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avnlabs/gsgraph/pkg/gsdoc"
	"github.com/avnlabs/gsgraph/pkg/hash32"
)

// decodeCommand creates the "decode" command: read an ADF container from a
// file and print the assembled Document as JSON.
func (c *CLI) decodeCommand() *cobra.Command {
	var (
		dictPath string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode an ADF container into a Document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			progress := newProgress(c.Logger)

			if dictPath == "" {
				dictPath = c.Config.Dictionary.Path
			}
			hash32.Init(loadExtraDictionary(dictPath))

			buf, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			doc, err := gsdoc.DecodeContainer(buf)
			if err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}
			progress.done(fmt.Sprintf("Decoded %s", path))
			printStats(len(doc.Nodes), len(doc.Edges), false)

			encoded, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encode document: %w", err)
			}

			if output == "" {
				fmt.Println(string(encoded))
				return nil
			}
			if err := os.WriteFile(output, encoded, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVar(&dictPath, "dictionary", "", "path to an extra newline-separated identifier dictionary")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to this file instead of stdout")
	return cmd
}

// loadExtraDictionary reads a newline-separated identifier list from path,
// or returns nil if path is empty or unreadable — an unreadable extra
// dictionary degrades hash resolution, it never aborts decoding.
func loadExtraDictionary(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
