package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avnlabs/gsgraph/pkg/archive"
	"github.com/avnlabs/gsgraph/pkg/cache"
	"github.com/avnlabs/gsgraph/pkg/gsdoc"
	"github.com/avnlabs/gsgraph/pkg/hash32"
)

// archiveCommand creates the "archive" command: decode a container and
// write a record of the run to the configured MongoDB sink.
func (c *CLI) archiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <file>",
		Short: "Decode a container and archive the run to MongoDB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			if c.Config.Archive.URI == "" {
				return fmt.Errorf("archive.uri is not configured")
			}

			hash32.Init(loadExtraDictionary(c.Config.Dictionary.Path))

			buf, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			doc, err := gsdoc.DecodeContainer(buf)
			if err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}

			sink, err := archive.NewSink(ctx, c.Config.Archive.URI, c.Config.Archive.Database, c.Config.Archive.Collection)
			if err != nil {
				return fmt.Errorf("connect archive sink: %w", err)
			}
			defer sink.Close(ctx)

			run := archive.Run{
				ContentHash: cache.Hash(buf),
				DecodedAt:   time.Now(),
				NodeCount:   len(doc.Nodes),
				EdgeCount:   len(doc.Edges),
				Document:    doc,
			}
			if err := sink.Archive(ctx, run); err != nil {
				return fmt.Errorf("archive run: %w", err)
			}

			printSuccess("Archived %s (%d nodes, %d edges)", path, run.NodeCount, run.EdgeCount)
			return nil
		},
	}
	return cmd
}
