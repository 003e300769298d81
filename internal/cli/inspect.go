package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avnlabs/gsgraph/pkg/gsdoc"
	"github.com/avnlabs/gsgraph/pkg/hash32"
)

// inspectCommand creates the "inspect" command: decode a container and
// browse the resulting nodes interactively.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Browse a decoded Document's nodes interactively",
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
			if len(doc.Nodes) == 0 {
				printWarning("%s decoded to zero nodes, nothing to inspect", path)
				return nil
			}

			p := tea.NewProgram(NewNodeListModel(doc))
			_, err = p.Run()
			return err
		},
	}
	return cmd
}
