package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/glance/internal/review"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List prompt presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, p := range review.Presets() {
			name := p.Name
			if name == review.DefaultPreset {
				name += " (default)"
			}
			fmt.Fprintf(w, "%s\t%s\n", name, p.Description)
		}
		return w.Flush()
	},
}
