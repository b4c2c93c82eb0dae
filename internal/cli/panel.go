package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/glance/internal/panel"
	"github.com/dshills/glance/internal/review"
	"github.com/dshills/glance/internal/selection"
)

var panelCmd = &cobra.Command{
	Use:   "panel <path[:start-end]>",
	Short: "Open the code and its review side by side",
	Long: `Panel shows the selected code next to a question box. Each send asks
Gemini about the code and shows the answer beside it. A question is required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := selection.ParseSpec(args[0])
		if err != nil {
			return err
		}
		sel, err := selection.FromFile(spec)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		// The panel has nothing to show for an empty selection.
		if strings.TrimSpace(sel.Text) == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), review.MsgNoSelection)
			exitCode = ExitUsageError
			return nil
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		opts := s.opts
		opts.Mode = review.ModeInline
		// Log lines would tear the alternate screen.
		opts.Logger = nil

		if err := panel.Run(cmd.Context(), s.client, sel, opts); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func init() {
	addPromptFlags(panelCmd)
}
