package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/glance/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the editor bridge",
	Long: `Serve listens for review requests from editors:

  POST /api/v1/review  {"code": "...", "question": "...", "mode": "modal|inline"}
  GET  /health`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		srv := server.NewServer(s.cfg.Server.Addr, s.client, s.opts, s.logger)
		fmt.Fprintf(cmd.ErrOrStderr(), "Listening on http://%s\n", s.cfg.Server.Addr)
		if err := srv.Run(cmd.Context()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default 127.0.0.1:7419)")
	addPromptFlags(serveCmd)
}
