package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/httpapi"
)

var (
	serveAddr   string
	serveScreen string
	serveFollow bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start a local JSON API for extraction, scanning and history.

Endpoints:
  GET    /health
  POST   /v1/extract
  POST   /v1/scan/start
  POST   /v1/scan/stop
  GET    /v1/scan/status
  GET    /v1/history
  DELETE /v1/history
  GET    /v1/history/{id}
  DELETE /v1/history/{id}

Use --screen to bind a file as the active screen so scan/start can read it,
and --follow to rescan it whenever it changes.

Examples:
  eatwise serve --screen label.html
  eatwise serve --addr 127.0.0.1:9000 --screen file:///tmp/page.txt --follow`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", httpapi.DefaultAddr, "listen address")
	serveCmd.Flags().StringVar(&serveScreen, "screen", "", "file or file:// URI to bind as the active screen")
	serveCmd.Flags().BoolVar(&serveFollow, "follow", false, "rescan the screen whenever it changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := httpapi.NewServer(&httpapi.Ports{
		Extract: extractService,
		Scan:    scanService,
		History: historyService,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	detach, err := attachScreen(ctx, serveScreen, serveFollow)
	if err != nil {
		return err
	}
	defer detach()

	if serveScreen != "" {
		cmd.Printf("Screen bound to %s\n", serveScreen)
	}
	cmd.Printf("HTTP API listening on http://%s\n", serveAddr)
	return server.Run(ctx, serveAddr)
}
