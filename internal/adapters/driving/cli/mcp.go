package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/mcp"
)

var (
	mcpScreen string
	mcpFollow bool
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can extract
ingredient lists and read scan history.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  eatwise mcp serve

  # HTTP mode
  eatwise mcp serve --port 8080

  # Let start_scan read a file, rescanning it on every change
  eatwise mcp serve --screen label.html --follow

Client configuration:
  {
    "mcpServers": {
      "eatwise": {
        "command": "/path/to/eatwise",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpScreen, "screen", "", "file or file:// URI to bind as the active screen")
	mcpServeCmd.Flags().BoolVar(&mcpFollow, "follow", false, "rescan the screen whenever it changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Extract: extractService,
		Scan:    scanService,
		History: historyService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	detach, err := attachScreen(ctx, mcpScreen, mcpFollow)
	if err != nil {
		return err
	}
	defer detach()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
