package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/mcp"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Print the eatwise version together with the Go toolchain, platform,
MCP server version and the history schema version this build migrates to.

Use --short to print only the version string, for scripts.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			cmd.Println(version)
			return
		}
		cmd.Printf("eatwise version %s\n", version)
		cmd.Printf("  go:             %s\n", runtime.Version())
		cmd.Printf("  platform:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
		cmd.Printf("  mcp server:     %s\n", mcp.Version)
		cmd.Printf("  history schema: %d\n", migrations.Latest())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version string")
	rootCmd.AddCommand(versionCmd)
}
