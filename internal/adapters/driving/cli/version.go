package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-assist/internal/adapters/driving/mcp"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			cmd.Println(version)
			return
		}
		cmd.Printf("sercha-assist version %s\n", version)
		cmd.Printf("  mcp server %s\n", mcp.Version)
		cmd.Printf("  %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version")
	rootCmd.AddCommand(versionCmd)
}
