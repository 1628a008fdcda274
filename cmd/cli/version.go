package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		version, gitCommit, ok := common.GetModuleBuildInfo()
		if !ok {
			fmt.Println("hubman version unknown")
			return
		}

		fmt.Printf("hubman %s", version)
		if len(gitCommit) > 0 {
			fmt.Printf(" (git: %s)", gitCommit)
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
