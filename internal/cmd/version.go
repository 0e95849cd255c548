package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version, commit, build date, and build information for lasso.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "lasso version %s\n", versionInfo.Version)
		fmt.Fprintf(out, "  commit: %s\n", versionInfo.Commit)
		fmt.Fprintf(out, "  built: %s\n", versionInfo.Date)
		fmt.Fprintf(out, "  built by: %s\n", versionInfo.BuiltBy)
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
