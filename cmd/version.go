package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gotruss/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotruss",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gotruss v%s\n", version.Version)
		fmt.Fprintln(out, "2D Truss Force Analysis Tool")
		if version.GitCommit != "unknown" {
			fmt.Fprintf(out, "Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
