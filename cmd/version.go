package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cloudposse/nx-knip/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the CLI version",
	Example: "nx-knip version",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "nx-knip %s on %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)
		return err
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
