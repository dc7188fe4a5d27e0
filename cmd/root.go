package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "nx-knip",
	Short: "Generate knip configuration for Nx workspaces",
	Long: `nx-knip inspects the projects and targets of an Nx workspace and composes
a knip configuration from presets: entry points, tool config files and ignores.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addPersistentFlags(RootCmd.PersistentFlags())
}

func addPersistentFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to an nx-knip config file (defaults to .nx-knip.yaml in the current directory)")
	fs.String("root", "", "Workspace root directory")
	fs.String("logs-level", "", "Log level: Trace, Debug, Info, Warning or Off")
	fs.String("logs-file", "", "Log destination: /dev/stderr, /dev/stdout or a file path")
	fs.Bool("debug", false, "Print the merged configuration to stderr before writing it")
}

// Execute runs the root command with ctx. It is called by main.main().
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}
