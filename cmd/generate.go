package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	errUtils "github.com/cloudposse/nx-knip/errors"
	cfg "github.com/cloudposse/nx-knip/pkg/config"
	"github.com/cloudposse/nx-knip/pkg/knip"
	log "github.com/cloudposse/nx-knip/pkg/logger"
	"github.com/cloudposse/nx-knip/pkg/plugin"
	"github.com/cloudposse/nx-knip/pkg/presets"
	u "github.com/cloudposse/nx-knip/pkg/utils"
	"github.com/cloudposse/nx-knip/pkg/workspace"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the knip configuration",
	Long:  `Read the Nx project graph, run the enabled presets and print the merged knip configuration.`,
	Example: `nx-knip generate
nx-knip generate --preset nx-standards --preset vitest --format yaml
nx-knip generate --graph-file graph.json --output knip.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), cmd.Flags(), cmd.OutOrStdout())
	},
}

func init() {
	addGenerateFlags(generateCmd.Flags())
	RootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(fs *pflag.FlagSet) {
	fs.String("source", "", "Where to read the project graph: auto, graph-file, project-files or nx")
	fs.String("graph-file", "", "Output of `nx graph --file`, relative to the workspace root")
	fs.StringSlice("preset", nil, "Preset to enable (repeatable)")
	fs.String("format", "", "Output format: json or yaml")
	fs.StringP("output", "o", "", "Write the configuration to this file instead of stdout")
}

func runGenerate(ctx context.Context, flags *pflag.FlagSet, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := flags.GetString("config")
	if err != nil {
		return err
	}

	config, err := cfg.LoadConfig(cfg.LoadOptions{ConfigPath: configPath, Flags: flags})
	if err != nil {
		return errUtils.WithExitCode(err, errUtils.ExitCodeConfig)
	}

	logger, err := log.NewLoggerFromConfig(config)
	if err != nil {
		return errUtils.WithExitCode(err, errUtils.ExitCodeConfig)
	}
	previous := log.Default()
	log.SetDefault(logger)
	defer func() {
		log.SetDefault(previous)
		_ = logger.Close()
	}()

	provider, err := workspace.NewProvider(config.Workspace)
	if err != nil {
		return errUtils.WithExitCode(err, errUtils.ExitCodeConfig)
	}

	plugins, err := presets.Build(config)
	if err != nil {
		return errUtils.WithExitCode(err, errUtils.ExitCodeConfig)
	}

	result, err := plugin.Run(ctx, provider, plugin.RunOptions{
		WorkspaceRoot: config.Workspace.Root,
		Debug:         config.Debug,
	}, plugins...)
	if err != nil {
		return err
	}

	out, err := knip.Encode(result, config.Output.Format)
	if err != nil {
		return err
	}

	if config.Output.File == "" {
		_, err = fmt.Fprint(stdout, out)
		return err
	}

	if err := u.WriteFileAtomic(config.Output.File, []byte(out), 0o644); err != nil {
		return errUtils.Wrap(errUtils.ErrWriteOutput, err).WithContext("file", config.Output.File).Err()
	}
	log.Info("Wrote knip configuration", "file", config.Output.File)
	return nil
}
