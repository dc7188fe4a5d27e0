package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cloudposse/nx-knip/pkg/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range presets.Names() {
			marker := ""
			if slices.Contains(presets.DefaultPresets, name) {
				marker = " (default)"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, marker); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(presetsCmd)
}
