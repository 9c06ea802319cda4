// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	Long: `Init writes a complete sample configuration to the --config path
(default conf/config.yaml). Geometry is in inches and the caption font size
in points. An existing file is left alone unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		force, _ := cmd.Flags().GetBool("force")

		if err := config.WriteSample(cfgPath, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", cfgPath)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing configuration file")

	rootCmd.AddCommand(initCmd)
}
