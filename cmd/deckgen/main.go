// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deckgen CLI.
// The build command runs the whole pipeline:
// config -> subject table -> layout plan -> slides -> saved deck.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultConfigPath is used when --config is not given.
const defaultConfigPath = "conf/config.yaml"

// rootCmd is the base command for the deckgen CLI.
var rootCmd = &cobra.Command{
	Use:   "deckgen",
	Short: "Build photo survey slide decks from a subject spreadsheet",
	Long: `deckgen reads a workbook of photographed subjects and a directory of
images, then writes a presentation: one title-only slide per page of
num_in_slide subjects, each picture carrying a red marker dot and a 2x2
caption table.

Run "deckgen init" for a sample configuration, then "deckgen build".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
