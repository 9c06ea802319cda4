// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/config"
	"github.com/pdiddy/deckgen/internal/index"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [term]",
	Short: "Find where a subject was placed in previously built decks",
	Long: `Lookup searches the placement index for subjects whose serial, image
key or category equals the term, and prints the deck, slide and column of
each match. With --deck and no term it lists one deck's placements.

The index is written by "deckgen build" when index_path is configured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("index", "", "placement index (default: index_path from the configuration)")
	lookupCmd.Flags().String("deck", "", "list every placement of this deck")
	lookupCmd.Flags().String("format", index.FormatText, "output format: text, yaml or json")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	indexPath, _ := cmd.Flags().GetString("index")
	deck, _ := cmd.Flags().GetString("deck")
	format, _ := cmd.Flags().GetString("format")

	if len(args) == 0 && deck == "" {
		return fmt.Errorf("a search term or --deck is required")
	}

	if indexPath == "" {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cfg.IndexPath == "" {
			return fmt.Errorf("no placement index: set index_path in %s or pass --index", cfgPath)
		}
		indexPath = cfg.IndexPath
	}

	store, err := index.Open(indexPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var rows []index.Placement
	if len(args) == 1 {
		rows, err = store.Find(cmd.Context(), args[0])
	} else {
		rows, err = store.Deck(cmd.Context(), deck)
	}
	if err != nil {
		return err
	}

	if len(rows) == 0 && format == index.FormatText {
		fmt.Fprintln(cmd.OutOrStdout(), "No placements found.")
		return nil
	}
	return index.Export(cmd.OutOrStdout(), rows, format)
}
