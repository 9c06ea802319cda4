// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/config"
	"github.com/pdiddy/deckgen/internal/index"
	"github.com/pdiddy/deckgen/internal/layout"
	"github.com/pdiddy/deckgen/internal/render"
	"github.com/pdiddy/deckgen/internal/report"
	"github.com/pdiddy/deckgen/internal/table"
	"github.com/pdiddy/deckgen/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the slide deck described by the configuration file",
	Long: `Build loads the configuration, reads the subject table, lays the
subjects out num_in_slide to a slide, renders every picture with its marker
and caption table, and writes the deck to result_path.

Any missing image aborts the run; no deck is written in that case. When
index_path is configured, every placement is also recorded for lookup.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Bool("no-progress", false, "disable the progress bar")
	buildCmd.Flags().String("deck", "", "deck name in the placement index (default: result file name)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	deckName, _ := cmd.Flags().GetString("deck")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if t := config.ConfiguredTemplate(cfgPath); t != "" && t != cfg.TemplatePath {
		slog.Warn("template_path is ignored; using the bundled template", "configured", t)
	}
	slog.Debug("Loaded configuration", "path", cfgPath, "per_slide", cfg.NumInSlide)

	tbl, err := table.Read(cfg.ListTablePath)
	if err != nil {
		return err
	}
	slog.Info("Read subject table", "path", cfg.ListTablePath, "sheet", tbl.Sheet,
		"subjects", len(tbl.Subjects), "skipped", tbl.Skipped)

	plan, err := layout.Build(tbl.Subjects, cfg)
	if err != nil {
		return err
	}
	slog.Debug("Planned layout", "slides", plan.SlideCount())

	var opts []render.Option
	if !noProgress && plan.Len() > 0 {
		bar, err := startProgress(cmd.ErrOrStderr(), plan.Len())
		if err != nil {
			return err
		}
		defer bar.stop()
		opts = append(opts, render.WithProgress(bar))
	}

	pres, err := render.Render(plan, tbl.Labels, cfg, opts...)
	if err != nil {
		return err
	}

	n, err := report.Write(pres, cfg.ResultPath)
	if err != nil {
		return err
	}
	slog.Info("Saved deck", "path", cfg.ResultPath, "bytes", n)

	if cfg.IndexPath != "" {
		if deckName == "" {
			deckName = strings.TrimSuffix(filepath.Base(cfg.ResultPath), filepath.Ext(cfg.ResultPath))
		}
		if err := recordPlacements(cmd, cfg, deckName, tbl.Labels, plan); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d slides, %d subjects (%d rows skipped)\n",
		cfg.ResultPath, plan.SlideCount(), plan.Len(), tbl.Skipped)
	return nil
}

func recordPlacements(cmd *cobra.Command, cfg types.Config, deck string, labels types.HeaderLabels, plan layout.Plan) error {
	store, err := index.Open(cfg.IndexPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rows := index.Placements(deck, plan, func(s types.Subject) string {
		return captionText(render.Caption(labels, s))
	})
	if err := store.Record(cmd.Context(), deck, rows); err != nil {
		return err
	}
	slog.Info("Recorded placements", "index", cfg.IndexPath, "deck", deck, "rows", len(rows))
	return nil
}

// captionText flattens caption cells row by row.
func captionText(cells [2][2]string) string {
	flat := make([]string, 0, 4)
	for _, row := range cells {
		for _, c := range row {
			flat = append(flat, strings.ReplaceAll(c, "\n", " "))
		}
	}
	return strings.Join(flat, " | ")
}

// progressBar adapts a pterm progress bar to render.Progress.
type progressBar struct {
	bar *pterm.ProgressbarPrinter
}

func startProgress(w io.Writer, total int) (*progressBar, error) {
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Rendering subjects").
		WithWriter(w).
		Start()
	if err != nil {
		return nil, fmt.Errorf("starting progress bar: %w", err)
	}
	return &progressBar{bar: bar}, nil
}

func (p *progressBar) Step() { p.bar.Increment() }

func (p *progressBar) stop() {
	if p.bar.IsActive {
		p.bar.Stop()
	}
}
