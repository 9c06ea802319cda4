// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/internal/config"
	"github.com/pdiddy/deckgen/internal/pptx"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [deck]",
	Short: "Summarise the slides, shapes and captions of a deck",
	Long: `Inspect opens a presentation and prints, per slide, the title, the
number of shapes of each kind and the text of every caption table. Without
an argument it inspects result_path from the configuration file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "text", "output format: text, yaml or json")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		path = cfg.ResultPath
	}

	doc, err := pptx.Open(path)
	if err != nil {
		return fmt.Errorf("opening deck %s: %w", path, err)
	}
	return formatInspectOutput(cmd.OutOrStdout(), path, doc, format)
}

func formatInspectOutput(w io.Writer, path string, doc *pptx.Document, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "text", "":
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml or json", format)
	}

	fmt.Fprintf(w, "%s: %d slides, %.2f x %.2f in\n",
		path, len(doc.Slides), doc.SlideWidth.Inches(), doc.SlideHeight.Inches())
	for _, s := range doc.Slides {
		title := s.Title
		if s.TitleBold {
			title += " (bold)"
		}
		fmt.Fprintf(w, "\nslide %d [%s] %s\n", s.Number, s.Layout, title)
		fmt.Fprintf(w, "  shapes: %d (placeholder %d, picture %d, shape %d, table %d)\n",
			len(s.Shapes),
			s.Count(pptx.KindPlaceholder), s.Count(pptx.KindPicture),
			s.Count(pptx.KindShape), s.Count(pptx.KindTable))
		for i, t := range s.Tables() {
			var cells []string
			for _, row := range t.Cells {
				for _, c := range row {
					cells = append(cells, strings.ReplaceAll(c.Text, "\n", `\n`))
				}
			}
			fmt.Fprintf(w, "  caption %d: %s\n", i+1, strings.Join(cells, " | "))
		}
	}
	return nil
}
