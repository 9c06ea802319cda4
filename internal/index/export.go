// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"go.yaml.in/yaml/v3"
)

// Output formats understood by Export.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export writes placements to w in the given format.
func Export(w io.Writer, rows []Placement, format string) error {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err

	case FormatJSON:
		if rows == nil {
			rows = []Placement{}
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	case FormatText, "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DECK\tSLIDE\tCOL\tSERIAL\tIMAGE\tCATEGORY\tCAPTION")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
				r.Deck, r.Slide, r.Column, r.Serial, r.ImageKey, r.Category, r.Caption)
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}
