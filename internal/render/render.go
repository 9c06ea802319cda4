// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a layout plan into presentation slides. Every slide
// gets the deck title in bold; every subject gets its picture, a marker dot
// and a 2x2 caption table.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/deckgen/internal/layout"
	"github.com/pdiddy/deckgen/internal/pptx"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Caption styling shared by every deck.
var (
	CaptionFill   = pptx.RGB(0xC6, 0xD9, 0xF1)
	CaptionBorder = pptx.Border{Color: pptx.RGB(0xC6, 0xD9, 0xF1), Width: 3175}
	CaptionText   = pptx.Black
	MarkerColor   = pptx.Red
)

// CaptionStyleID is the table style written into every caption table.
const CaptionStyleID = "{2D5ABB26-0587-4C30-8999-92F81FD0307C}"

// Progress receives one Step per rendered subject.
type Progress interface {
	Step()
}

// Option configures Render.
type Option func(*renderer)

// WithProgress reports each rendered subject to p.
func WithProgress(p Progress) Option {
	return func(r *renderer) { r.progress = p }
}

type renderer struct {
	labels   types.HeaderLabels
	cfg      types.Config
	progress Progress
}

// Render builds a presentation holding one slide per plan page. It stops at
// the first subject whose image cannot be embedded; that error wraps
// types.ErrResource.
func Render(plan layout.Plan, labels types.HeaderLabels, cfg types.Config, opts ...Option) (*pptx.Presentation, error) {
	r := &renderer{labels: labels, cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}

	p := pptx.New()
	p.Title = cfg.Title
	for _, page := range plan.Pages {
		slide := p.AddSlide()
		slide.SetTitle(cfg.Title, true)
		for _, e := range page.Entries {
			if err := r.subject(slide, e); err != nil {
				return nil, err
			}
			if r.progress != nil {
				r.progress.Step()
			}
		}
	}
	return p, nil
}

func (r *renderer) subject(slide *pptx.Slide, e layout.Entry) error {
	path := ImagePath(r.cfg, e.Subject)
	if err := slide.AddPicture(path, e.Placement.Image); err != nil {
		return fmt.Errorf("%w: subject %s (row %d): %v", types.ErrResource, e.Subject.Serial, e.Placement.Index+1, err)
	}

	slide.AddOval(e.Placement.Marker, MarkerColor, MarkerColor)

	tbl := slide.AddTable(2, 2, e.Placement.Caption)
	tbl.SetStyleID(CaptionStyleID)
	text := Caption(r.labels, e.Subject)
	font := pptx.Font{Name: r.cfg.TableFontStyle, Size: r.cfg.TableFontSize, Bold: true, Color: &CaptionText}
	tbl.Cells(func(row, col int, cell *pptx.Cell) {
		cell.Text = text[row][col]
		cell.Fill = &CaptionFill
		cell.Align = pptx.AlignCenter
		cell.Font = font
		cell.SetBorder(CaptionBorder)
	})
	return nil
}

// ImagePath returns where the subject's image is expected:
// <image_prefix_path>/<image_key>.<image_suffix>.
func ImagePath(cfg types.Config, s types.Subject) string {
	return cfg.ImagePrefixPath + "/" + s.ImageKey + "." + cfg.ImageSuffix
}

// Caption returns the caption table text for a subject, row by row.
func Caption(labels types.HeaderLabels, s types.Subject) [2][2]string {
	return [2][2]string{
		{labels.Serial + ":" + s.Serial, s.Category},
		{Splice(labels.Size, s.Size), Splice(labels.Age, s.Age)},
	}
}

// Splice inserts value into a "<prefix>\n/<suffix>" template, dropping the
// newline: Splice("约X厘米\n/径", "12") is "约X厘米12/径". A template without
// the separator gets the value appended.
func Splice(template, value string) string {
	prefix, suffix, ok := strings.Cut(template, types.TemplateSeparator)
	if !ok {
		return template + value
	}
	return prefix + value + "/" + suffix
}
