// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout computes where every subject lands in the deck. Placement
// is a pure function of a subject's sequence index and the configured
// geometry: subjects fill slides left to right in a single row, and a new
// slide starts once the current one holds NumInSlide subjects.
package layout

import (
	"fmt"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Fixed geometry shared by every deck.
var (
	// BaseLeft and BaseTop are the top-left corner of the first picture on a slide.
	BaseLeft = types.Inches(0.9)
	BaseTop  = types.Inches(1.8)

	// MarkerDiameter is the width and height of the marker dot.
	MarkerDiameter = types.Inches(0.2)

	// CaptionGap separates a picture from the caption table beneath it.
	CaptionGap = types.Inches(0.15)

	// CaptionHeight is the height of the caption table.
	CaptionHeight = types.Inches(0.5)
)

// Rect is an axis-aligned rectangle on a slide.
type Rect = types.Rect

// Geometry carries everything placement depends on.
type Geometry struct {
	Left, Top     types.Length
	Width, Height types.Length
	Space         types.Length

	// MarkerX and MarkerY are fractions of the picture size, in [0,1].
	MarkerX, MarkerY float64

	MarkerDiameter types.Length
	CaptionGap     types.Length
	CaptionHeight  types.Length

	// PerSlide is the number of subjects a slide holds.
	PerSlide int
}

// GeometryFor derives the placement geometry from a loaded configuration.
func GeometryFor(cfg types.Config) Geometry {
	return Geometry{
		Left:           BaseLeft,
		Top:            BaseTop,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Space:          cfg.Space,
		MarkerX:        types.ClampFraction(cfg.PointHorizontalPos),
		MarkerY:        types.ClampFraction(cfg.PointVerticalPos),
		MarkerDiameter: MarkerDiameter,
		CaptionGap:     CaptionGap,
		CaptionHeight:  CaptionHeight,
		PerSlide:       cfg.NumInSlide,
	}
}

// Placement is the computed position of one subject.
type Placement struct {
	// Index is the subject's position in the input sequence.
	Index int `json:"index" yaml:"index"`

	// Slide is the zero-based slide the subject lands on.
	Slide int `json:"slide" yaml:"slide"`

	// Column is the zero-based position within the slide.
	Column int `json:"column" yaml:"column"`

	Image   Rect `json:"image" yaml:"image"`
	Marker  Rect `json:"marker" yaml:"marker"`
	Caption Rect `json:"caption" yaml:"caption"`
}

// Place computes the placement of the subject at sequence index i.
// g.PerSlide must be positive.
func Place(i int, g Geometry) Placement {
	slide, col := i/g.PerSlide, i%g.PerSlide

	img := Rect{
		X:  g.Left + types.Length(col)*(g.Width+g.Space),
		Y:  g.Top,
		CX: g.Width,
		CY: g.Height,
	}

	return Placement{
		Index:   i,
		Slide:   slide,
		Column:  col,
		Image:   img,
		Marker:  markerRect(img, g),
		Caption: Rect{X: img.X, Y: img.Bottom() + g.CaptionGap, CX: g.Width, CY: g.CaptionHeight},
	}
}

// markerRect places the dot's top-left corner at the configured fraction of
// the picture, pulled back so the dot never crosses the right or bottom edge.
func markerRect(img Rect, g Geometry) Rect {
	d := g.MarkerDiameter
	x := img.X + img.CX.Scale(g.MarkerX)
	y := img.Y + img.CY.Scale(g.MarkerY)
	if limit := img.Right() - d; x > limit && limit >= img.X {
		x = limit
	}
	if limit := img.Bottom() - d; y > limit && limit >= img.Y {
		y = limit
	}
	return Rect{X: x, Y: y, CX: d, CY: d}
}

// Entry pairs a subject with its placement.
type Entry struct {
	Subject   types.Subject `json:"subject" yaml:"subject"`
	Placement Placement     `json:"placement" yaml:"placement"`
}

// Page is the ordered content of one slide.
type Page struct {
	Index   int     `json:"index" yaml:"index"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Plan is the full layout of a deck. It never contains an empty page.
type Plan struct {
	Geometry Geometry `json:"-" yaml:"-"`
	Pages    []Page   `json:"pages" yaml:"pages"`
}

// SlideCount returns the number of slides the plan needs.
func (p Plan) SlideCount() int { return len(p.Pages) }

// Len returns the number of placed subjects.
func (p Plan) Len() int {
	n := 0
	for _, pg := range p.Pages {
		n += len(pg.Entries)
	}
	return n
}

// Entries returns every entry in sequence order.
func (p Plan) Entries() []Entry {
	out := make([]Entry, 0, p.Len())
	for _, pg := range p.Pages {
		out = append(out, pg.Entries...)
	}
	return out
}

// Build places every subject in order. A non-positive NumInSlide wraps
// types.ErrConfig.
func Build(subjects []types.Subject, cfg types.Config) (Plan, error) {
	g := GeometryFor(cfg)
	if g.PerSlide <= 0 {
		return Plan{}, fmt.Errorf("%w: num_in_slide must be positive, got %d", types.ErrConfig, g.PerSlide)
	}

	plan := Plan{Geometry: g}
	for i, s := range subjects {
		p := Place(i, g)
		if p.Column == 0 {
			plan.Pages = append(plan.Pages, Page{Index: p.Slide})
		}
		last := &plan.Pages[len(plan.Pages)-1]
		last.Entries = append(last.Entries, Entry{Subject: s, Placement: p})
	}
	return plan, nil
}
