// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptx writes and reads the small subset of PresentationML that
// deckgen needs: title-only slides holding pictures, oval shapes and
// tables. New packages start from a bundled template with one master, one
// title-only layout and one theme.
package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Presentation is an in-memory presentation package under construction.
// It is not safe for concurrent use.
type Presentation struct {
	// Title and Creator fill the package's core properties.
	Title   string
	Creator string

	// Modified stamps the core properties. Zero means the time of writing.
	Modified time.Time

	width  types.Length
	height types.Length
	slides []*Slide
	media  *mediaStore
}

// New returns an empty presentation built on the bundled template.
func New() *Presentation {
	return &Presentation{
		Creator: "deckgen",
		width:   defaultSlideWidth,
		height:  defaultSlideHeight,
		media:   newMediaStore(),
	}
}

// SlideSize returns the slide width and height.
func (p *Presentation) SlideSize() (w, h types.Length) {
	return p.width, p.height
}

// Slides returns the slides in presentation order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// AddSlide appends a slide using the title-only layout. The slide starts
// with an empty title placeholder.
func (p *Presentation) AddSlide() *Slide {
	s := newSlide(p, len(p.slides)+1)
	p.slides = append(p.slides, s)
	return s
}

// WriteTo serialises the package as a zip archive.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts, err := p.parts()
	if err != nil {
		return cw.n, err
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return cw.n, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finishing archive: %w", err)
	}
	return cw.n, nil
}

type part struct {
	name string
	data []byte
}

// parts renders every package part in archive order.
func (p *Presentation) parts() ([]part, error) {
	var out []part
	add := func(name string, v any) error {
		data, err := marshalPart(v)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", name, err)
		}
		out = append(out, part{name: name, data: data})
		return nil
	}

	if err := add("[Content_Types].xml", p.contentTypes()); err != nil {
		return nil, err
	}
	if err := add("_rels/.rels", packageRels()); err != nil {
		return nil, err
	}
	if err := add("docProps/core.xml", p.coreProps()); err != nil {
		return nil, err
	}
	if err := add("docProps/app.xml", p.appProps()); err != nil {
		return nil, err
	}
	if err := add("ppt/presentation.xml", p.presentationXML()); err != nil {
		return nil, err
	}
	if err := add("ppt/_rels/presentation.xml.rels", p.presentationRels()); err != nil {
		return nil, err
	}

	for _, tp := range templateParts {
		data, err := readTemplatePart(tp)
		if err != nil {
			return nil, err
		}
		out = append(out, part{name: tp.name, data: data})
	}

	for _, s := range p.slides {
		if err := add(s.partName(), s.toXML()); err != nil {
			return nil, err
		}
		if err := add(s.relsPartName(), s.relsXML()); err != nil {
			return nil, err
		}
	}

	for _, m := range p.media.items {
		out = append(out, part{name: m.partName(), data: m.data})
	}
	return out, nil
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

func (p *Presentation) contentTypes() xContentTypes {
	ct := xContentTypes{
		Xmlns: nsContentTypes,
		Defaults: []xDefault{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []xOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctExtendedProps},
		},
	}

	seen := make(map[string]bool)
	for _, m := range p.media.items {
		if !seen[m.format.ext] {
			seen[m.format.ext] = true
			ct.Defaults = append(ct.Defaults, xDefault{Extension: m.format.ext, ContentType: m.format.contentType})
		}
	}

	for _, tp := range templateParts {
		if tp.contentType != "" {
			ct.Overrides = append(ct.Overrides, xOverride{PartName: "/" + tp.name, ContentType: tp.contentType})
		}
	}
	for _, s := range p.slides {
		ct.Overrides = append(ct.Overrides, xOverride{PartName: "/" + s.partName(), ContentType: ctSlide})
	}
	return ct
}

func packageRels() xRelationships {
	return xRelationships{
		Xmlns: nsPackageRels,
		Rels: []xRelationship{
			{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
			{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
		},
	}
}

func (p *Presentation) coreProps() xCoreProps {
	ts := p.Modified
	if ts.IsZero() {
		ts = time.Now()
	}
	stamp := xW3CDate{Type: "dcterms:W3CDTF", Value: ts.UTC().Format(time.RFC3339)}
	return xCoreProps{
		XmlnsCP:      nsCoreProps,
		XmlnsDC:      nsDC,
		XmlnsDCTerms: nsDCTerms,
		XmlnsDCMI:    nsDCMIType,
		XmlnsXSI:     nsXSI,
		Title:        p.Title,
		Creator:      p.Creator,
		Created:      stamp,
		Modified:     stamp,
	}
}

func (p *Presentation) appProps() xAppProps {
	return xAppProps{
		Xmlns:       nsExtendedProps,
		XmlnsVT:     nsDocPropsVTypes,
		Application: "deckgen",
		Slides:      len(p.slides),
	}
}

// Fixed relationship IDs in ppt/_rels/presentation.xml.rels. Slides follow
// from firstSlideRel on.
const (
	relIDMaster      = "rId1"
	relIDTheme       = "rId2"
	relIDPresProps   = "rId3"
	relIDTableStyles = "rId4"
	firstSlideRel    = 5
)

func slideRelID(i int) string {
	return fmt.Sprintf("rId%d", firstSlideRel+i)
}

func (p *Presentation) presentationXML() xPresentation {
	x := xPresentation{
		XmlnsA:          nsDrawingML,
		XmlnsR:          nsRelationships,
		XmlnsP:          nsPresentationML,
		SaveSubsetFonts: 1,
		MasterIDs:       xIDList{Master: []xID{{ID: masterID, RID: relIDMaster}}},
		SlideSize:       xSlideSz{Cx: int64(p.width), Cy: int64(p.height), Type: "screen4x3"},
		NotesSize:       xNotesSz{Cx: int64(p.height), Cy: int64(p.width)},
	}
	if len(p.slides) > 0 {
		ids := make([]xID, len(p.slides))
		for i := range p.slides {
			ids[i] = xID{ID: int64(firstSlideID + i), RID: slideRelID(i)}
		}
		x.SlideIDs = &xIDList{Slide: ids}
	}
	return x
}

func (p *Presentation) presentationRels() xRelationships {
	rels := xRelationships{
		Xmlns: nsPackageRels,
		Rels: []xRelationship{
			{ID: relIDMaster, Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml"},
			{ID: relIDTheme, Type: relTheme, Target: "theme/theme1.xml"},
			{ID: relIDPresProps, Type: relPresProps, Target: "presProps.xml"},
			{ID: relIDTableStyles, Type: relTableStyles, Target: "tableStyles.xml"},
		},
	}
	for i, s := range p.slides {
		rels.Rels = append(rels.Rels, xRelationship{
			ID:     slideRelID(i),
			Type:   relSlide,
			Target: path.Join("slides", path.Base(s.partName())),
		})
	}
	return rels
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
