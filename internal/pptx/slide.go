// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"fmt"
	"path/filepath"

	"github.com/pdiddy/deckgen/pkg/types"
)

// element is anything that can sit in a slide's shape tree.
type element interface {
	element() any
}

// Slide is one slide of a Presentation. Shapes are kept in the order they
// were added, which is also their z-order.
type Slide struct {
	pres   *Presentation
	number int
	nextID int

	title    *xSp
	elements []element

	rels      []xRelationship
	mediaRels map[*media]string
}

func newSlide(p *Presentation, number int) *Slide {
	s := &Slide{
		pres:      p,
		number:    number,
		nextID:    2,
		mediaRels: make(map[*media]string),
		rels: []xRelationship{
			{ID: "rId1", Type: relSlideLayout, Target: layoutPartTarget},
		},
	}
	s.title = &xSp{
		NvSpPr: xNvSpPr{
			CNvPr:   xCNvPr{ID: s.newID(), Name: "Title 1"},
			CNvSpPr: xCNvSpPr{SpLocks: &xLocks{NoGrp: 1}},
			NvPr:    xNvPr{Ph: &xPh{Type: "title"}},
		},
		TxBody: &xTxBody{P: []xP{{EndParaRPr: &xRPr{Lang: "en-US"}}}},
	}
	s.elements = append(s.elements, spElement{s.title})
	return s
}

// Number returns the slide's 1-based position.
func (s *Slide) Number() int { return s.number }

// ShapeCount returns the number of shapes on the slide, title placeholder
// included.
func (s *Slide) ShapeCount() int { return len(s.elements) }

func (s *Slide) newID() int {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Slide) partName() string {
	return fmt.Sprintf("ppt/slides/slide%d.xml", s.number)
}

func (s *Slide) relsPartName() string {
	return fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", s.number)
}

// SetTitle replaces the text of the title placeholder.
func (s *Slide) SetTitle(text string, bold bool) {
	rpr := xRPr{Lang: "en-US"}
	if bold {
		rpr.B = 1
	}
	s.title.TxBody.P = []xP{{R: []xR{{RPr: rpr, T: text}}}}
}

// AddPicture embeds the image file at path and places it in frame. The
// image must exist and be PNG, JPEG, GIF, BMP or TIFF.
func (s *Slide) AddPicture(imagePath string, frame types.Rect) error {
	data, format, cfg, err := loadImage(imagePath)
	if err != nil {
		return err
	}
	m := s.pres.media.add(data, format, cfg)

	rid, ok := s.mediaRels[m]
	if !ok {
		rid = fmt.Sprintf("rId%d", len(s.rels)+1)
		s.rels = append(s.rels, xRelationship{ID: rid, Type: relImage, Target: "../media/" + m.name})
		s.mediaRels[m] = rid
	}

	id := s.newID()
	pic := &xPic{
		NvPicPr: xNvPicPr{
			CNvPr:    xCNvPr{ID: id, Name: fmt.Sprintf("Picture %d", id-1), Descr: filepath.Base(imagePath)},
			CNvPicPr: xCNvPicPr{PicLocks: xLocks{NoChangeAspect: 1}},
		},
		BlipFill: xBlipFill{Blip: xBlip{Embed: rid}},
		SpPr: xSpPr{
			Xfrm:     xfrm(frame),
			PrstGeom: &xPrstGeom{Prst: "rect"},
		},
	}
	s.elements = append(s.elements, picElement{pic})
	return nil
}

// AddOval draws an ellipse filling frame with a solid fill and outline.
func (s *Slide) AddOval(frame types.Rect, fill, line Color) {
	id := s.newID()
	sp := &xSp{
		NvSpPr: xNvSpPr{
			CNvPr: xCNvPr{ID: id, Name: fmt.Sprintf("Oval %d", id-1)},
		},
		SpPr: xSpPr{
			Xfrm:      xfrm(frame),
			PrstGeom:  &xPrstGeom{Prst: "ellipse"},
			SolidFill: solidFill(fill),
			Ln:        &xLn{SolidFill: solidFill(line)},
		},
		TxBody: &xTxBody{
			BodyPr: xBodyPr{Anchor: "ctr"},
			P:      []xP{{PPr: &xPPr{Algn: string(AlignCenter)}, EndParaRPr: &xRPr{Lang: "en-US"}}},
		},
	}
	s.elements = append(s.elements, spElement{sp})
}

// AddTable places a rows x cols table in frame. Columns share the width
// and rows share the height evenly.
func (s *Slide) AddTable(rows, cols int, frame types.Rect) *Table {
	id := s.newID()
	t := newTable(id, fmt.Sprintf("Table %d", id-1), rows, cols, frame)
	s.elements = append(s.elements, t)
	return t
}

func (s *Slide) toXML() xSlide {
	shapes := make([]any, len(s.elements))
	for i, e := range s.elements {
		shapes[i] = e.element()
	}
	return xSlide{
		XmlnsA: nsDrawingML,
		XmlnsR: nsRelationships,
		XmlnsP: nsPresentationML,
		CSld: xCSld{SpTree: xSpTree{
			NvGrpSpPr: xNvGrpSpPr{CNvPr: xCNvPr{ID: 1, Name: ""}},
			Shapes:    shapes,
		}},
	}
}

func (s *Slide) relsXML() xRelationships {
	return xRelationships{Xmlns: nsPackageRels, Rels: s.rels}
}

func xfrm(r types.Rect) *xXfrm {
	return &xXfrm{
		Off: xPoint{X: int64(r.X), Y: int64(r.Y)},
		Ext: xSize{Cx: int64(r.CX), Cy: int64(r.CY)},
	}
}

type spElement struct{ sp *xSp }

func (e spElement) element() any { return e.sp }

type picElement struct{ pic *xPic }

func (e picElement) element() any { return e.pic }
