// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// ShapeKind classifies a shape found on a slide.
type ShapeKind string

const (
	KindPlaceholder ShapeKind = "placeholder"
	KindPicture     ShapeKind = "picture"
	KindShape       ShapeKind = "shape"
	KindTable       ShapeKind = "table"
	KindOther       ShapeKind = "other"
)

// Document is the content of a presentation package as read back from disk.
type Document struct {
	SlideWidth  types.Length   `json:"slide_width" yaml:"slide_width"`
	SlideHeight types.Length   `json:"slide_height" yaml:"slide_height"`
	Slides      []SlideContent `json:"slides" yaml:"slides"`
}

// SlideContent describes one slide.
type SlideContent struct {
	Number    int         `json:"number" yaml:"number"`
	Layout    string      `json:"layout" yaml:"layout"`
	Title     string      `json:"title" yaml:"title"`
	TitleBold bool        `json:"title_bold" yaml:"title_bold"`
	Shapes    []ShapeInfo `json:"shapes" yaml:"shapes"`
}

// Count returns the number of shapes of the given kind.
func (s SlideContent) Count(kind ShapeKind) int {
	n := 0
	for _, sh := range s.Shapes {
		if sh.Kind == kind {
			n++
		}
	}
	return n
}

// Tables returns the slide's tables in z-order.
func (s SlideContent) Tables() []ShapeInfo {
	var out []ShapeInfo
	for _, sh := range s.Shapes {
		if sh.Kind == KindTable {
			out = append(out, sh)
		}
	}
	return out
}

// ShapeInfo describes one shape. Fields that do not apply to the kind are zero.
type ShapeInfo struct {
	Kind        ShapeKind    `json:"kind" yaml:"kind"`
	ID          int          `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Placeholder string       `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Geometry    string       `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	Frame       types.Rect   `json:"frame" yaml:"frame"`
	Fill        string       `json:"fill,omitempty" yaml:"fill,omitempty"`
	Line        string       `json:"line,omitempty" yaml:"line,omitempty"`
	Image       string       `json:"image,omitempty" yaml:"image,omitempty"`
	StyleID     string       `json:"style_id,omitempty" yaml:"style_id,omitempty"`
	Cells       [][]CellInfo `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// CellInfo describes one table cell.
type CellInfo struct {
	Text    string   `json:"text" yaml:"text"`
	Fill    string   `json:"fill,omitempty" yaml:"fill,omitempty"`
	Align   string   `json:"align,omitempty" yaml:"align,omitempty"`
	Bold    bool     `json:"bold,omitempty" yaml:"bold,omitempty"`
	Font    string   `json:"font,omitempty" yaml:"font,omitempty"`
	Size    int      `json:"size,omitempty" yaml:"size,omitempty"`
	Color   string   `json:"color,omitempty" yaml:"color,omitempty"`
	Borders []string `json:"borders,omitempty" yaml:"borders,omitempty"`
}

// Open reads the presentation package at filename.
func Open(filename string) (*Document, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()
	return read(&zr.Reader)
}

// Read reads a presentation package from r.
func Read(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return read(zr)
}

type packageReader struct {
	files map[string]*zip.File
}

func read(zr *zip.Reader) (*Document, error) {
	pr := &packageReader{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		pr.files[f.Name] = f
	}

	var pres rPresentation
	if err := pr.unmarshal("ppt/presentation.xml", &pres); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}
	presRels, err := pr.rels("ppt/presentation.xml")
	if err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	doc := &Document{
		SlideWidth:  types.Length(pres.SldSz.Cx),
		SlideHeight: types.Length(pres.SldSz.Cy),
	}
	for i, id := range pres.SldIDLst.SldID {
		target, ok := presRels[id.RID]
		if !ok {
			return nil, fmt.Errorf("slide %d: relationship %s not found", i+1, id.RID)
		}
		slide, err := pr.slide(target, i+1)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		doc.Slides = append(doc.Slides, slide)
	}
	return doc, nil
}

func (pr *packageReader) unmarshal(name string, v any) error {
	f, ok := pr.files[name]
	if !ok {
		return fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

// rels returns the relationships of a part keyed by ID, with targets
// resolved to package paths. A part without a rels file has none.
func (pr *packageReader) rels(partName string) (map[string]string, error) {
	dir, base := path.Split(partName)
	relsName := dir + "_rels/" + base + ".rels"
	if _, ok := pr.files[relsName]; !ok {
		return map[string]string{}, nil
	}
	var rels rRelationships
	if err := pr.unmarshal(relsName, &rels); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rels.Rels))
	for _, r := range rels.Rels {
		out[r.ID] = path.Join(dir, r.Target)
	}
	return out, nil
}

func (pr *packageReader) slide(partName string, number int) (SlideContent, error) {
	var sx rSlide
	if err := pr.unmarshal(partName, &sx); err != nil {
		return SlideContent{}, err
	}
	rels, err := pr.rels(partName)
	if err != nil {
		return SlideContent{}, err
	}

	sc := SlideContent{Number: number}
	for _, target := range rels {
		if strings.Contains(target, "slideLayouts/") {
			var lx rLayout
			if err := pr.unmarshal(target, &lx); err == nil {
				sc.Layout = lx.CSld.Name
			}
		}
	}

	for _, child := range sx.CSld.SpTree.Children {
		info, ok := shapeInfo(child, rels)
		if !ok {
			continue
		}
		if info.Kind == KindPlaceholder && (info.Placeholder == "title" || info.Placeholder == "ctrTitle") && sc.Title == "" {
			sc.Title, sc.TitleBold = bodyText(child.TxBody)
		}
		sc.Shapes = append(sc.Shapes, info)
	}
	return sc, nil
}

func shapeInfo(sh rShape, rels map[string]string) (ShapeInfo, bool) {
	switch sh.XMLName.Local {
	case "sp":
		info := ShapeInfo{Kind: KindShape}
		if sh.NvSpPr != nil {
			info.ID, info.Name = sh.NvSpPr.CNvPr.ID, sh.NvSpPr.CNvPr.Name
			if ph := sh.NvSpPr.NvPr.Ph; ph != nil {
				info.Kind = KindPlaceholder
				info.Placeholder = ph.Type
			}
		}
		if sh.SpPr != nil {
			applySpPr(&info, sh.SpPr)
		}
		return info, true

	case "pic":
		info := ShapeInfo{Kind: KindPicture}
		if sh.NvPicPr != nil {
			info.ID, info.Name = sh.NvPicPr.CNvPr.ID, sh.NvPicPr.CNvPr.Name
		}
		if sh.SpPr != nil {
			applySpPr(&info, sh.SpPr)
		}
		if sh.BlipFill != nil {
			info.Image = rels[sh.BlipFill.Blip.Embed]
		}
		return info, true

	case "graphicFrame":
		info := ShapeInfo{Kind: KindOther}
		if sh.NvGraphicFramePr != nil {
			info.ID, info.Name = sh.NvGraphicFramePr.CNvPr.ID, sh.NvGraphicFramePr.CNvPr.Name
		}
		if sh.Xfrm != nil {
			info.Frame = frame(sh.Xfrm)
		}
		if sh.Graphic != nil && sh.Graphic.GraphicData.Tbl != nil {
			info.Kind = KindTable
			info.StyleID = sh.Graphic.GraphicData.Tbl.TblPr.TableStyleID
			info.Cells = tableCells(sh.Graphic.GraphicData.Tbl)
		}
		return info, true

	case "grpSp", "cxnSp":
		return ShapeInfo{Kind: KindOther}, true
	}
	// nvGrpSpPr, grpSpPr and extension elements are not shapes.
	return ShapeInfo{}, false
}

func applySpPr(info *ShapeInfo, sp *rSpPr) {
	if sp.Xfrm != nil {
		info.Frame = frame(sp.Xfrm)
	}
	if sp.PrstGeom != nil {
		info.Geometry = sp.PrstGeom.Prst
	}
	info.Fill = fillColor(sp.SolidFill)
	if sp.Ln != nil {
		info.Line = fillColor(sp.Ln.SolidFill)
	}
}

func frame(x *rXfrm) types.Rect {
	return types.Rect{
		X:  types.Length(x.Off.X),
		Y:  types.Length(x.Off.Y),
		CX: types.Length(x.Ext.Cx),
		CY: types.Length(x.Ext.Cy),
	}
}

func fillColor(f *rSolidFill) string {
	if f == nil || f.SrgbClr == nil {
		return ""
	}
	return f.SrgbClr.Val
}

// bodyText joins paragraph text with newlines and reports whether the first
// run is bold.
func bodyText(tb *rTxBody) (string, bool) {
	if tb == nil {
		return "", false
	}
	var paras []string
	bold := false
	first := true
	for _, p := range tb.P {
		var b strings.Builder
		for _, r := range p.R {
			if first {
				bold = r.RPr != nil && isTrue(r.RPr.B)
				first = false
			}
			b.WriteString(r.T)
		}
		paras = append(paras, b.String())
	}
	return strings.Join(paras, "\n"), bold
}

func tableCells(tbl *rTbl) [][]CellInfo {
	out := make([][]CellInfo, len(tbl.Tr))
	for i, tr := range tbl.Tr {
		for _, tc := range tr.Tc {
			out[i] = append(out[i], cellInfo(tc))
		}
	}
	return out
}

func cellInfo(tc rTc) CellInfo {
	text, bold := bodyText(&tc.TxBody)
	ci := CellInfo{Text: text, Bold: bold, Fill: fillColor(tc.TcPr.SolidFill)}

	if len(tc.TxBody.P) > 0 {
		p := tc.TxBody.P[0]
		if p.PPr != nil {
			ci.Align = p.PPr.Algn
		}
		if len(p.R) > 0 && p.R[0].RPr != nil {
			rpr := p.R[0].RPr
			ci.Size = rpr.Sz
			ci.Color = fillColor(rpr.SolidFill)
			if rpr.Latin != nil {
				ci.Font = rpr.Latin.Typeface
			}
		}
	}

	for _, ln := range []*rLn{tc.TcPr.LnL, tc.TcPr.LnR, tc.TcPr.LnT, tc.TcPr.LnB} {
		if ln == nil {
			ci.Borders = append(ci.Borders, "")
			continue
		}
		ci.Borders = append(ci.Borders, fmt.Sprintf("%s/%d", fillColor(ln.SolidFill), ln.W))
	}
	return ci
}

func isTrue(v string) bool {
	return v == "1" || v == "true"
}
