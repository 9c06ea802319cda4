// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import "github.com/pdiddy/deckgen/pkg/types"

// Alignment is a paragraph alignment.
type Alignment string

const (
	AlignLeft   Alignment = "l"
	AlignCenter Alignment = "ctr"
	AlignRight  Alignment = "r"
)

// Font describes the run properties applied to a cell's text.
type Font struct {
	// Name is the typeface, applied to Latin and East Asian text.
	Name  string
	Size  types.Length
	Bold  bool
	Color *Color
}

// Border is a solid line drawn on a cell edge.
type Border struct {
	Color Color
	Width types.Length
}

// Cell is one table cell. Zero fields leave the table style in charge.
type Cell struct {
	Text  string
	Fill  *Color
	Align Alignment
	Font  Font

	left, right, top, bottom *Border
}

// SetBorder draws the same border on all four edges of the cell.
func (c *Cell) SetBorder(b Border) {
	c.left, c.right, c.top, c.bottom = &b, &b, &b, &b
}

// Table is a table placed on a slide.
type Table struct {
	id      int
	name    string
	frame   types.Rect
	styleID string
	cells   [][]*Cell
}

func newTable(id int, name string, rows, cols int, frame types.Rect) *Table {
	cells := make([][]*Cell, rows)
	for r := range cells {
		cells[r] = make([]*Cell, cols)
		for c := range cells[r] {
			cells[r][c] = &Cell{}
		}
	}
	return &Table{id: id, name: name, frame: frame, cells: cells}
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return len(t.cells) }

// Cols returns the number of columns.
func (t *Table) Cols() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Cell returns the cell at row r, column c. It panics when out of range.
func (t *Table) Cell(r, c int) *Cell { return t.cells[r][c] }

// Cells calls fn for every cell in row-major order.
func (t *Table) Cells(fn func(r, c int, cell *Cell)) {
	for r, row := range t.cells {
		for c, cell := range row {
			fn(r, c, cell)
		}
	}
}

// SetStyleID sets the table style GUID written to tblPr, including the braces.
func (t *Table) SetStyleID(id string) { t.styleID = id }

func (t *Table) element() any {
	rows, cols := t.Rows(), t.Cols()

	grid := make([]xGridCol, cols)
	for i := range grid {
		grid[i] = xGridCol{W: int64(t.frame.CX) / int64(cols)}
	}

	trs := make([]xTr, rows)
	for r := range trs {
		trs[r] = xTr{H: int64(t.frame.CY) / int64(rows)}
		for _, cell := range t.cells[r] {
			trs[r].Tc = append(trs[r].Tc, cell.toXML())
		}
	}

	return &xGraphicFrame{
		NvGraphicFramePr: xNvGraphicFramePr{
			CNvPr:             xCNvPr{ID: t.id, Name: t.name},
			CNvGraphicFramePr: xCNvGraphicFramePr{Locks: xLocks{NoGrp: 1}},
		},
		Xfrm: *xfrm(t.frame),
		Graphic: xGraphic{GraphicData: xGraphicData{
			URI: uriTable,
			Tbl: xTbl{
				TblPr:   xTblPr{FirstRow: 1, BandRow: 1, TableStyleID: t.styleID},
				TblGrid: xTblGrid{GridCol: grid},
				Tr:      trs,
			},
		}},
	}
}

func (c *Cell) toXML() xTc {
	rpr := xRPr{Lang: "en-US", Sz: c.Font.Size.Centipoints()}
	if c.Font.Bold {
		rpr.B = 1
	}
	if c.Font.Color != nil {
		rpr.SolidFill = solidFill(*c.Font.Color)
	}
	if c.Font.Name != "" {
		rpr.Latin = &xFont{Typeface: c.Font.Name}
		rpr.EA = &xFont{Typeface: c.Font.Name}
	}

	p := xP{R: []xR{{RPr: rpr, T: c.Text}}}
	if c.Align != "" {
		p.PPr = &xPPr{Algn: string(c.Align)}
	}

	tc := xTc{
		TxBody: xTxBody{P: []xP{p}},
		TcPr: xTcPr{
			LnL: borderLine(c.left),
			LnR: borderLine(c.right),
			LnT: borderLine(c.top),
			LnB: borderLine(c.bottom),
		},
	}
	if c.Fill != nil {
		tc.TcPr.SolidFill = solidFill(*c.Fill)
	}
	return tc
}

func borderLine(b *Border) *xLn {
	if b == nil {
		return nil
	}
	return &xLn{
		W:         int64(b.Width),
		Cap:       "flat",
		Cmpd:      "sng",
		Algn:      "ctr",
		SolidFill: solidFill(b.Color),
		PrstDash:  &xVal{Val: "solid"},
		Round:     &struct{}{},
		HeadEnd:   &xLineEnd{Type: "none", W: "med", Len: "med"},
		TailEnd:   &xLineEnd{Type: "none", W: "med", Len: "med"},
	}
}
