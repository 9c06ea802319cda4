// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/pkg/types"
)

// writePNG writes a small solid PNG and returns its path.
func writePNG(t *testing.T, dir, name string, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))
	return p
}

// roundTrip writes p to memory and reads it back.
func roundTrip(t *testing.T, p *Presentation) *Document {
	t.Helper()
	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	doc, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return doc
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "C6D9F1", RGB(0xC6, 0xD9, 0xF1).Hex())
	assert.Equal(t, "000000", Black.Hex())
	assert.Equal(t, "FF0000", Red.Hex())
}

func TestEmptyPresentation(t *testing.T) {
	p := New()
	doc := roundTrip(t, p)

	assert.Empty(t, doc.Slides)
	assert.Equal(t, types.Length(9144000), doc.SlideWidth)
	assert.Equal(t, types.Length(6858000), doc.SlideHeight)
}

func TestSlideTitle(t *testing.T) {
	p := New()
	s := p.AddSlide()
	s.SetTitle("Cohort A", true)
	p.AddSlide().SetTitle("Cohort B", false)

	doc := roundTrip(t, p)
	require.Len(t, doc.Slides, 2)

	assert.Equal(t, 1, doc.Slides[0].Number)
	assert.Equal(t, "Title Only", doc.Slides[0].Layout)
	assert.Equal(t, "Cohort A", doc.Slides[0].Title)
	assert.True(t, doc.Slides[0].TitleBold)
	assert.Equal(t, "Cohort B", doc.Slides[1].Title)
	assert.False(t, doc.Slides[1].TitleBold)
	assert.Equal(t, 1, doc.Slides[0].Count(KindPlaceholder))
}

func TestAddPicture(t *testing.T) {
	dir := t.TempDir()
	red := writePNG(t, dir, "a.png", color.RGBA{R: 255, A: 255})
	sameRed := writePNG(t, dir, "b.png", color.RGBA{R: 255, A: 255})
	blue := writePNG(t, dir, "c.png", color.RGBA{B: 255, A: 255})

	frame := types.Rect{X: types.Inches(1), Y: types.Inches(2), CX: types.Inches(2.5), CY: types.Inches(3)}

	p := New()
	s1 := p.AddSlide()
	require.NoError(t, s1.AddPicture(red, frame))
	require.NoError(t, s1.AddPicture(sameRed, frame))
	s2 := p.AddSlide()
	require.NoError(t, s2.AddPicture(blue, frame))
	require.NoError(t, s2.AddPicture(red, frame))

	// Identical bytes share one media part across the package.
	assert.Len(t, p.media.items, 2)

	doc := roundTrip(t, p)
	require.Len(t, doc.Slides, 2)

	pics := doc.Slides[0].Shapes[1:]
	require.Len(t, pics, 2)
	for _, pic := range pics {
		assert.Equal(t, KindPicture, pic.Kind)
		assert.Equal(t, frame, pic.Frame)
		assert.Equal(t, "ppt/media/image1.png", pic.Image)
	}
	assert.Equal(t, "ppt/media/image2.png", doc.Slides[1].Shapes[1].Image)
	assert.Equal(t, "ppt/media/image1.png", doc.Slides[1].Shapes[2].Image)
}

func TestAddPicture_Errors(t *testing.T) {
	dir := t.TempDir()
	notImage := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(notImage, []byte("plain text"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "absent.png")},
		{name: "not an image", path: notImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New().AddSlide()
			err := s.AddPicture(tt.path, types.Rect{CX: 10, CY: 10})
			require.Error(t, err)
			assert.Equal(t, 1, s.ShapeCount())
		})
	}
}

func TestAddOval(t *testing.T) {
	frame := types.Rect{X: 100, Y: 200, CX: types.Inches(0.2), CY: types.Inches(0.2)}

	p := New()
	s := p.AddSlide()
	s.AddOval(frame, Red, Red)
	assert.Equal(t, 2, s.ShapeCount())

	doc := roundTrip(t, p)
	oval := doc.Slides[0].Shapes[1]
	assert.Equal(t, KindShape, oval.Kind)
	assert.Equal(t, "ellipse", oval.Geometry)
	assert.Equal(t, "FF0000", oval.Fill)
	assert.Equal(t, "FF0000", oval.Line)
	assert.Equal(t, frame, oval.Frame)
}

func TestAddTable(t *testing.T) {
	frame := types.Rect{X: types.Inches(1), Y: types.Inches(5), CX: types.Inches(2.5), CY: types.Inches(0.5)}
	fill := RGB(0xC6, 0xD9, 0xF1)

	p := New()
	s := p.AddSlide()
	tbl := s.AddTable(2, 2, frame)
	tbl.SetStyleID("{2D5ABB26-0587-4C30-8999-92F81FD0307C}")
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, 2, tbl.Cols())

	tbl.Cells(func(r, c int, cell *Cell) {
		cell.Fill = &fill
		cell.Align = AlignCenter
		cell.Font = Font{Name: "Calibri", Size: types.Points(7), Color: &Black}
		cell.SetBorder(Border{Color: fill, Width: 3175})
	})
	tbl.Cell(0, 0).Text = "约3厘米1/径"
	tbl.Cell(0, 1).Text = "A"
	tbl.Cell(1, 0).Text = "年龄5"
	tbl.Cell(1, 1).Text = "S-01"

	doc := roundTrip(t, p)
	tables := doc.Slides[0].Tables()
	require.Len(t, tables, 1)

	got := tables[0]
	assert.Equal(t, frame, got.Frame)
	assert.Equal(t, "{2D5ABB26-0587-4C30-8999-92F81FD0307C}", got.StyleID)
	require.Len(t, got.Cells, 2)
	require.Len(t, got.Cells[0], 2)

	texts := [][]string{
		{got.Cells[0][0].Text, got.Cells[0][1].Text},
		{got.Cells[1][0].Text, got.Cells[1][1].Text},
	}
	assert.Equal(t, [][]string{{"约3厘米1/径", "A"}, {"年龄5", "S-01"}}, texts)

	for _, row := range got.Cells {
		for _, cell := range row {
			assert.Equal(t, "C6D9F1", cell.Fill)
			assert.Equal(t, "ctr", cell.Align)
			assert.Equal(t, "Calibri", cell.Font)
			assert.Equal(t, 700, cell.Size)
			assert.Equal(t, "000000", cell.Color)
			assert.Equal(t, []string{"C6D9F1/3175", "C6D9F1/3175", "C6D9F1/3175", "C6D9F1/3175"}, cell.Borders)
			assert.False(t, cell.Bold)
		}
	}
}

func TestWriteTo_Deterministic(t *testing.T) {
	build := func() []byte {
		p := New()
		p.Title = "Deck"
		p.Modified = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		s := p.AddSlide()
		s.SetTitle("T", true)
		s.AddOval(types.Rect{CX: 10, CY: 10}, Red, Red)
		var buf bytes.Buffer
		_, err := p.WriteTo(&buf)
		require.NoError(t, err)
		return buf.Bytes()
	}

	p := New()
	p.AddSlide()
	parts, err := p.parts()
	require.NoError(t, err)
	assert.Equal(t, "[Content_Types].xml", parts[0].name)

	names := make(map[string]bool)
	for _, part := range parts {
		assert.False(t, names[part.name], "duplicate part %s", part.name)
		names[part.name] = true
	}
	for _, want := range []string{
		"ppt/presentation.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	} {
		assert.True(t, names[want], "missing part %s", want)
	}

	a, b := build(), build()
	docA, err := Read(bytes.NewReader(a), int64(len(a)))
	require.NoError(t, err)
	docB, err := Read(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)
	assert.Equal(t, docA, docB)
}

func TestOpen(t *testing.T) {
	p := New()
	p.AddSlide().SetTitle("On disk", true)

	path := filepath.Join(t.TempDir(), "deck.pptx")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = p.WriteTo(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	doc, err := Open(path)
	require.NoError(t, err)
	require.Len(t, doc.Slides, 1)
	assert.Equal(t, "On disk", doc.Slides[0].Title)

	_, err = Open(filepath.Join(t.TempDir(), "absent.pptx"))
	assert.Error(t, err)
}
