// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Length is a distance in English Metric Units, the integer unit used by
// the presentation format for every offset and extent.
type Length int64

const (
	EMU   Length = 1
	Point Length = 12700
	Inch  Length = 914400
)

// Inches converts a length in inches to EMU, truncating toward zero.
func Inches(in float64) Length {
	return Length(in * float64(Inch))
}

// Points converts a length in typographic points to EMU, truncating toward zero.
func Points(pt float64) Length {
	return Length(pt * float64(Point))
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / float64(Inch)
}

// Points returns the length in points.
func (l Length) Points() float64 {
	return float64(l) / float64(Point)
}

// Centipoints returns the length in hundredths of a point, the unit of
// font sizes in run properties.
func (l Length) Centipoints() int {
	return int(l / 127)
}

// Scale multiplies the length by f, truncating toward zero.
func (l Length) Scale(f float64) Length {
	return Length(float64(l) * f)
}
