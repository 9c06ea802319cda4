// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import "fmt"

// Color is an sRGB color.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as six upper-case hex digits, the form srgbClr
// expects.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	Red   = RGB(255, 0, 0)
)
