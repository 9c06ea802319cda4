// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Rect is an axis-aligned rectangle on a slide, in EMU.
type Rect struct {
	X  Length `json:"x" yaml:"x"`
	Y  Length `json:"y" yaml:"y"`
	CX Length `json:"cx" yaml:"cx"`
	CY Length `json:"cy" yaml:"cy"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() Length { return r.X + r.CX }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() Length { return r.Y + r.CY }

// Center returns the rectangle's center point.
func (r Rect) Center() (x, y Length) {
	return r.X + r.CX/2, r.Y + r.CY/2
}

// Contains reports whether the point lies strictly inside r.
func (r Rect) Contains(x, y Length) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}
