// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TemplateSeparator splits a size or age header template into the text
// before and after the subject value.
const TemplateSeparator = "\n/"

// Subject is one photographed item, read from a data row of the subject
// table. All fields keep the cell's display text.
type Subject struct {
	// Serial is the row's identification number (column A).
	Serial string `json:"serial" yaml:"serial"`

	// ImageKey names the subject's image file, without extension (column B).
	// Rows with an empty key never become Subjects.
	ImageKey string `json:"image_key" yaml:"image_key"`

	// Category is the subject's kind (column C).
	Category string `json:"category" yaml:"category"`

	// Size is the measured size value (column D).
	Size string `json:"size" yaml:"size"`

	// Age is the estimated age value (column E).
	Age string `json:"age" yaml:"age"`
}

// HeaderLabels holds the caption text taken from the header row of the
// subject table. They are read once and shared by every caption.
type HeaderLabels struct {
	// Serial labels the serial cell (A2).
	Serial string `json:"serial" yaml:"serial"`

	// Category labels the category column (C2).
	Category string `json:"category" yaml:"category"`

	// Size is a "<prefix>\n/<suffix>" template for the size cell (D2).
	Size string `json:"size" yaml:"size"`

	// Age is a "<prefix>\n/<suffix>" template for the age cell (E2).
	Age string `json:"age" yaml:"age"`
}
