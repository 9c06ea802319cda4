// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultTemplatePath names the bundled title-only template. It is the only
// template deckgen renders with; a configured template_path is ignored.
const DefaultTemplatePath = "template/template.pptx"

// Config holds the settings read from the ppt section of the configuration
// file. It is loaded once at startup and never modified afterwards.
type Config struct {
	// ListTablePath is the workbook holding the subject rows.
	ListTablePath string `json:"list_table_path" yaml:"list_table_path"`

	// ImagePrefixPath is the directory holding one image per subject.
	ImagePrefixPath string `json:"image_prefix_path" yaml:"image_prefix_path"`

	// ImageSuffix is the image file extension without the dot (e.g. "jpg").
	ImageSuffix string `json:"image_suffix" yaml:"image_suffix"`

	// ResultPath is where the finished deck is written. An existing file is replaced.
	ResultPath string `json:"result_path" yaml:"result_path"`

	// PointHorizontalPos is the marker position as a fraction of image width, in [0,1].
	PointHorizontalPos float64 `json:"point_horizontal_pos" yaml:"point_horizontal_pos"`

	// PointVerticalPos is the marker position as a fraction of image height, in [0,1].
	PointVerticalPos float64 `json:"point_vertical_pos" yaml:"point_vertical_pos"`

	// Title is the text placed in the title placeholder of every slide.
	Title string `json:"title" yaml:"title"`

	// Width and Height size every picture; Space separates neighbouring pictures.
	Width  Length `json:"width" yaml:"width"`
	Height Length `json:"height" yaml:"height"`
	Space  Length `json:"space" yaml:"space"`

	// NumInSlide is the maximum number of subjects on one slide.
	NumInSlide int `json:"num_in_slide" yaml:"num_in_slide"`

	// TableFontSize and TableFontStyle set the caption font.
	TableFontSize  Length `json:"table_font_size" yaml:"table_font_size"`
	TableFontStyle string `json:"table_font_style" yaml:"table_font_style"`

	// TemplatePath is always DefaultTemplatePath.
	TemplatePath string `json:"template_path" yaml:"template_path"`

	// IndexPath, when set, names a SQLite database that records where each
	// subject was placed.
	IndexPath string `json:"index_path,omitempty" yaml:"index_path,omitempty"`
}

// ClampFraction limits a marker fraction to [0,1]. Out-of-range values are
// moved to the nearest bound without error.
func ClampFraction(f float64) float64 {
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}
