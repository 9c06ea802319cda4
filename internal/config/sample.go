// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ErrExists is returned by WriteSample when the destination already exists
// and overwriting was not requested.
var ErrExists = errors.New("configuration file already exists")

// SampleFile mirrors the on-disk layout of a configuration file, in the
// units a user writes: inches for geometry and points for the font size.
type SampleFile struct {
	PPT SampleSection `yaml:"ppt"`
}

// SampleSection is the ppt section of SampleFile.
type SampleSection struct {
	ListTablePath      string  `yaml:"list_table_path"`
	ImagePrefixPath    string  `yaml:"image_prefix_path"`
	ImageSuffix        string  `yaml:"image_suffix"`
	ResultPath         string  `yaml:"result_path"`
	PointHorizontalPos float64 `yaml:"point_horizontal_pos"`
	PointVerticalPos   float64 `yaml:"point_vertical_pos"`
	Title              string  `yaml:"title"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Space              float64 `yaml:"space"`
	NumInSlide         int     `yaml:"num_in_slide"`
	TableFontSize      float64 `yaml:"table_font_size"`
	TableFontStyle     string  `yaml:"table_font_style"`
	IndexPath          string  `yaml:"index_path,omitempty"`
}

// Sample returns a complete configuration that Load accepts.
func Sample() SampleFile {
	return SampleFile{PPT: SampleSection{
		ListTablePath:      "data/subjects.xlsx",
		ImagePrefixPath:    "data/images",
		ImageSuffix:        "jpg",
		ResultPath:         "out/result.pptx",
		PointHorizontalPos: 0.5,
		PointVerticalPos:   0.5,
		Title:              "Survey",
		Width:              2.5,
		Height:             3,
		Space:              0.3,
		NumInSlide:         3,
		TableFontSize:      10.5,
		TableFontStyle:     "Microsoft YaHei",
		IndexPath:          "out/placements.db",
	}}
}

// WriteSample writes Sample to path as YAML, creating parent directories.
// An existing file is replaced only when force is set.
func WriteSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, path)
		}
	}

	data, err := yaml.Marshal(Sample())
	if err != nil {
		return fmt.Errorf("marshaling sample configuration: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0o644)
}
