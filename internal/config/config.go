// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the deck configuration from the ppt section of a
// YAML file.
package config

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Section is the key of the nested configuration block deckgen reads.
const Section = "ppt"

// Configuration keys inside the ppt section.
const (
	KeyListTablePath      = "list_table_path"
	KeyImagePrefixPath    = "image_prefix_path"
	KeyImageSuffix        = "image_suffix"
	KeyResultPath         = "result_path"
	KeyPointHorizontalPos = "point_horizontal_pos"
	KeyPointVerticalPos   = "point_vertical_pos"
	KeyTitle              = "title"
	KeyWidth              = "width"
	KeyHeight             = "height"
	KeySpace              = "space"
	KeyNumInSlide         = "num_in_slide"
	KeyTableFontSize      = "table_font_size"
	KeyTableFontStyle     = "table_font_style"
	KeyTemplatePath       = "template_path"
	KeyIndexPath          = "index_path"
)

// requiredKeys lists the keys that must be present, in the order they are
// reported when missing.
var requiredKeys = []string{
	KeyListTablePath,
	KeyImagePrefixPath,
	KeyImageSuffix,
	KeyResultPath,
	KeyPointHorizontalPos,
	KeyPointVerticalPos,
	KeyTitle,
	KeyWidth,
	KeyHeight,
	KeySpace,
	KeyNumInSlide,
	KeyTableFontSize,
	KeyTableFontStyle,
}

// Load reads the YAML file at path and returns the populated Config.
// Marker fractions are clamped into [0,1]; width, height and space are
// converted from inches and the caption font size from points. Every
// failure wraps types.ErrConfig.
func Load(path string) (types.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return types.Config{}, fmt.Errorf("%w: reading %s: %v", types.ErrConfig, path, err)
	}

	sub := v.Sub(Section)
	if sub == nil {
		return types.Config{}, fmt.Errorf("%w: %s: missing %q section", types.ErrConfig, path, Section)
	}
	return fromSection(sub)
}

// fromSection decodes an already-extracted ppt section.
func fromSection(sub *viper.Viper) (types.Config, error) {
	var missing []string
	for _, key := range requiredKeys {
		if !sub.IsSet(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return types.Config{}, fmt.Errorf("%w: missing required keys %v", types.ErrConfig, missing)
	}

	d := decoder{v: sub}
	cfg := types.Config{
		ListTablePath:      d.str(KeyListTablePath),
		ImagePrefixPath:    d.str(KeyImagePrefixPath),
		ImageSuffix:        d.str(KeyImageSuffix),
		ResultPath:         d.str(KeyResultPath),
		PointHorizontalPos: types.ClampFraction(d.float(KeyPointHorizontalPos)),
		PointVerticalPos:   types.ClampFraction(d.float(KeyPointVerticalPos)),
		Title:              d.str(KeyTitle),
		Width:              types.Inches(d.float(KeyWidth)),
		Height:             types.Inches(d.float(KeyHeight)),
		Space:              types.Inches(d.float(KeySpace)),
		NumInSlide:         d.int(KeyNumInSlide),
		TableFontSize:      types.Points(d.float(KeyTableFontSize)),
		TableFontStyle:     d.str(KeyTableFontStyle),
		// template_path is accepted but the bundled template always wins.
		TemplatePath: types.DefaultTemplatePath,
	}
	if sub.IsSet(KeyIndexPath) {
		cfg.IndexPath = d.str(KeyIndexPath)
	}
	if d.err != nil {
		return types.Config{}, d.err
	}

	if cfg.NumInSlide <= 0 {
		return types.Config{}, fmt.Errorf("%w: %s must be positive, got %d", types.ErrConfig, KeyNumInSlide, cfg.NumInSlide)
	}
	return cfg, nil
}

// ConfiguredTemplate returns the template_path value from the file, if any.
// It exists so callers can warn that the setting has no effect.
func ConfiguredTemplate(path string) string {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return v.GetString(Section + "." + KeyTemplatePath)
}

// decoder converts section values strictly and keeps the first failure.
type decoder struct {
	v   *viper.Viper
	err error
}

func (d *decoder) fail(key string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: %s: %v", types.ErrConfig, key, err)
	}
}

func (d *decoder) str(key string) string {
	s, err := cast.ToStringE(d.v.Get(key))
	if err != nil {
		d.fail(key, err)
	}
	return s
}

func (d *decoder) float(key string) float64 {
	f, err := cast.ToFloat64E(d.v.Get(key))
	if err != nil {
		d.fail(key, err)
	}
	return f
}

func (d *decoder) int(key string) int {
	n, err := cast.ToIntE(d.v.Get(key))
	if err != nil {
		d.fail(key, err)
	}
	return n
}
