// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/pkg/types"
)

const validConfig = `ppt:
  list_table_path: data/trees.xlsx
  image_prefix_path: data/images
  image_suffix: jpg
  result_path: out/trees.pptx
  point_horizontal_pos: 0.5
  point_vertical_pos: 0.25
  title: 古树名木
  width: 2.5
  height: 3
  space: 0.3
  num_in_slide: 3
  table_font_size: 10.5
  table_font_style: 微软雅黑
  template_path: custom/template.pptx
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "data/trees.xlsx", cfg.ListTablePath)
	assert.Equal(t, "data/images", cfg.ImagePrefixPath)
	assert.Equal(t, "jpg", cfg.ImageSuffix)
	assert.Equal(t, "out/trees.pptx", cfg.ResultPath)
	assert.Equal(t, 0.5, cfg.PointHorizontalPos)
	assert.Equal(t, 0.25, cfg.PointVerticalPos)
	assert.Equal(t, "古树名木", cfg.Title)
	assert.Equal(t, types.Inches(2.5), cfg.Width)
	assert.Equal(t, types.Inches(3), cfg.Height)
	assert.Equal(t, types.Inches(0.3), cfg.Space)
	assert.Equal(t, 3, cfg.NumInSlide)
	assert.Equal(t, types.Points(10.5), cfg.TableFontSize)
	assert.Equal(t, "微软雅黑", cfg.TableFontStyle)
	assert.Empty(t, cfg.IndexPath)
}

func TestLoad_TemplatePathIgnored(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultTemplatePath, cfg.TemplatePath)
	assert.Equal(t, "custom/template.pptx", ConfiguredTemplate(path))
}

func TestLoad_IndexPath(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig+"  index_path: out/placements.db\n"))
	require.NoError(t, err)
	assert.Equal(t, "out/placements.db", cfg.IndexPath)
}

func TestLoad_ClampsMarkerFractions(t *testing.T) {
	tests := []struct {
		name       string
		horizontal string
		vertical   string
		wantH      float64
		wantV      float64
	}{
		{name: "above one", horizontal: "1.5", vertical: "7", wantH: 1, wantV: 1},
		{name: "below zero", horizontal: "-0.3", vertical: "-2", wantH: 0, wantV: 0},
		{name: "bounds kept", horizontal: "0", vertical: "1", wantH: 0, wantV: 1},
		{name: "mixed", horizontal: "1.5", vertical: "-0.3", wantH: 1, wantV: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Replace(validConfig, "point_horizontal_pos: 0.5", "point_horizontal_pos: "+tt.horizontal, 1)
			content = strings.Replace(content, "point_vertical_pos: 0.25", "point_vertical_pos: "+tt.vertical, 1)

			cfg, err := Load(writeConfig(t, content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantH, cfg.PointHorizontalPos)
			assert.Equal(t, tt.wantV, cfg.PointVerticalPos)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "malformed yaml",
			content: "ppt: [unclosed\n",
			errMsg:  "reading",
		},
		{
			name:    "missing section",
			content: "other:\n  title: x\n",
			errMsg:  `missing "ppt" section`,
		},
		{
			name:    "missing keys",
			content: strings.Replace(validConfig, "  title: 古树名木\n", "", 1),
			errMsg:  "missing required keys [title]",
		},
		{
			name:    "unconvertible number",
			content: strings.Replace(validConfig, "width: 2.5", "width: wide", 1),
			errMsg:  "width",
		},
		{
			name:    "zero per slide",
			content: strings.Replace(validConfig, "num_in_slide: 3", "num_in_slide: 0", 1),
			errMsg:  "num_in_slide must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrConfig)
}

func TestClampFraction(t *testing.T) {
	assert.Equal(t, 1.0, types.ClampFraction(1.5))
	assert.Equal(t, 0.0, types.ClampFraction(-0.3))
	assert.Equal(t, 0.42, types.ClampFraction(0.42))
}
