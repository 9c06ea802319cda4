// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// imageFormat describes how a sniffed image format is stored in the package.
type imageFormat struct {
	ext         string
	contentType string
}

// imageFormats maps image.DecodeConfig format names to package extensions.
var imageFormats = map[string]imageFormat{
	"png":  {ext: "png", contentType: "image/png"},
	"jpeg": {ext: "jpeg", contentType: "image/jpeg"},
	"gif":  {ext: "gif", contentType: "image/gif"},
	"bmp":  {ext: "bmp", contentType: "image/bmp"},
	"tiff": {ext: "tiff", contentType: "image/tiff"},
}

// media is one image part. Identical bytes share a part.
type media struct {
	name   string // e.g. "image3.png"
	format imageFormat
	data   []byte
	width  int
	height int
}

// partName returns the media's path inside the package.
func (m *media) partName() string { return "ppt/media/" + m.name }

// loadImage reads an image file and identifies its format from the header.
// Pixels are never decoded.
func loadImage(path string) ([]byte, imageFormat, image.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, imageFormat{}, image.Config{}, err
	}
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, imageFormat{}, image.Config{}, fmt.Errorf("unrecognised image %s: %w", path, err)
	}
	f, ok := imageFormats[name]
	if !ok {
		return nil, imageFormat{}, image.Config{}, fmt.Errorf("image %s: format %s cannot be embedded", path, name)
	}
	return data, f, cfg, nil
}

// mediaStore deduplicates images across a package.
type mediaStore struct {
	byHash map[[sha1.Size]byte]*media
	items  []*media
}

func newMediaStore() *mediaStore {
	return &mediaStore{byHash: make(map[[sha1.Size]byte]*media)}
}

func (s *mediaStore) add(data []byte, f imageFormat, cfg image.Config) *media {
	sum := sha1.Sum(data)
	if m, ok := s.byHash[sum]; ok {
		return m
	}
	m := &media{
		name:   fmt.Sprintf("image%d.%s", len(s.items)+1, f.ext),
		format: f,
		data:   data,
		width:  cfg.Width,
		height: cfg.Height,
	}
	s.byHash[sum] = m
	s.items = append(s.items, m)
	return m
}
