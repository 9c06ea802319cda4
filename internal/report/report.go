// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report saves a finished presentation to disk. The deck is written
// to a temporary file beside the destination and renamed over it, so the
// destination either holds the complete deck or is left untouched.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Deck is anything that can serialise itself as a presentation package.
type Deck interface {
	io.WriterTo
}

// Write saves deck at path, replacing any existing file. It returns the
// number of bytes written. Failures wrap types.ErrResource.
func Write(deck Deck, path string) (int64, error) {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".deckgen-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("%w: creating temp file in %s: %v", types.ErrResource, dir, err)
	}
	tmpPath := tmpFile.Name()

	n, writeErr := deck.WriteTo(tmpFile)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("%w: writing %s: %v", types.ErrResource, path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("%w: closing temp file: %v", types.ErrResource, closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("%w: setting permissions: %v", types.ErrResource, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("%w: renaming temp file to %s: %v", types.ErrResource, path, err)
	}
	return n, nil
}
