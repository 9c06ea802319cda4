// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error categories. Every failure returned by the pipeline wraps exactly one
// of these; none of them is recoverable and the run stops at the first one.
var (
	// ErrConfig covers a missing or malformed configuration file and
	// missing or unconvertible keys.
	ErrConfig = errors.New("configuration error")

	// ErrData covers an unreadable workbook, a missing sheet, and a header
	// row that cannot produce captions.
	ErrData = errors.New("data error")

	// ErrResource covers a missing or unusable subject image and an
	// unwritable output path.
	ErrResource = errors.New("resource error")
)
