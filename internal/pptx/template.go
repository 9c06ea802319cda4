// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"embed"
	"fmt"
)

//go:embed template/*.xml template/*.rels
var templateFS embed.FS

// Default slide size of the bundled template: 10 in x 7.5 in.
const (
	defaultSlideWidth  = 9144000
	defaultSlideHeight = 6858000
)

// Parts of the bundled template that target slides refer to.
const (
	layoutPartTarget = "../slideLayouts/slideLayout1.xml"
	masterID         = 2147483648
	firstSlideID     = 256
)

// templatePart maps a bundled file to its location in the package.
type templatePart struct {
	src         string
	name        string
	contentType string
}

// templateParts lists the fixed parts copied into every package. The single
// layout is a title-only layout whose title placeholder is inherited from
// the master.
var templateParts = []templatePart{
	{src: "template/slideMaster1.xml", name: "ppt/slideMasters/slideMaster1.xml", contentType: ctSlideMaster},
	{src: "template/slideMaster1.xml.rels", name: "ppt/slideMasters/_rels/slideMaster1.xml.rels"},
	{src: "template/slideLayout1.xml", name: "ppt/slideLayouts/slideLayout1.xml", contentType: ctSlideLayout},
	{src: "template/slideLayout1.xml.rels", name: "ppt/slideLayouts/_rels/slideLayout1.xml.rels"},
	{src: "template/theme1.xml", name: "ppt/theme/theme1.xml", contentType: ctTheme},
	{src: "template/presProps.xml", name: "ppt/presProps.xml", contentType: ctPresProps},
	{src: "template/tableStyles.xml", name: "ppt/tableStyles.xml", contentType: ctTableStyles},
}

func readTemplatePart(p templatePart) ([]byte, error) {
	data, err := templateFS.ReadFile(p.src)
	if err != nil {
		return nil, fmt.Errorf("reading bundled template part %s: %w", p.src, err)
	}
	return data, nil
}
