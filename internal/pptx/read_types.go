// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import "encoding/xml"

// Unmarshal-only structures. Tags use local names so they match whatever
// prefix the producer chose; relationship attributes carry their namespace.

type rPresentation struct {
	XMLName  xml.Name `xml:"presentation"`
	SldIDLst struct {
		SldID []struct {
			ID  int    `xml:"id,attr"`
			RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
		} `xml:"sldId"`
	} `xml:"sldIdLst"`
	SldSz struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
}

type rRelationships struct {
	XMLName xml.Name `xml:"Relationships"`
	Rels    []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type rLayout struct {
	XMLName xml.Name `xml:"sldLayout"`
	Type    string   `xml:"type,attr"`
	CSld    struct {
		Name string `xml:"name,attr"`
	} `xml:"cSld"`
}

type rSlide struct {
	XMLName xml.Name `xml:"sld"`
	CSld    struct {
		SpTree struct {
			Children []rShape `xml:",any"`
		} `xml:"spTree"`
	} `xml:"cSld"`
}

// rShape is the union of sp, pic and graphicFrame. Which fields are set
// depends on XMLName.Local.
type rShape struct {
	XMLName          xml.Name
	NvSpPr           *rNvPr     `xml:"nvSpPr"`
	NvPicPr          *rNvPr     `xml:"nvPicPr"`
	NvGraphicFramePr *rNvPr     `xml:"nvGraphicFramePr"`
	SpPr             *rSpPr     `xml:"spPr"`
	Xfrm             *rXfrm     `xml:"xfrm"`
	TxBody           *rTxBody   `xml:"txBody"`
	BlipFill         *rBlipFill `xml:"blipFill"`
	Graphic          *rGraphic  `xml:"graphic"`
}

type rNvPr struct {
	CNvPr struct {
		ID   int    `xml:"id,attr"`
		Name string `xml:"name,attr"`
	} `xml:"cNvPr"`
	NvPr struct {
		Ph *struct {
			Type string `xml:"type,attr"`
		} `xml:"ph"`
	} `xml:"nvPr"`
}

type rSpPr struct {
	Xfrm     *rXfrm `xml:"xfrm"`
	PrstGeom *struct {
		Prst string `xml:"prst,attr"`
	} `xml:"prstGeom"`
	SolidFill *rSolidFill `xml:"solidFill"`
	Ln        *rLn        `xml:"ln"`
}

type rXfrm struct {
	Off struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"off"`
	Ext struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"ext"`
}

type rSolidFill struct {
	SrgbClr *struct {
		Val string `xml:"val,attr"`
	} `xml:"srgbClr"`
}

type rLn struct {
	W         int64       `xml:"w,attr"`
	SolidFill *rSolidFill `xml:"solidFill"`
	PrstDash  *struct {
		Val string `xml:"val,attr"`
	} `xml:"prstDash"`
}

type rTxBody struct {
	P []rP `xml:"p"`
}

type rP struct {
	PPr *struct {
		Algn string `xml:"algn,attr"`
	} `xml:"pPr"`
	R []rR `xml:"r"`
}

type rR struct {
	RPr *rRPr  `xml:"rPr"`
	T   string `xml:"t"`
}

type rRPr struct {
	Sz        int         `xml:"sz,attr"`
	B         string      `xml:"b,attr"`
	SolidFill *rSolidFill `xml:"solidFill"`
	Latin     *struct {
		Typeface string `xml:"typeface,attr"`
	} `xml:"latin"`
}

type rBlipFill struct {
	Blip struct {
		Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
	} `xml:"blip"`
}

type rGraphic struct {
	GraphicData struct {
		URI string `xml:"uri,attr"`
		Tbl *rTbl  `xml:"tbl"`
	} `xml:"graphicData"`
}

type rTbl struct {
	TblPr struct {
		TableStyleID string `xml:"tableStyleId"`
	} `xml:"tblPr"`
	Tr []struct {
		Tc []rTc `xml:"tc"`
	} `xml:"tr"`
}

type rTc struct {
	TxBody rTxBody `xml:"txBody"`
	TcPr   struct {
		LnL       *rLn        `xml:"lnL"`
		LnR       *rLn        `xml:"lnR"`
		LnT       *rLn        `xml:"lnT"`
		LnB       *rLn        `xml:"lnB"`
		SolidFill *rSolidFill `xml:"solidFill"`
	} `xml:"tcPr"`
}
