// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import "encoding/xml"

// Structures in this file are marshal-only. Element names carry their
// namespace prefix literally so the output uses the a:, p: and r: prefixes
// that PowerPoint expects; reading goes through the namespace-aware
// structures in read_types.go.

// --- package parts ---

type xContentTypes struct {
	XMLName   xml.Name    `xml:"Types"`
	Xmlns     string      `xml:"xmlns,attr"`
	Defaults  []xDefault  `xml:"Default"`
	Overrides []xOverride `xml:"Override"`
}

type xDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xRelationships struct {
	XMLName xml.Name        `xml:"Relationships"`
	Xmlns   string          `xml:"xmlns,attr"`
	Rels    []xRelationship `xml:"Relationship"`
}

type xRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xPresentation struct {
	XMLName         xml.Name `xml:"p:presentation"`
	XmlnsA          string   `xml:"xmlns:a,attr"`
	XmlnsR          string   `xml:"xmlns:r,attr"`
	XmlnsP          string   `xml:"xmlns:p,attr"`
	SaveSubsetFonts int      `xml:"saveSubsetFonts,attr"`
	MasterIDs       xIDList  `xml:"p:sldMasterIdLst"`
	SlideIDs        *xIDList `xml:"p:sldIdLst,omitempty"`
	SlideSize       xSlideSz `xml:"p:sldSz"`
	NotesSize       xNotesSz `xml:"p:notesSz"`
}

type xIDList struct {
	Master []xID `xml:"p:sldMasterId,omitempty"`
	Slide  []xID `xml:"p:sldId,omitempty"`
}

type xID struct {
	ID  int64  `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type xSlideSz struct {
	Cx   int64  `xml:"cx,attr"`
	Cy   int64  `xml:"cy,attr"`
	Type string `xml:"type,attr,omitempty"`
}

type xNotesSz struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xCoreProps struct {
	XMLName      xml.Name `xml:"cp:coreProperties"`
	XmlnsCP      string   `xml:"xmlns:cp,attr"`
	XmlnsDC      string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms string   `xml:"xmlns:dcterms,attr"`
	XmlnsDCMI    string   `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI     string   `xml:"xmlns:xsi,attr"`
	Title        string   `xml:"dc:title,omitempty"`
	Creator      string   `xml:"dc:creator,omitempty"`
	Created      xW3CDate `xml:"dcterms:created"`
	Modified     xW3CDate `xml:"dcterms:modified"`
}

type xW3CDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type xAppProps struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	XmlnsVT     string   `xml:"xmlns:vt,attr"`
	Application string   `xml:"Application"`
	Slides      int      `xml:"Slides"`
}

// --- slide ---

type xSlide struct {
	XMLName   xml.Name   `xml:"p:sld"`
	XmlnsA    string     `xml:"xmlns:a,attr"`
	XmlnsR    string     `xml:"xmlns:r,attr"`
	XmlnsP    string     `xml:"xmlns:p,attr"`
	CSld      xCSld      `xml:"p:cSld"`
	ClrMapOvr xClrMapOvr `xml:"p:clrMapOvr"`
}

type xCSld struct {
	SpTree xSpTree `xml:"p:spTree"`
}

// xSpTree holds shapes in z-order. Each element of Shapes names itself
// through its XMLName field.
type xSpTree struct {
	NvGrpSpPr xNvGrpSpPr `xml:"p:nvGrpSpPr"`
	GrpSpPr   xGrpSpPr   `xml:"p:grpSpPr"`
	Shapes    []any
}

type xNvGrpSpPr struct {
	CNvPr      xCNvPr   `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       xNvPr    `xml:"p:nvPr"`
}

type xGrpSpPr struct {
	Xfrm xGroupXfrm `xml:"a:xfrm"`
}

type xGroupXfrm struct {
	Off   xPoint `xml:"a:off"`
	Ext   xSize  `xml:"a:ext"`
	ChOff xPoint `xml:"a:chOff"`
	ChExt xSize  `xml:"a:chExt"`
}

type xClrMapOvr struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

type xCNvPr struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr,omitempty"`
}

type xNvPr struct {
	Ph *xPh `xml:"p:ph,omitempty"`
}

type xPh struct {
	Type string `xml:"type,attr,omitempty"`
}

type xPoint struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type xSize struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xXfrm struct {
	Off xPoint `xml:"a:off"`
	Ext xSize  `xml:"a:ext"`
}

type xPrstGeom struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type xSolidFill struct {
	SrgbClr xSrgbClr `xml:"a:srgbClr"`
}

type xSrgbClr struct {
	Val string `xml:"val,attr"`
}

func solidFill(c Color) *xSolidFill {
	return &xSolidFill{SrgbClr: xSrgbClr{Val: c.Hex()}}
}

// --- shapes ---

type xSp struct {
	XMLName xml.Name `xml:"p:sp"`
	NvSpPr  xNvSpPr  `xml:"p:nvSpPr"`
	SpPr    xSpPr    `xml:"p:spPr"`
	TxBody  *xTxBody `xml:"p:txBody,omitempty"`
}

type xNvSpPr struct {
	CNvPr   xCNvPr   `xml:"p:cNvPr"`
	CNvSpPr xCNvSpPr `xml:"p:cNvSpPr"`
	NvPr    xNvPr    `xml:"p:nvPr"`
}

type xCNvSpPr struct {
	SpLocks *xLocks `xml:"a:spLocks,omitempty"`
}

type xLocks struct {
	NoGrp          int `xml:"noGrp,attr,omitempty"`
	NoChangeAspect int `xml:"noChangeAspect,attr,omitempty"`
}

type xSpPr struct {
	Xfrm      *xXfrm      `xml:"a:xfrm,omitempty"`
	PrstGeom  *xPrstGeom  `xml:"a:prstGeom,omitempty"`
	SolidFill *xSolidFill `xml:"a:solidFill,omitempty"`
	Ln        *xLn        `xml:"a:ln,omitempty"`
}

type xPic struct {
	XMLName  xml.Name  `xml:"p:pic"`
	NvPicPr  xNvPicPr  `xml:"p:nvPicPr"`
	BlipFill xBlipFill `xml:"p:blipFill"`
	SpPr     xSpPr     `xml:"p:spPr"`
}

type xNvPicPr struct {
	CNvPr    xCNvPr    `xml:"p:cNvPr"`
	CNvPicPr xCNvPicPr `xml:"p:cNvPicPr"`
	NvPr     xNvPr     `xml:"p:nvPr"`
}

type xCNvPicPr struct {
	PicLocks xLocks `xml:"a:picLocks"`
}

type xBlipFill struct {
	Blip    xBlip    `xml:"a:blip"`
	Stretch xStretch `xml:"a:stretch"`
}

type xBlip struct {
	Embed string `xml:"r:embed,attr"`
}

type xStretch struct {
	FillRect struct{} `xml:"a:fillRect"`
}

type xGraphicFrame struct {
	XMLName          xml.Name          `xml:"p:graphicFrame"`
	NvGraphicFramePr xNvGraphicFramePr `xml:"p:nvGraphicFramePr"`
	Xfrm             xXfrm             `xml:"p:xfrm"`
	Graphic          xGraphic          `xml:"a:graphic"`
}

type xNvGraphicFramePr struct {
	CNvPr             xCNvPr             `xml:"p:cNvPr"`
	CNvGraphicFramePr xCNvGraphicFramePr `xml:"p:cNvGraphicFramePr"`
	NvPr              xNvPr              `xml:"p:nvPr"`
}

type xCNvGraphicFramePr struct {
	Locks xLocks `xml:"a:graphicFrameLocks"`
}

type xGraphic struct {
	GraphicData xGraphicData `xml:"a:graphicData"`
}

type xGraphicData struct {
	URI string `xml:"uri,attr"`
	Tbl xTbl   `xml:"a:tbl"`
}

// --- text ---

type xTxBody struct {
	BodyPr   xBodyPr  `xml:"a:bodyPr"`
	LstStyle struct{} `xml:"a:lstStyle"`
	P        []xP     `xml:"a:p"`
}

type xBodyPr struct {
	Anchor string `xml:"anchor,attr,omitempty"`
}

type xP struct {
	PPr        *xPPr `xml:"a:pPr,omitempty"`
	R          []xR  `xml:"a:r"`
	EndParaRPr *xRPr `xml:"a:endParaRPr,omitempty"`
}

type xPPr struct {
	Algn string `xml:"algn,attr,omitempty"`
}

type xR struct {
	RPr xRPr   `xml:"a:rPr"`
	T   string `xml:"a:t"`
}

type xRPr struct {
	Lang      string      `xml:"lang,attr,omitempty"`
	Sz        int         `xml:"sz,attr,omitempty"`
	B         int         `xml:"b,attr,omitempty"`
	SolidFill *xSolidFill `xml:"a:solidFill,omitempty"`
	Latin     *xFont      `xml:"a:latin,omitempty"`
	EA        *xFont      `xml:"a:ea,omitempty"`
}

type xFont struct {
	Typeface string `xml:"typeface,attr"`
}

// --- table ---

type xTbl struct {
	TblPr   xTblPr   `xml:"a:tblPr"`
	TblGrid xTblGrid `xml:"a:tblGrid"`
	Tr      []xTr    `xml:"a:tr"`
}

type xTblPr struct {
	FirstRow     int    `xml:"firstRow,attr,omitempty"`
	BandRow      int    `xml:"bandRow,attr,omitempty"`
	TableStyleID string `xml:"a:tableStyleId,omitempty"`
}

type xTblGrid struct {
	GridCol []xGridCol `xml:"a:gridCol"`
}

type xGridCol struct {
	W int64 `xml:"w,attr"`
}

type xTr struct {
	H  int64 `xml:"h,attr"`
	Tc []xTc `xml:"a:tc"`
}

type xTc struct {
	TxBody xTxBody `xml:"a:txBody"`
	TcPr   xTcPr   `xml:"a:tcPr"`
}

// xTcPr lists borders before the fill, as the schema requires.
type xTcPr struct {
	LnL       *xLn        `xml:"a:lnL,omitempty"`
	LnR       *xLn        `xml:"a:lnR,omitempty"`
	LnT       *xLn        `xml:"a:lnT,omitempty"`
	LnB       *xLn        `xml:"a:lnB,omitempty"`
	SolidFill *xSolidFill `xml:"a:solidFill,omitempty"`
}

type xLn struct {
	W         int64       `xml:"w,attr,omitempty"`
	Cap       string      `xml:"cap,attr,omitempty"`
	Cmpd      string      `xml:"cmpd,attr,omitempty"`
	Algn      string      `xml:"algn,attr,omitempty"`
	SolidFill *xSolidFill `xml:"a:solidFill,omitempty"`
	PrstDash  *xVal       `xml:"a:prstDash,omitempty"`
	Round     *struct{}   `xml:"a:round,omitempty"`
	HeadEnd   *xLineEnd   `xml:"a:headEnd,omitempty"`
	TailEnd   *xLineEnd   `xml:"a:tailEnd,omitempty"`
}

type xVal struct {
	Val string `xml:"val,attr"`
}

type xLineEnd struct {
	Type string `xml:"type,attr"`
	W    string `xml:"w,attr"`
	Len  string `xml:"len,attr"`
}
