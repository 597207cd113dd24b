package ir

// ComposeCircleType is the full wire-level enclosing-shape set for a
// Compose character; model.ComposeCircleKind keeps only None/Shape,
// collapsing every concrete shape onto Circle (spec.md §4.K).
type ComposeCircleType int

const (
	ComposeCircleNone ComposeCircleType = iota
	ComposeCircleCircle
	ComposeCircleInvertedCircle
	ComposeCircleRhombus
	ComposeCircleTriangle
)

// AutoNumberType is the wire-level counter kind, including TotalPages,
// which model.AutoNumberType does not have (it maps onto Page).
type AutoNumberType int

const (
	AutoNumberPage AutoNumberType = iota
	AutoNumberFootnote
	AutoNumberEndnote
	AutoNumberPicture
	AutoNumberTable
	AutoNumberEquation
	AutoNumberTotalPages
)

// AutoNumberPayload mirrors model.AutoNumberPayload at full fidelity.
type AutoNumberPayload struct {
	Type         AutoNumberType
	NumberFormat uint8
	UserSuffix   string
}

// NewNumberPayload mirrors model.NewNumberPayload.
type NewNumberPayload struct {
	Type  AutoNumberType
	Start uint16
}

// VideoType is the wire-level source kind, including the YouTube
// distinction model.VideoType collapses onto Web.
type VideoType int

const (
	VideoEmbedded VideoType = iota
	VideoWeb
	VideoYouTube
)

// VideoPayload mirrors model.VideoPayload at full fidelity.
type VideoPayload struct {
	Type      VideoType
	URL       string
	BinDataID uint16
}

// ChartType is the wire-level chart subtype set; model.ChartType keeps
// only the five families every subtype narrows onto.
type ChartType int

const (
	ChartBar ChartType = iota
	ChartLine
	ChartPie
	ChartArea
	ChartScatter
	ChartBubble
	ChartStock
	ChartSurface
	ChartColumn
	ChartDoughnut
)

// ChartPayload mirrors model.ChartPayload at full fidelity.
type ChartPayload struct {
	Type       ChartType
	RawXMLData []byte
}

// TextArtShape is the wire-level outline-shape set; model.TextArtShape
// keeps only the four canonical shapes ArchUp/ArchDown/other narrow onto.
type TextArtShape int

const (
	TextArtRectangle TextArtShape = iota
	TextArtCircle
	TextArtArch
	TextArtWave
	TextArtArchUp
	TextArtArchDown
)

// TextArtPayload mirrors model.TextArtPayload at full fidelity.
type TextArtPayload struct {
	Shape TextArtShape
	Text  string
}

// PicturePayload mirrors model.PicturePayload.
type PicturePayload struct {
	BinDataID uint16
	CropRect  [4]int32
	Effect    uint8
	Flip      uint8
}

// EquationPayload mirrors model.EquationPayload.
type EquationPayload struct {
	Script string
	Base   [2]int32
}

// HyperlinkPayload mirrors model.HyperlinkPayload.
type HyperlinkPayload struct {
	Target string
}

// FieldPayload mirrors model.FieldPayload.
type FieldPayload struct {
	Command string
}
