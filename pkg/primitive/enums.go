package primitive

// Every enumeration in this file except BreakType carries a trailing
// catch-all variant (named Other or Unknown) so that a value this
// implementation does not recognize still round-trips unchanged, per
// spec.md §4.A. BreakType is a plain closed set with no such variant.

// HAlign is horizontal paragraph/cell alignment.
type HAlign struct {
	kind  hAlignKind
	other uint32
}

type hAlignKind uint8

const (
	HAlignLeft hAlignKind = iota
	HAlignRight
	HAlignCenter
	HAlignJustify
	HAlignDistribute
	HAlignDistributeSpace
	hAlignOther
)

// NewHAlign constructs a known alignment value.
func NewHAlign(k hAlignKind) HAlign { return HAlign{kind: k} }

// HAlignOther constructs a round-trip-preserving unknown alignment value.
func HAlignOther(raw uint32) HAlign { return HAlign{kind: hAlignOther, other: raw} }

// Kind returns the alignment kind; ok is false for an Other value.
func (h HAlign) Kind() (hAlignKind, bool) { return h.kind, h.kind != hAlignOther }

// Raw returns the original wire value for an Other alignment (0 otherwise).
func (h HAlign) Raw() uint32 { return h.other }

// LineStyle is border/underline line style (solid, dash, dot, double, ...).
type LineStyle struct {
	kind  uint8
	known bool
}

const (
	LineStyleNone uint8 = iota
	LineStyleSolid
	LineStyleDash
	LineStyleDot
	LineStyleDashDot
	LineStyleDashDotDot
	LineStyleLongDash
	LineStyleCircle
	LineStyleDouble
	LineStyleThinThick
	LineStyleThickThin
	LineStyleThinThickThin
)

// NewLineStyle constructs a known line style.
func NewLineStyle(kind uint8) LineStyle { return LineStyle{kind: kind, known: true} }

// LineStyleUnknown constructs a round-trip-preserving unknown line style.
func LineStyleUnknown(raw uint8) LineStyle { return LineStyle{kind: raw, known: false} }

// Value returns the wire byte and whether it was a recognized constant.
func (l LineStyle) Value() (uint8, bool) { return l.kind, l.known }

// WrapStyle controls how text flows around a floating object.
type WrapStyle struct {
	kind  uint8
	known bool
}

const (
	WrapSquare uint8 = iota
	WrapTight
	WrapThrough
	WrapTopAndBottom
	WrapBehindText
	WrapInFrontOfText
	WrapInline
)

func NewWrapStyle(kind uint8) WrapStyle       { return WrapStyle{kind: kind, known: true} }
func WrapStyleUnknown(raw uint8) WrapStyle    { return WrapStyle{kind: raw, known: false} }
func (w WrapStyle) Value() (uint8, bool)      { return w.kind, w.known }

// FillType distinguishes none/solid/pattern/picture/gradient fills.
type FillType struct {
	kind  uint8
	known bool
}

const (
	FillNone uint8 = iota
	FillSolid
	FillPattern
	FillPicture
	FillGradient
)

func NewFillType(kind uint8) FillType    { return FillType{kind: kind, known: true} }
func FillTypeUnknown(raw uint8) FillType { return FillType{kind: raw, known: false} }
func (f FillType) Value() (uint8, bool)  { return f.kind, f.known }

// HatchStyle enumerates pattern-fill hatch styles.
type HatchStyle struct {
	kind  uint8
	known bool
}

const (
	HatchHorizontal uint8 = iota
	HatchVertical
	HatchBackDiagonal
	HatchForwardDiagonal
	HatchCross
	HatchDiagonalCross
)

func NewHatchStyle(kind uint8) HatchStyle    { return HatchStyle{kind: kind, known: true} }
func HatchStyleUnknown(raw uint8) HatchStyle { return HatchStyle{kind: raw, known: false} }
func (h HatchStyle) Value() (uint8, bool)    { return h.kind, h.known }

// GradientType enumerates fill gradient shapes.
type GradientType struct {
	kind  uint8
	known bool
}

const (
	GradientLinear uint8 = iota
	GradientRadial
	GradientConical
	GradientSquare
)

func NewGradientType(kind uint8) GradientType    { return GradientType{kind: kind, known: true} }
func GradientTypeUnknown(raw uint8) GradientType { return GradientType{kind: raw, known: false} }
func (g GradientType) Value() (uint8, bool)      { return g.kind, g.known }

// ImageFlip enumerates picture mirroring.
type ImageFlip struct {
	kind  uint8
	known bool
}

const (
	ImageFlipNone uint8 = iota
	ImageFlipHorizontal
	ImageFlipVertical
	ImageFlipBoth
)

func NewImageFlip(kind uint8) ImageFlip    { return ImageFlip{kind: kind, known: true} }
func ImageFlipUnknown(raw uint8) ImageFlip { return ImageFlip{kind: raw, known: false} }
func (i ImageFlip) Value() (uint8, bool)   { return i.kind, i.known }

// ImageEffect enumerates picture color effects (grayscale, black/white,
// watermark, ...).
type ImageEffect struct {
	kind  uint8
	known bool
}

const (
	ImageEffectNone uint8 = iota
	ImageEffectGrayscale
	ImageEffectBlackWhite
	ImageEffectWatermark
)

func NewImageEffect(kind uint8) ImageEffect    { return ImageEffect{kind: kind, known: true} }
func ImageEffectUnknown(raw uint8) ImageEffect { return ImageEffect{kind: raw, known: false} }
func (i ImageEffect) Value() (uint8, bool)     { return i.kind, i.known }

// TextDirection enumerates horizontal/vertical writing mode.
type TextDirection struct {
	kind  uint8
	known bool
}

const (
	TextDirectionHorizontal uint8 = iota
	TextDirectionVertical
)

func NewTextDirection(kind uint8) TextDirection    { return TextDirection{kind: kind, known: true} }
func TextDirectionUnknown(raw uint8) TextDirection { return TextDirection{kind: raw, known: false} }
func (t TextDirection) Value() (uint8, bool)       { return t.kind, t.known }

// ArrowStyle enumerates line-end arrowhead shapes.
type ArrowStyle struct {
	kind  uint8
	known bool
}

const (
	ArrowNone uint8 = iota
	ArrowArrow
	ArrowSpearhead
	ArrowDiamond
	ArrowCircle
	ArrowRectangle
)

func NewArrowStyle(kind uint8) ArrowStyle    { return ArrowStyle{kind: kind, known: true} }
func ArrowStyleUnknown(raw uint8) ArrowStyle { return ArrowStyle{kind: raw, known: false} }
func (a ArrowStyle) Value() (uint8, bool)    { return a.kind, a.known }

// BreakType enumerates the kind of flow break a paragraph carries.
type BreakType uint8

const (
	BreakNone BreakType = iota
	BreakPage
	BreakColumn
	BreakSection
)
