// Package drawing holds the shape-geometry fields shared by every
// drawing-capable HWPX control (Picture, Shape, TextBox, OLE, and the
// form objects in pkg/hwpx/schema/formcontrol): size, position, outer
// margin, and caption. They are factored into one Common struct, which
// formcontrol.Common embeds; pkg/hwpx/schema's section decoder does not
// read these fields for pictures, shapes, text boxes or OLE objects. The
// field set matches
// original_source/crates/hwpx/src/paragraph/drawing.rs's shared field
// set across its Line/Rectangle/Ellipse/Arc/Polygon/Curve/ConnectLine
// variants (each repeats the same sz/pos/outMargin/caption/shapeComment/
// metaTag block verbatim in the original).
package drawing

import (
	"strconv"

	"github.com/vortex/go-hwp/pkg/hwpx/oxml"
	"github.com/vortex/go-hwp/pkg/primitive"
)

var (
	qnSz         = oxml.Qn("hp:sz")
	qnPos        = oxml.Qn("hp:pos")
	qnOutMargin  = oxml.Qn("hp:outMargin")
	qnCaption    = oxml.Qn("hp:caption")
	qnShapeCmt   = oxml.Qn("hp:shapeComment")
)

// ObjectSize is a drawing object's placement size (hp:sz).
type ObjectSize struct {
	Width, Height primitive.HwpUnit
	WidthRelTo    string
	HeightRelTo   string
}

// ObjectPosition is a drawing object's placement origin (hp:pos).
type ObjectPosition struct {
	TreatAsChar bool
	X, Y        primitive.HwpUnit
	HorzRelTo   string
	VertRelTo   string
}

// OutsideMargin is the margin between a drawing object's bounding box
// and surrounding text (hp:outMargin).
type OutsideMargin struct {
	Left, Right, Top, Bottom primitive.HwpUnit
}

// Caption is a drawing object's attached caption text block
// (hp:caption), rendered alongside tables, pictures, and equations.
type Caption struct {
	Side string // "LEFT", "RIGHT", "TOP", "BOTTOM"
	Text string
}

// Common is the field set every drawing-capable HWPX element embeds.
type Common struct {
	Size         *ObjectSize
	Position     *ObjectPosition
	OutsideMargin *OutsideMargin
	Caption      *Caption
	ShapeComment string
}

// Decode reads Common's child elements out of a drawing-capable element.
// It does not consume el's non-drawing children or attributes; callers
// decode those separately with their own typed fields.
func Decode(el oxml.AnyElement) Common {
	var c Common
	if szEl, ok := el.FirstChildNamed(qnSz); ok {
		c.Size = decodeSize(szEl)
	}
	if posEl, ok := el.FirstChildNamed(qnPos); ok {
		c.Position = decodePosition(posEl)
	}
	if marginEl, ok := el.FirstChildNamed(qnOutMargin); ok {
		c.OutsideMargin = decodeOutsideMargin(marginEl)
	}
	if capEl, ok := el.FirstChildNamed(qnCaption); ok {
		side, _ := capEl.Attr("side")
		c.Caption = &Caption{Side: side, Text: capEl.Text()}
	}
	if cmtEl, ok := el.FirstChildNamed(qnShapeCmt); ok {
		c.ShapeComment = cmtEl.Text()
	}
	return c
}

func decodeSize(el oxml.AnyElement) *ObjectSize {
	s := &ObjectSize{}
	s.Width = primitive.HwpUnit(parseInt(firstAttr(el, "width")))
	s.Height = primitive.HwpUnit(parseInt(firstAttr(el, "height")))
	s.WidthRelTo, _ = el.Attr("widthRelTo")
	s.HeightRelTo, _ = el.Attr("heightRelTo")
	return s
}

func decodePosition(el oxml.AnyElement) *ObjectPosition {
	p := &ObjectPosition{}
	p.TreatAsChar = firstAttr(el, "treatAsChar") == "1" || firstAttr(el, "treatAsChar") == "true"
	p.X = primitive.HwpUnit(parseInt(firstAttr(el, "horzOffset")))
	p.Y = primitive.HwpUnit(parseInt(firstAttr(el, "vertOffset")))
	p.HorzRelTo, _ = el.Attr("horzRelTo")
	p.VertRelTo, _ = el.Attr("vertRelTo")
	return p
}

func decodeOutsideMargin(el oxml.AnyElement) *OutsideMargin {
	return &OutsideMargin{
		Left:   primitive.HwpUnit(parseInt(firstAttr(el, "left"))),
		Right:  primitive.HwpUnit(parseInt(firstAttr(el, "right"))),
		Top:    primitive.HwpUnit(parseInt(firstAttr(el, "top"))),
		Bottom: primitive.HwpUnit(parseInt(firstAttr(el, "bottom"))),
	}
}

func firstAttr(el oxml.AnyElement, name string) string {
	v, _ := el.Attr(name)
	return v
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
