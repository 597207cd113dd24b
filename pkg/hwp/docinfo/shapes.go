package docinfo

import (
	"github.com/vortex/go-hwp/pkg/hwp/binio"
	"github.com/vortex/go-hwp/pkg/primitive"
)

// BorderFillEdge describes one edge of a border: line style, width and color.
type BorderFillEdge struct {
	Style primitive.LineStyle
	Width uint8
	Color primitive.Color
}

// BorderFill is the HWPTAG_BORDER_FILL record: four edges, a diagonal, plus a fill
// (spec.md §4.E item 5). Fill parameters beyond the fill-type tag are
// kept as a raw tail; BorderFill is shared by shape and cell styling,
// and the fill payload shape varies with FillType in ways not required
// for editing or text extraction.
type BorderFill struct {
	Left, Right, Top, Bottom BorderFillEdge
	Diagonal                 BorderFillEdge
	FillType                 primitive.FillType
	FillTail                 []byte
}

// lineStyleFromWire maps a wire byte to a LineStyle, preserving any
// value outside the known constant range for round-trip (spec.md §4.A).
func lineStyleFromWire(v uint8) primitive.LineStyle {
	if v <= primitive.LineStyleThinThickThin {
		return primitive.NewLineStyle(v)
	}
	return primitive.LineStyleUnknown(v)
}

func lineStyleToWire(l primitive.LineStyle) uint8 {
	v, _ := l.Value()
	return v
}

// fillTypeFromWire maps a wire byte to a FillType the same way
// lineStyleFromWire does for line styles.
func fillTypeFromWire(v uint8) primitive.FillType {
	if v <= primitive.FillGradient {
		return primitive.NewFillType(v)
	}
	return primitive.FillTypeUnknown(v)
}

func fillTypeToWire(f primitive.FillType) uint8 {
	v, _ := f.Value()
	return v
}

func decodeEdge(r *binio.Reader) (BorderFillEdge, error) {
	var e BorderFillEdge
	styleByte, err := r.U8()
	if err != nil {
		return e, err
	}
	e.Style = lineStyleFromWire(styleByte)
	if width, err := r.U8(); err == nil {
		e.Width = width
	} else {
		return e, err
	}
	colorWire, err := r.U32()
	if err != nil {
		return e, err
	}
	e.Color = primitive.FromWireRGB(colorWire)
	return e, nil
}

func encodeEdge(w *binio.Writer, e BorderFillEdge) {
	w.U8(lineStyleToWire(e.Style))
	w.U8(e.Width)
	w.U32(e.Color.ToWireRGB())
}

func decodeBorderFill(payload []byte) (BorderFill, error) {
	r := binio.NewReader(payload)
	var bf BorderFill
	r.Skip(2) // properties bitfield, not modeled
	var err error
	if bf.Left, err = decodeEdge(r); err != nil {
		return bf, err
	}
	if bf.Right, err = decodeEdge(r); err != nil {
		return bf, err
	}
	if bf.Top, err = decodeEdge(r); err != nil {
		return bf, err
	}
	if bf.Bottom, err = decodeEdge(r); err != nil {
		return bf, err
	}
	if bf.Diagonal, err = decodeEdge(r); err != nil {
		return bf, err
	}
	if r.Remaining() > 0 {
		fillKind, err := r.U8()
		if err != nil {
			return bf, err
		}
		bf.FillType = fillTypeFromWire(fillKind)
		tail, err := r.Bytes(r.Remaining())
		if err != nil {
			return bf, err
		}
		bf.FillTail = append([]byte(nil), tail...)
	}
	return bf, nil
}

// Encode writes BorderFill back to its record payload form.
func (bf BorderFill) Encode() []byte {
	w := binio.NewWriter()
	w.U16(0)
	encodeEdge(w, bf.Left)
	encodeEdge(w, bf.Right)
	encodeEdge(w, bf.Top)
	encodeEdge(w, bf.Bottom)
	encodeEdge(w, bf.Diagonal)
	w.U8(fillTypeToWire(bf.FillType))
	w.Raw(bf.FillTail)
	return w.Bytes()
}

// CharShapeLangField is one language slot of CharShape's seven-wide
// font/width/spacing/size/position tuple (spec.md §4.E CharShape note).
type CharShapeLangField struct {
	FontID      uint16
	WidthRatio  int8
	Spacing     int8
	RelativeSize uint8
	Position    int8
}

// CharShape is the HWPTAG_CHAR_SHAPE record. BorderFillID and
// StrikethroughColor are populated only for files new enough to carry
// them (spec.md §4.E: "detected by remaining bytes").
type CharShape struct {
	Languages          [7]CharShapeLangField
	BaseSize           int32
	Properties         uint32
	ShadowOffsetX      int8
	ShadowOffsetY      int8
	TextColor          primitive.Color
	UnderlineColor     primitive.Color
	ShadeColor         primitive.Color
	ShadowColor        primitive.Color
	BorderFillID       uint16
	HasBorderFillID    bool
	StrikethroughColor primitive.Color
	HasStrikethrough   bool
}

func decodeCharShape(payload []byte, version primitive.Version) (CharShape, error) {
	r := binio.NewReader(payload)
	var cs CharShape
	for i := range cs.Languages {
		fontID, err := r.U16()
		if err != nil {
			return cs, err
		}
		cs.Languages[i].FontID = fontID
	}
	for i := range cs.Languages {
		v, err := r.I8()
		if err != nil {
			return cs, err
		}
		cs.Languages[i].WidthRatio = v
	}
	for i := range cs.Languages {
		v, err := r.I8()
		if err != nil {
			return cs, err
		}
		cs.Languages[i].Spacing = v
	}
	for i := range cs.Languages {
		v, err := r.U8()
		if err != nil {
			return cs, err
		}
		cs.Languages[i].RelativeSize = v
	}
	for i := range cs.Languages {
		v, err := r.I8()
		if err != nil {
			return cs, err
		}
		cs.Languages[i].Position = v
	}

	var err error
	baseSize, err := r.I32()
	if err != nil {
		return cs, err
	}
	cs.BaseSize = baseSize
	if cs.Properties, err = r.U32(); err != nil {
		return cs, err
	}
	if cs.ShadowOffsetX, err = r.I8(); err != nil {
		return cs, err
	}
	if cs.ShadowOffsetY, err = r.I8(); err != nil {
		return cs, err
	}

	readColor := func() (primitive.Color, error) {
		v, err := r.U32()
		return primitive.FromWireRGB(v), err
	}
	if cs.TextColor, err = readColor(); err != nil {
		return cs, err
	}
	if cs.UnderlineColor, err = readColor(); err != nil {
		return cs, err
	}
	if cs.ShadeColor, err = readColor(); err != nil {
		return cs, err
	}
	if cs.ShadowColor, err = readColor(); err != nil {
		return cs, err
	}

	if version.AtLeast(primitive.V5_0_2_1) && r.Remaining() >= 2 {
		id, err := r.U16()
		if err != nil {
			return cs, err
		}
		cs.BorderFillID = id
		cs.HasBorderFillID = true
	}
	if version.AtLeast(primitive.V5_0_3_0) && r.Remaining() >= 4 {
		v, err := r.U32()
		if err != nil {
			return cs, err
		}
		cs.StrikethroughColor = primitive.FromWireRGB(v)
		cs.HasStrikethrough = true
	}

	return cs, nil
}

// Encode writes CharShape back to its record payload form.
func (cs CharShape) Encode() []byte {
	w := binio.NewWriter()
	for _, l := range cs.Languages {
		w.U16(l.FontID)
	}
	for _, l := range cs.Languages {
		w.I8(l.WidthRatio)
	}
	for _, l := range cs.Languages {
		w.I8(l.Spacing)
	}
	for _, l := range cs.Languages {
		w.U8(l.RelativeSize)
	}
	for _, l := range cs.Languages {
		w.I8(l.Position)
	}
	w.I32(cs.BaseSize)
	w.U32(cs.Properties)
	w.I8(cs.ShadowOffsetX)
	w.I8(cs.ShadowOffsetY)
	w.U32(cs.TextColor.ToWireRGB())
	w.U32(cs.UnderlineColor.ToWireRGB())
	w.U32(cs.ShadeColor.ToWireRGB())
	w.U32(cs.ShadowColor.ToWireRGB())
	if cs.HasBorderFillID {
		w.U16(cs.BorderFillID)
	}
	if cs.HasStrikethrough {
		w.U32(cs.StrikethroughColor.ToWireRGB())
	}
	return w.Bytes()
}

// TabDefinition is the HWPTAG_TAB_DEF record: a properties word plus a
// tab stop list, each stop decoded as position, kind and fill kind.
type TabDefinition struct {
	Properties uint32
	Stops      []TabStop
}

// TabStop is one stop in a TabDefinition.
type TabStop struct {
	Position primitive.HwpUnit
	Kind     uint8
	FillKind uint8
}

func decodeTabDefinition(payload []byte) (TabDefinition, error) {
	r := binio.NewReader(payload)
	var td TabDefinition
	var err error
	if td.Properties, err = r.U32(); err != nil {
		return td, err
	}
	count, err := r.U32()
	if err != nil {
		return td, err
	}
	for i := uint32(0); i < count; i++ {
		pos, err := r.I32()
		if err != nil {
			return td, err
		}
		kind, err := r.U8()
		if err != nil {
			return td, err
		}
		fillKind, err := r.U8()
		if err != nil {
			return td, err
		}
		td.Stops = append(td.Stops, TabStop{Position: primitive.HwpUnit(pos), Kind: kind, FillKind: fillKind})
	}
	return td, nil
}

// Encode writes TabDefinition back to its record payload form.
func (td TabDefinition) Encode() []byte {
	w := binio.NewWriter()
	w.U32(td.Properties)
	w.U32(uint32(len(td.Stops)))
	for _, s := range td.Stops {
		w.I32(int32(s.Position))
		w.U8(s.Kind)
		w.U8(s.FillKind)
	}
	return w.Bytes()
}

// Numbering is the HWPTAG_NUMBERING record, kept as per-level format
// strings and start values.
type Numbering struct {
	Levels [7]NumberingLevel
}

// NumberingLevel is one of a Numbering's seven outline levels.
type NumberingLevel struct {
	Format     string
	StartValue uint32
}

func decodeNumbering(payload []byte) (Numbering, error) {
	r := binio.NewReader(payload)
	var n Numbering
	for i := range n.Levels {
		if r.Remaining() == 0 {
			break
		}
		format, err := r.HwpString()
		if err != nil {
			return n, err
		}
		start, err := r.U32()
		if err != nil {
			return n, err
		}
		n.Levels[i] = NumberingLevel{Format: format, StartValue: start}
	}
	return n, nil
}

// Encode writes Numbering back to its record payload form.
func (n Numbering) Encode() []byte {
	w := binio.NewWriter()
	for _, l := range n.Levels {
		w.HwpString(l.Format)
		w.U32(l.StartValue)
	}
	return w.Bytes()
}

// Bullet is the HWPTAG_BULLET record: a single bullet character plus
// image-bullet fields, kept as a raw tail beyond the character.
type Bullet struct {
	Char string
	Tail []byte
}

func decodeBullet(payload []byte) (Bullet, error) {
	r := binio.NewReader(payload)
	var b Bullet
	char, err := r.HwpString()
	if err != nil {
		return b, err
	}
	b.Char = char
	if r.Remaining() > 0 {
		tail, err := r.Bytes(r.Remaining())
		if err != nil {
			return b, err
		}
		b.Tail = append([]byte(nil), tail...)
	}
	return b, nil
}

// Encode writes Bullet back to its record payload form.
func (b Bullet) Encode() []byte {
	w := binio.NewWriter()
	w.HwpString(b.Char)
	w.Raw(b.Tail)
	return w.Bytes()
}

// hAlignFromWire maps ParaShape's 3-bit alignment field to HAlign,
// preserving out-of-range values for round-trip.
func hAlignFromWire(v uint32) primitive.HAlign {
	switch v {
	case 0:
		return primitive.NewHAlign(primitive.HAlignLeft)
	case 1:
		return primitive.NewHAlign(primitive.HAlignRight)
	case 2:
		return primitive.NewHAlign(primitive.HAlignCenter)
	case 3:
		return primitive.NewHAlign(primitive.HAlignJustify)
	case 4:
		return primitive.NewHAlign(primitive.HAlignDistribute)
	case 5:
		return primitive.NewHAlign(primitive.HAlignDistributeSpace)
	default:
		return primitive.HAlignOther(v)
	}
}

// ParaShape is the HWPTAG_PARA_SHAPE record: paragraph-level spacing,
// indentation and alignment. Most of its bitfield-encoded layout flags
// are preserved as a raw tail; only the fields the command/model layer
// needs (alignment, indentation) are decoded structurally.
type ParaShape struct {
	Properties    uint32
	LeftMargin    primitive.HwpUnit
	RightMargin   primitive.HwpUnit
	Indent        primitive.HwpUnit
	Alignment     primitive.HAlign
	Tail          []byte
}

func decodeParaShape(payload []byte) (ParaShape, error) {
	r := binio.NewReader(payload)
	var ps ParaShape
	var err error
	if ps.Properties, err = r.U32(); err != nil {
		return ps, err
	}
	left, err := r.I32()
	if err != nil {
		return ps, err
	}
	ps.LeftMargin = primitive.HwpUnit(left)
	right, err := r.I32()
	if err != nil {
		return ps, err
	}
	ps.RightMargin = primitive.HwpUnit(right)
	indent, err := r.I32()
	if err != nil {
		return ps, err
	}
	ps.Indent = primitive.HwpUnit(indent)
	ps.Alignment = hAlignFromWire(ps.Properties & 0x7)
	if r.Remaining() > 0 {
		tail, err := r.Bytes(r.Remaining())
		if err != nil {
			return ps, err
		}
		ps.Tail = append([]byte(nil), tail...)
	}
	return ps, nil
}

// Encode writes ParaShape back to its record payload form.
func (ps ParaShape) Encode() []byte {
	w := binio.NewWriter()
	w.U32(ps.Properties)
	w.I32(int32(ps.LeftMargin))
	w.I32(int32(ps.RightMargin))
	w.I32(int32(ps.Indent))
	w.Raw(ps.Tail)
	return w.Bytes()
}

// Style is the HWPTAG_STYLE record: a named style binding a ParaShape
// and CharShape id (spec.md §4.E item 5).
type Style struct {
	Name        string
	EnglishName string
	ParaShapeID uint32
	CharShapeID uint32
	NextStyleID uint8
	LangID      uint16
}

func decodeStyle(payload []byte) (Style, error) {
	r := binio.NewReader(payload)
	var s Style
	name, err := r.HwpString()
	if err != nil {
		return s, err
	}
	s.Name = name
	englishName, err := r.HwpString()
	if err != nil {
		return s, err
	}
	s.EnglishName = englishName
	if _, err := r.U8(); err != nil { // style kind flag, not modeled
		return s, err
	}
	if s.NextStyleID, err = r.U8(); err != nil {
		return s, err
	}
	if s.LangID, err = r.U16(); err != nil {
		return s, err
	}
	if s.ParaShapeID, err = r.U32(); err != nil {
		return s, err
	}
	if s.CharShapeID, err = r.U32(); err != nil {
		return s, err
	}
	return s, nil
}

// Encode writes Style back to its record payload form.
func (s Style) Encode() []byte {
	w := binio.NewWriter()
	w.HwpString(s.Name)
	w.HwpString(s.EnglishName)
	w.U8(0)
	w.U8(s.NextStyleID)
	w.U16(s.LangID)
	w.U32(s.ParaShapeID)
	w.U32(s.CharShapeID)
	return w.Bytes()
}
