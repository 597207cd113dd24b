package model

import "github.com/vortex/go-hwp/pkg/primitive"

// BreakType classifies the break, if any, that follows a paragraph.
type BreakType int

const (
	BreakNone BreakType = iota
	BreakPage
	BreakColumn
	BreakSection
)

// RangeTagKind classifies a RangeTag's role (spec.md §3.1).
type RangeTagKind int

const (
	RangeTagBookmark RangeTagKind = iota
	RangeTagHyperlink
	RangeTagTrackChangeInsert
	RangeTagTrackChangeDelete
	RangeTagHighlight
	RangeTagOther
)

// RangeTag marks a half-open code-point span [Start,End) within a
// paragraph's character stream (spec.md §3.1, §3.2 invariant 4).
type RangeTag struct {
	Start  int
	End    int
	Kind   RangeTagKind
	Other  uint32 // populated when Kind == RangeTagOther
}

// Section is an ordered list of paragraphs plus section-local settings.
type Section struct {
	Paragraphs    []ParagraphId
	PageDef       PageDef
	FootnoteShape FootnoteShape
	PageBorder    []byte // opaque, round-tripped record payload
	Memos         []byte // opaque, round-tripped record payload
}

// PageDef holds the section's page geometry, kept as physical units
// rather than decoding every field the binary record carries.
type PageDef struct {
	Size    primitive.Size
	Margins primitive.Insets
	Landscape bool
}

// FootnoteShape holds section-local footnote/endnote numbering and
// divider settings, opaque beyond what editing needs.
type FootnoteShape struct {
	NumberingStart int
	Raw            []byte
}

// Paragraph is a styled, ordered list of runs plus range-tag annotations.
type Paragraph struct {
	ParaShapeID uint32
	StyleID     uint32
	Runs        []RunId
	Break       BreakType
	InstanceID  *uint32
	RangeTags   []RangeTag
}

// Run is a char-shape id plus an ordered list of RunContent items.
type Run struct {
	CharShapeID uint32
	Contents    []RunContent
}

// TextLength returns the run's length in cursor-addressable positions:
// a Text content contributes one position per code point, every other
// content kind (tab, control, field marker, ...) contributes exactly
// one (spec.md §3.2 invariant 3).
func (r *Run) TextLength() int {
	n := 0
	for _, c := range r.Contents {
		if c.Kind == RunText {
			n += len([]rune(c.Text))
		} else {
			n++
		}
	}
	return n
}

// RunContentKind discriminates the RunContent sum type (spec.md §3.1).
type RunContentKind int

const (
	RunText RunContentKind = iota
	RunTab
	RunLineBreak
	RunHyphen
	RunNonBreakingSpace
	RunFixedWidthSpace
	RunControl
	RunFieldStart
	RunFieldEnd
	RunBookmarkStart
	RunBookmarkEnd
)

// RunContent is a tagged union over the inline content kinds a run can
// hold. Only the field matching Kind is meaningful.
type RunContent struct {
	Kind         RunContentKind
	Text         string
	ControlID    ControlId
	BookmarkID   uint32
	BookmarkName string
}

// NewTextContent, NewControlContent and the other constructors below
// keep call sites from hand-assembling a RunContent with unrelated
// fields left zeroed.

func NewTextContent(s string) RunContent   { return RunContent{Kind: RunText, Text: s} }
func NewTabContent() RunContent            { return RunContent{Kind: RunTab} }
func NewLineBreakContent() RunContent      { return RunContent{Kind: RunLineBreak} }
func NewHyphenContent() RunContent         { return RunContent{Kind: RunHyphen} }
func NewNonBreakingSpaceContent() RunContent { return RunContent{Kind: RunNonBreakingSpace} }
func NewFixedWidthSpaceContent() RunContent  { return RunContent{Kind: RunFixedWidthSpace} }
func NewControlContent(id ControlId) RunContent { return RunContent{Kind: RunControl, ControlID: id} }
func NewFieldStartContent() RunContent     { return RunContent{Kind: RunFieldStart} }
func NewFieldEndContent() RunContent       { return RunContent{Kind: RunFieldEnd} }
func NewBookmarkStartContent(id uint32, name string) RunContent {
	return RunContent{Kind: RunBookmarkStart, BookmarkID: id, BookmarkName: name}
}
func NewBookmarkEndContent() RunContent { return RunContent{Kind: RunBookmarkEnd} }

// ControlKind discriminates the Control sum type (spec.md §3.1).
type ControlKind int

const (
	ControlTable ControlKind = iota
	ControlPicture
	ControlShape
	ControlEquation
	ControlOle
	ControlTextBox
	ControlFootnote
	ControlEndnote
	ControlHyperlink
	ControlBookmark
	ControlIndexMark
	ControlAutoNumber
	ControlNewNumber
	ControlHiddenComment
	ControlChart
	ControlVideo
	ControlFormObject
	ControlTextArt
	ControlCompose
	ControlDutmal
	ControlConnectLine
	ControlUnknown
)

// Control is a tagged union over every inline-anchored object kind.
// Controls with flowable content reference child paragraphs by id
// (Children), never by embedding them inline (spec.md §3.1).
type Control struct {
	Kind     ControlKind
	Table    *Table
	Children []ParagraphId // Footnote, Endnote, TextBox, HiddenComment, FormObject content
	Compose  *ComposeData
	Dutmal   *DutmalData
	Unknown  UnknownControl
	// Payload carries format-specific fields not modeled structurally
	// (picture source, equation script, chart kind, ...); the IR layer
	// is responsible for its shape.
	Payload any
}

// ComposeCircleKind classifies the enclosing shape drawn around a
// Compose character's overlaid glyphs.
type ComposeCircleKind int

const (
	ComposeCircleNone ComposeCircleKind = iota
	ComposeCircleShape
)

// ComposeData models a HWP "Compose" character composition (a glyph
// built from up to three overlaid characters plus a circle/shape),
// kept as an inline Control rather than RunContent per the Open
// Question decision recorded in DESIGN.md.
type ComposeData struct {
	Chars  [3]rune
	Circle ComposeCircleKind
}

// DutmalData models a HWP "Dutmal" (ruby/annotation) character.
type DutmalData struct {
	MainText string
	SubText  string
}

// UnknownControl preserves an unrecognized control's tag and raw
// payload bytes for lossless round-trip (spec.md §7 unknown-tag policy).
type UnknownControl struct {
	Tag     uint16
	Payload []byte
}

// Table holds grid dimensions, a shared border-fill id, and the row list.
type Table struct {
	RowCount     int
	ColumnCount  int
	BorderFillID uint32
	Rows         []RowId
}

// Row is an ordered list of cells plus a row height.
type Row struct {
	Height primitive.HwpUnit
	Cells  []CellId
}

// Cell holds grid placement, span, sizing and its paragraph content.
type Cell struct {
	Row, Column       int
	RowSpan, ColSpan  int
	Width, Height     primitive.HwpUnit
	Padding           primitive.Insets
	BorderFillID      uint32
	Paragraphs        []ParagraphId
}
