// Package ir is the flat, fully-owned intermediate representation that
// sits between the format parsers/serializers (pkg/hwp, pkg/hwpx) and
// the arena-based editing model (pkg/model). It mirrors pkg/model's
// shapes but inlines every subtree instead of addressing it by id
// (spec.md §4.K): a control's child paragraphs live inside the
// control, a table's rows and cells live inside the table. Binary and
// XML readers build an ir.Document directly; ToModel/FromModel bridge
// it to the editing arena.
package ir

import "github.com/vortex/go-hwp/pkg/primitive"

// Document mirrors model.Document with every arena-addressed list
// inlined as owned values.
type Document struct {
	Metadata   Metadata
	Styles     []Style
	Sections   []Section
	BinaryData map[uint16]BinaryDataEntry
	Extensions map[string][]byte
}

// Metadata mirrors model.Metadata.
type Metadata struct {
	Title, Author, Subject, Keywords, Comments string
}

// Style mirrors model.Style.
type Style struct {
	Name        string
	ParaShapeID uint32
	CharShapeID uint32
}

// BinaryDataEntry mirrors model.BinaryDataEntry.
type BinaryDataEntry struct {
	Extension string
	Data      []byte
}

// Section owns its paragraphs directly.
type Section struct {
	Paragraphs    []Paragraph
	PageDef       PageDef
	FootnoteShape FootnoteShape
	PageBorder    []byte
	Memos         []byte
}

// PageDef mirrors model.PageDef.
type PageDef struct {
	Size      primitive.Size
	Margins   primitive.Insets
	Landscape bool
}

// FootnoteShape mirrors model.FootnoteShape.
type FootnoteShape struct {
	NumberingStart int
	Raw            []byte
}

// BreakType mirrors model.BreakType.
type BreakType int

const (
	BreakNone BreakType = iota
	BreakPage
	BreakColumn
	BreakSection
)

// RangeTagKind mirrors model.RangeTagKind.
type RangeTagKind int

const (
	RangeTagBookmark RangeTagKind = iota
	RangeTagHyperlink
	RangeTagTrackChangeInsert
	RangeTagTrackChangeDelete
	RangeTagHighlight
	RangeTagOther
)

// RangeTag mirrors model.RangeTag.
type RangeTag struct {
	Start, End int
	Kind       RangeTagKind
	Other      uint32
}

// Paragraph owns its runs directly.
type Paragraph struct {
	ParaShapeID uint32
	StyleID     uint32
	Runs        []Run
	Break       BreakType
	InstanceID  *uint32
	RangeTags   []RangeTag

	// LineSegments is the opaque ParagraphLineSegment payload: a
	// rendering-layout cache (line heights, baseline offsets) that the
	// binary format stores per paragraph but that a layout engine, not
	// this package, owns the semantics of. Round-tripped verbatim by
	// the binary reader/writer; dropped by ToModel since the editing
	// model has no use for a stale layout cache (spec.md §4.K).
	LineSegments []byte
}

// Run mirrors model.Run but its control content is an owned *Control.
type Run struct {
	CharShapeID uint32
	Contents    []RunContent
}

// TextLength mirrors model.Run.TextLength.
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

// RunContentKind mirrors model.RunContentKind.
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
	// RunCompose and RunDutmal exist only in the IR: the binary and XML
	// formats both carry these inline in the run, but the editing
	// model treats them as Controls (spec.md §4.K, the Compose/Dutmal
	// Open Question).
	RunCompose
	RunDutmal
)

// RunContent is the IR's tagged union over inline run content. Control
// carries an owned subtree instead of an arena id.
type RunContent struct {
	Kind         RunContentKind
	Text         string
	Control      *Control
	BookmarkID   uint32
	BookmarkName string
	Compose      *ComposeData
	Dutmal       *DutmalData
}

func NewTextContent(s string) RunContent       { return RunContent{Kind: RunText, Text: s} }
func NewTabContent() RunContent                { return RunContent{Kind: RunTab} }
func NewLineBreakContent() RunContent          { return RunContent{Kind: RunLineBreak} }
func NewHyphenContent() RunContent             { return RunContent{Kind: RunHyphen} }
func NewNonBreakingSpaceContent() RunContent   { return RunContent{Kind: RunNonBreakingSpace} }
func NewFixedWidthSpaceContent() RunContent    { return RunContent{Kind: RunFixedWidthSpace} }
func NewControlContent(c *Control) RunContent  { return RunContent{Kind: RunControl, Control: c} }
func NewFieldStartContent() RunContent         { return RunContent{Kind: RunFieldStart} }
func NewFieldEndContent() RunContent           { return RunContent{Kind: RunFieldEnd} }
func NewBookmarkEndContent() RunContent        { return RunContent{Kind: RunBookmarkEnd} }
func NewBookmarkStartContent(id uint32, name string) RunContent {
	return RunContent{Kind: RunBookmarkStart, BookmarkID: id, BookmarkName: name}
}
func NewComposeContent(c *ComposeData) RunContent { return RunContent{Kind: RunCompose, Compose: c} }
func NewDutmalContent(d *DutmalData) RunContent    { return RunContent{Kind: RunDutmal, Dutmal: d} }

// ControlKind mirrors model.ControlKind, minus Compose/Dutmal (which
// are RunContent here, not Control) and plus nothing: the set of
// object kinds that are genuinely out-of-line is identical.
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
	ControlConnectLine
	ControlUnknown
)

// Control owns its child paragraphs and table directly.
type Control struct {
	Kind     ControlKind
	Table    *Table
	Children []Paragraph
	Unknown  UnknownControl
	Payload  any
}

// UnknownControl mirrors model.UnknownControl.
type UnknownControl struct {
	Tag     uint16
	Payload []byte
}

// ComposeData mirrors model.ComposeData, with the full wire-level circle
// kind preserved (the model's ComposeCircleKind collapses every
// non-None variant to Circle; see lossy-mapping comment in convert.go).
type ComposeData struct {
	Chars  [3]rune
	Circle ComposeCircleType
}

// DutmalData mirrors model.DutmalData.
type DutmalData struct {
	MainText string
	SubText  string
}

// Table owns its rows and cells directly.
type Table struct {
	RowCount     int
	ColumnCount  int
	BorderFillID uint32
	Rows         []Row
}

// Row owns its cells directly.
type Row struct {
	Height primitive.HwpUnit
	Cells  []Cell
}

// Cell owns its paragraphs directly.
type Cell struct {
	Row, Column      int
	RowSpan, ColSpan int
	Width, Height    primitive.HwpUnit
	Padding          primitive.Insets
	BorderFillID     uint32
	Paragraphs       []Paragraph
}
