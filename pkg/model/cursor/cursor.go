package cursor

import "github.com/vortex/go-hwp/pkg/model"

// Cursor is the current editing position plus an optional selection
// anchor (spec.md §4.I).
type Cursor struct {
	position Position
	anchor   *Position
}

// New returns a cursor at the document start.
func New() *Cursor {
	return &Cursor{}
}

// At returns a cursor placed at position with no active selection.
func At(position Position) *Cursor {
	return &Cursor{position: position}
}

// Position returns the cursor's current position.
func (c *Cursor) Position() Position { return c.position }

// SetPosition moves the cursor and clears any selection.
func (c *Cursor) SetPosition(position Position) {
	c.position = position
	c.anchor = nil
}

// StartSelection anchors a selection at the current position.
func (c *Cursor) StartSelection() {
	pos := c.position
	c.anchor = &pos
}

// ExtendSelection moves the cursor to position, anchoring the current
// position first if no selection is active yet.
func (c *Cursor) ExtendSelection(position Position) {
	if c.anchor == nil {
		pos := c.position
		c.anchor = &pos
	}
	c.position = position
}

// ClearSelection drops the anchor, leaving the current position intact.
func (c *Cursor) ClearSelection() {
	c.anchor = nil
}

// Selection returns the active selection, normalized so Start <= End,
// or (Selection{}, false) if none is active.
func (c *Cursor) Selection() (Selection, bool) {
	if c.anchor == nil {
		return Selection{}, false
	}
	if c.anchor.LessOrEqual(c.position) {
		return Selection{Start: *c.anchor, End: c.position}, true
	}
	return Selection{Start: c.position, End: *c.anchor}, true
}

// HasSelection reports whether an anchor is set and differs from the
// current position (an anchor equal to position is a collapsed, empty
// selection and does not count).
func (c *Cursor) HasSelection() bool {
	return c.anchor != nil && *c.anchor != c.position
}

// MoveChar moves the cursor by delta code-point positions, forward for
// positive delta and backward for negative, clamping at document
// bounds (spec.md §4.I). Within a paragraph the end of one run and the
// start of the next are the same place: stepping forward off a run's
// end lands after the next run's first code point, and stepping back
// from offset 1 of a later run lands at the end of the run before it.
func (c *Cursor) MoveChar(delta int, doc *model.Document) {
	if delta > 0 {
		for i := 0; i < delta; i++ {
			c.moveForwardChar(doc)
		}
		return
	}
	for i := 0; i < -delta; i++ {
		c.moveBackwardChar(doc)
	}
}

func (c *Cursor) moveForwardChar(doc *model.Document) {
	section, _, ok := doc.SectionAt(c.position.SectionIndex)
	if !ok {
		return
	}
	para, _, ok := doc.ParagraphAt(section, c.position.ParagraphIndex)
	if !ok {
		return
	}
	if run, _, ok := doc.RunAt(para, c.position.RunIndex); ok {
		if c.position.CharOffset < run.TextLength() {
			c.position.CharOffset++
			return
		}
	}
	if c.position.RunIndex+1 < len(para.Runs) {
		c.position.RunIndex++
		c.position.CharOffset = 0
		if next, _, ok := doc.RunAt(para, c.position.RunIndex); ok && next.TextLength() > 0 {
			c.position.CharOffset = 1
		}
		return
	}
	if c.position.ParagraphIndex+1 < len(section.Paragraphs) {
		c.position.ParagraphIndex++
		c.position.RunIndex = 0
		c.position.CharOffset = 0
		return
	}
	if c.position.SectionIndex+1 < doc.SectionCount() {
		c.position.SectionIndex++
		c.position.ParagraphIndex = 0
		c.position.RunIndex = 0
		c.position.CharOffset = 0
	}
}

func (c *Cursor) moveBackwardChar(doc *model.Document) {
	if c.position.CharOffset == 1 && c.position.RunIndex > 0 {
		c.position.RunIndex--
		if length, ok := runLengthAt(doc, c.position.SectionIndex, c.position.ParagraphIndex, c.position.RunIndex); ok {
			c.position.CharOffset = length
		}
		return
	}
	if c.position.CharOffset > 0 {
		c.position.CharOffset--
		return
	}
	if c.position.RunIndex > 0 {
		c.position.RunIndex--
		if length, ok := runLengthAt(doc, c.position.SectionIndex, c.position.ParagraphIndex, c.position.RunIndex); ok {
			c.position.CharOffset = length
		}
		return
	}
	if c.position.ParagraphIndex > 0 {
		c.position.ParagraphIndex--
		section, _, ok := doc.SectionAt(c.position.SectionIndex)
		if !ok {
			return
		}
		para, _, ok := doc.ParagraphAt(section, c.position.ParagraphIndex)
		if !ok {
			return
		}
		c.position.RunIndex = lastIndex(len(para.Runs))
		if length, ok := runLengthAt(doc, c.position.SectionIndex, c.position.ParagraphIndex, c.position.RunIndex); ok {
			c.position.CharOffset = length
		}
		return
	}
	if c.position.SectionIndex > 0 {
		c.position.SectionIndex--
		section, _, ok := doc.SectionAt(c.position.SectionIndex)
		if !ok {
			return
		}
		c.position.ParagraphIndex = lastIndex(len(section.Paragraphs))
		para, _, ok := doc.ParagraphAt(section, c.position.ParagraphIndex)
		if !ok {
			return
		}
		c.position.RunIndex = lastIndex(len(para.Runs))
		if length, ok := runLengthAt(doc, c.position.SectionIndex, c.position.ParagraphIndex, c.position.RunIndex); ok {
			c.position.CharOffset = length
		}
	}
}

func runLengthAt(doc *model.Document, sectionIdx, paraIdx, runIdx int) (int, bool) {
	section, _, ok := doc.SectionAt(sectionIdx)
	if !ok {
		return 0, false
	}
	para, _, ok := doc.ParagraphAt(section, paraIdx)
	if !ok {
		return 0, false
	}
	run, _, ok := doc.RunAt(para, runIdx)
	if !ok {
		return 0, false
	}
	return run.TextLength(), true
}

func lastIndex(length int) int {
	if length == 0 {
		return 0
	}
	return length - 1
}

// MoveToParagraphStart resets the run/offset components to the start
// of the current paragraph.
func (c *Cursor) MoveToParagraphStart() {
	c.position.RunIndex = 0
	c.position.CharOffset = 0
}

// MoveToParagraphEnd moves to the end of the current paragraph's last run.
func (c *Cursor) MoveToParagraphEnd(doc *model.Document) {
	section, _, ok := doc.SectionAt(c.position.SectionIndex)
	if !ok {
		return
	}
	para, _, ok := doc.ParagraphAt(section, c.position.ParagraphIndex)
	if !ok {
		return
	}
	c.position.RunIndex = lastIndex(len(para.Runs))
	if run, _, ok := doc.RunAt(para, c.position.RunIndex); ok {
		c.position.CharOffset = run.TextLength()
	}
}

// MoveToDocumentStart resets the cursor to position zero.
func (c *Cursor) MoveToDocumentStart() {
	c.position = Start()
}

// MoveToDocumentEnd moves to the last position of the last section.
func (c *Cursor) MoveToDocumentEnd(doc *model.Document) {
	if doc.SectionCount() == 0 {
		c.position = Start()
		return
	}
	c.position.SectionIndex = doc.SectionCount() - 1
	section, _, ok := doc.SectionAt(c.position.SectionIndex)
	if !ok {
		return
	}
	c.position.ParagraphIndex = lastIndex(len(section.Paragraphs))
	c.MoveToParagraphEnd(doc)
}

// Selection is a normalized [Start,End] position range.
type Selection struct {
	Start Position
	End   Position
}

// NewSelection normalizes start/end so Start <= End.
func NewSelection(start, end Position) Selection {
	if start.LessOrEqual(end) {
		return Selection{Start: start, End: end}
	}
	return Selection{Start: end, End: start}
}

// IsEmpty reports whether the selection is collapsed to a point.
func (s Selection) IsEmpty() bool { return s.Start == s.End }

// Contains reports whether position lies within [Start,End] inclusive.
func (s Selection) Contains(position Position) bool {
	return !position.Less(s.Start) && !s.End.Less(position)
}
