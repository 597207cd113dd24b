package body

import "github.com/vortex/go-hwp/pkg/ir"

// contextKind discriminates the context-stack frame kinds spec.md
// §4.F names: the bottom Section frame plus the four nestable kinds a
// ListHeader can push.
type contextKind int

const (
	contextSection contextKind = iota
	contextTableCell
	contextHeaderFooter
	contextFootnoteEndnote
	contextTextBox
)

// parsingContext is one frame of the context stack. Section, the
// bottom frame, has no expected count: it accepts paragraphs without
// ever completing. Every other frame accumulates paragraphs until
// completed reaches expected, at which point the parser splices the
// accumulator into the frame's owner (control) and pops it.
type parsingContext struct {
	kind      contextKind
	expected  uint16
	completed uint16
	paras     []ir.Paragraph

	// owner is the control this frame will splice its accumulated
	// paragraphs into once complete.
	owner *ctrlBuilder

	// cell is set only for contextTableCell: the grid placement the
	// ListHeader's TableCell binary supplied for this cell.
	cell *listHeaderCell
}

// paragraphCount returns the frame's expected paragraph count, or
// false for the bottom Section frame (which has none).
func (c *parsingContext) paragraphCount() (uint16, bool) {
	if c.kind == contextSection {
		return 0, false
	}
	return c.expected, true
}

// complete reports whether a nestable frame has received every
// paragraph it expects.
func (c *parsingContext) complete() bool {
	if c.kind == contextSection {
		return false
	}
	return c.completed >= c.expected
}
