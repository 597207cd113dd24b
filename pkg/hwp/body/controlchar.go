package body

// controlChar is the closed set of in-stream control code-points a
// ParagraphText record's UTF-16LE code-unit stream can carry (spec.md
// §6.4). Anything outside this set is ordinary text.
type controlChar uint16

const (
	ctrlSectionColumnDef controlChar = 0x02
	ctrlFieldStart       controlChar = 0x03
	ctrlFieldEnd         controlChar = 0x04
	ctrlTitleMark        controlChar = 0x05
	ctrlTab              controlChar = 0x09
	ctrlLineBreak        controlChar = 0x0A
	ctrlDrawingObject    controlChar = 0x0B
	ctrlInlineControl    controlChar = 0x0C
	ctrlParagraphBreak   controlChar = 0x0D
	ctrlBookmarkStart    controlChar = 0x10
	ctrlBookmarkEnd      controlChar = 0x11
	ctrlHiddenComment    controlChar = 0x15
	ctrlHeaderFooter     controlChar = 0x16
	ctrlFootnoteEndnote  controlChar = 0x17
	ctrlAutoNumber       controlChar = 0x18
	ctrlPageControl      controlChar = 0x1C
	ctrlHardHyphen       controlChar = 0x1E
	ctrlNonBreakingSpace controlChar = 0x00A0
)

// isControlChar reports whether c is one of the recognized in-stream
// control code-points.
func isControlChar(c uint16) bool {
	switch controlChar(c) {
	case ctrlSectionColumnDef, ctrlFieldStart, ctrlFieldEnd, ctrlTitleMark,
		ctrlTab, ctrlLineBreak, ctrlDrawingObject, ctrlInlineControl,
		ctrlParagraphBreak, ctrlBookmarkStart, ctrlBookmarkEnd,
		ctrlHiddenComment, ctrlHeaderFooter, ctrlFootnoteEndnote,
		ctrlAutoNumber, ctrlPageControl, ctrlHardHyphen, ctrlNonBreakingSpace:
		return true
	default:
		return false
	}
}

// isInlineControlMarker reports whether c is one of the markers that
// bind to the next control finalized in the stream via the
// control-queue (spec.md §4.F names 0x0B/0x0C explicitly; this
// implementation extends the same binding mechanism to every other
// control character that anchors an out-of-line object inline —
// hidden comments, headers/footers, footnotes/endnotes, auto-numbers
// and page controls all attach a Control at the point they occur).
func isInlineControlMarker(c uint16) bool {
	switch controlChar(c) {
	case ctrlDrawingObject, ctrlInlineControl, ctrlHiddenComment,
		ctrlHeaderFooter, ctrlFootnoteEndnote, ctrlAutoNumber, ctrlPageControl:
		return true
	default:
		return false
	}
}

// extraWidth returns how many additional UTF-16 code units follow a
// control code-point in the stream, beyond the marker itself. HWP
// stores most control characters as 8-code-unit-wide slots (the marker
// plus 7 units of inline parameter data, here preserved verbatim
// rather than interpreted); tab, line break and paragraph break are
// single-width, and the two bare punctuation mappings (hard hyphen,
// non-breaking space) never appear with extra width since they are
// not "extended" controls.
func extraWidth(c uint16) int {
	switch controlChar(c) {
	case ctrlTab, ctrlLineBreak, ctrlParagraphBreak, ctrlHardHyphen, ctrlNonBreakingSpace:
		return 0
	default:
		if isControlChar(c) {
			return 7
		}
		return 0
	}
}
