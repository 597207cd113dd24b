package body

import (
	"unicode/utf16"

	"github.com/vortex/go-hwp/pkg/hwp/binio"
	"github.com/vortex/go-hwp/pkg/ir"
)

// paraBuilder accumulates one paragraph's records (header, text,
// char-shape references, line segments, range tags) until the next
// ParagraphHeader flushes it.
type paraBuilder struct {
	para      ir.Paragraph
	charCount uint32
	charShapeRefs []charShapeRef
}

type charShapeRef struct {
	offset int
	id     uint32
}

func newParaBuilder() *paraBuilder {
	return &paraBuilder{para: ir.Paragraph{Runs: []ir.Run{{}}}}
}

// decodeParagraphHeader parses a ParagraphHeader record into a fresh
// paraBuilder (spec.md §4.F dispatch table).
func decodeParagraphHeader(payload []byte) (*paraBuilder, error) {
	r := binio.NewReader(payload)
	pb := newParaBuilder()

	charCount, err := r.U32()
	if err != nil {
		return nil, err
	}
	pb.charCount = charCount
	if _, err := r.U32(); err != nil { // control mask, not modeled
		return nil, err
	}
	paraShapeID, err := r.U32()
	if err != nil {
		return nil, err
	}
	styleID, err := r.U8()
	if err != nil {
		return nil, err
	}
	divideKind, err := r.U8()
	if err != nil {
		return nil, err
	}
	if _, err := r.U16(); err != nil { // char-shape count, re-derived from refs on encode
		return nil, err
	}
	if _, err := r.U16(); err != nil { // range-tag count, re-derived on encode
		return nil, err
	}
	if _, err := r.U16(); err != nil { // line-segment count, re-derived on encode
		return nil, err
	}
	instanceID, err := r.U32()
	if err != nil {
		return nil, err
	}

	pb.para.ParaShapeID = paraShapeID
	pb.para.StyleID = uint32(styleID)
	pb.para.Break = ir.BreakType(divideKind)
	if instanceID != 0 {
		v := instanceID
		pb.para.InstanceID = &v
	}
	return pb, nil
}

// encodeParagraphHeader is the inverse of decodeParagraphHeader.
func (pb *paraBuilder) encodeParagraphHeader() []byte {
	w := binio.NewWriter()
	w.U32(pb.charCount)
	w.U32(0) // control mask
	w.U32(pb.para.ParaShapeID)
	w.U8(uint8(pb.para.StyleID))
	w.U8(uint8(pb.para.Break))
	w.U16(uint16(len(pb.charShapeRefs)))
	w.U16(uint16(len(pb.para.RangeTags)))
	w.U16(0) // line-segment count; LineSegments is round-tripped as a single opaque blob
	var instanceID uint32
	if pb.para.InstanceID != nil {
		instanceID = *pb.para.InstanceID
	}
	w.U32(instanceID)
	return w.Bytes()
}

// decodeParagraphText parses a ParagraphText record's UTF-16LE code-unit
// stream into a single initial run, splitting inline control
// code-points into RunContent markers and queuing every attach-point
// marker (see isInlineControlMarker) for later control binding (spec.md §4.F "Inline control
// characters").
func decodeParagraphText(payload []byte, b *builder) error {
	pb := b.curPara
	r := binio.NewReader(payload)
	n := len(payload) / 2
	units, err := r.RawUTF16(n)
	if err != nil {
		return err
	}

	run := &pb.para.Runs[len(pb.para.Runs)-1]
	i := 0
	for i < len(units) {
		u := units[i]
		switch {
		case isInlineControlMarker(u):
			run.Contents = append(run.Contents, ir.RunContent{Kind: ir.RunControl})
			b.controlQueue = append(b.controlQueue, queuedSlot{run: run, idx: len(run.Contents) - 1})
			i += 1 + extraWidth(u)
		case controlChar(u) == ctrlTab:
			run.Contents = append(run.Contents, ir.NewTabContent())
			i++
		case controlChar(u) == ctrlLineBreak:
			run.Contents = append(run.Contents, ir.NewLineBreakContent())
			i++
		case controlChar(u) == ctrlParagraphBreak:
			i++
		case controlChar(u) == ctrlHardHyphen:
			run.Contents = append(run.Contents, ir.NewHyphenContent())
			i++
		case controlChar(u) == ctrlNonBreakingSpace:
			run.Contents = append(run.Contents, ir.NewNonBreakingSpaceContent())
			i++
		case controlChar(u) == ctrlFieldStart:
			run.Contents = append(run.Contents, ir.NewFieldStartContent())
			i += 1 + extraWidth(u)
		case controlChar(u) == ctrlFieldEnd:
			run.Contents = append(run.Contents, ir.NewFieldEndContent())
			i += 1 + extraWidth(u)
		case controlChar(u) == ctrlBookmarkStart:
			id, name, consumed := decodeBookmarkStart(units[i:])
			run.Contents = append(run.Contents, ir.NewBookmarkStartContent(id, name))
			i += consumed
		case controlChar(u) == ctrlBookmarkEnd:
			run.Contents = append(run.Contents, ir.NewBookmarkEndContent())
			i += 1 + extraWidth(u)
		case controlChar(u) == ctrlSectionColumnDef, controlChar(u) == ctrlTitleMark:
			// Section/column definition and title marks carry no
			// RunContent of their own; SectionDefinition content is
			// surfaced through PageDefinition on the section instead.
			i += 1 + extraWidth(u)
		default:
			j := i
			for j < len(units) && !isControlChar(units[j]) {
				j++
			}
			run.Contents = append(run.Contents, ir.NewTextContent(decodeUTF16Run(units[i:j])))
			i = j
		}
	}
	return nil
}

func decodeUTF16Run(units []uint16) string {
	return string(utf16.Decode(units))
}

// decodeBookmarkStart reads the bookmark id that follows a 0x10 marker
// in its extended parameter words. The name is not read from the
// stream and is always returned empty.
func decodeBookmarkStart(units []uint16) (id uint32, name string, consumed int) {
	width := 1 + extraWidth(uint16(ctrlBookmarkStart))
	if len(units) < width {
		return 0, "", len(units)
	}
	if width >= 3 {
		id = uint32(units[1]) | uint32(units[2])<<16
	}
	return id, "", width
}

// encodeParagraphText is the inverse of decodeParagraphText for the
// run the builder produced; used only by the writer, over a paragraph's
// runs (see encodeParagraphRecords in section.go).
func encodeParagraphText(runs []ir.Run, charShapeRefs []charShapeRef) []byte {
	w := binio.NewWriter()
	for _, run := range runs {
		for _, rc := range run.Contents {
			switch rc.Kind {
			case ir.RunText:
				w.RawUTF16(utf16.Encode([]rune(rc.Text)))
			case ir.RunTab:
				w.RawUTF16([]uint16{uint16(ctrlTab)})
			case ir.RunLineBreak:
				w.RawUTF16([]uint16{uint16(ctrlLineBreak)})
			case ir.RunHyphen:
				w.RawUTF16([]uint16{uint16(ctrlHardHyphen)})
			case ir.RunNonBreakingSpace, ir.RunFixedWidthSpace:
				w.RawUTF16([]uint16{uint16(ctrlNonBreakingSpace)})
			case ir.RunFieldStart:
				writeExtended(w, ctrlFieldStart)
			case ir.RunFieldEnd:
				writeExtended(w, ctrlFieldEnd)
			case ir.RunBookmarkStart:
				units := make([]uint16, 1+extraWidth(uint16(ctrlBookmarkStart)))
				units[0] = uint16(ctrlBookmarkStart)
				if len(units) >= 3 {
					units[1] = uint16(rc.BookmarkID)
					units[2] = uint16(rc.BookmarkID >> 16)
				}
				w.RawUTF16(units)
			case ir.RunBookmarkEnd:
				writeExtended(w, ctrlBookmarkEnd)
			case ir.RunControl:
				marker := markerFor(rc.Control)
				writeExtended(w, marker)
			}
		}
	}
	return w.Bytes()
}

func writeExtended(w *binio.Writer, c controlChar) {
	units := make([]uint16, 1+extraWidth(uint16(c)))
	units[0] = uint16(c)
	w.RawUTF16(units)
}

// markerFor picks the inline control character a control was bound to
// based on its kind, for writing.
func markerFor(c *ir.Control) controlChar {
	if c == nil {
		return ctrlInlineControl
	}
	switch c.Kind {
	case ir.ControlTable, ir.ControlShape, ir.ControlPicture, ir.ControlOle:
		return ctrlDrawingObject
	case ir.ControlHiddenComment:
		return ctrlHiddenComment
	case ir.ControlTextBox:
		return ctrlHeaderFooter
	case ir.ControlFootnote, ir.ControlEndnote:
		return ctrlFootnoteEndnote
	case ir.ControlAutoNumber, ir.ControlNewNumber:
		return ctrlAutoNumber
	default:
		return ctrlInlineControl
	}
}

// decodeParagraphCharacterShape parses the 8-byte
// (start_char_offset, char_shape_id) pairs and re-splits the
// paragraph's single initial run at each offset (spec.md §4.F).
func decodeParagraphCharacterShape(payload []byte, pb *paraBuilder) error {
	r := binio.NewReader(payload)
	for r.Remaining() >= 8 {
		offset, err := r.U32()
		if err != nil {
			return err
		}
		id, err := r.U32()
		if err != nil {
			return err
		}
		pb.charShapeRefs = append(pb.charShapeRefs, charShapeRef{offset: int(offset), id: id})
	}
	pb.para.Runs = splitRunsByCharShape(pb.para.Runs, pb.charShapeRefs)
	return nil
}

// splitRunsByCharShape rewrites a flat run list so each run's
// CharShapeID matches the shape reference active at its start,
// splitting Text content at rune boundaries where a shape change
// falls inside it.
func splitRunsByCharShape(runs []ir.Run, refs []charShapeRef) []ir.Run {
	if len(refs) == 0 {
		return runs
	}
	shapeAt := func(pos int) uint32 {
		id := uint32(0)
		for _, ref := range refs {
			if ref.offset <= pos {
				id = ref.id
			}
		}
		return id
	}

	out := make([]ir.Run, 0, len(runs))
	pos := 0
	cur := ir.Run{CharShapeID: shapeAt(0)}
	flush := func() {
		if len(cur.Contents) > 0 {
			out = append(out, cur)
		}
	}
	for _, run := range runs {
		for _, rc := range run.Contents {
			if rc.Kind != ir.RunText {
				want := shapeAt(pos)
				if want != cur.CharShapeID {
					flush()
					cur = ir.Run{CharShapeID: want}
				}
				cur.Contents = append(cur.Contents, rc)
				pos++
				continue
			}
			for _, ch := range rc.Text {
				want := shapeAt(pos)
				if want != cur.CharShapeID {
					flush()
					cur = ir.Run{CharShapeID: want}
				}
				if n := len(cur.Contents); n > 0 && cur.Contents[n-1].Kind == ir.RunText {
					cur.Contents[n-1].Text += string(ch)
				} else {
					cur.Contents = append(cur.Contents, ir.NewTextContent(string(ch)))
				}
				pos++
			}
		}
	}
	flush()
	if len(out) == 0 {
		out = append(out, ir.Run{})
	}
	return out
}

// encodeParagraphCharacterShape is the inverse of
// decodeParagraphCharacterShape, deriving offsets from run boundaries.
func encodeParagraphCharacterShape(runs []ir.Run) []byte {
	w := binio.NewWriter()
	pos := 0
	var lastID uint32
	first := true
	for _, run := range runs {
		if first || run.CharShapeID != lastID {
			w.U32(uint32(pos))
			w.U32(run.CharShapeID)
			lastID = run.CharShapeID
			first = false
		}
		pos += run.TextLength()
	}
	return w.Bytes()
}

// decodeParagraphRangeTag parses (start,end,kind) triples.
func decodeParagraphRangeTag(payload []byte, pb *paraBuilder) error {
	r := binio.NewReader(payload)
	for r.Remaining() >= 12 {
		start, err := r.U32()
		if err != nil {
			return err
		}
		end, err := r.U32()
		if err != nil {
			return err
		}
		raw, err := r.U32()
		if err != nil {
			return err
		}
		kind := ir.RangeTagKind(raw & 0xFF)
		tag := ir.RangeTag{Start: int(start), End: int(end), Kind: kind}
		if kind > ir.RangeTagOther {
			tag.Kind = ir.RangeTagOther
			tag.Other = raw
		}
		pb.para.RangeTags = append(pb.para.RangeTags, tag)
	}
	return nil
}

func encodeParagraphRangeTag(tags []ir.RangeTag) []byte {
	w := binio.NewWriter()
	for _, t := range tags {
		w.U32(uint32(t.Start))
		w.U32(uint32(t.End))
		if t.Kind == ir.RangeTagOther && t.Other != 0 {
			w.U32(t.Other)
		} else {
			w.U32(uint32(t.Kind))
		}
	}
	return w.Bytes()
}
