// Package body implements the BodyText section state machine: the
// nested record contexts (table cells, headers/footers, notes,
// text-boxes) that a flat sequence of tagged records resolves into a
// tree of paragraphs, runs and controls (spec.md §4.F). Grounded on
// original_source/crates/hwp/src/body/{section,control}.rs for the
// context-stack/dispatch shape; DocInfo has no analogous nesting so
// this package reuses the same record.Iterator + per-tag dispatch
// pattern pkg/hwp/docinfo established, generalized with an explicit
// stack.
package body

import (
	"github.com/vortex/go-hwp/pkg/hwp/binio"
	"github.com/vortex/go-hwp/pkg/hwp/record"
	"github.com/vortex/go-hwp/pkg/ir"
	"github.com/vortex/go-hwp/pkg/primitive"
)

// builder holds every piece of mutable state the section parser
// threads through the record stream (spec.md §4.F).
type builder struct {
	section ir.Section

	stack        []*parsingContext
	curPara      *paraBuilder
	curCtrl      *ctrlBuilder
	pendingOwner *ctrlBuilder
	controlQueue []queuedSlot
}

func newBuilder() *builder {
	return &builder{stack: []*parsingContext{{kind: contextSection}}}
}

// Decode parses a /BodyText/Section{N} (or /ViewText/Section{i})
// stream into its IR tree. Malformed size fields, truncated payloads
// and unknown tag ids are recoverable: the iterator stops cleanly at
// the first irrecoverable header and Decode returns the partial
// section built so far (spec.md §4.F "Failure semantics").
func Decode(data []byte) (*ir.Section, error) {
	b := newBuilder()
	it := record.NewIterator(data)

	for it.Next() {
		rec := it.Record()
		if err := b.dispatch(rec.Header.Tag, rec.Payload); err != nil {
			return &b.section, nil
		}
	}
	b.flushParagraph()
	b.maybeFlushControl()
	return &b.section, nil
}

func (b *builder) dispatch(tag record.TagId, payload []byte) error {
	switch tag {
	case record.TagParagraphHeader:
		b.flushParagraph()
		b.maybeFlushControl()
		pb, err := decodeParagraphHeader(payload)
		if err != nil {
			return err
		}
		b.curPara = pb

	case record.TagParagraphText:
		if b.curPara == nil {
			b.curPara = newParaBuilder()
		}
		return decodeParagraphText(payload, b)

	case record.TagParagraphCharacterShape:
		if b.curPara != nil {
			if err := decodeParagraphCharacterShape(payload, b.curPara); err != nil {
				return err
			}
			// The split rebuilt the paragraph's runs: re-point its queued
			// slots (the newest queue entries) at the placeholders in the new runs.
			q := len(b.controlQueue)
			for ri := len(b.curPara.para.Runs) - 1; ri >= 0; ri-- {
				run := &b.curPara.para.Runs[ri]
				for ci := len(run.Contents) - 1; ci >= 0 && q > 0; ci-- {
					if run.Contents[ci].Kind == ir.RunControl && run.Contents[ci].Control == nil {
						q--
						b.controlQueue[q] = queuedSlot{run: run, idx: ci}
					}
				}
			}
		}

	case record.TagParagraphLineSegment:
		if b.curPara != nil {
			b.curPara.para.LineSegments = append([]byte(nil), payload...)
		}

	case record.TagParagraphRangeTag:
		if b.curPara != nil {
			return decodeParagraphRangeTag(payload, b.curPara)
		}

	case record.TagControlHeader:
		b.maybeFlushControl()
		b.flushInnerControl()
		cb, err := decodeControlHeader(payload)
		if err != nil {
			return err
		}
		b.curCtrl = cb

	case record.TagListHeader:
		return b.handleListHeader(payload)

	case record.TagControlData:
		if b.curCtrl != nil {
			b.curCtrl.applyControlData(payload)
		} else if b.pendingOwner != nil {
			b.pendingOwner.applyControlData(payload)
		}

	case record.TagShapeComponentPicture:
		if b.curCtrl != nil {
			b.curCtrl.ctrl.Payload = decodePicturePayload(payload)
		}

	case record.TagEquation:
		if b.curCtrl != nil {
			b.curCtrl.ctrl.Payload = decodeEquationPayload(payload)
		}

	case record.TagChartData, record.TagChartData2:
		if b.curCtrl != nil {
			b.curCtrl.ctrl.Payload = &ir.ChartPayload{RawXMLData: append([]byte(nil), payload...)}
		}

	case record.TagVideoData, record.TagVideoData2:
		if b.curCtrl != nil {
			url, _ := binio.NewReader(payload).HwpString()
			b.curCtrl.ctrl.Payload = &ir.VideoPayload{URL: url}
		}

	case record.TagShapeComponentTextArt:
		if b.curCtrl != nil {
			text, _ := binio.NewReader(payload).HwpString()
			b.curCtrl.ctrl.Payload = &ir.TextArtPayload{Text: text}
		}

	case record.TagPageDefinition:
		b.section.PageDef = decodePageDefinition(payload)

	case record.TagFootnoteShape:
		b.section.FootnoteShape = ir.FootnoteShape{Raw: append([]byte(nil), payload...)}

	case record.TagPageBorderFill:
		b.section.PageBorder = append([]byte(nil), payload...)

	case record.TagMemoShape, record.TagMemoShape2, record.TagMemoList, record.TagMemoList2:
		b.section.Memos = append(b.section.Memos, payload...)
	}
	return nil
}

// flushInnerControl binds and clears a still-open curCtrl that is
// about to be superseded. This happens when an atomic control (e.g.
// Picture) opens inside a context that is still collecting (a table
// cell, footnote, text box): maybeFlushControl's len(b.stack) > 1
// guard correctly withholds the *owning* container from finalizing
// early, but it also leaves this unrelated inner control dangling, so
// the next ControlHeader or ListHeader must flush it explicitly or it
// either gets silently overwritten or mistaken for the real owner.
func (b *builder) flushInnerControl() {
	if b.curCtrl != nil {
		b.bindControl(b.curCtrl.finalize())
		b.curCtrl = nil
	}
}

func (b *builder) handleListHeader(payload []byte) error {
	if b.pendingOwner != nil {
		b.flushInnerControl()
	}
	owner := b.pendingOwner
	if owner == nil {
		owner = b.curCtrl
	}
	if owner == nil {
		return nil
	}
	b.curCtrl = nil
	b.pendingOwner = owner

	// The enclosing paragraph's ParagraphText already carried its full
	// content (including this control's placeholder marker) in one
	// record; flush it to its own frame now, before pushing the nested
	// context, so the next nested ParagraphHeader doesn't wrongly
	// target this new frame instead.
	b.flushParagraph()

	isTable := owner.kind == ir.ControlTable
	expected, cell, err := decodeListHeader(payload, isTable)
	if err != nil {
		return err
	}
	ctx := &parsingContext{kind: owner.contextKindFor(), expected: expected, owner: owner, cell: cell}
	b.stack = append(b.stack, ctx)
	return nil
}

// flushParagraph moves the in-progress paragraph into its context's
// accumulator (or the section, at the bottom frame) and applies the
// context-completion rule (spec.md §4.F).
func (b *builder) flushParagraph() {
	if b.curPara == nil {
		return
	}
	pb := b.curPara
	b.curPara = nil
	top := b.stack[len(b.stack)-1]
	if top.kind == contextSection {
		b.section.Paragraphs = append(b.section.Paragraphs, pb.para)
		return
	}
	top.paras = append(top.paras, pb.para)
	top.completed++
	b.tryCompleteContext()
}

// tryCompleteContext pops every top-of-stack frame whose completed
// count has reached its expected count, splicing each into its owning
// control (spec.md §4.F "Context completion rule").
func (b *builder) tryCompleteContext() {
	for len(b.stack) > 1 {
		top := b.stack[len(b.stack)-1]
		if !top.complete() {
			return
		}
		b.stack = b.stack[:len(b.stack)-1]
		switch top.kind {
		case contextTableCell:
			if top.cell != nil {
				top.owner.addCell(ir.Cell{
					Row: top.cell.row, Column: top.cell.col,
					RowSpan: top.cell.rowSpan, ColSpan: top.cell.colSpan,
					Width: primitive.HwpUnit(top.cell.width), Height: primitive.HwpUnit(top.cell.height),
					Padding: primitive.Insets{
						Left: primitive.HwpUnit(top.cell.padding[0]), Right: primitive.HwpUnit(top.cell.padding[1]),
						Top: primitive.HwpUnit(top.cell.padding[2]), Bottom: primitive.HwpUnit(top.cell.padding[3]),
					},
					BorderFillID: top.cell.borderFillID,
					Paragraphs:   top.paras,
				})
				if top.owner.ctrl.Table == nil {
					top.owner.ctrl.Table = &ir.Table{}
				}
				top.owner.ctrl.Table.RowCount = top.cell.totalRows
				top.owner.ctrl.Table.ColumnCount = top.cell.totalCols
			}
		default: // contextHeaderFooter, contextFootnoteEndnote, contextTextBox
			top.owner.ctrl.Children = top.paras
		}
	}
}

// maybeFlushControl finalizes and binds the current (atomic) or
// most-recently-popped (container) control, but only once the
// context stack has returned to the bottom Section frame: a table
// still collecting cells must not be finalized between them
// (spec.md §4.F "ControlHeader: flush any pending control").
func (b *builder) maybeFlushControl() {
	if len(b.stack) > 1 {
		return
	}
	if b.curCtrl != nil {
		b.bindControl(b.curCtrl.finalize())
		b.curCtrl = nil
	}
	if b.pendingOwner != nil {
		b.bindControl(b.pendingOwner.finalize())
		b.pendingOwner = nil
	}
}

// bindControl resolves the oldest outstanding control-queue entry to
// ctrl, or — if no marker is pending (a malformed or synthetic
// stream) — appends it as a trailing control content on the current
// run so it is never silently dropped.
func (b *builder) bindControl(ctrl *ir.Control) {
	if len(b.controlQueue) > 0 {
		slot := b.controlQueue[0]
		b.controlQueue = b.controlQueue[1:]
		slot.run.Contents[slot.idx].Control = ctrl
		return
	}
	if b.curPara != nil && len(b.curPara.para.Runs) > 0 {
		run := &b.curPara.para.Runs[len(b.curPara.para.Runs)-1]
		run.Contents = append(run.Contents, ir.NewControlContent(ctrl))
	}
}

func decodePageDefinition(payload []byte) ir.PageDef {
	r := binio.NewReader(payload)
	width, _ := r.I32()
	height, _ := r.I32()
	left, _ := r.I32()
	right, _ := r.I32()
	top, _ := r.I32()
	bottom, _ := r.I32()
	landscape, _ := r.U8()
	return ir.PageDef{
		Size:      primitive.Size{Width: primitive.HwpUnit(width), Height: primitive.HwpUnit(height)},
		Margins:   primitive.Insets{Left: primitive.HwpUnit(left), Right: primitive.HwpUnit(right), Top: primitive.HwpUnit(top), Bottom: primitive.HwpUnit(bottom)},
		Landscape: landscape != 0,
	}
}

func encodePageDefinition(p ir.PageDef) []byte {
	w := binio.NewWriter()
	w.I32(int32(p.Size.Width))
	w.I32(int32(p.Size.Height))
	w.I32(int32(p.Margins.Left))
	w.I32(int32(p.Margins.Right))
	w.I32(int32(p.Margins.Top))
	w.I32(int32(p.Margins.Bottom))
	if p.Landscape {
		w.U8(1)
	} else {
		w.U8(0)
	}
	return w.Bytes()
}

func decodePicturePayload(payload []byte) *ir.PicturePayload {
	r := binio.NewReader(payload)
	id, _ := r.U16()
	return &ir.PicturePayload{BinDataID: id}
}

func decodeEquationPayload(payload []byte) *ir.EquationPayload {
	script, _ := binio.NewReader(payload).HwpString()
	return &ir.EquationPayload{Script: script}
}

// Encode is the inverse of Decode: it serializes an ir.Section back
// into a BodyText record stream, re-deriving header counts and
// char-shape/range-tag offsets from the IR's own slices rather than
// trusting any stashed copy (spec.md §8 property 9, round-trip).
func Encode(sec *ir.Section) []byte {
	w := binio.NewWriter()

	pageDef := encodePageDefinition(sec.PageDef)
	record.EncodeHeader(w, record.Header{Tag: record.TagPageDefinition, Size: uint32(len(pageDef))})
	w.Raw(pageDef)

	if sec.FootnoteShape.Raw != nil {
		record.EncodeHeader(w, record.Header{Tag: record.TagFootnoteShape, Size: uint32(len(sec.FootnoteShape.Raw))})
		w.Raw(sec.FootnoteShape.Raw)
	}
	if sec.PageBorder != nil {
		record.EncodeHeader(w, record.Header{Tag: record.TagPageBorderFill, Size: uint32(len(sec.PageBorder))})
		w.Raw(sec.PageBorder)
	}

	for _, para := range sec.Paragraphs {
		encodeParagraphRecords(w, para, 0)
	}

	if sec.Memos != nil {
		record.EncodeHeader(w, record.Header{Tag: record.TagMemoList, Size: uint32(len(sec.Memos))})
		w.Raw(sec.Memos)
	}
	return w.Bytes()
}

// encodeParagraphRecords writes one paragraph's ParagraphHeader/Text/
// CharacterShape/RangeTag/LineSegment records at level, followed by
// every control its runs carry (at level+1, per the format's nesting
// convention).
func encodeParagraphRecords(w *binio.Writer, para ir.Paragraph, level uint16) {
	pb := &paraBuilder{para: para}
	for _, r := range para.Runs {
		pb.charCount += uint32(r.TextLength())
	}

	header := pb.encodeParagraphHeader()
	record.EncodeHeader(w, record.Header{Tag: record.TagParagraphHeader, Level: level, Size: uint32(len(header))})
	w.Raw(header)

	text := encodeParagraphText(para.Runs, nil)
	record.EncodeHeader(w, record.Header{Tag: record.TagParagraphText, Level: level, Size: uint32(len(text))})
	w.Raw(text)

	charShape := encodeParagraphCharacterShape(para.Runs)
	record.EncodeHeader(w, record.Header{Tag: record.TagParagraphCharacterShape, Level: level, Size: uint32(len(charShape))})
	w.Raw(charShape)

	if len(para.RangeTags) > 0 {
		rangeTag := encodeParagraphRangeTag(para.RangeTags)
		record.EncodeHeader(w, record.Header{Tag: record.TagParagraphRangeTag, Level: level, Size: uint32(len(rangeTag))})
		w.Raw(rangeTag)
	}

	if len(para.LineSegments) > 0 {
		record.EncodeHeader(w, record.Header{Tag: record.TagParagraphLineSegment, Level: level, Size: uint32(len(para.LineSegments))})
		w.Raw(para.LineSegments)
	}

	for i := range para.Runs {
		for _, rc := range para.Runs[i].Contents {
			if rc.Kind == ir.RunControl && rc.Control != nil {
				encodeControl(w, rc.Control, level+1)
			}
		}
	}
}

// encodeControl writes a control's ControlHeader, its typed sub-record
// (shape component, equation, chart/video data, hyperlink ControlData)
// and, for controls with flowable content, the ListHeader/TableCell
// contexts enclosing its child paragraphs.
func encodeControl(w *binio.Writer, c *ir.Control, level uint16) {
	cb := &ctrlBuilder{id: idFor(c), kind: c.Kind, ctrl: *c}
	header := cb.encodeControlHeader()
	record.EncodeHeader(w, record.Header{Tag: record.TagControlHeader, Level: level, Size: uint32(len(header))})
	w.Raw(header)

	switch p := c.Payload.(type) {
	case *ir.PicturePayload:
		pw := binio.NewWriter()
		pw.U16(p.BinDataID)
		record.EncodeHeader(w, record.Header{Tag: record.TagShapeComponentPicture, Level: level, Size: uint32(pw.Len())})
		w.Raw(pw.Bytes())
	case *ir.EquationPayload:
		ew := binio.NewWriter()
		ew.HwpString(p.Script)
		record.EncodeHeader(w, record.Header{Tag: record.TagEquation, Level: level, Size: uint32(ew.Len())})
		w.Raw(ew.Bytes())
	case *ir.ChartPayload:
		record.EncodeHeader(w, record.Header{Tag: record.TagChartData, Level: level, Size: uint32(len(p.RawXMLData))})
		w.Raw(p.RawXMLData)
	case *ir.VideoPayload:
		vw := binio.NewWriter()
		vw.HwpString(p.URL)
		record.EncodeHeader(w, record.Header{Tag: record.TagVideoData, Level: level, Size: uint32(vw.Len())})
		w.Raw(vw.Bytes())
	case *ir.TextArtPayload:
		tw := binio.NewWriter()
		tw.HwpString(p.Text)
		record.EncodeHeader(w, record.Header{Tag: record.TagShapeComponentTextArt, Level: level, Size: uint32(tw.Len())})
		w.Raw(tw.Bytes())
	case *ir.HyperlinkPayload:
		hw := binio.NewWriter()
		hw.HwpString(p.Target)
		record.EncodeHeader(w, record.Header{Tag: record.TagControlData, Level: level, Size: uint32(hw.Len())})
		w.Raw(hw.Bytes())
	}

	if c.Table != nil {
		for _, row := range c.Table.Rows {
			for _, cell := range row.Cells {
				lhCell := &listHeaderCell{
					row: cell.Row, col: cell.Column, rowSpan: cell.RowSpan, colSpan: cell.ColSpan,
					width: int32(cell.Width), height: int32(cell.Height),
					padding: [4]int16{
						int16(cell.Padding.Left), int16(cell.Padding.Right),
						int16(cell.Padding.Top), int16(cell.Padding.Bottom),
					},
					borderFillID: cell.BorderFillID,
					totalRows:    c.Table.RowCount, totalCols: c.Table.ColumnCount,
				}
				lh := encodeListHeader(uint16(len(cell.Paragraphs)), lhCell)
				record.EncodeHeader(w, record.Header{Tag: record.TagListHeader, Level: level, Size: uint32(len(lh))})
				w.Raw(lh)
				for _, p := range cell.Paragraphs {
					encodeParagraphRecords(w, p, level+1)
				}
			}
		}
	} else if len(c.Children) > 0 {
		lh := encodeListHeader(uint16(len(c.Children)), nil)
		record.EncodeHeader(w, record.Header{Tag: record.TagListHeader, Level: level, Size: uint32(len(lh))})
		w.Raw(lh)
		for _, p := range c.Children {
			encodeParagraphRecords(w, p, level+1)
		}
	}
}

// idFor is the encode-side inverse of classify: each control kind gets
// one canonical FOURCC. Unknown controls replay the tag they were
// decoded with so round-tripping never invents a new control type.
func idFor(c *ir.Control) ctrlID {
	switch c.Kind {
	case ir.ControlTable:
		return idTable
	case ir.ControlShape:
		return idRectangle
	case ir.ControlEquation:
		return idEquation
	case ir.ControlPicture:
		return idPicture
	case ir.ControlOle:
		return idOle
	case ir.ControlTextBox:
		return idTextBox
	case ir.ControlFootnote:
		return idFootnote
	case ir.ControlEndnote:
		return idEndnote
	case ir.ControlHyperlink:
		return fourCC('%', 'd', 'a', 't')
	case ir.ControlBookmark:
		return idBookmark
	case ir.ControlIndexMark:
		return idIndexMark
	case ir.ControlAutoNumber:
		return idAutoNumber
	case ir.ControlNewNumber:
		return idNewNumber
	case ir.ControlHiddenComment:
		return idHiddenComm
	case ir.ControlChart:
		return idChart
	case ir.ControlVideo:
		return idVideo
	case ir.ControlFormObject:
		return idFormObject
	case ir.ControlTextArt:
		return idTextArt
	case ir.ControlConnectLine:
		return idConnectLine
	default:
		return ctrlID(c.Unknown.Tag)
	}
}
