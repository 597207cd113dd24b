// Package schema builds typed HWPX entities (spec.md §4.J) out of
// pkg/hwpx/oxml's generic AnyElement tree by walking each element's
// children with ChildrenNamed/FirstChildNamed; it does not call oxml's
// One/Opt/Many/Nonempty matchers. section.go maps an hs:sec element onto
// an ir.Section the same way pkg/hwp/body maps a BodyText record stream
// onto one — both are readers for the two halves of spec.md §4.K's
// "HWPX semantic layer maps 1:1 onto the same Document model" claim.
// Grounded on pkg/hwp/body/section.go's dispatch-and-build shape,
// generalized from record tags to element names, and on
// go-docx/pkg/docx/oxml/table_custom.go's IterBlockItems for walking a
// mixed paragraph/table child sequence positionally.
package schema

import (
	"strconv"

	"github.com/vortex/go-hwp/pkg/hwpx/oxml"
	"github.com/vortex/go-hwp/pkg/ir"
	"github.com/vortex/go-hwp/pkg/primitive"
)

var (
	qnSec         = oxml.Qn("hs:sec")
	qnP           = oxml.Qn("hp:p")
	qnRun         = oxml.Qn("hp:run")
	qnT           = oxml.Qn("hp:t")
	qnTab         = oxml.Qn("hp:tab")
	qnLineBreak   = oxml.Qn("hp:linebreak")
	qnHyphen      = oxml.Qn("hp:hyphen")
	qnNBSpace     = oxml.Qn("hp:nbSpace")
	qnFWSpace     = oxml.Qn("hp:fwSpace")
	qnFieldBegin  = oxml.Qn("hp:fieldBegin")
	qnFieldEnd    = oxml.Qn("hp:fieldEnd")
	qnBookmark    = oxml.Qn("hp:bookmark")
	qnCtrl        = oxml.Qn("hp:ctrl")
	qnTbl         = oxml.Qn("hp:tbl")
	qnTr          = oxml.Qn("hp:tr")
	qnTc          = oxml.Qn("hp:tc")
	qnSubList     = oxml.Qn("hp:subList")
	qnCellAddr    = oxml.Qn("hp:cellAddr")
	qnCellSpan    = oxml.Qn("hp:cellSpan")
	qnCellSz      = oxml.Qn("hp:cellSz")
	qnHyperlink   = oxml.Qn("hp:hyperlink")
	qnPic         = oxml.Qn("hp:pic")
	qnImg         = oxml.Qn("hc:img")
	qnRect        = oxml.Qn("hp:rect")
	qnEllipse     = oxml.Qn("hp:ellipse")
	qnLine        = oxml.Qn("hp:line")
	qnArc         = oxml.Qn("hp:arc")
	qnPolygon     = oxml.Qn("hp:polygon")
	qnCurve       = oxml.Qn("hp:curve")
	qnConnectLine = oxml.Qn("hp:connectLine")
	qnEquation    = oxml.Qn("hp:equation")
	qnOle         = oxml.Qn("hp:ole")
	qnTextArt     = oxml.Qn("hp:textart")
)

// DecodeSection parses an hs:sec root element into an ir.Section.
func DecodeSection(root oxml.AnyElement) (*ir.Section, error) {
	if root.ClarkName() != qnSec {
		return nil, &oxml.UnexpectedElementError{Parent: "document", Expected: qnSec, Got: root.ClarkName()}
	}
	sec := &ir.Section{}
	for _, child := range root.Children() {
		if child.ClarkName() != qnP {
			continue
		}
		para, err := decodeParagraph(child)
		if err != nil {
			return nil, err
		}
		sec.Paragraphs = append(sec.Paragraphs, para)
	}
	return sec, nil
}

func decodeParagraph(el oxml.AnyElement) (ir.Paragraph, error) {
	var para ir.Paragraph
	if v, ok := el.Attr("paraPrIDRef"); ok {
		para.ParaShapeID = parseUintAttr(v)
	}
	if v, ok := el.Attr("styleIDRef"); ok {
		para.StyleID = parseUintAttr(v)
	}
	if v, ok := el.Attr("instId"); ok {
		id := uint32(parseUintAttr(v))
		para.InstanceID = &id
	}
	for _, runEl := range el.ChildrenNamed(qnRun) {
		run, err := decodeRun(runEl)
		if err != nil {
			return para, err
		}
		para.Runs = append(para.Runs, run)
	}
	return para, nil
}

func decodeRun(el oxml.AnyElement) (ir.Run, error) {
	var run ir.Run
	if v, ok := el.Attr("charPrIDRef"); ok {
		run.CharShapeID = parseUintAttr(v)
	}
	for _, c := range el.Children() {
		switch c.ClarkName() {
		case qnT:
			run.Contents = append(run.Contents, ir.NewTextContent(c.Text()))
		case qnTab:
			run.Contents = append(run.Contents, ir.NewTabContent())
		case qnLineBreak:
			run.Contents = append(run.Contents, ir.NewLineBreakContent())
		case qnHyphen:
			run.Contents = append(run.Contents, ir.NewHyphenContent())
		case qnNBSpace:
			run.Contents = append(run.Contents, ir.NewNonBreakingSpaceContent())
		case qnFWSpace:
			run.Contents = append(run.Contents, ir.NewFixedWidthSpaceContent())
		case qnFieldBegin:
			run.Contents = append(run.Contents, ir.NewFieldStartContent())
		case qnFieldEnd:
			run.Contents = append(run.Contents, ir.NewFieldEndContent())
		case qnBookmark:
			run.Contents = append(run.Contents, decodeBookmark(c))
		case qnCtrl:
			content, err := decodeCtrl(c)
			if err != nil {
				return run, err
			}
			run.Contents = append(run.Contents, content)
		}
	}
	return run, nil
}

func decodeBookmark(el oxml.AnyElement) ir.RunContent {
	if v, ok := el.Attr("type"); ok && v == "end" {
		return ir.NewBookmarkEndContent()
	}
	id, _ := el.Attr("id")
	name, _ := el.Attr("name")
	return ir.NewBookmarkStartContent(uint32(parseUintAttr(id)), name)
}

func decodeCtrl(el oxml.AnyElement) (ir.RunContent, error) {
	if tbl, ok := el.FirstChildNamed(qnTbl); ok {
		ctrl, err := decodeTable(tbl)
		if err != nil {
			return ir.RunContent{}, err
		}
		return ir.NewControlContent(ctrl), nil
	}
	if hl, ok := el.FirstChildNamed(qnHyperlink); ok {
		return ir.NewControlContent(decodeHyperlink(hl)), nil
	}
	if pic, ok := el.FirstChildNamed(qnPic); ok {
		return ir.NewControlContent(decodePicture(pic)), nil
	}
	for _, qn := range []string{qnRect, qnEllipse, qnLine, qnArc, qnPolygon, qnCurve} {
		if _, ok := el.FirstChildNamed(qn); ok {
			return ir.NewControlContent(&ir.Control{Kind: ir.ControlShape}), nil
		}
	}
	if cl, ok := el.FirstChildNamed(qnConnectLine); ok {
		_ = cl
		return ir.NewControlContent(&ir.Control{Kind: ir.ControlConnectLine}), nil
	}
	if eq, ok := el.FirstChildNamed(qnEquation); ok {
		return ir.NewControlContent(decodeEquation(eq)), nil
	}
	if ole, ok := el.FirstChildNamed(qnOle); ok {
		return ir.NewControlContent(decodeOle(ole)), nil
	}
	if ta, ok := el.FirstChildNamed(qnTextArt); ok {
		return ir.NewControlContent(decodeTextArt(ta)), nil
	}
	// Unrecognized control shape (e.g. form objects; the typed
	// sub-schema in pkg/hwpx/schema/formcontrol has no encoder): keep a
	// ControlUnknown placeholder so the control's position in the run
	// survives. Its tag and payload are left empty: the element's
	// attributes and children are not kept, and encoding writes back an
	// empty hp:ctrl.
	return ir.NewControlContent(&ir.Control{Kind: ir.ControlUnknown, Unknown: ir.UnknownControl{}}), nil
}

func decodePicture(el oxml.AnyElement) *ir.Control {
	p := &ir.PicturePayload{}
	if img, ok := el.FirstChildNamed(qnImg); ok {
		if ref, ok := img.Attr("binaryItemIDRef"); ok {
			p.BinDataID = uint16(parseUintAttr(ref))
		}
	}
	return &ir.Control{Kind: ir.ControlPicture, Payload: p}
}

func decodeEquation(el oxml.AnyElement) *ir.Control {
	script, _ := el.Attr("script")
	if script == "" {
		script = el.Text()
	}
	return &ir.Control{Kind: ir.ControlEquation, Payload: &ir.EquationPayload{Script: script}}
}

func decodeOle(el oxml.AnyElement) *ir.Control {
	p := &ir.PicturePayload{}
	if img, ok := el.FirstChildNamed(qnImg); ok {
		if ref, ok := img.Attr("binaryItemIDRef"); ok {
			p.BinDataID = uint16(parseUintAttr(ref))
		}
	}
	return &ir.Control{Kind: ir.ControlOle, Payload: p}
}

func decodeTextArt(el oxml.AnyElement) *ir.Control {
	text, _ := el.Attr("text")
	return &ir.Control{Kind: ir.ControlTextArt, Payload: &ir.TextArtPayload{Text: text}}
}

func decodeHyperlink(el oxml.AnyElement) *ir.Control {
	href, _ := el.Attr("href")
	return &ir.Control{
		Kind:    ir.ControlHyperlink,
		Payload: &ir.HyperlinkPayload{Target: href},
	}
}

func decodeTable(el oxml.AnyElement) (*ir.Control, error) {
	rowCount := parseUintAttr(firstOr(el, "rowCnt"))
	colCount := parseUintAttr(firstOr(el, "colCnt"))
	table := &ir.Table{RowCount: rowCount, ColumnCount: colCount}
	for _, trEl := range el.ChildrenNamed(qnTr) {
		var row ir.Row
		for _, tcEl := range trEl.ChildrenNamed(qnTc) {
			cell, err := decodeCell(tcEl)
			if err != nil {
				return nil, err
			}
			row.Cells = append(row.Cells, cell)
		}
		table.Rows = append(table.Rows, row)
	}
	return &ir.Control{Kind: ir.ControlTable, Table: table}, nil
}

func decodeCell(el oxml.AnyElement) (ir.Cell, error) {
	var cell ir.Cell
	if addr, ok := el.FirstChildNamed(qnCellAddr); ok {
		cell.Column = parseUintAttr(firstOr(addr, "colAddr"))
		cell.Row = parseUintAttr(firstOr(addr, "rowAddr"))
	}
	if span, ok := el.FirstChildNamed(qnCellSpan); ok {
		cell.ColSpan = parseUintAttr(firstOr(span, "colSpan"))
		cell.RowSpan = parseUintAttr(firstOr(span, "rowSpan"))
	}
	if sz, ok := el.FirstChildNamed(qnCellSz); ok {
		cell.Width = primitive.HwpUnit(parseUintAttr(firstOr(sz, "width")))
		cell.Height = primitive.HwpUnit(parseUintAttr(firstOr(sz, "height")))
	}
	sub, ok := el.FirstChildNamed(qnSubList)
	if !ok {
		return cell, nil
	}
	for _, pEl := range sub.ChildrenNamed(qnP) {
		para, err := decodeParagraph(pEl)
		if err != nil {
			return cell, err
		}
		cell.Paragraphs = append(cell.Paragraphs, para)
	}
	return cell, nil
}

func firstOr(el oxml.AnyElement, attr string) string {
	v, _ := el.Attr(attr)
	return v
}

func parseUintAttr(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
