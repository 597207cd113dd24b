package schema

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/vortex/go-hwp/pkg/hwpx/oxml"
	"github.com/vortex/go-hwp/pkg/ir"
)

// EncodeSection is the inverse of DecodeSection: it builds an hs:sec
// AnyElement from an ir.Section, suitable for oxml.Serialize.
func EncodeSection(sec *ir.Section) oxml.AnyElement {
	root := newElement("hs:sec")
	for _, para := range sec.Paragraphs {
		root.AddChild(encodeParagraph(para))
	}
	return oxml.Wrap(root)
}

func newElement(prefixedTag string) *etree.Element {
	qn := oxml.Qn(prefixedTag)
	uri, local, _ := oxml.SplitClark(qn)
	el := etree.NewElement(local)
	if pfx, ok := oxml.PrefixOf(uri); ok {
		el.Space = pfx
	}
	return el
}

func encodeParagraph(para ir.Paragraph) *etree.Element {
	el := newElement("hp:p")
	el.CreateAttr("paraPrIDRef", strconv.Itoa(int(para.ParaShapeID)))
	el.CreateAttr("styleIDRef", strconv.Itoa(int(para.StyleID)))
	if para.InstanceID != nil {
		el.CreateAttr("instId", strconv.Itoa(int(*para.InstanceID)))
	}
	for _, run := range para.Runs {
		el.AddChild(encodeRun(run))
	}
	return el
}

func encodeRun(run ir.Run) *etree.Element {
	el := newElement("hp:run")
	el.CreateAttr("charPrIDRef", strconv.Itoa(int(run.CharShapeID)))
	for _, content := range run.Contents {
		if child := encodeRunContent(content); child != nil {
			el.AddChild(child)
		}
	}
	return el
}

func encodeRunContent(c ir.RunContent) *etree.Element {
	switch c.Kind {
	case ir.RunText:
		el := newElement("hp:t")
		el.SetText(c.Text)
		return el
	case ir.RunTab:
		return newElement("hp:tab")
	case ir.RunLineBreak:
		return newElement("hp:linebreak")
	case ir.RunHyphen:
		return newElement("hp:hyphen")
	case ir.RunNonBreakingSpace:
		return newElement("hp:nbSpace")
	case ir.RunFixedWidthSpace:
		return newElement("hp:fwSpace")
	case ir.RunFieldStart:
		return newElement("hp:fieldBegin")
	case ir.RunFieldEnd:
		return newElement("hp:fieldEnd")
	case ir.RunBookmarkStart:
		el := newElement("hp:bookmark")
		el.CreateAttr("type", "start")
		el.CreateAttr("id", strconv.Itoa(int(c.BookmarkID)))
		el.CreateAttr("name", c.BookmarkName)
		return el
	case ir.RunBookmarkEnd:
		el := newElement("hp:bookmark")
		el.CreateAttr("type", "end")
		return el
	case ir.RunControl:
		return encodeCtrl(c.Control)
	default:
		return nil
	}
}

func encodeCtrl(ctrl *ir.Control) *etree.Element {
	el := newElement("hp:ctrl")
	switch ctrl.Kind {
	case ir.ControlTable:
		if ctrl.Table != nil {
			el.AddChild(encodeTable(ctrl.Table))
		}
	case ir.ControlHyperlink:
		hl := newElement("hp:hyperlink")
		if p, ok := ctrl.Payload.(*ir.HyperlinkPayload); ok {
			hl.CreateAttr("href", p.Target)
		}
		el.AddChild(hl)
	case ir.ControlPicture:
		pic := newElement("hp:pic")
		if p, ok := ctrl.Payload.(*ir.PicturePayload); ok {
			img := newElement("hc:img")
			img.CreateAttr("binaryItemIDRef", strconv.Itoa(int(p.BinDataID)))
			pic.AddChild(img)
		}
		el.AddChild(pic)
	case ir.ControlOle:
		ole := newElement("hp:ole")
		if p, ok := ctrl.Payload.(*ir.PicturePayload); ok {
			img := newElement("hc:img")
			img.CreateAttr("binaryItemIDRef", strconv.Itoa(int(p.BinDataID)))
			ole.AddChild(img)
		}
		el.AddChild(ole)
	case ir.ControlEquation:
		eq := newElement("hp:equation")
		if p, ok := ctrl.Payload.(*ir.EquationPayload); ok {
			eq.CreateAttr("script", p.Script)
		}
		el.AddChild(eq)
	case ir.ControlTextArt:
		ta := newElement("hp:textart")
		if p, ok := ctrl.Payload.(*ir.TextArtPayload); ok {
			ta.CreateAttr("text", p.Text)
		}
		el.AddChild(ta)
	case ir.ControlShape:
		el.AddChild(newElement("hp:rect"))
	case ir.ControlConnectLine:
		el.AddChild(newElement("hp:connectLine"))
	}
	return el
}

func encodeTable(t *ir.Table) *etree.Element {
	el := newElement("hp:tbl")
	el.CreateAttr("rowCnt", strconv.Itoa(t.RowCount))
	el.CreateAttr("colCnt", strconv.Itoa(t.ColumnCount))
	for _, row := range t.Rows {
		trEl := newElement("hp:tr")
		for _, cell := range row.Cells {
			trEl.AddChild(encodeCell(cell))
		}
		el.AddChild(trEl)
	}
	return el
}

func encodeCell(cell ir.Cell) *etree.Element {
	el := newElement("hp:tc")

	addr := newElement("hp:cellAddr")
	addr.CreateAttr("colAddr", strconv.Itoa(cell.Column))
	addr.CreateAttr("rowAddr", strconv.Itoa(cell.Row))
	el.AddChild(addr)

	span := newElement("hp:cellSpan")
	span.CreateAttr("colSpan", strconv.Itoa(cell.ColSpan))
	span.CreateAttr("rowSpan", strconv.Itoa(cell.RowSpan))
	el.AddChild(span)

	sz := newElement("hp:cellSz")
	sz.CreateAttr("width", strconv.Itoa(int(cell.Width)))
	sz.CreateAttr("height", strconv.Itoa(int(cell.Height)))
	el.AddChild(sz)

	sub := newElement("hp:subList")
	for _, para := range cell.Paragraphs {
		sub.AddChild(encodeParagraph(para))
	}
	el.AddChild(sub)

	return el
}
