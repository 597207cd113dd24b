package ir

import "github.com/vortex/go-hwp/pkg/model"

// ToModel walks an IR tree, inserting every subtree into the arenas of
// a fresh model.Document and recording the resulting ids in each
// parent (spec.md §4.K, "From<IR> for Document").
func ToModel(doc *Document) *model.Document {
	md := model.NewDocument()
	md.Metadata = model.Metadata(doc.Metadata)

	md.Styles = make([]model.Style, len(doc.Styles))
	for i, s := range doc.Styles {
		md.Styles[i] = model.Style(s)
	}

	for id, e := range doc.BinaryData {
		md.BinaryData[id] = model.BinaryDataEntry(e)
	}
	for k, v := range doc.Extensions {
		md.Extensions[k] = v
	}

	md.SectionOrder = make([]model.SectionId, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		paraIds := insertParagraphs(md, sec.Paragraphs)
		id := md.Sections.Insert(model.Section{
			Paragraphs:    paraIds,
			PageDef:       model.PageDef(sec.PageDef),
			FootnoteShape: model.FootnoteShape(sec.FootnoteShape),
			PageBorder:    sec.PageBorder,
			Memos:         sec.Memos,
		})
		md.SectionOrder = append(md.SectionOrder, model.SectionId{Id: id})
	}
	return md
}

func insertParagraphs(md *model.Document, paras []Paragraph) []model.ParagraphId {
	out := make([]model.ParagraphId, 0, len(paras))
	for _, p := range paras {
		runIds := insertRuns(md, p.Runs)
		tags := make([]model.RangeTag, len(p.RangeTags))
		for i, t := range p.RangeTags {
			tags[i] = model.RangeTag{Start: t.Start, End: t.End, Kind: model.RangeTagKind(t.Kind), Other: t.Other}
		}
		id := md.Paragraphs.Insert(model.Paragraph{
			ParaShapeID: p.ParaShapeID,
			StyleID:     p.StyleID,
			Runs:        runIds,
			Break:       model.BreakType(p.Break),
			InstanceID:  p.InstanceID,
			RangeTags:   tags,
		})
		out = append(out, model.ParagraphId{Id: id})
	}
	return out
}

func insertRuns(md *model.Document, runs []Run) []model.RunId {
	out := make([]model.RunId, 0, len(runs))
	for _, r := range runs {
		contents := make([]model.RunContent, 0, len(r.Contents))
		for _, rc := range r.Contents {
			switch rc.Kind {
			case RunText:
				contents = append(contents, model.NewTextContent(rc.Text))
			case RunTab:
				contents = append(contents, model.NewTabContent())
			case RunLineBreak:
				contents = append(contents, model.NewLineBreakContent())
			case RunHyphen:
				contents = append(contents, model.NewHyphenContent())
			case RunNonBreakingSpace:
				contents = append(contents, model.NewNonBreakingSpaceContent())
			case RunFixedWidthSpace:
				contents = append(contents, model.NewFixedWidthSpaceContent())
			case RunFieldStart:
				contents = append(contents, model.NewFieldStartContent())
			case RunFieldEnd:
				contents = append(contents, model.NewFieldEndContent())
			case RunBookmarkStart:
				contents = append(contents, model.NewBookmarkStartContent(rc.BookmarkID, rc.BookmarkName))
			case RunBookmarkEnd:
				contents = append(contents, model.NewBookmarkEndContent())
			case RunControl:
				cid := insertControl(md, rc.Control)
				contents = append(contents, model.NewControlContent(cid))
			case RunCompose:
				cid := md.Controls.Insert(model.Control{Kind: model.ControlCompose, Compose: composeToModel(rc.Compose)})
				contents = append(contents, model.NewControlContent(model.ControlId{Id: cid}))
			case RunDutmal:
				dm := model.DutmalData(*rc.Dutmal)
				cid := md.Controls.Insert(model.Control{Kind: model.ControlDutmal, Dutmal: &dm})
				contents = append(contents, model.NewControlContent(model.ControlId{Id: cid}))
			}
		}
		id := md.Runs.Insert(model.Run{CharShapeID: r.CharShapeID, Contents: contents})
		out = append(out, model.RunId{Id: id})
	}
	return out
}

func insertControl(md *model.Document, c *Control) model.ControlId {
	mc := model.Control{
		Kind:    controlKindToModel(c.Kind),
		Unknown: model.UnknownControl(c.Unknown),
		Payload: payloadToModel(c.Kind, c.Payload),
	}
	if c.Table != nil {
		t := insertTable(md, c.Table)
		mc.Table = &t
	}
	if c.Children != nil {
		mc.Children = insertParagraphs(md, c.Children)
	}
	id := md.Controls.Insert(mc)
	return model.ControlId{Id: id}
}

func insertTable(md *model.Document, t *Table) model.Table {
	rowIds := make([]model.RowId, 0, len(t.Rows))
	for _, row := range t.Rows {
		cellIds := make([]model.CellId, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cid := md.Cells.Insert(model.Cell{
				Row: cell.Row, Column: cell.Column,
				RowSpan: cell.RowSpan, ColSpan: cell.ColSpan,
				Width: cell.Width, Height: cell.Height,
				Padding:      cell.Padding,
				BorderFillID: cell.BorderFillID,
				Paragraphs:   insertParagraphs(md, cell.Paragraphs),
			})
			cellIds = append(cellIds, model.CellId{Id: cid})
		}
		rid := md.Rows.Insert(model.Row{Height: row.Height, Cells: cellIds})
		rowIds = append(rowIds, model.RowId{Id: rid})
	}
	return model.Table{RowCount: t.RowCount, ColumnCount: t.ColumnCount, BorderFillID: t.BorderFillID, Rows: rowIds}
}

func composeToModel(c *ComposeData) *model.ComposeData {
	if c == nil {
		return nil
	}
	circle := model.ComposeCircleNone
	if c.Circle != ComposeCircleNone {
		// Every concrete enclosing shape beyond None collapses to the
		// model's single Shape variant (spec.md §4.K).
		circle = model.ComposeCircleShape
	}
	return &model.ComposeData{Chars: c.Chars, Circle: circle}
}

// FromModel dereferences every id in a model.Document's arenas into
// owned IR subtrees (spec.md §4.K, "From<Document> for IR").
func FromModel(md *model.Document) *Document {
	doc := &Document{
		Metadata:   Metadata(md.Metadata),
		BinaryData: make(map[uint16]BinaryDataEntry, len(md.BinaryData)),
		Extensions: make(map[string][]byte, len(md.Extensions)),
	}
	doc.Styles = make([]Style, len(md.Styles))
	for i, s := range md.Styles {
		doc.Styles[i] = Style(s)
	}
	for id, e := range md.BinaryData {
		doc.BinaryData[id] = BinaryDataEntry(e)
	}
	for k, v := range md.Extensions {
		doc.Extensions[k] = v
	}

	for _, sec := range md.SectionsInOrder() {
		doc.Sections = append(doc.Sections, Section{
			Paragraphs:    extractParagraphs(md, sec.Paragraphs),
			PageDef:       PageDef(sec.PageDef),
			FootnoteShape: FootnoteShape(sec.FootnoteShape),
			PageBorder:    sec.PageBorder,
			Memos:         sec.Memos,
		})
	}
	return doc
}

func extractParagraphs(md *model.Document, ids []model.ParagraphId) []Paragraph {
	out := make([]Paragraph, 0, len(ids))
	for _, id := range ids {
		p, ok := md.Paragraphs.Get(id.Id)
		if !ok {
			continue
		}
		tags := make([]RangeTag, len(p.RangeTags))
		for i, t := range p.RangeTags {
			tags[i] = RangeTag{Start: t.Start, End: t.End, Kind: RangeTagKind(t.Kind), Other: t.Other}
		}
		out = append(out, Paragraph{
			ParaShapeID: p.ParaShapeID,
			StyleID:     p.StyleID,
			Runs:        extractRuns(md, p.Runs),
			Break:       BreakType(p.Break),
			InstanceID:  p.InstanceID,
			RangeTags:   tags,
		})
	}
	return out
}

func extractRuns(md *model.Document, ids []model.RunId) []Run {
	out := make([]Run, 0, len(ids))
	for _, id := range ids {
		r, ok := md.Runs.Get(id.Id)
		if !ok {
			continue
		}
		contents := make([]RunContent, 0, len(r.Contents))
		for _, rc := range r.Contents {
			switch rc.Kind {
			case model.RunText:
				contents = append(contents, NewTextContent(rc.Text))
			case model.RunTab:
				contents = append(contents, NewTabContent())
			case model.RunLineBreak:
				contents = append(contents, NewLineBreakContent())
			case model.RunHyphen:
				contents = append(contents, NewHyphenContent())
			case model.RunNonBreakingSpace:
				contents = append(contents, NewNonBreakingSpaceContent())
			case model.RunFixedWidthSpace:
				contents = append(contents, NewFixedWidthSpaceContent())
			case model.RunFieldStart:
				contents = append(contents, NewFieldStartContent())
			case model.RunFieldEnd:
				contents = append(contents, NewFieldEndContent())
			case model.RunBookmarkStart:
				contents = append(contents, NewBookmarkStartContent(rc.BookmarkID, rc.BookmarkName))
			case model.RunBookmarkEnd:
				contents = append(contents, NewBookmarkEndContent())
			case model.RunControl:
				contents = append(contents, extractRunControl(md, rc.ControlID))
			}
		}
		out = append(out, Run{CharShapeID: r.CharShapeID, Contents: contents})
	}
	return out
}

func extractRunControl(md *model.Document, id model.ControlId) RunContent {
	ctrl, ok := md.Controls.Get(id.Id)
	if !ok {
		return NewControlContent(&Control{Kind: ControlUnknown})
	}
	switch ctrl.Kind {
	case model.ControlCompose:
		return NewComposeContent(composeToIR(ctrl.Compose))
	case model.ControlDutmal:
		d := DutmalData(*ctrl.Dutmal)
		return NewDutmalContent(&d)
	default:
		return NewControlContent(extractControl(md, &ctrl))
	}
}

func extractControl(md *model.Document, ctrl *model.Control) *Control {
	c := &Control{
		Kind:    controlKindToIR(ctrl.Kind),
		Unknown: UnknownControl(ctrl.Unknown),
		Payload: payloadToIR(ctrl.Kind, ctrl.Payload),
	}
	if ctrl.Table != nil {
		t := extractTable(md, ctrl.Table)
		c.Table = &t
	}
	if ctrl.Children != nil {
		c.Children = extractParagraphs(md, ctrl.Children)
	}
	return c
}

func extractTable(md *model.Document, t *model.Table) Table {
	rows := make([]Row, 0, len(t.Rows))
	for _, rid := range t.Rows {
		row, ok := md.Rows.Get(rid.Id)
		if !ok {
			continue
		}
		cells := make([]Cell, 0, len(row.Cells))
		for _, cid := range row.Cells {
			cell, ok := md.Cells.Get(cid.Id)
			if !ok {
				continue
			}
			cells = append(cells, Cell{
				Row: cell.Row, Column: cell.Column,
				RowSpan: cell.RowSpan, ColSpan: cell.ColSpan,
				Width: cell.Width, Height: cell.Height,
				Padding:      cell.Padding,
				BorderFillID: cell.BorderFillID,
				Paragraphs:   extractParagraphs(md, cell.Paragraphs),
			})
		}
		rows = append(rows, Row{Height: row.Height, Cells: cells})
	}
	return Table{RowCount: t.RowCount, ColumnCount: t.ColumnCount, BorderFillID: t.BorderFillID, Rows: rows}
}

func composeToIR(c *model.ComposeData) *ComposeData {
	if c == nil {
		return nil
	}
	circle := ComposeCircleNone
	if c.Circle != model.ComposeCircleNone {
		circle = ComposeCircleCircle
	}
	return &ComposeData{Chars: c.Chars, Circle: circle}
}

// controlKindToModel/controlKindToIR translate between the two
// ControlKind enumerations; Compose and Dutmal never appear here since
// they are intercepted one level up, at the RunContent boundary.
func controlKindToModel(k ControlKind) model.ControlKind {
	switch k {
	case ControlTable:
		return model.ControlTable
	case ControlPicture:
		return model.ControlPicture
	case ControlShape:
		return model.ControlShape
	case ControlEquation:
		return model.ControlEquation
	case ControlOle:
		return model.ControlOle
	case ControlTextBox:
		return model.ControlTextBox
	case ControlFootnote:
		return model.ControlFootnote
	case ControlEndnote:
		return model.ControlEndnote
	case ControlHyperlink:
		return model.ControlHyperlink
	case ControlBookmark:
		return model.ControlBookmark
	case ControlIndexMark:
		return model.ControlIndexMark
	case ControlAutoNumber:
		return model.ControlAutoNumber
	case ControlNewNumber:
		return model.ControlNewNumber
	case ControlHiddenComment:
		return model.ControlHiddenComment
	case ControlChart:
		return model.ControlChart
	case ControlVideo:
		return model.ControlVideo
	case ControlFormObject:
		return model.ControlFormObject
	case ControlTextArt:
		return model.ControlTextArt
	case ControlConnectLine:
		return model.ControlConnectLine
	default:
		return model.ControlUnknown
	}
}

func controlKindToIR(k model.ControlKind) ControlKind {
	switch k {
	case model.ControlTable:
		return ControlTable
	case model.ControlPicture:
		return ControlPicture
	case model.ControlShape:
		return ControlShape
	case model.ControlEquation:
		return ControlEquation
	case model.ControlOle:
		return ControlOle
	case model.ControlTextBox:
		return ControlTextBox
	case model.ControlFootnote:
		return ControlFootnote
	case model.ControlEndnote:
		return ControlEndnote
	case model.ControlHyperlink:
		return ControlHyperlink
	case model.ControlBookmark:
		return ControlBookmark
	case model.ControlIndexMark:
		return ControlIndexMark
	case model.ControlAutoNumber:
		return ControlAutoNumber
	case model.ControlNewNumber:
		return ControlNewNumber
	case model.ControlHiddenComment:
		return ControlHiddenComment
	case model.ControlChart:
		return ControlChart
	case model.ControlVideo:
		return ControlVideo
	case model.ControlFormObject:
		return ControlFormObject
	case model.ControlTextArt:
		return ControlTextArt
	case model.ControlConnectLine:
		return ControlConnectLine
	default:
		return ControlUnknown
	}
}

// payloadToModel narrows an IR payload to its canonical model form,
// applying the documented lossy mappings (spec.md §4.K).
func payloadToModel(kind ControlKind, p any) any {
	switch v := p.(type) {
	case *AutoNumberPayload:
		return &model.AutoNumberPayload{Type: narrowAutoNumberType(v.Type), NumberFormat: v.NumberFormat, UserSuffix: v.UserSuffix}
	case *NewNumberPayload:
		return &model.NewNumberPayload{Type: narrowAutoNumberType(v.Type), Start: v.Start}
	case *VideoPayload:
		return &model.VideoPayload{Type: narrowVideoType(v.Type), URL: v.URL, BinDataID: v.BinDataID}
	case *ChartPayload:
		return &model.ChartPayload{Type: narrowChartType(v.Type), RawXMLData: v.RawXMLData}
	case *TextArtPayload:
		return &model.TextArtPayload{Shape: narrowTextArtShape(v.Shape), Text: v.Text}
	case *PicturePayload:
		return &model.PicturePayload{BinDataID: v.BinDataID, CropRect: v.CropRect, Effect: v.Effect, Flip: v.Flip}
	case *EquationPayload:
		return &model.EquationPayload{Script: v.Script, Base: v.Base}
	case *HyperlinkPayload:
		return &model.HyperlinkPayload{Target: v.Target}
	case *FieldPayload:
		return &model.FieldPayload{Command: v.Command}
	default:
		return p
	}
}

// payloadToIR widens a model payload back into its IR form. The
// widening side of a lossy mapping always reconstructs the canonical
// IR value (spec.md §4.K "round-trip to a canonical IR form"), never
// the original wire value the narrowing discarded.
func payloadToIR(kind model.ControlKind, p any) any {
	switch v := p.(type) {
	case *model.AutoNumberPayload:
		return &AutoNumberPayload{Type: widenAutoNumberType(v.Type), NumberFormat: v.NumberFormat, UserSuffix: v.UserSuffix}
	case *model.NewNumberPayload:
		return &NewNumberPayload{Type: widenAutoNumberType(v.Type), Start: v.Start}
	case *model.VideoPayload:
		return &VideoPayload{Type: widenVideoType(v.Type), URL: v.URL, BinDataID: v.BinDataID}
	case *model.ChartPayload:
		return &ChartPayload{Type: widenChartType(v.Type), RawXMLData: v.RawXMLData}
	case *model.TextArtPayload:
		return &TextArtPayload{Shape: widenTextArtShape(v.Shape), Text: v.Text}
	case *model.PicturePayload:
		return &PicturePayload{BinDataID: v.BinDataID, CropRect: v.CropRect, Effect: v.Effect, Flip: v.Flip}
	case *model.EquationPayload:
		return &EquationPayload{Script: v.Script, Base: v.Base}
	case *model.HyperlinkPayload:
		return &HyperlinkPayload{Target: v.Target}
	case *model.FieldPayload:
		return &FieldPayload{Command: v.Command}
	default:
		return p
	}
}

func narrowAutoNumberType(t AutoNumberType) model.AutoNumberType {
	if t == AutoNumberTotalPages {
		return model.AutoNumberPage
	}
	return model.AutoNumberType(t)
}

func widenAutoNumberType(t model.AutoNumberType) AutoNumberType { return AutoNumberType(t) }

func narrowVideoType(t VideoType) model.VideoType {
	if t == VideoYouTube {
		return model.VideoWeb
	}
	return model.VideoType(t)
}

func widenVideoType(t model.VideoType) VideoType { return VideoType(t) }

func narrowChartType(t ChartType) model.ChartType {
	switch t {
	case ChartBubble:
		return model.ChartScatter
	case ChartStock:
		return model.ChartLine
	case ChartSurface:
		return model.ChartArea
	case ChartColumn:
		return model.ChartBar
	case ChartDoughnut:
		return model.ChartPie
	default:
		return model.ChartType(t)
	}
}

func widenChartType(t model.ChartType) ChartType { return ChartType(t) }

func narrowTextArtShape(s TextArtShape) model.TextArtShape {
	switch s {
	case TextArtArchUp, TextArtArchDown:
		return model.TextArtArch
	case TextArtRectangle, TextArtCircle, TextArtArch, TextArtWave:
		return model.TextArtShape(s)
	default:
		return model.TextArtRectangle
	}
}

func widenTextArtShape(s model.TextArtShape) TextArtShape { return TextArtShape(s) }
