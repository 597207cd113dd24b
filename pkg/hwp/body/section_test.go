package body

import (
	"testing"

	"github.com/vortex/go-hwp/pkg/ir"
)

func TestDecodeEncodeRoundTrip_PlainParagraphs(t *testing.T) {
	sec := ir.Section{
		Paragraphs: []ir.Paragraph{
			{ParaShapeID: 1, Runs: []ir.Run{{Contents: []ir.RunContent{
				ir.NewTextContent("hello "), ir.NewTabContent(), ir.NewTextContent("world"),
			}}}},
			{ParaShapeID: 1, Runs: []ir.Run{{Contents: []ir.RunContent{
				ir.NewTextContent("second paragraph"),
			}}}},
		},
	}

	encoded := Encode(&sec)
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(decoded.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(decoded.Paragraphs))
	}
	got := decoded.Paragraphs[0].Runs[0]
	if len(got.Contents) != 3 || got.Contents[0].Text != "hello " || got.Contents[1].Kind != ir.RunTab || got.Contents[2].Text != "world" {
		t.Fatalf("first paragraph contents = %+v", got.Contents)
	}
	if decoded.Paragraphs[1].Runs[0].Contents[0].Text != "second paragraph" {
		t.Fatalf("second paragraph text = %+v", decoded.Paragraphs[1].Runs[0].Contents)
	}

	reencoded := Encode(decoded)
	redecoded, err := Decode(reencoded)
	if err != nil {
		t.Fatalf("second Decode() error = %v", err)
	}
	if len(redecoded.Paragraphs) != 2 {
		t.Fatalf("second round trip: got %d paragraphs, want 2", len(redecoded.Paragraphs))
	}
}

func TestDecodeEncodeRoundTrip_TableControl(t *testing.T) {
	table := &ir.Table{
		RowCount: 1, ColumnCount: 2,
		Rows: []ir.Row{{Cells: []ir.Cell{
			{Row: 0, Column: 0, RowSpan: 1, ColSpan: 1,
				Paragraphs: []ir.Paragraph{{Runs: []ir.Run{{Contents: []ir.RunContent{ir.NewTextContent("cell1")}}}}}},
			{Row: 0, Column: 1, RowSpan: 1, ColSpan: 1,
				Paragraphs: []ir.Paragraph{{Runs: []ir.Run{{Contents: []ir.RunContent{ir.NewTextContent("cell2")}}}}}},
		}}},
	}
	ctrl := &ir.Control{Kind: ir.ControlTable, Table: table}
	sec := ir.Section{
		Paragraphs: []ir.Paragraph{
			{Runs: []ir.Run{{Contents: []ir.RunContent{
				ir.NewTextContent("before "), ir.NewControlContent(ctrl), ir.NewTextContent(" after"),
			}}}},
		},
	}

	encoded := Encode(&sec)
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(decoded.Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(decoded.Paragraphs))
	}
	run := decoded.Paragraphs[0].Runs[0]
	var gotCtrl *ir.Control
	for _, rc := range run.Contents {
		if rc.Kind == ir.RunControl {
			gotCtrl = rc.Control
		}
	}
	if gotCtrl == nil {
		t.Fatalf("no control content decoded; run = %+v", run.Contents)
	}
	if gotCtrl.Kind != ir.ControlTable || gotCtrl.Table == nil {
		t.Fatalf("decoded control = %+v", gotCtrl)
	}
	if len(gotCtrl.Table.Rows) != 1 || len(gotCtrl.Table.Rows[0].Cells) != 2 {
		t.Fatalf("decoded table = %+v", gotCtrl.Table)
	}
	cells := gotCtrl.Table.Rows[0].Cells
	if cells[0].Paragraphs[0].Runs[0].Contents[0].Text != "cell1" {
		t.Fatalf("cell0 text = %+v", cells[0].Paragraphs)
	}
	if cells[1].Paragraphs[0].Runs[0].Contents[0].Text != "cell2" {
		t.Fatalf("cell1 text = %+v", cells[1].Paragraphs)
	}
}

func TestDecodeEncodeRoundTrip_TextBoxControl(t *testing.T) {
	ctrl := &ir.Control{
		Kind: ir.ControlTextBox,
		Children: []ir.Paragraph{
			{Runs: []ir.Run{{Contents: []ir.RunContent{ir.NewTextContent("boxed text")}}}},
		},
	}
	sec := ir.Section{
		Paragraphs: []ir.Paragraph{
			{Runs: []ir.Run{{Contents: []ir.RunContent{ir.NewControlContent(ctrl)}}}},
		},
	}

	encoded := Encode(&sec)
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got := decoded.Paragraphs[0].Runs[0].Contents[0].Control
	if got == nil || got.Kind != ir.ControlTextBox {
		t.Fatalf("decoded control = %+v", got)
	}
	if len(got.Children) != 1 || got.Children[0].Runs[0].Contents[0].Text != "boxed text" {
		t.Fatalf("decoded children = %+v", got.Children)
	}
}

func TestContextCompletion_MultipleCellsSameTable(t *testing.T) {
	b := newBuilder()
	cb := &ctrlBuilder{id: idTable, kind: ir.ControlTable, ctrl: ir.Control{Kind: ir.ControlTable}}
	b.curCtrl = cb

	lh1 := encodeListHeader(1, &listHeaderCell{row: 0, col: 0, rowSpan: 1, colSpan: 1, totalRows: 1, totalCols: 2})
	if err := b.handleListHeader(lh1); err != nil {
		t.Fatalf("handleListHeader(1) error = %v", err)
	}
	b.curPara = newParaBuilder()
	b.curPara.para.Runs[0].Contents = []ir.RunContent{ir.NewTextContent("c0")}
	b.flushParagraph()

	lh2 := encodeListHeader(1, &listHeaderCell{row: 0, col: 1, rowSpan: 1, colSpan: 1, totalRows: 1, totalCols: 2})
	if err := b.handleListHeader(lh2); err != nil {
		t.Fatalf("handleListHeader(2) error = %v", err)
	}
	b.curPara = newParaBuilder()
	b.curPara.para.Runs[0].Contents = []ir.RunContent{ir.NewTextContent("c1")}
	b.flushParagraph()

	if len(b.stack) != 1 {
		t.Fatalf("stack depth after both cells = %d, want 1", len(b.stack))
	}
	if b.pendingOwner != cb {
		t.Fatalf("pendingOwner not retained across cells")
	}
	if tbl := cb.finalize().Table; tbl == nil || len(tbl.Rows) != 1 || len(tbl.Rows[0].Cells) != 2 {
		t.Fatalf("table after two cells = %+v", tbl)
	}
}

// TestContextCompletion_NestedAtomicControlDoesNotStealTableOwnership pins
// the case where an atomic control (a Picture) opens inside a cell and is
// still unflushed when the next cell's ListHeader arrives: the new cell
// must still bind to the table, not to the stale inner control.
func TestContextCompletion_NestedAtomicControlDoesNotStealTableOwnership(t *testing.T) {
	b := newBuilder()
	cb := &ctrlBuilder{id: idTable, kind: ir.ControlTable, ctrl: ir.Control{Kind: ir.ControlTable}}
	b.curCtrl = cb

	lh1 := encodeListHeader(1, &listHeaderCell{row: 0, col: 0, rowSpan: 1, colSpan: 1, totalRows: 1, totalCols: 2})
	if err := b.handleListHeader(lh1); err != nil {
		t.Fatalf("handleListHeader(cell0) error = %v", err)
	}

	b.curPara = newParaBuilder()
	run := &b.curPara.para.Runs[0]
	run.Contents = append(run.Contents, ir.NewTextContent("c0"), ir.RunContent{Kind: ir.RunControl})
	b.controlQueue = append(b.controlQueue, queuedSlot{run: run, idx: len(run.Contents) - 1})
	picCB := &ctrlBuilder{id: idPicture, kind: ir.ControlPicture, ctrl: ir.Control{Kind: ir.ControlPicture}}
	b.curCtrl = picCB // still open: no ControlData/ShapeComponentPicture has arrived yet
	b.flushParagraph()

	lh2 := encodeListHeader(1, &listHeaderCell{row: 0, col: 1, rowSpan: 1, colSpan: 1, totalRows: 1, totalCols: 2})
	if err := b.handleListHeader(lh2); err != nil {
		t.Fatalf("handleListHeader(cell1) error = %v", err)
	}
	b.curPara = newParaBuilder()
	b.curPara.para.Runs[0].Contents = []ir.RunContent{ir.NewTextContent("c1")}
	b.flushParagraph()

	if b.pendingOwner != cb {
		t.Fatalf("pendingOwner = %+v, want the table control, not the stale picture", b.pendingOwner)
	}
	if tbl := cb.finalize().Table; tbl == nil || len(tbl.Rows) != 1 || len(tbl.Rows[0].Cells) != 2 {
		t.Fatalf("table after two cells = %+v, want both cells kept", tbl)
	}
	if run.Contents[1].Control == nil || run.Contents[1].Control.Kind != ir.ControlPicture {
		t.Fatalf("nested picture control was not bound before cell1 started: %+v", run.Contents[1])
	}
}
