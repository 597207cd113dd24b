package ir

import (
	"testing"

	"github.com/vortex/go-hwp/pkg/model"
)

func TestToModelFromModelRoundTripSimpleParagraph(t *testing.T) {
	doc := &Document{
		Metadata:   Metadata{Title: "t", Author: "a"},
		BinaryData: map[uint16]BinaryDataEntry{1: {Extension: "png", Data: []byte{1, 2, 3}}},
		Extensions: map[string][]byte{"ext": {9, 9}},
		Sections: []Section{{
			Paragraphs: []Paragraph{{
				ParaShapeID: 5,
				Runs:        []Run{{CharShapeID: 2, Contents: []RunContent{NewTextContent("hello")}}},
			}},
		}},
	}

	md := ToModel(doc)
	if got := md.ExtractText(); got != "hello" {
		t.Fatalf("ExtractText() = %q, want %q", got, "hello")
	}
	if md.Metadata.Title != "t" || md.Metadata.Author != "a" {
		t.Fatalf("Metadata = %+v, want preserved Title/Author", md.Metadata)
	}

	back := FromModel(md)
	if len(back.Sections) != 1 || len(back.Sections[0].Paragraphs) != 1 {
		t.Fatalf("round-tripped Sections = %+v, want one section with one paragraph", back.Sections)
	}
	p := back.Sections[0].Paragraphs[0]
	if p.ParaShapeID != 5 || len(p.Runs) != 1 || p.Runs[0].CharShapeID != 2 {
		t.Fatalf("round-tripped Paragraph = %+v, want ParaShapeID=5, one Run with CharShapeID=2", p)
	}
	if len(p.Runs[0].Contents) != 1 || p.Runs[0].Contents[0].Kind != RunText || p.Runs[0].Contents[0].Text != "hello" {
		t.Fatalf("round-tripped RunContent = %+v, want text %q", p.Runs[0].Contents, "hello")
	}
	if e, ok := back.BinaryData[1]; !ok || e.Extension != "png" {
		t.Fatalf("round-tripped BinaryData[1] = %+v, want {png ...}", e)
	}
	if string(back.Extensions["ext"]) != "\x09\x09" {
		t.Fatalf("round-tripped Extensions[ext] = %v, want [9 9]", back.Extensions["ext"])
	}
}

// TestIRRoundTripWithTable pins the canonical shape of a table Control
// surviving IR -> Document -> IR: a 2x2 grid whose cells carry their
// plain text.
func TestIRRoundTripWithTable(t *testing.T) {
	cellText := func(s string) Paragraph {
		return Paragraph{Runs: []Run{{Contents: []RunContent{NewTextContent(s)}}}}
	}
	table := &Table{
		RowCount: 2, ColumnCount: 2,
		Rows: []Row{
			{Cells: []Cell{
				{Row: 0, Column: 0, Paragraphs: []Paragraph{cellText("Cell 1")}},
				{Row: 0, Column: 1, Paragraphs: []Paragraph{cellText("Cell 2")}},
			}},
			{Cells: []Cell{
				{Row: 1, Column: 0, Paragraphs: []Paragraph{cellText("Cell 3")}},
				{Row: 1, Column: 1, Paragraphs: []Paragraph{cellText("Cell 4")}},
			}},
		},
	}
	doc := &Document{
		Sections: []Section{{
			Paragraphs: []Paragraph{{
				Runs: []Run{{Contents: []RunContent{
					NewControlContent(&Control{Kind: ControlTable, Table: table}),
				}}},
			}},
		}},
	}

	md := ToModel(doc)
	back := FromModel(md)

	gotTable := back.Sections[0].Paragraphs[0].Runs[0].Contents[0].Control.Table
	if gotTable == nil {
		t.Fatal("round-tripped Control.Table is nil")
	}
	if len(gotTable.Rows) != 2 {
		t.Fatalf("Rows count = %d, want 2", len(gotTable.Rows))
	}
	if len(gotTable.Rows[0].Cells) != 2 {
		t.Fatalf("Row 0 Cells count = %d, want 2", len(gotTable.Rows[0].Cells))
	}
	firstCellText := gotTable.Rows[0].Cells[0].Paragraphs[0].Runs[0].Contents[0].Text
	if firstCellText != "Cell 1" {
		t.Fatalf("first cell text = %q, want %q", firstCellText, "Cell 1")
	}
}

func TestAutoNumberTotalPagesNarrowsToPageAndWidensBack(t *testing.T) {
	if got := narrowAutoNumberType(AutoNumberTotalPages); got != model.AutoNumberPage {
		t.Fatalf("narrowAutoNumberType(TotalPages) = %v, want model.AutoNumberPage", got)
	}
	if got := narrowAutoNumberType(AutoNumberFootnote); got != model.AutoNumberFootnote {
		t.Fatalf("narrowAutoNumberType(Footnote) = %v, want model.AutoNumberFootnote (non-lossy case preserved)", got)
	}
	if got := widenAutoNumberType(model.AutoNumberPage); got != AutoNumberPage {
		t.Fatalf("widenAutoNumberType(Page) = %v, want ir.AutoNumberPage (canonical form, not TotalPages)", got)
	}
}

func TestVideoYouTubeNarrowsToWeb(t *testing.T) {
	if got := narrowVideoType(VideoYouTube); got != model.VideoWeb {
		t.Fatalf("narrowVideoType(YouTube) = %v, want model.VideoWeb", got)
	}
	if got := widenVideoType(model.VideoWeb); got != VideoWeb {
		t.Fatalf("widenVideoType(Web) = %v, want ir.VideoWeb (canonical form, not YouTube)", got)
	}
}

func TestChartSubtypesNarrowToFamily(t *testing.T) {
	cases := map[ChartType]model.ChartType{
		ChartBubble:   model.ChartScatter,
		ChartStock:    model.ChartLine,
		ChartSurface:  model.ChartArea,
		ChartColumn:   model.ChartBar,
		ChartDoughnut: model.ChartPie,
	}
	for in, want := range cases {
		if got := narrowChartType(in); got != want {
			t.Fatalf("narrowChartType(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestTextArtArchVariantsNarrowToArch(t *testing.T) {
	if got := narrowTextArtShape(TextArtArchUp); got != model.TextArtArch {
		t.Fatalf("narrowTextArtShape(ArchUp) = %v, want model.TextArtArch", got)
	}
	if got := narrowTextArtShape(TextArtArchDown); got != model.TextArtArch {
		t.Fatalf("narrowTextArtShape(ArchDown) = %v, want model.TextArtArch", got)
	}
	if got := widenTextArtShape(model.TextArtArch); got != TextArtArch {
		t.Fatalf("widenTextArtShape(Arch) = %v, want canonical ir.TextArtArch (not ArchUp/ArchDown)", got)
	}
}

// TestDutmalRoundTripsThroughControl pins the Compose/Dutmal boundary
// translation: the IR models a Dutmal annotation as inline RunContent,
// while the arena model has no inline slot for it and stores it as a
// Control instead (spec.md §9's open question on Compose/Dutmal
// placement). A Dutmal run content must survive ToModel -> FromModel
// with both of its text fields intact.
func TestDutmalRoundTripsThroughControl(t *testing.T) {
	doc := &Document{
		Sections: []Section{{
			Paragraphs: []Paragraph{{
				Runs: []Run{{Contents: []RunContent{
					NewDutmalContent(&DutmalData{MainText: "注音", SubText: "zhùyīn"}),
				}}},
			}},
		}},
	}

	md := ToModel(doc)
	section, _, ok := md.SectionAt(0)
	if !ok || len(section.Paragraphs) != 1 {
		t.Fatalf("ToModel() section = %+v, ok=%v", section, ok)
	}
	para, _, _ := md.ParagraphAt(section, 0)
	run, _, _ := md.RunAt(para, 0)
	if len(run.Contents) != 1 || run.Contents[0].Kind != model.RunControl {
		t.Fatalf("ToModel() run contents = %+v, want one RunControl", run.Contents)
	}
	ctrl, ok := md.Controls.Get(run.Contents[0].ControlID.Id)
	if !ok || ctrl.Kind != model.ControlDutmal || ctrl.Dutmal == nil {
		t.Fatalf("ToModel() control = %+v, ok=%v, want a ControlDutmal payload", ctrl, ok)
	}
	if ctrl.Dutmal.MainText != "注音" || ctrl.Dutmal.SubText != "zhùyīn" {
		t.Fatalf("ToModel() Dutmal = %+v, want MainText=注音 SubText=zhùyīn", ctrl.Dutmal)
	}

	back := FromModel(md)
	rc := back.Sections[0].Paragraphs[0].Runs[0].Contents[0]
	if rc.Kind != RunDutmal || rc.Dutmal == nil {
		t.Fatalf("FromModel() RunContent = %+v, want RunDutmal", rc)
	}
	if rc.Dutmal.MainText != "注音" || rc.Dutmal.SubText != "zhùyīn" {
		t.Fatalf("FromModel() Dutmal = %+v, want MainText=注音 SubText=zhùyīn", rc.Dutmal)
	}
}

func TestComposeCircleNarrowingCollapsesToShape(t *testing.T) {
	for _, circle := range []ComposeCircleType{ComposeCircleCircle, ComposeCircleInvertedCircle, ComposeCircleRhombus, ComposeCircleTriangle} {
		c := composeToModel(&ComposeData{Chars: [3]rune{'a', 'b', 'c'}, Circle: circle})
		if c.Circle == 0 {
			t.Fatalf("composeToModel(%v) narrowed to None, want Shape", circle)
		}
		back := composeToIR(c)
		if back.Circle != ComposeCircleCircle {
			t.Fatalf("composeToIR widened Shape to %v, want canonical ComposeCircleCircle", back.Circle)
		}
	}
	none := composeToModel(&ComposeData{Circle: ComposeCircleNone})
	if none.Circle != 0 {
		t.Fatalf("composeToModel(None) = %v, want model None", none.Circle)
	}
}
