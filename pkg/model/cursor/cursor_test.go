package cursor

import (
	"testing"

	"github.com/vortex/go-hwp/pkg/model"
)

func buildTestDocument() *model.Document {
	d := model.NewDocument()

	run1 := model.RunId{}
	run1.Id = d.Runs.Insert(model.Run{Contents: []model.RunContent{model.NewTextContent("Hello ")}})
	run2 := model.RunId{}
	run2.Id = d.Runs.Insert(model.Run{Contents: []model.RunContent{model.NewTextContent("World")}})
	para1 := model.ParagraphId{}
	para1.Id = d.Paragraphs.Insert(model.Paragraph{Runs: []model.RunId{run1, run2}})

	run3 := model.RunId{}
	run3.Id = d.Runs.Insert(model.Run{Contents: []model.RunContent{model.NewTextContent("Second paragraph")}})
	para2 := model.ParagraphId{}
	para2.Id = d.Paragraphs.Insert(model.Paragraph{Runs: []model.RunId{run3}})

	sec := model.SectionId{}
	sec.Id = d.Sections.Insert(model.Section{Paragraphs: []model.ParagraphId{para1, para2}})
	d.SectionOrder = append(d.SectionOrder, sec)
	return d
}

func TestCursorCreation(t *testing.T) {
	c := New()
	if c.Position() != Start() {
		t.Fatal("new cursor should start at Start()")
	}
	if c.HasSelection() {
		t.Fatal("new cursor should have no selection")
	}
}

func TestCursorAtPosition(t *testing.T) {
	pos := NewPosition(0, 1, 0, 5)
	c := At(pos)
	if c.Position() != pos {
		t.Fatalf("Position() = %+v, want %+v", c.Position(), pos)
	}
}

func TestCursorSelection(t *testing.T) {
	c := New()
	c.StartSelection()
	c.ExtendSelection(NewPosition(0, 0, 1, 3))

	if !c.HasSelection() {
		t.Fatal("expected active selection")
	}
	sel, ok := c.Selection()
	if !ok {
		t.Fatal("Selection() ok = false")
	}
	if sel.Start != Start() || sel.End != NewPosition(0, 0, 1, 3) {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestCursorMoveForward(t *testing.T) {
	doc := buildTestDocument()
	c := New()

	c.MoveChar(3, doc)
	if c.Position().CharOffset != 3 {
		t.Fatalf("CharOffset = %d, want 3", c.Position().CharOffset)
	}

	c.MoveChar(4, doc) // remaining 3 chars of "Hello " + 1 crosses into run 2
	if c.Position().RunIndex != 1 {
		t.Fatalf("RunIndex = %d, want 1", c.Position().RunIndex)
	}
}

func TestCursorMoveBackward(t *testing.T) {
	doc := buildTestDocument()
	c := At(NewPosition(0, 0, 1, 2))

	c.MoveChar(-3, doc)
	if c.Position().RunIndex != 0 {
		t.Fatalf("RunIndex = %d, want 0", c.Position().RunIndex)
	}
}

func TestCursorParagraphNavigation(t *testing.T) {
	doc := buildTestDocument()
	c := New()

	c.MoveToParagraphEnd(doc)
	if c.Position().RunIndex != 1 {
		t.Fatalf("RunIndex = %d, want 1", c.Position().RunIndex)
	}
	if c.Position().CharOffset != 5 {
		t.Fatalf("CharOffset = %d, want 5", c.Position().CharOffset)
	}

	c.MoveToParagraphStart()
	if c.Position().RunIndex != 0 || c.Position().CharOffset != 0 {
		t.Fatalf("unexpected position after MoveToParagraphStart: %+v", c.Position())
	}
}

func TestCursorDocumentNavigation(t *testing.T) {
	doc := buildTestDocument()
	c := New()

	c.MoveToDocumentEnd(doc)
	if c.Position().ParagraphIndex != 1 {
		t.Fatalf("ParagraphIndex = %d, want 1", c.Position().ParagraphIndex)
	}

	c.MoveToDocumentStart()
	if c.Position() != Start() {
		t.Fatalf("Position() = %+v, want Start()", c.Position())
	}
}

func TestSelectionContains(t *testing.T) {
	sel := NewSelection(NewPosition(0, 0, 0, 2), NewPosition(0, 0, 1, 3))

	if !sel.Contains(NewPosition(0, 0, 0, 5)) {
		t.Fatal("expected (0,0,0,5) to be contained")
	}
	if !sel.Contains(NewPosition(0, 0, 1, 0)) {
		t.Fatal("expected (0,0,1,0) to be contained")
	}
	if sel.Contains(NewPosition(0, 0, 0, 1)) {
		t.Fatal("expected (0,0,0,1) to be excluded")
	}
	if sel.Contains(NewPosition(0, 0, 1, 5)) {
		t.Fatal("expected (0,0,1,5) to be excluded")
	}
}

func TestCrossRunMovementScenario(t *testing.T) {
	d := model.NewDocument()
	run1 := model.RunId{Id: d.Runs.Insert(model.Run{Contents: []model.RunContent{model.NewTextContent("Hello ")}})}
	run2 := model.RunId{Id: d.Runs.Insert(model.Run{Contents: []model.RunContent{model.NewTextContent("World")}})}
	para := model.ParagraphId{Id: d.Paragraphs.Insert(model.Paragraph{Runs: []model.RunId{run1, run2}})}
	sec := model.SectionId{Id: d.Sections.Insert(model.Section{Paragraphs: []model.ParagraphId{para}})}
	d.SectionOrder = append(d.SectionOrder, sec)

	c := New()
	c.MoveChar(7, d)
	if want := NewPosition(0, 0, 1, 1); c.Position() != want {
		t.Fatalf("after +7: Position() = %+v, want %+v", c.Position(), want)
	}

	c.MoveChar(-1, d)
	if want := NewPosition(0, 0, 0, 6); c.Position() != want {
		t.Fatalf("after -1: Position() = %+v, want %+v", c.Position(), want)
	}
}

func TestPositionOrdering(t *testing.T) {
	p1 := NewPosition(0, 0, 0, 0)
	p2 := NewPosition(0, 0, 0, 5)
	p3 := NewPosition(0, 0, 1, 0)
	p4 := NewPosition(0, 1, 0, 0)
	p5 := NewPosition(1, 0, 0, 0)

	if !(p1.Less(p2) && p2.Less(p3) && p3.Less(p4) && p4.Less(p5)) {
		t.Fatal("expected strictly increasing position order")
	}
}
