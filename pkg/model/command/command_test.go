package command

import (
	"errors"
	"testing"

	"github.com/vortex/go-hwp/pkg/hwperr"
	"github.com/vortex/go-hwp/pkg/model"
	"github.com/vortex/go-hwp/pkg/model/cursor"
)

func newTestDocument() *model.Document {
	d := model.NewDocument()
	run := model.RunId{Id: d.Runs.Insert(model.Run{Contents: []model.RunContent{model.NewTextContent("Hello World")}})}
	para := model.ParagraphId{Id: d.Paragraphs.Insert(model.Paragraph{Runs: []model.RunId{run}})}
	sec := model.SectionId{Id: d.Sections.Insert(model.Section{Paragraphs: []model.ParagraphId{para}})}
	d.SectionOrder = append(d.SectionOrder, sec)
	return d
}

func TestInsertText(t *testing.T) {
	doc := newTestDocument()
	cmd := NewInsertText(cursor.NewPosition(0, 0, 0, 5), " Beautiful")

	if err := cmd.Execute(doc); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, want := doc.ExtractText(), "Hello Beautiful World"; got != want {
		t.Fatalf("ExtractText() = %q, want %q", got, want)
	}

	if err := cmd.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got, want := doc.ExtractText(), "Hello World"; got != want {
		t.Fatalf("ExtractText() after undo = %q, want %q", got, want)
	}
}

func TestDeleteText(t *testing.T) {
	doc := newTestDocument()
	cmd := NewDeleteText(cursor.NewPosition(0, 0, 0, 5), 6) // " World"

	if err := cmd.Execute(doc); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, want := doc.ExtractText(), "Hello"; got != want {
		t.Fatalf("ExtractText() = %q, want %q", got, want)
	}

	if err := cmd.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got, want := doc.ExtractText(), "Hello World"; got != want {
		t.Fatalf("ExtractText() after undo = %q, want %q", got, want)
	}
}

func TestInsertParagraph(t *testing.T) {
	doc := newTestDocument()
	cmd := NewInsertParagraph(0, 1)

	if err := cmd.Execute(doc); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	section, _, _ := doc.SectionAt(0)
	if len(section.Paragraphs) != 2 {
		t.Fatalf("paragraph count = %d, want 2", len(section.Paragraphs))
	}

	if err := cmd.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	section, _, _ = doc.SectionAt(0)
	if len(section.Paragraphs) != 1 {
		t.Fatalf("paragraph count after undo = %d, want 1", len(section.Paragraphs))
	}
}

func TestDeleteParagraph(t *testing.T) {
	doc := newTestDocument()

	insert := NewInsertParagraph(0, 1)
	if err := insert.Execute(doc); err != nil {
		t.Fatalf("insert.Execute: %v", err)
	}

	del := NewDeleteParagraph(0, 1)
	if err := del.Execute(doc); err != nil {
		t.Fatalf("del.Execute: %v", err)
	}
	section, _, _ := doc.SectionAt(0)
	if len(section.Paragraphs) != 1 {
		t.Fatalf("paragraph count = %d, want 1", len(section.Paragraphs))
	}

	if err := del.Undo(doc); err != nil {
		t.Fatalf("del.Undo: %v", err)
	}
	section, _, _ = doc.SectionAt(0)
	if len(section.Paragraphs) != 2 {
		t.Fatalf("paragraph count after undo = %d, want 2", len(section.Paragraphs))
	}
}

func TestInsertIntoEmptyParagraph(t *testing.T) {
	doc := model.NewDocument()
	para := model.ParagraphId{Id: doc.Paragraphs.Insert(model.Paragraph{})}
	sec := model.SectionId{Id: doc.Sections.Insert(model.Section{Paragraphs: []model.ParagraphId{para}})}
	doc.SectionOrder = append(doc.SectionOrder, sec)

	cmd := NewInsertText(cursor.NewPosition(0, 0, 0, 0), "New text")
	if err := cmd.Execute(doc); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, want := doc.ExtractText(), "New text"; got != want {
		t.Fatalf("ExtractText() = %q, want %q", got, want)
	}
}

func TestDeleteTextUndoWithoutExecuteFails(t *testing.T) {
	doc := newTestDocument()
	cmd := NewDeleteText(cursor.NewPosition(0, 0, 0, 0), 1)
	if err := cmd.Undo(doc); err == nil {
		t.Fatal("expected error undoing a command that never executed")
	}
}

func TestErrorUnwrapsToCmdError(t *testing.T) {
	doc := newTestDocument()
	cmd := NewInsertText(cursor.NewPosition(5, 0, 0, 0), "x")
	err := cmd.Execute(doc)
	if err == nil {
		t.Fatal("expected an error for an out-of-range section index")
	}

	var cmdErr *hwperr.CmdError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error %v does not unwrap to *hwperr.CmdError", err)
	}
	if cmdErr.Kind != ErrSectionNotFound {
		t.Fatalf("Kind = %v, want ErrSectionNotFound", cmdErr.Kind)
	}

	var asError *Error
	if !errors.As(err, &asError) {
		t.Fatalf("error %v does not unwrap to *Error", err)
	}
}
