package model

import "testing"

func TestArenaInsertGetRemove(t *testing.T) {
	a := NewArena[string]()
	id := a.Insert("hello")
	got, ok := a.Get(id)
	if !ok || got != "hello" {
		t.Fatalf("Get after Insert = (%q, %v)", got, ok)
	}
	a.Remove(id)
	if _, ok := a.Get(id); ok {
		t.Fatal("expected removed id to no longer resolve")
	}
}

func TestArenaReuseYieldsDistinctGeneration(t *testing.T) {
	a := NewArena[int]()
	first := a.Insert(1)
	a.Remove(first)
	second := a.Insert(2)
	if first.index != second.index {
		t.Fatalf("expected slot reuse at same index, got %d and %d", first.index, second.index)
	}
	if first.generation == second.generation {
		t.Fatal("expected distinct generation after reuse")
	}
	if _, ok := a.Get(first); ok {
		t.Fatal("stale id must not resolve to the reused slot")
	}
	got, ok := a.Get(second)
	if !ok || got != 2 {
		t.Fatalf("Get(second) = (%d, %v)", got, ok)
	}
}

func TestArenaLenCountsOnlyLive(t *testing.T) {
	a := NewArena[int]()
	one := a.Insert(1)
	a.Insert(2)
	a.Remove(one)
	if got := a.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
}

func newTestDocument(t *testing.T) (*Document, SectionId, ParagraphId) {
	t.Helper()
	d := NewDocument()
	runID := RunId{d.Runs.Insert(Run{Contents: []RunContent{NewTextContent("hello")}})}
	paraID := ParagraphId{d.Paragraphs.Insert(Paragraph{Runs: []RunId{runID}})}
	secID := SectionId{d.Sections.Insert(Section{Paragraphs: []ParagraphId{paraID}})}
	d.SectionOrder = append(d.SectionOrder, secID)
	return d, secID, paraID
}

func TestDocumentExtractTextSingleParagraph(t *testing.T) {
	d, _, _ := newTestDocument(t)
	if got := d.ExtractText(); got != "hello" {
		t.Fatalf("ExtractText() = %q, want %q", got, "hello")
	}
}

func TestDocumentExtractTextJoinsParagraphsWithNewline(t *testing.T) {
	d, secID, _ := newTestDocument(t)
	run2 := RunId{d.Runs.Insert(Run{Contents: []RunContent{NewTextContent("world")}})}
	para2 := ParagraphId{d.Paragraphs.Insert(Paragraph{Runs: []RunId{run2}})}
	sec := d.Sections.GetMut(secID.Id)
	sec.Paragraphs = append(sec.Paragraphs, para2)

	if got, want := d.ExtractText(), "hello\nworld"; got != want {
		t.Fatalf("ExtractText() = %q, want %q", got, want)
	}
}

func TestDocumentCounts(t *testing.T) {
	d, _, _ := newTestDocument(t)
	if d.SectionCount() != 1 {
		t.Fatalf("SectionCount() = %d, want 1", d.SectionCount())
	}
	if d.ParagraphCount() != 1 {
		t.Fatalf("ParagraphCount() = %d, want 1", d.ParagraphCount())
	}
}

func TestBinaryDataByID(t *testing.T) {
	d := NewDocument()
	d.BinaryData[3] = BinaryDataEntry{Extension: "png", Data: []byte{1, 2, 3}}
	entry, ok := d.BinaryDataByID(3)
	if !ok || entry.Extension != "png" {
		t.Fatalf("BinaryDataByID(3) = (%+v, %v)", entry, ok)
	}
	if _, ok := d.BinaryDataByID(99); ok {
		t.Fatal("expected missing id to return ok=false")
	}
}
