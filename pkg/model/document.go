package model

import "strings"

// Metadata carries the document-level properties not owned by any
// single section (spec.md §4.E DocumentProperties, DocOptions).
type Metadata struct {
	Title, Author, Subject, Keywords, Comments string
}

// BinaryDataEntry is one entry of the DocInfo binary-data catalog,
// addressed by the u16 id runs and controls reference (spec.md §4.E).
type BinaryDataEntry struct {
	Extension string
	Data      []byte
}

// Document owns every arena and the top-level section order. It is the
// unit operated on by the command engine (pkg/model/command) and the
// conversion boundary target of pkg/ir.
type Document struct {
	Metadata Metadata
	Styles   []Style

	Sections   *Arena[Section]
	Paragraphs *Arena[Paragraph]
	Runs       *Arena[Run]
	Controls   *Arena[Control]
	Rows       *Arena[Row]
	Cells      *Arena[Cell]

	SectionOrder []SectionId
	BinaryData   map[uint16]BinaryDataEntry

	// Extensions holds opaque, unmodeled record/element bytes keyed by
	// a caller-defined tag so an unrecognized extension round-trips
	// even though this package never interprets it (spec.md §3.1).
	Extensions map[string][]byte
}

// Style is a named paragraph/character style as recorded in DocInfo.
type Style struct {
	Name        string
	ParaShapeID uint32
	CharShapeID uint32
}

// NewDocument returns an empty document with all arenas initialized.
func NewDocument() *Document {
	return &Document{
		Sections:   NewArena[Section](),
		Paragraphs: NewArena[Paragraph](),
		Runs:       NewArena[Run](),
		Controls:   NewArena[Control](),
		Rows:       NewArena[Row](),
		Cells:      NewArena[Cell](),
		BinaryData: make(map[uint16]BinaryDataEntry),
		Extensions: make(map[string][]byte),
	}
}

// SectionsInOrder returns the document's sections in document order, skipping
// any id that no longer resolves (defensive against a caller holding a
// stale SectionId across a Remove).
func (d *Document) SectionsInOrder() []*Section {
	out := make([]*Section, 0, len(d.SectionOrder))
	for _, id := range d.SectionOrder {
		if s := d.Sections.GetMut(id.Id); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// SectionCount returns the number of live sections.
func (d *Document) SectionCount() int {
	return d.Sections.Len()
}

// SectionAt resolves the section at the given document-order index.
func (d *Document) SectionAt(index int) (*Section, SectionId, bool) {
	if index < 0 || index >= len(d.SectionOrder) {
		return nil, SectionId{}, false
	}
	id := d.SectionOrder[index]
	s := d.Sections.GetMut(id.Id)
	if s == nil {
		return nil, SectionId{}, false
	}
	return s, id, true
}

// ParagraphAt resolves the paragraph at the given index within section.
func (d *Document) ParagraphAt(section *Section, index int) (*Paragraph, ParagraphId, bool) {
	if index < 0 || index >= len(section.Paragraphs) {
		return nil, ParagraphId{}, false
	}
	id := section.Paragraphs[index]
	p := d.Paragraphs.GetMut(id.Id)
	if p == nil {
		return nil, ParagraphId{}, false
	}
	return p, id, true
}

// RunAt resolves the run at the given index within paragraph.
func (d *Document) RunAt(paragraph *Paragraph, index int) (*Run, RunId, bool) {
	if index < 0 || index >= len(paragraph.Runs) {
		return nil, RunId{}, false
	}
	id := paragraph.Runs[index]
	r := d.Runs.GetMut(id.Id)
	if r == nil {
		return nil, RunId{}, false
	}
	return r, id, true
}

// ParagraphCount returns the number of live paragraphs across every
// section and every control's child paragraphs (spec.md §3.2 invariant 6).
func (d *Document) ParagraphCount() int {
	return d.Paragraphs.Len()
}

// ExtractText joins the plain text of every paragraph, in section
// order, with '\n' (spec.md §4.G).
func (d *Document) ExtractText() string {
	var b strings.Builder
	first := true
	for _, sec := range d.SectionsInOrder() {
		for _, pid := range sec.Paragraphs {
			p, ok := d.Paragraphs.Get(pid.Id)
			if !ok {
				continue
			}
			if !first {
				b.WriteByte('\n')
			}
			first = false
			b.WriteString(d.paragraphText(&p))
		}
	}
	return b.String()
}

// paragraphText concatenates a single paragraph's Text run-contents.
func (d *Document) paragraphText(p *Paragraph) string {
	var b strings.Builder
	for _, rid := range p.Runs {
		run, ok := d.Runs.Get(rid.Id)
		if !ok {
			continue
		}
		for _, rc := range run.Contents {
			switch rc.Kind {
			case RunText:
				b.WriteString(rc.Text)
			case RunTab:
				b.WriteByte('\t')
			case RunLineBreak:
				b.WriteByte('\n')
			case RunNonBreakingSpace, RunFixedWidthSpace:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// BinaryDataByID looks up a catalog entry by its DocInfo id.
func (d *Document) BinaryDataByID(id uint16) (BinaryDataEntry, bool) {
	e, ok := d.BinaryData[id]
	return e, ok
}
