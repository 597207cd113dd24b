package command

import "github.com/vortex/go-hwp/pkg/model"

// InsertParagraph inserts a new, empty paragraph at ParagraphIndex
// within the section at SectionIndex (spec.md §8 S4).
type InsertParagraph struct {
	SectionIndex   int
	ParagraphIndex int

	insertedParaID model.ParagraphId
	inserted       bool
}

// NewInsertParagraph returns an InsertParagraph command.
func NewInsertParagraph(sectionIndex, paragraphIndex int) *InsertParagraph {
	return &InsertParagraph{SectionIndex: sectionIndex, ParagraphIndex: paragraphIndex}
}

func (cmd *InsertParagraph) Execute(doc *model.Document) error {
	section, _, ok := doc.SectionAt(cmd.SectionIndex)
	if !ok {
		return newError(ErrSectionNotFound, "section %d not found", cmd.SectionIndex)
	}
	paraID := model.ParagraphId{Id: doc.Paragraphs.Insert(model.Paragraph{})}
	cmd.insertedParaID = paraID
	cmd.inserted = true

	idx := cmd.ParagraphIndex
	if idx > len(section.Paragraphs) {
		idx = len(section.Paragraphs)
	}
	section.Paragraphs = append(section.Paragraphs, model.ParagraphId{})
	copy(section.Paragraphs[idx+1:], section.Paragraphs[idx:])
	section.Paragraphs[idx] = paraID
	return nil
}

func (cmd *InsertParagraph) Undo(doc *model.Document) error {
	if !cmd.inserted {
		return newError(ErrParagraphNotFound, "nothing to undo")
	}
	section, _, ok := doc.SectionAt(cmd.SectionIndex)
	if !ok {
		return newError(ErrSectionNotFound, "section %d not found", cmd.SectionIndex)
	}
	for i, id := range section.Paragraphs {
		if id == cmd.insertedParaID {
			section.Paragraphs = append(section.Paragraphs[:i], section.Paragraphs[i+1:]...)
			break
		}
	}
	doc.Paragraphs.Remove(cmd.insertedParaID.Id)
	return nil
}

func (cmd *InsertParagraph) Description() string { return "Insert paragraph" }
