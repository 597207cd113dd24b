package command

import "github.com/vortex/go-hwp/pkg/model"

// DeleteParagraph removes the paragraph at ParagraphIndex within the
// section at SectionIndex.
type DeleteParagraph struct {
	SectionIndex   int
	ParagraphIndex int

	deletedPara   model.Paragraph
	deletedParaID model.ParagraphId
	hasDeleted    bool
}

// NewDeleteParagraph returns a DeleteParagraph command.
func NewDeleteParagraph(sectionIndex, paragraphIndex int) *DeleteParagraph {
	return &DeleteParagraph{SectionIndex: sectionIndex, ParagraphIndex: paragraphIndex}
}

func (cmd *DeleteParagraph) Execute(doc *model.Document) error {
	section, _, ok := doc.SectionAt(cmd.SectionIndex)
	if !ok {
		return newError(ErrSectionNotFound, "section %d not found", cmd.SectionIndex)
	}
	para, paraID, ok := doc.ParagraphAt(section, cmd.ParagraphIndex)
	if !ok {
		return newError(ErrParagraphNotFound, "paragraph %d not found", cmd.ParagraphIndex)
	}
	cmd.deletedPara = *para
	cmd.deletedParaID = paraID
	cmd.hasDeleted = true

	section.Paragraphs = append(section.Paragraphs[:cmd.ParagraphIndex], section.Paragraphs[cmd.ParagraphIndex+1:]...)
	doc.Paragraphs.Remove(paraID.Id)
	return nil
}

func (cmd *DeleteParagraph) Undo(doc *model.Document) error {
	if !cmd.hasDeleted {
		return newError(ErrParagraphNotFound, "nothing to undo")
	}
	section, _, ok := doc.SectionAt(cmd.SectionIndex)
	if !ok {
		return newError(ErrSectionNotFound, "section %d not found", cmd.SectionIndex)
	}
	paraID := model.ParagraphId{Id: doc.Paragraphs.Insert(cmd.deletedPara)}

	idx := cmd.ParagraphIndex
	if idx > len(section.Paragraphs) {
		idx = len(section.Paragraphs)
	}
	section.Paragraphs = append(section.Paragraphs, model.ParagraphId{})
	copy(section.Paragraphs[idx+1:], section.Paragraphs[idx:])
	section.Paragraphs[idx] = paraID
	cmd.hasDeleted = false
	return nil
}

func (cmd *DeleteParagraph) Description() string { return "Delete paragraph" }
