package command

import (
	"github.com/vortex/go-hwp/pkg/model"
	"github.com/vortex/go-hwp/pkg/model/cursor"
)

// InsertText inserts Text at Position, creating a run if the target
// paragraph has none yet (spec.md §8 S1).
type InsertText struct {
	Position cursor.Position
	Text     string

	affectedRun   model.RunId
	createdRun    bool
	affectedParaID model.ParagraphId
}

// NewInsertText returns an InsertText command targeting position.
func NewInsertText(position cursor.Position, text string) *InsertText {
	return &InsertText{Position: position, Text: text}
}

func (cmd *InsertText) Execute(doc *model.Document) error {
	section, _, ok := doc.SectionAt(cmd.Position.SectionIndex)
	if !ok {
		return newError(ErrSectionNotFound, "section %d not found", cmd.Position.SectionIndex)
	}
	para, paraID, ok := doc.ParagraphAt(section, cmd.Position.ParagraphIndex)
	if !ok {
		return newError(ErrParagraphNotFound, "paragraph %d not found", cmd.Position.ParagraphIndex)
	}
	cmd.affectedParaID = paraID

	if len(para.Runs) == 0 {
		runID := model.RunId{Id: doc.Runs.Insert(model.Run{Contents: []model.RunContent{model.NewTextContent(cmd.Text)}})}
		para.Runs = append(para.Runs, runID)
		cmd.affectedRun = runID
		cmd.createdRun = true
		return nil
	}

	run, runID, ok := doc.RunAt(para, cmd.Position.RunIndex)
	if !ok {
		return newError(ErrRunNotFound, "run %d not found", cmd.Position.RunIndex)
	}
	cmd.affectedRun = runID
	insertTextAtOffset(run, cmd.Position.CharOffset, cmd.Text)
	return nil
}

func (cmd *InsertText) Undo(doc *model.Document) error {
	if cmd.createdRun {
		para := doc.Paragraphs.GetMut(cmd.affectedParaID.Id)
		if para == nil {
			return newError(ErrParagraphNotFound, "paragraph no longer present")
		}
		for i, id := range para.Runs {
			if id == cmd.affectedRun {
				para.Runs = append(para.Runs[:i], para.Runs[i+1:]...)
				break
			}
		}
		doc.Runs.Remove(cmd.affectedRun.Id)
		return nil
	}
	run := doc.Runs.GetMut(cmd.affectedRun.Id)
	if run == nil {
		return newError(ErrRunNotFound, "run no longer present")
	}
	deleteTextAtOffset(run, cmd.Position.CharOffset, len([]rune(cmd.Text)))
	return nil
}

func (cmd *InsertText) Description() string { return "Insert text" }
