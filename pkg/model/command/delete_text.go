package command

import (
	"github.com/vortex/go-hwp/pkg/model"
	"github.com/vortex/go-hwp/pkg/model/cursor"
)

// DeleteText removes Length cursor-addressable positions starting at
// Start (spec.md §8 S2).
type DeleteText struct {
	Start  cursor.Position
	Length int

	deletedText string
	hasDeleted  bool
}

// NewDeleteText returns a DeleteText command.
func NewDeleteText(start cursor.Position, length int) *DeleteText {
	return &DeleteText{Start: start, Length: length}
}

func (cmd *DeleteText) Execute(doc *model.Document) error {
	run, _, _, err := resolveRun(doc, cmd.Start)
	if err != nil {
		return err
	}
	cmd.deletedText = extractTextAtOffset(run, cmd.Start.CharOffset, cmd.Length)
	cmd.hasDeleted = true
	deleteTextAtOffset(run, cmd.Start.CharOffset, cmd.Length)
	return nil
}

func (cmd *DeleteText) Undo(doc *model.Document) error {
	if !cmd.hasDeleted {
		return newError(ErrOther, "no deleted text stored")
	}
	run, _, _, err := resolveRun(doc, cmd.Start)
	if err != nil {
		return err
	}
	insertTextAtOffset(run, cmd.Start.CharOffset, cmd.deletedText)
	return nil
}

func (cmd *DeleteText) Description() string { return "Delete text" }
