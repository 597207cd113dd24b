// Package command implements reversible document edits (spec.md §4.H),
// ported from original_source/crates/document/src/command.rs's Command
// trait and InsertText/DeleteText/InsertParagraph/DeleteParagraph types.
package command

import (
	"github.com/vortex/go-hwp/pkg/hwperr"
	"github.com/vortex/go-hwp/pkg/model"
	"github.com/vortex/go-hwp/pkg/model/cursor"
)

// Command is a single reversible document edit.
type Command interface {
	Execute(doc *model.Document) error
	Undo(doc *model.Document) error
	Description() string
}

// ErrorKind enumerates the failure modes a command can report.
type ErrorKind = hwperr.CmdErrorKind

const (
	ErrInvalidPosition   = hwperr.CmdInvalidPosition
	ErrSectionNotFound   = hwperr.CmdSectionNotFound
	ErrParagraphNotFound = hwperr.CmdParagraphNotFound
	ErrRunNotFound       = hwperr.CmdRunNotFound
	ErrNoSelection       = hwperr.CmdNoSelection
	ErrOther             = hwperr.CmdOther
)

// Error classifies why a command failed to resolve its target. It
// wraps hwperr.CmdError so errors.Is/errors.As traverse the same
// chain every other typed error in this module does.
type Error struct {
	*hwperr.CmdError
}

// Unwrap exposes the wrapped hwperr.CmdError itself (rather than the
// promoted CmdError.Unwrap, which would chase its own empty cause)
// so errors.As(err, &(*hwperr.CmdError)(nil)) finds it.
func (e *Error) Unwrap() error { return e.CmdError }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{hwperr.NewCmdError(kind, format, args...)}
}

// resolveRun walks section/paragraph/run indices down to a live run,
// the traversal every command below needs before it can act.
func resolveRun(doc *model.Document, pos cursor.Position) (*model.Run, model.RunId, *model.Paragraph, error) {
	section, _, ok := doc.SectionAt(pos.SectionIndex)
	if !ok {
		return nil, model.RunId{}, nil, newError(ErrSectionNotFound, "section %d not found", pos.SectionIndex)
	}
	para, _, ok := doc.ParagraphAt(section, pos.ParagraphIndex)
	if !ok {
		return nil, model.RunId{}, nil, newError(ErrParagraphNotFound, "paragraph %d not found", pos.ParagraphIndex)
	}
	run, runID, ok := doc.RunAt(para, pos.RunIndex)
	if !ok {
		return nil, model.RunId{}, para, newError(ErrRunNotFound, "run %d not found", pos.RunIndex)
	}
	return run, runID, para, nil
}

// insertTextAtOffset inserts text into run at a cursor-addressable
// offset, splitting the Text content it lands inside.
func insertTextAtOffset(run *model.Run, offset int, text string) {
	current := 0
	for i := range run.Contents {
		c := &run.Contents[i]
		if c.Kind != model.RunText {
			current++
			continue
		}
		runes := []rune(c.Text)
		if offset >= current && offset <= current+len(runes) {
			at := offset - current
			merged := make([]rune, 0, len(runes)+len([]rune(text)))
			merged = append(merged, runes[:at]...)
			merged = append(merged, []rune(text)...)
			merged = append(merged, runes[at:]...)
			c.Text = string(merged)
			return
		}
		current += len(runes)
	}
	run.Contents = append(run.Contents, model.NewTextContent(text))
}

// deleteTextAtOffset removes length cursor-addressable positions
// starting at offset from run, spanning Text contents as needed.
func deleteTextAtOffset(run *model.Run, offset, length int) {
	current := 0
	remaining := length
	for i := range run.Contents {
		if remaining == 0 {
			break
		}
		c := &run.Contents[i]
		if c.Kind != model.RunText {
			current++
			continue
		}
		runes := []rune(c.Text)
		n := len(runes)
		if offset < current+n {
			start := offset - current
			if start < 0 {
				start = 0
			}
			end := start + remaining
			if end > n {
				end = n
			}
			removed := end - start
			c.Text = string(append(append([]rune{}, runes[:start]...), runes[end:]...))
			remaining -= removed
		}
		current += n
	}
}

// extractTextAtOffset returns the length cursor-addressable positions
// of run's text starting at offset, without modifying run.
func extractTextAtOffset(run *model.Run, offset, length int) string {
	var result []rune
	current := 0
	remaining := length
	for _, c := range run.Contents {
		if remaining == 0 {
			break
		}
		if c.Kind != model.RunText {
			current++
			continue
		}
		runes := []rune(c.Text)
		n := len(runes)
		if offset < current+n {
			start := offset - current
			if start < 0 {
				start = 0
			}
			end := start + remaining
			if end > n {
				end = n
			}
			result = append(result, runes[start:end]...)
			remaining -= end - start
		}
		current += n
	}
	return string(result)
}
