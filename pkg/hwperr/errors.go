// Package hwperr defines the typed error families described in spec.md §7:
// IO/container, envelope, format, schema and command errors. Each wraps
// an optional cause so errors.Is/errors.As traverse the chain, mirroring
// the teacher's DocxError/InvalidXmlError shape (go-docx/pkg/docx/errors.go).
package hwperr

import "fmt"

// baseError is the shared shape for every typed error in this package.
type baseError struct {
	msg   string
	cause error
}

func (e *baseError) Error() string { return e.msg }
func (e *baseError) Unwrap() error { return e.cause }

// IOError indicates a truncated file, bad magic, or missing stream/entry.
type IOError struct{ baseError }

// NewIOError builds an IOError.
func NewIOError(cause error, msg string, args ...any) *IOError {
	return &IOError{baseError{msg: fmt.Sprintf(msg, args...), cause: cause}}
}

// EnvelopeError indicates a decompression failure, wrong password, or
// missing/mismatched distribution key.
type EnvelopeError struct{ baseError }

// NewEnvelopeError builds an EnvelopeError.
func NewEnvelopeError(cause error, msg string, args ...any) *EnvelopeError {
	return &EnvelopeError{baseError{msg: fmt.Sprintf(msg, args...), cause: cause}}
}

// FormatError indicates a bad file-header signature, unknown version, or
// a record payload exceeding the remaining stream.
type FormatError struct{ baseError }

// NewFormatError builds a FormatError.
func NewFormatError(cause error, msg string, args ...any) *FormatError {
	return &FormatError{baseError{msg: fmt.Sprintf(msg, args...), cause: cause}}
}

// SchemaError indicates an unknown XML element/attribute, a missing
// required attribute, an invalid enum variant, or a matcher mismatch. It
// carries the element-name path for diagnostics, per spec.md §7.
type SchemaError struct {
	baseError
	Path []string
}

// NewSchemaError builds a SchemaError with the given element-name path.
func NewSchemaError(path []string, msg string, args ...any) *SchemaError {
	return &SchemaError{baseError: baseError{msg: fmt.Sprintf(msg, args...)}, Path: path}
}

func (e *SchemaError) Error() string {
	if len(e.Path) == 0 {
		return e.msg
	}
	out := e.msg + " (at "
	for i, p := range e.Path {
		if i > 0 {
			out += "/"
		}
		out += p
	}
	return out + ")"
}

// CmdErrorKind enumerates why a document-editing command failed to
// resolve its target, matching the Rust CommandError enum's variants
// (original_source/crates/document/src/command.rs) 1:1.
type CmdErrorKind int

const (
	CmdInvalidPosition CmdErrorKind = iota
	CmdSectionNotFound
	CmdParagraphNotFound
	CmdRunNotFound
	CmdNoSelection
	CmdOther
)

// CmdError indicates a pkg/model/command edit could not resolve its
// target position, or had nothing to undo.
type CmdError struct {
	baseError
	Kind CmdErrorKind
}

// NewCmdError builds a CmdError of the given kind.
func NewCmdError(kind CmdErrorKind, msg string, args ...any) *CmdError {
	return &CmdError{baseError: baseError{msg: fmt.Sprintf(msg, args...)}, Kind: kind}
}

func (e *CmdError) Error() string {
	switch e.Kind {
	case CmdInvalidPosition:
		return "invalid position"
	case CmdSectionNotFound:
		return "section not found"
	case CmdParagraphNotFound:
		return "paragraph not found"
	case CmdRunNotFound:
		return "run not found"
	case CmdNoSelection:
		return "no selection"
	default:
		return e.msg
	}
}
