package hwpdoc

import (
	"bytes"

	"github.com/vortex/go-hwp/pkg/hwp/docinfo"
	"github.com/vortex/go-hwp/pkg/hwperr"
	"github.com/vortex/go-hwp/pkg/hwpx/container"
	"github.com/vortex/go-hwp/pkg/model"
)

// Format identifies which container a Document was loaded from, so
// Save can round-trip to the same format by default (spec.md §4.L).
type Format int

const (
	FormatUnknown Format = iota
	FormatOLE
	FormatHWPX
)

var (
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
)

// sniff detects a document's container format from its leading bytes
// (spec.md §4.L).
func sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, oleMagic):
		return FormatOLE
	case bytes.HasPrefix(data, zipMagic):
		return FormatHWPX
	default:
		return FormatUnknown
	}
}

// Document is the format-agnostic façade over model.Document: the
// editable content plus the container-level metadata (file header,
// summary information, scripts, doc-options) that pkg/model has no
// concept of but spec.md §4.L's accessors still need to expose.
type Document struct {
	*model.Document

	Format     Format
	Header     FileHeader
	Summary    Summary
	Scripts    map[string][]byte
	DocOptions map[string][]byte

	PreviewText  string
	PreviewImage []byte

	DocInfo *docinfo.DocInfo

	// hwpxEntries/hwpxRootPath cache the package entries an HWPX
	// document was opened from, so saveHWPX can carry over every part
	// the edit model never touches (content.hpf, settings.xml,
	// BinData/*) unchanged rather than having to reconstruct the whole
	// package descriptor from scratch.
	hwpxEntries  []container.Entry
	hwpxRootPath string
}

// Summary is the document summary-information block (spec.md §4.L).
// Only the OLE loader fills it; a document opened from HWPX leaves it
// zero.
type Summary struct {
	Title, Author, Subject, Keywords, Comments, LastSavedBy string
}

// Open loads a document from bytes, detecting its container format
// from the leading magic bytes (spec.md §4.L).
func Open(data []byte) (*Document, error) {
	return OpenWithPassword(data, "")
}

// OpenWithPassword loads a possibly password-protected OLE document.
// HWPX documents never take a password at this layer (distribution
// encryption for HWPX is out of this module's scope); password is
// ignored when the detected format is FormatHWPX.
func OpenWithPassword(data []byte, password string) (*Document, error) {
	switch sniff(data) {
	case FormatOLE:
		return openOLE(data, password)
	case FormatHWPX:
		return openHWPX(data)
	default:
		return nil, hwperr.NewFormatError(nil, "hwpdoc: unrecognized container (not OLE or ZIP magic)")
	}
}

// Save serializes doc back to the format it was opened from.
func Save(doc *Document) ([]byte, error) {
	switch doc.Format {
	case FormatOLE:
		return saveOLE(doc)
	case FormatHWPX:
		return saveHWPX(doc)
	default:
		return nil, hwperr.NewFormatError(nil, "hwpdoc: document has no source format to save to")
	}
}

// HeaderVersion is the file-format version the document was written
// with (spec.md §4.L). HWPX documents have no file header, so they
// report the zero Version; their version.xml is kept only as raw bytes
// in Extensions (see hwpx.go).
func (d *Document) HeaderVersion() string { return d.Header.Version.String() }

// IsEncrypted reports the file header's encrypted bit.
func (d *Document) IsEncrypted() bool { return d.Header.Encrypted() }

// IsDistribution reports the file header's distribution bit.
func (d *Document) IsDistribution() bool { return d.Header.Distribution() }

// Script returns a named /Scripts/* stream's contents.
func (d *Document) Script(name string) ([]byte, bool) {
	b, ok := d.Scripts[name]
	return b, ok
}

// DocOption returns a named /DocOptions/* stream's contents.
func (d *Document) DocOption(name string) ([]byte, bool) {
	b, ok := d.DocOptions[name]
	return b, ok
}
