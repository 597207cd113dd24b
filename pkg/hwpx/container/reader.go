// Package container implements the HWPX physical packaging layer: a
// ZIP archive with a mandatory uncompressed `mimetype` first entry and
// a `META-INF/container.xml` pointer to the OPF package descriptor
// (spec.md §4.J, §6.2). Unlike the teacher's `opc` package, HWPX has no
// per-part relationship graph to walk — entries are addressed directly
// by name — so this layer is a flat named-blob store rather than a
// `PhysPkgReader`/`OpcPackage` split.
package container

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// ExpectedMimeType is the fixed content of the package's first entry
// (spec.md §6.2).
const ExpectedMimeType = "application/hwp+zip"

// Reader holds every entry of an opened HWPX package, in archive order,
// addressable by name.
type Reader struct {
	order   []string
	entries map[string][]byte
}

// Open parses a ZIP-backed HWPX package from data. It does not validate
// the mimetype entry's content; callers that need strict validation
// call MimeType and compare against ExpectedMimeType themselves, since
// some producers in the wild write a near-miss value and the reader
// should not refuse to open an otherwise well-formed package over it.
func Open(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("container: opening zip: %w", err)
	}
	r := &Reader{entries: make(map[string][]byte, len(zr.File))}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("container: opening entry %q: %w", f.Name, err)
		}
		blob, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("container: reading entry %q: %w", f.Name, err)
		}
		if _, exists := r.entries[f.Name]; !exists {
			r.order = append(r.order, f.Name)
		}
		r.entries[f.Name] = blob
	}
	return r, nil
}

// MimeType returns the content of the first-entry mimetype declaration.
func (r *Reader) MimeType() (string, error) {
	blob, ok := r.entries["mimetype"]
	if !ok {
		return "", fmt.Errorf("container: missing mimetype entry")
	}
	return string(blob), nil
}

// Get returns the raw bytes of a named entry.
func (r *Reader) Get(name string) ([]byte, bool) {
	blob, ok := r.entries[name]
	return blob, ok
}

// Entries returns every entry name in archive order.
func (r *Reader) Entries() []string {
	return append([]string(nil), r.order...)
}

// RootFilePath parses META-INF/container.xml and returns the OPF
// package descriptor's path, per spec.md §4.J
// ("rootfiles/rootfile/@full-path").
func (r *Reader) RootFilePath() (string, error) {
	blob, ok := r.entries["META-INF/container.xml"]
	if !ok {
		return "Contents/content.hpf", nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(blob); err != nil {
		return "", fmt.Errorf("container: parsing container.xml: %w", err)
	}
	root := doc.FindElement("//rootfiles/rootfile")
	if root == nil {
		return "", fmt.Errorf("container: container.xml has no rootfile element")
	}
	path := root.SelectAttrValue("full-path", "")
	if path == "" {
		return "", fmt.Errorf("container: rootfile missing full-path attribute")
	}
	return path, nil
}
