package container

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one named blob to place in an HWPX package.
type Entry struct {
	Name string
	Data []byte
}

// Write serializes entries into an HWPX ZIP package. The first entry
// must be named "mimetype" and is stored uncompressed, matching every
// other entry's DEFLATE compression otherwise (spec.md §6.2). Entry
// order is preserved verbatim in the archive, mirroring the teacher's
// `PackageWriter` contract of writing parts in the order given.
func Write(entries []Entry) ([]byte, error) {
	if len(entries) == 0 || entries[0].Name != "mimetype" {
		return nil, fmt.Errorf("container: first entry must be %q", "mimetype")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, e := range entries {
		method := zip.Deflate
		if i == 0 {
			method = zip.Store
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: method})
		if err != nil {
			return nil, fmt.Errorf("container: creating entry %q: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("container: writing entry %q: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("container: closing zip: %w", err)
	}
	return buf.Bytes(), nil
}

// FromReader rebuilds the Entry slice a Reader parsed, in its original
// order, suitable for round-tripping through Write unchanged.
func FromReader(r *Reader) []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, Entry{Name: name, Data: r.entries[name]})
	}
	return entries
}
