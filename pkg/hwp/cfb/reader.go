// Package cfb reads and writes the OLE compound-file container that
// wraps every HWP 5.x stream (spec.md §6.1). Reading is delegated to
// github.com/richardlehane/mscfb (grounded in
// _examples/other_examples/manifests/{hailam-genfile,flaviodelgrosso-marky}/go.mod,
// where it appears as an indirect dependency of doc-format parsing
// libraries in the retrieval pack). mscfb is read-only, so the writer
// below is new code laying out a minimal single-level compound file by
// hand.
package cfb

import (
	"bytes"
	"io"

	"github.com/richardlehane/mscfb"
	"github.com/vortex/go-hwp/pkg/hwperr"
)

// Container is an opened OLE compound file: a name -> stream-bytes map
// built once at open time, since spec.md §5 requires the reader to
// acquire and release its handle within a single load call with no
// handle escaping the call.
type Container struct {
	streams map[string][]byte
	order   []string
}

// streamPath joins an mscfb entry's storage path and name the way the
// rest of this module addresses streams: "/BodyText/Section0" style,
// matching spec.md §6.1's stream naming.
func streamPath(entry *mscfb.File) string {
	var b bytes.Buffer
	for _, p := range entry.Path {
		b.WriteByte('/')
		b.WriteString(p)
	}
	b.WriteByte('/')
	b.WriteString(entry.Name)
	return b.String()
}

// Open reads every stream in the compound file referenced by r into
// memory, keyed by its fully qualified path.
func Open(r io.ReaderAt) (*Container, error) {
	reader, err := mscfb.New(toReaderAt(r))
	if err != nil {
		return nil, hwperr.NewIOError(err, "cfb: opening compound file")
	}
	c := &Container{streams: make(map[string][]byte)}
	for entry, err := reader.Next(); err == nil; entry, err = reader.Next() {
		buf := make([]byte, entry.Size)
		if _, err := io.ReadFull(reader, buf); err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return nil, hwperr.NewIOError(err, "cfb: reading stream %q", streamPath(entry))
		}
		name := streamPath(entry)
		c.streams[name] = buf
		c.order = append(c.order, name)
	}
	return c, nil
}

// toReaderAt adapts an io.ReaderAt, present so OpenBytes below can share
// this code path via bytes.NewReader (which already implements ReaderAt).
func toReaderAt(r io.ReaderAt) io.ReaderAt { return r }

// OpenBytes is a convenience wrapper over Open for an in-memory buffer.
func OpenBytes(data []byte) (*Container, error) {
	return Open(bytes.NewReader(data))
}

// Stream returns the raw bytes of the named stream, or (nil, false) if
// it is absent. spec.md §7 policy: callers treat an absent optional
// stream (Preview, Scripts, DocOptions, Summary) as "load succeeded,
// accessor returns None"; an absent required stream (FileHeader,
// DocInfo) is the caller's responsibility to turn into a fatal error.
func (c *Container) Stream(name string) ([]byte, bool) {
	b, ok := c.streams[name]
	return b, ok
}

// StreamNames returns every stream path present, in read order.
func (c *Container) StreamNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// HasPrefix reports whether any stream name starts with prefix, used to
// detect distribution documents' "/ViewText/SectionN" naming vs the
// ordinary "/BodyText/SectionN" naming (spec.md §6.1).
func (c *Container) HasPrefix(prefix string) bool {
	for _, name := range c.order {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
