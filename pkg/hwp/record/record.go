// Package record implements the HWP 5.x binary record framing: a 32-bit
// tag+level+size header (with an extended-size escape) followed by a
// payload, and an iterator that walks a stream's records in order while
// surviving truncation (spec.md §4.D).
package record

import (
	"github.com/vortex/go-hwp/pkg/hwp/binio"
)

// sizeEscape is the 12-bit size-field sentinel that means "the real size
// follows as a separate u32".
const sizeEscape = 0xFFF

// Header is the decoded tag/level/size triple of one record.
type Header struct {
	Tag   TagId
	Level uint16
	Size  uint32
}

// Record is one fully read record: its header plus the raw payload bytes.
type Record struct {
	Header  Header
	Payload []byte
}

// DecodeHeader reads one record header from r, resolving the extended
// size form when the inline 12-bit size field is the 0xFFF escape.
func DecodeHeader(r *binio.Reader) (Header, error) {
	packed, err := r.U32()
	if err != nil {
		return Header{}, err
	}
	tag := TagId(packed & 0x3FF)
	level := uint16((packed >> 10) & 0x3FF)
	size := (packed >> 20) & 0xFFF
	if size == sizeEscape {
		ext, err := r.U32()
		if err != nil {
			return Header{}, err
		}
		size = ext
	}
	return Header{Tag: tag, Level: level, Size: size}, nil
}

// EncodeHeader writes h to w, choosing the extended-size form whenever
// Size does not fit the inline 12-bit field (spec.md §8 property 9 and
// scenario S6).
func EncodeHeader(w *binio.Writer, h Header) {
	size := h.Size
	inline := size
	if size >= sizeEscape {
		inline = sizeEscape
	}
	packed := uint32(h.Tag)&0x3FF | (uint32(h.Level)&0x3FF)<<10 | (inline)<<20
	w.U32(packed)
	if inline == sizeEscape {
		w.U32(size)
	}
}

// Iterator walks the records of a single decompressed, decrypted stream
// in order. Iteration stops gracefully (Next returns false, Err returns
// nil) when fewer than 4 bytes remain or a header's declared payload
// exceeds the buffer — real files are occasionally truncated and the
// parser must survive that, per spec.md §4.D and §7.
type Iterator struct {
	r       *binio.Reader
	current Record
	err     error
	done    bool
}

// NewIterator creates an Iterator over buf.
func NewIterator(buf []byte) *Iterator {
	return &Iterator{r: binio.NewReader(buf)}
}

// Next advances to the next record, returning false when iteration is
// exhausted (gracefully or due to Err()).
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if it.r.Remaining() < 4 {
		it.done = true
		return false
	}
	start := it.r.Pos()
	header, err := DecodeHeader(it.r)
	if err != nil {
		// Truncated header: graceful EOF, not an error (§4.D, §7).
		it.r.Seek(start)
		it.done = true
		return false
	}
	if int(header.Size) > it.r.Remaining() {
		// Declared payload exceeds what remains: graceful EOF.
		it.r.Seek(start)
		it.done = true
		return false
	}
	payload, err := it.r.Bytes(int(header.Size))
	if err != nil {
		it.done = true
		return false
	}
	it.current = Record{Header: header, Payload: payload}
	return true
}

// Record returns the record most recently produced by Next.
func (it *Iterator) Record() Record { return it.current }

// Err returns the first hard error encountered, if any. A graceful
// truncation at end-of-stream is not an error.
func (it *Iterator) Err() error { return it.err }
