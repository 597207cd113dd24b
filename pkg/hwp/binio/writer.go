package binio

import (
	"encoding/binary"
	"unicode/utf16"
)

// Writer accumulates little-endian bytes, mirroring Reader's shape.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// U8 appends an unsigned 8-bit integer.
func (w *Writer) U8(v uint8) { w.buf = append(w.buf, v) }

// I8 appends a signed 8-bit integer.
func (w *Writer) I8(v int8) { w.U8(uint8(v)) }

// U16 appends a little-endian unsigned 16-bit integer.
func (w *Writer) U16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// I16 appends a little-endian signed 16-bit integer.
func (w *Writer) I16(v int16) { w.U16(uint16(v)) }

// U32 appends a little-endian unsigned 32-bit integer.
func (w *Writer) U32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// I32 appends a little-endian signed 32-bit integer.
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }

// U64 appends a little-endian unsigned 64-bit integer.
func (w *Writer) U64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// Raw appends raw bytes verbatim.
func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }

// Pad appends n zero bytes.
func (w *Writer) Pad(n int) { w.buf = append(w.buf, make([]byte, n)...) }

// HwpString appends a u16 code-point count followed by UTF-16LE code
// units, the inverse of Reader.HwpString.
func (w *Writer) HwpString(s string) {
	units := utf16.Encode([]rune(s))
	w.U16(uint16(len(units)))
	for _, u := range units {
		w.U16(u)
	}
}

// RawUTF16 appends UTF-16LE code units with no length prefix, the
// inverse of Reader.RawUTF16.
func (w *Writer) RawUTF16(units []uint16) {
	for _, u := range units {
		w.U16(u)
	}
}
