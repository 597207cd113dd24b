// Package binio implements the little-endian cursor reader/writer and the
// HwpString UTF-16LE codec shared by every binary HWP 5.x record parser
// (spec.md §4.B).
package binio

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/vortex/go-hwp/pkg/hwperr"
)

// Reader is a little-endian cursor over an in-memory byte slice.
//
// It tracks position and fails with a *hwperr.FormatError when a
// read would exceed the buffer, matching the teacher's habit (e.g.
// opc.PhysPkgReader.BlobFor) of returning a typed, wrapped error rather
// than panicking on malformed input.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for little-endian cursor reads starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the total buffer length.
func (r *Reader) Len() int { return len(r.buf) }

// Pos returns the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(pos int) { r.pos = pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return hwperr.NewFormatError(nil, "binio: need %d bytes, have %d at offset %d", n, r.Remaining(), r.pos)
	}
	return nil
}

// U8 reads an unsigned 8-bit integer.
func (r *Reader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// I8 reads a signed 8-bit integer.
func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

// U16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) U16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// I16 reads a little-endian signed 16-bit integer.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) U32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// I32 reads a little-endian signed 32-bit integer.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// U64 reads a little-endian unsigned 64-bit integer.
func (r *Reader) U64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// Bytes reads n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.buf[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// HwpString decodes a u16 code-point-count-prefixed UTF-16LE string.
// Unpaired surrogates are substituted with U+FFFD rather than causing a
// decode failure, per spec.md §4.B.
func (r *Reader) HwpString() (string, error) {
	count, err := r.U16()
	if err != nil {
		return "", err
	}
	if err := r.need(int(count) * 2); err != nil {
		return "", err
	}
	units := make([]uint16, count)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(r.buf[r.pos:])
		r.pos += 2
	}
	return string(utf16.Decode(units)), nil
}

// RawUTF16 reads count raw UTF-16LE code units (no length prefix) and
// returns them undecoded, used for the in-record character stream where control
// code-points are handled separately by the caller before this is
// reached for a text run.
func (r *Reader) RawUTF16(count int) ([]uint16, error) {
	if err := r.need(count * 2); err != nil {
		return nil, err
	}
	units := make([]uint16, count)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(r.buf[r.pos:])
		r.pos += 2
	}
	return units, nil
}
