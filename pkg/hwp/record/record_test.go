package record

import (
	"bytes"
	"testing"

	"github.com/vortex/go-hwp/pkg/hwp/binio"
)

// TestRecordFramingShortForm is scenario S6's first half: a payload of
// 10 bytes encodes header (tag | level<<10 | 10<<20).
func TestRecordFramingShortForm(t *testing.T) {
	w := binio.NewWriter()
	h := Header{Tag: TagParagraphHeader, Level: 2, Size: 10}
	EncodeHeader(w, h)
	payload := bytes.Repeat([]byte{0xAA}, 10)
	w.Raw(payload)

	it := NewIterator(w.Bytes())
	if !it.Next() {
		t.Fatal("expected one record")
	}
	rec := it.Record()
	if rec.Header != h {
		t.Fatalf("header mismatch: got %+v want %+v", rec.Header, h)
	}
	if !bytes.Equal(rec.Payload, payload) {
		t.Fatalf("payload mismatch")
	}
}

// TestRecordFramingExtendedForm is scenario S6's second half: a payload
// of 5000 bytes encodes size bits 0xFFF followed by a literal u32 5000.
func TestRecordFramingExtendedForm(t *testing.T) {
	w := binio.NewWriter()
	h := Header{Tag: TagParagraphText, Level: 0, Size: 5000}
	EncodeHeader(w, h)

	encoded := w.Bytes()
	packed := uint32(encoded[0]) | uint32(encoded[1])<<8 | uint32(encoded[2])<<16 | uint32(encoded[3])<<24
	sizeBits := (packed >> 20) & 0xFFF
	if sizeBits != 0xFFF {
		t.Fatalf("expected inline size escape 0xFFF, got %#x", sizeBits)
	}
	extU32 := uint32(encoded[4]) | uint32(encoded[5])<<8 | uint32(encoded[6])<<16 | uint32(encoded[7])<<24
	if extU32 != 5000 {
		t.Fatalf("expected extended size 5000, got %d", extU32)
	}

	payload := bytes.Repeat([]byte{0x01}, 5000)
	w.Raw(payload)

	it := NewIterator(w.Bytes())
	if !it.Next() {
		t.Fatal("expected one record")
	}
	if it.Record().Header.Size != 5000 {
		t.Fatalf("expected size 5000, got %d", it.Record().Header.Size)
	}
}

// TestRecordFramingRoundTrip is property 9: re-encoding a parsed record
// yields the same size field, for both inline and extended forms.
func TestRecordFramingRoundTrip(t *testing.T) {
	for _, size := range []uint32{0, 1, 4094, 4095, 4096, 100000} {
		w := binio.NewWriter()
		h := Header{Tag: TagControlHeader, Level: 1, Size: size}
		EncodeHeader(w, h)
		w.Raw(make([]byte, size))

		it := NewIterator(w.Bytes())
		if !it.Next() {
			t.Fatalf("size %d: expected record", size)
		}
		if it.Record().Header.Size != size {
			t.Fatalf("size %d: round-trip got %d", size, it.Record().Header.Size)
		}
	}
}

func TestIteratorGracefulTruncation(t *testing.T) {
	w := binio.NewWriter()
	EncodeHeader(w, Header{Tag: TagParagraphHeader, Size: 100})
	w.Raw(make([]byte, 10)) // declared 100 bytes, only 10 present

	it := NewIterator(w.Bytes())
	if it.Next() {
		t.Fatal("expected graceful EOF on truncated payload")
	}
	if it.Err() != nil {
		t.Fatalf("truncation should not be a hard error, got %v", it.Err())
	}
}

func TestIteratorStopsUnderFourBytes(t *testing.T) {
	it := NewIterator([]byte{0x01, 0x02, 0x03})
	if it.Next() {
		t.Fatal("expected no records from a 3-byte buffer")
	}
}
