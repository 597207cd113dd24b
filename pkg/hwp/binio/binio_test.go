package binio

import "testing"

func TestReaderWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.U8(0xAB)
	w.U16(0x1234)
	w.U32(0xDEADBEEF)
	w.HwpString("Hello")

	r := NewReader(w.Bytes())
	u8, err := r.U8()
	if err != nil || u8 != 0xAB {
		t.Fatalf("U8 = %v, %v", u8, err)
	}
	u16, err := r.U16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("U16 = %v, %v", u16, err)
	}
	u32, err := r.U32()
	if err != nil || u32 != 0xDEADBEEF {
		t.Fatalf("U32 = %v, %v", u32, err)
	}
	s, err := r.HwpString()
	if err != nil || s != "Hello" {
		t.Fatalf("HwpString = %q, %v", s, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", r.Remaining())
	}
}

func TestReaderUnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.U32(); err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
}

func TestHwpStringUnpairedSurrogate(t *testing.T) {
	w := NewWriter()
	w.U16(1)
	w.U16(0xD800) // unpaired high surrogate, no matching low surrogate follows
	r := NewReader(w.Bytes())
	s, err := r.HwpString()
	if err != nil {
		t.Fatalf("HwpString: %v", err)
	}
	if s != "�" {
		t.Fatalf("expected replacement character, got %q", s)
	}
}
