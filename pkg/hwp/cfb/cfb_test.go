package cfb

import (
	"bytes"
	"testing"
)

func TestWriterOpenRoundTrip(t *testing.T) {
	w := NewWriter()
	w.AddStream("/FileHeader", []byte("header bytes"))
	w.AddStream("/DocInfo", []byte("docinfo bytes"))
	w.AddStream("/BodyText/Section0", bytes.Repeat([]byte{0x41}, 5000)) // exceeds the mini-stream cutoff
	w.AddStream("/BinData/BIN0001.png", []byte{0x89, 'P', 'N', 'G'})

	blob, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	c, err := OpenBytes(blob)
	if err != nil {
		t.Fatalf("OpenBytes() error = %v", err)
	}

	header, ok := c.Stream("/FileHeader")
	if !ok || string(header) != "header bytes" {
		t.Fatalf("Stream(/FileHeader) = (%q, %v)", header, ok)
	}
	docInfo, ok := c.Stream("/DocInfo")
	if !ok || string(docInfo) != "docinfo bytes" {
		t.Fatalf("Stream(/DocInfo) = (%q, %v)", docInfo, ok)
	}
	section, ok := c.Stream("/BodyText/Section0")
	if !ok || len(section) != 5000 {
		t.Fatalf("Stream(/BodyText/Section0) length = %d, want 5000 (ok=%v)", len(section), ok)
	}
	binData, ok := c.Stream("/BinData/BIN0001.png")
	if !ok || !bytes.Equal(binData, []byte{0x89, 'P', 'N', 'G'}) {
		t.Fatalf("Stream(/BinData/BIN0001.png) = (%v, %v)", binData, ok)
	}

	if _, ok := c.Stream("/NoSuchStream"); ok {
		t.Fatalf("Stream() reported a nonexistent stream as present")
	}
}

func TestContainerHasPrefix(t *testing.T) {
	w := NewWriter()
	w.AddStream("/ViewText/Section0", []byte("view"))

	blob, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	c, err := OpenBytes(blob)
	if err != nil {
		t.Fatalf("OpenBytes() error = %v", err)
	}

	if c.HasPrefix("/BodyText/Section") {
		t.Fatalf("HasPrefix(/BodyText/Section) = true, want false")
	}
	if !c.HasPrefix("/ViewText/Section") {
		t.Fatalf("HasPrefix(/ViewText/Section) = false, want true")
	}
}

func TestSummaryAbsentIsNotAnError(t *testing.T) {
	w := NewWriter()
	w.AddStream("/FileHeader", []byte("header bytes"))

	blob, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	c, err := OpenBytes(blob)
	if err != nil {
		t.Fatalf("OpenBytes() error = %v", err)
	}

	summary, ok, err := c.Summary()
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if ok || summary != nil {
		t.Fatalf("Summary() = (%+v, %v), want (nil, false) for a container with no summary stream", summary, ok)
	}
}

func TestOpenEmptyContainer(t *testing.T) {
	blob, err := NewWriter().Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	c, err := OpenBytes(blob)
	if err != nil {
		t.Fatalf("OpenBytes() on an empty compound file error = %v", err)
	}
	if len(c.StreamNames()) != 0 {
		t.Fatalf("StreamNames() = %v, want none", c.StreamNames())
	}
}
