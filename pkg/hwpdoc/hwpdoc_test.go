package hwpdoc

import (
	"strings"
	"testing"

	"github.com/vortex/go-hwp/pkg/hwp/body"
	"github.com/vortex/go-hwp/pkg/hwp/cfb"
	"github.com/vortex/go-hwp/pkg/hwp/docinfo"
	"github.com/vortex/go-hwp/pkg/hwpx/container"
	"github.com/vortex/go-hwp/pkg/ir"
	"github.com/vortex/go-hwp/pkg/primitive"
)

func TestSniff(t *testing.T) {
	if f := sniff([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0, 0}); f != FormatOLE {
		t.Fatalf("sniff(ole magic) = %v, want FormatOLE", f)
	}
	if f := sniff([]byte{0x50, 0x4B, 0x03, 0x04, 0, 0}); f != FormatHWPX {
		t.Fatalf("sniff(zip magic) = %v, want FormatHWPX", f)
	}
	if f := sniff([]byte("not a document")); f != FormatUnknown {
		t.Fatalf("sniff(garbage) = %v, want FormatUnknown", f)
	}
}

func TestFileHeaderRoundTrip(t *testing.T) {
	h := FileHeader{
		Version: primitive.Version{Major: 5, Minor: 0, Micro: 3, Build: 0},
		Flags:   FlagCompressed | FlagDistribution | FlagEncrypted,
	}
	blob := EncodeFileHeader(h)
	if len(blob) != fileHeaderSize {
		t.Fatalf("encoded header length = %d, want %d", len(blob), fileHeaderSize)
	}
	decoded, err := DecodeFileHeader(blob)
	if err != nil {
		t.Fatalf("DecodeFileHeader() error = %v", err)
	}
	if decoded.Version != h.Version {
		t.Fatalf("Version = %+v, want %+v", decoded.Version, h.Version)
	}
	if !decoded.Compressed() || !decoded.Distribution() || !decoded.Encrypted() {
		t.Fatalf("flags lost in round trip: %+v", decoded.Flags)
	}
	if decoded.HasScript() {
		t.Fatalf("unset flag read as set")
	}
}

func TestDecodeFileHeaderRejectsBadSignature(t *testing.T) {
	blob := make([]byte, fileHeaderSize)
	copy(blob, []byte("not an hwp file at all"))
	if _, err := DecodeFileHeader(blob); err == nil {
		t.Fatalf("expected signature mismatch error")
	}
}

func buildHWPXFixture(t *testing.T) []byte {
	t.Helper()
	sectionXML := `<?xml version="1.0" encoding="UTF-8"?>
<hs:sec xmlns:hs="http://www.hancom.co.kr/hwpml/2011/section" xmlns:hp="http://www.hancom.co.kr/hwpml/2011/paragraph">
  <hp:p paraPrIDRef="0" styleIDRef="0">
    <hp:run charPrIDRef="0"><hp:t>hello hwpdoc</hp:t></hp:run>
  </hp:p>
</hs:sec>`
	contentHpf := `<?xml version="1.0" encoding="UTF-8"?>
<opf:package xmlns:opf="http://www.idpf.org/2007/opf/">
  <opf:manifest>
    <opf:item id="header" href="Contents/header.xml" media-type="application/xml"/>
    <opf:item id="section0" href="Contents/section0.xml" media-type="application/xml"/>
  </opf:manifest>
  <opf:spine>
    <opf:itemref idref="section0"/>
  </opf:spine>
</opf:package>`
	containerXML := `<?xml version="1.0" encoding="UTF-8"?>
<container><rootfiles><rootfile full-path="Contents/content.hpf"/></rootfiles></container>`
	headerXML := `<?xml version="1.0" encoding="UTF-8"?>
<hh:head xmlns:hh="http://www.hancom.co.kr/hwpml/2011/head"><hh:fontfaces/></hh:head>`

	entries := []container.Entry{
		{Name: "mimetype", Data: []byte(container.ExpectedMimeType)},
		{Name: "META-INF/container.xml", Data: []byte(containerXML)},
		{Name: "Contents/content.hpf", Data: []byte(contentHpf)},
		{Name: "Contents/header.xml", Data: []byte(headerXML)},
		{Name: "Contents/section0.xml", Data: []byte(sectionXML)},
	}
	blob, err := container.Write(entries)
	if err != nil {
		t.Fatalf("container.Write() error = %v", err)
	}
	return blob
}

func TestOpenHWPXExtractsText(t *testing.T) {
	blob := buildHWPXFixture(t)
	doc, err := Open(blob)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if doc.Format != FormatHWPX {
		t.Fatalf("Format = %v, want FormatHWPX", doc.Format)
	}
	if got := doc.ExtractText(); !strings.Contains(got, "hello hwpdoc") {
		t.Fatalf("ExtractText() = %q, missing expected text", got)
	}
}

func TestHWPXSaveRoundTrip(t *testing.T) {
	blob := buildHWPXFixture(t)
	doc, err := Open(blob)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	saved, err := Save(doc)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	doc2, err := Open(saved)
	if err != nil {
		t.Fatalf("re-Open() error = %v", err)
	}
	if got := doc2.ExtractText(); !strings.Contains(got, "hello hwpdoc") {
		t.Fatalf("round-tripped ExtractText() = %q, missing expected text", got)
	}
}

func buildOLEFixture(t *testing.T) []byte {
	t.Helper()
	version := primitive.Version{Major: 5, Minor: 0, Micro: 3, Build: 0}
	header := FileHeader{Version: version}

	di := &docinfo.DocInfo{
		Properties: docinfo.DocumentProperties{SectionCount: 1},
		Styles:     []docinfo.Style{{Name: "Normal"}},
	}

	sec := ir.Section{
		Paragraphs: []ir.Paragraph{
			{Runs: []ir.Run{{Contents: []ir.RunContent{ir.NewTextContent("hello ole")}}}},
		},
	}

	w := cfb.NewWriter()
	w.AddStream(streamFileHeader, EncodeFileHeader(header))
	w.AddStream(streamDocInfo, di.Encode(version))
	w.AddStream(sectionStreamName(bodyTextPrefix, 0), body.Encode(&sec))

	blob, err := w.Bytes()
	if err != nil {
		t.Fatalf("cfb Writer.Bytes() error = %v", err)
	}
	return blob
}

func TestOpenOLEExtractsText(t *testing.T) {
	blob := buildOLEFixture(t)
	doc, err := Open(blob)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if doc.Format != FormatOLE {
		t.Fatalf("Format = %v, want FormatOLE", doc.Format)
	}
	if got := doc.ExtractText(); !strings.Contains(got, "hello ole") {
		t.Fatalf("ExtractText() = %q, missing expected text", got)
	}
}

func TestOLESaveRoundTrip(t *testing.T) {
	blob := buildOLEFixture(t)
	doc, err := Open(blob)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	saved, err := Save(doc)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	doc2, err := Open(saved)
	if err != nil {
		t.Fatalf("re-Open() error = %v", err)
	}
	if doc2.Format != FormatOLE {
		t.Fatalf("round-tripped Format = %v, want FormatOLE", doc2.Format)
	}
	if got := doc2.ExtractText(); !strings.Contains(got, "hello ole") {
		t.Fatalf("round-tripped ExtractText() = %q, missing expected text", got)
	}
	if doc2.HeaderVersion() != doc.HeaderVersion() {
		t.Fatalf("round-tripped HeaderVersion() = %q, want %q", doc2.HeaderVersion(), doc.HeaderVersion())
	}
}

func TestOpenRejectsUnrecognizedContainer(t *testing.T) {
	if _, err := Open([]byte("plain text, not a document")); err == nil {
		t.Fatalf("expected an error for an unrecognized container")
	}
}
