package hwpdoc

import (
	"bytes"
	"fmt"
	"unicode/utf16"

	"github.com/vortex/go-hwp/pkg/hwp/body"
	"github.com/vortex/go-hwp/pkg/hwp/cfb"
	"github.com/vortex/go-hwp/pkg/hwp/docinfo"
	"github.com/vortex/go-hwp/pkg/hwp/envelope"
	"github.com/vortex/go-hwp/pkg/hwperr"
	"github.com/vortex/go-hwp/pkg/ir"
)

const (
	streamFileHeader = "/FileHeader"
	streamDocInfo    = "/DocInfo"
	streamPrvText    = "/PrvText"
	streamPrvImage   = "/PrvImage"
	bodyTextPrefix   = "/BodyText/Section"
	viewTextPrefix   = "/ViewText/Section"
)

// openOLE loads a Document from an OLE compound-file byte stream
// (spec.md §6.1).
func openOLE(data []byte, password string) (*Document, error) {
	c, err := cfb.Open(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	rawHeader, ok := c.Stream(streamFileHeader)
	if !ok {
		return nil, hwperr.NewFormatError(nil, "hwpdoc: missing /FileHeader")
	}
	header, err := DecodeFileHeader(rawHeader)
	if err != nil {
		return nil, err
	}

	rawDocInfo, ok := c.Stream(streamDocInfo)
	if !ok {
		return nil, hwperr.NewFormatError(nil, "hwpdoc: missing /DocInfo")
	}
	if header.Compressed() {
		rawDocInfo, err = envelope.Inflate(rawDocInfo)
		if err != nil {
			return nil, err
		}
	}
	di, err := docinfo.Decode(rawDocInfo, header.Version)
	if err != nil {
		return nil, err
	}

	var bodyKey []byte
	if header.Encrypted() {
		if header.Distribution() {
			bodyKey, err = envelope.DistributionKey(di.DistributeDocData)
		} else {
			bodyKey = envelope.DeriveKey(password, header.Version)
		}
		if err != nil {
			return nil, err
		}
	}

	prefix := bodyTextPrefix
	if !c.HasPrefix(bodyTextPrefix) && c.HasPrefix(viewTextPrefix) {
		prefix = viewTextPrefix
	}
	sections := make([]ir.Section, 0, di.Properties.SectionCount)
	for i := 0; i < int(di.Properties.SectionCount); i++ {
		name := sectionStreamName(prefix, i)
		raw, ok := c.Stream(name)
		if !ok {
			return nil, hwperr.NewFormatError(nil, "hwpdoc: missing %s", name)
		}
		plain, err := decodeStreamEnvelope(raw, bodyKey, header.Compressed())
		if err != nil {
			return nil, err
		}
		sec, err := body.Decode(plain)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *sec)
	}

	doc := &Document{
		Format:     FormatOLE,
		Header:     header,
		DocInfo:    di,
		Scripts:    collectPrefixed(c, "/Scripts/"),
		DocOptions: collectPrefixed(c, "/DocOptions/"),
	}

	if summary, ok, err := c.Summary(); err != nil {
		return nil, err
	} else if ok {
		doc.Summary = Summary{
			Title: summary.Title, Author: summary.Author, Subject: summary.Subject,
			Keywords: summary.Keywords, Comments: summary.Comments, LastSavedBy: summary.LastSavedBy,
		}
	}

	if raw, ok := c.Stream(streamPrvText); ok {
		doc.PreviewText = decodeUTF16LEPreview(raw)
	}
	if raw, ok := c.Stream(streamPrvImage); ok {
		doc.PreviewImage = raw
	}

	irDoc := &ir.Document{
		Metadata: ir.Metadata{
			Title: doc.Summary.Title, Author: doc.Summary.Author,
			Subject: doc.Summary.Subject, Keywords: doc.Summary.Keywords, Comments: doc.Summary.Comments,
		},
		Sections:   sections,
		BinaryData: binaryDataFromDocInfo(c, di),
		Extensions: make(map[string][]byte),
	}
	irDoc.Styles = make([]ir.Style, len(di.Styles))
	for i, s := range di.Styles {
		irDoc.Styles[i] = ir.Style{Name: s.Name, ParaShapeID: s.ParaShapeID, CharShapeID: s.CharShapeID}
	}

	doc.Document = ir.ToModel(irDoc)
	return doc, nil
}

func sectionStreamName(prefix string, i int) string {
	const digits = "0123456789"
	if i < 10 {
		return prefix + string(digits[i])
	}
	n := i
	var rev []byte
	for n > 0 {
		rev = append(rev, digits[n%10])
		n /= 10
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return prefix + string(rev)
}

// decodeStreamEnvelope reverses the per-stream wrapping order spec.md
// §4.C describes: encryption wraps the compressed bytes, so decryption
// happens first, inflation second.
func decodeStreamEnvelope(raw, key []byte, compressed bool) ([]byte, error) {
	out := raw
	var err error
	if key != nil {
		out, err = envelope.DecryptStream(key, out)
		if err != nil {
			return nil, err
		}
	}
	if compressed {
		out, err = envelope.Inflate(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func collectPrefixed(c *cfb.Container, prefix string) map[string][]byte {
	out := make(map[string][]byte)
	for _, name := range c.StreamNames() {
		if len(name) > len(prefix) && name[:len(prefix)] == prefix {
			if b, ok := c.Stream(name); ok {
				out[name[len(prefix):]] = b
			}
		}
	}
	return out
}

// binDataStreamName is the real-world HWP 5.x naming convention for a
// /BinData/* entry: a 4-digit uppercase hex id with a "BIN" prefix.
func binDataStreamName(id uint16, ext string) string {
	return fmt.Sprintf("/BinData/BIN%04X.%s", id, ext)
}

func binaryDataFromDocInfo(c *cfb.Container, di *docinfo.DocInfo) map[uint16]ir.BinaryDataEntry {
	out := make(map[uint16]ir.BinaryDataEntry, len(di.BinaryData))
	for _, e := range di.BinaryData {
		if e.Kind == docinfo.BinaryDataLink {
			continue
		}
		entry := ir.BinaryDataEntry{Extension: e.Extension}
		if raw, ok := c.Stream(binDataStreamName(e.ID, e.Extension)); ok {
			entry.Data = raw
		}
		out[e.ID] = entry
	}
	return out
}

// decodeUTF16LEPreview strips a trailing NUL-terminator, if present,
// from a UTF-16LE /PrvText stream.
func decodeUTF16LEPreview(raw []byte) string {
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		u := uint16(raw[i]) | uint16(raw[i+1])<<8
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

// encodeUTF16LEPreview is the inverse of decodeUTF16LEPreview.
func encodeUTF16LEPreview(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units)*2+2)
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	return append(out, 0, 0)
}

// saveOLE serializes doc back to an OLE compound file. Password-
// protected (non-distribution) encrypted documents cannot be
// re-encrypted without the password that opened them; callers needing
// that must use SaveOLEWithPassword.
func saveOLE(doc *Document) ([]byte, error) {
	return SaveOLEWithPassword(doc, "")
}

// SaveOLEWithPassword serializes doc to an OLE compound file, supplying
// password for the AES key when the document is encrypted and not a
// distribution document (spec.md §4.C).
func SaveOLEWithPassword(doc *Document, password string) ([]byte, error) {
	di := doc.DocInfo
	if di == nil {
		di = &docinfo.DocInfo{}
	}
	irDoc := ir.FromModel(doc.Document)
	di.Properties.SectionCount = uint16(len(irDoc.Sections))
	syncBinaryDataTable(di, irDoc.BinaryData)
	syncStyles(di, irDoc.Styles)

	var bodyKey []byte
	var err error
	if doc.Header.Encrypted() {
		if doc.Header.Distribution() {
			bodyKey, err = envelope.DistributionKey(di.DistributeDocData)
		} else if password != "" {
			bodyKey = envelope.DeriveKey(password, doc.Header.Version)
		} else {
			return nil, hwperr.NewFormatError(nil, "hwpdoc: document is password-encrypted, use SaveOLEWithPassword")
		}
		if err != nil {
			return nil, err
		}
	}

	docInfoBytes := di.Encode(doc.Header.Version)
	if doc.Header.Compressed() {
		docInfoBytes, err = envelope.Deflate(docInfoBytes)
		if err != nil {
			return nil, err
		}
	}

	w := cfb.NewWriter()
	w.AddStream(streamFileHeader, EncodeFileHeader(doc.Header))
	w.AddStream(streamDocInfo, docInfoBytes)

	for i, sec := range irDoc.Sections {
		raw := body.Encode(&sec)
		raw, err = encodeStreamEnvelope(raw, bodyKey, doc.Header.Compressed())
		if err != nil {
			return nil, err
		}
		w.AddStream(sectionStreamName(bodyTextPrefix, i), raw)
	}
	for id, e := range irDoc.BinaryData {
		if e.Data == nil {
			continue
		}
		w.AddStream(binDataStreamName(id, e.Extension), e.Data)
	}
	for name, b := range doc.Scripts {
		w.AddStream("/Scripts/"+name, b)
	}
	for name, b := range doc.DocOptions {
		w.AddStream("/DocOptions/"+name, b)
	}
	if doc.PreviewText != "" {
		w.AddStream(streamPrvText, encodeUTF16LEPreview(doc.PreviewText))
	}
	if doc.PreviewImage != nil {
		w.AddStream(streamPrvImage, doc.PreviewImage)
	}

	return w.Bytes()
}

// encodeStreamEnvelope is the inverse of decodeStreamEnvelope:
// compression happens first, then encryption wraps the result.
func encodeStreamEnvelope(raw, key []byte, compressed bool) ([]byte, error) {
	out := raw
	var err error
	if compressed {
		out, err = envelope.Deflate(out)
		if err != nil {
			return nil, err
		}
	}
	if key != nil {
		out, err = envelope.EncryptStream(key, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// syncBinaryDataTable reconciles the DocInfo binary-data catalog with
// the IR's current set, adding entries for ids created since load and
// leaving pre-existing catalog entries (kind, link path) untouched.
func syncBinaryDataTable(di *docinfo.DocInfo, entries map[uint16]ir.BinaryDataEntry) {
	known := make(map[uint16]bool, len(di.BinaryData))
	for _, e := range di.BinaryData {
		known[e.ID] = true
	}
	for id, e := range entries {
		if known[id] {
			continue
		}
		di.BinaryData = append(di.BinaryData, docinfo.BinaryDataEntry{
			Kind: docinfo.BinaryDataEmbed, ID: id, Extension: e.Extension,
		})
	}
}

// syncStyles rebuilds the DocInfo style table from the IR's current
// style list. Styles added after load lose the EnglishName/NextStyleID/
// LangID fields pkg/model never carries (spec.md §4.K-style narrowing).
func syncStyles(di *docinfo.DocInfo, styles []ir.Style) {
	out := make([]docinfo.Style, len(styles))
	for i, s := range styles {
		if i < len(di.Styles) && di.Styles[i].Name == s.Name {
			out[i] = di.Styles[i]
			continue
		}
		out[i] = docinfo.Style{Name: s.Name, ParaShapeID: s.ParaShapeID, CharShapeID: s.CharShapeID}
	}
	di.Styles = out
}
