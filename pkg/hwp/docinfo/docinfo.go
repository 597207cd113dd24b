// Package docinfo decodes and encodes the HWP 5.x /DocInfo stream: a
// fixed sequence of record tables (document properties, id-mapping
// counts, binary-data catalog, font/border/char/para shape tables) that
// every other part of a binary document references by index (spec.md
// §4.E). There is no direct teacher analogue (DOCX keeps this
// information as separate XML parts under word/), so the decode loop is
// new code shaped like the teacher's single-pass, error-wrapping
// opc.PackageReader loop, built on this module's own record iterator.
package docinfo

import (
	"github.com/vortex/go-hwp/pkg/hwp/binio"
	"github.com/vortex/go-hwp/pkg/hwp/record"
	"github.com/vortex/go-hwp/pkg/hwperr"
	"github.com/vortex/go-hwp/pkg/primitive"
)

// DocInfo is the fully decoded /DocInfo stream.
type DocInfo struct {
	Properties  DocumentProperties
	IdMappings  IdMappings
	BinaryData  []BinaryDataEntry
	FaceNames   [7][]FaceName // indexed by Language
	BorderFills []BorderFill
	CharShapes  []CharShape
	TabDefs     []TabDefinition
	Numberings  []Numbering
	Bullets     []Bullet
	ParaShapes  []ParaShape
	Styles      []Style

	// DistributeDocData carries the embedded AES key payload for
	// distribution documents, present only when the file-header
	// distribution bit is set (spec.md §4.C).
	DistributeDocData []byte
}

// Language indexes the seven per-language font/id-mapping tables
// (spec.md §4.E item 2): Korean, English, Chinese(Hanja), Japanese,
// Other, Symbol, User.
type Language int

const (
	LangKorean Language = iota
	LangEnglish
	LangHanja
	LangJapanese
	LangOther
	LangSymbol
	LangUser
)

// Decode parses a /DocInfo stream, already inflated/decrypted by the
// caller via pkg/hwp/envelope, into its constituent tables in the
// fixed order spec.md §4.E mandates.
func Decode(data []byte, version primitive.Version) (*DocInfo, error) {
	it := record.NewIterator(data)
	di := &DocInfo{}

	hasCurrent := it.Next()

	if hasCurrent && it.Record().Header.Tag == record.TagDocumentProperties {
		props, err := decodeDocumentProperties(it.Record().Payload)
		if err != nil {
			return nil, hwperr.NewFormatError(err, "docinfo: DocumentProperties")
		}
		di.Properties = props
		hasCurrent = it.Next()
	}
	if hasCurrent && it.Record().Header.Tag == record.TagIdMappings {
		mappings, err := decodeIdMappings(it.Record().Payload)
		if err != nil {
			return nil, hwperr.NewFormatError(err, "docinfo: IdMappings")
		}
		di.IdMappings = mappings
		hasCurrent = it.Next()
	}

	consumeCount := func(tag record.TagId, n int, decode func([]byte) error) error {
		for i := 0; i < n && hasCurrent; i++ {
			if it.Err() != nil {
				return it.Err()
			}
			cur := it.Record()
			if cur.Header.Tag != tag {
				break
			}
			if err := decode(cur.Payload); err != nil {
				return err
			}
			hasCurrent = it.Next()
		}
		return nil
	}

	binCount := di.IdMappings.BinaryDataCount
	if err := consumeCount(record.TagBinaryData, binCount, func(p []byte) error {
		entry, err := decodeBinaryData(p)
		if err != nil {
			return err
		}
		di.BinaryData = append(di.BinaryData, entry)
		return nil
	}); err != nil {
		return nil, hwperr.NewFormatError(err, "docinfo: BinaryData")
	}

	for lang := Language(0); lang < 7; lang++ {
		n := di.IdMappings.FaceNameCount[lang]
		if err := consumeCount(record.TagFaceName, n, func(p []byte) error {
			fn, err := decodeFaceName(p)
			if err != nil {
				return err
			}
			di.FaceNames[lang] = append(di.FaceNames[lang], fn)
			return nil
		}); err != nil {
			return nil, hwperr.NewFormatError(err, "docinfo: FaceName")
		}
	}

	if err := consumeCount(record.TagBorderFill, di.IdMappings.BorderFillCount, func(p []byte) error {
		bf, err := decodeBorderFill(p)
		if err != nil {
			return err
		}
		di.BorderFills = append(di.BorderFills, bf)
		return nil
	}); err != nil {
		return nil, hwperr.NewFormatError(err, "docinfo: BorderFill")
	}

	if err := consumeCount(record.TagCharShape, di.IdMappings.CharShapeCount, func(p []byte) error {
		cs, err := decodeCharShape(p, version)
		if err != nil {
			return err
		}
		di.CharShapes = append(di.CharShapes, cs)
		return nil
	}); err != nil {
		return nil, hwperr.NewFormatError(err, "docinfo: CharShape")
	}

	if err := consumeCount(record.TagTabDefinition, di.IdMappings.TabDefCount, func(p []byte) error {
		td, err := decodeTabDefinition(p)
		if err != nil {
			return err
		}
		di.TabDefs = append(di.TabDefs, td)
		return nil
	}); err != nil {
		return nil, hwperr.NewFormatError(err, "docinfo: TabDefinition")
	}

	if err := consumeCount(record.TagNumbering, di.IdMappings.NumberingCount, func(p []byte) error {
		n, err := decodeNumbering(p)
		if err != nil {
			return err
		}
		di.Numberings = append(di.Numberings, n)
		return nil
	}); err != nil {
		return nil, hwperr.NewFormatError(err, "docinfo: Numbering")
	}

	if err := consumeCount(record.TagBullet, di.IdMappings.BulletCount, func(p []byte) error {
		b, err := decodeBullet(p)
		if err != nil {
			return err
		}
		di.Bullets = append(di.Bullets, b)
		return nil
	}); err != nil {
		return nil, hwperr.NewFormatError(err, "docinfo: Bullet")
	}

	if err := consumeCount(record.TagParaShape, di.IdMappings.ParaShapeCount, func(p []byte) error {
		ps, err := decodeParaShape(p)
		if err != nil {
			return err
		}
		di.ParaShapes = append(di.ParaShapes, ps)
		return nil
	}); err != nil {
		return nil, hwperr.NewFormatError(err, "docinfo: ParaShape")
	}

	if err := consumeCount(record.TagStyle, di.IdMappings.StyleCount, func(p []byte) error {
		st, err := decodeStyle(p)
		if err != nil {
			return err
		}
		di.Styles = append(di.Styles, st)
		return nil
	}); err != nil {
		return nil, hwperr.NewFormatError(err, "docinfo: Style")
	}

	// Remaining records (DistributeDocData, ForbiddenChar,
	// CompatibleDocument, LayoutCompatibility, memo/track-change
	// tables) are scanned for the one this façade exposes and
	// otherwise ignored; unconsumed bytes never affect round-trip
	// since Encode regenerates the stream from di's fields, not from
	// a retained tail.
	for hasCurrent {
		cur := it.Record()
		if cur.Header.Tag == record.TagDistributeDocData {
			di.DistributeDocData = append([]byte(nil), cur.Payload...)
		}
		hasCurrent = it.Next()
	}

	return di, nil
}

// Encode serializes DocInfo back to a /DocInfo record stream, ready for
// the caller to compress/encrypt via pkg/hwp/envelope.
func (di *DocInfo) Encode(version primitive.Version) []byte {
	w := binio.NewWriter()

	writeRecord := func(tag record.TagId, payload []byte) {
		record.EncodeHeader(w, record.Header{Tag: tag, Level: 0, Size: uint32(len(payload))})
		w.Raw(payload)
	}

	writeRecord(record.TagDocumentProperties, di.Properties.Encode())
	writeRecord(record.TagIdMappings, di.IdMappings.Encode(version))

	for _, e := range di.BinaryData {
		writeRecord(record.TagBinaryData, e.Encode())
	}
	for lang := range di.FaceNames {
		for _, fn := range di.FaceNames[lang] {
			writeRecord(record.TagFaceName, EncodeFaceName(fn))
		}
	}
	for _, bf := range di.BorderFills {
		writeRecord(record.TagBorderFill, bf.Encode())
	}
	for _, cs := range di.CharShapes {
		writeRecord(record.TagCharShape, cs.Encode())
	}
	for _, td := range di.TabDefs {
		writeRecord(record.TagTabDefinition, td.Encode())
	}
	for _, n := range di.Numberings {
		writeRecord(record.TagNumbering, n.Encode())
	}
	for _, b := range di.Bullets {
		writeRecord(record.TagBullet, b.Encode())
	}
	for _, ps := range di.ParaShapes {
		writeRecord(record.TagParaShape, ps.Encode())
	}
	for _, st := range di.Styles {
		writeRecord(record.TagStyle, st.Encode())
	}
	if len(di.DistributeDocData) > 0 {
		writeRecord(record.TagDistributeDocData, di.DistributeDocData)
	}

	return w.Bytes()
}
