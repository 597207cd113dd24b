package docinfo

import "github.com/vortex/go-hwp/pkg/hwp/binio"

// BinaryDataKind classifies a DocInfo binary-data table entry.
type BinaryDataKind int

const (
	BinaryDataLink BinaryDataKind = iota
	BinaryDataEmbed
	BinaryDataStorage
)

// BinaryDataEntry describes one /BinData/* payload or an external link
// (spec.md §4.E item 3).
type BinaryDataEntry struct {
	Kind      BinaryDataKind
	ID        uint16
	Extension string // set for Embed/Storage entries, addressed as BinData{ID}.{Extension}
	LinkPath  string // set for Link entries
	Compressed bool
}

const (
	binDataFlagKindMask  = 0x0003
	binDataFlagCompress  = 0x0010
)

func decodeBinaryData(payload []byte) (BinaryDataEntry, error) {
	r := binio.NewReader(payload)
	var e BinaryDataEntry
	flags, err := r.U16()
	if err != nil {
		return e, err
	}
	e.Kind = BinaryDataKind(flags & binDataFlagKindMask)
	e.Compressed = flags&binDataFlagCompress != 0

	if e.Kind == BinaryDataLink {
		path, err := r.HwpString()
		if err != nil {
			return e, err
		}
		e.LinkPath = path
		return e, nil
	}

	id, err := r.U16()
	if err != nil {
		return e, err
	}
	e.ID = id
	ext, err := r.HwpString()
	if err != nil {
		return e, err
	}
	e.Extension = ext
	return e, nil
}

// Encode writes a BinaryDataEntry back to its record payload form.
func (e BinaryDataEntry) Encode() []byte {
	w := binio.NewWriter()
	flags := uint16(e.Kind)
	if e.Compressed {
		flags |= binDataFlagCompress
	}
	w.U16(flags)
	if e.Kind == BinaryDataLink {
		w.HwpString(e.LinkPath)
		return w.Bytes()
	}
	w.U16(e.ID)
	w.HwpString(e.Extension)
	return w.Bytes()
}
