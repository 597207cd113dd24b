package docinfo

import (
	"github.com/vortex/go-hwp/pkg/hwp/binio"
	"github.com/vortex/go-hwp/pkg/primitive"
)

// IdMappings is the HWPTAG_ID_MAPPINGS record: a count for every table
// DocInfo goes on to enumerate, read in a fixed order (spec.md §4.E
// item 2). The 5.0.2.1+ trailing counts are read when the payload has
// enough remaining bytes, per the same "detect by remaining bytes"
// convention CharShape uses.
type IdMappings struct {
	BinaryDataCount  int
	FaceNameCount    [7]int
	BorderFillCount  int
	CharShapeCount   int
	TabDefCount      int
	NumberingCount   int
	BulletCount      int
	ParaShapeCount   int
	StyleCount       int

	MemoShapeCount      int
	TrackChangeCount    int
	TrackChangeAuthorCount int
	hasExtendedCounts   bool
}

func decodeIdMappings(payload []byte) (IdMappings, error) {
	r := binio.NewReader(payload)
	var m IdMappings
	readU32 := func() (int, error) {
		v, err := r.U32()
		return int(v), err
	}
	var err error
	if m.BinaryDataCount, err = readU32(); err != nil {
		return m, err
	}
	for i := range m.FaceNameCount {
		if m.FaceNameCount[i], err = readU32(); err != nil {
			return m, err
		}
	}
	if m.BorderFillCount, err = readU32(); err != nil {
		return m, err
	}
	if m.CharShapeCount, err = readU32(); err != nil {
		return m, err
	}
	if m.TabDefCount, err = readU32(); err != nil {
		return m, err
	}
	if m.NumberingCount, err = readU32(); err != nil {
		return m, err
	}
	if m.BulletCount, err = readU32(); err != nil {
		return m, err
	}
	if m.ParaShapeCount, err = readU32(); err != nil {
		return m, err
	}
	if m.StyleCount, err = readU32(); err != nil {
		return m, err
	}
	if r.Remaining() >= 12 {
		m.hasExtendedCounts = true
		if m.MemoShapeCount, err = readU32(); err != nil {
			return m, err
		}
		if m.TrackChangeCount, err = readU32(); err != nil {
			return m, err
		}
		if m.TrackChangeAuthorCount, err = readU32(); err != nil {
			return m, err
		}
	}
	return m, nil
}

// Encode writes IdMappings back to its record payload form. Extended
// counts are emitted whenever the source had them (version.AtLeast
// V5_0_2_1 at the call site decides whether to request that).
func (m IdMappings) Encode(version primitive.Version) []byte {
	w := binio.NewWriter()
	w.U32(uint32(m.BinaryDataCount))
	for _, c := range m.FaceNameCount {
		w.U32(uint32(c))
	}
	w.U32(uint32(m.BorderFillCount))
	w.U32(uint32(m.CharShapeCount))
	w.U32(uint32(m.TabDefCount))
	w.U32(uint32(m.NumberingCount))
	w.U32(uint32(m.BulletCount))
	w.U32(uint32(m.ParaShapeCount))
	w.U32(uint32(m.StyleCount))
	if m.hasExtendedCounts || version.AtLeast(primitive.V5_0_2_1) {
		w.U32(uint32(m.MemoShapeCount))
		w.U32(uint32(m.TrackChangeCount))
		w.U32(uint32(m.TrackChangeAuthorCount))
	}
	return w.Bytes()
}
