package docinfo

import "github.com/vortex/go-hwp/pkg/hwp/binio"

// DocumentProperties is the HWPTAG_DOCUMENT_PROPERTIES record: section
// count plus the document's initial auto-numbering state (spec.md §4.E
// item 1).
type DocumentProperties struct {
	SectionCount         uint16
	StartingPageNumber   uint16
	StartingFootnote     uint16
	StartingEndnote      uint16
	StartingFigureNumber uint16
	StartingTableNumber  uint16
	StartingEquationNum  uint16
	CaretPosition        CaretPosition
}

// CaretPosition records where the caret sat when the document was saved.
type CaretPosition struct {
	ListID    uint32
	ParaIndex uint32
	CharIndex uint32
}

func decodeDocumentProperties(payload []byte) (DocumentProperties, error) {
	r := binio.NewReader(payload)
	var p DocumentProperties
	var err error
	if p.SectionCount, err = r.U16(); err != nil {
		return p, err
	}
	if p.StartingPageNumber, err = r.U16(); err != nil {
		return p, err
	}
	if p.StartingFootnote, err = r.U16(); err != nil {
		return p, err
	}
	if p.StartingEndnote, err = r.U16(); err != nil {
		return p, err
	}
	if p.StartingFigureNumber, err = r.U16(); err != nil {
		return p, err
	}
	if p.StartingTableNumber, err = r.U16(); err != nil {
		return p, err
	}
	if p.StartingEquationNum, err = r.U16(); err != nil {
		return p, err
	}
	if r.Remaining() >= 12 {
		if p.CaretPosition.ListID, err = r.U32(); err != nil {
			return p, err
		}
		if p.CaretPosition.ParaIndex, err = r.U32(); err != nil {
			return p, err
		}
		if p.CaretPosition.CharIndex, err = r.U32(); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Encode writes DocumentProperties back to its record payload form.
func (p DocumentProperties) Encode() []byte {
	w := binio.NewWriter()
	w.U16(p.SectionCount)
	w.U16(p.StartingPageNumber)
	w.U16(p.StartingFootnote)
	w.U16(p.StartingEndnote)
	w.U16(p.StartingFigureNumber)
	w.U16(p.StartingTableNumber)
	w.U16(p.StartingEquationNum)
	w.U32(p.CaretPosition.ListID)
	w.U32(p.CaretPosition.ParaIndex)
	w.U32(p.CaretPosition.CharIndex)
	return w.Bytes()
}
