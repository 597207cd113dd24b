package primitive

// Panose is the 10-dimensional glyph-classification system used by
// FaceName records to pick a substitute font when the original is
// unavailable. Each field is one wire byte; unrecognized values are
// preserved verbatim (the PANOSE value space has no "unknown" tail —
// every byte value is a legal, if obscure, classification).
//
// Field order matches the PANOSE 1.0 specification and
// original_source/crates/primitive/src/panose.rs.
type Panose struct {
	FamilyKind     uint8
	SerifStyle     uint8
	Weight         uint8
	Proportion     uint8
	Contrast       uint8
	StrokeVariance uint8
	ArmStyle       uint8
	LetterForm     uint8
	Midline        uint8
	XHeight        uint8
}

// Bytes returns the 10-byte wire representation.
func (p Panose) Bytes() [10]byte {
	return [10]byte{
		p.FamilyKind, p.SerifStyle, p.Weight, p.Proportion, p.Contrast,
		p.StrokeVariance, p.ArmStyle, p.LetterForm, p.Midline, p.XHeight,
	}
}

// PanoseFromBytes decodes a 10-byte PANOSE block.
func PanoseFromBytes(b [10]byte) Panose {
	return Panose{
		FamilyKind:     b[0],
		SerifStyle:     b[1],
		Weight:         b[2],
		Proportion:     b[3],
		Contrast:       b[4],
		StrokeVariance: b[5],
		ArmStyle:       b[6],
		LetterForm:     b[7],
		Midline:        b[8],
		XHeight:        b[9],
	}
}
