package primitive

// AlternateFont is a fallback font substituted when a FaceName's font is
// unavailable on the rendering system.
type AlternateFont struct {
	Kind uint8 // 0 = unknown, 1 = TrueType, 2 = HFT
	Name string
}

// FaceName is a font-face record: a font name plus optional
// alternate-font, PANOSE, and default-substitute-font tails. It is the
// shared shape both the binary DocInfo HWPTAG_FACE_NAME record and the
// HWPX header.xml hh:fontface element decode into, so a document's font
// table is identical regardless of which container format produced it.
type FaceName struct {
	Name        string
	Alternate   *AlternateFont
	Panose      *Panose
	DefaultFont string
}
