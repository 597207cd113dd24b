package docinfo

import (
	"github.com/vortex/go-hwp/pkg/hwp/binio"
	"github.com/vortex/go-hwp/pkg/primitive"
)

const (
	faceNameFlagHasAltFont     = 0x01
	faceNameFlagHasPanose      = 0x02
	faceNameFlagHasDefaultFont = 0x04
)

// FaceName is the binary HWPTAG_FACE_NAME record shape (spec.md §4.E
// item 4), decoded into the container-agnostic primitive.FaceName type
// shared with the HWPX header.xml font schema (pkg/hwpx/schema).
type FaceName = primitive.FaceName

func decodeFaceName(payload []byte) (FaceName, error) {
	r := binio.NewReader(payload)
	var fn FaceName

	flags, err := r.U8()
	if err != nil {
		return fn, err
	}
	name, err := r.HwpString()
	if err != nil {
		return fn, err
	}
	fn.Name = name

	if flags&faceNameFlagHasAltFont != 0 {
		kind, err := r.U8()
		if err != nil {
			return fn, err
		}
		altName, err := r.HwpString()
		if err != nil {
			return fn, err
		}
		fn.Alternate = &primitive.AlternateFont{Kind: kind, Name: altName}
	}

	if flags&faceNameFlagHasPanose != 0 {
		raw, err := r.Bytes(10)
		if err != nil {
			return fn, err
		}
		var arr [10]byte
		copy(arr[:], raw)
		p := primitive.PanoseFromBytes(arr)
		fn.Panose = &p
	}

	if flags&faceNameFlagHasDefaultFont != 0 {
		def, err := r.HwpString()
		if err != nil {
			return fn, err
		}
		fn.DefaultFont = def
	}

	return fn, nil
}

// Encode writes FaceName back to its record payload form.
func EncodeFaceName(fn FaceName) []byte {
	w := binio.NewWriter()
	var flags uint8
	if fn.Alternate != nil {
		flags |= faceNameFlagHasAltFont
	}
	if fn.Panose != nil {
		flags |= faceNameFlagHasPanose
	}
	if fn.DefaultFont != "" {
		flags |= faceNameFlagHasDefaultFont
	}
	w.U8(flags)
	w.HwpString(fn.Name)
	if fn.Alternate != nil {
		w.U8(fn.Alternate.Kind)
		w.HwpString(fn.Alternate.Name)
	}
	if fn.Panose != nil {
		b := fn.Panose.Bytes()
		w.Raw(b[:])
	}
	if fn.DefaultFont != "" {
		w.HwpString(fn.DefaultFont)
	}
	return w.Bytes()
}
