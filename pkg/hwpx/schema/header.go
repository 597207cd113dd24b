package schema

import (
	"github.com/vortex/go-hwp/pkg/hwpx/oxml"
	"github.com/vortex/go-hwp/pkg/primitive"
)

var (
	qnFontfaces = oxml.Qn("hh:fontfaces")
	qnFontface  = oxml.Qn("hh:fontface")
	qnFont      = oxml.Qn("hh:font")
)

// Header is header.xml's decoded content: the DocInfo-equivalent font
// table (spec.md §6.2, "Contents/header.xml (DocInfo equivalent)"). It
// decodes into the same primitive.FaceName the binary DocInfo codec
// uses (SPEC_FULL.md §2's FaceName/PANOSE unification), but is not yet
// threaded through ir.Document — see DESIGN.md's known-gap note.
type Header struct {
	FaceNames []primitive.FaceName
}

// DecodeHeader parses hh:head's hh:fontfaces table.
func DecodeHeader(root oxml.AnyElement) (*Header, error) {
	h := &Header{}
	for _, facesEl := range root.ChildrenNamed(qnFontfaces) {
		for _, faceEl := range facesEl.ChildrenNamed(qnFontface) {
			fn, err := decodeFaceName(faceEl)
			if err != nil {
				return nil, err
			}
			h.FaceNames = append(h.FaceNames, fn)
		}
	}
	return h, nil
}

func decodeFaceName(el oxml.AnyElement) (primitive.FaceName, error) {
	name, err := el.RequireAttr("face")
	if err != nil {
		return primitive.FaceName{}, err
	}
	fn := primitive.FaceName{Name: name}
	if fontEl, ok := el.FirstChildNamed(qnFont); ok {
		if face, ok := fontEl.Attr("face"); ok {
			fn.Alternate = &primitive.AlternateFont{Name: face}
		}
	}
	return fn, nil
}
