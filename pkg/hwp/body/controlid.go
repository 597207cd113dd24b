package body

import "github.com/vortex/go-hwp/pkg/ir"

// ctrlID is the 4-byte FOURCC every ControlHeader record opens with,
// identifying what kind of control follows (grounded on
// original_source/crates/hwp/src/body/control.rs's ControlId constants).
type ctrlID uint32

func fourCC(a, b, c, d byte) ctrlID {
	return ctrlID(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

var (
	idTable        = fourCC('t', 'b', 'l', ' ')
	idLine         = fourCC('$', 'l', 'i', 'n')
	idRectangle    = fourCC('$', 'r', 'e', 'c')
	idEllipse      = fourCC('$', 'e', 'l', 'l')
	idArc          = fourCC('$', 'a', 'r', 'c')
	idPolygon      = fourCC('$', 'p', 'o', 'l')
	idCurve        = fourCC('$', 'c', 'u', 'r')
	idEquation     = fourCC('e', 'q', 'e', 'd')
	idPicture      = fourCC('$', 'p', 'i', 'c')
	idOle          = fourCC('$', 'o', 'l', 'e')
	idContainer    = fourCC('$', 'c', 'o', 'n')
	idTextArt      = fourCC('$', 'a', 'r', 't')
	idHeader       = fourCC('h', 'e', 'a', 'd')
	idFooter       = fourCC('f', 'o', 'o', 't')
	idFootnote     = fourCC('f', 'n', ' ', ' ')
	idEndnote      = fourCC('e', 'n', ' ', ' ')
	idAutoNumber   = fourCC('a', 't', 'n', 'o')
	idNewNumber    = fourCC('n', 'w', 'n', 'o')
	idPageHide     = fourCC('p', 'g', 'h', 'd')
	idPageOddEven  = fourCC('p', 'g', 'c', 't')
	idIndexMark    = fourCC('i', 'd', 'x', 'm')
	idBookmark     = fourCC('b', 'o', 'k', 'm')
	idTextBox      = fourCC('t', 'b', 'x', 't')
	idHiddenComm   = fourCC('t', 'c', 'm', 't')
	idFormObject   = fourCC('f', 'o', 'r', 'm')
	idChart        = fourCC('$', 'c', 'h', 'r')
	idVideo        = fourCC('$', 'v', 'i', 'd')
	idConnectLine  = fourCC('$', 'c', 'n', 'l')
)

// classify maps a ControlHeader's FOURCC to the IR control kind the
// control builder should produce. Field FOURCCs (e.g. %dat, %pat) are
// detected by their leading '%' byte and all classify as hyperlink-like
// field controls: they classify as ControlHyperlink and receive the
// same HyperlinkPayload from their ControlData rather than a dedicated
// kind (spec.md's Control sum type has no separate Field variant).
func classify(id ctrlID) ir.ControlKind {
	if byte(id) == '%' {
		return ir.ControlHyperlink
	}
	switch id {
	case idTable:
		return ir.ControlTable
	case idLine, idRectangle, idEllipse, idArc, idPolygon, idCurve, idContainer:
		return ir.ControlShape
	case idEquation:
		return ir.ControlEquation
	case idPicture:
		return ir.ControlPicture
	case idOle:
		return ir.ControlOle
	case idTextArt:
		return ir.ControlTextArt
	case idHeader, idFooter, idTextBox:
		return ir.ControlTextBox
	case idFootnote:
		return ir.ControlFootnote
	case idEndnote:
		return ir.ControlEndnote
	case idAutoNumber:
		return ir.ControlAutoNumber
	case idNewNumber:
		return ir.ControlNewNumber
	case idIndexMark:
		return ir.ControlIndexMark
	case idBookmark:
		return ir.ControlBookmark
	case idHiddenComm:
		return ir.ControlHiddenComment
	case idFormObject:
		return ir.ControlFormObject
	case idChart:
		return ir.ControlChart
	case idVideo:
		return ir.ControlVideo
	case idConnectLine:
		return ir.ControlConnectLine
	case idPageHide, idPageOddEven:
		return ir.ControlUnknown
	default:
		return ir.ControlUnknown
	}
}

// isListHeaderContainer reports whether a control of this kind owns
// flowable child paragraphs reached through a ListHeader/TableCell-style
// nested context, rather than a typed sub-record (shape/picture/equation).
func isListHeaderContainer(k ir.ControlKind) bool {
	switch k {
	case ir.ControlTable, ir.ControlTextBox, ir.ControlFootnote, ir.ControlEndnote, ir.ControlHiddenComment, ir.ControlFormObject:
		return true
	default:
		return false
	}
}
