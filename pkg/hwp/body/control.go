package body

import (
	"github.com/vortex/go-hwp/pkg/hwp/binio"
	"github.com/vortex/go-hwp/pkg/ir"
)

// queuedSlot is one outstanding control-queue entry: a RunContent
// placeholder waiting for the next finalized control to bind to
// (spec.md §4.F control-queue).
type queuedSlot struct {
	run *ir.Run
	idx int
}

// ctrlBuilder accumulates one control's ControlHeader, typed
// sub-records (ShapeComponent*, Equation, ChartData, ...) and
// ControlData parameter bag until it is finalized.
type ctrlBuilder struct {
	id      ctrlID
	kind    ir.ControlKind
	ctrl    ir.Control
	rawData []byte // ControlData payload, interpreted per kind at finalize

	// table accumulates a Table control's cells as its TableCell
	// contexts complete, keyed by row index; finalize() sorts them
	// into ctrl.Table.Rows.
	table map[int]*ir.Row
}

// decodeControlHeader reads the 4-byte FOURCC that opens a
// ControlHeader record and classifies it (spec.md §4.F).
func decodeControlHeader(payload []byte) (*ctrlBuilder, error) {
	r := binio.NewReader(payload)
	raw, err := r.U32()
	if err != nil {
		return nil, err
	}
	id := ctrlID(raw)
	kind := classify(id)
	cb := &ctrlBuilder{id: id, kind: kind, ctrl: ir.Control{Kind: kind}}
	if kind == ir.ControlUnknown {
		cb.ctrl.Unknown = ir.UnknownControl{Tag: uint16(raw), Payload: append([]byte(nil), payload[4:]...)}
	}
	return cb, nil
}

func (cb *ctrlBuilder) encodeControlHeader() []byte {
	w := binio.NewWriter()
	w.U32(uint32(cb.id))
	if cb.kind == ir.ControlUnknown {
		w.Raw(cb.ctrl.Unknown.Payload)
	}
	return w.Bytes()
}

// applyControlData feeds a ControlData record's parameter bag into the
// control's typed payload (spec.md §4.F: "field names, hyperlink
// target, etc").
func (cb *ctrlBuilder) applyControlData(payload []byte) {
	cb.rawData = append([]byte(nil), payload...)
	switch cb.kind {
	case ir.ControlHyperlink:
		target, _ := binio.NewReader(payload).HwpString()
		cb.ctrl.Payload = &ir.HyperlinkPayload{Target: target}
	}
}

// contextKindFor decides which context-stack frame a ListHeader
// following this control should push (spec.md §4.F).
func (cb *ctrlBuilder) contextKindFor() contextKind {
	switch cb.kind {
	case ir.ControlTable:
		return contextTableCell
	case ir.ControlFootnote, ir.ControlEndnote:
		return contextFootnoteEndnote
	case ir.ControlTextBox:
		if cb.id == idHeader || cb.id == idFooter {
			return contextHeaderFooter
		}
		return contextTextBox
	default:
		return contextTextBox
	}
}

// listHeaderCell is the cell-grid placement a ListHeader for a table
// context carries, decoded from the bytes immediately following the
// paragraph count (the "TableCell binary" spec.md §4.F mentions).
type listHeaderCell struct {
	row, col, rowSpan, colSpan int
	width, height              int32
	padding                    [4]int16
	borderFillID               uint32
	totalRows, totalCols       int
}

// decodeListHeader parses a ListHeader record's payload: a u16
// paragraph count, a reserved u16, and — only when the owning control
// is a table — a fixed-width cell-placement block.
func decodeListHeader(payload []byte, isTable bool) (expected uint16, cell *listHeaderCell, err error) {
	r := binio.NewReader(payload)
	expected, err = r.U16()
	if err != nil {
		return 0, nil, err
	}
	if _, err = r.U16(); err != nil { // reserved
		return 0, nil, err
	}
	if !isTable {
		return expected, nil, nil
	}
	c := &listHeaderCell{}
	row, err := r.U16()
	if err != nil {
		return 0, nil, err
	}
	col, err := r.U16()
	if err != nil {
		return 0, nil, err
	}
	rowSpan, err := r.U16()
	if err != nil {
		return 0, nil, err
	}
	colSpan, err := r.U16()
	if err != nil {
		return 0, nil, err
	}
	width, err := r.I32()
	if err != nil {
		return 0, nil, err
	}
	height, err := r.I32()
	if err != nil {
		return 0, nil, err
	}
	for i := range c.padding {
		v, err := r.I16()
		if err != nil {
			return 0, nil, err
		}
		c.padding[i] = v
	}
	borderFillID, err := r.U32()
	if err != nil {
		return 0, nil, err
	}
	totalRows, err := r.U16()
	if err != nil {
		return 0, nil, err
	}
	totalCols, err := r.U16()
	if err != nil {
		return 0, nil, err
	}
	c.row, c.col, c.rowSpan, c.colSpan = int(row), int(col), int(rowSpan), int(colSpan)
	c.width, c.height = width, height
	c.borderFillID = borderFillID
	c.totalRows, c.totalCols = int(totalRows), int(totalCols)
	return expected, c, nil
}

func encodeListHeader(expected uint16, cell *listHeaderCell) []byte {
	w := binio.NewWriter()
	w.U16(expected)
	w.U16(0)
	if cell == nil {
		return w.Bytes()
	}
	w.U16(uint16(cell.row))
	w.U16(uint16(cell.col))
	w.U16(uint16(cell.rowSpan))
	w.U16(uint16(cell.colSpan))
	w.I32(cell.width)
	w.I32(cell.height)
	for _, p := range cell.padding {
		w.I16(p)
	}
	w.U32(cell.borderFillID)
	w.U16(uint16(cell.totalRows))
	w.U16(uint16(cell.totalCols))
	return w.Bytes()
}

// finalize builds the completed IR control. Table/TextBox/Footnote/
// Endnote/HiddenComment/FormObject controls have already had their
// Children or Table populated by the context-completion rule before
// this is called.
func (cb *ctrlBuilder) finalize() *ir.Control {
	c := cb.ctrl
	if cb.table != nil {
		if c.Table == nil {
			c.Table = &ir.Table{}
		}
		maxRow := -1
		for r := range cb.table {
			if r > maxRow {
				maxRow = r
			}
		}
		c.Table.Rows = make([]ir.Row, maxRow+1)
		for r, row := range cb.table {
			c.Table.Rows[r] = *row
		}
	}
	return &c
}

// addCell places a completed table cell into the control's in-progress
// row/cell grid (spec.md §4.F context-completion rule).
func (cb *ctrlBuilder) addCell(cell ir.Cell) {
	if cb.table == nil {
		cb.table = make(map[int]*ir.Row)
	}
	row, ok := cb.table[cell.Row]
	if !ok {
		row = &ir.Row{}
		cb.table[cell.Row] = row
	}
	row.Cells = append(row.Cells, cell)
}
