// Package model implements the arena-based document graph: Section,
// Paragraph, Run, Control, Table/Row/Cell entities addressed by stable
// ids rather than pointers (spec.md §3.1, §4.G). There is no teacher or
// pack analogue for an arena graph (go-docx's Paragraph/Run are XML
// element proxies, not id-addressed arena entries), so this package is
// new code; it keeps the teacher's accessor-method and doc-comment
// conventions (see pkg/docx/paragraph.go) rather than its wire model.
package model

// Id is the common shape of every arena-addressed identifier: a dense
// index plus a generation counter, so a removed-then-reused slot yields
// a distinct id (spec.md §3.2 invariant 2).
type Id struct {
	index      uint32
	generation uint32
}

// SectionId, ParagraphId, RunId, ControlId, RowId and CellId are
// distinct id types so values from one arena can never be passed to
// another by mistake.
type (
	SectionId   struct{ Id }
	ParagraphId struct{ Id }
	RunId       struct{ Id }
	ControlId   struct{ Id }
	RowId       struct{ Id }
	CellId      struct{ Id }
)

type slot[V any] struct {
	value      V
	generation uint32
	occupied   bool
}

// Arena is a growable, generation-checked dense index -> value mapping.
// Removal does not renumber (spec.md §4.G): freed slots are recycled by
// Insert but every id carries the generation it was created with, so a
// stale id never resolves to a reused slot's new value.
type Arena[V any] struct {
	slots []slot[V]
	free  []uint32
}

// NewArena returns an empty arena.
func NewArena[V any]() *Arena[V] {
	return &Arena[V]{}
}

// Insert stores value and returns a fresh id for it.
func (a *Arena[V]) Insert(value V) Id {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].value = value
		a.slots[idx].occupied = true
		a.slots[idx].generation++
		return Id{index: idx, generation: a.slots[idx].generation}
	}
	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot[V]{value: value, occupied: true})
	return Id{index: idx}
}

// Get returns the value for id and whether it is still live.
func (a *Arena[V]) Get(id Id) (V, bool) {
	var zero V
	if int(id.index) >= len(a.slots) {
		return zero, false
	}
	s := &a.slots[id.index]
	if !s.occupied || s.generation != id.generation {
		return zero, false
	}
	return s.value, true
}

// GetMut returns a pointer to the live value for id, or nil.
func (a *Arena[V]) GetMut(id Id) *V {
	if int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if !s.occupied || s.generation != id.generation {
		return nil
	}
	return &s.value
}

// Remove frees id's slot. Removing an already-free or stale id is a no-op.
func (a *Arena[V]) Remove(id Id) {
	if int(id.index) >= len(a.slots) {
		return
	}
	s := &a.slots[id.index]
	if !s.occupied || s.generation != id.generation {
		return
	}
	var zero V
	s.value = zero
	s.occupied = false
	a.free = append(a.free, id.index)
}

// Len reports the number of live (non-removed) entries.
func (a *Arena[V]) Len() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].occupied {
			n++
		}
	}
	return n
}
