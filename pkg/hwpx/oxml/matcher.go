package oxml

// This file implements the four matcher kinds spec.md §4.J names for
// building typed entities out of an AnyElement's children: one required
// child, one optional child, zero-or-more repeated children, and
// one-or-more repeated children. Each consumes children left to right
// through a shared cursor, the way the teacher's generated decoders walk
// *etree.Element.ChildElements() by position. pkg/hwpx/schema's decoders
// do not call them; they look children up with ChildrenNamed and
// FirstChildNamed.

// One consumes exactly one required child named qn from parent, advancing
// the cursor past it. It fails with UnexpectedElementError if the next
// unconsumed child is not qn, or if there are no children left.
func One(parent AnyElement, cursor *int, qn string) (AnyElement, error) {
	kids := parent.Children()
	if *cursor >= len(kids) {
		return AnyElement{}, &UnexpectedElementError{Parent: parent.ClarkName(), Expected: qn}
	}
	got := kids[*cursor]
	if got.ClarkName() != qn {
		return AnyElement{}, &UnexpectedElementError{Parent: parent.ClarkName(), Expected: qn, Got: got.ClarkName()}
	}
	*cursor++
	return got, nil
}

// Opt consumes one optional child named qn if present at the cursor,
// advancing past it; otherwise it leaves the cursor untouched and returns
// ok=false.
func Opt(parent AnyElement, cursor *int, qn string) (el AnyElement, ok bool) {
	kids := parent.Children()
	if *cursor >= len(kids) || kids[*cursor].ClarkName() != qn {
		return AnyElement{}, false
	}
	el = kids[*cursor]
	*cursor++
	return el, true
}

// Many consumes every consecutive child named qn starting at the cursor,
// zero or more, advancing past all of them.
func Many(parent AnyElement, cursor *int, qn string) []AnyElement {
	var out []AnyElement
	kids := parent.Children()
	for *cursor < len(kids) && kids[*cursor].ClarkName() == qn {
		out = append(out, kids[*cursor])
		*cursor++
	}
	return out
}

// Nonempty consumes every consecutive child named qn starting at the
// cursor like Many, but requires at least one match.
func Nonempty(parent AnyElement, cursor *int, qn string) ([]AnyElement, error) {
	out := Many(parent, cursor, qn)
	if len(out) == 0 {
		return nil, &UnexpectedElementError{Parent: parent.ClarkName(), Expected: qn}
	}
	return out, nil
}
