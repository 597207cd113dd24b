package oxml

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/vortex/go-hwp/pkg/hwperr"
)

// AnyElement is a namespace-aware generic XML element: a name bound to a
// (namespace URI, local name) pair, its attributes, and its ordered
// children (spec.md §4.J). It wraps an *etree.Element rather than
// reimplementing tree storage, mirroring the teacher's choice to build
// its typed CT_* wrappers directly atop *etree.Element.
type AnyElement struct {
	el *etree.Element
}

// Wrap adapts a parsed *etree.Element into an AnyElement.
func Wrap(el *etree.Element) AnyElement {
	return AnyElement{el: el}
}

// Parse parses an XML document and returns its root as an AnyElement.
func Parse(data []byte) (AnyElement, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return AnyElement{}, fmt.Errorf("oxml: parsing document: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return AnyElement{}, fmt.Errorf("oxml: document has no root element")
	}
	return AnyElement{el: root}, nil
}

// Serialize renders e as a standalone XML document with a UTF-8
// declaration, the form every HWPX part (header.xml, sectionN.xml, ...)
// is written in (spec.md §6.2).
func Serialize(e AnyElement) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	doc.WriteSettings.CanonicalEndTags = true
	doc.AddChild(e.el.Copy())
	return doc.WriteToBytes()
}

// IsZero reports whether e wraps no element.
func (e AnyElement) IsZero() bool { return e.el == nil }

// ClarkName returns e's fully qualified name in Clark notation,
// "{namespace-uri}local-name".
func (e AnyElement) ClarkName() string {
	if e.el.Space == "" {
		return e.el.Tag
	}
	uri := Nsmap[e.el.Space]
	return "{" + uri + "}" + e.el.Tag
}

// LocalName returns e's unqualified tag name, e.g. "p" for "hp:p".
func (e AnyElement) LocalName() string { return e.el.Tag }

// Prefix returns e's namespace prefix, e.g. "hp" for "hp:p", or "" if
// e is unprefixed.
func (e AnyElement) Prefix() string { return e.el.Space }

// Attr returns the value of a plain (unprefixed) attribute and whether it
// was present.
func (e AnyElement) Attr(name string) (string, bool) {
	a := e.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// RequireAttr returns a required attribute's value, or a MissingAttribute
// error matching spec.md §7's schema error kind.
func (e AnyElement) RequireAttr(name string) (string, error) {
	v, ok := e.Attr(name)
	if !ok {
		return "", &MissingAttributeError{Element: e.ClarkName(), Attr: name}
	}
	return v, nil
}

// Text returns e's direct character data, concatenated across CharData
// tokens (HWPML leaves never mix <hp:t> text with nested markup).
func (e AnyElement) Text() string { return e.el.Text() }

// Children returns every direct child element of e, in document order.
func (e AnyElement) Children() []AnyElement {
	kids := e.el.ChildElements()
	out := make([]AnyElement, len(kids))
	for i, k := range kids {
		out[i] = AnyElement{el: k}
	}
	return out
}

// ChildrenNamed returns e's direct children whose Clark name equals qn.
func (e AnyElement) ChildrenNamed(qn string) []AnyElement {
	var out []AnyElement
	for _, c := range e.Children() {
		if c.ClarkName() == qn {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildNamed returns e's first direct child named qn, if any.
func (e AnyElement) FirstChildNamed(qn string) (AnyElement, bool) {
	for _, c := range e.Children() {
		if c.ClarkName() == qn {
			return c, true
		}
	}
	return AnyElement{}, false
}

// MissingAttributeError reports a required attribute absent from an
// element (spec.md §7, schema error kind).
type MissingAttributeError struct {
	Element string
	Attr    string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("oxml: element %s missing required attribute %q", e.Element, e.Attr)
}

// Unwrap surfaces this as an hwperr.SchemaError so callers can use
// errors.As to catch every schema-level failure (missing attribute,
// unexpected element) through the one typed family spec.md §7 names,
// without changing this error's own message or field shape.
func (e *MissingAttributeError) Unwrap() error {
	return hwperr.NewSchemaError([]string{e.Element}, "missing required attribute %q", e.Attr)
}

// UnexpectedElementError reports an element found where a matcher expected
// a different name, or none at all (spec.md §7).
type UnexpectedElementError struct {
	Parent   string
	Expected string
	Got      string
}

func (e *UnexpectedElementError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("oxml: %s: expected child %s, found none", e.Parent, e.Expected)
	}
	return fmt.Sprintf("oxml: %s: expected child %s, found %s", e.Parent, e.Expected, e.Got)
}

// Unwrap surfaces this as an hwperr.SchemaError, the same way
// MissingAttributeError does.
func (e *UnexpectedElementError) Unwrap() error {
	if e.Got == "" {
		return hwperr.NewSchemaError([]string{e.Parent}, "expected child %s, found none", e.Expected)
	}
	return hwperr.NewSchemaError([]string{e.Parent}, "expected child %s, found %s", e.Expected, e.Got)
}
