// Package formcontrol is a typed sub-schema for HWPX FormObject controls
// (spec.md §3.1's ControlFormObject): Button (shared by btn, checkBtn
// and radioBtn), ComboBox, Edit, ListBox, ScrollBar (SPEC_FULL.md §2).
// It only decodes; pkg/hwpx/schema's section decoder does not call it,
// so form objects there decode as ControlUnknown. The field set matches
// the one
// original_source/crates/hwpx/src/paragraph/form_control.rs's
// AbstractButtonObjectType/ComboBoxType/ListBoxType/EditType/
// ScrollBarType give each element.
package formcontrol

import (
	"strconv"

	"github.com/vortex/go-hwp/pkg/hwpx/oxml"
	"github.com/vortex/go-hwp/pkg/hwpx/schema/drawing"
)

var (
	qnFormCharPr = oxml.Qn("hp:formCharPr")
	qnListItem   = oxml.Qn("hp:listItem")
	qnText       = oxml.Qn("hp:text")
)

// CharacterProperty is every form object's formCharPr child: the
// character shape it renders its caption/value text with.
type CharacterProperty struct {
	CharShapeIDRef uint32
	FollowContext  bool
	AutoSize       bool
	WordWrap       bool
}

// Common is the attribute set AbstractFormObjectType gives every form
// object, beyond the drawing.Common geometry every shape-object shares.
type Common struct {
	drawing.Common
	ID              uint32
	ZOrder          int32
	Name            string
	ForeColor       string
	BackColor       string
	GroupName       string
	TabStop         bool
	Editable        bool
	TabOrder        int32
	Enabled         bool
	BorderTypeIDRef string
	DrawFrame       bool
	Printable       bool
	CharProperty    CharacterProperty
}

func decodeCommon(el oxml.AnyElement) Common {
	c := Common{Common: drawing.Decode(el)}
	c.ID = uint32(parseInt(firstAttr(el, "id")))
	c.ZOrder = int32(parseInt(firstAttr(el, "zOrder")))
	c.Name, _ = el.Attr("name")
	c.ForeColor, _ = el.Attr("foreColor")
	c.BackColor, _ = el.Attr("backColor")
	c.GroupName, _ = el.Attr("groupName")
	c.TabStop = parseBoolDefaultTrue(el, "tabStop")
	c.Editable = parseBoolDefaultTrue(el, "editable")
	c.TabOrder = int32(parseInt(firstAttr(el, "tabOrder")))
	c.Enabled = parseBoolDefaultTrue(el, "enabled")
	c.BorderTypeIDRef, _ = el.Attr("borderTypeIDRef")
	c.DrawFrame = parseBoolDefaultTrue(el, "drawFrame")
	c.Printable = parseBoolDefaultTrue(el, "printable")
	if charPrEl, ok := el.FirstChildNamed(qnFormCharPr); ok {
		c.CharProperty = CharacterProperty{
			CharShapeIDRef: uint32(parseInt(firstAttr(charPrEl, "charPrIDRef"))),
			FollowContext:  firstAttr(charPrEl, "followContext") == "1" || firstAttr(charPrEl, "followContext") == "true",
			AutoSize:       firstAttr(charPrEl, "autoSz") == "1" || firstAttr(charPrEl, "autoSz") == "true",
			WordWrap:       firstAttr(charPrEl, "wordWrap") == "1" || firstAttr(charPrEl, "wordWrap") == "true",
		}
	}
	return c
}

// ButtonValue is a checkbox/radio button's tri-state check value.
type ButtonValue int

const (
	Unchecked ButtonValue = iota
	Checked
	Indeterminate
)

// Button is the shared shape of btn/checkBtn/radioBtn (spec.md FormObject
// sub-schema, matching the original's single AbstractButtonObjectType).
type Button struct {
	Common
	Caption        string
	Value          ButtonValue
	RadioGroupName string
	TriState       bool
}

func decodeButtonValue(s string) ButtonValue {
	switch s {
	case "CHECKED":
		return Checked
	case "INDETERMINATE":
		return Indeterminate
	default:
		return Unchecked
	}
}

// DecodeButton decodes a btn/checkBtn/radioBtn element.
func DecodeButton(el oxml.AnyElement) Button {
	b := Button{Common: decodeCommon(el)}
	b.Caption, _ = el.Attr("caption")
	b.Value = decodeButtonValue(firstAttr(el, "value"))
	b.RadioGroupName, _ = el.Attr("radioGroupName")
	b.TriState = firstAttr(el, "triState") == "1" || firstAttr(el, "triState") == "true"
	return b
}

// ListItem is one comboBox/listBox entry.
type ListItem struct {
	DisplayText string
	Value       string
}

func decodeListItems(el oxml.AnyElement) []ListItem {
	var items []ListItem
	for _, itemEl := range el.ChildrenNamed(qnListItem) {
		disp, _ := itemEl.Attr("displayText")
		val, _ := itemEl.Attr("value")
		items = append(items, ListItem{DisplayText: disp, Value: val})
	}
	return items
}

// ComboBox is a dropdown list form object.
type ComboBox struct {
	Common
	Items         []ListItem
	ListBoxRows   int32
	ListBoxWidth  int32
	EditEnable    bool
	SelectedValue string
}

// DecodeComboBox decodes a comboBox element.
func DecodeComboBox(el oxml.AnyElement) ComboBox {
	cb := ComboBox{Common: decodeCommon(el), Items: decodeListItems(el)}
	cb.ListBoxRows = int32(parseInt(firstAttr(el, "listBoxRows")))
	cb.ListBoxWidth = int32(parseInt(firstAttr(el, "listBoxWidth")))
	cb.EditEnable = firstAttr(el, "editEnable") == "1" || firstAttr(el, "editEnable") == "true"
	cb.SelectedValue, _ = el.Attr("selectedValue")
	return cb
}

// ListBox is a multi-row selection list form object.
type ListBox struct {
	Common
	Items         []ListItem
	ItemHeight    int32
	TopIndex      uint32
	SelectedValue string
}

// DecodeListBox decodes a listBox element.
func DecodeListBox(el oxml.AnyElement) ListBox {
	lb := ListBox{Common: decodeCommon(el), Items: decodeListItems(el)}
	lb.ItemHeight = int32(parseInt(firstAttr(el, "itemHeight")))
	lb.TopIndex = uint32(parseInt(firstAttr(el, "topIdx")))
	lb.SelectedValue, _ = el.Attr("selectedValue")
	return lb
}

// EditScrollBars is an edit box's scrollbar display setting.
type EditScrollBars int

const (
	ScrollNone EditScrollBars = iota
	ScrollVertical
	ScrollHorizontal
	ScrollBoth
)

// Edit is a single- or multi-line text input form object.
type Edit struct {
	Common
	Text         string
	MultiLine    bool
	PasswordChar string
	MaxLength    uint32
	ScrollBars   EditScrollBars
	NumberOnly   bool
	ReadOnly     bool
	AlignText    string
}

// DecodeEdit decodes an edit element.
func DecodeEdit(el oxml.AnyElement) Edit {
	e := Edit{Common: decodeCommon(el)}
	if textEl, ok := el.FirstChildNamed(qnText); ok {
		e.Text = textEl.Text()
	}
	e.MultiLine = firstAttr(el, "multiLine") == "1" || firstAttr(el, "multiLine") == "true"
	e.PasswordChar, _ = el.Attr("passwordChar")
	if e.PasswordChar == "" {
		e.PasswordChar = "*"
	}
	e.MaxLength = uint32(parseInt(firstAttr(el, "maxLength")))
	e.ScrollBars = decodeScrollBars(firstAttr(el, "scrollBars"))
	e.NumberOnly = firstAttr(el, "numOnly") == "1" || firstAttr(el, "numOnly") == "true"
	e.ReadOnly = firstAttr(el, "readOnly") == "1" || firstAttr(el, "readOnly") == "true"
	e.AlignText, _ = el.Attr("alignText")
	return e
}

func decodeScrollBars(s string) EditScrollBars {
	switch s {
	case "VERTICAL":
		return ScrollVertical
	case "HORIZONTAL":
		return ScrollHorizontal
	case "BOTH":
		return ScrollBoth
	default:
		return ScrollNone
	}
}

// ScrollBar is a standalone scrollbar form object.
type ScrollBar struct {
	Common
	Delay       uint32
	LargeChange uint32
	SmallChange uint32
	Min, Max    int32
	Page        int32
	Value       int32
	Horizontal  bool
}

// DecodeScrollBar decodes a scrollBar element.
func DecodeScrollBar(el oxml.AnyElement) ScrollBar {
	s := ScrollBar{Common: decodeCommon(el)}
	s.Delay = uint32(parseInt(firstAttr(el, "delay")))
	s.LargeChange = uint32(parseInt(firstAttr(el, "largeChange")))
	s.SmallChange = uint32(parseInt(firstAttr(el, "smallChange")))
	s.Min = int32(parseInt(firstAttr(el, "min")))
	s.Max = int32(parseInt(firstAttr(el, "max")))
	s.Page = int32(parseInt(firstAttr(el, "page")))
	s.Value = int32(parseInt(firstAttr(el, "value")))
	s.Horizontal = firstAttr(el, "type") == "HORIZONTAL"
	return s
}

func firstAttr(el oxml.AnyElement, name string) string {
	v, _ := el.Attr(name)
	return v
}

// parseBoolDefaultTrue implements the original schema's default="true"
// boolean attributes (tabStop, editable, enabled, drawFrame, printable):
// absent means enabled, "0"/"false" is the only way to turn it off.
func parseBoolDefaultTrue(el oxml.AnyElement, name string) bool {
	v, ok := el.Attr(name)
	if !ok {
		return true
	}
	return v != "0" && v != "false"
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
