package oxml

import (
	"errors"
	"testing"

	"github.com/vortex/go-hwp/pkg/hwperr"
)

func TestQnAndTryQn(t *testing.T) {
	got := Qn("hp:p")
	want := "{http://www.hancom.co.kr/hwpml/2011/paragraph}p"
	if got != want {
		t.Fatalf("Qn(hp:p) = %q, want %q", got, want)
	}
	if _, err := TryQn("zz:p"); err == nil {
		t.Fatalf("TryQn with unknown prefix should error")
	}
}

func TestSplitClark(t *testing.T) {
	uri, local, ok := SplitClark(Qn("hs:sec"))
	if !ok || local != "sec" || uri != Nsmap["hs"] {
		t.Fatalf("SplitClark = (%q, %q, %v)", uri, local, ok)
	}
	if _, ok := PrefixOf(uri); !ok {
		t.Fatalf("PrefixOf(%q) should resolve back to hs", uri)
	}
}

func TestParseAndMatchers(t *testing.T) {
	xml := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<hs:sec xmlns:hs="http://www.hancom.co.kr/hwpml/2011/section" xmlns:hp="http://www.hancom.co.kr/hwpml/2011/paragraph">
  <hp:p id="1"><hp:run>a</hp:run></hp:p>
  <hp:p id="2"><hp:run>b</hp:run></hp:p>
  <hp:p id="3"><hp:run>c</hp:run></hp:p>
</hs:sec>`)
	root, err := Parse(xml)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if root.ClarkName() != Qn("hs:sec") {
		t.Fatalf("root ClarkName = %q", root.ClarkName())
	}

	cursor := 0
	paras, err := Nonempty(root, &cursor, Qn("hp:p"))
	if err != nil {
		t.Fatalf("Nonempty() error = %v", err)
	}
	if len(paras) != 3 {
		t.Fatalf("Nonempty() returned %d paragraphs, want 3", len(paras))
	}
	if cursor != 3 {
		t.Fatalf("cursor = %d, want 3", cursor)
	}

	id, err := paras[0].RequireAttr("id")
	if err != nil || id != "1" {
		t.Fatalf("RequireAttr(id) = (%q, %v)", id, err)
	}
	if _, err := paras[0].RequireAttr("missing"); err == nil {
		t.Fatalf("RequireAttr(missing) should error")
	}
}

func TestOptAndOneOnMissingChild(t *testing.T) {
	xml := []byte(`<hh:head xmlns:hh="http://www.hancom.co.kr/hwpml/2011/head"></hh:head>`)
	root, err := Parse(xml)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cursor := 0
	if _, ok := Opt(root, &cursor, Qn("hh:fontfaces")); ok {
		t.Fatalf("Opt() on empty element should report ok=false")
	}
	if _, err := One(root, &cursor, Qn("hh:fontfaces")); err == nil {
		t.Fatalf("One() on missing required child should error")
	}
}

func TestAttrConv(t *testing.T) {
	if !ParseBoolAttr("1") || !ParseBoolAttr("true") || ParseBoolAttr("0") {
		t.Fatalf("ParseBoolAttr mismatched expectations")
	}
	if FormatIntAttr(42) != "42" || FormatBoolAttr(true) != "true" {
		t.Fatalf("format helpers mismatched expectations")
	}
	v, err := ParseFloatAttr(" 1.5 ")
	if err != nil || v != 1.5 {
		t.Fatalf("ParseFloatAttr = (%v, %v)", v, err)
	}
}

func TestMatcherErrorsUnwrapToSchemaError(t *testing.T) {
	xml := []byte(`<hh:head xmlns:hh="http://www.hancom.co.kr/hwpml/2011/head"></hh:head>`)
	root, err := Parse(xml)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cursor := 0
	_, oneErr := One(root, &cursor, Qn("hh:fontfaces"))
	var schemaErr *hwperr.SchemaError
	if !errors.As(oneErr, &schemaErr) {
		t.Fatalf("One() error %v does not unwrap to *hwperr.SchemaError", oneErr)
	}

	if _, attrErr := root.RequireAttr("missing"); !errors.As(attrErr, &schemaErr) {
		t.Fatalf("RequireAttr() error %v does not unwrap to *hwperr.SchemaError", attrErr)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	xml := []byte(`<hc:root xmlns:hc="http://www.hancom.co.kr/hwpml/2011/core"><hc:item/></hc:root>`)
	root, err := Parse(xml)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err := Serialize(root)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse() error = %v", err)
	}
	if reparsed.ClarkName() != root.ClarkName() {
		t.Fatalf("round trip ClarkName mismatch: %q vs %q", reparsed.ClarkName(), root.ClarkName())
	}
	if _, ok := reparsed.FirstChildNamed(Qn("hc:item")); !ok {
		t.Fatalf("round trip lost hc:item child")
	}
}
