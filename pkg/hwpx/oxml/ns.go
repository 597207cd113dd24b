// Package oxml provides namespace-aware generic XML tree manipulation for
// HWPML documents (spec.md §4.J, §6.5): a single AnyElement tree type plus
// a declarative matcher vocabulary (one/opt/many/nonempty) for building
// typed entities from it. Grounded on
// go-docx/pkg/docx/oxml's Qn/TryQn Clark-notation helpers and attribute
// conversion helpers, generalized from OOXML's single-namespace-per-part
// model to HWPML's thirteen-prefix table shared across every part.
package oxml

import (
	"fmt"
	"strings"
)

// Nsmap maps the thirteen HWPML namespace prefixes to their URIs
// (spec.md §6.5).
var Nsmap = map[string]string{
	"hp":     "http://www.hancom.co.kr/hwpml/2011/paragraph",
	"hp10":   "http://www.hancom.co.kr/hwpml/2016/paragraph",
	"hs":     "http://www.hancom.co.kr/hwpml/2011/section",
	"hc":     "http://www.hancom.co.kr/hwpml/2011/core",
	"hh":     "http://www.hancom.co.kr/hwpml/2011/head",
	"ha":     "http://www.hancom.co.kr/hwpml/2011/app",
	"hv":     "http://www.hancom.co.kr/hwpml/2011/version",
	"hm":     "http://www.hancom.co.kr/hwpml/2011/master-page",
	"hpf":    "http://www.hancom.co.kr/schema/2011/hpf",
	"dc":     "http://purl.org/dc/elements/1.1/",
	"opf":    "http://www.idpf.org/2007/opf/",
	"epub":   "http://www.idpf.org/2007/ops",
	"config": "urn:oasis:names:tc:opendocument:xmlns:config:1.0",
}

// Pfxmap is the reverse mapping of URI -> prefix.
var Pfxmap map[string]string

func init() {
	Pfxmap = make(map[string]string, len(Nsmap))
	for pfx, uri := range Nsmap {
		Pfxmap[uri] = pfx
	}
}

// TryQn converts a namespace-prefixed tag like "hp:p" to Clark notation
// "{uri}p". A tag with no prefix is returned unchanged.
func TryQn(tag string) (string, error) {
	prefix, local, ok := strings.Cut(tag, ":")
	if !ok {
		return tag, nil
	}
	uri, exists := Nsmap[prefix]
	if !exists {
		return "", fmt.Errorf("oxml: unknown namespace prefix %q in tag %q", prefix, tag)
	}
	return "{" + uri + "}" + local, nil
}

// Qn converts a namespace-prefixed tag to Clark notation. Panics on an
// unknown prefix — use only with compile-time known tags.
func Qn(tag string) string {
	s, err := TryQn(tag)
	if err != nil {
		panic(err)
	}
	return s
}

// SplitClark splits Clark notation "{uri}local" back into its namespace
// URI and local name. Returns ok=false if clark does not start with '{'.
func SplitClark(clark string) (uri, local string, ok bool) {
	if len(clark) == 0 || clark[0] != '{' {
		return "", "", false
	}
	closeBrace := strings.IndexByte(clark, '}')
	if closeBrace < 0 {
		return "", "", false
	}
	return clark[1:closeBrace], clark[closeBrace+1:], true
}

// PrefixOf returns the HWPML prefix registered for a namespace URI, and
// whether one was found.
func PrefixOf(uri string) (string, bool) {
	pfx, ok := Pfxmap[uri]
	return pfx, ok
}
