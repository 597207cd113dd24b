package oxml

import (
	"strconv"
	"strings"
)

// ParseIntAttr parses a string attribute value into an int.
func ParseIntAttr(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseInt64Attr parses a string attribute value into an int64.
func ParseInt64Attr(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// ParseFloatAttr parses a string attribute value into a float64, used for
// HWPML's scale/ratio attributes (e.g. hp:lineSpacing@value under
// percent-based line spacing kinds).
func ParseFloatAttr(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseBoolAttr parses an XML boolean attribute value. Accepts "true" or
// "1" as true; everything else is false.
//
// This function is intentionally infallible: the xsd:boolean value space
// is small and a non-matching string mapping to false is a reasonable
// default for HWPML's attribute set.
func ParseBoolAttr(s string) bool {
	s = strings.TrimSpace(s)
	return s == "true" || s == "1"
}

// ParseEnumAttr parses an XML attribute value using the provided fromXML
// function.
func ParseEnumAttr[T any](s string, fromXML func(string) (T, error)) (T, error) {
	return fromXML(s)
}

// FormatIntAttr formats an int as a string attribute value.
func FormatIntAttr(v int) string {
	return strconv.Itoa(v)
}

// FormatInt64Attr formats an int64 as a string attribute value.
func FormatInt64Attr(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloatAttr formats a float64 as a string attribute value.
func FormatFloatAttr(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatBoolAttr formats a bool as an XML attribute value.
func FormatBoolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
