// Package primitive holds the typed scalar and enumeration wrappers shared
// by the binary (HWP 5.x) and XML (HWPX) readers/writers: length units,
// colors, geometry, versions, PANOSE font classification, and the closed
// enumerations for line style, alignment, wrap, fill and friends.
package primitive

import "fmt"

// HwpUnit is the document's native length unit, conventionally 1/7200 inch.
// It is a signed 32-bit quantity on the wire.
type HwpUnit int32

// Inches converts the unit to fractional inches.
func (u HwpUnit) Inches() float64 { return float64(u) / 7200.0 }

// Millimeters converts the unit to fractional millimeters.
func (u HwpUnit) Millimeters() float64 { return u.Inches() * 25.4 }

// HwpUnitFromInches builds an HwpUnit from a fractional inch value.
func HwpUnitFromInches(inches float64) HwpUnit {
	return HwpUnit(inches * 7200.0)
}

// Percent is a fixed-point, percent-scaled quantity (e.g. character
// width ratio, line spacing). The wire encoding is an unscaled integer;
// Value returns the percentage it represents.
type Percent int32

// Value returns the percentage represented by p (100 == 100%).
func (p Percent) Value() float64 { return float64(p) }

// Color is a 32-bit ARGB color, accessed by channel. On the wire HWP
// colors are stored as 0x00BBGGRR (no alpha channel used); A is kept for
// API symmetry with other Office-family formats and is always 0xFF
// unless explicitly set.
type Color uint32

// NewColor builds an opaque color from 8-bit R, G, B channels.
func NewColor(r, g, b uint8) Color {
	return Color(uint32(0xFF)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// FromWireRGB decodes the HWP wire encoding (0x00BBGGRR, little-endian
// byte order already resolved into a plain integer) into a Color.
func FromWireRGB(v uint32) Color {
	r := uint8(v)
	g := uint8(v >> 8)
	b := uint8(v >> 16)
	return NewColor(r, g, b)
}

// ToWireRGB re-encodes c into the 0x00BBGGRR wire form.
func (c Color) ToWireRGB() uint32 {
	return uint32(c.B())<<16 | uint32(c.G())<<8 | uint32(c.R())
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

// Point is a 2D coordinate in HwpUnit space.
type Point struct {
	X, Y HwpUnit
}

// Size is a 2D extent in HwpUnit space.
type Size struct {
	Width, Height HwpUnit
}

// Insets are four-sided padding/margin values.
type Insets struct {
	Left, Right, Top, Bottom HwpUnit
}

// Matrix is an affine six-component transform: [a b c d e f] mapping
// (x, y) -> (a*x + c*y + e, b*x + d*y + f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// IdentityMatrix returns the identity affine transform.
func IdentityMatrix() Matrix {
	return Matrix{A: 1, D: 1}
}

// Version is a four-component HWP file version (build.micro.minor.major
// on the wire, exposed here in the conventional major.minor.micro.build
// reading order).
type Version struct {
	Major, Minor, Micro, Build uint8
}

// String renders the version as "major.minor.micro.build".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Micro, v.Build)
}

// AtLeast reports whether v is greater than or equal to other when
// compared lexicographically by (Major, Minor, Micro, Build).
func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	if v.Micro != other.Micro {
		return v.Micro > other.Micro
	}
	return v.Build >= other.Build
}

// V5_0_2_1 is the version at which optional memo-shape / track-change /
// author counts appear in IdMappings (spec.md §4.E item 2) and at which
// CharShape gains its border-fill id trailing field.
var V5_0_2_1 = Version{Major: 5, Minor: 0, Micro: 2, Build: 1}

// V5_0_3_0 is the version at which the password KDF switches from the
// proprietary pre-5.0.3 hash to SHA-1 with a fixed salt, and at which
// CharShape gains its strikethrough-color trailing field.
var V5_0_3_0 = Version{Major: 5, Minor: 0, Micro: 3, Build: 0}
