// Package hwpdoc is the document façade: Open/OpenWithPassword/Save,
// container-format sniffing, and read accessors that let a caller treat
// an HWP 5.x binary file and an HWPX package as the same Document
// without caring which one it started from (spec.md §4.L). It is the
// package that ties the binary (pkg/hwp/...) and HWPX (pkg/hwpx/...)
// codecs to the editing model.
package hwpdoc

import (
	"github.com/vortex/go-hwp/pkg/hwp/binio"
	"github.com/vortex/go-hwp/pkg/hwperr"
	"github.com/vortex/go-hwp/pkg/primitive"
)

const fileHeaderSize = 256

var fileHeaderSignature = [32]byte{
	'H', 'W', 'P', ' ', 'D', 'o', 'c', 'u', 'm', 'e', 'n', 't', ' ', 'F', 'i', 'l', 'e',
}

// HeaderFlags are the /FileHeader Properties bitfield bits (spec.md §6.3).
type HeaderFlags uint32

const (
	FlagCompressed HeaderFlags = 1 << iota
	FlagEncrypted
	FlagDistribution
	FlagScript
	FlagDRM
	FlagXMLTemplate
	FlagHistory
	FlagCertSigned
	FlagCertEncrypted
	FlagCertSpare
	FlagDRMv2
	FlagCCLDocument
	FlagMobileOptimized
	FlagPrivacySecurity
	FlagChangeTracking
	FlagChangeTrackingRestricted
	FlagKoglReserved
	FlagVideoControl
	FlagFieldProtection
)

// FileHeader is the decoded /FileHeader stream: a 32-byte signature, a
// 4-byte version, a 4-byte flags word, and 216 reserved bytes
// (spec.md §6.1).
type FileHeader struct {
	Version  primitive.Version
	Flags    HeaderFlags
	Reserved [216]byte
}

func (h HeaderFlags) has(bit HeaderFlags) bool { return h&bit != 0 }

func (h FileHeader) Compressed() bool   { return h.Flags.has(FlagCompressed) }
func (h FileHeader) Encrypted() bool    { return h.Flags.has(FlagEncrypted) }
func (h FileHeader) Distribution() bool { return h.Flags.has(FlagDistribution) }
func (h FileHeader) HasScript() bool    { return h.Flags.has(FlagScript) }
func (h FileHeader) HasDRM() bool       { return h.Flags.has(FlagDRM) }

// DecodeFileHeader parses the 256-byte /FileHeader stream.
func DecodeFileHeader(data []byte) (FileHeader, error) {
	var h FileHeader
	if len(data) < fileHeaderSize {
		return h, hwperr.NewFormatError(nil, "hwpdoc: /FileHeader is %d bytes, want %d", len(data), fileHeaderSize)
	}
	r := binio.NewReader(data)
	sig, err := r.Bytes(32)
	if err != nil {
		return h, err
	}
	for i := 0; i < len(fileHeaderSignature) && fileHeaderSignature[i] != 0; i++ {
		if sig[i] != fileHeaderSignature[i] {
			return h, hwperr.NewFormatError(nil, "hwpdoc: /FileHeader signature mismatch")
		}
	}
	build, err := r.U8()
	if err != nil {
		return h, err
	}
	micro, err := r.U8()
	if err != nil {
		return h, err
	}
	minor, err := r.U8()
	if err != nil {
		return h, err
	}
	major, err := r.U8()
	if err != nil {
		return h, err
	}
	h.Version = primitive.Version{Major: major, Minor: minor, Micro: micro, Build: build}
	flags, err := r.U32()
	if err != nil {
		return h, err
	}
	h.Flags = HeaderFlags(flags)
	reserved, err := r.Bytes(216)
	if err != nil {
		return h, err
	}
	copy(h.Reserved[:], reserved)
	return h, nil
}

// EncodeFileHeader serializes a FileHeader back to its 256-byte wire form.
func EncodeFileHeader(h FileHeader) []byte {
	w := binio.NewWriter()
	sig := make([]byte, 32)
	copy(sig, fileHeaderSignature[:])
	w.Raw(sig)
	w.U8(h.Version.Build)
	w.U8(h.Version.Micro)
	w.U8(h.Version.Minor)
	w.U8(h.Version.Major)
	w.U32(uint32(h.Flags))
	w.Raw(h.Reserved[:])
	return w.Bytes()
}
