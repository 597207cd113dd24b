// Package envelope implements the per-stream compression and encryption
// wrappers around HWP 5.x record streams (spec.md §4.C). Compression is
// raw DEFLATE (no zlib header); encryption is AES-128-CFB keyed either
// from a user password or from a key embedded in DocInfo for
// distribution documents.
package envelope

import (
	"bytes"
	"compress/flate"
	"io"

	"github.com/vortex/go-hwp/pkg/hwperr"
)

// Inflate decompresses a raw-DEFLATE stream (no zlib/gzip framing), the
// wire form used whenever the file header's "compressed" bit is set.
func Inflate(data []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, hwperr.NewEnvelopeError(err, "envelope: inflate failed")
	}
	return out, nil
}

// Deflate compresses data to raw DEFLATE, the inverse of Inflate. Uses
// the best-compression level, since HWP writers are not latency
// sensitive and this is a correctness-preserving (not streaming) API.
func Deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, hwperr.NewEnvelopeError(err, "envelope: deflate init failed")
	}
	if _, err := fw.Write(data); err != nil {
		return nil, hwperr.NewEnvelopeError(err, "envelope: deflate write failed")
	}
	if err := fw.Close(); err != nil {
		return nil, hwperr.NewEnvelopeError(err, "envelope: deflate close failed")
	}
	return buf.Bytes(), nil
}
