package docinfo

import (
	"bytes"
	"testing"

	"github.com/vortex/go-hwp/pkg/primitive"
)

func buildTestStream(t *testing.T, version primitive.Version) []byte {
	t.Helper()

	props := DocumentProperties{SectionCount: 1, StartingPageNumber: 1}
	mappings := IdMappings{
		BinaryDataCount: 1,
		BorderFillCount: 1,
		CharShapeCount:  1,
		ParaShapeCount:  1,
		StyleCount:      1,
	}

	// Build via the package's own Encode to stay in sync with Decode's
	// expectations rather than hand-rolling record framing twice.
	di := &DocInfo{
		Properties: props,
		IdMappings: mappings,
		BinaryData: []BinaryDataEntry{
			{Kind: BinaryDataEmbed, ID: 0, Extension: "png"},
		},
		BorderFills: []BorderFill{
			{FillType: primitive.NewFillType(primitive.FillNone)},
		},
		CharShapes: []CharShape{
			{BaseSize: 1000},
		},
		ParaShapes: []ParaShape{
			{Alignment: primitive.NewHAlign(primitive.HAlignLeft)},
		},
		Styles: []Style{
			{Name: "Normal"},
		},
	}
	return di.Encode(version)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	version := primitive.Version{Major: 5, Minor: 0, Micro: 3, Build: 0}
	stream := buildTestStream(t, version)

	di, err := Decode(stream, version)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if di.Properties.SectionCount != 1 {
		t.Fatalf("SectionCount = %d, want 1", di.Properties.SectionCount)
	}
	if len(di.BinaryData) != 1 || di.BinaryData[0].Extension != "png" {
		t.Fatalf("BinaryData = %+v", di.BinaryData)
	}
	if len(di.BorderFills) != 1 {
		t.Fatalf("BorderFills = %+v", di.BorderFills)
	}
	if len(di.CharShapes) != 1 || di.CharShapes[0].BaseSize != 1000 {
		t.Fatalf("CharShapes = %+v", di.CharShapes)
	}
	if len(di.ParaShapes) != 1 {
		t.Fatalf("ParaShapes = %+v", di.ParaShapes)
	}
	kind, known := di.ParaShapes[0].Alignment.Kind()
	if !known || kind != primitive.HAlignLeft {
		t.Fatalf("ParaShapes[0].Alignment = (%v, %v)", kind, known)
	}
	if len(di.Styles) != 1 || di.Styles[0].Name != "Normal" {
		t.Fatalf("Styles = %+v", di.Styles)
	}

	reencoded := di.Encode(version)
	if !bytes.Equal(reencoded, stream) {
		t.Fatalf("Encode() after Decode() did not reproduce the original stream")
	}
}

func TestDecodeStopsGracefullyOnTruncation(t *testing.T) {
	version := primitive.Version{Major: 5, Minor: 0, Micro: 3, Build: 0}
	stream := buildTestStream(t, version)

	truncated := stream[:len(stream)-3]
	di, err := Decode(truncated, version)
	if err != nil {
		t.Fatalf("Decode() on truncated stream returned error = %v, want graceful degradation", err)
	}
	if di.Properties.SectionCount != 1 {
		t.Fatalf("SectionCount = %d, want 1 even after truncation of later tables", di.Properties.SectionCount)
	}
}

func TestIdMappingsExtendedCountsRoundTrip(t *testing.T) {
	m := IdMappings{
		BinaryDataCount:        2,
		BorderFillCount:        3,
		MemoShapeCount:         1,
		TrackChangeCount:       2,
		TrackChangeAuthorCount: 1,
		hasExtendedCounts:      true,
	}
	encoded := m.Encode(primitive.V5_0_2_1)
	got, err := decodeIdMappings(encoded)
	if err != nil {
		t.Fatalf("decodeIdMappings() error = %v", err)
	}
	if got.MemoShapeCount != 1 || got.TrackChangeCount != 2 || got.TrackChangeAuthorCount != 1 {
		t.Fatalf("extended counts = %+v", got)
	}
	if !got.hasExtendedCounts {
		t.Fatal("expected hasExtendedCounts to be set after decoding a payload with extended counts")
	}
}

func TestCharShapeVersionGatedFields(t *testing.T) {
	old := primitive.Version{Major: 5, Minor: 0, Micro: 0, Build: 0}
	cs := CharShape{BaseSize: 2000}
	encoded := cs.Encode()

	got, err := decodeCharShape(encoded, old)
	if err != nil {
		t.Fatalf("decodeCharShape() error = %v", err)
	}
	if got.HasBorderFillID || got.HasStrikethrough {
		t.Fatalf("expected no version-gated tail fields on a bare payload, got %+v", got)
	}

	withTail := CharShape{BaseSize: 2000, BorderFillID: 7, HasBorderFillID: true, StrikethroughColor: primitive.FromWireRGB(0xFF0000), HasStrikethrough: true}
	encodedTail := withTail.Encode()
	gotTail, err := decodeCharShape(encodedTail, primitive.V5_0_3_0)
	if err != nil {
		t.Fatalf("decodeCharShape() error = %v", err)
	}
	if !gotTail.HasBorderFillID || gotTail.BorderFillID != 7 {
		t.Fatalf("BorderFillID tail not round-tripped: %+v", gotTail)
	}
	if !gotTail.HasStrikethrough || gotTail.StrikethroughColor != withTail.StrikethroughColor {
		t.Fatalf("StrikethroughColor tail not round-tripped: %+v", gotTail)
	}
}
