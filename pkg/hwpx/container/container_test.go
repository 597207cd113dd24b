package container

import "testing"

func buildTestPackage(t *testing.T) []byte {
	t.Helper()
	entries := []Entry{
		{Name: "mimetype", Data: []byte(ExpectedMimeType)},
		{Name: "META-INF/container.xml", Data: []byte(
			`<?xml version="1.0" encoding="UTF-8"?>` +
				`<container><rootfiles><rootfile full-path="Contents/content.hpf"/></rootfiles></container>`,
		)},
		{Name: "Contents/header.xml", Data: []byte(`<header/>`)},
		{Name: "Contents/section0.xml", Data: []byte(`<sec/>`)},
	}
	blob, err := Write(entries)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return blob
}

func TestOpenReadsEntriesInOrder(t *testing.T) {
	blob := buildTestPackage(t)
	r, err := Open(blob)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	mt, err := r.MimeType()
	if err != nil || mt != ExpectedMimeType {
		t.Fatalf("MimeType() = (%q, %v), want %q", mt, err, ExpectedMimeType)
	}

	want := []string{"mimetype", "META-INF/container.xml", "Contents/header.xml", "Contents/section0.xml"}
	got := r.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	blob2, ok := r.Get("Contents/section0.xml")
	if !ok || string(blob2) != "<sec/>" {
		t.Fatalf("Get(section0.xml) = (%q, %v)", blob2, ok)
	}
}

func TestRootFilePath(t *testing.T) {
	blob := buildTestPackage(t)
	r, err := Open(blob)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	path, err := r.RootFilePath()
	if err != nil {
		t.Fatalf("RootFilePath() error = %v", err)
	}
	if path != "Contents/content.hpf" {
		t.Fatalf("RootFilePath() = %q, want %q", path, "Contents/content.hpf")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	blob := buildTestPackage(t)
	r, err := Open(blob)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	reencoded, err := Write(FromReader(r))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	r2, err := Open(reencoded)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	if len(r2.Entries()) != len(r.Entries()) {
		t.Fatalf("round trip entry count = %d, want %d", len(r2.Entries()), len(r.Entries()))
	}
	blob2, _ := r2.Get("Contents/header.xml")
	if string(blob2) != "<header/>" {
		t.Fatalf("round-tripped header.xml = %q", blob2)
	}
}

func TestWriteRequiresMimetypeFirst(t *testing.T) {
	_, err := Write([]Entry{{Name: "Contents/header.xml", Data: []byte("<header/>")}})
	if err == nil {
		t.Fatalf("expected error when first entry is not mimetype")
	}
}
