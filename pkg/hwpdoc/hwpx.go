package hwpdoc

import (
	"strings"

	"github.com/vortex/go-hwp/pkg/hwperr"
	"github.com/vortex/go-hwp/pkg/hwpx/container"
	"github.com/vortex/go-hwp/pkg/hwpx/oxml"
	"github.com/vortex/go-hwp/pkg/hwpx/schema"
	"github.com/vortex/go-hwp/pkg/ir"
	"github.com/vortex/go-hwp/pkg/primitive"
)

const (
	pathContainerXML = "META-INF/container.xml"
	pathSettingsXML  = "settings.xml"
	pathVersionXML   = "version.xml"
	pathPrvText      = "Preview/PrvText.txt"
	pathPrvImage     = "Preview/PrvImage.png"
	binDataDir       = "BinData/"
)

// openHWPX loads a Document from an HWPX ZIP package (spec.md §4.J, §6.2).
func openHWPX(data []byte) (*Document, error) {
	r, err := container.Open(data)
	if err != nil {
		return nil, err
	}
	if mt, err := r.MimeType(); err != nil || mt != container.ExpectedMimeType {
		return nil, hwperr.NewFormatError(err, "hwpdoc: unexpected hwpx mimetype %q", mt)
	}
	rootPath, err := r.RootFilePath()
	if err != nil {
		return nil, err
	}
	manifestBlob, ok := r.Get(rootPath)
	if !ok {
		return nil, hwperr.NewFormatError(nil, "hwpdoc: missing package descriptor %q", rootPath)
	}
	manifestRoot, err := oxml.Parse(manifestBlob)
	if err != nil {
		return nil, err
	}
	manifest, err := schema.DecodeManifest(manifestRoot)
	if err != nil {
		return nil, err
	}

	var faceNames []primitive.FaceName
	if headerHref, ok := manifest.HrefByID("header"); ok {
		if headerBlob, ok := r.Get(headerHref); ok {
			headerRoot, err := oxml.Parse(headerBlob)
			if err != nil {
				return nil, err
			}
			hdr, err := schema.DecodeHeader(headerRoot)
			if err != nil {
				return nil, err
			}
			faceNames = hdr.FaceNames
		}
	}

	var sections []ir.Section
	for _, href := range manifest.SectionHrefs() {
		blob, ok := r.Get(href)
		if !ok {
			return nil, hwperr.NewFormatError(nil, "hwpdoc: manifest references missing section %q", href)
		}
		secRoot, err := oxml.Parse(blob)
		if err != nil {
			return nil, err
		}
		sec, err := schema.DecodeSection(secRoot)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *sec)
	}

	doc := &Document{
		Format:     FormatHWPX,
		Scripts:    map[string][]byte{},
		DocOptions: map[string][]byte{},
	}
	_ = faceNames // surfaced via Document once pkg/model grows a font table (DESIGN.md known gap)

	if blob, ok := r.Get(pathPrvText); ok {
		doc.PreviewText = string(blob)
	}
	if blob, ok := r.Get(pathPrvImage); ok {
		doc.PreviewImage = blob
	}

	irDoc := &ir.Document{
		Sections:   sections,
		BinaryData: binaryDataFromZip(r),
		Extensions: make(map[string][]byte),
	}
	if blob, ok := r.Get(pathSettingsXML); ok {
		irDoc.Extensions["settings.xml"] = blob
	}
	if blob, ok := r.Get(pathVersionXML); ok {
		irDoc.Extensions["version.xml"] = blob
	}

	doc.Document = ir.ToModel(irDoc)
	doc.hwpxEntries = container.FromReader(r)
	doc.hwpxRootPath = rootPath
	return doc, nil
}

// binaryDataFromZip catalogs every BinData/* entry under an id assigned
// in archive order, starting at 0; the number in the file name (e.g.
// "BinData/image3.png") is not used. HWPX manifest items carry no
// numeric id of their own (unlike the binary DocInfo table's explicit
// ids).
func binaryDataFromZip(r *container.Reader) map[uint16]ir.BinaryDataEntry {
	out := make(map[uint16]ir.BinaryDataEntry)
	id := uint16(0)
	for _, name := range r.Entries() {
		if !strings.HasPrefix(name, binDataDir) {
			continue
		}
		blob, _ := r.Get(name)
		ext := ""
		if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
			ext = name[dot+1:]
		}
		out[id] = ir.BinaryDataEntry{Extension: ext, Data: blob}
		id++
	}
	return out
}

// saveHWPX re-serializes doc to an HWPX package. Every entry untouched
// by the edit model (container.xml, content.hpf, settings.xml,
// version.xml, BinData/*) is carried over verbatim from the entries the
// reader saw at open time; only the section XML bodies are rebuilt from
// the current model state.
func saveHWPX(doc *Document) ([]byte, error) {
	irDoc := ir.FromModel(doc.Document)

	manifestBlob, ok := lookupEntry(doc.hwpxEntries, doc.hwpxRootPath)
	if !ok {
		return nil, hwperr.NewFormatError(nil, "hwpdoc: document has no cached package descriptor to save against")
	}
	manifestRoot, err := oxml.Parse(manifestBlob)
	if err != nil {
		return nil, err
	}
	manifest, err := schema.DecodeManifest(manifestRoot)
	if err != nil {
		return nil, err
	}
	hrefs := manifest.SectionHrefs()

	out := make([]container.Entry, 0, len(doc.hwpxEntries))
	for _, e := range doc.hwpxEntries {
		if idx := sectionIndex(hrefs, e.Name); idx >= 0 && idx < len(irDoc.Sections) {
			el := schema.EncodeSection(&irDoc.Sections[idx])
			blob, err := oxml.Serialize(el)
			if err != nil {
				return nil, err
			}
			out = append(out, container.Entry{Name: e.Name, Data: blob})
			continue
		}
		out = append(out, e)
	}
	return container.Write(out)
}

func sectionIndex(hrefs []string, name string) int {
	for i, h := range hrefs {
		if h == name {
			return i
		}
	}
	return -1
}

func lookupEntry(entries []container.Entry, name string) ([]byte, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e.Data, true
		}
	}
	return nil, false
}
