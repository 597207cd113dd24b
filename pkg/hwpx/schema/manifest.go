package schema

import "github.com/vortex/go-hwp/pkg/hwpx/oxml"

var (
	qnManifest     = oxml.Qn("opf:manifest")
	qnItem         = oxml.Qn("opf:item")
	qnSpine        = oxml.Qn("opf:spine")
	qnItemRef      = oxml.Qn("opf:itemref")
)

// ManifestItem is one opf:item entry in content.hpf's manifest: an id,
// the package-relative path to its part, and its declared media type.
type ManifestItem struct {
	ID        string
	Href      string
	MediaType string
}

// Manifest is content.hpf's decoded opf:manifest plus the opf:spine
// reading order (spec.md §4.J, §6.2 -- "Contents/content.hpf (OPF)
// enumerates Contents/header.xml, Contents/section{N}.xml, BinData/*,
// settings.xml").
type Manifest struct {
	Items      []ManifestItem
	SpineOrder []string // item ids, in spine order
}

// DecodeManifest parses content.hpf's root package element.
func DecodeManifest(root oxml.AnyElement) (*Manifest, error) {
	m := &Manifest{}
	manifestEl, ok := root.FirstChildNamed(qnManifest)
	if !ok {
		return nil, &oxml.UnexpectedElementError{Parent: root.ClarkName(), Expected: qnManifest}
	}
	for _, itemEl := range manifestEl.ChildrenNamed(qnItem) {
		id, err := itemEl.RequireAttr("id")
		if err != nil {
			return nil, err
		}
		href, err := itemEl.RequireAttr("href")
		if err != nil {
			return nil, err
		}
		mediaType, _ := itemEl.Attr("media-type")
		m.Items = append(m.Items, ManifestItem{ID: id, Href: href, MediaType: mediaType})
	}
	if spineEl, ok := root.FirstChildNamed(qnSpine); ok {
		for _, refEl := range spineEl.ChildrenNamed(qnItemRef) {
			if idref, ok := refEl.Attr("idref"); ok {
				m.SpineOrder = append(m.SpineOrder, idref)
			}
		}
	}
	return m, nil
}

// HrefByID returns the manifest item's href for a given id.
func (m *Manifest) HrefByID(id string) (string, bool) {
	for _, it := range m.Items {
		if it.ID == id {
			return it.Href, true
		}
	}
	return "", false
}

// SectionHrefs returns every manifest item's href that names an HWPML
// section part (an href starting with "Contents/section"; the media
// type is not consulted), in spine order where the id appears in
// the spine, otherwise in manifest order.
func (m *Manifest) SectionHrefs() []string {
	var hrefs []string
	seen := make(map[string]bool)
	add := func(id string) {
		if seen[id] {
			return
		}
		if href, ok := m.HrefByID(id); ok && isSectionHref(href) {
			hrefs = append(hrefs, href)
			seen[id] = true
		}
	}
	for _, id := range m.SpineOrder {
		add(id)
	}
	for _, it := range m.Items {
		add(it.ID)
	}
	return hrefs
}

func isSectionHref(href string) bool {
	return len(href) > len("Contents/section") &&
		href[:len("Contents/section")] == "Contents/section"
}
