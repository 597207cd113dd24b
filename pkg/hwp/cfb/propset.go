package cfb

import (
	"bytes"

	"github.com/richardlehane/msoleps"
	"github.com/richardlehane/msoleps/types"
	"github.com/vortex/go-hwp/pkg/hwperr"
)

// SummaryPropertySetStream is the well-known OLE stream name for the
// document summary, stored with the non-printable 0x05 prefix
// (spec.md §6.1).
const SummaryPropertySetStream = "/\x05HwpSummaryInformation"

// Summary holds the subset of the HWP summary-information property set
// the document façade exposes (spec.md §4.L): title, author, and the
// remaining well-known SummaryInformation property IDs.
type Summary struct {
	Title    string
	Subject  string
	Author   string
	Keywords string
	Comments string
	LastSavedBy string
}

// well-known property IDs from the [MS-OLEPS] SummaryInformation
// stream, the same ids msoleps' Document.Property map is keyed by.
const (
	propTitle       = 2
	propSubject     = 3
	propAuthor      = 4
	propKeywords    = 5
	propComments    = 6
	propLastSavedBy = 8
)

// Summary decodes this container's SummaryInformation stream, if
// present. A missing stream is not an error: spec.md §7 treats absent
// optional metadata as "load succeeded, accessor returns the zero
// value", matching the behavior of Stream's (nil, false) convention.
func (c *Container) Summary() (*Summary, bool, error) {
	raw, ok := c.Stream(SummaryPropertySetStream)
	if !ok {
		return nil, false, nil
	}
	doc, err := msoleps.New(bytes.NewReader(raw))
	if err != nil {
		return nil, false, hwperr.NewIOError(err, "cfb: parsing summary information property set")
	}
	s := &Summary{}
	for _, prop := range doc.Property {
		switch prop.ID {
		case propTitle:
			s.Title = propString(prop.Value)
		case propSubject:
			s.Subject = propString(prop.Value)
		case propAuthor:
			s.Author = propString(prop.Value)
		case propKeywords:
			s.Keywords = propString(prop.Value)
		case propComments:
			s.Comments = propString(prop.Value)
		case propLastSavedBy:
			s.LastSavedBy = propString(prop.Value)
		}
	}
	return s, true, nil
}

// propString renders an msoleps property value as a string, the only
// variant form the SummaryInformation fields above take on.
func propString(v types.PropertyValue) string {
	if s, ok := v.(fmtStringer); ok {
		return s.String()
	}
	return ""
}

// fmtStringer matches msoleps' lpwstr/vt_string value types, all of
// which implement String() in that package.
type fmtStringer interface {
	String() string
}
