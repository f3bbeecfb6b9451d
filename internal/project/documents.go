package project

import (
	"encoding/json"
	"strings"

	"github.com/iwvelando/teaser/internal/catalog"
	"github.com/iwvelando/teaser/pkg/constants"
)

// PictureVariants holds the renditions stored for the project picture slot.
type PictureVariants struct {
	ProjectPicture string  `json:"projectPicture"`
	Banner         *string `json:"banner"`
	Thumbnail      string  `json:"thumbnail"`
	Medium         string  `json:"medium"`
	Overlay        string  `json:"overlay"`
}

type docEntry struct {
	slot    string
	path    string
	picture *PictureVariants
	set     bool
}

// DocumentBag maps document slots to stored file paths, keeping the order the
// slots were read in.
type DocumentBag struct {
	entries []docEntry
	index   map[string]int
}

// UnmarshalJSON reads the bag in document order. Slot values are a path, null,
// or a picture variants object.
func (b *DocumentBag) UnmarshalJSON(data []byte) error {
	*b = DocumentBag{index: map[string]int{}}
	return eachMember(data, func(slot string, raw json.RawMessage) error {
		e := docEntry{slot: slot}
		trimmed := strings.TrimSpace(string(raw))
		switch {
		case isNull(raw):
		case strings.HasPrefix(trimmed, `"`):
			if err := json.Unmarshal(raw, &e.path); err != nil {
				return err
			}
			e.set = e.path != ""
		case strings.HasPrefix(trimmed, "{"):
			var pv PictureVariants
			if err := json.Unmarshal(raw, &pv); err != nil {
				return err
			}
			e.picture = &pv
			e.path = pv.ProjectPicture
			e.set = true
		default:
			// numbers and booleans count as present but carry no path
			e.set = trimmed != "false" && trimmed != "0"
		}
		b.index[slot] = len(b.entries)
		b.entries = append(b.entries, e)
		return nil
	})
}

// MarshalJSON writes the bag back with slots in their original order.
func (b DocumentBag) MarshalJSON() ([]byte, error) {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, e := range b.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(e.slot)
		buf.Write(k)
		buf.WriteByte(':')
		var v []byte
		var err error
		switch {
		case e.picture != nil:
			v, err = json.Marshal(e.picture)
		case e.path != "":
			v, err = json.Marshal(e.path)
		default:
			v = []byte("null")
		}
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return []byte(buf.String()), nil
}

// Slots returns every slot name in order, including empty ones.
func (b DocumentBag) Slots() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.slot
	}
	return out
}

// Path returns the stored path of slot. A picture variants value yields its
// projectPicture path.
func (b DocumentBag) Path(slot string) string {
	if i, ok := b.index[slot]; ok {
		return b.entries[i].path
	}
	return ""
}

// Present reports whether slot holds a value.
func (b DocumentBag) Present(slot string) bool {
	if i, ok := b.index[slot]; ok {
		return b.entries[i].set
	}
	return false
}

// Picture returns the project picture renditions, if stored as variants.
func (b DocumentBag) Picture() (PictureVariants, bool) {
	if i, ok := b.index[catalog.DocProjectPicture]; ok && b.entries[i].picture != nil {
		return *b.entries[i].picture, true
	}
	return PictureVariants{}, false
}

// HasAny reports whether any slot other than uuid holds a value.
func (b DocumentBag) HasAny() bool {
	for _, e := range b.entries {
		if e.slot != "uuid" && e.set {
			return true
		}
	}
	return false
}

// Title returns the display title of slot. A stored file name is kept when it
// does not name another filled slot; otherwise the slot's own label is used.
func (b DocumentBag) Title(slot string) string {
	if name := fileName(b.Path(slot)); name != "" && !b.Present(name) {
		return name
	}
	return DocumentLabel(slot)
}

// URL returns the public link of slot under domain, or "" for an empty slot.
func (b DocumentBag) URL(slot, domain string) string {
	p := b.Path(slot)
	if p == "" {
		return ""
	}
	return PublicURL(p, domain)
}

// PublicURL strips everything up to the public directory from path and joins
// the rest onto domain.
func PublicURL(path, domain string) string {
	rel := path
	if parts := strings.Split(path, constants.PublicPathMarker); len(parts) > 1 {
		rel = parts[1]
	}
	return strings.TrimRight(domain, "/") + "/" + strings.TrimLeft(rel, "/")
}

// fileName returns the last path segment of p up to its first dot.
func fileName(p string) string {
	if p == "" {
		return ""
	}
	name := p[strings.LastIndexByte(p, '/')+1:]
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name
}

var documentLabels = map[string]string{
	catalog.DocValuationFromExpert:        "Valuation report from expert",
	catalog.DocFinancialStatement:         "Financial statements available",
	catalog.DocFinancialProjections:       "Financial projections (Business plan)",
	catalog.DocTeaser:                     "Teaser",
	catalog.DocSummaryBusinessDeck:        "Summary business deck",
	catalog.DocTaxLegalDueDiligence:       "Tax/Legal Due diligence reports",
	catalog.DocProjectPicture:             "Project picture",
	catalog.DocTrackRecordsResumes:        "Project Holders' track records Resumes",
	catalog.DocNewsExposure:               "News exposure",
	catalog.DocCertificateOfIncorporation: "Certificate of incorporation",
	catalog.DocByLaws:                     "By-Laws",
	catalog.DocShareHolderAgreement:       "Shareholder agreement",
	catalog.DocAgreements:                 "Guarantees agreements",
	catalog.DocCapTable:                   "Cap table",
	catalog.DocKYCDocumentsRequired:       "List of KYC documents required for suscribing investor",
	catalog.DocOtherProjectDocumentation:  "Other Project Documentation",
	catalog.DocOtherLegalDocument:         "Other documentation",
	catalog.DocOtherLegalDocument1:        "Other Legal documentation",
	catalog.DocOtherLegalDocument2:        "Other Legal documentation",
	catalog.DocOtherLegalDocument3:        "Other Legal documentation",
	catalog.DocTermSheet:                  "Term sheet",
	catalog.DocSubscriptionContract:       "Subscription contract",
	catalog.DocOtherDocument:              "Other documentation",
	catalog.DocOtherDocument1:             "Other financial documentation",
	catalog.DocOtherDocument2:             "Other financial documentation",
	catalog.DocOtherDocument3:             "Other financial documentation",
}

var documentDescriptions = map[string]string{
	catalog.DocValuationFromExpert:        "Document where asset is praised by an expert",
	catalog.DocFinancialStatement:         "Last financial statement of the project",
	catalog.DocFinancialProjections:       "Business plan with financial projections",
	catalog.DocTeaser:                     "Teaser for potential investors",
	catalog.DocSummaryBusinessDeck:        "Summary business deck",
	catalog.DocTaxLegalDueDiligence:       "Due diligence reports on tax and other legal matters",
	catalog.DocProjectPicture:             "Image of the project",
	catalog.DocTrackRecordsResumes:        "Project Holders' track records Resumes",
	catalog.DocNewsExposure:               "News exposure",
	catalog.DocCertificateOfIncorporation: "Certificate of incorporation of the SPV",
	catalog.DocByLaws:                     "SPV by-laws",
	catalog.DocShareHolderAgreement:       "SPV shreholder agreements",
	catalog.DocAgreements:                 "Guarantees agreements",
	catalog.DocCapTable:                   "Cap table",
	catalog.DocKYCDocumentsRequired:       "List of KYC documents required for subscriptions",
	catalog.DocTermSheet:                  "Project term sheet",
	catalog.DocSubscriptionContract:       "Subscription contract",
	catalog.DocOtherDocument:              "Other relevant documents",
}

// DocumentLabel returns the fixed label of a document slot, or "" when the
// slot is not known.
func DocumentLabel(slot string) string {
	return documentLabels[slot]
}

// DocumentDescription returns the hover text of a document slot, if any.
func DocumentDescription(slot string) string {
	return documentDescriptions[slot]
}
