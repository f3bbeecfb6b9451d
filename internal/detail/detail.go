// Package detail composes the project detail view: the overview card, one
// section per applicable category, funding and contact info, and documents.
package detail

import (
	"go.uber.org/zap"

	"github.com/iwvelando/teaser/internal/catalog"
	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/internal/project"
)

// Entry kinds that need more than plain text rendering.
const (
	KindText  = "text"
	KindHTML  = "html"
	KindEmail = "email"
	KindPhone = "phone"
)

// Entry is one labeled, formatted value.
type Entry struct {
	Key   string `json:"key,omitempty"`
	Label string `json:"label"`
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

// Section is a titled group of entries.
type Section struct {
	Category listing.Category `json:"category,omitempty"`
	Title    string           `json:"title"`
	Entries  []Entry          `json:"entries"`
}

// Document is a linked supporting document.
type Document struct {
	Slot        string `json:"slot"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path"`
	URL         string `json:"url"`
}

// Overview is the summary card shown beside the sections.
type Overview struct {
	Entries       []Entry  `json:"entries"`
	PercentFilled *float64 `json:"percentFilled,omitempty"`
	HardCap       string   `json:"hardCap,omitempty"`
	DeckURL       string   `json:"deckUrl,omitempty"`
}

// View is the complete detail page model.
type View struct {
	ProjectName string                   `json:"projectName"`
	Description string                   `json:"description,omitempty"`
	Picture     *project.PictureVariants `json:"picture,omitempty"`
	Overview    Overview                 `json:"overview"`
	Sections    []Section                `json:"sections"`
	Funding     *Section                 `json:"funding,omitempty"`
	Documents   []Document               `json:"documents,omitempty"`
	Contact     *Section                 `json:"contact,omitempty"`
}

// SectionCategories are the catalog categories shown as sections, in page
// order.
var SectionCategories = []listing.Category{
	listing.GeneralInfo,
	listing.AssetInfo,
	listing.BusinessInfo,
	listing.FundStrategy,
	listing.KeyPerformanceIndicators,
	listing.InvestmentInfo,
	listing.GuaranteeLevels,
	listing.NonFinancialInfo,
}

// Builder turns a project record into a View.
type Builder struct {
	logger *zap.Logger
	domain string
}

// NewBuilder returns a Builder that links documents under domain.
func NewBuilder(logger *zap.Logger, domain string) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{logger: logger, domain: domain}
}

// Build renders the whole detail view.
func (b *Builder) Build(p *project.MasterProject) View {
	v := View{
		ProjectName: p.ProjectName,
		Description: p.ProjectDescription,
		Overview:    b.Overview(p),
		Sections:    []Section{},
		Documents:   b.Documents(p),
	}
	if pic, ok := p.Documents.Picture(); ok {
		v.Picture = &pic
	}

	lists, ok := catalog.ResolveClassification(p.Classification())
	if !ok {
		b.logger.Debug("no field lists for classification",
			zap.String("op", "detail.Build"),
			zap.String("investmentGroup", string(p.InvestmentGroup)),
			zap.String("investmentType", string(p.InvestmentType)),
			zap.String("listingType", string(p.ProjectListingType)),
			zap.String("marketType", string(p.ProjectListingMarketType)),
		)
	}
	for _, c := range SectionCategories {
		if s, ok := b.section(p, lists, c); ok {
			v.Sections = append(v.Sections, s)
		}
	}
	if s, ok := b.Funding(p); ok {
		v.Funding = &s
	}
	if s, ok := b.Contact(p); ok {
		v.Contact = &s
	}
	return v
}

// Fields returns the field definitions that apply to category for p.
func (b *Builder) Fields(p *project.MasterProject, category listing.Category) (catalog.List, bool) {
	lists, ok := catalog.ResolveClassification(p.Classification())
	if !ok {
		return nil, false
	}
	l, ok := lists[category]
	return l, ok
}

// Section renders one category. The second result is false when the category
// does not apply to the project or has nothing to show.
func (b *Builder) Section(p *project.MasterProject, category listing.Category) (Section, bool) {
	lists, _ := catalog.ResolveClassification(p.Classification())
	return b.section(p, lists, category)
}

func (b *Builder) section(p *project.MasterProject, lists catalog.FieldLists, category listing.Category) (Section, bool) {
	s := Section{Category: category, Title: category.Title()}
	for _, f := range lists[category] {
		if e, ok := renderField(p, category, f); ok {
			s.Entries = append(s.Entries, e)
		}
	}
	for _, cf := range p.CustomFields(category) {
		if cf.Value == "" {
			continue
		}
		s.Entries = append(s.Entries, Entry{Key: cf.ID, Label: cf.Label, Value: cf.Value, Kind: KindText})
	}
	return s, len(s.Entries) > 0
}
