package detail

import (
	"strconv"

	"github.com/iwvelando/teaser/internal/catalog"
	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/internal/project"
	"github.com/iwvelando/teaser/pkg/constants"
	"github.com/iwvelando/teaser/pkg/format"
	"github.com/iwvelando/teaser/pkg/mathutil"
)

// Overview card labels.
const (
	LabelExpectedIRR         = "Expected IRR"
	LabelFilled              = "Filled"
	LabelHardCap             = "Hard Cap"
	LabelInvestmentType      = "Investment type"
	LabelFinancialInstrument = "Financial instrument"
	LabelAssetClass          = "Asset class"
	LabelDistribution        = "Distribution"
	LabelEndsIn              = "Ends in"
	LabelMinInvestment       = "Min. Investment"
)

// Overview renders the summary card.
func (b *Builder) Overview(p *project.MasterProject) Overview {
	var o Overview
	add := func(label, value string) {
		if value != "" {
			o.Entries = append(o.Entries, Entry{Label: label, Value: value, Kind: KindText})
		}
	}
	currency := string(p.DefaultCurrency)

	if fund, ok := p.Attr(project.FundProjectKey); ok {
		if m, ok := fund.(map[string]any); ok && !format.Empty(m[catalog.KeyExpectedIRR]) {
			add(LabelExpectedIRR, format.String(m[catalog.KeyExpectedIRR]))
		}
	}

	if p.IsPrimaryMarket() && p.HardCap != 0 {
		pct := mathutil.PercentFilled(p.HardCap, p.AvailableBalance)
		o.PercentFilled = &pct
		o.HardCap = format.Currency(p.HardCap, currency)
		add(LabelFilled, format.Integer(pct)+" % filled")
		add(LabelHardCap, o.HardCap)
	}

	if p.InvestmentGroup != "" {
		add(LabelInvestmentType, listing.DisplayName(string(p.InvestmentGroup)))
	}
	if p.InvestmentType != "" {
		add(LabelFinancialInstrument, listing.InstrumentName(p.InvestmentType))
	}
	if p.ProjectListingType != "" && p.ProjectListingType != listing.FundingProject {
		add(LabelAssetClass, listing.DisplayName(string(p.ProjectListingType)))
	}
	if p.ProjectListingMarketType != "" {
		add(LabelDistribution, listing.DisplayName(string(p.ProjectListingMarketType)))
	}
	if p.FundRaisingExpireInDays > 0 {
		add(LabelEndsIn, strconv.Itoa(p.FundRaisingExpireInDays)+" "+constants.UnitDays)
	}
	if p.IsPrimaryMarket() && p.MinimumInvestmentValue != 0 {
		add(LabelMinInvestment, format.Currency(p.MinimumInvestmentValue, currency))
	}

	o.DeckURL = p.Documents.URL(catalog.DocSummaryBusinessDeck, b.domain)
	return o
}

// Funding renders the fundraising figures of a non-fund project.
func (b *Builder) Funding(p *project.MasterProject) (Section, bool) {
	if p.IsFund() {
		return Section{}, false
	}
	currency := string(p.DefaultCurrency)
	s := Section{Title: "Funding Info"}
	add := func(key, label string, v float64, render func(float64) string) {
		if v != 0 {
			s.Entries = append(s.Entries, Entry{Key: key, Label: label, Value: render(v), Kind: KindText})
		}
	}

	add(catalog.KeyFundraisingPeriodInDays, "Fundraising period", p.FundraisingPeriodInDays, func(v float64) string {
		return format.Period(v, constants.UnitDays)
	})
	add(catalog.KeySoftCap, "Fundraising size (Soft cap)", p.SoftCap, func(v float64) string {
		return format.Currency(v, currency)
	})
	add(catalog.KeyHardCap, "Fundraising size (Hard cap)", p.HardCap, func(v float64) string {
		return format.Currency(v, currency)
	})
	add(catalog.KeyMinimumNumberOfUnit, "Min. number of investment units", p.MinimumNumberOfUnit, format.Integer)

	return s, len(s.Entries) > 0
}

// Contact renders who to reach about the project.
func (b *Builder) Contact(p *project.MasterProject) (Section, bool) {
	s := Section{Category: listing.ContactInfo, Title: "Contact Info"}
	for _, e := range []Entry{
		{Key: catalog.KeyContactName, Label: "Contact", Value: p.ContactName, Kind: KindText},
		{Key: catalog.KeyPhoneNumber, Label: "Phone number", Value: p.PhoneNumber, Kind: KindPhone},
		{Key: catalog.KeyEmail, Label: "Email", Value: p.Email, Kind: KindEmail},
	} {
		if e.Value != "" {
			s.Entries = append(s.Entries, e)
		}
	}
	return s, len(s.Entries) > 0
}

// skippedSlots never appear in the document list.
var skippedSlots = map[string]bool{
	catalog.DocProjectPicture: true,
	"uuid":                    true,
	"documentJson":            true,
}

// Documents lists the filled document slots in fixture order. It returns nil
// when the project has no documents at all.
func (b *Builder) Documents(p *project.MasterProject) []Document {
	bag := p.Documents
	if !bag.HasAny() {
		return nil
	}
	var docs []Document
	for _, slot := range bag.Slots() {
		if skippedSlots[slot] || !bag.Present(slot) {
			continue
		}
		path := bag.Path(slot)
		if path == "" {
			continue
		}
		docs = append(docs, Document{
			Slot:        slot,
			Title:       bag.Title(slot),
			Description: project.DocumentDescription(slot),
			Path:        path,
			URL:         bag.URL(slot, b.domain),
		})
	}
	return docs
}
