package catalog

import "github.com/iwvelando/teaser/internal/listing"

// FieldLists maps each category that applies to a classification to its
// ordered field list.
type FieldLists map[listing.Category]List

// Clone returns a deep copy of the lists.
func (fl FieldLists) Clone() FieldLists {
	if fl == nil {
		return nil
	}
	out := make(FieldLists, len(fl))
	for c, l := range fl {
		out[c] = l.Clone()
	}
	return out
}

// Categories returns the categories present, in input step order.
func (fl FieldLists) Categories() []listing.Category {
	var out []listing.Category
	for _, c := range listing.Categories {
		if _, ok := fl[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Field looks up key within category.
func (fl FieldLists) Field(category listing.Category, key string) (Field, bool) {
	return fl[category].Find(key)
}

type (
	byMarket  map[listing.MarketType]FieldLists
	byListing map[listing.ListingType]byMarket
	byType    map[listing.InvestmentType]byListing
	byGroup   map[listing.InvestmentGroup]byType
)

func lists(pairs ...any) FieldLists {
	fl := make(FieldLists, len(pairs)/2+2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fl[pairs[i].(listing.Category)] = pairs[i+1].(List)
	}
	fl[listing.ContactInfo] = contactInputs
	fl[listing.Core] = coreInputs
	return fl
}

func withGuarantees(fl FieldLists) FieldLists {
	fl[listing.GuaranteeLevels] = guaranteeInputs
	return fl
}

var (
	debtInfraMarkets = byMarket{
		listing.Primary: withGuarantees(lists(
			listing.GeneralInfo, debtInfraPMGeneral,
			listing.AssetInfo, debtInfraPMAsset,
			listing.KeyPerformanceIndicators, ltvOnlyKPI,
			listing.InvestmentInfo, debtInfraPMInvestment,
			listing.Documents, debtInfraPMDocuments,
		)),
		listing.Secondary: withGuarantees(lists(
			listing.GeneralInfo, debtInfraSMGeneral,
			listing.AssetInfo, debtInfraSMAsset,
			listing.KeyPerformanceIndicators, debtInfraSMKPI,
			listing.InvestmentInfo, debtInfraSMInvestment,
			listing.Documents, debtInfraSMDocuments,
		)),
	}

	equityInfraMarkets = byMarket{
		listing.Primary: lists(
			listing.GeneralInfo, equityInfraPMGeneral,
			listing.AssetInfo, equityInfraPMAsset,
			listing.KeyPerformanceIndicators, equityInfraPMKPI,
			listing.InvestmentInfo, equityInfraPMInvestment,
			listing.Documents, equityInfraPMDocuments,
		),
		listing.Secondary: lists(
			listing.GeneralInfo, equityInfraSMGeneral,
			listing.AssetInfo, equityInfraSMAsset,
			listing.KeyPerformanceIndicators, equityInfraSMKPI,
			listing.InvestmentInfo, equityInfraSMInvestment,
			listing.Documents, equityInfraSMDocuments,
		),
	}

	fundMarkets = byMarket{
		listing.Primary: lists(
			listing.GeneralInfo, fundPMGeneral,
			listing.FundStrategy, fundPMStrategy,
			listing.KeyPerformanceIndicators, fundPMKPI,
			listing.InvestmentInfo, fundPMInvestment,
			listing.Documents, fundPMDocuments,
		),
		listing.Secondary: lists(
			listing.GeneralInfo, fundSMGeneral,
			listing.FundStrategy, fundSMStrategy,
			listing.KeyPerformanceIndicators, fundSMKPI,
			listing.InvestmentInfo, fundSMInvestment,
			listing.Documents, fundSMDocuments,
		),
	}
)

var projectsMapping = byGroup{
	listing.DirectInvestment: byType{
		listing.Debt: byListing{
			listing.RealEstate: byMarket{
				listing.Primary: withGuarantees(lists(
					listing.GeneralInfo, debtREPMGeneral,
					listing.AssetInfo, debtREPMAsset,
					listing.KeyPerformanceIndicators, debtREPMKPI,
					listing.InvestmentInfo, debtREPMInvestment,
					listing.NonFinancialInfo, debtREPMNonFinancial,
					listing.Documents, debtREPMDocuments,
				)),
				listing.Secondary: withGuarantees(lists(
					listing.GeneralInfo, debtRESMGeneral,
					listing.AssetInfo, debtRESMAsset,
					listing.KeyPerformanceIndicators, debtRESMKPI,
					listing.InvestmentInfo, debtRESMInvestment,
					listing.NonFinancialInfo, debtRESMNonFinancial,
					listing.Documents, debtRESMDocuments,
				)),
			},
			listing.PrivateEquity: byMarket{
				listing.Primary: withGuarantees(lists(
					listing.GeneralInfo, debtPEPMGeneral,
					listing.BusinessInfo, debtPEPMBusiness,
					listing.KeyPerformanceIndicators, debtPEPMKPI,
					listing.InvestmentInfo, debtPEPMInvestment,
					listing.Documents, debtPEPMDocuments,
				)),
				listing.Secondary: withGuarantees(lists(
					listing.GeneralInfo, debtPESMGeneral,
					listing.BusinessInfo, debtPESMBusiness,
					listing.KeyPerformanceIndicators, debtPESMKPI,
					listing.InvestmentInfo, debtPESMInvestment,
					listing.Documents, debtPESMDocuments,
				)),
			},
			listing.ArtProject: byMarket{
				listing.Primary: withGuarantees(lists(
					listing.GeneralInfo, debtArtPMGeneral,
					listing.AssetInfo, debtArtPMAsset,
					listing.KeyPerformanceIndicators, ltvOnlyKPI,
					listing.InvestmentInfo, debtArtPMInvestment,
					listing.Documents, debtArtPMDocuments,
				)),
				listing.Secondary: withGuarantees(lists(
					listing.GeneralInfo, debtArtSMGeneral,
					listing.AssetInfo, debtArtSMAsset,
					listing.KeyPerformanceIndicators, debtArtSMKPI,
					listing.InvestmentInfo, debtArtSMInvestment,
					listing.Documents, debtArtSMDocuments,
				)),
			},
			listing.Infrastructure: debtInfraMarkets,
			listing.Commodities:    debtInfraMarkets,
		},
		listing.Equity: byListing{
			listing.RealEstate: byMarket{
				listing.Primary: lists(
					listing.GeneralInfo, equityREPMGeneral,
					listing.AssetInfo, equityREPMAsset,
					listing.KeyPerformanceIndicators, equityREPMKPI,
					listing.InvestmentInfo, equityREPMInvestment,
					listing.NonFinancialInfo, equityREPMNonFinancial,
					listing.Documents, equityREPMDocuments,
				),
				listing.Secondary: lists(
					listing.GeneralInfo, equityRESMGeneral,
					listing.AssetInfo, equityRESMAsset,
					listing.KeyPerformanceIndicators, equityRESMKPI,
					listing.InvestmentInfo, equityRESMInvestment,
					listing.NonFinancialInfo, equityRESMNonFinancial,
					listing.Documents, equityRESMDocuments,
				),
			},
			listing.PrivateEquity: byMarket{
				listing.Primary: lists(
					listing.GeneralInfo, equityPEPMGeneral,
					listing.BusinessInfo, equityPEPMBusiness,
					listing.KeyPerformanceIndicators, equityPEPMKPI,
					listing.InvestmentInfo, equityPEPMInvestment,
					listing.Documents, equityPEPMDocuments,
				),
				listing.Secondary: lists(
					listing.GeneralInfo, equityPESMGeneral,
					listing.BusinessInfo, equityPESMBusiness,
					listing.KeyPerformanceIndicators, equityPESMKPI,
					listing.InvestmentInfo, equityPESMInvestment,
					listing.Documents, equityPESMDocuments,
				),
			},
			listing.Infrastructure: equityInfraMarkets,
			listing.Commodities:    equityInfraMarkets,
		},
	},
	listing.CollectiveInvestment: byType{
		listing.Fund: byListing{
			listing.HedgeFund:     fundMarkets,
			listing.DedicatedFund: fundMarkets,
		},
	},
}

// Resolve returns a copy of the field lists configured for the
// classification. The second result is false when any level of the
// classification has no entry, including empty or unknown values.
func Resolve(group listing.InvestmentGroup, typ listing.InvestmentType, lt listing.ListingType, market listing.MarketType) (FieldLists, bool) {
	fl, ok := projectsMapping[group][typ][lt][market]
	if !ok {
		return nil, false
	}
	return fl.Clone(), true
}

// ResolveClassification is Resolve for a Classification value.
func ResolveClassification(c listing.Classification) (FieldLists, bool) {
	return Resolve(c.Group, c.Type, c.Listing, c.Market)
}

// CampaignFields returns the market campaign inputs.
func CampaignFields() List {
	return campaignInputs.Clone()
}

// CoreFields returns the preliminary inputs shared by every project.
func CoreFields() List {
	return coreInputs.Clone()
}

// ContactFields returns the contact inputs shared by every project.
func ContactFields() List {
	return contactInputs.Clone()
}

// GuaranteeFields returns the guarantee inputs used by debt listings.
func GuaranteeFields() List {
	return guaranteeInputs.Clone()
}
