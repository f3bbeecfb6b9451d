// Package listing holds the classification vocabulary of a marketplace project:
// investment group, investment type, listing type, market type, currency and
// the input categories a project's attributes are grouped under.
package listing

// InvestmentGroup is the first dimension of a project's classification.
type InvestmentGroup string

const (
	DirectInvestment     InvestmentGroup = "DIRECT_INVESTMENT"
	CollectiveInvestment InvestmentGroup = "COLLECTIVE_INVESTMENT"
)

// InvestmentGroups lists every investment group in display order.
var InvestmentGroups = []InvestmentGroup{CollectiveInvestment, DirectInvestment}

// Valid reports whether g is a known investment group.
func (g InvestmentGroup) Valid() bool {
	return g == DirectInvestment || g == CollectiveInvestment
}

// InvestmentType is the financial instrument of a project.
type InvestmentType string

const (
	Debt            InvestmentType = "DEBT"
	Equity          InvestmentType = "EQUITY"
	Fund            InvestmentType = "FUND"
	ConvertibleLoan InvestmentType = "CONVERTIBLE_LOAN"
)

// InvestmentTypes lists every investment type, disabled ones included.
var InvestmentTypes = []InvestmentType{Debt, Equity, Fund, ConvertibleLoan}

// Valid reports whether t is a known investment type.
func (t InvestmentType) Valid() bool {
	switch t {
	case Debt, Equity, Fund, ConvertibleLoan:
		return true
	}
	return false
}

// Disabled reports whether t is known but not offered.
func (t InvestmentType) Disabled() bool {
	return t == ConvertibleLoan
}

// ListingType is the asset class of a project.
type ListingType string

const (
	RealEstate      ListingType = "REAL_ESTATE"
	PrivateEquity   ListingType = "PRIVATE_EQUITY"
	ArtProject      ListingType = "ART_PROJECT"
	Infrastructure  ListingType = "INFRASTRUCTURE"
	Commodities     ListingType = "COMMODITIES"
	OtherRealAssets ListingType = "OTHER_REAL_ASSETS"
	HedgeFund       ListingType = "HEDGE_FUND"
	DedicatedFund   ListingType = "DEDICATED_FUND"

	// FundingProject is kept for old records; DedicatedFund and HedgeFund replace it.
	FundingProject ListingType = "FUNDING_PROJECT"
)

// ListingTypes lists every listing type, disabled and deprecated ones included.
var ListingTypes = []ListingType{
	RealEstate, PrivateEquity, Infrastructure, ArtProject, Commodities,
	OtherRealAssets, HedgeFund, DedicatedFund, FundingProject,
}

// Valid reports whether l is a known listing type.
func (l ListingType) Valid() bool {
	for _, known := range ListingTypes {
		if l == known {
			return true
		}
	}
	return false
}

// Disabled reports whether l is known but not offered for new listings.
func (l ListingType) Disabled() bool {
	return l == OtherRealAssets || l == FundingProject
}

// MarketType is the distribution market of a project.
type MarketType string

const (
	Primary   MarketType = "PRIMARY"
	Secondary MarketType = "SECONDARY"
)

// MarketTypes lists both market types.
var MarketTypes = []MarketType{Primary, Secondary}

// Valid reports whether m is a known market type.
func (m MarketType) Valid() bool {
	return m == Primary || m == Secondary
}

// Currency is an ISO 4217 code accepted for project amounts.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	CHF Currency = "CHF"
	GBP Currency = "GBP"
)

// Currencies lists the accepted currencies.
var Currencies = []Currency{USD, EUR, CHF, GBP}

// Valid reports whether c is an accepted currency.
func (c Currency) Valid() bool {
	switch c {
	case USD, EUR, CHF, GBP:
		return true
	}
	return false
}

// Classification is the four dimensional key selecting the fields of a project.
type Classification struct {
	Group   InvestmentGroup `json:"investmentGroup"`
	Type    InvestmentType  `json:"investmentType"`
	Listing ListingType     `json:"projectListingType"`
	Market  MarketType      `json:"projectListingMarketType"`
}

// Complete reports whether every dimension is set.
func (c Classification) Complete() bool {
	return c.Group != "" && c.Type != "" && c.Listing != "" && c.Market != ""
}
