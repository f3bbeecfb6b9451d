package listing

// Category groups project inputs into the steps and sections they are edited
// and shown in.
type Category string

const (
	Core                     Category = "core"
	Campaign                 Category = "campaign"
	GeneralInfo              Category = "generalInfo"
	AssetInfo                Category = "assetInfo"
	BusinessInfo             Category = "businessInfo"
	KeyPerformanceIndicators Category = "keyPerformanceIndicators"
	InvestmentInfo           Category = "investmentInfo"
	GuaranteeLevels          Category = "guaranteeLevels"
	Documents                Category = "documents"
	ContactInfo              Category = "contactInfo"
	FundStrategy             Category = "fundStrategy"
	NonFinancialInfo         Category = "nonFinancialInfo"
)

// Categories lists every category in input step order.
var Categories = []Category{
	Core, Campaign, GeneralInfo, AssetInfo, BusinessInfo, KeyPerformanceIndicators,
	InvestmentInfo, GuaranteeLevels, Documents, ContactInfo, FundStrategy, NonFinancialInfo,
}

var categoryTitles = map[Category]string{
	Core:                     "Preliminary information",
	Campaign:                 "Market campaign",
	GeneralInfo:              "General Information",
	AssetInfo:                "Asset Information",
	BusinessInfo:             "Business Information",
	KeyPerformanceIndicators: "KPI's",
	InvestmentInfo:           "Investment Information",
	GuaranteeLevels:          "Guarantee Levels",
	Documents:                "Documents",
	ContactInfo:              "Contact Information",
	FundStrategy:             "Fund Strategy",
	NonFinancialInfo:         "Non Financial Information",
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Title returns the step title of the category, or "" for unknown categories.
func (c Category) Title() string {
	return categoryTitles[c]
}

var apiGroups = map[string]Category{
	"PROJECT_GENERAL_INFO":      GeneralInfo,
	"ASSET_INFO":                AssetInfo,
	"BUSINESS_INFO":             BusinessInfo,
	"KEY_PERFORMANCE_INDICATOR": KeyPerformanceIndicators,
	"INVESTMENT_INFO":           InvestmentInfo,
	"GUARANTEE_LEVEL":           GuaranteeLevels,
	"PROJECT_DOCUMENT":          Documents,
	"LEGAL_INFO":                InvestmentInfo,
	"CONTACT_INFO":              ContactInfo,
	"FUND_STRATEGY":             FundStrategy,
	"FUNDING_INFO":              InvestmentInfo,
	"NON_FINANCIAL_INFO":        NonFinancialInfo,
	"DOCUMENT":                  Documents,
	"PROJECT_DETAIL_COMPLETED":  GeneralInfo,
}

// CategoryFromAPI maps a backend step name to the category it is shown in.
// PROJECT_UPLOADED and unknown names have no category.
func CategoryFromAPI(step string) (Category, bool) {
	c, ok := apiGroups[step]
	return c, ok
}
