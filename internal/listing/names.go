package listing

var displayNames = map[string]string{
	string(Primary):                  "Primary Market",
	string(Secondary):                "Secondary Market",
	string(Debt):                     "Debt Instrument",
	string(Equity):                   "Equity Instrument",
	string(ConvertibleLoan):          "Convertible Loan",
	string(Fund):                     "Fund",
	string(ArtProject):               "Art",
	string(HedgeFund):                "Hedge Fund / Open-ended Fund",
	string(DedicatedFund):            "Dedicated Fund / Closed-ended Fund",
	string(CollectiveInvestment):     "Collective Investment",
	string(DirectInvestment):         "Direct Investment",
	string(Infrastructure):           "Infrastructure",
	string(Commodities):              "Commodities",
	string(OtherRealAssets):          "Other real assets",
	string(RealEstate):               "Real estate",
	string(PrivateEquity):            "Private companies",
	string(FundingProject):           "Fund Instrument",
	string(AssetInfo):                "Asset information",
	string(BusinessInfo):             "Business information",
	string(ContactInfo):              "Contact info",
	string(Documents):                "Documents",
	string(FundStrategy):             "Fund Strategy",
	string(GeneralInfo):              "General Info",
	string(GuaranteeLevels):          "Guarantee levels",
	string(InvestmentInfo):           "Investment info",
	string(KeyPerformanceIndicators): "Key performance indicators",
	string(NonFinancialInfo):         "Non financial information",
}

// DisplayName returns the marketing label of any classification value or
// category name, or "" when the value has no label.
func DisplayName(value string) string {
	return displayNames[value]
}

// InstrumentName returns the short instrument label shown in the overview.
func InstrumentName(t InvestmentType) string {
	switch t {
	case Equity:
		return "Equity"
	case Debt:
		return "Debt"
	case ConvertibleLoan:
		return "Convertible Loan"
	case Fund:
		return "Fund"
	}
	return ""
}
