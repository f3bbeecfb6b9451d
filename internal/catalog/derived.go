package catalog

// Exclusion sets shared by the derivations below.
var (
	// fundraisingKeys only apply while a primary offering is raising.
	fundraisingKeys = []string{
		KeySoftCap, KeySoftCapCurrency, KeyHardCap, KeyHardCapCurrency,
		KeyMinimumNumberOfUnit, KeyTransferToSecondaryMarket,
		KeyFundraisingPeriodInDays, KeyFundraisingTime,
	}

	// debtOnlyKeys describe interest bearing instruments and are dropped for equity.
	debtOnlyKeys = []string{
		KeyEarlyRedemptionDate, KeyInterestPerAnnum, KeyMaturity, KeyMaturityTime,
		KeyPaymentPeriodicity, KeyPaymentPeriodicityTime, KeyTransferToSecondaryMarket,
	}

	// issuerBankKeys are only collected for primary offerings.
	issuerBankKeys = []string{KeyIssuerBankEmail, KeyIssuerBank}
)

// Debt, real estate, secondary market.
var (
	debtRESMGeneral = debtREPMGeneral.Without(issuerBankKeys...)
	debtRESMAsset   = debtREPMAsset.Without(KeyLevelOfUrbanization).
			With(field("Urbanization Level", KeyUrbanizationLevel, Select))
	debtRESMKPI          = debtREPMKPI.Clone()
	debtRESMInvestment   = debtREPMInvestment.Without(fundraisingKeys...).With(secondaryMarketSpecific...)
	debtRESMNonFinancial = debtREPMNonFinancial.Clone()
	debtRESMDocuments    = debtREPMDocuments.Without(DocKYCDocumentsRequired, DocSubscriptionContract)
)

// Debt, private equity.
var (
	debtPEPMGeneral    = debtREPMGeneral.Clone()
	debtPEPMInvestment = debtREPMInvestment.Without(KeyTransferToSecondaryMarket).
				With(privateEquityInvestmentSpecific...).
				With(transferToSecondaryMarket)

	debtPESMGeneral    = debtRESMGeneral.Clone()
	debtPESMBusiness   = debtPEPMBusiness.Clone()
	debtPESMKPI        = debtPEPMKPI.Clone()
	debtPESMInvestment = debtRESMInvestment.With(privateEquityInvestmentSpecific...)
	debtPESMDocuments  = debtPEPMDocuments.Without(DocSubscriptionContract)
)

// Equity, real estate.
var (
	equityREPMGeneral    = debtREPMGeneral.Clone()
	equityREPMAsset      = debtREPMAsset.Clone()
	equityREPMKPI        = debtREPMKPI.Clone()
	equityREPMInvestment = debtREPMInvestment.Without(debtOnlyKeys...).
				With(equityInvestmentAdditions...).
				With(transferToSecondaryMarket)
	equityREPMNonFinancial = debtREPMNonFinancial.Clone()
	equityREPMDocuments    = debtREPMDocuments.Clone()

	equityRESMGeneral      = debtRESMGeneral.Clone()
	equityRESMAsset        = debtRESMAsset.Clone()
	equityRESMKPI          = debtRESMKPI.Clone()
	equityRESMNonFinancial = equityREPMNonFinancial.Clone()
	equityRESMDocuments    = debtRESMDocuments.Clone()
)

// Equity, private equity.
var (
	equityPEPMGeneral    = debtPEPMGeneral.Clone()
	equityPEPMBusiness   = debtPEPMBusiness.Without(KeyCompanyAgeTime)
	equityPEPMKPI        = debtPEPMKPI.Clone()
	equityPEPMInvestment = equityREPMInvestment.Without(KeyTransferToSecondaryMarket).
				With(privateEquityInvestmentSpecific...).
				With(transferToSecondaryMarket)
	equityPEPMDocuments = debtPEPMDocuments.Clone()

	equityPESMGeneral   = debtPESMGeneral.Clone()
	equityPESMBusiness  = debtPESMBusiness.Clone()
	equityPESMKPI       = debtPESMKPI.Clone()
	equityPESMDocuments = debtPESMDocuments.Without(DocSubscriptionContract)
)

// Funds.
var (
	fundSMGeneral    = fundPMGeneral.Clone()
	fundSMKPI        = fundPMKPI.Clone()
	fundSMInvestment = fundPMInvestment.Clone()
	fundSMDocuments  = fundPMDocuments.Without(DocSubscriptionContract)
)

// Debt, art.
var (
	debtArtPMGeneral = debtREPMGeneral.Clone()

	debtArtSMGeneral    = debtRESMGeneral.Clone()
	debtArtSMAsset      = debtArtPMAsset.Clone()
	debtArtSMKPI        = ltvOnlyKPI.Clone()
	debtArtSMInvestment = debtRESMInvestment.Clone()
	debtArtSMDocuments  = debtArtPMDocuments.Without(DocKYCDocumentsRequired, DocSubscriptionContract)
)

// Infrastructure, also used for commodities.
var (
	debtInfraPMGeneral   = debtREPMGeneral.Clone()
	debtInfraPMDocuments = debtArtPMDocuments.Clone()

	debtInfraSMGeneral    = debtRESMGeneral.Clone()
	debtInfraSMAsset      = debtInfraPMAsset.Clone()
	debtInfraSMKPI        = ltvOnlyKPI.Clone()
	debtInfraSMInvestment = debtInfraPMInvestment.Without(fundraisingKeys...).With(secondaryMarketSpecific...)
	debtInfraSMDocuments  = debtArtPMDocuments.Without(DocKYCDocumentsRequired, DocSubscriptionContract)

	equityInfraPMGeneral    = debtInfraPMGeneral.Clone()
	equityInfraPMAsset      = debtInfraPMAsset.Clone()
	equityInfraPMKPI        = ltvOnlyKPI.Clone()
	equityInfraPMInvestment = debtInfraSMInvestment.Without(debtOnlyKeys...).
				With(equityInvestmentAdditions...).
				With(transferToSecondaryMarket)
	equityInfraPMDocuments = debtREPMDocuments.Clone()

	equityInfraSMGeneral    = equityRESMGeneral.Clone()
	equityInfraSMAsset      = equityInfraPMAsset.Clone()
	equityInfraSMKPI        = equityInfraPMKPI.Clone()
	equityInfraSMInvestment = equityInfraPMInvestment.Without(fundraisingKeys...)
	equityInfraSMDocuments  = equityRESMDocuments.Without(DocKYCDocumentsRequired, DocSubscriptionContract)
)
