package catalog

import (
	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/pkg/constants"
)

var (
	catCampaign   = string(listing.Campaign)
	catAsset      = string(listing.AssetInfo)
	catBusiness   = string(listing.BusinessInfo)
	catKPI        = string(listing.KeyPerformanceIndicators)
	catInvestment = string(listing.InvestmentInfo)
	catStrategy   = string(listing.FundStrategy)
)

const (
	increasableAfterApproval = "This field will only be increasable after approval"
	fixedAfterApproval       = "This field will not be editable after approval"
)

var secondaryMarketSpecific = List{
	field("Last price on Secondary Market", KeyLastPriceOnSecondaryMarket, Currency, required(),
		sub(catInvestment, KeyLastPriceOnSecondaryMarketCurrency, "Currency")),
	hidden("Last price on Secondary Market Currency", KeyLastPriceOnSecondaryMarketCurrency),
}

var coreInputs = List{
	field("ISIN number", KeyISINNumber, Text,
		tooltip("This must be unique, if not provided a random ISIN number will be temporary assigned to your deal.")),
	field("Investment type", KeyInvestmentGroup, Select, required()),
	field("Instrument", KeyInvestmentType, Select, required()),
	field("Listing asset type", KeyProjectListingType, Select, required()),
	field("Distribution / Market type", KeyProjectListingMarketType, Select, required()),
	field("Want to create a campaign for this project?", KeyCreateCampaign, Checkbox,
		tooltip("Creating a campaign will allow you to showcase a preview of your deal and get feedback from the community sooner. This can be changed later.")),
	field("List as private project", KeyPrivateProject, Checkbox,
		tooltip("Listing a project as private can be helpful if you only want to list your deals without anyone having access to it, or to only allow specific users to view it. This can be changed later.")),
}

var campaignInputs = List{
	field("Campaign Name", KeyCampaignName, Text, required()),
	field("Description", KeyDescription, TextArea, required()),
	field("Location", KeyLocation, Text, required()),
	field("Issue Date", KeyIssueDate, Date, required()),
	field("Amount Target", KeyTargetAmount, Currency, required(),
		sub(catCampaign, KeyTargetAmountCurrency, "Currency")),
	hidden("Target Amount Currency", KeyTargetAmountCurrency),
	field("Interest / Expected IRR", KeyExpectedIRR, Text, required()),
	field("Campaign Expire (N° of days)", KeyCampaignExpire, Number, required(),
		tooltip("Amount of days your campaign will be visible.")),
	field("Maturity / Exit date", KeyMaturityExitDate, Date, required()),
	field("Campaign Picture", KeyCampaignPicture, File, required(), accept(acceptImages...)),
	field("Term sheet", DocTermSheet, File, required(), accept(acceptImagesPDF...)),
}

var privateEquityInvestmentSpecific = List{
	field("Funding series", KeyFundingSeries, Select, required()),
	field("Main provision of the Shareholders' agreement", KeyMainProvision, TextArea, helperTitle("Legal")),
	field("Corporate governance rules", KeyCorporateRules, Text),
	field("Exit provisions", KeyExitProvisions, Text),
}

var contactInputs = List{
	field("Contact Name", KeyContactName, Text),
	field("Contact Email", KeyEmail, Email),
	field("Phone Number", KeyPhoneNumber, Phone),
}

var guaranteeInputs = List{
	field("Guarantee Type", KeyGuaranteeType, Select),
	field("Guarantee Rank", KeyGuaranteeRank, Select),
	field("Guarantee Description", KeyGuaranteeDescription, Text),
	field("Guarantee Agreements", KeyGuaranteeAgreements, File, accept("text/*", "application/*")),
}

// Debt, real estate, primary market: the reference lists most others derive from.

var debtREPMGeneral = List{
	field("Project Name", KeyProjectName, Text, required()),
	field("Project Description", KeyProjectDescription, TextArea, required()),
	field("Issuer", KeyIssuer, Text, required()),
	field("Company Name", KeyCompanyName, Text),
	field("Issuer’s bank", KeyIssuerBank, Text, required()),
	field("Issuer’s bank email", KeyIssuerBankEmail, Email, required()),
}

var debtREPMAsset = List{
	field("Asset Description", KeyAssetDescription, TextArea, required()),
	field("Asset purpose", KeyAssetPurpose, Select, required()),
	field("Estimated market value", KeyEstimatedMarketValue, Currency, required(),
		sub(catAsset, KeyEstimatedMarketValueCurrency, "Currency")),
	hidden("Estimated market value Currency", KeyEstimatedMarketValueCurrency),
	field("Country", KeyCountry, Country, required()),
	field("Street", KeyStreet, Text, required()),
	field("City", KeyCity, Text, required()),
	field("Investment purpose", KeyInvestmentPurpose, Select, required()),
	field("Property area (SQM)", KeyPropertyArea, Number),
	field("Current status of the asset", KeyAssetStatus, TextArea, required()),
	field("Operation of asset", KeyOperationOfAsset, Select, required()),
	field("Level of urbanization", KeyLevelOfUrbanization, Select, required()),
	field("Miscellaneous", KeyMiscellaneous, Text, required()),
}

var debtREPMKPI = List{
	field("Loan to value ratio (LTV)", KeyLoanToValueRatio, Number, percent(), helperTitle("Company")),
	field("Occupation rate", KeyOccupationRate, Number, percent(), helperTitle("Asset")),
	field("CapEX/OpEX requirement", KeyCapExOpExRequirement, Text),
	field("Weighted average lease expiry", KeyWeightedAverage, PeriodicityTime,
		sub(catKPI, KeyWeightedAverageTime, "Time"), defaultSub(constants.UnitYears)),
	hidden("Weighted average lease expiry time", KeyWeightedAverageTime),
	field("Miscellaneous", KeyMiscellaneous, Text),
}

var debtREPMInvestment = List{
	field("Issuer jurisdiction", KeyIssuerJurisdiction, Country, required()),
	field("Structurer/Arranger", KeyStructureOrArranger, Text, required()),
	field("Paying and settlement agent", KeyPayingAndSettlementAgent, Text, required()),
	field("Eligible investors", KeyEligibleInvestors, Text),
	field("Issue date", KeyIssueDate, Date, required()),
	field("Denomination (Face value per unit)", KeyFaceValuePerUnit, Currency, required(),
		sub(catInvestment, KeyFaceValuePerUnitCurrency, "Currency"), helperText(fixedAfterApproval)),
	hidden("Denomination (Face value per unit) currency", KeyFaceValuePerUnitCurrency),
	field("Interest p.a", KeyInterestPerAnnum, Text, required()),
	field("Interest payment periodicity", KeyPaymentPeriodicity, PeriodicityTime, required(),
		sub(catInvestment, KeyPaymentPeriodicityTime, "Time"), defaultSub(constants.UnitMonths)),
	hidden("Interest payment periodicity Time", KeyPaymentPeriodicityTime),
	field("Maturity", KeyMaturity, PeriodicityTime, required(),
		sub(catInvestment, KeyMaturityTime, "Time"), defaultSub(constants.UnitMonths)),
	hidden("Maturity Time", KeyMaturityTime),
	field("Early redemption date", KeyEarlyRedemptionDate, Date),
	field("Fundraising period In days", KeyFundraisingPeriodInDays, PeriodicityTime, required(),
		sub(catInvestment, KeyFundraisingTime, "Time"), defaultSub(constants.UnitDays),
		helperTitle("Funding info"), helperText(increasableAfterApproval)),
	hidden("Fundraising Time", KeyFundraisingTime),
	field("Fundraising size (Soft cap)", KeySoftCap, Currency, required(),
		sub(catInvestment, KeySoftCapCurrency, " "), helperText(increasableAfterApproval)),
	hidden("Fundraising size (Soft cap) Currency", KeySoftCapCurrency),
	field("Fundraising size (Hard cap)", KeyHardCap, Currency, required(),
		sub(catInvestment, KeyHardCapCurrency, " "), helperText(increasableAfterApproval)),
	hidden("Fundraising size (Hard cap) Currency", KeyHardCapCurrency),
	field("Minimum number of investment units", KeyMinimumNumberOfUnit, Number, required()),
	field("Miscellaneous", KeyMiscellaneous, Text),
	transferToSecondaryMarket,
}

var transferToSecondaryMarket = field("Transfer to secondary market", KeyTransferToSecondaryMarket, Checkbox)

var debtREPMNonFinancial = List{
	field("Area dynamic", KeyAreaDynamic, Select),
	field("Social contribution", KeySocialContributionOfTheAsset, Select),
	field("Asset economy impact", KeyAssetEconomyImpact, Select),
	field("Impact on environment", KeyImpactOfTheEnvironment, Select),
	field("Miscellaneous", KeyMiscellaneous, Text),
}

var debtREPMDocuments = List{
	field("Teaser", DocTeaser, File, helperTitle("Asset / Company / Project holder"), accept(acceptImagesPDF...)),
	field("Image of the project", DocProjectPicture, File, required(), accept(acceptImages...)),
	field("Summary business deck", DocSummaryBusinessDeck, File, accept(acceptImagesPDF...)),
	field("Financial statements available", DocFinancialStatement, File, accept(acceptDocuments...)),
	field("Tax/Legal Due diligence reports", DocTaxLegalDueDiligence, File, accept(acceptDocuments...)),
	field("Financial projections (Business plan)", DocFinancialProjections, File, accept(acceptDocuments...)),
	field("Project Holders' track records Resumes", DocTrackRecordsResumes, File, accept(acceptDocuments...)),
	field("Other Project Documentation", DocOtherProjectDocumentation, File, accept(acceptDocuments...)),
	field("Term sheet", DocTermSheet, File, required(), helperTitle("Financial"), accept(acceptImagesPDF...)),
	field("Subscription contract", DocSubscriptionContract, File, accept(acceptDocuments...)),
	field("Other relevant document (1)", DocOtherDocument1, File, accept(acceptDocuments...)),
	field("Other relevant document (2)", DocOtherDocument2, File, accept(acceptDocuments...)),
	field("Other relevant document (3)", DocOtherDocument3, File, accept(acceptDocuments...)),
	field("Certificate of incorporation of the SPV", DocCertificateOfIncorporation, File, helperTitle("Legal")),
	field("SPV by-laws", DocByLaws, File, accept(acceptDocuments...)),
	field("SPV shareholder agreements", DocShareHolderAgreement, File, accept(acceptDocuments...)),
	field("List of KYC documents required for suscribing investor", DocKYCDocumentsRequired, File, accept(acceptDocuments...)),
	field("Other legal document (1)", DocOtherLegalDocument1, File, accept(acceptDocuments...)),
	field("Other legal document (2)", DocOtherLegalDocument2, File, accept(acceptDocuments...)),
	field("Other legal document (3)", DocOtherLegalDocument3, File, accept(acceptDocuments...)),
}

// Private equity additions.

var debtPEPMBusiness = List{
	field("Business Description", KeyBusinessDescription, TextArea, required()),
	field("Company's years of existence", KeyCompanyAge, PeriodicityTime, required(),
		sub(catBusiness, KeyCompanyAgeTime, "Time"), defaultSub(constants.UnitYears)),
	hidden("Company age time", KeyCompanyAgeTime),
	field("Company's industry", KeyCompanyIndustry, Text, required()),
	field("Company Location", KeyCompanyLocation, Text, required()),
	field("Company's website", KeyCompanyWebsite, Text, required()),
	field("Industry trends", KeyIndustryTrends, Text),
	field("Managing team resume", KeyManagingTeamResume, TextArea),
	field("Number of employees", KeyNumberOfEmployee, Number),
	field("Miscellaneous", KeyMiscellaneous, Text),
}

var debtPEPMKPI = List{
	field("Company revenue", KeyCompanyRevenue, Currency,
		sub(catKPI, KeyCompanyRevenueCurrency, "Currency")),
	hidden("Company revenue Currency", KeyCompanyRevenueCurrency),
	field("Loan to value ratio (LTV)", KeyLoanToValueRatio, Number, percent()),
	field("EBITDA", KeyEbitdaRevenue, Number, percent()),
	field("Debt to equity ratio", KeyDebtToEquityRatio, Number, percent()),
	field("Current company valuation", KeyCurrentCompanyValuation, Currency,
		sub(catKPI, KeyCurrentCompanyValuationCurrency, "Currency")),
	hidden("Current company valuation Currency", KeyCurrentCompanyValuationCurrency),
	field("Miscellaneous", KeyMiscellaneous, Text),
}

var debtPEPMDocuments = List{
	field("Teaser", DocTeaser, File, helperTitle("Asset / Company / Project holder"), accept(acceptImagesPDF...)),
	field("Image of the project", DocProjectPicture, File, required(), accept(acceptImages...)),
	field("Summary business deck", DocSummaryBusinessDeck, File, accept(acceptDocuments...)),
	field("Financial statements available", DocFinancialStatement, File, accept(acceptDocuments...)),
	field("Tax/Legal Due diligence reports", DocTaxLegalDueDiligence, File, accept(acceptDocuments...)),
	field("Financial projections (Business plan)", DocFinancialProjections, File, accept(acceptDocuments...)),
	field("Project Holders' track records Resumes", DocTrackRecordsResumes, File, accept(acceptDocuments...)),
	field("Other Project Documentation", DocOtherProjectDocumentation, File, accept(acceptDocuments...)),
	field("Term sheet", DocTermSheet, File, required(), helperTitle("Financial"), accept(acceptImagesPDF...)),
	field("Subscription contract", DocSubscriptionContract, File, accept(acceptDocuments...)),
	field("Other relevant document (1)", DocOtherDocument1, File, accept(acceptDocuments...)),
	field("Other relevant document (2)", DocOtherDocument2, File, accept(acceptDocuments...)),
	field("Other relevant document (3)", DocOtherDocument3, File, accept(acceptDocuments...)),
	field("Certificate of incorporation of the SPV", DocCertificateOfIncorporation, File, helperTitle("Legal")),
	field("SPV by-laws", DocByLaws, File, accept(acceptDocuments...)),
	field("SPV shareholder agreements", DocShareHolderAgreement, File, accept(acceptDocuments...)),
	field("Cap table", DocCapTable, File, accept(acceptDocuments...)),
	field("News exposure", DocNewsExposure, File, accept(acceptDocuments...)),
	field("Other legal document (1)", DocOtherLegalDocument1, File, accept(acceptDocuments...)),
	field("Other legal document (2)", DocOtherLegalDocument2, File, accept(acceptDocuments...)),
	field("Other legal document (3)", DocOtherLegalDocument3, File, accept(acceptDocuments...)),
}

// Equity additions.

var equityInvestmentAdditions = List{
	field("Dividend and exit strategy", KeyDividendAndExitStrategy, TextArea),
	field("Expected Multiple of Investment Capital", KeyExpectedMultipleOfInvestmentCapital, TextArea),
	field("Expected IRR", KeyExpectedReturnPerAnnum, Text, placeholder("From __ % to __ %")),
}

var equityRESMInvestment = List{
	field("Issuer jurisdiction", KeyIssuerJurisdiction, Country, required()),
	field("Structurer/Arranger", KeyStructureOrArranger, Text, required()),
	field("Paying and settlement agent", KeyPayingAndSettlementAgent, Text, required()),
	field("Eligible investors", KeyEligibleInvestors, Text),
	field("Issue date", KeyIssueDate, Date, required()),
	field("Denomination (Face value per unit)", KeyFaceValuePerUnit, Currency, required(),
		sub(catInvestment, KeyFaceValuePerUnitCurrency, "Currency"), helperText(fixedAfterApproval)),
	hidden("Denomination (Face value per unit) currency", KeyFaceValuePerUnitCurrency),
	field("Dividend and exit strategy", KeyDividendAndExitStrategy, TextArea),
	field("Expected Multiple of Investment Capital", KeyExpectedMultipleOfInvestmentCapital, TextArea),
	field("Expected IRR", KeyExpectedReturnPerAnnum, Text, placeholder("From __ % to __ %")),
	field("Last price on Secondary Market", KeyLastPriceOnSecondaryMarket, Currency, required(),
		sub(catInvestment, KeyLastPriceOnSecondaryMarketCurrency, "Currency")),
	hidden("Last price on Secondary Market Currency", KeyLastPriceOnSecondaryMarketCurrency),
	field("Miscellaneous", KeyMiscellaneous, Text),
}

var equityPESMInvestment = List{
	field("Issuer jurisdiction", KeyIssuerJurisdiction, Country, required()),
	field("Structurer/Arranger", KeyStructureOrArranger, Text, required()),
	field("Paying and settlement agent", KeyPayingAndSettlementAgent, Text, required()),
	field("Eligible investors", KeyEligibleInvestors, Text),
	field("Funding series", KeyFundingSeries, Select, required()),
	field("Issue date", KeyIssueDate, Date, required()),
	field("Denomination (Face value per unit)", KeyFaceValuePerUnit, Currency, required(),
		sub(catInvestment, KeyFaceValuePerUnitCurrency, "Currency"), helperText(fixedAfterApproval)),
	hidden("Denomination (Face value per unit) currency", KeyFaceValuePerUnitCurrency),
	field("Last price on Secondary Market", KeyLastPriceOnSecondaryMarket, Currency, required(),
		sub(catInvestment, KeyLastPriceOnSecondaryMarketCurrency, "Currency")),
	hidden("Last price on Secondary Market Currency", KeyLastPriceOnSecondaryMarketCurrency),
	field("Expected IRR", KeyExpectedReturnPerAnnum, Text, placeholder("From __ % to __ %")),
	field("Expected MOIC", KeyExpectedMultipleOfInvestmentCapital, Text, required()),
	field("Dividend and exit strategy", KeyDividendAndExitStrategy, TextArea),
	field("Main provision of the Shareholders' agreement", KeyMainProvision, Text, helperTitle("Legal")),
	field("Corporate governance rules", KeyCorporateRules, Text),
	field("Exit provisions", KeyExitProvisions, Text),
	field("Miscellaneous", KeyMiscellaneous, Text),
}

// Funds use their own lists rather than deriving from debt or equity.

var fundPMGeneral = List{
	field("Name of the fund", KeyProjectName, Text, required()),
	field("General description", KeyProjectDescription, TextArea, required()),
	field("Fund manager track record", KeyFundManagerTrackRecord, TextArea),
	field("Type and Structure of the fund", KeyTypeAndStructureOfTheFund, Text, helperTitle("Description on the fund")),
	field("Fund manager", KeyFundManager, Text, required()),
	field("Portfolio manager", KeyPortfolioManager, Text, required()),
}

var fundPMStrategy = List{
	field("Key Fund investment themes / Strategy", KeyKeyFundInvestmentThemes, TextArea),
	field("Overview of Fund existing investments", KeyOverviewOfFund, Text),
	field("Target Fund size", KeyTargetFundSize, Text),
	field("Investment location", KeyInvestmentLocation, Text),
	field("Management fees", KeyManagementFees, Text),
	field("Denomination (Face value per unit)", KeyFaceValuePerUnit, Currency, required(),
		sub(catStrategy, KeyFaceValuePerUnitCurrency, "Currency"), helperText(fixedAfterApproval)),
	hidden("Denomination (Face value per unit) currency", KeyFaceValuePerUnitCurrency),
	field("Fundraising period In days", KeyFundraisingPeriodInDays, PeriodicityTime, required(),
		sub(catStrategy, KeyFundraisingTime, "Time"), defaultSub(constants.UnitDays),
		helperTitle("Funding info"), helperText(increasableAfterApproval)),
	hidden("Fundraising period In days time", KeyFundraisingTime),
	field("Fundraising size (Soft cap)", KeySoftCap, Currency, required(),
		sub(catStrategy, KeySoftCapCurrency, " "), helperText(increasableAfterApproval)),
	hidden("Fundraising size (Soft cap) Currency", KeySoftCapCurrency),
	field("Fundraising size (Hard cap)", KeyHardCap, Currency, required(),
		sub(catStrategy, KeyHardCapCurrency, " "), helperText(increasableAfterApproval)),
	hidden("Fundraising size (Hard cap) Currency", KeyHardCapCurrency),
	field("Minimum number of investment units", KeyMinimumNumberOfUnit, Number),
	field("Distribution fee", KeyDistributionFee, Text),
	field("Carried Interest / Promote fee", KeyCarriedInterestOrPromoteFee, Text),
	field("Will transfer to secondary market", KeyTransferToSecondaryMarket, Checkbox),
}

var fundPMKPI = List{
	field("Expected IRR (Internal rate of return)", KeyExpectedIRR, Text),
	field("Total fund equity invested", KeyTotalFundEquityInvested, Text),
	field("Expected MOIC (Multiple of invested capital)", KeyExpectedMOIC, Text),
}

var fundPMInvestment = List{
	field("Investment Objective", KeyInvestmentObjective, TextArea),
	field("Fund term", KeyFundTerm, Text),
	field("Investment Period", KeyDurationOfTheInvestmentPeriod, Text),
	field("Target Closing Date", KeyTargetClosingDate, Date),
	field("Transaction fees", KeyTransactionFees, Text),
	field("Eligible investors and specific investment restrictions", KeyEligibleInvestorsAndRestrictions, Text),
}

var fundPMDocuments = List{
	field("Teaser", DocTeaser, File, helperTitle("Asset / Company / Project holder"), accept(acceptImagesPDF...)),
	field("Image of the project", DocProjectPicture, File, required(), accept(acceptImages...)),
	field("Financial projections (Business plan)", DocFinancialProjections, File, accept(acceptDocuments...)),
	field("Financial statements available", DocFinancialStatement, File, accept(acceptDocuments...)),
	field("Summary business deck", DocSummaryBusinessDeck, File, accept(acceptDocuments...)),
	field("Tax/Legal Due diligence reports", DocTaxLegalDueDiligence, File, accept(acceptDocuments...)),
	field("Project Holders' track records Resumes", DocTrackRecordsResumes, File, accept(acceptDocuments...)),
	field("News exposure", DocNewsExposure, File, accept(acceptDocuments...)),
	field("Certificate of incorporation of the SPV", DocCertificateOfIncorporation, File, helperTitle("Legal")),
	field("SPV by-laws", DocByLaws, File, accept(acceptDocuments...)),
	field("SPV shareholder agreements", DocShareHolderAgreement, File, accept(acceptDocuments...)),
	field("Cap table", DocCapTable, File, accept(acceptDocuments...)),
	field("Fund term sheet", DocTermSheet, File, required(), helperTitle("Financial"), accept(acceptImagesPDF...)),
	field("Subscription contract", DocSubscriptionContract, File, accept(acceptDocuments...)),
	field("Other relevant document (1)", DocOtherDocument1, File, accept(acceptDocuments...)),
	field("Other relevant document (2)", DocOtherDocument2, File, accept(acceptDocuments...)),
	field("Other relevant document (3)", DocOtherDocument3, File, accept(acceptDocuments...)),
}

var fundSMStrategy = List{
	field("Key Fund investment themes / Strategy", KeyKeyFundInvestmentThemes, TextArea),
	field("Overview of Fund existing investments", KeyOverviewOfFund, Text),
	field("Target Fund size", KeyTargetFundSize, Text),
	field("Investment location", KeyInvestmentLocation, Text),
	field("Denomination (Face value per unit)", KeyFaceValuePerUnit, Currency, required(),
		sub(catStrategy, KeyFaceValuePerUnitCurrency, "Currency"), helperText(fixedAfterApproval)),
	hidden("Denomination (Face value per unit) currency", KeyFaceValuePerUnitCurrency),
	field("Minimum number of investment units", KeyMinimumNumberOfUnit, Number),
	field("Last price on Secondary Market", KeyLastPriceOnSecondaryMarket, Currency, required(),
		sub(catInvestment, KeyLastPriceOnSecondaryMarketCurrency, "Currency")),
	hidden("Last price on Secondary Market Currency", KeyLastPriceOnSecondaryMarketCurrency),
	field("Management fees", KeyManagementFees, Text, helperTitle("Structure of fees")),
	field("Distribution fee", KeyDistributionFee, Text),
	field("Carried Interest / Promote fee", KeyCarriedInterestOrPromoteFee, Text),
}

// Art projects.

var debtArtPMAsset = List{
	field("Estimated market value", KeyEstimatedMarketValue, Currency, required(),
		sub(catAsset, KeyEstimatedMarketValueCurrency, "Currency")),
	hidden("Estimated market value Currency", KeyEstimatedMarketValueCurrency),
	field("Asset location", KeyAssetLocation, Text),
	field("Miscellaneous", KeyMiscellaneous, Text),
}

var ltvOnlyKPI = List{
	field("Loan to value ratio (LTV)", KeyLoanToValueRatio, Number, percent(), helperTitle("Company")),
}

var debtArtPMInvestment = debtREPMInvestment.Replace(KeyInterestPerAnnum,
	field("Interest p.a", KeyInterestPerAnnum, Text, required(), placeholder("e.g. + 5.20% per annum")),
)

var debtArtPMDocuments = List{
	field("Image of the project", DocProjectPicture, File, required(), accept(acceptImages...)),
	field("Teaser", DocTeaser, File, accept(acceptImagesPDF...)),
	field("Summary business deck", DocSummaryBusinessDeck, File, accept(acceptDocuments...)),
	field("Financial statements available", DocFinancialStatement, File, accept(acceptDocuments...)),
	field("Valuation report from expert", DocValuationFromExpert, File, accept(acceptDocuments...)),
	field("Financial projections (Business plan)", DocFinancialProjections, File, accept(acceptDocuments...)),
	field("Project Holders' track records Resumes", DocTrackRecordsResumes, File, accept(acceptDocuments...)),
	field("Other Project Documentation", DocOtherProjectDocumentation, File, accept(acceptDocuments...)),
	field("Certificate of incorporation of the SPV", DocCertificateOfIncorporation, File, helperTitle("Legal")),
	field("SPV by-laws", DocByLaws, File, accept(acceptDocuments...)),
	field("SPV shareholder agreements", DocShareHolderAgreement, File, accept(acceptDocuments...)),
	field("List of KYC documents required for suscribing investor", DocKYCDocumentsRequired, File, accept(acceptDocuments...)),
	field("Other legal document (1)", DocOtherLegalDocument1, File, accept(acceptDocuments...)),
	field("Other legal document (2)", DocOtherLegalDocument2, File, accept(acceptDocuments...)),
	field("Other legal document (3)", DocOtherLegalDocument3, File, accept(acceptDocuments...)),
	field("Project term sheet", DocTermSheet, File, required(), helperTitle("Financial"), accept(acceptImagesPDF...)),
	field("Subscription contract", DocSubscriptionContract, File, accept(acceptDocuments...)),
	field("Other relevant document (1)", DocOtherDocument1, File, accept(acceptDocuments...)),
	field("Other relevant document (2)", DocOtherDocument2, File, accept(acceptDocuments...)),
	field("Other relevant document (3)", DocOtherDocument3, File, accept(acceptDocuments...)),
}

// Infrastructure projects.

var debtInfraPMAsset = List{
	field("Asset Description", KeyAssetDescription, TextArea, required()),
	field("Estimated market value of underlying asset", KeyEstimatedMarketValue, Currency, required(),
		sub(catAsset, KeyEstimatedMarketValueCurrency, "Currency")),
	hidden("Estimated market value Currency", KeyEstimatedMarketValueCurrency),
	field("Asset location", KeyAssetLocation, TextArea),
	field("Miscellaneous", KeyMiscellaneous, TextArea),
}

var debtInfraPMInvestment = List{
	field("Issuer jurisdiction", KeyIssuerJurisdiction, Country, required()),
	field("Structurer/Arranger", KeyStructureOrArranger, TextArea, required()),
	field("Paying and settlement agent", KeyPayingAndSettlementAgent, TextArea, required()),
	field("Eligible investors", KeyEligibleInvestors, TextArea),
	field("Issue date", KeyIssueDate, Date, required()),
	field("Denomination (Face value per unit)", KeyFaceValuePerUnit, Currency, required(),
		sub(catInvestment, KeyFaceValuePerUnitCurrency, "Currency"), helperText(fixedAfterApproval)),
	hidden("Denomination (Face value per unit) currency", KeyFaceValuePerUnitCurrency),
	field("Interest p.a", KeyInterestPerAnnum, Text, required()),
	field("Interest payment periodicity", KeyPaymentPeriodicity, PeriodicityTime, required(),
		sub(catInvestment, KeyPaymentPeriodicityTime, "Time"), defaultSub(constants.UnitMonths)),
	hidden("Interest payment periodicity Time", KeyPaymentPeriodicityTime),
	field("Maturity", KeyMaturity, PeriodicityTime, required(),
		sub(catInvestment, KeyMaturityTime, "Time"), defaultSub(constants.UnitMonths)),
	hidden("Maturity Time", KeyMaturityTime),
	field("Early redemption date", KeyEarlyRedemptionDate, Date),
	field("Fundraising period In days", KeyFundraisingPeriodInDays, PeriodicityTime, required(),
		sub(catInvestment, KeyFundraisingTime, "Time"), defaultSub(constants.UnitDays),
		helperTitle("Funding info"), helperText(increasableAfterApproval)),
	hidden("Fundraising Time", KeyFundraisingTime),
	field("Fundraising size (Soft cap)", KeySoftCap, Currency, required(),
		sub(catInvestment, KeySoftCapCurrency, " "), helperText(increasableAfterApproval)),
	hidden("Fundraising size (Soft cap) Currency", KeySoftCapCurrency),
	field("Fundraising size (Hard cap)", KeyHardCap, Currency, required(),
		sub(catInvestment, KeyHardCapCurrency, " "), helperText(increasableAfterApproval)),
	hidden("Fundraising size (Hard cap) Currency", KeyHardCapCurrency),
	field("Minimum number of investment units", KeyMinimumNumberOfUnit, Number, required()),
	field("Miscellaneous", KeyMiscellaneous, TextArea),
	transferToSecondaryMarket,
}
