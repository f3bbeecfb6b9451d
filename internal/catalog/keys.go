package catalog

// Canonical attribute keys, grouped by the category they are entered in.
// Keys repeat across categories; the category decides where a value lives.

// Core keys.
const (
	KeyISINNumber               = "isinNumber"
	KeyInvestmentGroup          = "investmentGroup"
	KeyInvestmentType           = "investmentType"
	KeyProjectListingType       = "projectListingType"
	KeyProjectListingMarketType = "projectListingMarketType"
	KeyCreateCampaign           = "isCampaignCreateRequest"
	KeyPrivateProject           = "isPrivateProject"
)

// Campaign keys.
const (
	KeyCampaignName         = "campaignName"
	KeyDescription          = "description"
	KeyLocation             = "location"
	KeyTargetAmount         = "targetAmount"
	KeyTargetAmountCurrency = "targetAmountCurrency"
	KeyExpectedIRR          = "expectedIRR"
	KeyCampaignExpire       = "campaignExpireNoOfDays"
	KeyMaturityExitDate     = "maturityExitDate"
	KeyCampaignPicture      = "campaignPicture"
)

// General info keys.
const (
	KeyProjectName        = "projectName"
	KeyProjectDescription = "projectDescription"
	KeyIssuer             = "issuer"
	KeyCompanyName        = "companyName"
	KeyIssuerBank         = "issuerBank"
	KeyIssuerBankEmail    = "issuerBankEmail"
)

// Guarantee keys.
const (
	KeyGuaranteeType        = "guaranteeType"
	KeyGuaranteeRank        = "guaranteeRank"
	KeyGuaranteeDescription = "guaranteeDescription"
	KeyGuaranteeAgreements  = "guaranteeAgreements"
)

// Asset info keys.
const (
	KeyAssetDescription             = "assetDescription"
	KeyAssetPurpose                 = "assetPurpose"
	KeyAssetLocation                = "assetLocation"
	KeyEstimatedMarketValue         = "estimatedMarketValue"
	KeyEstimatedMarketValueCurrency = "estimatedMarketValueCurrency"
	KeyCountry                      = "country"
	KeyStreet                       = "street"
	KeyCity                         = "city"
	KeyInvestmentPurpose            = "investmentPurpose"
	KeyPropertyArea                 = "propertyArea"
	KeyAssetStatus                  = "assetStatus"
	KeyOperationOfAsset             = "operationOfAsset"
	KeyLevelOfUrbanization          = "levelOfUrbanization"
	KeyUrbanizationLevel            = "urbanizationLevel"
	KeyMiscellaneous                = "miscellaneous"
)

// KPI keys.
const (
	KeyLoanToValueRatio                = "loanToValueRatio"
	KeyOccupationRate                  = "occupationRate"
	KeyCapExOpExRequirement            = "capExOpExRequirement"
	KeyWeightedAverage                 = "weightedAverage"
	KeyWeightedAverageTime             = "weightedAverageTime"
	KeyCompanyRevenue                  = "companyRevenue"
	KeyCompanyRevenueCurrency          = "companyRevenueCurrency"
	KeyCurrentCompanyValuation         = "currentCompanyValuation"
	KeyCurrentCompanyValuationCurrency = "currentCompanyValuationCurrency"
	KeyDebtToEquityRatio               = "debtToEquityRatio"
	KeyEbitdaRevenue                   = "ebitdaRevenue"
)

// Investment info keys.
const (
	KeyIssuerJurisdiction                  = "issuerJurisdiction"
	KeyStructureOrArranger                 = "structureOrArranger"
	KeyPayingAndSettlementAgent            = "payingAndSettlementAgent"
	KeyEligibleInvestors                   = "eligibleInvestors"
	KeyIssueDate                           = "issueDate"
	KeyFaceValuePerUnit                    = "faceValuePerUnit"
	KeyFaceValuePerUnitCurrency            = "faceValuePerUnitCurrency"
	KeyInterestPerAnnum                    = "interestPerAnnum"
	KeyPaymentPeriodicity                  = "paymentPeriodicity"
	KeyPaymentPeriodicityTime              = "paymentPeriodicityTime"
	KeyMaturity                            = "maturity"
	KeyMaturityTime                        = "maturityTime"
	KeyEarlyRedemptionDate                 = "earlyRedemptionDate"
	KeyFundraisingPeriodInDays             = "fundraisingPeriodInDays"
	KeyFundraisingTime                     = "fundraisingTime"
	KeyHardCap                             = "hardCap"
	KeyHardCapCurrency                     = "hardCapCurrency"
	KeyTransferToSecondaryMarket           = "isTransferToSecondaryMarket"
	KeyMinimumNumberOfUnit                 = "minimumNumberOfUnit"
	KeySoftCap                             = "softCap"
	KeySoftCapCurrency                     = "softCapCurrency"
	KeyLastPriceOnSecondaryMarket          = "lastPriceOnSecondaryMarket"
	KeyLastPriceOnSecondaryMarketCurrency  = "lastPriceOnSecondaryMarketCurrency"
	KeyCorporateRules                      = "corporateRules"
	KeyExitProvisions                      = "exitProvisions"
	KeyFundingSeries                       = "fundingSeries"
	KeyMainProvision                       = "mainProvision"
	KeyDividendAndExitStrategy             = "dividendAndExitStrategy"
	KeyExpectedMultipleOfInvestmentCapital = "expectedMultipleOfInvestmentCapital"
	KeyExpectedReturnPerAnnum              = "expectedReturnPerAnnum"
)

// Non financial info keys.
const (
	KeyAreaDynamic                  = "areaDynamic"
	KeySocialContributionOfTheAsset = "socialContributionOfTheAsset"
	KeyAssetEconomyImpact           = "assetEconomyImpact"
	KeyImpactOfTheEnvironment       = "impactOfTheEnvironment"
)

// Contact info keys.
const (
	KeyContactName = "contactName"
	KeyPhoneNumber = "phoneNumber"
	KeyEmail       = "email"
)

// Business info keys.
const (
	KeyBusinessDescription = "businessDescription"
	KeyCompanyIndustry     = "companyIndustry"
	KeyIndustryTrends      = "industryTrends"
	KeyCompanyLocation     = "companyLocation"
	KeyManagingTeamResume  = "managingTeamResume"
	KeyCompanyWebsite      = "companyWebsite"
	KeyNumberOfEmployee    = "numberOfEmployee"
	KeyCompanyAge          = "companyAge"
	KeyCompanyAgeTime      = "companyAgeTime"
)

// Fund keys.
const (
	KeyFundManagerTrackRecord           = "fundManagerTrackRecord"
	KeyTypeAndStructureOfTheFund        = "typeAndStructureOfTheFund"
	KeyFundManager                      = "fundManager"
	KeyPortfolioManager                 = "portfolioManager"
	KeyKeyFundInvestmentThemes          = "keyFundInvestmentThemes"
	KeyOverviewOfFund                   = "overviewOfFundExistingInvestment"
	KeyTargetFundSize                   = "targetFundSize"
	KeyInvestmentLocation               = "investmentLocation"
	KeyManagementFees                   = "managementFeesPaidDuringInvestmentPeriod"
	KeyDistributionFee                  = "distributionFee"
	KeyCarriedInterestOrPromoteFee      = "carriedInterestOrPromoteFee"
	KeyTotalFundEquityInvested          = "totalFundEquityInvested"
	KeyExpectedMOIC                     = "expectedMOIC"
	KeyLiquidity                        = "liquidity"
	KeyAssetsUnderManagement            = "assetsUnderManagement"
	KeyNetAssetValue                    = "netAssetValue"
	KeyInvestmentObjective              = "investmentObjective"
	KeyFundTerm                         = "fundTerm"
	KeyDurationOfTheInvestmentPeriod    = "durationOfTheInvestmentPeriod"
	KeyTargetClosingDate                = "targetClosingDate"
	KeyTransactionFees                  = "transactionFees"
	KeyEligibleInvestorsAndRestrictions = "elligibleInvestorsAndSpecificRestrictions"
	KeyMinimumInvestmentSize            = "minimumInvestmentSize"
	KeyIncrementalInvestmentSize        = "incrementalInvestmentSize"
	KeyTargetVolatility                 = "targetVolatility"
)

// Document slots.
const (
	DocTeaser                     = "teaserInformationMemorandum"
	DocFinancialStatement         = "financialStatementAvailable"
	DocTaxLegalDueDiligence       = "taxLegalDueDiligenceReport"
	DocFinancialProjections       = "financialProjections"
	DocProjectPicture             = "projectPicture"
	DocTrackRecordsResumes        = "trackRecordsResumes"
	DocOtherProjectDocumentation  = "otherProjectDocumentation"
	DocCertificateOfIncorporation = "certificateOfIncorporation"
	DocByLaws                     = "byLaws"
	DocShareHolderAgreement       = "shareHolderAgreement"
	DocKYCDocumentsRequired       = "kycDocumentsRequired"
	DocOtherLegalDocument         = "otherLegalDocument"
	DocOtherLegalDocument1        = "otherLegalDocument1"
	DocOtherLegalDocument2        = "otherLegalDocument2"
	DocOtherLegalDocument3        = "otherLegalDocument3"
	DocTermSheet                  = "termSheet"
	DocSubscriptionContract       = "subscriptionContract"
	DocOtherDocument              = "otherDocument"
	DocOtherDocument1             = "otherDocument1"
	DocOtherDocument2             = "otherDocument2"
	DocOtherDocument3             = "otherDocument3"
	DocSummaryBusinessDeck        = "summaryBusinessDeck"
	DocCapTable                   = "capTable"
	DocNewsExposure               = "newsExposure"
	DocValuationFromExpert        = "valuationFromExpert"
	DocAgreements                 = "agreements"
)

// FundCustomFields are fund attributes entered as custom fields rather than
// catalog inputs, keyed by the category they belong to.
var FundCustomFields = map[string][]string{
	"keyPerformanceIndicators": {KeyLiquidity, KeyAssetsUnderManagement, KeyNetAssetValue},
	"investmentInfo":           {KeyTargetVolatility, KeyMinimumInvestmentSize, KeyIncrementalInvestmentSize},
}
