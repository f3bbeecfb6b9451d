// Package project models the investment project record shown on the teaser
// page: its classification, attribute values, custom fields and documents.
package project

import (
	"encoding/json"

	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/pkg/format"
)

// Details sub-record keys, in lookup priority order.
const (
	FundProjectKey          = "fundProject"
	PrivateEquityProjectKey = "privateEquityProject"
	ArtProjectKey           = "artProject"
	RealEstateProjectKey    = "realStateProject"
)

var detailsKeys = []string{FundProjectKey, PrivateEquityProjectKey, ArtProjectKey}

// Project is the fixture document: the master record plus its summary.
type Project struct {
	MasterProject MasterProject `json:"masterProject"`
	ProjectInfo   ProjectInfo   `json:"projectInfo"`
}

// ProjectInfo is the short summary sent alongside the master record.
type ProjectInfo struct {
	ISINNumber                  string           `json:"isinNumber"`
	ProjectName                 string           `json:"projectName"`
	ProjectDescription          string           `json:"projectDescription"`
	ContactName                 string           `json:"contactName"`
	PhoneNumber                 string           `json:"phoneNumber"`
	Email                       string           `json:"email"`
	ProjectListingMarketType    string           `json:"projectListingMarketType"`
	ProjectListingType          string           `json:"projectListingType"`
	InvestmentType              string           `json:"investmentType"`
	Status                      string           `json:"status"`
	ProjectDefaultCurrency      listing.Currency `json:"projectDefaultCurrency"`
	FundraisingPeriodInDays     float64          `json:"fundraisingPeriodInDays"`
	SoftCap                     float64          `json:"softCap"`
	SoftCapCurrency             listing.Currency `json:"softCapCurrency"`
	HardCap                     float64          `json:"hardCap"`
	HardCapCurrency             listing.Currency `json:"hardCapCurrency"`
	FaceValuePerUnit            float64          `json:"faceValuePerUnit"`
	FaceValuePerUnitCurrency    listing.Currency `json:"faceValuePerUnitCurrency"`
	MinimumNumberOfUnit         float64          `json:"minimumNumberOfUnit"`
	AvailableInvestmentValue    float64          `json:"availableInvestmentValue"`
	ProjectBalance              float64          `json:"projectBalance"`
	IsTransferToSecondaryMarket bool             `json:"isTransferToSecondaryMarket"`
}

// MasterProject is the canonical listing record. The typed fields cover what
// the page reads directly; every attribute stays reachable through Lookup.
type MasterProject struct {
	MasterProjectID          string                  `json:"masterProjectId"`
	UUID                     string                  `json:"uuid"`
	ISINNumber               string                  `json:"isinNumber"`
	ProjectName              string                  `json:"projectName"`
	ProjectDescription       string                  `json:"projectDescription"`
	ContactName              string                  `json:"contactName"`
	PhoneNumber              string                  `json:"phoneNumber"`
	Email                    string                  `json:"email"`
	InvestmentGroup          listing.InvestmentGroup `json:"investmentGroup"`
	InvestmentType           listing.InvestmentType  `json:"investmentType"`
	ProjectListingType       listing.ListingType     `json:"projectListingType"`
	ProjectListingMarketType listing.MarketType      `json:"projectListingMarketType"`
	FundingType              string                  `json:"fundingType"`
	Status                   string                  `json:"status"`
	CreatedDate              string                  `json:"createdDate"`
	DefaultCurrency          listing.Currency        `json:"defaultCurrency"`
	FaceValuePerUnit         float64                 `json:"faceValuePerUnit"`
	AvailableBalance         float64                 `json:"availableBalance"`
	ProjectBalance           float64                 `json:"projectBalance"`
	FundRaisingExpireDate    string                  `json:"fundRaisingExpireDate"`
	FundRaisingExpireInDays  int                     `json:"fundRaisingExpireInDays"`
	FundraisingPeriodInDays  float64                 `json:"fundraisingPeriodInDays"`
	SoftCap                  float64                 `json:"softCap"`
	HardCap                  float64                 `json:"hardCap"`
	MinimumNumberOfUnit      float64                 `json:"minimumNumberOfUnit"`
	MinimumInvestmentValue   float64                 `json:"minimumInvestmentValue"`
	IsPrivateProject         bool                    `json:"isPrivateProject"`
	Documents                DocumentBag             `json:"projectSupportingDocument"`
	JSONFields               CustomFieldSet          `json:"jsonFields"`

	attrs map[string]any
}

type masterProjectAlias MasterProject

// UnmarshalJSON decodes the typed fields and keeps every attribute for Lookup.
func (p *MasterProject) UnmarshalJSON(data []byte) error {
	var alias masterProjectAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	v, err := decodeAny(data)
	if err != nil {
		return err
	}
	attrs, _ := v.(map[string]any)
	*p = MasterProject(alias)
	p.attrs = attrs
	return nil
}

// MarshalJSON writes every attribute that was read, with the typed fields
// taking precedence.
func (p MasterProject) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(masterProjectAlias(p))
	if err != nil {
		return nil, err
	}
	if len(p.attrs) == 0 {
		return typed, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(typed, &merged); err != nil {
		return nil, err
	}
	for k, v := range p.attrs {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Classification returns the project's classification tuple.
func (p *MasterProject) Classification() listing.Classification {
	return listing.Classification{
		Group:   p.InvestmentGroup,
		Type:    p.InvestmentType,
		Listing: p.ProjectListingType,
		Market:  p.ProjectListingMarketType,
	}
}

// IsPrimaryMarket reports whether the project is offered on the primary market.
func (p *MasterProject) IsPrimaryMarket() bool {
	return p.ProjectListingMarketType == listing.Primary
}

// IsFund reports whether the project is funded as a fund.
func (p *MasterProject) IsFund() bool {
	return p.FundingType == string(listing.Fund)
}

// Attr returns the raw top-level attribute key.
func (p *MasterProject) Attr(key string) (any, bool) {
	v, ok := p.attrs[key]
	return v, ok
}

// Lookup resolves the value shown for key within category. It checks, in
// order, the top-level attribute, the category sub-record, the fund record and
// the project details record, returning the first value that is not empty.
func (p *MasterProject) Lookup(category listing.Category, key string) (any, bool) {
	if v, ok := present(p.attrs[key]); ok {
		return v, true
	}
	if v, ok := present(child(p.attrs[string(category)], key)); ok {
		return v, true
	}
	if v, ok := present(child(p.attrs[FundProjectKey], key)); ok {
		return v, true
	}
	if v, ok := present(child(p.Details(), key)); ok {
		return v, true
	}
	return nil, false
}

// DetailsKey names the sub-record that carries the project details.
func (p *MasterProject) DetailsKey() string {
	for _, k := range detailsKeys {
		if rec, ok := p.attrs[k].(map[string]any); ok && rec != nil {
			return k
		}
	}
	return RealEstateProjectKey
}

// Details returns the project details sub-record, or nil.
func (p *MasterProject) Details() map[string]any {
	rec, _ := p.attrs[p.DetailsKey()].(map[string]any)
	return rec
}

// CustomFields returns the custom fields of category in fixture order.
func (p *MasterProject) CustomFields(category listing.Category) []CustomField {
	return p.JSONFields.Fields(category)
}

func child(parent any, key string) any {
	m, ok := parent.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}

func present(v any) (any, bool) {
	if format.Empty(v) {
		return nil, false
	}
	return v, true
}
