package catalog

import (
	"encoding/json"
	"testing"

	"github.com/iwvelando/teaser/internal/listing"
)

func TestResolveMisses(t *testing.T) {
	tests := []struct {
		name   string
		group  listing.InvestmentGroup
		typ    listing.InvestmentType
		lt     listing.ListingType
		market listing.MarketType
	}{
		{"convertible loan", listing.DirectInvestment, listing.ConvertibleLoan, listing.RealEstate, listing.Primary},
		{"other real assets", listing.DirectInvestment, listing.Debt, listing.OtherRealAssets, listing.Primary},
		{"funding project", listing.DirectInvestment, listing.Equity, listing.FundingProject, listing.Secondary},
		{"fund under direct", listing.DirectInvestment, listing.Fund, listing.HedgeFund, listing.Primary},
		{"equity art", listing.DirectInvestment, listing.Equity, listing.ArtProject, listing.Primary},
		{"empty market", listing.DirectInvestment, listing.Debt, listing.RealEstate, ""},
		{"all empty", "", "", "", ""},
		{"unknown group", "SOMETHING", listing.Debt, listing.RealEstate, listing.Primary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fl, ok := Resolve(tt.group, tt.typ, tt.lt, tt.market)
			if ok {
				t.Errorf("Resolve() ok = true, want false")
			}
			if fl != nil {
				t.Errorf("Resolve() = %v, want nil", fl)
			}
		})
	}
}

func TestResolveEveryCombinationIsComplete(t *testing.T) {
	groups := []listing.InvestmentGroup{listing.DirectInvestment, listing.CollectiveInvestment}
	types := []listing.InvestmentType{listing.Debt, listing.Equity, listing.Fund, listing.ConvertibleLoan}
	listings := []listing.ListingType{
		listing.RealEstate, listing.PrivateEquity, listing.ArtProject, listing.Infrastructure,
		listing.Commodities, listing.OtherRealAssets, listing.HedgeFund, listing.DedicatedFund,
		listing.FundingProject,
	}
	markets := []listing.MarketType{listing.Primary, listing.Secondary}

	resolved := 0
	for _, g := range groups {
		for _, ty := range types {
			for _, l := range listings {
				for _, m := range markets {
					fl, ok := Resolve(g, ty, l, m)
					if !ok {
						continue
					}
					resolved++
					for _, c := range []listing.Category{
						listing.Core, listing.GeneralInfo, listing.KeyPerformanceIndicators,
						listing.InvestmentInfo, listing.Documents, listing.ContactInfo,
					} {
						if len(fl[c]) == 0 {
							t.Errorf("%s/%s/%s/%s: category %s is empty", g, ty, l, m, c)
						}
					}
					for c := range fl {
						if !c.Valid() {
							t.Errorf("%s/%s/%s/%s: unknown category %q", g, ty, l, m, c)
						}
					}
				}
			}
		}
	}

	// debt x5, equity x4, fund x2, each in two markets
	if resolved != 22 {
		t.Errorf("resolved %d classifications, want 22", resolved)
	}
}

func TestSecondaryMarketDropsFundraising(t *testing.T) {
	primary, ok := Resolve(listing.DirectInvestment, listing.Debt, listing.RealEstate, listing.Primary)
	if !ok {
		t.Fatal("primary real estate debt not mapped")
	}
	secondary, ok := Resolve(listing.DirectInvestment, listing.Debt, listing.RealEstate, listing.Secondary)
	if !ok {
		t.Fatal("secondary real estate debt not mapped")
	}

	pm := primary[listing.InvestmentInfo]
	sm := secondary[listing.InvestmentInfo]

	for _, key := range fundraisingKeys {
		if !pm.Contains(key) {
			t.Errorf("primary investment info missing %s", key)
		}
		if sm.Contains(key) {
			t.Errorf("secondary investment info still has %s", key)
		}
	}
	if pm.Contains(KeyLastPriceOnSecondaryMarket) {
		t.Error("primary investment info has last price")
	}
	if !sm.Contains(KeyLastPriceOnSecondaryMarket) || !sm.Contains(KeyLastPriceOnSecondaryMarketCurrency) {
		t.Error("secondary investment info missing last price fields")
	}
	if secondary[listing.GeneralInfo].Contains(KeyIssuerBank) {
		t.Error("secondary general info still has issuer bank")
	}
	if !secondary[listing.AssetInfo].Contains(KeyUrbanizationLevel) || secondary[listing.AssetInfo].Contains(KeyLevelOfUrbanization) {
		t.Error("secondary asset info should swap level of urbanization for urbanization level")
	}
	if secondary[listing.Documents].Contains(DocKYCDocumentsRequired) || secondary[listing.Documents].Contains(DocSubscriptionContract) {
		t.Error("secondary documents still have primary-only slots")
	}
}

func TestEquityDropsDebtFields(t *testing.T) {
	for _, lt := range []listing.ListingType{listing.RealEstate, listing.PrivateEquity, listing.Infrastructure, listing.Commodities} {
		for _, m := range []listing.MarketType{listing.Primary, listing.Secondary} {
			fl, ok := Resolve(listing.DirectInvestment, listing.Equity, lt, m)
			if !ok {
				t.Fatalf("equity %s %s not mapped", lt, m)
			}
			inv := fl[listing.InvestmentInfo]
			for _, key := range []string{KeyMaturity, KeyInterestPerAnnum, KeyEarlyRedemptionDate, KeyPaymentPeriodicity} {
				if inv.Contains(key) {
					t.Errorf("equity %s %s investment info has %s", lt, m, key)
				}
			}
			if !inv.Contains(KeyDividendAndExitStrategy) {
				t.Errorf("equity %s %s investment info missing dividend strategy", lt, m)
			}
			if _, ok := fl[listing.GuaranteeLevels]; ok {
				t.Errorf("equity %s %s maps guarantee levels", lt, m)
			}
		}
	}
}

func TestPrivateEquityUsesBusinessInfo(t *testing.T) {
	fl, ok := Resolve(listing.DirectInvestment, listing.Debt, listing.PrivateEquity, listing.Primary)
	if !ok {
		t.Fatal("private equity debt not mapped")
	}
	if _, ok := fl[listing.AssetInfo]; ok {
		t.Error("private equity maps asset info")
	}
	if !fl[listing.BusinessInfo].Contains(KeyCompanyAgeTime) {
		t.Error("debt business info missing company age time")
	}
	if !fl[listing.KeyPerformanceIndicators].Contains(KeyCurrentCompanyValuation) {
		t.Error("private equity KPI missing company valuation")
	}

	inv := fl[listing.InvestmentInfo]
	if last := inv[len(inv)-1]; last.Value != KeyTransferToSecondaryMarket {
		t.Errorf("last investment field = %s, want transfer checkbox", last.Value)
	}
	if !inv.Contains(KeyFundingSeries) {
		t.Error("private equity investment info missing funding series")
	}

	eq, ok := Resolve(listing.DirectInvestment, listing.Equity, listing.PrivateEquity, listing.Primary)
	if !ok {
		t.Fatal("private equity equity not mapped")
	}
	if eq[listing.BusinessInfo].Contains(KeyCompanyAgeTime) {
		t.Error("equity business info still has company age time")
	}
}

func TestFundUsesOwnLists(t *testing.T) {
	fl, ok := Resolve(listing.CollectiveInvestment, listing.Fund, listing.HedgeFund, listing.Primary)
	if !ok {
		t.Fatal("hedge fund not mapped")
	}
	if _, ok := fl[listing.FundStrategy]; !ok {
		t.Error("fund missing strategy")
	}
	if _, ok := fl[listing.AssetInfo]; ok {
		t.Error("fund maps asset info")
	}
	name, ok := fl.Field(listing.GeneralInfo, KeyProjectName)
	if !ok || name.Name != "Name of the fund" {
		t.Errorf("fund project name label = %q", name.Name)
	}

	sm, _ := Resolve(listing.CollectiveInvestment, listing.Fund, listing.DedicatedFund, listing.Secondary)
	if sm[listing.Documents].Contains(DocSubscriptionContract) {
		t.Error("secondary fund documents still have subscription contract")
	}
	if !sm[listing.FundStrategy].Contains(KeyLastPriceOnSecondaryMarket) {
		t.Error("secondary fund strategy missing last price")
	}
}

func TestCommoditiesShareInfrastructureLists(t *testing.T) {
	for _, typ := range []listing.InvestmentType{listing.Debt, listing.Equity} {
		infra, _ := Resolve(listing.DirectInvestment, typ, listing.Infrastructure, listing.Primary)
		comm, _ := Resolve(listing.DirectInvestment, typ, listing.Commodities, listing.Primary)
		for c, l := range infra {
			got := comm[c].Keys()
			want := l.Keys()
			if len(got) != len(want) {
				t.Fatalf("%s %s: %d keys, want %d", typ, c, len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("%s %s[%d] = %s, want %s", typ, c, i, got[i], want[i])
				}
			}
		}
	}
}

// Equity infrastructure investment info derives from the debt infrastructure
// secondary list (derived.go, equityInfraPMInvestment), so the last price field
// carries over to both markets.
func TestEquityInfraSecondaryKeepsLastPrice(t *testing.T) {
	fl, _ := Resolve(listing.DirectInvestment, listing.Equity, listing.Infrastructure, listing.Secondary)
	inv := fl[listing.InvestmentInfo]
	if !inv.Contains(KeyLastPriceOnSecondaryMarket) {
		t.Error("equity infrastructure secondary should keep last price")
	}
	if inv.Contains(KeySoftCap) {
		t.Error("equity infrastructure secondary still has soft cap")
	}
}

func TestResolveReturnsCopies(t *testing.T) {
	first, _ := Resolve(listing.DirectInvestment, listing.Debt, listing.RealEstate, listing.Primary)
	first[listing.GeneralInfo][0].Name = "changed"
	first[listing.Documents][0].Props.Accept[0] = "changed"
	delete(first, listing.AssetInfo)

	second, _ := Resolve(listing.DirectInvestment, listing.Debt, listing.RealEstate, listing.Primary)
	if second[listing.GeneralInfo][0].Name != "Project Name" {
		t.Errorf("name = %q, want Project Name", second[listing.GeneralInfo][0].Name)
	}
	if second[listing.Documents][0].Props.Accept[0] != "image/*" {
		t.Errorf("accept = %q, want image/*", second[listing.Documents][0].Props.Accept[0])
	}
	if _, ok := second[listing.AssetInfo]; !ok {
		t.Error("asset info missing after caller deleted it from a previous result")
	}
}

func TestListOperations(t *testing.T) {
	base := List{
		field("A", "a", Text),
		field("B", "b", Currency, sub("investmentInfo", "bCurrency", "Currency")),
		hidden("B currency", "bCurrency"),
	}

	without := base.Without("a")
	if got := without.Keys(); len(got) != 2 || got[0] != "b" {
		t.Errorf("Without() keys = %v", got)
	}
	if len(base) != 3 {
		t.Error("Without() modified receiver")
	}

	with := base.With(field("C", "c", Date))
	if got := with.Keys(); len(got) != 4 || got[3] != "c" {
		t.Errorf("With() keys = %v", got)
	}

	visible := base.Visible()
	if len(visible) != 2 || visible.Contains("bCurrency") {
		t.Errorf("Visible() = %v", visible.Keys())
	}

	b, ok := base.Find("b")
	if !ok {
		t.Fatal("Find(b) missing")
	}
	if b.Companion() != "bCurrency" || b.CompanionCategory() != "investmentInfo" {
		t.Errorf("companion = %s.%s", b.CompanionCategory(), b.Companion())
	}

	replaced := base.Replace("a", field("A2", "a", TextArea))
	if replaced[0].Name != "A2" || base[0].Name != "A" {
		t.Error("Replace() did not copy")
	}

	if List(nil).Clone() != nil {
		t.Error("Clone() of nil list is not nil")
	}
}

func TestHiddenFieldMarshalsNullType(t *testing.T) {
	data, err := json.Marshal(hidden("X currency", "xCurrency"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"name":"X currency","value":"xCurrency","props":{"type":null}}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var f Field
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !f.Hidden() {
		t.Error("unmarshalled field not hidden")
	}
}

func TestArtInterestPlaceholder(t *testing.T) {
	fl, _ := Resolve(listing.DirectInvestment, listing.Debt, listing.ArtProject, listing.Primary)
	f, ok := fl.Field(listing.InvestmentInfo, KeyInterestPerAnnum)
	if !ok {
		t.Fatal("art investment info missing interest")
	}
	if f.Props.Placeholder == "" {
		t.Error("art interest field has no placeholder")
	}
	re, _ := Resolve(listing.DirectInvestment, listing.Debt, listing.RealEstate, listing.Primary)
	if g, _ := re.Field(listing.InvestmentInfo, KeyInterestPerAnnum); g.Props.Placeholder != "" {
		t.Error("real estate interest field has a placeholder")
	}
}

func TestSharedAccessors(t *testing.T) {
	if !CampaignFields().Contains(KeyCampaignPicture) {
		t.Error("campaign fields missing picture")
	}
	if !CoreFields().Contains(KeyProjectListingMarketType) {
		t.Error("core fields missing market type")
	}
	if len(ContactFields()) != 3 {
		t.Errorf("contact fields = %d, want 3", len(ContactFields()))
	}
	if !GuaranteeFields().Contains(KeyGuaranteeRank) {
		t.Error("guarantee fields missing rank")
	}

	fl, _ := Resolve(listing.DirectInvestment, listing.Debt, listing.RealEstate, listing.Primary)
	cats := fl.Categories()
	if len(cats) == 0 || cats[0] != listing.Core {
		t.Errorf("Categories() = %v", cats)
	}
}
