package testutil

import (
	"testing"

	"github.com/iwvelando/teaser/internal/detail"
	"github.com/iwvelando/teaser/internal/listing"
)

func sampleView() detail.View {
	return detail.View{
		ProjectName: "Sample",
		Sections: []detail.Section{
			{
				Category: listing.GeneralInfo,
				Title:    "General Information",
				Entries: []detail.Entry{
					{Key: "projectName", Label: "Project name", Value: "Sample", Kind: detail.KindText},
				},
			},
			{
				Category: listing.KeyPerformanceIndicators,
				Title:    "KPI's",
				Entries: []detail.Entry{
					{Key: "loanToValueRatio", Label: "Loan to value ratio (LTV)", Value: "60%", Kind: detail.KindText},
					{Key: "occupationRate", Label: "Occupation rate", Value: "95%", Kind: detail.KindText},
				},
			},
		},
		Documents: []detail.Document{
			{Slot: "termSheet", Title: "Term sheet", URL: "https://example.com/termSheet.pdf"},
		},
	}
}

func TestFindSection(t *testing.T) {
	v := sampleView()

	tests := []struct {
		name        string
		category    listing.Category
		expectFound bool
		entries     int
	}{
		{"general info", listing.GeneralInfo, true, 1},
		{"kpis", listing.KeyPerformanceIndicators, true, 2},
		{"absent category", listing.AssetInfo, false, 0},
		{"empty category", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FindSection(v, tt.category)
			if tt.expectFound {
				if s == nil {
					t.Fatalf("FindSection(%q) returned nil", tt.category)
				}
				if len(s.Entries) != tt.entries {
					t.Errorf("FindSection(%q) has %d entries, expected %d", tt.category, len(s.Entries), tt.entries)
				}
			} else if s != nil {
				t.Errorf("FindSection(%q) expected nil, got %+v", tt.category, s)
			}
		})
	}
}

func TestFindSectionReturnsPointerIntoView(t *testing.T) {
	v := sampleView()
	s := FindSection(v, listing.GeneralInfo)
	if s == nil {
		t.Fatal("expected section")
	}
	s.Title = "changed"
	if v.Sections[0].Title != "changed" {
		t.Error("expected pointer to the view's section")
	}
}

func TestFindEntry(t *testing.T) {
	entries := sampleView().Sections[1].Entries

	if e := FindEntry(entries, "Occupation rate"); e == nil || e.Value != "95%" {
		t.Errorf("FindEntry(Occupation rate) = %+v, expected value 95%%", e)
	}
	if e := FindEntry(entries, "occupation rate"); e != nil {
		t.Errorf("FindEntry is case sensitive, got %+v", e)
	}
	if e := FindEntry(nil, "anything"); e != nil {
		t.Errorf("FindEntry(nil) = %+v, expected nil", e)
	}
}

func TestFindDocument(t *testing.T) {
	docs := sampleView().Documents

	if d := FindDocument(docs, "termSheet"); d == nil || d.Title != "Term sheet" {
		t.Errorf("FindDocument(termSheet) = %+v", d)
	}
	if d := FindDocument(docs, "capTable"); d != nil {
		t.Errorf("FindDocument(capTable) = %+v, expected nil", d)
	}
}
