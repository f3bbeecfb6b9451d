package integration

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/iwvelando/teaser/internal/config"
	"github.com/iwvelando/teaser/internal/detail"
	"github.com/iwvelando/teaser/internal/lead"
	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/internal/mailer"
	"github.com/iwvelando/teaser/internal/project"
	"github.com/iwvelando/teaser/internal/server"
	"github.com/iwvelando/teaser/pkg/output"
	"github.com/iwvelando/teaser/pkg/testutil"
)

const configPath = "../test_config.yaml"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"RESEND", "FROM_EMAIL", "TO_EMAIL", "BCC_EMAIL", "NEXT_PUBLIC_DOMAIN"} {
		t.Setenv(name, "")
	}
}

func loadAll(t *testing.T) (*config.Configuration, *project.Project) {
	t.Helper()
	clearEnv(t)

	conf, err := config.LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) > 0 {
		t.Fatalf("unexpected configuration warnings: %v", warnings)
	}

	p, err := project.Load(conf.Fixture.Path)
	if err != nil {
		t.Fatalf("project.Load() error = %v", err)
	}
	return conf, p
}

// TestDetailViewBaseline checks the rendered fixture against the values the
// page is expected to show.
func TestDetailViewBaseline(t *testing.T) {
	conf, p := loadAll(t)
	view := detail.NewBuilder(zap.NewNop(), conf.Site.Domain).Build(&p.MasterProject)

	if view.ProjectName != "NevaTeam Alpine Growth Fund" {
		t.Errorf("project name = %q", view.ProjectName)
	}

	expectedSections := []listing.Category{
		listing.GeneralInfo,
		listing.FundStrategy,
		listing.KeyPerformanceIndicators,
		listing.InvestmentInfo,
	}
	if len(view.Sections) != len(expectedSections) {
		t.Fatalf("expected %d sections, got %d", len(expectedSections), len(view.Sections))
	}
	for i, c := range expectedSections {
		if view.Sections[i].Category != c {
			t.Errorf("section %d = %s, expected %s", i, view.Sections[i].Category, c)
		}
	}

	checks := []struct {
		category listing.Category
		label    string
		value    string
	}{
		{listing.FundStrategy, "Investment location", "Switzerland, Austria"},
		{listing.KeyPerformanceIndicators, "Liquidity", "Quarterly"},
		{listing.InvestmentInfo, "Target Closing Date", "6/30/2025"},
	}
	for _, c := range checks {
		s := testutil.FindSection(view, c.category)
		if s == nil {
			t.Errorf("missing section %s", c.category)
			continue
		}
		e := testutil.FindEntry(s.Entries, c.label)
		if e == nil {
			t.Errorf("%s: missing entry %q", c.category, c.label)
			continue
		}
		if e.Value != c.value {
			t.Errorf("%s/%s = %q, expected %q", c.category, c.label, e.Value, c.value)
		}
	}

	if e := testutil.FindEntry(view.Overview.Entries, detail.LabelHardCap); e == nil || e.Value != "$1,000,000" {
		t.Errorf("overview hard cap = %+v", e)
	}
	if view.Funding != nil {
		t.Error("funds do not show funding info")
	}

	doc := testutil.FindDocument(view.Documents, "termSheet")
	if doc == nil {
		t.Fatal("expected a term sheet")
	}
	if !strings.HasPrefix(doc.URL, "https://teaser.example.com/") {
		t.Errorf("term sheet URL = %q", doc.URL)
	}
}

func TestOutputFormats(t *testing.T) {
	conf, p := loadAll(t)
	view := detail.NewBuilder(zap.NewNop(), conf.Site.Domain).Build(&p.MasterProject)

	var pretty, csvOut bytes.Buffer
	if err := output.PrettyFormat(&pretty, view); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	if err := output.CsvFormat(&csvOut, view); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(&csvOut).ReadAll()
	if err != nil {
		t.Fatalf("CsvFormat produced invalid CSV: %v", err)
	}
	prettyLines := strings.Count(pretty.String(), "| ")
	csvLines := len(records) - 1
	if prettyLines == 0 || csvLines == 0 {
		t.Fatalf("expected rows in both formats, got %d pretty and %d csv", prettyLines, csvLines)
	}
	if prettyLines != csvLines {
		t.Errorf("pretty shows %d rows but csv has %d", prettyLines, csvLines)
	}
}

// TestInvestmentRequestFlow posts a request through the HTTP API and checks
// the email the provider receives.
func TestInvestmentRequestFlow(t *testing.T) {
	conf, p := loadAll(t)

	var mu sync.Mutex
	var received []map[string]any
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+conf.Mailer.APIKey {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"missing API key"}`))
			return
		}
		var msg map[string]any
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		received = append(received, msg)
		mu.Unlock()
		w.Write([]byte(`{"id":"re_msg_1"}`))
	}))
	defer provider.Close()

	logger := zap.NewNop()
	leads := lead.NewService(
		mailer.NewClient(conf.Mailer.APIKey, mailer.WithBaseURL(provider.URL)),
		lead.Settings{From: conf.Mailer.From, To: conf.Mailer.To, Bcc: conf.Mailer.Bcc, Subject: conf.Mailer.Subject},
		p.MasterProject.FaceValuePerUnit,
		logger,
	)
	api := httptest.NewServer(server.NewHandler(logger, server.Dependencies{
		Project: p,
		Builder: detail.NewBuilder(logger, conf.Site.Domain),
		Leads:   leads,
	}, server.DefaultConfig(), "test"))
	defer api.Close()

	resp, err := http.Get(api.URL + "/api/project/value?amount=30000")
	if err != nil {
		t.Fatalf("value request failed: %v", err)
	}
	var value map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&value); err != nil {
		t.Fatalf("failed to decode value: %v", err)
	}
	resp.Body.Close()
	if value["value"] != "300000" {
		t.Fatalf("value = %q, expected 300000", value["value"])
	}

	form := `{"email":"ana@example.com","name":"Ana Ruiz","amount":"30000","value":"` + value["value"] + `","currency":"USD"}`
	resp, err = http.Post(api.URL+"/api/emails/send", "application/json", strings.NewReader(form))
	if err != nil {
		t.Fatalf("send request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if result["success"] != true || result["id"] != "re_msg_1" {
		t.Errorf("unexpected result %v", result)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("provider received %d messages, expected 1", len(received))
	}
	msg := received[0]
	if msg["subject"] != conf.Mailer.Subject {
		t.Errorf("subject = %v", msg["subject"])
	}
	html, _ := msg["html"].(string)
	for _, want := range []string{"Ana Ruiz", "30,000", "$300,000", "mailto:ana@example.com"} {
		if !strings.Contains(html, want) {
			t.Errorf("email missing %q", want)
		}
	}
}
