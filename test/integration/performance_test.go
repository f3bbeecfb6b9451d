package integration

import (
	"io"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/teaser/internal/catalog"
	"github.com/iwvelando/teaser/internal/detail"
	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/internal/project"
	"github.com/iwvelando/teaser/pkg/output"
)

// TestPerformance tests performance characteristics
func TestPerformance(t *testing.T) {
	conf, _ := loadAll(t)

	start := time.Now()
	p, err := project.Load(conf.Fixture.Path)
	if err != nil {
		t.Fatalf("project.Load failed: %v", err)
	}
	loadTime := time.Since(start)

	builder := detail.NewBuilder(zap.NewNop(), conf.Site.Domain)
	start = time.Now()
	var view detail.View
	for i := 0; i < 1000; i++ {
		view = builder.Build(&p.MasterProject)
	}
	buildTime := time.Since(start)

	start = time.Now()
	if err := output.PrettyFormat(io.Discard, view); err != nil {
		t.Fatalf("PrettyFormat failed: %v", err)
	}
	renderTime := time.Since(start)

	totalTime := loadTime + buildTime + renderTime

	t.Logf("Performance metrics:")
	t.Logf("  Load fixture: %v", loadTime)
	t.Logf("  Build view x1000: %v", buildTime)
	t.Logf("  Render pretty: %v", renderTime)
	t.Logf("  Total time: %v", totalTime)

	if totalTime > 10*time.Second {
		t.Errorf("Total processing time %v exceeds 10 second threshold", totalTime)
	}
}

// TestResolveEveryClassification walks the whole classification space; every
// combination either resolves or reports a miss without panicking.
func TestResolveEveryClassification(t *testing.T) {
	resolved := 0
	for _, g := range listing.InvestmentGroups {
		for _, typ := range listing.InvestmentTypes {
			for _, lt := range listing.ListingTypes {
				for _, m := range listing.MarketTypes {
					lists, ok := catalog.Resolve(g, typ, lt, m)
					if !ok {
						continue
					}
					resolved++
					if _, ok := lists[listing.ContactInfo]; !ok {
						t.Errorf("%s/%s/%s/%s: missing contact info", g, typ, lt, m)
					}
				}
			}
		}
	}
	if resolved == 0 {
		t.Fatal("expected at least one mapped classification")
	}
	t.Logf("%d classifications resolve to field lists", resolved)
}

func BenchmarkBuild(b *testing.B) {
	p, err := project.Load("../../data/project.json")
	if err != nil {
		b.Fatalf("project.Load failed: %v", err)
	}
	builder := detail.NewBuilder(zap.NewNop(), "https://teaser.example.com")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.Build(&p.MasterProject)
	}
}
