package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
)

type stubDatasets struct {
	datasets entity.Datasets
	err      error
	calls    int
}

func (s *stubDatasets) Load(_ context.Context, _ entity.Sources) (entity.Datasets, error) {
	s.calls++
	return s.datasets, s.err
}

func TestLoadMerges(t *testing.T) {
	repo := &stubDatasets{datasets: entity.Datasets{
		Users:  alphaBeta(),
		Usages: []entity.UsageRecord{{ProvinceCode: entity.StringCode("B"), ResidentialKWh: kwh("42")}},
	}}

	merged, err := Load(context.Background(), repo, entity.Sources{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(merged) != 2 || merged[0].HasUsage() || !merged[1].HasUsage() {
		t.Fatalf("unexpected merge result: %+v", merged)
	}
}

func TestLoadFailureAbortsMerge(t *testing.T) {
	repo := &stubDatasets{
		datasets: entity.Datasets{Users: alphaBeta()},
		err:      entity.NewParseError("usages.json", errors.New("missing wrapper")),
	}

	merged, err := Load(context.Background(), repo, entity.Sources{})
	if !errors.Is(err, entity.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if merged != nil {
		t.Fatal("no partial merge on failure")
	}
}

func TestViewScenarios(t *testing.T) {
	p := New(Merge(alphaBeta(), nil))

	all := p.View(entity.Query{})
	if all.Summary.TotalUsers != 15 || !all.Summary.TotalUsageKWh.IsZero() || all.Empty {
		t.Fatalf("unexpected unfiltered view: %+v", all.Summary)
	}

	alpha := p.View(entity.Query{Province: "Alpha"})
	if len(alpha.Table.Rows) != 1 || alpha.Table.Rows[0].ProvinceName != "Alpha" {
		t.Fatalf("province filter: %+v", alpha.Table.Rows)
	}
	if alpha.Summary.ProvinceCount != 1 || alpha.Cards.ProvinceCount != "1" {
		t.Fatalf("province count must follow the filter: %+v", alpha.Summary)
	}

	beta := p.View(entity.Query{Search: "eta"})
	if len(beta.Table.Rows) != 1 || beta.Table.Rows[0].ProvinceName != "Beta" {
		t.Fatalf("search filter: %+v", beta.Table.Rows)
	}

	none := p.View(entity.Query{Search: "zzz"})
	if !none.Empty || len(none.Table.Rows) != 0 || len(none.TopProvinces.Points) != 0 {
		t.Fatalf("expected empty view: %+v", none)
	}
	if !none.UsageDistribution.IsEmpty() || !none.UserCategories.IsEmpty() {
		t.Fatal("empty view has nothing to chart")
	}
}

func TestViewCharts(t *testing.T) {
	p := New(sampleRecords(), WithTopN(2))
	view := p.View(entity.Query{})

	if view.TopProvinces.Kind != entity.ChartTopProvinces || len(view.TopProvinces.Points) != 2 {
		t.Fatalf("ranking: %+v", view.TopProvinces)
	}
	if view.TopProvinces.Title != "Top 2 Provinces by Usage" {
		t.Fatalf("ranking title: %q", view.TopProvinces.Title)
	}
	if got := view.TopProvinces.Points[0].Display; got != "7,000 kWh" {
		t.Fatalf("ranking display: %q", got)
	}
	if got := view.UserCategories.Points[0]; got.Label != "Residential" || got.Display != "6,050 users" {
		t.Fatalf("user categories: %+v", got)
	}
	if len(view.UsageDistribution.Points) != 5 {
		t.Fatalf("usage distribution: %+v", view.UsageDistribution)
	}

	for _, kind := range entity.ChartKinds {
		if _, ok := view.Series(kind); !ok {
			t.Fatalf("missing series %s", kind)
		}
	}
}

func TestPipelineIsolation(t *testing.T) {
	records := sampleRecords()
	p := New(records)
	records[0].ProvinceName = "mutated"

	if p.Records()[0].ProvinceName != "Aceh" {
		t.Fatal("pipeline must keep its own copy of the merged set")
	}
	provinces := p.Provinces()
	provinces[0] = "mutated"
	if p.Provinces()[0] != "Aceh" {
		t.Fatal("Provinces must return a copy")
	}
	if p.TopN() != DefaultTopN {
		t.Fatalf("default top n: %d", p.TopN())
	}
}
