package pipeline

import (
	"context"
	"fmt"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
)

// DefaultTopN is the size of the top provinces ranking.
const DefaultTopN = 10

// Pipeline owns the merged record set, built once at startup and only read
// afterwards, and derives a fresh dashboard view for every filter state.
type Pipeline struct {
	records   []entity.MergedRecord
	provinces []string
	topN      int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTopN sets the ranking size; values below one keep the default.
func WithTopN(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.topN = n
		}
	}
}

// New builds a pipeline over an already merged record set.
func New(records []entity.MergedRecord, opts ...Option) *Pipeline {
	p := &Pipeline{
		records: append([]entity.MergedRecord(nil), records...),
		topN:    DefaultTopN,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.provinces = Provinces(p.records)
	return p
}

// Load fetches both datasets and merges them. Any load failure aborts the
// whole load; there is no partial merge.
func Load(ctx context.Context, repo repository.DatasetRepository, sources entity.Sources) ([]entity.MergedRecord, error) {
	datasets, err := repo.Load(ctx, sources)
	if err != nil {
		return nil, err
	}
	return Merge(datasets.Users, datasets.Usages), nil
}

// Records returns a copy of the full merged set.
func (p *Pipeline) Records() []entity.MergedRecord {
	return append([]entity.MergedRecord(nil), p.records...)
}

// Provinces returns the sorted distinct province names.
func (p *Pipeline) Provinces() []string {
	return append([]string(nil), p.provinces...)
}

// TopN returns the configured ranking size.
func (p *Pipeline) TopN() int {
	return p.topN
}

// View runs filter, aggregation and presentation for one query.
func (p *Pipeline) View(q entity.Query) entity.DashboardView {
	records := Filter(p.records, q)
	summary := Summarize(records)

	return entity.DashboardView{
		Query:   q,
		Summary: summary,
		Cards:   Cards(summary),
		Table:   BuildTable(records),
		TopProvinces: Decorate(
			RankingSeries(records, p.topN, UsageKey(RankingCategories...)),
			entity.ChartTopProvinces,
			fmt.Sprintf("Top %d Provinces by Usage", p.topN),
			"kWh",
		),
		UsageDistribution: Decorate(
			Breakdown(records, UsageFields(BreakdownCategories...)),
			entity.ChartUsageDistribution,
			"Usage Distribution by Category",
			"kWh",
		),
		UserCategories: Decorate(
			Breakdown(records, CountFields(BreakdownCategories...)),
			entity.ChartUserCategories,
			"Users by Category",
			"users",
		),
		Empty: len(records) == 0,
	}
}
