package pipeline

import (
	"sort"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// KeyFunc extracts a numeric value from a merged record.
type KeyFunc func(entity.MergedRecord) decimal.Decimal

// Field is a named value summed by Breakdown.
type Field struct {
	Label string
	Value KeyFunc
}

// UsageKey sums the kWh of the given categories.
func UsageKey(categories ...entity.Category) KeyFunc {
	return func(r entity.MergedRecord) decimal.Decimal {
		return SumKWh(r, categories)
	}
}

// CountKey sums the user counts of the given categories.
func CountKey(categories ...entity.Category) KeyFunc {
	return func(r entity.MergedRecord) decimal.Decimal {
		return decimal.NewFromInt(SumCounts(r, categories))
	}
}

// UsageFields returns one kWh field per category.
func UsageFields(categories ...entity.Category) []Field {
	fields := make([]Field, 0, len(categories))
	for _, c := range categories {
		fields = append(fields, Field{Label: c.Label(), Value: UsageKey(c)})
	}
	return fields
}

// CountFields returns one user-count field per category.
func CountFields(categories ...entity.Category) []Field {
	fields := make([]Field, 0, len(categories))
	for _, c := range categories {
		fields = append(fields, Field{Label: c.Label(), Value: CountKey(c)})
	}
	return fields
}

// SumCounts adds up the user counts of a record over the given categories.
func SumCounts(r entity.MergedRecord, categories []entity.Category) int64 {
	var total int64
	for _, c := range categories {
		total += r.Count(c)
	}
	return total
}

// SumKWh adds up the consumption of a record over the given categories.
func SumKWh(r entity.MergedRecord, categories []entity.Category) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(r.KWh(c))
	}
	return total
}

// Summarize computes the headline totals of a record set.
func Summarize(records []entity.MergedRecord) entity.AggregateSummary {
	summary := entity.AggregateSummary{
		TotalUsageKWh: decimal.Zero,
		ProvinceCount: len(records),
	}
	for _, r := range records {
		summary.TotalUsers += SumCounts(r, UserCountCategories)
		summary.TotalUsageKWh = summary.TotalUsageKWh.Add(SumKWh(r, UsageCategories))
		summary.EVChargingSessions += r.Count(entity.EVCharging)
	}
	return summary
}

// TopN returns the n records with the highest key, highest first. Records
// with equal keys keep their original relative order. The input slice is
// left untouched.
func TopN(records []entity.MergedRecord, n int, key KeyFunc) []entity.MergedRecord {
	if n <= 0 || len(records) == 0 {
		return []entity.MergedRecord{}
	}

	ranked := rank(records, key)
	if n > len(ranked) {
		n = len(ranked)
	}

	top := make([]entity.MergedRecord, 0, n)
	for _, r := range ranked[:n] {
		top = append(top, r.record)
	}
	return top
}

// RankingSeries turns the TopN result into a chart series labelled by province.
func RankingSeries(records []entity.MergedRecord, n int, key KeyFunc) entity.ChartSeries {
	series := entity.ChartSeries{Points: []entity.Point{}}
	for _, r := range TopN(records, n, key) {
		series.Points = append(series.Points, entity.Point{Label: r.ProvinceName, Value: key(r)})
	}
	return series
}

// Breakdown sums each field over the record set. Points follow the field
// order, never the value order, so chart colors stay stable across renders.
func Breakdown(records []entity.MergedRecord, fields []Field) entity.ChartSeries {
	series := entity.ChartSeries{Points: make([]entity.Point, 0, len(fields))}
	for _, f := range fields {
		total := decimal.Zero
		for _, r := range records {
			total = total.Add(f.Value(r))
		}
		series.Points = append(series.Points, entity.Point{Label: f.Label, Value: total})
	}
	return series
}

type rankedRecord struct {
	record entity.MergedRecord
	key    decimal.Decimal
}

func rank(records []entity.MergedRecord, key KeyFunc) []rankedRecord {
	ranked := make([]rankedRecord, len(records))
	for i, r := range records {
		ranked[i] = rankedRecord{record: r, key: key(r)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].key.GreaterThan(ranked[j].key)
	})
	return ranked
}
