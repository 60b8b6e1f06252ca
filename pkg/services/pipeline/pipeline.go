// Package pipeline implements the filter-and-summarize pass the dashboard
// runs on every interaction. It is a pure function of (dataset, selection):
// no state survives between calls.
package pipeline

import (
	"math"
	"sort"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Apply filters the dataset by the selection and computes the summary over
// the surviving rows. The filter is stable: rows keep their original order
// and are never duplicated. With zero surviving rows the totals are zero
// and both means are NaN.
func Apply(ds domain.Dataset, sel domain.Selection) ([]domain.Row, domain.Summary) {
	var rows []domain.Row
	for _, r := range ds.Rows {
		if sel.Matches(r) {
			rows = append(rows, r)
		}
	}

	summary := domain.Summary{Count: len(rows)}
	for _, r := range rows {
		summary.TotalSales += r.Sales
		summary.TotalVisitors += r.Visitors
	}
	if summary.Count > 0 {
		summary.MeanSales = summary.TotalSales / float64(summary.Count)
		summary.MeanVisitors = summary.TotalVisitors / float64(summary.Count)
	} else {
		summary.MeanSales = math.NaN()
		summary.MeanVisitors = math.NaN()
	}

	if ds.HasCategory {
		summary.CategoryTotals = groupByCategory(rows)
	}

	return rows, summary
}

// groupByCategory sums sales per category. Group order is first occurrence
// within the filtered sequence, not sorted.
func groupByCategory(rows []domain.Row) []domain.CategoryTotal {
	index := make(map[string]int, len(rows))
	totals := make([]domain.CategoryTotal, 0, len(rows))
	for _, r := range rows {
		i, ok := index[r.Category]
		if !ok {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, domain.CategoryTotal{Category: r.Category})
		}
		totals[i].Sales += r.Sales
	}
	return totals
}

// Describe computes the descriptive-statistics block for both numeric
// columns over the given rows.
func Describe(rows []domain.Row) []domain.ColumnStats {
	sales := make([]float64, len(rows))
	visitors := make([]float64, len(rows))
	for i, r := range rows {
		sales[i] = r.Sales
		visitors[i] = r.Visitors
	}
	return []domain.ColumnStats{
		describeColumn(domain.ColumnSales, sales),
		describeColumn(domain.ColumnVisitors, visitors),
	}
}

func describeColumn(name string, values []float64) domain.ColumnStats {
	stats := domain.ColumnStats{Column: name, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		stats.Mean, stats.Std = nan, nan
		stats.Min, stats.P25, stats.Median, stats.P75, stats.Max = nan, nan, nan, nan, nan
		return stats
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	stats.Mean = sum / float64(len(values))
	stats.Std = sampleStd(values, stats.Mean)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.P25 = percentile(sorted, 0.25)
	stats.Median = percentile(sorted, 0.5)
	stats.P75 = percentile(sorted, 0.75)
	return stats
}

func sampleStd(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// percentile interpolates linearly between closest ranks of an already
// sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
