// Package chart turns filtered rows and summaries into renderer-agnostic
// chart configurations for the dashboard page.
package chart

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildTrend is the line chart of both numeric columns over the day axis.
func BuildTrend(rows []domain.Row) *api.ChartConfig {
	sales := make([]api.ChartPoint, 0, len(rows))
	visitors := make([]api.ChartPoint, 0, len(rows))
	for _, r := range rows {
		sales = append(sales, api.ChartPoint{Label: r.Day, Value: r.Sales})
		visitors = append(visitors, api.ChartPoint{Label: r.Day, Value: r.Visitors})
	}

	return &api.ChartConfig{
		ChartType:  "line",
		Title:      "Sales & Visitors Trend",
		XAxis:      "Day",
		YAxis:      "Count",
		ShowLegend: true,
		Series: []api.ChartSeries{
			{Name: "Sales", Points: sales},
			{Name: "Visitors", Points: visitors},
		},
		Colors: assignColors(2),
	}
}

// BuildBar is the per-day sales bar chart.
func BuildBar(rows []domain.Row) *api.ChartConfig {
	points := make([]api.ChartPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, api.ChartPoint{Label: r.Day, Value: r.Sales})
	}

	return &api.ChartConfig{
		ChartType:  "bar",
		Title:      "Sales per Day",
		XAxis:      "Day",
		YAxis:      "Sales",
		ShowLegend: false,
		Series:     []api.ChartSeries{{Name: "Sales", Points: points}},
		Colors:     assignColors(1),
	}
}

// BuildPie is the sales-per-category pie chart. Returns nil when the
// summary carries no category totals (no category column in the dataset).
func BuildPie(totals []domain.CategoryTotal) *api.ChartConfig {
	if totals == nil {
		return nil
	}

	points := make([]api.ChartPoint, 0, len(totals))
	for _, t := range totals {
		points = append(points, api.ChartPoint{Label: t.Category, Value: t.Sales})
	}

	return &api.ChartConfig{
		ChartType:  "pie",
		Title:      "Sales Distribution per Category",
		ShowLegend: true,
		Series:     []api.ChartSeries{{Name: "Sales", Points: points}},
		Colors:     assignColors(len(points)),
	}
}

func assignColors(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
