package api

// Dataset describes a loaded dataset to the frontend: where it came from,
// its schema, and the distinct values the filter dropdowns offer.
type Dataset struct {
	ID         string   `json:"id"`
	Source     string   `json:"source"` // "uploaded" or "sample"
	Columns    []string `json:"columns"`
	Days       []string `json:"days"`
	Categories []string `json:"categories,omitempty"`
	RowCount   int      `json:"row_count"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}

// Summary is the KPI block. Means are null when no rows matched the filter.
type Summary struct {
	Rows           int             `json:"rows"`
	TotalSales     float64         `json:"total_sales"`
	TotalVisitors  float64         `json:"total_visitors"`
	MeanSales      *float64        `json:"mean_sales"`
	MeanVisitors   *float64        `json:"mean_visitors"`
	CategoryTotals []CategoryTotal `json:"category_totals,omitempty"`
}

type ColumnStats struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	P25    *float64 `json:"p25"`
	Median *float64 `json:"median"`
	P75    *float64 `json:"p75"`
	Max    *float64 `json:"max"`
}

// TablePage carries the filtered rows for the data tab together with the
// descriptive statistics expander.
type TablePage struct {
	Columns []string      `json:"columns"`
	Rows    [][]string    `json:"rows"`
	Stats   []ColumnStats `json:"stats"`
}

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// ChartConfig is a renderer-agnostic chart description the dashboard page
// feeds to its plotting library.
type ChartConfig struct {
	ChartType  string        `json:"chart_type"` // line, bar, pie
	Title      string        `json:"title"`
	XAxis      string        `json:"x_axis,omitempty"`
	YAxis      string        `json:"y_axis,omitempty"`
	ShowLegend bool          `json:"show_legend"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors"`
}

// Charts is the full chart payload for one filter state. Pie is nil when
// the dataset has no category column.
type Charts struct {
	Trend *ChartConfig `json:"trend"`
	Bar   *ChartConfig `json:"bar"`
	Pie   *ChartConfig `json:"pie,omitempty"`
}

// Error is the uniform error body. Kind distinguishes parse failures from
// schema violations so the UI can phrase the message accordingly.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
