package domain

// CategoryTotal is the sales total for one category over the filtered rows.
type CategoryTotal struct {
	Category string
	Sales    float64
}

// Summary holds the aggregates computed over the filtered rows. MeanSales
// and MeanVisitors are NaN when Count is zero; callers rendering JSON map
// that to null rather than a number.
type Summary struct {
	Count          int
	TotalSales     float64
	TotalVisitors  float64
	MeanSales      float64
	MeanVisitors   float64
	CategoryTotals []CategoryTotal
}

// ColumnStats are descriptive statistics for one numeric column: the
// count/mean/std/min/quartiles/max block of the data tab. Std is the
// sample standard deviation and is NaN when Count < 2; the order
// statistics use linear interpolation between closest ranks.
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}
