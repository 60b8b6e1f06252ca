package domain

// Canonical column names. Uploads with different header names are mapped
// onto these via a column profile before the schema check runs.
const (
	ColumnDay      = "day"
	ColumnCategory = "category"
	ColumnSales    = "salesCount"
	ColumnVisitors = "visitorCount"
)

// Row is a single observation: one day's sales and visitor counts,
// optionally tagged with a category.
type Row struct {
	Day      string
	Category string
	Sales    float64
	Visitors float64
}

// Dataset is an immutable in-memory table loaded once per upload (or once
// for the built-in sample). Rows keep their source order.
type Dataset struct {
	Rows        []Row
	HasCategory bool
}

// Columns returns the dataset schema in canonical order.
func (d Dataset) Columns() []string {
	if d.HasCategory {
		return []string{ColumnDay, ColumnCategory, ColumnSales, ColumnVisitors}
	}
	return []string{ColumnDay, ColumnSales, ColumnVisitors}
}

// Days returns the distinct day values in first-occurrence order.
func (d Dataset) Days() []string {
	return distinct(d.Rows, func(r Row) string { return r.Day })
}

// Categories returns the distinct category values in first-occurrence
// order, or nil when the dataset has no category column.
func (d Dataset) Categories() []string {
	if !d.HasCategory {
		return nil
	}
	return distinct(d.Rows, func(r Row) string { return r.Category })
}

func distinct(rows []Row, key func(Row) string) []string {
	seen := make(map[string]struct{}, len(rows))
	var values []string
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	return values
}
