// Package export writes filtered rows back out in the same schema they
// were loaded with.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// WriteCSV writes a header row plus one record per row, UTF-8, using the
// canonical column names. The output re-parses to an equal dataset.
func WriteCSV(w io.Writer, rows []domain.Row, hasCategory bool) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header(hasCategory)); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(Record(r, hasCategory)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func header(hasCategory bool) []string {
	if hasCategory {
		return []string{domain.ColumnDay, domain.ColumnCategory, domain.ColumnSales, domain.ColumnVisitors}
	}
	return []string{domain.ColumnDay, domain.ColumnSales, domain.ColumnVisitors}
}

// Record renders one row as field strings in canonical column order. The
// table endpoint uses it too, keeping the on-screen table and the CSV
// download in the same format.
func Record(r domain.Row, hasCategory bool) []string {
	sales := strconv.FormatFloat(r.Sales, 'f', -1, 64)
	visitors := strconv.FormatFloat(r.Visitors, 'f', -1, 64)
	if hasCategory {
		return []string{r.Day, r.Category, sales, visitors}
	}
	return []string{r.Day, sales, visitors}
}
