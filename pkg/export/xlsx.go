package export

import (
	"fmt"
	"io"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteXLSX writes the filtered rows as a single-sheet workbook with the
// same schema as WriteCSV.
func WriteXLSX(w io.Writer, rows []domain.Row, hasCategory bool) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, stringsToAny(header(hasCategory))); err != nil {
		return err
	}

	for i, r := range rows {
		values := []interface{}{r.Day, r.Sales, r.Visitors}
		if hasCategory {
			values = []interface{}{r.Day, r.Category, r.Sales, r.Visitors}
		}
		if err := setRow(f, i+2, values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", row, err)
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

func stringsToAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
