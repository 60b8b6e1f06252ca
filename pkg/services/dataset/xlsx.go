package dataset

import (
	"io"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the first sheet of a workbook into a dataset. Rows are
// padded to the header width (sheet readers drop trailing empty cells) and
// fully empty rows are skipped. Error semantics match ParseCSV.
func ParseXLSX(r io.Reader, mapping ColumnMapping) (domain.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.Dataset{}, &domain.ParseError{Reason: err.Error()}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return domain.Dataset{}, &domain.ParseError{Reason: "workbook has no sheets"}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Dataset{}, &domain.ParseError{Reason: err.Error()}
	}
	if len(rows) == 0 {
		return domain.Dataset{}, &domain.ParseError{Reason: "empty sheet"}
	}

	width := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		records = append(records, row)
	}

	return fromRecords(records, mapping)
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
