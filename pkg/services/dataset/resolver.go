package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// ColumnMapping names the source headers that hold each canonical column.
// Uploads with localized headers declare a mapping via a column profile.
type ColumnMapping struct {
	Day      string
	Category string
	Sales    string
	Visitors string
}

// DefaultMapping matches uploads that already use the canonical schema.
func DefaultMapping() ColumnMapping {
	return ColumnMapping{
		Day:      domain.ColumnDay,
		Category: domain.ColumnCategory,
		Sales:    domain.ColumnSales,
		Visitors: domain.ColumnVisitors,
	}
}

// SourceKind tags where a resolved dataset came from.
type SourceKind string

const (
	SourceUploaded SourceKind = "uploaded"
	SourceSample   SourceKind = "sample"
	SourceFailed   SourceKind = "failed"
)

// Source is the tagged result of resolving a dataset. A failed upload is
// reported as SourceFailed with Err set; it is never silently replaced by
// the sample dataset.
type Source struct {
	Kind    SourceKind
	Dataset domain.Dataset
	Err     error
}

// Resolve produces a dataset from an optional upload. A nil upload yields
// the built-in sample; a non-nil upload is parsed by file extension and any
// failure is carried in the result rather than masked.
func Resolve(upload []byte, filename string, mapping ColumnMapping) Source {
	if upload == nil {
		return Source{Kind: SourceSample, Dataset: Sample()}
	}

	var (
		ds  domain.Dataset
		err error
	)
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		ds, err = ParseXLSX(bytes.NewReader(upload), mapping)
	} else {
		ds, err = ParseCSV(bytes.NewReader(upload), mapping)
	}
	if err != nil {
		return Source{Kind: SourceFailed, Err: err}
	}
	return Source{Kind: SourceUploaded, Dataset: ds}
}

// ParseCSV reads delimited text with a header row into a dataset. It
// returns *domain.ParseError for undecodable or ragged input and
// *domain.SchemaError when required columns are missing or a numeric
// column holds a non-numeric value.
func ParseCSV(r io.Reader, mapping ColumnMapping) (domain.Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return domain.Dataset{}, &domain.ParseError{Reason: err.Error()}
	}
	if !utf8.Valid(raw) {
		return domain.Dataset{}, &domain.ParseError{Reason: "input is not valid UTF-8"}
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	records, err := reader.ReadAll()
	if err != nil {
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			return domain.Dataset{}, &domain.ParseError{Line: csvErr.Line, Reason: csvErr.Err.Error()}
		}
		return domain.Dataset{}, &domain.ParseError{Reason: err.Error()}
	}
	if len(records) == 0 {
		return domain.Dataset{}, &domain.ParseError{Reason: "empty input"}
	}

	return fromRecords(records, mapping)
}

// fromRecords builds a dataset from header + data records. Shared by the
// CSV and XLSX parsers; records are assumed rectangular by the time they
// arrive here (the CSV reader enforces it, the XLSX parser pads).
func fromRecords(records [][]string, mapping ColumnMapping) (domain.Dataset, error) {
	header := records[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	dayIdx, ok := index[mapping.Day]
	if !ok {
		return domain.Dataset{}, &domain.SchemaError{Column: mapping.Day, Reason: "required column missing"}
	}
	salesIdx, ok := index[mapping.Sales]
	if !ok {
		return domain.Dataset{}, &domain.SchemaError{Column: mapping.Sales, Reason: "required column missing"}
	}
	visitorsIdx, ok := index[mapping.Visitors]
	if !ok {
		return domain.Dataset{}, &domain.SchemaError{Column: mapping.Visitors, Reason: "required column missing"}
	}
	categoryIdx, hasCategory := index[mapping.Category]

	ds := domain.Dataset{
		Rows:        make([]domain.Row, 0, len(records)-1),
		HasCategory: hasCategory,
	}
	for i, rec := range records[1:] {
		line := i + 2 // 1-based, after the header
		sales, err := parseNumber(rec[salesIdx])
		if err != nil {
			return domain.Dataset{}, &domain.SchemaError{
				Column: mapping.Sales,
				Line:   line,
				Reason: fmt.Sprintf("value %q is not numeric", rec[salesIdx]),
			}
		}
		visitors, err := parseNumber(rec[visitorsIdx])
		if err != nil {
			return domain.Dataset{}, &domain.SchemaError{
				Column: mapping.Visitors,
				Line:   line,
				Reason: fmt.Sprintf("value %q is not numeric", rec[visitorsIdx]),
			}
		}

		row := domain.Row{
			Day:      strings.TrimSpace(rec[dayIdx]),
			Sales:    sales,
			Visitors: visitors,
		}
		if hasCategory {
			row.Category = strings.TrimSpace(rec[categoryIdx])
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// parseNumber rejects NaN and ±Inf as well: ParseFloat accepts them, but
// they are not measured quantities and cannot be rendered as JSON.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return v, nil
}
