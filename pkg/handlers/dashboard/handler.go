package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/export"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/chart"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/de-tools/sales-atlas/pkg/services/pipeline"
	"github.com/de-tools/sales-atlas/pkg/store/memory"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	store          memory.Store
	profiles       config.Registry
	maxUploadBytes int64
}

func NewHandler(store memory.Store, profiles config.Registry, maxUploadBytes int64) *Handler {
	return &Handler{
		store:          store,
		profiles:       profiles,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateDataset ingests an uploaded file. The multipart field "file" holds
// the data; the optional field "profile" names a column profile. A failed
// parse is a 400 with the error kind, never a silent fall back to the
// sample dataset.
func (h *Handler) CreateDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "failed to read file")
		return
	}

	mapping, err := h.profiles.GetMapping(ctx, r.FormValue("profile"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_profile", err.Error())
		return
	}

	source := dataset.Resolve(data, header.Filename, mapping)
	if source.Kind == dataset.SourceFailed {
		logger.Warn().
			Err(source.Err).
			Str("filename", header.Filename).
			Msg("upload rejected")
		writeError(w, http.StatusBadRequest, errorKind(source.Err), source.Err.Error())
		return
	}

	id, err := h.store.Add(ctx, source.Dataset)
	if err != nil {
		logger.Error().Err(err).Msg("failed to store dataset")
		writeError(w, http.StatusInternalServerError, "internal", "failed to store dataset")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(describeDataset(id, string(source.Kind), source.Dataset)); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

// GetDataset returns the descriptor the filter dropdowns are built from.
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	id := chi.URLParam(r, "dataset")
	ds, err := h.store.Get(ctx, id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	source := "uploaded"
	if id == memory.SampleID {
		source = "sample"
	}
	writeJSON(w, logger, describeDataset(id, source, ds))
}

// GetSummary computes the KPI block for the current filter selection.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	ds, err := h.store.Get(ctx, chi.URLParam(r, "dataset"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	_, summary := pipeline.Apply(ds, selectionFromQuery(r, ds))
	writeJSON(w, logger, summaryResponse(summary))
}

// GetRows returns the filtered table plus descriptive statistics.
func (h *Handler) GetRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	ds, err := h.store.Get(ctx, chi.URLParam(r, "dataset"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	rows, _ := pipeline.Apply(ds, selectionFromQuery(r, ds))
	page := api.TablePage{
		Columns: ds.Columns(),
		Rows:    make([][]string, 0, len(rows)),
		Stats:   statsResponse(pipeline.Describe(rows)),
	}
	for _, row := range rows {
		page.Rows = append(page.Rows, export.Record(row, ds.HasCategory))
	}
	writeJSON(w, logger, page)
}

// GetCharts builds the chart payloads. The pie chart is omitted when the
// dataset has no category column.
func (h *Handler) GetCharts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	ds, err := h.store.Get(ctx, chi.URLParam(r, "dataset"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	rows, summary := pipeline.Apply(ds, selectionFromQuery(r, ds))
	writeJSON(w, logger, api.Charts{
		Trend: chart.BuildTrend(rows),
		Bar:   chart.BuildBar(rows),
		Pie:   chart.BuildPie(summary.CategoryTotals),
	})
}

// Export streams the filtered rows as a download, CSV by default or XLSX
// with ?format=xlsx.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	ds, err := h.store.Get(ctx, chi.URLParam(r, "dataset"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	rows, _ := pipeline.Apply(ds, selectionFromQuery(r, ds))

	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="filtered_data.csv"`)
		err = export.WriteCSV(w, rows, ds.HasCategory)
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="filtered_data.xlsx"`)
		err = export.WriteXLSX(w, rows, ds.HasCategory)
	default:
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("unsupported format %q", format))
		return
	}

	if err != nil {
		logger.Error().Err(err).Msg("export failed")
	}
}

// selectionFromQuery derives the filter selection from query params. An
// absent param selects every distinct value (the dashboard's multiselects
// default to everything); a present-but-empty param selects nothing.
func selectionFromQuery(r *http.Request, ds domain.Dataset) domain.Selection {
	q := r.URL.Query()

	days := ds.Days()
	if _, ok := q["days"]; ok {
		days = splitValues(q["days"])
	}

	var categories []string
	if ds.HasCategory {
		categories = ds.Categories()
		if _, ok := q["categories"]; ok {
			categories = splitValues(q["categories"])
		}
	}

	return domain.NewSelection(days, categories)
}

// splitValues accepts both repeated params and comma-separated lists.
// Always returns a non-nil slice so "nothing selected" stays a selection.
func splitValues(params []string) []string {
	values := []string{}
	for _, p := range params {
		for _, v := range strings.Split(p, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func describeDataset(id, source string, ds domain.Dataset) api.Dataset {
	return api.Dataset{
		ID:         id,
		Source:     source,
		Columns:    ds.Columns(),
		Days:       ds.Days(),
		Categories: ds.Categories(),
		RowCount:   len(ds.Rows),
	}
}

func summaryResponse(s domain.Summary) api.Summary {
	resp := api.Summary{
		Rows:          s.Count,
		TotalSales:    s.TotalSales,
		TotalVisitors: s.TotalVisitors,
		MeanSales:     nullableFloat(s.MeanSales),
		MeanVisitors:  nullableFloat(s.MeanVisitors),
	}
	for _, t := range s.CategoryTotals {
		resp.CategoryTotals = append(resp.CategoryTotals, api.CategoryTotal{
			Category: t.Category,
			Sales:    t.Sales,
		})
	}
	return resp
}

func statsResponse(stats []domain.ColumnStats) []api.ColumnStats {
	out := make([]api.ColumnStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, api.ColumnStats{
			Column: s.Column,
			Count:  s.Count,
			Mean:   nullableFloat(s.Mean),
			Std:    nullableFloat(s.Std),
			Min:    nullableFloat(s.Min),
			P25:    nullableFloat(s.P25),
			Median: nullableFloat(s.Median),
			P75:    nullableFloat(s.P75),
			Max:    nullableFloat(s.Max),
		})
	}
	return out
}

// nullableFloat maps NaN (undefined mean over zero rows) to JSON null.
func nullableFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func errorKind(err error) string {
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		return "parse_error"
	}
	var schemaErr *domain.SchemaError
	if errors.As(err, &schemaErr) {
		return "schema_error"
	}
	return "bad_request"
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Kind: kind, Message: message})
}
