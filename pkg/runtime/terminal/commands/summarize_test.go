package commands

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/de-tools/sales-atlas/pkg/services/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelection_Defaults(t *testing.T) {
	ds := dataset.Sample()

	sel := buildSelection(ds, nil, nil)

	assert.Len(t, sel.Days, 7)
	assert.Len(t, sel.Categories, 2)
}

func TestBuildSelection_Explicit(t *testing.T) {
	ds := dataset.Sample()

	sel := buildSelection(ds, []string{"Senin"}, []string{"Makanan"})

	assert.Len(t, sel.Days, 1)
	assert.Len(t, sel.Categories, 1)
	assert.True(t, sel.Matches(domain.Row{Day: "Senin", Category: "Makanan"}))
	assert.False(t, sel.Matches(domain.Row{Day: "Senin", Category: "Minuman"}))
}

func TestBuildSelection_NoCategoryColumn(t *testing.T) {
	ds := domain.Dataset{Rows: []domain.Row{{Day: "Senin"}}}

	sel := buildSelection(ds, nil, []string{"Makanan"})

	assert.Nil(t, sel.Categories, "category filter stays inactive without a category column")
}

func TestBuildReport(t *testing.T) {
	ds := dataset.Sample()
	rows, summary := pipeline.Apply(ds, buildSelection(ds, nil, nil))
	stats := pipeline.Describe(rows)

	report := buildReport("sample", summary, stats)

	assert.Equal(t, "Sales Summary", report.Title)
	assert.Equal(t, "sample", report.Source)
	assert.Equal(t, 7, report.RowCount)
	require.Len(t, report.Sections, 3)

	kpi := report.Sections[0]
	require.Len(t, kpi.Details, 4)
	assert.Equal(t, "1130", kpi.Details[0].Value)
	assert.Equal(t, "530", kpi.Details[1].Value)
	assert.Equal(t, "161.43", kpi.Details[2].Value)

	categories := report.Sections[1]
	require.Len(t, categories.Details, 2)
	assert.Equal(t, "Makanan", categories.Details[0].Name)
	assert.Equal(t, "590", categories.Details[0].Value)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "n/a", formatValue(math.NaN()))
	assert.Equal(t, "161.43", formatValue(161.42857))
	assert.Equal(t, "1130", formatValue(1130))
	assert.Equal(t, "75.7", formatValue(75.7))
}

func TestLoadDataset_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "day,category,salesCount,visitorCount\nSenin,Makanan,120,50\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cmd := NewColumnsCmd()
	ds, source, err := loadDataset(cmd, path, "", "")
	require.NoError(t, err)

	assert.Equal(t, path, source)
	assert.Len(t, ds.Rows, 1)
}

func TestLoadDataset_SampleFallback(t *testing.T) {
	cmd := NewColumnsCmd()

	ds, source, err := loadDataset(cmd, "", "", "")
	require.NoError(t, err)

	assert.Equal(t, "sample", source)
	assert.Len(t, ds.Rows, 7)
}

func TestLoadDataset_BadFileSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("day,category\na,b,c\n"), 0o600))

	cmd := NewColumnsCmd()
	_, _, err := loadDataset(cmd, path, "", "")

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
}
