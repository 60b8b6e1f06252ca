package chart

import (
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrend(t *testing.T) {
	cfg := BuildTrend(dataset.Sample().Rows)

	assert.Equal(t, "line", cfg.ChartType)
	require.Len(t, cfg.Series, 2)
	assert.Equal(t, "Sales", cfg.Series[0].Name)
	assert.Equal(t, "Visitors", cfg.Series[1].Name)
	require.Len(t, cfg.Series[0].Points, 7)
	assert.Equal(t, "Senin", cfg.Series[0].Points[0].Label)
	assert.Equal(t, 120.0, cfg.Series[0].Points[0].Value)
	assert.Equal(t, 50.0, cfg.Series[1].Points[0].Value)
	assert.Len(t, cfg.Colors, 2)
}

func TestBuildBar(t *testing.T) {
	cfg := BuildBar(dataset.Sample().Rows)

	assert.Equal(t, "bar", cfg.ChartType)
	require.Len(t, cfg.Series, 1)
	assert.Len(t, cfg.Series[0].Points, 7)
	assert.False(t, cfg.ShowLegend)
}

func TestBuildPie(t *testing.T) {
	totals := []domain.CategoryTotal{
		{Category: "Makanan", Sales: 590},
		{Category: "Minuman", Sales: 540},
	}

	cfg := BuildPie(totals)
	require.NotNil(t, cfg)
	assert.Equal(t, "pie", cfg.ChartType)
	require.Len(t, cfg.Series, 1)
	require.Len(t, cfg.Series[0].Points, 2)
	assert.Equal(t, "Makanan", cfg.Series[0].Points[0].Label)
	assert.Equal(t, 590.0, cfg.Series[0].Points[0].Value)
	assert.Len(t, cfg.Colors, 2)
}

func TestBuildPie_NoCategoryColumn(t *testing.T) {
	assert.Nil(t, BuildPie(nil))
}

func TestBuildCharts_EmptyRows(t *testing.T) {
	trend := BuildTrend(nil)
	assert.Empty(t, trend.Series[0].Points)

	bar := BuildBar(nil)
	assert.Empty(t, bar.Series[0].Points)

	pie := BuildPie([]domain.CategoryTotal{})
	require.NotNil(t, pie, "empty totals still render an empty pie")
	assert.Empty(t, pie.Series[0].Points)
}
