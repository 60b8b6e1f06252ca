package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_RoundTrip(t *testing.T) {
	ds := dataset.Sample()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds.Rows, ds.HasCategory))

	reparsed, err := dataset.ParseCSV(&buf, dataset.DefaultMapping())
	require.NoError(t, err)

	assert.Equal(t, ds, reparsed, "exported rows must re-parse to an equal dataset")
}

func TestWriteCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, true))
	assert.Equal(t, "day,category,salesCount,visitorCount\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, nil, false))
	assert.Equal(t, "day,salesCount,visitorCount\n", buf.String())
}

func TestWriteCSV_FilteredSubset(t *testing.T) {
	ds := dataset.Sample()
	subset := ds.Rows[1:3]

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, subset, true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Selasa,Minuman,150,60", lines[1])
	assert.Equal(t, "Rabu,Makanan,90,30", lines[2])
}

func TestRecord(t *testing.T) {
	row := domain.Row{Day: "Senin", Category: "Makanan", Sales: 120, Visitors: 50}

	assert.Equal(t, []string{"Senin", "Makanan", "120", "50"}, Record(row, true))
	assert.Equal(t, []string{"Senin", "120", "50"}, Record(row, false))
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	ds := dataset.Sample()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, ds.Rows, ds.HasCategory))

	reparsed, err := dataset.ParseXLSX(&buf, dataset.DefaultMapping())
	require.NoError(t, err)

	assert.Equal(t, ds, reparsed)
}
