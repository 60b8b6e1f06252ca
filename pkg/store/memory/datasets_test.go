package memory

import (
	"context"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SampleSeed(t *testing.T) {
	store, err := NewStore(dataset.Sample(), 4)
	require.NoError(t, err)

	ds, err := store.Get(context.Background(), SampleID)
	require.NoError(t, err)
	assert.Len(t, ds.Rows, 7)
}

func TestStore_AddAndGet(t *testing.T) {
	store, err := NewStore(dataset.Sample(), 4)
	require.NoError(t, err)
	ctx := context.Background()

	uploaded := domain.Dataset{Rows: []domain.Row{{Day: "Senin", Sales: 1, Visitors: 1}}}
	id, err := store.Add(ctx, uploaded)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.NotEqual(t, SampleID, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uploaded, got)
}

func TestStore_GetUnknown(t *testing.T) {
	store, err := NewStore(dataset.Sample(), 4)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestStore_EvictsOldestUpload(t *testing.T) {
	store, err := NewStore(dataset.Sample(), 2)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := store.Add(ctx, domain.Dataset{})
	require.NoError(t, err)
	_, err = store.Add(ctx, domain.Dataset{})
	require.NoError(t, err)
	_, err = store.Add(ctx, domain.Dataset{})
	require.NoError(t, err)

	_, err = store.Get(ctx, first)
	assert.Error(t, err, "oldest upload should be evicted")

	_, err = store.Get(ctx, SampleID)
	assert.NoError(t, err, "the sample dataset is never evicted")
}

func TestStore_RejectsNonPositiveSize(t *testing.T) {
	_, err := NewStore(dataset.Sample(), 0)
	assert.Error(t, err)
}
