package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilesFixture = `[warung]
day = Hari
category = Kategori
sales = Penjualan
visitors = Pengunjung

[partial]
sales = Omzet
`

func writeProfiles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(path, []byte(profilesFixture), 0o600))
	return path
}

func TestRegistry_GetProfiles(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t))
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"warung", "partial"}, profiles)
}

func TestRegistry_GetMapping(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t))
	require.NoError(t, err)
	ctx := context.Background()

	mapping, err := registry.GetMapping(ctx, "warung")
	require.NoError(t, err)
	assert.Equal(t, dataset.ColumnMapping{
		Day:      "Hari",
		Category: "Kategori",
		Sales:    "Penjualan",
		Visitors: "Pengunjung",
	}, mapping)
}

func TestRegistry_GetMapping_PartialProfileKeepsDefaults(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t))
	require.NoError(t, err)

	mapping, err := registry.GetMapping(context.Background(), "partial")
	require.NoError(t, err)

	expected := dataset.DefaultMapping()
	expected.Sales = "Omzet"
	assert.Equal(t, expected, mapping)
}

func TestRegistry_GetMapping_EmptyProfileIsDefault(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t))
	require.NoError(t, err)

	mapping, err := registry.GetMapping(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, dataset.DefaultMapping(), mapping)
}

func TestRegistry_GetMapping_UnknownProfile(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t))
	require.NoError(t, err)

	_, err = registry.GetMapping(context.Background(), "nope")
	assert.Error(t, err)
}

func TestEmptyRegistry(t *testing.T) {
	registry := EmptyRegistry{}
	ctx := context.Background()

	profiles, err := registry.GetProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	mapping, err := registry.GetMapping(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, dataset.DefaultMapping(), mapping)

	_, err = registry.GetMapping(ctx, "anything")
	assert.Error(t, err)
}
