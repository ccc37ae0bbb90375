// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalatguide/dalatguide/internal/engine"
)

const sampleCatalog = `[
  {
    "id": 1,
    "name": "Quán Cà Phê Mây",
    "type": "cafe",
    "best_weather": ["rainy", "cloudy"],
    "opening_hours": {"open": "07:00", "close": "22:00"},
    "price_range": "30.000 - 60.000 VND",
    "lat": 11.9404,
    "lng": 108.4583
  },
  {
    "id": 2,
    "name": "Thác Datanla",
    "type": "waterfall",
    "lat": 11.8984,
    "lng": 108.4497
  }
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileStoreLoadsPlaces(t *testing.T) {
	store := NewFileStore(writeCatalog(t, sampleCatalog))

	places, err := store.Places(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)

	cafe := places[0]
	assert.Equal(t, "cafe", cafe.Type)
	assert.True(t, cafe.HasBestWeather(engine.WeatherRainy))
	require.NotNil(t, cafe.Hours)
	assert.Equal(t, 7*60, cafe.Hours.Open)
	assert.Equal(t, 22*60, cafe.Hours.Close)

	// Optional fields default defensively: no hours means always open, no
	// best_weather means no affinity, no price counts as cheap downstream.
	fall := places[1]
	assert.Nil(t, fall.Hours)
	assert.Empty(t, fall.BestWeather)
	assert.Empty(t, fall.PriceRange)
	assert.True(t, fall.Hours.OpenAtMinute(3*60))
}

// TestFileStoreShippedCatalog loads the repository's seed catalog, so a key
// drift between data/places.json and the Place tags cannot silently strip
// opening windows and leave every place always open.
func TestFileStoreShippedCatalog(t *testing.T) {
	store := NewFileStore(filepath.Join("..", "..", "data", "places.json"))

	places, err := store.Places(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, places)

	windowed := 0
	for _, p := range places {
		if p.Hours != nil {
			windowed++
		}
	}
	require.NotZero(t, windowed, "seed catalog decoded without any opening windows")

	for _, p := range places {
		if p.ID != 2 {
			continue
		}
		require.NotNil(t, p.Hours)
		assert.Equal(t, 7*60, p.Hours.Open)
		assert.Equal(t, 17*60, p.Hours.Close)
		assert.False(t, p.Hours.OpenAtMinute(3*60))
		return
	}
	t.Fatal("seed catalog is missing the Datanla waterfall entry")
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := store.Places(context.Background())
	assert.Error(t, err)
}

func TestFileStoreMalformedJSON(t *testing.T) {
	store := NewFileStore(writeCatalog(t, "{not json"))
	_, err := store.Places(context.Background())
	assert.Error(t, err)
}

func TestFileStoreEmptyCatalog(t *testing.T) {
	store := NewFileStore(writeCatalog(t, "[]"))
	_, err := store.Places(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestFileStoreRereadsEveryCall(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	store := NewFileStore(path)

	places, err := store.Places(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)

	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 9, "name": "Mới", "type": "garden", "lat": 1, "lng": 2}]`), 0o600))

	places, err = store.Places(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, 9, places[0].ID)
}

func TestStaticStore(t *testing.T) {
	store := NewStaticStore([]engine.Place{{ID: 1, Name: "p", Type: "cafe"}})
	places, err := store.Places(context.Background())
	require.NoError(t, err)
	assert.Len(t, places, 1)

	empty := NewStaticStore(nil)
	_, err = empty.Places(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
