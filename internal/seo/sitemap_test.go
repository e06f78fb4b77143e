package seo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"streamseo/internal/models"
)

func TestBuilder_BuildSitemap(t *testing.T) {
	b := testBuilder(t, 1700000000)

	liveCategory := models.Category{ID: 9, Category: "24/7 Streams", AlwaysLive: true}

	categories := []models.CategoryMetadata{
		b.BuildCategory(footballCategory),
		b.BuildCategory(liveCategory),
	}

	events := []models.EventMetadata{
		b.BuildEvent(clásico, footballCategory),
	}

	entries := b.BuildSitemap(categories, events)
	require.Len(t, entries, 4)

	// Home entry leads with top priority and continuous recrawl.
	home := entries[0]
	require.Equal(t, "https://deportesenvivo.example.com", home.Loc)
	require.Equal(t, 1.0, home.Priority)
	require.Equal(t, "always", home.ChangeFreq)
	require.Equal(t, "2023-11-14T23:13:20+01:00", home.LastMod)

	// Scheduled category.
	futbol := entries[1]
	require.Equal(t, "https://deportesenvivo.example.com/categoria/futbol", futbol.Loc)
	require.Equal(t, 0.9, futbol.Priority)
	require.Equal(t, "hourly", futbol.ChangeFreq)

	// Always-live category.
	canales := entries[2]
	require.Equal(t, 0.9, canales.Priority)
	require.Equal(t, "always", canales.ChangeFreq)

	// Event entries reuse the crawl hints already on the document.
	event := entries[3]
	require.Equal(t, events[0].CanonicalURL, event.Loc)
	require.Equal(t, events[0].Technical.Priority, event.Priority)
	require.Equal(t, events[0].Technical.ChangeFreq, event.ChangeFreq)

	// One run shares a single lastmod instant.
	for _, entry := range entries {
		require.Equal(t, home.LastMod, entry.LastMod)
	}
}

func TestBuilder_BuildSitemap_EmptyRun(t *testing.T) {
	b := testBuilder(t, 1700000000)

	entries := b.BuildSitemap(nil, nil)

	require.Len(t, entries, 1)
	require.Equal(t, "https://deportesenvivo.example.com", entries[0].Loc)
}
