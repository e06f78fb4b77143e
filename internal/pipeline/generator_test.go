package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"streamseo/internal/config"
	"streamseo/internal/logger"
)

const testCatalogue = `{
	"events": {
		"streams": [
			{
				"id": 1,
				"category": "Football",
				"streams": [
					{
						"id": 101,
						"name": "Real Madrid vs. Barcelona",
						"tag": "DAZN",
						"poster": "https://cdn.example.com/clasico.webp",
						"uri_name": "real-madrid-barcelona-liga",
						"starts_at": 1700000000,
						"ends_at": 1700007200,
						"category_name": "Football",
						"viewers": 35421
					},
					{
						"id": 102,
						"name": "Valencia vs. Sevilla",
						"uri_name": "valencia-sevilla",
						"starts_at": 1700010000,
						"ends_at": 1700017200,
						"category_name": "Football"
					}
				]
			},
			{
				"id": 9,
				"category": "24/7 Streams",
				"always_live": true,
				"streams": [
					{
						"id": 901,
						"name": "Sky Sports News",
						"uri_name": "sky-sports-news",
						"starts_at": 0,
						"ends_at": 0,
						"category_name": "24/7 Streams"
					}
				]
			}
		]
	}
}`

func testGenerator(t *testing.T) *Generator {
	t.Helper()

	cfg := config.Default()

	g, err := NewAt(cfg, logger.New("error"), func() time.Time {
		return time.Unix(1699990000, 0)
	})
	require.NoError(t, err)

	return g
}

func TestGenerator_Process(t *testing.T) {
	g := testGenerator(t)

	set, err := g.Process([]byte(testCatalogue))
	require.NoError(t, err)

	require.Equal(t, 3, set.Metadata.TotalEvents)
	require.Len(t, set.Metadata.Categories, 2)
	require.Len(t, set.Metadata.Events, 3)

	// Sitemap: home + 2 categories + 3 events.
	require.Len(t, set.Sitemap, 6)

	// Every document of one run carries the same generation instant.
	require.NotEmpty(t, set.Metadata.GeneratedAt)
	require.Equal(t, set.Metadata.GeneratedAt, set.Keywords.GeneratedAt)
	require.Equal(t, set.Metadata.GeneratedAt, set.Sitemap[0].LastMod)

	// Category documents are localized.
	futbol := set.Metadata.Categories[0]
	require.Equal(t, "Fútbol", futbol.NameLocal)
	require.Equal(t, 2, futbol.EventCount)

	canales := set.Metadata.Categories[1]
	require.Equal(t, "Canales 24/7", canales.NameLocal)
	require.True(t, canales.AlwaysLive)

	// Events inherit the category's always-live flag.
	sky := set.Metadata.Events[2]
	require.Equal(t, int64(901), sky.ID)
	require.True(t, sky.Event.AlwaysLive)
	require.Equal(t, "always", sky.Technical.ChangeFreq)

	clasico := set.Metadata.Events[0]
	require.Equal(t, "real-madrid-vs-barcelona", clasico.Slug)
	require.Equal(t, "upcoming", clasico.Event.Status)
	require.NotNil(t, clasico.Schema.HomeTeam)

	// Keywords artifact mirrors the configured primary list.
	require.Equal(t, len(config.Default().Keywords.Primary), set.Keywords.TotalKeywords)
}

func TestGenerator_Process_InvalidBody(t *testing.T) {
	g := testGenerator(t)

	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", `not json at all`},
		{"missing events", `{}`},
		{"missing streams", `{"events": {}}`},
		{"streams wrong type", `{"events": {"streams": 42}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := g.Process([]byte(tt.raw))
			require.Error(t, err)
			require.Nil(t, set, "no artifacts may be produced for an invalid body")
			require.Contains(t, err.Error(), "shape validation failed")
		})
	}
}

func TestGenerator_Process_EmptyCatalogue(t *testing.T) {
	g := testGenerator(t)

	set, err := g.Process([]byte(`{"events": {"streams": []}}`))
	require.NoError(t, err)

	require.Equal(t, 0, set.Metadata.TotalEvents)
	require.Empty(t, set.Metadata.Categories)
	require.Empty(t, set.Metadata.Events)

	// Even an empty run publishes the home sitemap entry and keywords.
	require.Len(t, set.Sitemap, 1)
	require.NotZero(t, set.Keywords.TotalKeywords)
}
