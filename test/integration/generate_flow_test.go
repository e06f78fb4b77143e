package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"streamseo/internal/config"
	"streamseo/internal/fetcher"
	"streamseo/internal/logger"
	"streamseo/internal/models"
	"streamseo/internal/pipeline"
	"streamseo/internal/writer"
)

const fixtureCatalogue = `{
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
					}
				]
			}
		]
	}
}`

func TestGenerateFlow(t *testing.T) {
	// Upstream catalogue API.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixtureCatalogue))
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Source.URL = server.URL
	cfg.Output.Dir = t.TempDir()

	log := logger.New("error")

	// 1. Fetch.
	raw, err := fetcher.New(&cfg.Retry).Fetch(cfg.Source.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	// 2. Validate and generate with a fixed clock before kickoff.
	generator, err := pipeline.NewAt(cfg, log, func() time.Time {
		return time.Unix(1699990000, 0)
	})
	if err != nil {
		t.Fatalf("NewAt failed: %v", err)
	}

	set, err := generator.Process(raw)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	// 3. Write all artifacts.
	manifest, err := writer.New(&cfg.Output, log).WriteAll(set)
	if err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	if len(manifest.Artifacts) != 3 {
		t.Fatalf("manifest artifacts = %d, want 3", len(manifest.Artifacts))
	}

	// 4. Verify the metadata document on disk.
	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, cfg.Output.MetadataFile))
	if err != nil {
		t.Fatalf("failed to read metadata artifact: %v", err)
	}

	var doc models.MetadataDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("metadata artifact is not valid JSON: %v", err)
	}

	if doc.TotalEvents != 1 {
		t.Errorf("TotalEvents = %d, want 1", doc.TotalEvents)
	}

	event := doc.Events[0]

	if event.Slug != "real-madrid-vs-barcelona" {
		t.Errorf("Slug = %q", event.Slug)
	}

	if event.CanonicalURL != "https://deportesenvivo.example.com/evento/real-madrid-barcelona-liga" {
		t.Errorf("CanonicalURL = %q", event.CanonicalURL)
	}

	if event.Event.Status != "upcoming" || event.Event.StatusLabel != "Próximamente" {
		t.Errorf("status = %q / %q", event.Event.Status, event.Event.StatusLabel)
	}

	if event.Event.DurationMinutes != 120 {
		t.Errorf("DurationMinutes = %d, want 120", event.Event.DurationMinutes)
	}

	if event.Schema.HomeTeam == nil || event.Schema.HomeTeam.Name != "Real Madrid" {
		t.Errorf("unexpected schema home team: %+v", event.Schema.HomeTeam)
	}

	if doc.Categories[0].NameLocal != "Fútbol" {
		t.Errorf("NameLocal = %q", doc.Categories[0].NameLocal)
	}

	// 5. Verify the sitemap artifact: home + category + event.
	sitemapData, err := os.ReadFile(filepath.Join(cfg.Output.Dir, cfg.Output.SitemapFile))
	if err != nil {
		t.Fatalf("failed to read sitemap artifact: %v", err)
	}

	var entries []models.SitemapEntry
	if err := json.Unmarshal(sitemapData, &entries); err != nil {
		t.Fatalf("sitemap artifact is not valid JSON: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("sitemap entries = %d, want 3", len(entries))
	}

	if entries[0].Priority != 1.0 || entries[0].ChangeFreq != "always" {
		t.Errorf("unexpected home entry: %+v", entries[0])
	}
}

func TestGenerateFlow_InvalidUpstreamBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected": true}`))
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Source.URL = server.URL
	cfg.Output.Dir = t.TempDir()

	log := logger.New("error")

	raw, err := fetcher.New(&cfg.Retry).Fetch(cfg.Source.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	generator, err := pipeline.New(cfg, log)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := generator.Process(raw); err == nil {
		t.Fatal("expected shape validation error")
	}

	// Nothing may be written for a rejected body.
	files, err := os.ReadDir(cfg.Output.Dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	if len(files) != 0 {
		t.Errorf("output dir should be empty, found %d files", len(files))
	}
}
