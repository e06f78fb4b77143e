package models

// MetadataDocument is the primary output artifact.
type MetadataDocument struct {
	GeneratedAt string             `json:"generated_at"`
	TotalEvents int                `json:"total_events"`
	Categories  []CategoryMetadata `json:"categories"`
	Events      []EventMetadata    `json:"events"`
}

// SitemapEntry is one URL record published for search-engine discovery.
type SitemapEntry struct {
	Loc        string  `json:"loc"`
	LastMod    string  `json:"lastmod"`
	ChangeFreq string  `json:"changefreq"`
	Priority   float64 `json:"priority"`
}

// KeywordsDocument is the standalone primary-keyword artifact.
type KeywordsDocument struct {
	PrimaryKeywords     []string `json:"primary_keywords"`
	TotalKeywords       int      `json:"total_keywords"`
	TargetAudience      string   `json:"target_audience"`
	TargetSearchEngines []string `json:"target_search_engines"`
	Language            string   `json:"language"`
	GeneratedAt         string   `json:"generated_at"`
}

// GeneratedSet bundles everything one run produces.
type GeneratedSet struct {
	Metadata MetadataDocument `json:"metadata"`
	Sitemap  []SitemapEntry   `json:"sitemap"`
	Keywords KeywordsDocument `json:"keywords"`
}

// Manifest describes the artifacts written by a run.
type Manifest struct {
	RunID       string             `json:"run_id"`
	GeneratedAt string             `json:"generated_at"`
	Artifacts   []ManifestArtifact `json:"artifacts"`
}

// ManifestArtifact fingerprints a single written file.
type ManifestArtifact struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
	Bytes  int    `json:"bytes"`
}
