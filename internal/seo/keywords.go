package seo

import (
	"strings"

	"streamseo/internal/config"
	"streamseo/internal/models"
)

// primarySlice returns the fixed top-N slice of the primary keyword list.
// N is clamped to [0, len] so an unvalidated config cannot panic here.
func primarySlice(kc config.KeywordsConfig) []string {
	n := kc.TopN
	if n < 0 {
		n = 0
	}

	if n > len(kc.Primary) {
		n = len(kc.Primary)
	}

	return kc.Primary[:n]
}

// dedupe removes duplicates and empty entries, preserving first-seen order.
func dedupe(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))

	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}

		key := strings.ToLower(kw)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, kw)
	}

	return out
}

// BuildKeywordsDocument assembles the standalone primary-keywords artifact.
func BuildKeywordsDocument(cfg *config.Config, generatedAt string) models.KeywordsDocument {
	return models.KeywordsDocument{
		PrimaryKeywords:     cfg.Keywords.Primary,
		TotalKeywords:       len(cfg.Keywords.Primary),
		TargetAudience:      cfg.Site.TargetAudience,
		TargetSearchEngines: cfg.Site.SearchEngines,
		Language:            cfg.Locale.Language,
		GeneratedAt:         generatedAt,
	}
}
