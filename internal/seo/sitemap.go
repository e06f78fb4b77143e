package seo

import (
	"streamseo/internal/models"
)

// Home and category crawl signals; event entries carry the priority and
// frequency already computed on their technical sub-document.
const (
	homePriority     = 1.0
	categoryPriority = 0.9
)

// BuildSitemap flattens one run into an ordered sitemap-entry list: home
// first, then categories, then events.
func (b *Builder) BuildSitemap(categories []models.CategoryMetadata, events []models.EventMetadata) []models.SitemapEntry {
	lastMod := b.GeneratedAt()

	entries := make([]models.SitemapEntry, 0, 1+len(categories)+len(events))

	entries = append(entries, models.SitemapEntry{
		Loc:        b.cfg.Site.Domain,
		LastMod:    lastMod,
		ChangeFreq: alwaysLiveFrequency,
		Priority:   homePriority,
	})

	for _, cat := range categories {
		freq := scheduledFrequency
		if cat.AlwaysLive {
			freq = alwaysLiveFrequency
		}

		entries = append(entries, models.SitemapEntry{
			Loc:        cat.URL,
			LastMod:    lastMod,
			ChangeFreq: freq,
			Priority:   categoryPriority,
		})
	}

	for _, ev := range events {
		entries = append(entries, models.SitemapEntry{
			Loc:        ev.CanonicalURL,
			LastMod:    lastMod,
			ChangeFreq: ev.Technical.ChangeFreq,
			Priority:   ev.Technical.Priority,
		})
	}

	return entries
}
