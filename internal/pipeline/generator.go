// Package pipeline orchestrates one generation run: shape validation of
// the fetched catalogue and derivation of all output collections.
package pipeline

import (
	"fmt"
	"time"

	"streamseo/internal/config"
	"streamseo/internal/logger"
	"streamseo/internal/models"
	"streamseo/internal/seo"
)

// Generator walks a catalogue and accumulates the three output
// collections: category documents, event documents, sitemap entries.
type Generator struct {
	cfg       *config.Config
	validator *Validator
	builder   *seo.Builder
	log       *logger.Logger
}

// New creates a generator over the given configuration.
func New(cfg *config.Config, log *logger.Logger) (*Generator, error) {
	return NewAt(cfg, log, time.Now)
}

// NewAt creates a generator with an injected clock so a whole run shares
// one instant.
func NewAt(cfg *config.Config, log *logger.Logger, now func() time.Time) (*Generator, error) {
	builder, err := seo.NewBuilderAt(cfg, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create builder: %w", err)
	}

	return &Generator{
		cfg:       cfg,
		validator: NewValidator(),
		builder:   builder,
		log:       log,
	}, nil
}

// Process validates a raw catalogue body and generates the full output
// set. Nothing is produced when validation fails.
func (g *Generator) Process(raw []byte) (*models.GeneratedSet, error) {
	catalogue, err := g.validator.ParseCatalogue(raw)
	if err != nil {
		return nil, fmt.Errorf("shape validation failed: %w", err)
	}

	return g.Generate(catalogue), nil
}

// Generate derives the output set from an already-validated catalogue.
func (g *Generator) Generate(catalogue *models.Catalogue) *models.GeneratedSet {
	generatedAt := g.builder.GeneratedAt()

	categories := make([]models.CategoryMetadata, 0, len(catalogue.Events.Streams))

	var events []models.EventMetadata

	for _, category := range catalogue.Events.Streams {
		categories = append(categories, g.builder.BuildCategory(category))

		for _, stream := range category.Streams {
			events = append(events, g.builder.BuildEvent(stream, category))
		}

		g.log.Debug("processed category",
			"category", category.Category,
			"streams", len(category.Streams))
	}

	sitemap := g.builder.BuildSitemap(categories, events)

	g.log.Info("generation complete",
		"categories", len(categories),
		"events", len(events),
		"sitemap_entries", len(sitemap))

	return &models.GeneratedSet{
		Metadata: models.MetadataDocument{
			GeneratedAt: generatedAt,
			TotalEvents: len(events),
			Categories:  categories,
			Events:      events,
		},
		Sitemap:  sitemap,
		Keywords: seo.BuildKeywordsDocument(g.cfg, generatedAt),
	}
}
