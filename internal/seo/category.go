package seo

import (
	"fmt"
	"strings"

	"streamseo/internal/models"
	"streamseo/pkg/text"
)

// BuildCategory produces the derived metadata document for one category.
func (b *Builder) BuildCategory(category models.Category) models.CategoryMetadata {
	category.Category = text.NormalizeWhitespace(category.Category)

	local := b.translator.Translate(category.Category)
	// The document slug identifies the source category; only the URL
	// uses the localized name.
	slug := Slugify(category.Category)
	url := b.CategoryURL(local)
	site := b.cfg.Site.Name

	title := fmt.Sprintf("%s EN VIVO - Partidos y Eventos en Directo | %s", local, site)
	description := fmt.Sprintf(
		"Todos los eventos de %s en vivo y gratis. %d transmisiones disponibles hoy en HD, sin registro.",
		local, len(category.Streams))

	keywords := append([]string{}, primarySlice(b.cfg.Keywords)...)
	keywords = append(keywords,
		strings.ToLower(local),
		strings.ToLower(category.Category),
		fmt.Sprintf("%s en vivo", strings.ToLower(local)),
		fmt.Sprintf("ver %s online", strings.ToLower(local)),
	)

	return models.CategoryMetadata{
		ID:         category.ID,
		Name:       category.Category,
		NameLocal:  local,
		Slug:       slug,
		URL:        url,
		EventCount: len(category.Streams),
		AlwaysLive: category.AlwaysLive,
		Meta: models.MetaTags{
			Title:       title,
			Description: text.Truncate(description, metaDescriptionWidth),
			Keywords:    dedupe(keywords),
			Robots:      robotsDirective,
			Viewport:    viewportDirective,
			Language:    b.cfg.Locale.Language,
			Locale:      b.cfg.Locale.Locale,
			Author:      b.cfg.Site.Author,
		},
		Schema: models.CollectionSchema{
			Context:     schemaContext,
			Type:        "CollectionPage",
			Name:        fmt.Sprintf("%s en vivo", local),
			Description: description,
			URL:         url,
			IsPartOf: models.WebSite{
				Type: "WebSite",
				Name: site,
				URL:  b.cfg.Site.Domain,
			},
			NumberOfItems: len(category.Streams),
		},
	}
}
