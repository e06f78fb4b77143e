package seo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"streamseo/internal/config"
	"streamseo/internal/models"
	"streamseo/pkg/text"
)

// Event status values. The machine value is fixed; the localized label
// comes from the configured status table.
const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

const (
	schemaContext     = "https://schema.org"
	eventScheduled    = "https://schema.org/EventScheduled"
	onlineAttendance  = "https://schema.org/OnlineEventAttendanceMode"
	offerInStock      = "https://schema.org/InStock"
	robotsDirective   = "index, follow, max-image-preview:large"
	viewportDirective = "width=device-width, initial-scale=1"
	twitterCardType   = "summary_large_image"
	ogVideoType       = "video.other"
)

// Description caps in display columns.
const (
	metaDescriptionWidth   = 160
	socialDescriptionWidth = 200
)

// Crawl hints: always-live streams get top priority and continuous
// recrawl; scheduled events a lower static pair.
const (
	alwaysLivePriority  = 0.9
	scheduledPriority   = 0.7
	alwaysLiveFrequency = "always"
	scheduledFrequency  = "hourly"
)

// Builder derives metadata documents from catalogue records. All build
// methods are pure given the injected clock.
type Builder struct {
	cfg        *config.Config
	dates      *DateFormatter
	translator *Translator
	now        func() time.Time
}

// NewBuilder creates a builder over the given configuration.
func NewBuilder(cfg *config.Config) (*Builder, error) {
	return NewBuilderAt(cfg, time.Now)
}

// NewBuilderAt creates a builder with an injected clock, used by tests and
// by the orchestrator to keep one instant across a whole run.
func NewBuilderAt(cfg *config.Config, now func() time.Time) (*Builder, error) {
	dates, err := NewDateFormatter(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to build date formatter: %w", err)
	}

	return &Builder{
		cfg:        cfg,
		dates:      dates,
		translator: NewTranslator(cfg.Locale.Translations),
		now:        now,
	}, nil
}

// GeneratedAt returns the run instant rendered as RFC 3339 in the pinned
// timezone.
func (b *Builder) GeneratedAt() string {
	return b.now().In(b.dates.Location()).Format(time.RFC3339)
}

// EventURL returns the canonical watch page for a stream.
func (b *Builder) EventURL(uriName string) string {
	return b.cfg.Site.Domain + "/evento/" + uriName
}

// CategoryURL returns the listing page for a localized category name.
func (b *Builder) CategoryURL(localName string) string {
	return b.cfg.Site.Domain + "/categoria/" + Slugify(localName)
}

// BuildEvent produces the full derived metadata document for one stream
// belonging to the given category.
func (b *Builder) BuildEvent(stream models.Stream, category models.Category) models.EventMetadata {
	// Source names occasionally carry doubled spaces.
	stream.Name = text.NormalizeWhitespace(stream.Name)

	start := b.dates.Format(stream.StartsAt)
	end := b.dates.Format(stream.EndsAt)
	slug := Slugify(stream.Name)
	catLocal := b.translator.Translate(stream.CategoryName)
	matchup := ParseMatchup(stream.Name)

	canonical := b.EventURL(stream.URIName)
	alwaysLive := stream.AlwaysLive || category.AlwaysLive

	meta := b.buildMeta(stream, matchup, catLocal, start)
	schema := b.buildSchema(stream, matchup, catLocal, start, end, canonical, meta.Description)

	doc := models.EventMetadata{
		ID:           stream.ID,
		Slug:         slug,
		URIName:      stream.URIName,
		CanonicalURL: canonical,
		Meta:         meta,
		OG:           b.buildOpenGraph(stream, matchup, start, canonical),
		Twitter:      b.buildTwitterCard(stream, matchup, start),
		Schema:       schema,
		SEO:          b.buildSEOContent(stream, matchup, catLocal, start, canonical),
		Event:        b.buildFacts(stream, matchup, catLocal, alwaysLive, start, end),
		Technical:    b.buildCrawlHints(canonical, alwaysLive),
	}

	if b.cfg.Locale.Language == "es" {
		doc.Bing = b.buildBingHints(meta.Keywords)
	}

	return doc
}

func (b *Builder) buildMeta(stream models.Stream, m Matchup, catLocal string, start DateParts) models.MetaTags {
	site := b.cfg.Site.Name

	var title string
	if m.IsVersus() {
		title = fmt.Sprintf("%s vs %s EN VIVO - Ver %s Online Gratis | %s", m.Home, m.Away, catLocal, site)
	} else {
		title = fmt.Sprintf("%s EN VIVO - Ver %s Online Gratis | %s", stream.Name, catLocal, site)
	}

	description := fmt.Sprintf("Ver %s en vivo y en directo gratis. %s online el %s a las %s.",
		stream.Name, catLocal, start.Long, start.Clock)
	if stream.Tag != "" {
		description += fmt.Sprintf(" Señal de %s en HD.", stream.Tag)
	}

	return models.MetaTags{
		Title:       title,
		Description: text.Truncate(description, metaDescriptionWidth),
		Keywords:    b.buildKeywords(stream, m, catLocal, start),
		Robots:      robotsDirective,
		Viewport:    viewportDirective,
		Language:    b.cfg.Locale.Language,
		Locale:      b.cfg.Locale.Locale,
		Author:      b.cfg.Site.Author,
	}
}

// buildKeywords concatenates the fixed top-N primary slice with
// event-specific terms in both languages.
func (b *Builder) buildKeywords(stream models.Stream, m Matchup, catLocal string, start DateParts) []string {
	name := strings.ToLower(stream.Name)

	keywords := append([]string{}, primarySlice(b.cfg.Keywords)...)
	keywords = append(keywords,
		name,
		fmt.Sprintf("ver %s en vivo", name),
		fmt.Sprintf("donde ver %s", name),
		fmt.Sprintf("%s en directo gratis", name),
	)

	if m.IsVersus() {
		keywords = append(keywords, strings.ToLower(m.Home), strings.ToLower(m.Away))
	}

	keywords = append(keywords,
		strings.ToLower(catLocal),
		strings.ToLower(stream.CategoryName),
	)

	if stream.Tag != "" {
		keywords = append(keywords, strings.ToLower(stream.Tag))
	}

	keywords = append(keywords, start.Short)

	return dedupe(keywords)
}

func (b *Builder) buildOpenGraph(stream models.Stream, m Matchup, start DateParts, canonical string) models.OpenGraph {
	return models.OpenGraph{
		Title:       b.socialTitle(stream, m),
		Description: b.socialDescription(stream, start),
		Type:        ogVideoType,
		URL:         canonical,
		Image:       stream.Poster,
		SiteName:    b.cfg.Site.Name,
		Locale:      b.cfg.Locale.Locale,
	}
}

func (b *Builder) buildTwitterCard(stream models.Stream, m Matchup, start DateParts) models.TwitterCard {
	return models.TwitterCard{
		Card:        twitterCardType,
		Site:        b.cfg.Site.TwitterHandle,
		Title:       b.socialTitle(stream, m),
		Description: b.socialDescription(stream, start),
		Image:       stream.Poster,
	}
}

func (b *Builder) socialTitle(stream models.Stream, m Matchup) string {
	if m.IsVersus() {
		return fmt.Sprintf("🔴 %s vs %s EN VIVO", m.Home, m.Away)
	}

	return fmt.Sprintf("🔴 %s EN VIVO", stream.Name)
}

func (b *Builder) socialDescription(stream models.Stream, start DateParts) string {
	desc := fmt.Sprintf("%s en vivo hoy %s a las %s. Míralo gratis en %s.",
		stream.Name, start.Short, start.Clock, b.cfg.Site.Name)

	return text.Truncate(desc, socialDescriptionWidth)
}

// buildSchema assembles the JSON-LD SportsEvent graph. The competitor list
// and home/away teams are attached only for head-to-head matches; for any
// other event those keys stay absent.
func (b *Builder) buildSchema(stream models.Stream, m Matchup, catLocal string, start, end DateParts, canonical, description string) models.SportsEventSchema {
	schema := models.SportsEventSchema{
		Context:        schemaContext,
		Type:           "SportsEvent",
		Name:           stream.Name,
		Description:    description,
		StartDate:      start.ISO,
		EndDate:        end.ISO,
		EventStatus:    eventScheduled,
		AttendanceMode: onlineAttendance,
		Location: models.VirtualLocation{
			Type: "VirtualLocation",
			URL:  canonical,
		},
		Image: stream.Poster,
		Organizer: models.Organizer{
			Type: "Organization",
			Name: b.cfg.Site.Name,
			URL:  b.cfg.Site.Domain,
		},
		Offers: &models.Offer{
			Type:          "Offer",
			Price:         "0",
			PriceCurrency: "EUR",
			Availability:  offerInStock,
			URL:           canonical,
		},
		Sport: catLocal,
	}

	if m.IsVersus() {
		home := models.SchemaTeam{Type: "SportsTeam", Name: m.Home}
		away := models.SchemaTeam{Type: "SportsTeam", Name: m.Away}

		schema.Competitor = []models.SchemaTeam{home, away}
		schema.HomeTeam = &home
		schema.AwayTeam = &away
	}

	return schema
}

func (b *Builder) buildSEOContent(stream models.Stream, m Matchup, catLocal string, start DateParts, canonical string) models.SEOContent {
	site := b.cfg.Site.Name

	breadcrumbs := []models.Breadcrumb{
		{Position: 1, Name: "Inicio", URL: b.cfg.Site.Domain},
		{Position: 2, Name: catLocal, URL: b.CategoryURL(catLocal)},
		{Position: 3, Name: stream.Name, URL: canonical},
	}

	faq := make([]models.FAQEntry, 0, 6)

	if m.IsVersus() {
		faq = append(faq, models.FAQEntry{
			Question: fmt.Sprintf("¿Dónde ver %s vs %s en vivo?", m.Home, m.Away),
			Answer: fmt.Sprintf("El partido %s contra %s se transmite en vivo y gratis en %s el %s a las %s.",
				m.Home, m.Away, site, start.Long, start.Clock),
		})
	}

	faq = append(faq,
		models.FAQEntry{
			Question: fmt.Sprintf("¿Dónde puedo ver %s en vivo?", stream.Name),
			Answer: fmt.Sprintf("Puedes ver %s en vivo en %s. Abre la página del evento y pulsa reproducir, sin registro.",
				stream.Name, site),
		},
		models.FAQEntry{
			Question: fmt.Sprintf("¿A qué hora empieza %s?", stream.Name),
			Answer:   fmt.Sprintf("%s empieza el %s a las %s.", stream.Name, start.Long, start.Clock),
		},
		models.FAQEntry{
			Question: fmt.Sprintf("¿Es gratis ver %s?", stream.Name),
			Answer:   fmt.Sprintf("Sí, la transmisión de %s en %s es totalmente gratuita.", stream.Name, site),
		},
		models.FAQEntry{
			Question: fmt.Sprintf("¿En qué canal transmiten %s?", stream.Name),
			Answer:   b.broadcasterAnswer(stream, site),
		},
		models.FAQEntry{
			Question: fmt.Sprintf("¿Puedo ver %s desde el móvil?", stream.Name),
			Answer:   fmt.Sprintf("Sí, %s funciona en móviles, tablets y ordenadores sin instalar nada.", site),
		},
	)

	intro := fmt.Sprintf(
		"%s se juega el %s a las %s y podrás seguirlo en vivo, gratis y en HD desde %s. "+
			"Nuestra señal de %s está disponible para España y Latinoamérica sin registro.",
		stream.Name, start.Long, start.Clock, site, catLocal)

	closing := fmt.Sprintf(
		"No te pierdas %s ni ningún otro evento de %s: en %s publicamos cada día la agenda completa "+
			"de deportes en vivo con horarios en hora peninsular española.",
		stream.Name, catLocal, site)

	return models.SEOContent{
		Breadcrumbs:   breadcrumbs,
		H1:            fmt.Sprintf("%s EN VIVO", stream.Name),
		H2:            fmt.Sprintf("Ver %s online gratis - %s", stream.Name, start.Long),
		FAQ:           faq,
		ContentBlocks: []string{intro, closing},
	}
}

func (b *Builder) broadcasterAnswer(stream models.Stream, site string) string {
	if stream.Tag != "" {
		return fmt.Sprintf("La señal original es de %s; en %s la retransmitimos en vivo y gratis.", stream.Tag, site)
	}

	return fmt.Sprintf("Puedes seguir la transmisión oficial en vivo a través de %s.", site)
}

func (b *Builder) buildFacts(stream models.Stream, m Matchup, catLocal string, alwaysLive bool, start, end DateParts) models.EventFacts {
	status := b.status(stream.StartsAt, stream.EndsAt)

	facts := models.EventFacts{
		Name:            stream.Name,
		Category:        stream.CategoryName,
		CategoryLocal:   catLocal,
		Broadcaster:     stream.Tag,
		Poster:          stream.Poster,
		StartsAt:        start.ISO,
		EndsAt:          end.ISO,
		DateLong:        start.Long,
		DateShort:       start.Short,
		Kickoff:         start.Clock,
		Status:          status,
		StatusLabel:     b.cfg.Locale.StatusLabels[status],
		DurationMinutes: durationMinutes(stream.StartsAt, stream.EndsAt),
		Viewers:         strconv.FormatInt(stream.Viewers, 10),
		AlwaysLive:      alwaysLive,
	}

	if m.IsVersus() {
		facts.HomeTeam = m.Home
		facts.AwayTeam = m.Away
	}

	return facts
}

// status classifies the event against the run clock: before the start it
// is upcoming, past the end completed, live in between (inclusive).
func (b *Builder) status(startsAt, endsAt int64) string {
	now := b.now().Unix()

	switch {
	case now < startsAt:
		return StatusUpcoming
	case now > endsAt:
		return StatusCompleted
	default:
		return StatusLive
	}
}

func durationMinutes(startsAt, endsAt int64) int64 {
	return int64(math.Round(float64(endsAt-startsAt) / 60.0))
}

func (b *Builder) buildCrawlHints(canonical string, alwaysLive bool) models.CrawlHints {
	priority := scheduledPriority
	freq := scheduledFrequency

	if alwaysLive {
		priority = alwaysLivePriority
		freq = alwaysLiveFrequency
	}

	return models.CrawlHints{
		Priority:   priority,
		ChangeFreq: freq,
		Alternates: []models.AlternateURL{
			{Hreflang: b.cfg.Locale.Language, URL: canonical},
			{Hreflang: "x-default", URL: canonical},
		},
	}
}

func (b *Builder) buildBingHints(keywords []string) *models.BingHints {
	limit := b.cfg.Keywords.BingLimit
	if limit <= 0 || limit > len(keywords) {
		limit = len(keywords)
	}

	return &models.BingHints{
		Keywords:        keywords[:limit],
		Market:          "es-ES",
		ContentLanguage: b.cfg.Locale.Language,
		GeoRegion:       "ES",
	}
}
