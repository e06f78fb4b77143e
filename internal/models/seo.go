package models

// EventMetadata is the full derived document for one stream. Every field is
// a pure function of the source stream plus static configuration.
type EventMetadata struct {
	ID           int64             `json:"id"`
	Slug         string            `json:"slug"`
	URIName      string            `json:"uri_name"`
	CanonicalURL string            `json:"canonical_url"`
	Meta         MetaTags          `json:"meta"`
	OG           OpenGraph         `json:"og"`
	Twitter      TwitterCard       `json:"twitter"`
	Schema       SportsEventSchema `json:"schema"`
	SEO          SEOContent        `json:"seo"`
	Event        EventFacts        `json:"event"`
	Technical    CrawlHints        `json:"technical"`
	Bing         *BingHints        `json:"bing,omitempty"`
}

// MetaTags holds the head-level tag values for a page.
type MetaTags struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Robots      string   `json:"robots"`
	Viewport    string   `json:"viewport"`
	Language    string   `json:"language"`
	Locale      string   `json:"locale"`
	Author      string   `json:"author"`
}

// OpenGraph holds the og: preview tags.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	SiteName    string `json:"site_name"`
	Locale      string `json:"locale"`
}

// TwitterCard holds the twitter: preview tags.
type TwitterCard struct {
	Card        string `json:"card"`
	Site        string `json:"site"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// SportsEventSchema is the JSON-LD graph for one event. HomeTeam, AwayTeam
// and Competitor are present only for head-to-head matches; for any other
// event the keys are absent entirely.
type SportsEventSchema struct {
	Context        string          `json:"@context"`
	Type           string          `json:"@type"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	EventStatus    string          `json:"eventStatus"`
	AttendanceMode string          `json:"eventAttendanceMode"`
	Location       VirtualLocation `json:"location"`
	Image          string          `json:"image,omitempty"`
	Organizer      Organizer       `json:"organizer"`
	Offers         *Offer          `json:"offers,omitempty"`
	Sport          string          `json:"sport,omitempty"`
	Competitor     []SchemaTeam    `json:"competitor,omitempty"`
	HomeTeam       *SchemaTeam     `json:"homeTeam,omitempty"`
	AwayTeam       *SchemaTeam     `json:"awayTeam,omitempty"`
}

// VirtualLocation points the schema at the canonical watch page.
type VirtualLocation struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// Organizer identifies the publishing site in the schema graph.
type Organizer struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Offer describes the (free) access offer for the event page.
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
	URL           string `json:"url"`
}

// SchemaTeam is a participant in a head-to-head match.
type SchemaTeam struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// SEOContent carries the on-page copy: breadcrumb trail, headings, FAQ
// entries and free-text content blocks.
type SEOContent struct {
	Breadcrumbs   []Breadcrumb `json:"breadcrumbs"`
	H1            string       `json:"h1"`
	H2            string       `json:"h2"`
	FAQ           []FAQEntry   `json:"faq"`
	ContentBlocks []string     `json:"content_blocks"`
}

// Breadcrumb is one step of the home -> category -> event trail.
type Breadcrumb struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

// FAQEntry is one question/answer pair.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EventFacts is the normalized fact sheet for an event.
type EventFacts struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	CategoryLocal   string `json:"category_local"`
	Broadcaster     string `json:"broadcaster,omitempty"`
	Poster          string `json:"poster,omitempty"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
	DateLong        string `json:"date_long"`
	DateShort       string `json:"date_short"`
	Kickoff         string `json:"kickoff"`
	Status          string `json:"status"`
	StatusLabel     string `json:"status_label"`
	DurationMinutes int64  `json:"duration_minutes"`
	Viewers         string `json:"viewers"`
	AlwaysLive      bool   `json:"always_live"`
	HomeTeam        string `json:"home_team,omitempty"`
	AwayTeam        string `json:"away_team,omitempty"`
}

// CrawlHints carries crawler-facing signals for an event page.
type CrawlHints struct {
	Priority   float64        `json:"priority"`
	ChangeFreq string         `json:"changefreq"`
	Alternates []AlternateURL `json:"alternates"`
}

// AlternateURL is an hreflang variant of a page.
type AlternateURL struct {
	Hreflang string `json:"hreflang"`
	URL      string `json:"url"`
}

// BingHints holds Bing-specific signals (localized variant only).
type BingHints struct {
	Keywords        []string `json:"keywords"`
	Market          string   `json:"market"`
	ContentLanguage string   `json:"content_language"`
	GeoRegion       string   `json:"geo_region"`
}

// CategoryMetadata is the derived document at category granularity.
type CategoryMetadata struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	NameLocal  string           `json:"name_local"`
	Slug       string           `json:"slug"`
	URL        string           `json:"url"`
	EventCount int              `json:"event_count"`
	AlwaysLive bool             `json:"always_live"`
	Meta       MetaTags         `json:"meta"`
	Schema     CollectionSchema `json:"schema"`
}

// CollectionSchema is the JSON-LD graph for a category listing page.
type CollectionSchema struct {
	Context       string  `json:"@context"`
	Type          string  `json:"@type"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	URL           string  `json:"url"`
	IsPartOf      WebSite `json:"isPartOf"`
	NumberOfItems int     `json:"numberOfItems"`
}

// WebSite identifies the parent site of a collection page.
type WebSite struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
