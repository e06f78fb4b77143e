package models

// Catalogue is the top-level document returned by the streams API.
type Catalogue struct {
	Events Envelope `json:"events"`
}

// Envelope wraps the category list under the "streams" key.
type Envelope struct {
	Streams []Category `json:"streams"`
}

// Category groups the streams of one sport.
type Category struct {
	ID         int64    `json:"id"`
	Category   string   `json:"category"`
	AlwaysLive bool     `json:"always_live"`
	Streams    []Stream `json:"streams"`
}

// Stream is a single broadcast as delivered by the source.
// ends_at >= starts_at is assumed, not validated; uri_name is assumed
// unique and URL-safe.
type Stream struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Tag          string `json:"tag"`
	Poster       string `json:"poster"`
	URIName      string `json:"uri_name"`
	StartsAt     int64  `json:"starts_at"`
	EndsAt       int64  `json:"ends_at"`
	CategoryName string `json:"category_name"`
	Viewers      int64  `json:"viewers,omitempty"`
	AlwaysLive   bool   `json:"always_live,omitempty"`
	Locale       string `json:"locale,omitempty"`
}

// Snapshot wraps a fetched catalogue envelope with retrieval metadata.
// The envelope keeps its upstream "events" key, so a snapshot file is
// itself a valid catalogue document.
type Snapshot struct {
	Metadata SnapshotMetadata `json:"metadata"`
	Events   *Envelope        `json:"events"`
}

// SnapshotMetadata records where and when a snapshot was taken.
type SnapshotMetadata struct {
	FetchedAt   string `json:"fetched_at"`
	Source      string `json:"source"`
	TotalEvents int    `json:"total_events"`
}
