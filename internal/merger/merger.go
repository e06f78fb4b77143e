// Package merger combines event lists from two catalogue sources by
// normalized-title similarity.
package merger

import (
	"math"
	"strings"

	"streamseo/internal/models"
)

// DefaultThreshold is the minimum similarity score for two titles to be
// considered the same event.
const DefaultThreshold = 0.7

// Event is the source-agnostic record the merger operates on.
type Event struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Poster   string `json:"poster,omitempty"`
	Source   string `json:"source"`
}

// MergedEvent pairs a primary event with its best secondary match.
type MergedEvent struct {
	Title            string  `json:"title"`
	AlternativeTitle string  `json:"alternative_title"`
	MatchConfidence  float64 `json:"match_confidence"`
	Category         string  `json:"category,omitempty"`
	Primary          Event   `json:"primary"`
	Secondary        Event   `json:"secondary"`
}

// Result is the outcome of one merge pass.
type Result struct {
	Merged             []MergedEvent `json:"merged_events"`
	UnmatchedPrimary   []Event       `json:"unmatched_primary"`
	UnmatchedSecondary []Event       `json:"unmatched_secondary"`
}

// Document wraps a merge result with run metadata for serialization.
type Document struct {
	Metadata DocumentMetadata `json:"metadata"`
	Result
}

// DocumentMetadata records the inputs and counts of a merge run.
type DocumentMetadata struct {
	GeneratedAt        string  `json:"generated_at"`
	Threshold          float64 `json:"threshold"`
	PrimarySource      string  `json:"primary_source"`
	SecondarySource    string  `json:"secondary_source"`
	TotalMerged        int     `json:"total_merged"`
	UnmatchedPrimary   int     `json:"total_unmatched_primary"`
	UnmatchedSecondary int     `json:"total_unmatched_secondary"`
}

// fillerWords are dropped before comparing titles, so "A vs. B" and
// "A v B" normalize identically.
var fillerWords = map[string]struct{}{
	"vs": {}, "vs.": {}, "v": {}, "at": {}, "the": {},
}

// normalizeTitle lowercases and strips filler words for matching.
func normalizeTitle(title string) string {
	words := strings.Fields(strings.ToLower(title))

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, skip := fillerWords[w]; skip {
			continue
		}

		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}

// Similarity scores two titles in [0,1] using a Sørensen-Dice coefficient
// over character bigrams of the normalized forms.
func Similarity(a, b string) float64 {
	na, nb := normalizeTitle(a), normalizeTitle(b)
	if na == nb {
		if na == "" {
			return 0
		}

		return 1
	}

	ba, bb := bigrams(na), bigrams(nb)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}

	matches := 0

	for bg, count := range ba {
		if other, ok := bb[bg]; ok {
			matches += int(math.Min(float64(count), float64(other)))
		}
	}

	total := 0
	for _, count := range ba {
		total += count
	}

	for _, count := range bb {
		total += count
	}

	return 2.0 * float64(matches) / float64(total)
}

func bigrams(s string) map[string]int {
	runes := []rune(s)
	out := make(map[string]int)

	for i := 0; i+1 < len(runes); i++ {
		out[string(runes[i:i+2])]++
	}

	return out
}

// Merge pairs each primary event with its best-scoring secondary event at
// or above threshold. Each secondary event matches at most once.
func Merge(primary, secondary []Event, threshold float64) Result {
	result := Result{}

	remaining := append([]Event{}, secondary...)

	for _, p := range primary {
		bestIdx := -1
		bestScore := 0.0

		for i, s := range remaining {
			score := Similarity(p.Title, s.Title)
			if score >= threshold && score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			result.UnmatchedPrimary = append(result.UnmatchedPrimary, p)

			continue
		}

		match := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		category := p.Category
		if category == "" {
			category = match.Category
		}

		result.Merged = append(result.Merged, MergedEvent{
			Title:            p.Title,
			AlternativeTitle: match.Title,
			MatchConfidence:  math.Round(bestScore*100) / 100,
			Category:         category,
			Primary:          p,
			Secondary:        match,
		})
	}

	result.UnmatchedSecondary = remaining

	return result
}

// FlattenCatalogue converts a catalogue into the merger's event records,
// ordered by category then stream position.
func FlattenCatalogue(catalogue *models.Catalogue, source string) []Event {
	var events []Event

	for _, category := range catalogue.Events.Streams {
		for _, stream := range category.Streams {
			events = append(events, Event{
				Title:    stream.Name,
				Category: category.Category,
				Poster:   stream.Poster,
				Source:   source,
			})
		}
	}

	return events
}
