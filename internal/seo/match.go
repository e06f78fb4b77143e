package seo

import "strings"

// versusSeparator is the exact token that marks a head-to-head name.
const versusSeparator = " vs. "

// MatchKind classifies an event name.
type MatchKind int

const (
	// KindSingle is a tournament, show, or single-entity broadcast.
	KindSingle MatchKind = iota
	// KindHeadToHead is a match with two identified participants.
	KindHeadToHead
)

// Matchup is the parse result for an event display name. Home and Away
// are set only when Kind is KindHeadToHead.
type Matchup struct {
	Kind MatchKind
	Home string
	Away string
}

// IsVersus reports whether the event is a head-to-head match.
func (m Matchup) IsVersus() bool {
	return m.Kind == KindHeadToHead
}

// ParseMatchup splits an event name on " vs. ". Exactly two non-empty
// trimmed segments classify the event as head-to-head; anything else is a
// single-entity event. This is a heuristic: no fallback parsing is done.
func ParseMatchup(name string) Matchup {
	parts := strings.Split(name, versusSeparator)
	if len(parts) != 2 {
		return Matchup{Kind: KindSingle}
	}

	home := strings.TrimSpace(parts[0])
	away := strings.TrimSpace(parts[1])

	if home == "" || away == "" {
		return Matchup{Kind: KindSingle}
	}

	return Matchup{Kind: KindHeadToHead, Home: home, Away: away}
}
