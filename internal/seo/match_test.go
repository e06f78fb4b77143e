package seo

import "testing"

func TestParseMatchup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind MatchKind
		wantHome string
		wantAway string
	}{
		{"head to head", "Real Madrid vs. Barcelona", KindHeadToHead, "Real Madrid", "Barcelona"},
		{"extra spaces trimmed", "Lakers  vs.  Celtics", KindHeadToHead, "Lakers", "Celtics"},
		{"single event", "NFL RedZone", KindSingle, "", ""},
		{"bare vs without dot", "Lakers vs Celtics", KindSingle, "", ""},
		{"three segments", "A vs. B vs. C", KindSingle, "", ""},
		{"empty away side", "Real Madrid vs. ", KindSingle, "", ""},
		{"empty home side", " vs. Barcelona", KindSingle, "", ""},
		{"empty input", "", KindSingle, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseMatchup(tt.input)

			if m.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", m.Kind, tt.wantKind)
			}

			if m.Home != tt.wantHome {
				t.Errorf("Home = %q, want %q", m.Home, tt.wantHome)
			}

			if m.Away != tt.wantAway {
				t.Errorf("Away = %q, want %q", m.Away, tt.wantAway)
			}
		})
	}
}

func TestMatchup_IsVersus(t *testing.T) {
	if !ParseMatchup("Boca Juniors vs. River Plate").IsVersus() {
		t.Error("expected head-to-head name to report IsVersus")
	}

	if ParseMatchup("Copa América Final").IsVersus() {
		t.Error("expected single-entity name to not report IsVersus")
	}
}
