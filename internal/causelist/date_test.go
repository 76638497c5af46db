package causelist

import (
	"testing"
	"time"
)

func TestExtractEffectiveDate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      time.Time
		wantFound bool
	}{
		{
			name:      "weekday and ordinal",
			text:      "CAUSE LIST FOR FRIDAY THE 23RD DAY OF JANUARY, 2026",
			want:      time.Date(2026, time.January, 23, 0, 0, 0, 0, time.UTC),
			wantFound: true,
		},
		{
			name:      "no weekday no comma",
			text:      "CAUSE LIST FOR THE 2ND DAY OF MARCH 2026",
			want:      time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
			wantFound: true,
		},
		{
			name:      "phrase buried in document",
			text:      "HIGH COURT OF KARNATAKA\nCAUSE LIST FOR MONDAY THE 1ST DAY OF JUNE, 2026\nCOURT HALL NO : 1",
			want:      time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantFound: true,
		},
		{
			name:      "impossible calendar date",
			text:      "CAUSE LIST FOR WEDNESDAY THE 30 DAY OF FEBRUARY 2026",
			wantFound: false,
		},
		{
			name:      "unknown month name",
			text:      "CAUSE LIST FOR THE 5TH DAY OF SMARCH 2026",
			wantFound: false,
		},
		{
			name:      "no phrase at all",
			text:      "COURT HALL NO : 1\n1 WP 1/24 PET: A RES: B",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractEffectiveDate(tt.text)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && !got.Equal(tt.want) {
				t.Errorf("date = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGate(t *testing.T) {
	jan23 := time.Date(2026, time.January, 23, 0, 0, 0, 0, time.UTC)
	jan20 := time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		effective time.Time
		found     bool
		expected  time.Time
		already   bool
		want      GatingDecision
	}{
		{"matching date not processed", jan23, true, jan23, false, GateNew},
		{"matching date already processed", jan23, true, jan23, true, GateAlreadyProcessed},
		{"stale document", jan20, true, jan23, false, GateDateMismatch},
		{"no date found", time.Time{}, false, jan23, false, GateDateUnknown},
		{"mismatch outranks processed flag", jan20, true, jan23, true, GateDateMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gate(tt.effective, tt.found, tt.expected, tt.already)
			if got != tt.want {
				t.Errorf("Gate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, time.January, 23, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.January, 23, 22, 45, 0, 0, time.UTC)
	next := time.Date(2026, time.January, 24, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, evening) {
		t.Error("same calendar date should match regardless of clock time")
	}
	if SameDay(evening, next) {
		t.Error("different dates should not match")
	}
}
