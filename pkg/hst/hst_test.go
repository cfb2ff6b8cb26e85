package hst

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid day", input: "2025-12-01"},
		{name: "valid leap day", input: "2024-02-29"},
		{name: "invalid leap day", input: "2025-02-29", wantErr: true},
		{name: "wrong format", input: "01-12-2025", wantErr: true},
		{name: "not a date", input: "next tuesday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDay(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) unexpected error: %v", tt.input, err)
			}
			if FormatDay(got) != tt.input {
				t.Errorf("ParseDay(%q) round-tripped to %q", tt.input, FormatDay(got))
			}
		})
	}
}

func TestFromOffset(t *testing.T) {
	planting, err := ParseDay("2025-12-01")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "planting day itself", offset: 0, want: "2025-12-01"},
		{name: "thirty days before", offset: -30, want: "2025-11-01"},
		{name: "one day before", offset: -1, want: "2025-11-30"},
		{name: "hundred days after crosses year", offset: 100, want: "2026-03-11"},
		{name: "crosses february", offset: 90, want: "2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromOffset(planting, tt.offset)
			if FormatDay(got) != tt.want {
				t.Errorf("FromOffset(%s, %d) = %s, want %s",
					FormatDay(planting), tt.offset, FormatDay(got), tt.want)
			}
		})
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	plantings := []string{"2025-12-01", "2024-02-29", "2025-01-01", "2025-06-15"}

	for _, p := range plantings {
		planting, err := ParseDay(p)
		if err != nil {
			t.Fatal(err)
		}
		for n := -200; n <= 200; n++ {
			if got := Offset(planting, FromOffset(planting, n)); got != n {
				t.Fatalf("round trip broken for planting %s, n=%d: got %d", p, n, got)
			}
		}
	}
}

func TestOffsetRoundsFractionalDays(t *testing.T) {
	planting := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	// Inputs with a time-of-day component (for example parsed from a zoned
	// timestamp) must still resolve to whole calendar days.
	late := time.Date(2025, time.December, 4, 23, 30, 0, 0, time.UTC)
	if got := Offset(planting, late); got != 3 {
		t.Errorf("Offset with late time-of-day = %d, want 3", got)
	}

	early := time.Date(2025, time.November, 28, 1, 0, 0, 0, time.UTC)
	if got := Offset(planting, early); got != -3 {
		t.Errorf("Offset with early time-of-day = %d, want -3", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.December, 1, 8, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.December, 1, 22, 0, 0, 0, time.UTC)
	c := time.Date(2025, time.December, 2, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected same calendar day for a and b")
	}
	if SameDay(b, c) {
		t.Error("expected different calendar days for b and c")
	}
}
