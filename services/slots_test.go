package services

import (
	"testing"
	"time"
)

func labels(slots []TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		granularity int
		want        []string
	}{
		{"half-open end", "09:00", "09:31", 15, []string{"09:00", "09:15", "09:30"}},
		{"empty window", "09:00", "09:00", 15, nil},
		{"end label excluded", "09:00", "09:30", 15, []string{"09:00", "09:15"}},
		{"hour rollover", "09:45", "10:16", 15, []string{"09:45", "10:00", "10:15"}},
		{"unaligned start snaps forward", "09:50", "10:31", 15, []string{"10:00", "10:15", "10:30"}},
		{"end before start", "10:00", "09:00", 15, nil},
		{"bad start label", "9am", "10:00", 15, nil},
	}

	for _, tt := range tests {
		got := labels(GenerateSlots(tt.start, tt.end, tt.granularity))
		if len(got) != len(tt.want) {
			t.Errorf("%s: expected %d slots, got %d (%v)", tt.name, len(tt.want), len(got), got)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s: slot %d: expected %q, got %q", tt.name, i, tt.want[i], got[i])
			}
		}
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots := FullDaySlots(15)
	if len(slots) != 96 {
		t.Fatalf("expected 96 full-day slots, got %d", len(slots))
	}
	if slots[0].Label != "00:00" {
		t.Errorf("expected first slot 00:00, got %q", slots[0].Label)
	}
	if slots[95].Label != "23:45" {
		t.Errorf("expected last slot 23:45, got %q", slots[95].Label)
	}
}

func TestCurrentSlotFraction(t *testing.T) {
	gridDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slots := GenerateSlots("09:00", "12:00", 15)

	// Halfway through the 09:15 slot
	now := time.Date(2026, 3, 10, 9, 22, 30, 0, time.UTC)
	fraction, ok := CurrentSlotFraction(now, gridDate, slots, 15)
	if !ok {
		t.Fatal("expected a fraction inside the grid")
	}
	if fraction < 1.49 || fraction > 1.51 {
		t.Errorf("expected fraction near 1.5, got %f", fraction)
	}

	// Exactly on a slot boundary
	now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fraction, ok = CurrentSlotFraction(now, gridDate, slots, 15)
	if !ok || fraction != 0 {
		t.Errorf("expected fraction 0 at grid start, got %f (ok=%v)", fraction, ok)
	}
}

func TestCurrentSlotFraction_OutsideGrid(t *testing.T) {
	gridDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slots := GenerateSlots("09:00", "12:00", 15)

	// Different calendar day than the grid's reference date
	if _, ok := CurrentSlotFraction(time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC), gridDate, slots, 15); ok {
		t.Error("expected no fraction for a different day")
	}

	// Before the grid opens
	if _, ok := CurrentSlotFraction(time.Date(2026, 3, 10, 8, 59, 0, 0, time.UTC), gridDate, slots, 15); ok {
		t.Error("expected no fraction before the grid")
	}

	// At the exclusive end
	if _, ok := CurrentSlotFraction(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), gridDate, slots, 15); ok {
		t.Error("expected no fraction at the grid end")
	}

	// Empty grid
	if _, ok := CurrentSlotFraction(time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC), gridDate, nil, 15); ok {
		t.Error("expected no fraction for an empty grid")
	}
}
