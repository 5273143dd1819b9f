package utils

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	night := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Error("expected same calendar day")
	}
	if SameDay(night, nextDay) {
		t.Error("expected different calendar days")
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 3 {
		t.Errorf("expected 3 days, got %d", got)
	}
}

func TestValidateClock(t *testing.T) {
	valid := []string{"00:00", "09:15", "23:45", "24:00"}
	for _, label := range valid {
		if !ValidateClock(label) {
			t.Errorf("expected %q valid", label)
		}
	}
	invalid := []string{"24:15", "9:00", "10:60", "morning", ""}
	for _, label := range invalid {
		if ValidateClock(label) {
			t.Errorf("expected %q invalid", label)
		}
	}
}
