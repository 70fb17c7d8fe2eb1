package utils

import (
	"testing"
	"time"
)

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2026-03-02", "18:00:00")
	if err != nil {
		t.Fatalf("combine error: %v", err)
	}
	want := time.Date(2026, 3, 2, 18, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCombineDateTimeToleratesShortClock(t *testing.T) {
	got, err := CombineDateTime("2026-03-02", "18:00")
	if err != nil {
		t.Fatalf("combine error: %v", err)
	}
	if got.Hour() != 18 || got.Minute() != 0 {
		t.Fatalf("got %v, want 18:00", got)
	}
}

func TestCombineDateTimeRejectsGarbage(t *testing.T) {
	if _, err := CombineDateTime("02-03-2026", "18:00:00"); err == nil {
		t.Fatal("expected error for bad date")
	}
	if _, err := CombineDateTime("2026-03-02", "6pm"); err == nil {
		t.Fatal("expected error for bad clock")
	}
}

func TestHoursUntilTruncatesTowardZero(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	cases := []struct {
		target time.Time
		want   int64
	}{
		{now.Add(30 * time.Hour), 30},
		{now.Add(119 * time.Minute), 1},
		{now.Add(61 * time.Minute), 1},
		{now.Add(59 * time.Minute), 0},
		{now.Add(-90 * time.Minute), -1},
	}
	for _, c := range cases {
		if got := HoursUntil(c.target, now); got != c.want {
			t.Fatalf("HoursUntil(%v) = %d, want %d", c.target, got, c.want)
		}
	}
}
