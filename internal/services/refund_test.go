package services

import (
	"testing"

	"busreservation/internal/domain"
	"busreservation/internal/utils"
)

func TestRefundPercentBands(t *testing.T) {
	cases := []struct {
		hours int64
		want  int
	}{
		{30, 90},
		{24, 90},
		{20, 75},
		{12, 75},
		{8, 50},
		{6, 50},
		{3, 25},
		{2, 25},
	}
	for _, c := range cases {
		got, err := RefundPercentForHours(c.hours)
		if err != nil {
			t.Fatalf("hours=%d: unexpected error: %v", c.hours, err)
		}
		if got != c.want {
			t.Fatalf("hours=%d: got %d%%, want %d%%", c.hours, got, c.want)
		}
	}
}

func TestRefundRefusedInsideWindow(t *testing.T) {
	for _, h := range []int64{1, 0, -5} {
		_, err := RefundPercentForHours(h)
		if err == nil {
			t.Fatalf("hours=%d: expected refusal", h)
		}
		if !domain.IsConflict(err) {
			t.Fatalf("hours=%d: expected conflict, got %T: %v", h, err, err)
		}
	}
}

func TestRefundAmounts(t *testing.T) {
	total := int64(100000) // 1000.00
	cases := []struct {
		hours int64
		want  int64
	}{
		{30, 90000},
		{20, 75000},
		{8, 50000},
		{3, 25000},
	}
	for _, c := range cases {
		percent, err := RefundPercentForHours(c.hours)
		if err != nil {
			t.Fatalf("hours=%d: unexpected error: %v", c.hours, err)
		}
		if got := utils.PercentOf(total, percent); got != c.want {
			t.Fatalf("hours=%d: refund %d, want %d", c.hours, got, c.want)
		}
	}
}
