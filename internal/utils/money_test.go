package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{123456, "1234.56"},
		{100000, "1000.00"},
		{5, "0.05"},
		{0, "0.00"},
		{-250, "-2.50"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.cents); got != c.want {
			t.Fatalf("FormatMoney(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestCentsFromFloatRounds(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{1234.56, 123456},
		{0.005, 1},
		{699.999, 70000},
		{-2.50, -250},
	}
	for _, c := range cases {
		if got := CentsFromFloat(c.in); got != c.want {
			t.Fatalf("CentsFromFloat(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestPercentOfHalfUp(t *testing.T) {
	cases := []struct {
		cents   int64
		percent int
		want    int64
	}{
		{100000, 90, 90000},
		{100000, 75, 75000},
		{333, 40, 133},  // 133.2 rounds down
		{125, 50, 63},   // 62.5 rounds up
		{-125, 50, -63}, // symmetric for negatives
	}
	for _, c := range cases {
		if got := PercentOf(c.cents, c.percent); got != c.want {
			t.Fatalf("PercentOf(%d, %d) = %d, want %d", c.cents, c.percent, got, c.want)
		}
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(90000, 100000); got != 90 {
		t.Fatalf("Ratio = %v, want 90", got)
	}
	if got := Ratio(1, 3); got != 33.33 {
		t.Fatalf("Ratio = %v, want 33.33", got)
	}
	if got := Ratio(10, 0); got != 0 {
		t.Fatalf("Ratio with zero whole = %v, want 0", got)
	}
}
