package utils

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{" 2,500.75 ", 2500.75},
		{"", 0},
		{"abc", 0},
		{"-10.5", -10.5},
	}
	for _, c := range cases {
		if got := ParseAmount(c.in); got != c.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"10", 10},
		{" 3 ", 3},
		{"", 0},
		{"x", 0},
		{"-4", 0},
	}
	for _, c := range cases {
		if got := ParseCount(c.in); got != c.want {
			t.Fatalf("ParseCount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDivisorCount(t *testing.T) {
	if got := DivisorCount(0); got != 1 {
		t.Fatalf("DivisorCount(0) = %d, want 1", got)
	}
	if got := DivisorCount(-3); got != 1 {
		t.Fatalf("DivisorCount(-3) = %d, want 1", got)
	}
	if got := DivisorCount(12); got != 12 {
		t.Fatalf("DivisorCount(12) = %d, want 12", got)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(123.456); got != 123.46 {
		t.Fatalf("Round2(123.456) = %v, want 123.46", got)
	}
	if got := Round2(Round2(123.456)); got != 123.46 {
		t.Fatalf("double rounding drifted: %v", got)
	}
	if got := Round2(2.344); got != 2.34 {
		t.Fatalf("Round2(2.344) = %v, want 2.34", got)
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(1234.5); got != "1234.50" {
		t.Fatalf("FormatMoney = %q, want 1234.50", got)
	}
}
