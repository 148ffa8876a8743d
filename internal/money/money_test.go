package money

import (
	"errors"
	"testing"
)

func TestParseMinorUnits(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "two decimals", input: "100.00", want: 10000},
		{name: "no decimals", input: "185", want: 18500},
		{name: "single decimal", input: "49.9", want: 4990},
		{name: "leading whitespace", input: " 25.00 ", want: 2500},
		{name: "sub cent rounds half up", input: "0.005", want: 1},
		{name: "negative", input: "-12.34", want: -1234},
		{name: "zero", input: "0", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMinorUnits(tc.input)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("parse %q: expected %d, got %d", tc.input, tc.want, got)
			}
		})
	}
}

func TestParseMinorUnitsRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "12,50", "1.2.3"} {
		if _, err := ParseMinorUnits(input); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %q, got %v", input, err)
		}
	}
}

func TestFormatMinorUnits(t *testing.T) {
	if got := FormatMinorUnits(18500); got != "185.00" {
		t.Fatalf("expected 185.00, got %s", got)
	}
	if got := FormatMinorUnits(-1234); got != "-12.34" {
		t.Fatalf("expected -12.34, got %s", got)
	}
}
