package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "R$0.00"},
		{"1500", "R$1,500.00"},
		{"1234567.891", "R$1,234,567.89"},
		{"-50", "-R$50.00"},
		{"99.9", "R$99.90"},
	}
	for _, tc := range cases {
		if got := FormatMoney(dec(t, tc.in), "R$"); got != tc.want {
			t.Fatalf("FormatMoney(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(dec(t, "10"), "$"); got != "+$10.00" {
		t.Fatalf("FormatSignedMoney(10) = %q, want +$10.00", got)
	}
	if got := FormatSignedMoney(dec(t, "-10"), "$"); got != "-$10.00" {
		t.Fatalf("FormatSignedMoney(-10) = %q, want -$10.00", got)
	}
}

func TestParseAmountCoercesEmptyToZero(t *testing.T) {
	for _, in := range []string{"", "   "} {
		got, err := ParseAmount(in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", in, err)
		}
		if !got.IsZero() {
			t.Fatalf("ParseAmount(%q) = %s, want 0", in, got)
		}
	}
}

func TestParseAmountAcceptsDecimalComma(t *testing.T) {
	got, err := ParseAmount("12,34")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	if !got.Equal(dec(t, "12.34")) {
		t.Fatalf("ParseAmount(12,34) = %s, want 12.34", got)
	}
}

func TestParseAmountStripsGroupingSeparators(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1,234.56", "1234.56"},
		{"1,234,567.89", "1234567.89"},
		{"1.234,56", "1234.56"},
		{"1,234,567", "1234567"},
		{"1,500.00", "1500"}, // FormatMoney output minus the symbol
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", tc.in, err)
		}
		if !got.Equal(dec(t, tc.want)) {
			t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	if _, err := ParseAmount("abc"); err == nil {
		t.Fatal("ParseAmount(abc) succeeded, want error")
	}
}

func TestDisplayNumberHidesZero(t *testing.T) {
	if got := DisplayNumber(decimal.Zero); got != "" {
		t.Fatalf("DisplayNumber(0) = %q, want empty", got)
	}
	if got := DisplayNumber(dec(t, "42.5")); got != "42.5" {
		t.Fatalf("DisplayNumber(42.5) = %q, want 42.5", got)
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(0.425); got != "43%" {
		t.Fatalf("FormatRatio(0.425) = %q, want 43%%", got)
	}
	if got := FormatRatio(1); got != "100%" {
		t.Fatalf("FormatRatio(1) = %q, want 100%%", got)
	}
}
