// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a monetary value with a currency symbol, two
// decimal places, and comma grouping. e.g., 1234.5 -> "R$1,234.50"
func FormatMoney(v decimal.Decimal, symbol string) string {
	s := v.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	out := symbol + groupThousands(intPart) + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatSignedMoney is FormatMoney with an explicit leading sign,
// for deltas and over-budget values.
func FormatSignedMoney(v decimal.Decimal, symbol string) string {
	if v.Sign() < 0 {
		return FormatMoney(v, symbol)
	}
	return "+" + FormatMoney(v, symbol)
}

// FormatPercent formats a percentage value such as 50 -> "50%".
func FormatPercent(pct decimal.Decimal) string {
	return pct.String() + "%"
}

// FormatRatio formats a 0-1 ratio as a percentage. e.g., 0.42 -> "42%"
func FormatRatio(r float64) string {
	return decimal.NewFromFloat(r * 100).Round(0).String() + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		b.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseAmount parses user-entered numeric input. An empty or blank
// string is numeric zero; a decimal comma is accepted alongside the
// decimal point, and grouping separators are stripped so FormatMoney
// output pastes back in.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot > comma:
		// 1,234.56: commas group
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0 && dot >= 0:
		// 1.234,56: dots group, comma is the decimal mark
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ",") > 1:
		// 1,234,567: commas group
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

// DisplayNumber renders a stored value for an edit field: exactly zero
// shows as empty so an untouched field never displays a literal "0".
func DisplayNumber(v decimal.Decimal) string {
	if v.IsZero() {
		return ""
	}
	return v.String()
}
