package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/lucashmf/grana/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{120, 4},
		{121, 4},
		{122, 4},
		{123, 4},
		{70, 3},
		{1, 1},
	}

	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d): got %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d): widths sum to %d, want %d", tc.total, tc.n, sum, tc.total)
		}
		// No width should differ from another by more than one column
		if widths[0]-widths[tc.n-1] > 1 {
			t.Errorf("LayoutRow(%d, %d): uneven widths %v", tc.total, tc.n, widths)
		}
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow with n=0 should return nil, got %v", got)
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	t.Logf("Joined lines: %d", len(lines))

	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	if got := CardRow(nil); got != "" {
		t.Errorf("CardRow with no cards should be empty, got %q", got)
	}
}

func TestPlainBarWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	for _, pct := range []float64{-0.5, 0, 0.33, 0.5, 0.7, 0.95, 1, 2} {
		bar := PlainBar(pct, 20)
		if w := lipgloss.Width(bar); w != 20 {
			t.Errorf("PlainBar(%v, 20): visual width %d, want 20", pct, w)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('t'); got != 1 {
		t.Errorf("TabIdxByKey('t') = %d, want 1", got)
	}
	if got := TabIdxByKey('x'); got != 3 {
		t.Errorf("TabIdxByKey('x') = %d, want 3", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
