package format_test

import (
	"testing"

	"artesania/internal/format"
)

func TestPriceFormatsWithGrouping(t *testing.T) {
	got := format.Price("1500000")
	if got != "1.500.000" {
		t.Fatalf("want 1.500.000, got %q", got)
	}
}

func TestPriceSmallValuesUngrouped(t *testing.T) {
	if got := format.Price("950"); got != "950" {
		t.Fatalf("want 950, got %q", got)
	}
}

func TestPricePassesThroughNonNumeric(t *testing.T) {
	// parse failures return the input unchanged, never an error
	for _, in := range []string{"abc", "$150.000", "", "  "} {
		if got := format.Price(in); got != in {
			t.Fatalf("Price(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestDateShortSpanish(t *testing.T) {
	if got := format.Date("2024-03-15T10:30:00Z"); got != "15 mar 2024" {
		t.Fatalf("want '15 mar 2024', got %q", got)
	}
	if got := format.Date("2023-12-01"); got != "1 dic 2023" {
		t.Fatalf("want '1 dic 2023', got %q", got)
	}
}
