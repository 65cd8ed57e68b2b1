package shipping

import (
	"testing"

	"github.com/zyreejago/hidroponik/pkg/enums"
)

func findService(t *testing.T, quote CourierQuote, service string) ServiceQuote {
	t.Helper()
	for _, tier := range quote.Services {
		if tier.Service == service {
			return tier
		}
	}
	t.Fatalf("service %s not found in %+v", service, quote)
	return ServiceQuote{}
}

func TestSimulateQuotesJNEAnchors(t *testing.T) {
	quotes := simulateQuotes(QuoteParams{Courier: "jne", WeightGrams: 2000, Destination: "153"})
	if len(quotes) != 1 {
		t.Fatalf("expected 1 courier, got %d", len(quotes))
	}
	jne := quotes[0]
	if jne.Code != "jne" || jne.Name != "JNE" {
		t.Fatalf("unexpected courier %+v", jne)
	}
	if jne.Source != enums.QuoteSourceSimulated {
		t.Fatalf("expected simulated source, got %s", jne.Source)
	}

	// 2 kg: OKE 10000+2*7000, REG 15000+2*8000, YES 25000+2*10000.
	if got := findService(t, jne, "OKE"); got.Cost != 24000 || got.ETD != "2-3" {
		t.Fatalf("OKE mismatch: %+v", got)
	}
	if got := findService(t, jne, "REG"); got.Cost != 31000 || got.ETD != "1-2" {
		t.Fatalf("REG mismatch: %+v", got)
	}
	if got := findService(t, jne, "YES"); got.Cost != 45000 || got.ETD != "1" {
		t.Fatalf("YES mismatch: %+v", got)
	}
}

func TestSimulateQuotesFractionalWeightRounds(t *testing.T) {
	// 1500 g: tiki ECO = 9000 + 1.5*6500 = 18750.
	quotes := simulateQuotes(QuoteParams{Courier: "tiki", WeightGrams: 1500})
	if got := findService(t, quotes[0], "ECO"); got.Cost != 18750 {
		t.Fatalf("expected 18750, got %d", got.Cost)
	}

	// 1234 g: jne OKE = 10000 + 1.234*7000 = 18638.
	quotes = simulateQuotes(QuoteParams{Courier: "jne", WeightGrams: 1234})
	if got := findService(t, quotes[0], "OKE"); got.Cost != 18638 {
		t.Fatalf("expected 18638, got %d", got.Cost)
	}
}

func TestSimulateQuotesMultipleCouriers(t *testing.T) {
	quotes := simulateQuotes(QuoteParams{Courier: "jne:tiki:pos:sicepat:jnt", WeightGrams: 1000})
	if len(quotes) != 5 {
		t.Fatalf("expected 5 couriers, got %d", len(quotes))
	}
	order := []string{"jne", "tiki", "pos", "sicepat", "jnt"}
	for i, code := range order {
		if quotes[i].Code != code {
			t.Fatalf("expected courier %s at %d, got %s", code, i, quotes[i].Code)
		}
	}

	tierCounts := map[string]int{"jne": 3, "tiki": 3, "pos": 2, "sicepat": 2, "jnt": 2}
	for _, quote := range quotes {
		if len(quote.Services) != tierCounts[quote.Code] {
			t.Fatalf("courier %s: expected %d tiers, got %d", quote.Code, tierCounts[quote.Code], len(quote.Services))
		}
	}
}

func TestSimulateQuotesUnknownCourierGetsGenericTiers(t *testing.T) {
	quotes := simulateQuotes(QuoteParams{Courier: "anteraja", WeightGrams: 1000})
	if len(quotes) != 1 {
		t.Fatalf("expected 1 courier, got %d", len(quotes))
	}
	generic := quotes[0]
	if generic.Name != "ANTERAJA" {
		t.Fatalf("expected uppercased name, got %s", generic.Name)
	}
	if got := findService(t, generic, "REG"); got.Cost != 20500 {
		t.Fatalf("generic REG at 1 kg should be 20500, got %d", got.Cost)
	}
	if got := findService(t, generic, "EXPRESS"); got.Cost != 29000 {
		t.Fatalf("generic EXPRESS at 1 kg should be 29000, got %d", got.Cost)
	}
}

func TestSimulateQuotesSkipsEmptyCourierSegments(t *testing.T) {
	quotes := simulateQuotes(QuoteParams{Courier: "jne::", WeightGrams: 1000})
	if len(quotes) != 1 {
		t.Fatalf("expected empty segments skipped, got %d quotes", len(quotes))
	}
}
