package enums

import "fmt"

// QuoteSource records where a shipping quote came from.
type QuoteSource string

const (
	QuoteSourceLive      QuoteSource = "live"
	QuoteSourceSimulated QuoteSource = "simulated"
)

var validQuoteSources = []QuoteSource{
	QuoteSourceLive,
	QuoteSourceSimulated,
}

// String implements fmt.Stringer.
func (q QuoteSource) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QuoteSource.
func (q QuoteSource) IsValid() bool {
	for _, candidate := range validQuoteSources {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQuoteSource converts raw input into a QuoteSource.
func ParseQuoteSource(value string) (QuoteSource, error) {
	for _, candidate := range validQuoteSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quote source %q", value)
}
