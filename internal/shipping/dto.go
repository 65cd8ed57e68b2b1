package shipping

import "github.com/zyreejago/hidroponik/pkg/enums"

// Province is a serviceable top-level region.
type Province struct {
	ProvinceID string `json:"province_id"`
	Province   string `json:"province"`
}

// City is a serviceable destination inside a province.
type City struct {
	CityID   string `json:"city_id"`
	CityName string `json:"city_name"`
}

// QuoteParams are the inputs to a shipping cost resolution.
type QuoteParams struct {
	Origin      string
	Destination string
	WeightGrams int
	// Courier accepts multiple codes separated by ":" (e.g. "jne:tiki").
	Courier string
}

// ServiceQuote is one priced service tier for a courier.
type ServiceQuote struct {
	Service     string `json:"service"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	ETD         string `json:"etd"`
}

// CourierQuote groups the service tiers returned for one courier.
type CourierQuote struct {
	Code     string            `json:"code"`
	Name     string            `json:"name"`
	Source   enums.QuoteSource `json:"source"`
	Services []ServiceQuote    `json:"services"`
}
