package shipping

import (
	"context"
	"fmt"

	"github.com/zyreejago/hidroponik/pkg/config"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
	"github.com/zyreejago/hidroponik/pkg/logger"
	"github.com/zyreejago/hidroponik/pkg/metrics"
)

type rateQuoter interface {
	HasKey() bool
	Quote(ctx context.Context, params QuoteParams) ([]CourierQuote, error)
}

// Service resolves the serviceable region directory and shipping quotes.
type Service interface {
	ListRegions() []Province
	ListSubregions(regionID string) []City
	QuoteCost(ctx context.Context, params QuoteParams) ([]CourierQuote, error)
}

type service struct {
	client  rateQuoter
	cache   *subregionCache
	logg    *logger.Logger
	shipMet *metrics.ShippingMetrics
	origin  string
}

// NewService builds the shipping resolver.
func NewService(client rateQuoter, cfg config.ShippingConfig, logg *logger.Logger, shipMet *metrics.ShippingMetrics) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("rate client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive")
	}
	return &service{
		client:  client,
		cache:   newSubregionCache(cfg.CacheTTL),
		logg:    logg,
		shipMet: shipMet,
		origin:  cfg.OriginCityID,
	}, nil
}

func (s *service) ListRegions() []Province {
	return Regions()
}

func (s *service) ListSubregions(regionID string) []City {
	if cities, ok := s.cache.get(regionID); ok {
		return cities
	}
	cities := Subregions(regionID)
	s.cache.put(regionID, cities)
	return cities
}

// QuoteCost resolves shipping tiers, preferring the live API and degrading
// to the simulated rate card. Quote rows are always produced for valid
// input; only invalid parameters yield an error.
func (s *service) QuoteCost(ctx context.Context, params QuoteParams) ([]CourierQuote, error) {
	if params.Courier == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "courier is required")
	}
	if params.WeightGrams <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "weight must be positive")
	}
	if params.Destination == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "destination is required")
	}
	if params.Origin == "" {
		params.Origin = s.origin
	}

	if s.client.HasKey() {
		quotes, err := s.client.Quote(ctx, params)
		if err == nil && len(quotes) > 0 {
			s.countQuotes(quotes)
			return quotes, nil
		}
		if err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "courier", params.Courier), "live rate lookup failed, using simulated tariff")
		}
	}

	quotes := simulateQuotes(params)
	s.countQuotes(quotes)
	return quotes, nil
}

func (s *service) countQuotes(quotes []CourierQuote) {
	for _, quote := range quotes {
		s.shipMet.IncQuote(quote.Code, quote.Source.String())
	}
}
