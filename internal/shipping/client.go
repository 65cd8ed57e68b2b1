package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/zyreejago/hidroponik/pkg/config"
	"github.com/zyreejago/hidroponik/pkg/enums"
)

// RateClient calls the Komerce RajaOngkir domestic cost endpoint.
type RateClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewRateClient builds a client from the shipping configuration. The client
// is usable with an empty API key; Quote reports it as a failure so callers
// fall back to the simulated card.
func NewRateClient(cfg config.ShippingConfig) *RateClient {
	return &RateClient{
		httpClient: &http.Client{Timeout: cfg.RateAPITimeout},
		baseURL:    strings.TrimRight(cfg.RateAPIBaseURL, "/"),
		apiKey:     cfg.RateAPIKey,
	}
}

// HasKey reports whether a live lookup is possible at all.
func (c *RateClient) HasKey() bool {
	return c != nil && c.apiKey != ""
}

type rateRow struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Service     string `json:"service"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	ETD         string `json:"etd"`
}

type rateResponse struct {
	Meta struct {
		Status string `json:"status"`
	} `json:"meta"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Quote performs the live cost lookup. Any transport, status, or format
// problem is returned as an error; the caller decides how to degrade.
func (c *RateClient) Quote(ctx context.Context, params QuoteParams) ([]CourierQuote, error) {
	if !c.HasKey() {
		return nil, fmt.Errorf("rate api key not configured")
	}

	form := url.Values{}
	form.Set("origin", params.Origin)
	form.Set("destination", params.Destination)
	form.Set("weight", strconv.Itoa(params.WeightGrams))
	form.Set("courier", params.Courier)
	form.Set("price", "lowest")

	endpoint := c.baseURL + "/calculate/domestic-cost"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("key", c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("rate api returned %s", resp.Status)
	}

	var parsed rateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding rate response: %w", err)
	}
	if parsed.Status != "success" && parsed.Meta.Status != "success" {
		return nil, fmt.Errorf("rate api reported status %q", firstNonEmpty(parsed.Status, parsed.Meta.Status))
	}

	rows, err := decodeRows(parsed.Data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("rate api returned no rows")
	}

	return groupRows(rows), nil
}

// decodeRows accepts both response shapes: a bare array in data, or an
// object wrapping a results array.
func decodeRows(data json.RawMessage) ([]rateRow, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("rate response missing data")
	}

	var rows []rateRow
	if err := json.Unmarshal(data, &rows); err == nil {
		return rows, nil
	}

	var wrapped struct {
		Results []rateRow `json:"results"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("unexpected rate response format: %w", err)
	}
	return wrapped.Results, nil
}

// groupRows folds the flat tier rows into per-courier quotes, preserving
// first-seen courier order.
func groupRows(rows []rateRow) []CourierQuote {
	order := make([]string, 0, 4)
	byCode := make(map[string]*CourierQuote)

	for _, row := range rows {
		quote, ok := byCode[row.Code]
		if !ok {
			quote = &CourierQuote{
				Code:   row.Code,
				Name:   row.Name,
				Source: enums.QuoteSourceLive,
			}
			byCode[row.Code] = quote
			order = append(order, row.Code)
		}
		quote.Services = append(quote.Services, ServiceQuote{
			Service:     row.Service,
			Description: row.Description,
			Cost:        row.Cost,
			ETD:         row.ETD,
		})
	}

	results := make([]CourierQuote, 0, len(order))
	for _, code := range order {
		results = append(results, *byCode[code])
	}
	return results
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
