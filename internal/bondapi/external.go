package bondapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/folaolaitan/bondctl/internal/common"
)

// Conversion is a bond face value expressed in another currency, as returned
// by /api/external/bonds/{id}/value-in.
type Conversion struct {
	BondID             int64           `json:"bondId"`
	BondName           string          `json:"bondName"`
	FromCurrency       string          `json:"fromCurrency"`
	ToCurrency         string          `json:"toCurrency"`
	Rate               decimal.Decimal `json:"rate"`
	OriginalFaceValue  decimal.Decimal `json:"originalFaceValue"`
	ConvertedFaceValue decimal.Decimal `json:"convertedFaceValue"`
}

// Indicator is a World Bank macro data point (GDP or CPI inflation) for one
// country and year. Value is nil when the World Bank has no observation.
type Indicator struct {
	Country   string   `json:"country"`
	Year      string   `json:"year"`
	Indicator string   `json:"indicator"`
	Value     *float64 `json:"value"`
}

// FXRate returns the exchange rate for one unit of from in to. Currency codes
// are upper-cased before the call, matching the upstream service.
func (c *Client) FXRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == "" || to == "" {
		return decimal.Zero, fmt.Errorf("both currencies are required")
	}
	q := url.Values{
		"from": {strings.ToUpper(from)},
		"to":   {strings.ToUpper(to)},
	}
	body, err := c.get(ctx, c.baseURL+"/api/external/fx?"+q.Encode())
	if err != nil {
		return decimal.Zero, err
	}
	raw := strings.Trim(strings.TrimSpace(string(body)), `"`)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: no FX rate for %s/%s", common.ErrEmptyResponse, q.Get("from"), q.Get("to"))
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode FX rate: %w", err)
	}
	return rate, nil
}

// ValueIn converts a bond's face value into the target currency using live
// rates, via the catalog service.
func (c *Client) ValueIn(ctx context.Context, id int64, currency string) (*Conversion, error) {
	q := url.Values{"currency": {strings.ToUpper(currency)}}
	body, err := c.get(ctx, fmt.Sprintf("%s/api/external/bonds/%d/value-in?%s", c.baseURL, id, q.Encode()))
	if err != nil {
		return nil, err
	}
	var conv Conversion
	if err := json.Unmarshal(body, &conv); err != nil {
		return nil, fmt.Errorf("failed to decode conversion: %w", err)
	}
	return &conv, nil
}

// GDP returns the World Bank GDP indicator (current US$) for an ISO3 country
// code and year.
func (c *Client) GDP(ctx context.Context, iso3, year string) (*Indicator, error) {
	return c.indicator(ctx, iso3, "gdp", year)
}

// Inflation returns the World Bank CPI inflation indicator for an ISO3
// country code and year.
func (c *Client) Inflation(ctx context.Context, iso3, year string) (*Indicator, error) {
	return c.indicator(ctx, iso3, "inflation", year)
}

func (c *Client) indicator(ctx context.Context, iso3, kind, year string) (*Indicator, error) {
	if iso3 == "" {
		return nil, fmt.Errorf("country ISO3 code is required")
	}
	q := url.Values{}
	if year != "" {
		q.Set("year", year)
	}
	u := fmt.Sprintf("%s/api/external/macro/%s/%s", c.baseURL, url.PathEscape(strings.ToUpper(iso3)), kind)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	var ind Indicator
	if err := json.Unmarshal(body, &ind); err != nil {
		return nil, fmt.Errorf("failed to decode %s indicator: %w", kind, err)
	}
	return &ind, nil
}
