// Package holidayapi is a stateless adapter to the external "holidays for
// date X in country Y" provider.
//
// An empty holiday list is a valid answer ("no holidays that day") and is
// reported distinctly from provider failure: network errors, non-success
// statuses and malformed responses all map to common.ErrLookupUnavailable.
// Calls are bounded by the client timeout and are never retried.
package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/common"
	"github.com/dmitrijs2005/holidaybot/internal/datex"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	client *resty.Client
	apiKey string
}

// NewClient builds a lookup client for the given provider base URL.
func NewClient(baseURL string, apiKey string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{client: c, apiKey: apiKey}
}

// holidaysResponse mirrors the provider's JSON envelope.
type holidaysResponse struct {
	Response struct {
		Holidays []struct {
			Name string `json:"name"`
		} `json:"holidays"`
	} `json:"response"`
}

// HolidaysForDate returns the names of the holidays observed on the given
// date in the given country, in provider order. The slice may be empty.
func (c *Client) HolidaysForDate(ctx context.Context, date datex.Date, countryCode string) ([]string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key": c.apiKey,
			"country": countryCode,
			"year":    strconv.Itoa(date.Year),
			"month":   strconv.Itoa(int(date.Month)),
			"day":     strconv.Itoa(date.Day),
		}).
		Get("/api/v2/holidays")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrLookupUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", common.ErrLookupUnavailable, resp.StatusCode())
	}

	var hr holidaysResponse
	if err := json.Unmarshal(resp.Body(), &hr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", common.ErrLookupUnavailable, err)
	}

	names := make([]string, 0, len(hr.Response.Holidays))
	for _, h := range hr.Response.Holidays {
		names = append(names, h.Name)
	}
	return names, nil
}
