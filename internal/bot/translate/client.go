// Package translate is a best-effort adapter to the external text-translation
// provider. Translation is a convenience, never a hard dependency: on any
// failure (network, status, decode, timeout) the original text is returned
// unchanged and the failure is only logged.
package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/logging"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	client *resty.Client
	target string
	logger logging.Logger
}

// NewClient builds a translation client for the given provider base URL and
// target language code (e.g. "ru").
func NewClient(baseURL string, targetLanguage string, timeout time.Duration, logger logging.Logger) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{client: c, target: targetLanguage, logger: logger.With("module", "translate")}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate returns text translated into the configured target language, or
// the input unchanged when the provider cannot be used.
func (c *Client) Translate(ctx context.Context, text string) string {
	if text == "" {
		return text
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&translateRequest{Q: text, Source: "auto", Target: c.target}).
		Post("/translate")
	if err != nil {
		c.logger.Warn(ctx, "translation failed, using source text", "error", err.Error())
		return text
	}
	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn(ctx, "translation failed, using source text", "status", resp.StatusCode())
		return text
	}

	var tr translateResponse
	if err := json.Unmarshal(resp.Body(), &tr); err != nil || tr.TranslatedText == "" {
		c.logger.Warn(ctx, "translation response unusable, using source text")
		return text
	}
	return tr.TranslatedText
}
