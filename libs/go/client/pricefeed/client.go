package pricefeed

import (
	"context"
	"time"

	"github.com/pkg/errors"

	httpClient "github.com/swapline/swapline-api/libs/go/client/http"
)

const (
	defaultBaseURL = "https://prices.swapline.io"
	pricesPath     = "/prices.json"
	defaultTimeout = 10 * time.Second
)

// Quote is one entry of the feed payload. Entries without a positive
// price carry no usable quote and are skipped by consumers.
type Quote struct {
	Currency string    `json:"currency"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
}

// Client fetches the token price table from the external feed.
type Client struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the feed base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.httpClient = httpClient.NewHTTPClient(
			httpClient.WithBaseURL(baseURL),
			httpClient.WithTimeout(defaultTimeout),
		)
	}
}

// NewClient creates a price feed client. The API key is optional; when
// set it is attached to every request.
func NewClient(apiKey string, options ...Option) *Client {
	client := &Client{
		apiKey: apiKey,
		httpClient: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(defaultBaseURL),
			httpClient.WithTimeout(defaultTimeout),
		),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// GetPrices fetches the latest quotes for all tokens the feed covers.
func (c *Client) GetPrices(ctx context.Context) ([]Quote, error) {
	requestOptions := []httpClient.RequestOption{}
	if c.apiKey != "" {
		requestOptions = append(requestOptions, httpClient.WithHeader("X-API-Key", c.apiKey))
	}

	resp, err := c.httpClient.Get(ctx, pricesPath, requestOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch prices from feed")
	}

	var quotes []Quote
	if err := c.httpClient.ProcessJSONResponse(resp, &quotes); err != nil {
		return nil, errors.Wrap(err, "failed to decode price feed response")
	}

	return quotes, nil
}
