package registration

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

// Registration carries the shop contact details sent to the marketplace
// when a feed is activated
type Registration struct {
	Name    string
	Phone   string
	Email   string
	Domain  string
	FeedURL string
}

// Client posts shop registrations to the marketplace API. The call is
// one-shot: no retries, no backoff.
type Client struct {
	httpClient *resty.Client
	endpoint   string
}

// NewClient creates a registration client for the given marketplace endpoint
func NewClient(endpoint, userAgent string) *Client {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("User-Agent", userAgent)

	return &Client{
		httpClient: client,
		endpoint:   endpoint,
	}
}

// Register announces the shop and its feed URL to the marketplace
func (c *Client) Register(ctx context.Context, reg Registration) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"name":     reg.Name,
			"phone":    reg.Phone,
			"email":    reg.Email,
			"domain":   reg.Domain,
			"feed_url": reg.FeedURL,
		}).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("failed to post registration: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("registration rejected: %s", resp.Status())
	}

	return nil
}
