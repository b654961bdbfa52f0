package qr

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the order-management API's QR endpoints. It implements
// both QR provider ports: the thermal-optimized endpoint is the primary
// source and the generic package endpoint the secondary one.
//
// Each call carries its own bounded timeout; transient failures are retried
// inside the transport. The client is safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("qr client: base URL is empty")
	}
	if apiKey == "" {
		return nil, errors.New("qr client: api key is empty")
	}

	return &Client{
		session: &http.Client{Timeout: 5 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
	}, nil
}

func (c *Client) endpoint(parts ...string) string {
	u := c.baseURL
	for _, p := range parts {
		u += "/" + url.PathEscape(p)
	}
	return u
}
