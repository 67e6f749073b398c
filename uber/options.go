package uber

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. Useful for custom
// transports, proxies or cancellation policies.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithAPIURL overrides the base URL for the ride data endpoints.
func WithAPIURL(baseURL string) Option {
	return func(c *Client) {
		c.apiURL = baseURL
	}
}

// WithAuthURL overrides the base URL for the OAuth endpoints.
func WithAuthURL(baseURL string) Option {
	return func(c *Client) {
		c.authURL = baseURL
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}
