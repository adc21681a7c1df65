package api

import (
	"net/http"
	"net/url"
	"time"
)

// Connection abstracts the transport so parsing can be tested against
// canned responses.
type Connection interface {
	Request(endpoint *url.URL) (*http.Response, error)
}

type ClientHost struct {
	client *http.Client
	host   string
}

// Client pairs a connection with the API key it signs requests with.
type Client struct {
	connection Connection
	apiKey     string
}

func (conn *ClientHost) Request(endpoint *url.URL) (*http.Response, error) {
	endpoint.Scheme = "https"
	endpoint.Host = conn.host
	return conn.client.Get(endpoint.String())
}

func NewClient(host string, apiKey string, timeout time.Duration) *Client {
	return &Client{
		connection: &ClientHost{
			client: &http.Client{Timeout: timeout},
			host:   host,
		},
		apiKey: apiKey,
	}
}
