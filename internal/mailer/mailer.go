// Package mailer sends transactional email through a Resend compatible API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/iwvelando/teaser/pkg/constants"
)

// Client sends email messages.
type Client interface {
	// Send delivers msg. A provider rejection is reported through
	// Response.OK rather than as an error.
	Send(ctx context.Context, msg Message) (*Response, error)
}

// Message is one outgoing email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Bcc     []string `json:"bcc,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Response is the provider's answer. Body holds the decoded JSON payload, such
// as {"id": "..."} on success or {"name": "...", "message": "..."} on failure.
type Response struct {
	StatusCode int
	OK         bool
	Body       map[string]any
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout sets the request timeout. It applies to a client passed with
// WithHTTPClient too, without modifying it.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.timeout = d
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// NewClient creates a client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: constants.DefaultMailerBaseURL,
		http:    &http.Client{Timeout: constants.DefaultMailerTimeoutSeconds * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

func (c *httpClient) Send(ctx context.Context, msg Message) (*Response, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, eris.Wrap(err, "mailer: marshal message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, eris.Wrap(err, "mailer: create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "mailer: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "mailer: read response body")
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		Body:       map[string]any{},
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out.Body); err != nil {
		if out.OK {
			return nil, eris.Wrap(err, "mailer: unmarshal response")
		}
		out.Body = map[string]any{"message": strings.TrimSpace(string(body))}
	}
	return out, nil
}
