package cas

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
)

const (
	defaultTimeout = 5 * time.Second
	maxBodySize    = 4 << 10
)

// Client talks to a CAS server using the single-step validate protocol.
type Client interface {
	LoginURL(service string) string
	Validate(ctx context.Context, service, ticket string) (string, error)
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates CAS client for the server rooted at casURL.
func NewHTTPClient(casURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(casURL)
	if err != nil {
		return nil, fmt.Errorf("parse cas url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("cas url must be absolute")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL:    parsed,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// LoginURL is where a browser is sent to authenticate for service.
func (c *HTTPClient) LoginURL(service string) string {
	return c.endpoint("login", url.Values{"service": {StripTicket(service)}})
}

// Validate exchanges a ticket for the CAS username.
func (c *HTTPClient) Validate(ctx context.Context, service, ticket string) (string, error) {
	if ticket == "" {
		return "", domainErrors.ErrInvalidTicket
	}
	endpoint := c.endpoint("validate", url.Values{
		"service": {StripTicket(service)},
		"ticket":  {ticket},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cas validate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("cas validate: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("cas validation failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("cas error: %s", resp.Status)
	}

	username, ok := parseValidation(string(body))
	if !ok {
		c.logger.Warn("cas rejected ticket")
		return "", domainErrors.ErrInvalidTicket
	}
	return username, nil
}

func (c *HTTPClient) endpoint(name string, query url.Values) string {
	u := c.baseURL.ResolveReference(&url.URL{Path: name})
	u.RawQuery = query.Encode()
	return u.String()
}

// parseValidation accepts exactly two lines: "yes" and the username.
func parseValidation(body string) (string, bool) {
	lines := strings.SplitAfter(body, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "yes") {
		return "", false
	}
	username := strings.TrimSpace(lines[1])
	return username, username != ""
}

// StripTicket removes the ticket query parameter from a service URL.
func StripTicket(service string) string {
	u, err := url.Parse(service)
	if err != nil {
		return service
	}
	q := u.Query()
	if !q.Has("ticket") {
		return service
	}
	q.Del("ticket")
	u.RawQuery = q.Encode()
	return u.String()
}
