package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/polkiloo/tigercart/internal/domain/model"
)

const defaultTimeout = 5 * time.Second

// Client exposes read access to the item catalog served by the data service.
type Client interface {
	Items(ctx context.Context) (model.Catalog, error)
}

// HTTPClient implements Client via the data service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// item mirrors a catalog entry in the data service payload, keyed by id.
type item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// NewHTTPClient creates catalog client. Non-positive timeout falls back to the default.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Items fetches the whole catalog.
func (c *HTTPClient) Items(ctx context.Context) (model.Catalog, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join("/", endpoint.Path, "items")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("catalog error: %s", resp.Status)
	}

	var payload map[string]item
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	catalog := make(model.Catalog, len(payload))
	for id, it := range payload {
		catalog[id] = model.Item{ID: id, Name: it.Name, Price: it.Price, Category: it.Category}
	}
	return catalog, nil
}
