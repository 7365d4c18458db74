package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"greenearth.GO/config"
	entity "greenearth.GO/model/entity/catalog"
)

// CatalogClient is the read side of the remote plant catalog.
type CatalogClient interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	Plants(ctx context.Context, categoryID string) ([]entity.Plant, error)
	Plant(ctx context.Context, id string) (*entity.Plant, error)
}

// Client talks to the catalog API. Each call is a single attempt: no retries,
// no backoff.
type Client struct {
	http      *resty.Client
	endpoints Endpoints
	rl        ratelimit.Limiter
}

func NewClient(cfg config.CatalogConfig) *Client {
	httpClient := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &Client{
		http:      httpClient,
		endpoints: NewEndpoints(cfg.BaseURL),
		rl:        rl,
	}
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

// FetchJSON issues one GET and decodes the body as a JSON object.
func (c *Client) FetchJSON(ctx context.Context, url string) (map[string]interface{}, error) {
	c.rl.Take()

	resp, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		log.WithError(err).WithField("url", url).Warn("catalog: request failed")
		return nil, &StatusError{URL: url, Err: err}
	}

	if !resp.IsSuccess() {
		log.WithFields(log.Fields{"url": url, "status": resp.StatusCode()}).Warn("catalog: non-success status")
		return nil, &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("API error: %d", resp.StatusCode()),
		}
	}

	var body map[string]interface{}
	if err := json.Unmarshal([]byte(resp.String()), &body); err != nil {
		log.WithError(err).WithField("url", url).Warn("catalog: undecodable body")
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode(), Err: err}
	}
	if body == nil {
		body = map[string]interface{}{}
	}
	log.WithFields(log.Fields{"url": url, "status": resp.StatusCode()}).Debug("catalog: response")
	return body, nil
}

func (c *Client) Categories(ctx context.Context) ([]entity.Category, error) {
	body, err := c.FetchJSON(ctx, c.endpoints.Categories())
	if err != nil {
		return nil, err
	}
	return normalizeCategories(body), nil
}

// Plants lists plants in a category; "" or "all" lists every plant.
func (c *Client) Plants(ctx context.Context, categoryID string) ([]entity.Plant, error) {
	url := c.endpoints.AllPlants()
	if !entity.IsAll(categoryID) {
		url = c.endpoints.PlantsByCategory(categoryID)
	}
	body, err := c.FetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}
	return normalizePlants(body), nil
}

func (c *Client) Plant(ctx context.Context, id string) (*entity.Plant, error) {
	body, err := c.FetchJSON(ctx, c.endpoints.PlantDetail(id))
	if err != nil {
		return nil, err
	}
	p := normalizePlantDetail(body, id)
	return &p, nil
}
