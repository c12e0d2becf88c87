package shopify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"seosync/internal/logger"
	"seosync/internal/metrics"
)

const apiVersion = "2024-10"

type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *logger.Logger
}

func NewClient(storeDomain, accessToken string, logger *logger.Logger) *Client {
	return &Client{
		baseURL:     "https://" + storeDomain,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// GetLatestProduct fetches the most recently created product.
func (c *Client) GetLatestProduct() (*Product, error) {
	u := fmt.Sprintf("%s/admin/api/%s/products.json", c.baseURL, apiVersion)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := url.Values{}
	q.Set("limit", "1")
	q.Set("order", "created_at desc")
	req.URL.RawQuery = q.Encode()

	var productsResp ProductsResponse
	if err := c.do(req, &productsResp); err != nil {
		return nil, err
	}

	if len(productsResp.Products) == 0 {
		return nil, errors.New("store has no products")
	}
	return &productsResp.Products[0], nil
}

// GetProductMetafields fetches the metafield collection of a product.
func (c *Client) GetProductMetafields(productID int64) ([]Metafield, error) {
	u := fmt.Sprintf("%s/admin/api/%s/products/%d/metafields.json", c.baseURL, apiVersion, productID)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var metafieldsResp MetafieldsResponse
	if err := c.do(req, &metafieldsResp); err != nil {
		return nil, err
	}

	return metafieldsResp.Metafields, nil
}

// UpdateProductContent rewrites a product's body and upserts its metafields.
func (c *Client) UpdateProductContent(productID int64, bodyHTML string, metafields []Metafield) error {
	payload := struct {
		Product struct {
			BodyHTML   string      `json:"body_html"`
			Metafields []Metafield `json:"metafields"`
		} `json:"product"`
	}{}
	payload.Product.BodyHTML = bodyHTML
	payload.Product.Metafields = metafields

	return c.putProduct(productID, payload)
}

// UpdateProductImages replaces a product's full image list. An empty list is
// sent as-is.
func (c *Client) UpdateProductImages(productID int64, images []ImageUpdate) error {
	if images == nil {
		images = []ImageUpdate{}
	}

	payload := struct {
		Product struct {
			Images []ImageUpdate `json:"images"`
		} `json:"product"`
	}{}
	payload.Product.Images = images

	return c.putProduct(productID, payload)
}

// UpdateProductTags overwrites a product's comma-separated tag field.
func (c *Client) UpdateProductTags(productID int64, tags string) error {
	payload := struct {
		Product struct {
			Tags string `json:"tags"`
		} `json:"product"`
	}{}
	payload.Product.Tags = tags

	return c.putProduct(productID, payload)
}

func (c *Client) putProduct(productID int64, payload interface{}) error {
	u := fmt.Sprintf("%s/admin/api/%s/products/%d.json", c.baseURL, apiVersion, productID)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("PUT", u, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues("shopify").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues("shopify", "error").Inc()
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequests.WithLabelValues("shopify", "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}
	metrics.UpstreamRequests.WithLabelValues("shopify", "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
