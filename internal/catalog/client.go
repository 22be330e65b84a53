package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ytget/wallgrid/internal/logging"
	"github.com/ytget/wallgrid/internal/model"
)

// ImagesPath is the directory listing endpoint, relative to the base URL
const ImagesPath = "/images"

// Fetcher returns the full record set of the remote image directory.
type Fetcher interface {
	FetchImages(ctx context.Context) ([]model.ImageRecord, error)
}

// Client talks to the remote image directory over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Entry
}

// NewClient creates a client for baseURL. A nil httpClient means
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        logging.NewLogger("catalog"),
	}
}

// BaseURL returns the directory address without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ImageURL returns the absolute address of a record's image bytes
func (c *Client) ImageURL(rec model.ImageRecord) string {
	return c.baseURL + rec.URL
}

// FetchImages performs one GET of the listing endpoint. There is no retry.
func (c *Client) FetchImages(ctx context.Context) ([]model.ImageRecord, error) {
	url := c.baseURL + ImagesPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Op: "request", URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.log.WithField("url", url).Debug("Fetching catalog")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "request", URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Op: "status", URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var records []model.ImageRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &FetchError{Op: "decode", URL: url, Err: err}
	}

	c.log.WithFields(logrus.Fields{
		"url":     url,
		"records": len(records),
	}).Debug("Catalog fetched")

	return records, nil
}
