package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"applauncher/internal/models"
)

/**
 * Client of the remote patch catalog
 * @property {string} URL - Catalog endpoint
 * @property {string} Method - HTTP method, GET unless configured otherwise
 */
type Client struct {
	URL    string
	Method string
	http   *http.Client
}

func NewClient(endpoint string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{URL: endpoint, Method: http.MethodGet, http: client}
}

/**
 * Fetch the patches that bring an install from level to the latest patch
 * @param {string} app - Application name
 * @param {string} platform - Platform name, e.g. "win32"
 * @param {uint16} level - Current patch level of the install
 * @returns {([]models.PatchDescriptor, error)} Patches in the order they must be applied
 * @description
 * - Sends one request with a form-encoded body {app, platform, version}
 * - Anything but 200 OK is models.ErrCatalogUnavailable
 * - A body that is not a JSON array of descriptors is models.ErrCatalogMalformed
 * - An empty list means the install is up to date
 */
func (c *Client) Fetch(ctx context.Context, app, platform string, level uint16) ([]models.PatchDescriptor, error) {
	form := url.Values{}
	form.Set("app", app)
	form.Set("platform", platform)
	form.Set("version", strconv.FormatUint(uint64(level), 10))

	method := c.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCatalogUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rsp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCatalogUnavailable, err)
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(rsp.Body, 512))
		return nil, fmt.Errorf("%w: '%s' code: %d, body: %s",
			models.ErrCatalogUnavailable, c.URL, rsp.StatusCode, strings.TrimSpace(string(body)))
	}

	var patches []models.PatchDescriptor
	if err := json.NewDecoder(rsp.Body).Decode(&patches); err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", models.ErrCatalogMalformed, c.URL, err)
	}
	if patches == nil {
		patches = []models.PatchDescriptor{}
	}
	return patches, nil
}
