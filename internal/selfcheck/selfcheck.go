package selfcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-version"
)

// release is the part of a GitHub "latest release" document we read.
type release struct {
	TagName string `json:"tag_name"`
}

/**
 * Outcome of a launcher version check
 * @property {string} Current - Version of the running launcher
 * @property {string} Latest - Version published on the release feed
 * @property {bool} Outdated - Latest is newer than Current
 */
type Result struct {
	Current  string
	Latest   string
	Outdated bool
}

type Checker struct {
	URL     string
	Current string
	http    *http.Client
}

func NewChecker(url, current string, client *http.Client) *Checker {
	if client == nil {
		client = http.DefaultClient
	}
	return &Checker{URL: url, Current: current, http: client}
}

/**
 * Compare the running version with the latest published release
 * @param {context.Context} ctx - Request context
 * @returns {Result} Versions compared, Outdated set when an update exists
 * @returns {error} Feed unreachable, non-200 or a tag that is not a version
 */
func (c *Checker) Check(ctx context.Context) (Result, error) {
	res := Result{Current: c.Current}
	current, err := version.NewVersion(c.Current)
	if err != nil {
		return res, fmt.Errorf("invalid launcher version '%s': %w", c.Current, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return res, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	rsp, err := c.http.Do(req)
	if err != nil {
		return res, fmt.Errorf("release feed '%s': %w", c.URL, err)
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(rsp.Body, 512))
		return res, fmt.Errorf("release feed '%s' code: %d, error: %s", c.URL, rsp.StatusCode, string(body))
	}

	var rel release
	if err := json.NewDecoder(rsp.Body).Decode(&rel); err != nil {
		return res, fmt.Errorf("release feed '%s': %w", c.URL, err)
	}
	res.Latest = strings.TrimPrefix(rel.TagName, "v")
	latest, err := version.NewVersion(res.Latest)
	if err != nil {
		return res, fmt.Errorf("invalid release tag '%s': %w", rel.TagName, err)
	}
	res.Outdated = latest.GreaterThan(current)
	return res, nil
}
