package updater

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"applauncher/internal/models"
)

// HTTPDownloader fetches patch artifacts with a plain GET.
type HTTPDownloader struct {
	client *http.Client
}

func NewDownloader(client *http.Client) *HTTPDownloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPDownloader{client: client}
}

/**
 * Download the resource at url into dst
 * @param {context.Context} ctx - Request context
 * @param {string} url - Artifact URL
 * @param {string} dst - Destination file, created or truncated
 * @returns {int64} Bytes written
 * @returns {error} Wraps ErrDownloadFailed on any failure
 */
func (d *HTTPDownloader) Download(ctx context.Context, url, dst string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: Download('%s'): %v", models.ErrDownloadFailed, url, err)
	}
	rsp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: Download('%s'): %v", models.ErrDownloadFailed, url, err)
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: Download('%s') code: %d", models.ErrDownloadFailed, url, rsp.StatusCode)
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("%w: Download('%s'): create('%s') error: %v", models.ErrDownloadFailed, url, dst, err)
	}
	n, err := io.Copy(out, rsp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("%w: Download('%s'): copy error: %v", models.ErrDownloadFailed, url, err)
	}
	return n, nil
}
