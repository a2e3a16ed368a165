package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"applauncher/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("patch bytes"))
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer server.Close()

	d := NewDownloader(server.Client())
	dst := filepath.Join(t.TempDir(), "tmp-file.pwr")

	n, err := d.Download(context.Background(), server.URL+"/ok", dst)
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "patch bytes", string(data))

	_, err = d.Download(context.Background(), server.URL+"/denied", dst)
	assert.ErrorIs(t, err, models.ErrDownloadFailed)
	assert.Contains(t, err.Error(), "403")
}

func TestDownloadUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewDownloader(nil).Download(context.Background(), url, filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, models.ErrDownloadFailed)
}

func TestDownloadBadDestination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "missing-dir", "file")
	_, err := NewDownloader(nil).Download(context.Background(), server.URL, dst)
	assert.ErrorIs(t, err, models.ErrDownloadFailed)
}
