package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPipeline(reg)

	p.RunFinished("")
	p.RunFinished("patch_hash_mismatch")
	p.PatchApplied()
	p.PatchApplied()
	p.Downloaded("patch", 100)
	p.ObserveStep("apply", time.Second)
	p.SetPatchLevel("usc", 9)

	assert.Equal(t, 1.0, testutil.ToFloat64(p.runs.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.failures.WithLabelValues("patch_hash_mismatch")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.patchesApplied))
	assert.Equal(t, 100.0, testutil.ToFloat64(p.downloadBytes.WithLabelValues("patch")))
	assert.Equal(t, 9.0, testutil.ToFloat64(p.patchLevel.WithLabelValues("usc")))
}

func TestNilPipeline(t *testing.T) {
	var p *Pipeline
	assert.NotPanics(t, func() {
		p.RunFinished("x")
		p.PatchApplied()
		p.Downloaded("patch", 1)
		p.ObserveStep("apply", time.Second)
		p.SetPatchLevel("usc", 1)
	})
}

func TestHTTPTotals(t *testing.T) {
	h := NewHTTP(prometheus.NewRegistry())
	h.Observe("/healthz", "200", false, time.Millisecond)
	h.Observe("/api/v1/update", "409", true, time.Millisecond)
	assert.Equal(t, int64(2), h.TotalRequests())
	assert.Equal(t, int64(1), h.ErrorRequests())
}

func TestPush(t *testing.T) {
	var body string
	var path string
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	reg := prometheus.NewRegistry()
	p := NewPipeline(reg)
	p.PatchApplied()

	require.NoError(t, Push(gateway.URL, "applauncher", reg))
	assert.True(t, strings.HasPrefix(path, "/metrics/job/applauncher"))
	assert.NotEmpty(t, body)
}
