package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

/**
 * Collectors of the update pipeline
 * @description
 * - All methods accept a nil receiver, so callers without metrics pass nil
 */
type Pipeline struct {
	runs           *prometheus.CounterVec
	failures       *prometheus.CounterVec
	patchesApplied prometheus.Counter
	downloadBytes  *prometheus.CounterVec
	stepDuration   *prometheus.HistogramVec
	patchLevel     *prometheus.GaugeVec
}

func NewPipeline(reg prometheus.Registerer) *Pipeline {
	p := &Pipeline{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "applauncher_update_runs_total",
				Help: "Update runs by result",
			},
			[]string{"result"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "applauncher_update_failures_total",
				Help: "Failed update runs by error kind",
			},
			[]string{"kind"},
		),
		patchesApplied: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "applauncher_patches_applied_total",
				Help: "Patches applied successfully",
			},
		),
		downloadBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "applauncher_download_bytes_total",
				Help: "Bytes downloaded by artifact",
			},
			[]string{"artifact"},
		),
		stepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "applauncher_step_duration_seconds",
				Help:    "Duration of pipeline steps",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"step"},
		),
		patchLevel: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "applauncher_patch_level",
				Help: "Patch level persisted after the last successful run",
			},
			[]string{"app"},
		),
	}
	reg.MustRegister(p.runs, p.failures, p.patchesApplied, p.downloadBytes, p.stepDuration, p.patchLevel)
	return p
}

// RunFinished counts a run; kind is empty for a successful run.
func (p *Pipeline) RunFinished(kind string) {
	if p == nil {
		return
	}
	if kind == "" {
		p.runs.WithLabelValues("success").Inc()
		return
	}
	p.runs.WithLabelValues("failure").Inc()
	p.failures.WithLabelValues(kind).Inc()
}

func (p *Pipeline) PatchApplied() {
	if p == nil {
		return
	}
	p.patchesApplied.Inc()
}

func (p *Pipeline) Downloaded(artifact string, n int64) {
	if p == nil {
		return
	}
	p.downloadBytes.WithLabelValues(artifact).Add(float64(n))
}

func (p *Pipeline) ObserveStep(step string, d time.Duration) {
	if p == nil {
		return
	}
	p.stepDuration.WithLabelValues(step).Observe(d.Seconds())
}

func (p *Pipeline) SetPatchLevel(app string, level uint16) {
	if p == nil {
		return
	}
	p.patchLevel.WithLabelValues(app).Set(float64(level))
}

/**
 * HTTP request statistics of the server mode
 */
type HTTP struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	total           atomic.Int64
	errors          atomic.Int64
}

func NewHTTP(reg prometheus.Registerer) *HTTP {
	h := &HTTP{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "applauncher_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"path", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "applauncher_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
	}
	reg.MustRegister(h.requestCount, h.requestDuration)
	return h
}

func (h *HTTP) Observe(path, code string, failed bool, d time.Duration) {
	h.requestCount.WithLabelValues(path, code).Inc()
	h.requestDuration.WithLabelValues(path).Observe(d.Seconds())
	h.total.Add(1)
	if failed {
		h.errors.Add(1)
	}
}

func (h *HTTP) TotalRequests() int64 {
	return h.total.Load()
}

func (h *HTTP) ErrorRequests() int64 {
	return h.errors.Load()
}

/**
 * Push gathered metrics to a Prometheus pushgateway
 * @param {string} addr - Pushgateway URL
 * @param {string} job - Job label
 * @param {prometheus.Gatherer} g - Registry to push
 */
func Push(addr, job string, g prometheus.Gatherer) error {
	return push.New(addr, job).Gatherer(g).Push()
}
