package services

import (
	"applauncher/internal/logger"
	"applauncher/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

/**
 * Push the collected metrics once, if a pushgateway is configured
 * @param {string} addr - Pushgateway address, empty does nothing
 * @param {prometheus.Gatherer} g - Registry to push
 * @description
 * - Failures are logged only, a run never fails because of metrics
 */
func PushMetrics(addr string, g prometheus.Gatherer) {
	if addr == "" {
		return
	}
	if err := metrics.Push(addr, "applauncher", g); err != nil {
		logger.Warnf("push metrics to '%s' failed: %v", addr, err)
		return
	}
	logger.Debugf("metrics pushed to '%s'", addr)
}
