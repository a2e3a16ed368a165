package services

import (
	"time"

	"applauncher/internal/config"
	"applauncher/internal/env"
	"applauncher/internal/manifest"
	"applauncher/internal/metrics"
	"applauncher/internal/models"

	"github.com/prometheus/client_golang/prometheus"
)

/**
 * State of the HTTP server mode
 * @property {*prometheus.Registry} Registry - Served on /metrics
 * @property {*metrics.HTTP} HTTP - Request statistics
 * @property {*UpdateManager} Updates - Update runs started through the API
 */
type Server struct {
	startTime time.Time
	Registry  *prometheus.Registry
	HTTP      *metrics.HTTP
	Pipeline  *Pipeline
	Updates   *UpdateManager
}

func NewServer(cfg *config.AppConfig, store *manifest.Store) *Server {
	reg := NewRegistry()
	pipeline := NewPipeline(cfg, store, metrics.NewPipeline(reg))
	return &Server{
		startTime: time.Now(),
		Registry:  reg,
		HTTP:      metrics.NewHTTP(reg),
		Pipeline:  pipeline,
		Updates:   NewUpdateManager(pipeline, cfg.UI.Tick),
	}
}

/**
 * Health summary for the /healthz probe
 * @returns {models.HealthResponse} Version, uptime and request statistics
 * @example
 * health := server.GetHealthz()
 * fmt.Printf("Server status: %s, Uptime: %s\n", health.Status, health.Uptime)
 */
func (s *Server) GetHealthz() models.HealthResponse {
	uptime := time.Since(s.startTime)
	return models.HealthResponse{
		Version:   env.Version,
		StartTime: s.startTime.Format(time.RFC3339),
		Status:    "UP",
		Uptime:    uptime.Round(time.Second).String(),
		Metrics: models.Metrics{
			TotalRequests: s.HTTP.TotalRequests(),
			ErrorRequests: s.HTTP.ErrorRequests(),
			Runs:          s.Updates.Runs(),
		},
	}
}
