package services

import (
	"errors"
	"net/http"
	"path/filepath"

	"applauncher/internal/catalog"
	"applauncher/internal/config"
	"applauncher/internal/logger"
	"applauncher/internal/manifest"
	"applauncher/internal/metrics"
	"applauncher/internal/models"
	"applauncher/internal/patcher"
	"applauncher/internal/updater"
)

// ErrNoInstallDir means the app has no manifest entry and no directory was supplied.
var ErrNoInstallDir = errors.New("no install directory selected")

/**
 * Update pipeline built from the application configuration
 * @property {*manifest.Store} Store - Install manifest file
 * @property {*metrics.Pipeline} Metrics - Pipeline collectors, may be nil
 */
type Pipeline struct {
	cfg     *config.AppConfig
	Store   *manifest.Store
	Metrics *metrics.Pipeline
	client  *http.Client
}

func NewPipeline(cfg *config.AppConfig, store *manifest.Store, m *metrics.Pipeline) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		Store:   store,
		Metrics: m,
		client:  &http.Client{Timeout: cfg.Catalog.Timeout},
	}
}

// Orchestrator creates an orchestrator for one run.
func (p *Pipeline) Orchestrator() *updater.Orchestrator {
	cat := catalog.NewClient(p.cfg.Catalog.URL, p.client)
	if p.cfg.Catalog.Method != "" {
		cat.Method = p.cfg.Catalog.Method
	}
	return updater.New(updater.Options{
		Catalog:    cat,
		Downloader: updater.NewDownloader(p.client),
		Applicator: patcher.NewButler(p.cfg.Patcher.Path, p.cfg.Patcher.WorkDir),
		Store:      p.Store,
		Metrics:    p.Metrics,
		WorkDir:    p.cfg.Patcher.WorkDir,
	})
}

/**
 * Build the job of the configured application
 * @param {string} dir - Install directory used when the app has no manifest entry yet
 * @returns {updater.Job} Job owning the manifest, with the app entry taken out
 * @returns {error} ErrManifestCorrupt, ErrNoInstallDir or a read error
 * @description
 * - A new entry starts at patch level 0
 * - An existing entry keeps its directory, dir is ignored
 */
func (p *Pipeline) PrepareJob(dir string) (updater.Job, error) {
	app := p.cfg.App.Name
	m, found, err := p.Store.Load()
	if err != nil {
		return updater.Job{}, err
	}
	if !found {
		logger.Infof("install manifest '%s' not found", p.Store.Path)
	}

	entry, ok := m.Take(app)
	switch {
	case ok:
		if dir != "" && dir != entry.Dir {
			logger.Warnf("'%s' is installed in '%s', ignoring directory '%s'", app, entry.Dir, dir)
		}
	case dir == "":
		return updater.Job{}, ErrNoInstallDir
	default:
		abs, err := filepath.Abs(dir)
		if err != nil {
			return updater.Job{}, err
		}
		entry = models.InstallEntry{Dir: abs}
		logger.Infof("new install of '%s' in '%s'", app, abs)
	}

	return updater.Job{
		App:      app,
		Platform: p.cfg.App.Platform,
		Manifest: m,
		Entry:    entry,
	}, nil
}
