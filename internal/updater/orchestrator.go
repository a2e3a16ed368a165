package updater

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"applauncher/internal/integrity"
	"applauncher/internal/logger"
	"applauncher/internal/metrics"
	"applauncher/internal/models"
	"applauncher/internal/progress"

	"github.com/hashicorp/go-multierror"
)

const (
	PatchFileName     = "tmp-file.pwr"
	SignatureFileName = "tmp-file.pwr.sig"

	// sub-steps per patch: two downloads, two checksum comparisons, one apply
	stepsPerPatch = 5
)

type Catalog interface {
	Fetch(ctx context.Context, app, platform string, level uint16) ([]models.PatchDescriptor, error)
}

type Downloader interface {
	Download(ctx context.Context, url, dst string) (int64, error)
}

type Applicator interface {
	Apply(ctx context.Context, patchFile, sigFile, installDir string) error
}

type ManifestSaver interface {
	Save(m *models.InstallManifest) error
}

/**
 * Dependencies of an orchestrator
 * @property {Catalog} Catalog - Lists patches newer than the installed level
 * @property {Downloader} Downloader - Fetches patch and signature files
 * @property {Applicator} Applicator - Applies one patch to the install directory
 * @property {ManifestSaver} Store - Persists the manifest after a successful run
 * @property {*metrics.Pipeline} Metrics - Optional collectors
 * @property {string} WorkDir - Directory for the temporary patch files
 */
type Options struct {
	Catalog    Catalog
	Downloader Downloader
	Applicator Applicator
	Store      ManifestSaver
	Metrics    *metrics.Pipeline
	WorkDir    string
}

/**
 * One update run
 * @property {string} App - Application name, also the manifest key
 * @property {string} Platform - Platform sent to the catalog
 * @property {*models.InstallManifest} Manifest - Owned by the run until it finishes
 * @property {models.InstallEntry} Entry - Already taken out of Manifest by the caller
 */
type Job struct {
	App      string
	Platform string
	Manifest *models.InstallManifest
	Entry    models.InstallEntry
}

type Result struct {
	Applied []uint64
	Level   uint16
	Steps   int
	Total   int
}

type Orchestrator struct {
	opts  Options
	state atomic.Int32
}

func New(opts Options) *Orchestrator {
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	return &Orchestrator{opts: opts}
}

// State returns the current pipeline state.
func (o *Orchestrator) State() State {
	return State(o.state.Load())
}

func (o *Orchestrator) setState(s State) {
	o.state.Store(int32(s))
	logger.Debugf("updater: state -> %s", s)
}

/**
 * Run the update pipeline on a new goroutine
 * @param {Job} job - Run description
 * @returns {*progress.Channel} Receives every event of the run, closed afterwards
 * @description
 * - A panic inside the pipeline is reported as a Failure wrapping ErrWorkerCrashed
 * - The channel is closed after the terminal event on every path
 */
func (o *Orchestrator) Start(job Job) *progress.Channel {
	ch := progress.NewChannel()
	go func() {
		defer ch.Close()
		defer func() {
			if r := recover(); r != nil {
				o.setState(StateFailed)
				err := fmt.Errorf("%w: %v", models.ErrWorkerCrashed, r)
				logger.Errorf("update of '%s' crashed: %v", job.App, r)
				o.opts.Metrics.RunFinished(models.KindOf(err))
				_ = ch.Send(progress.Failure(err))
			}
		}()
		o.Run(context.Background(), job, ch)
	}()
	return ch
}

/**
 * Run the update pipeline to completion on the calling goroutine
 * @param {context.Context} ctx - Passed to network and subprocess calls
 * @param {Job} job - Run description
 * @param {progress.Sink} sink - Receives Step events and exactly one terminal event
 * @returns {Result} Progress reached, the applied patch ids and the final level
 * @returns {error} The error reported in the Failure event
 */
func (o *Orchestrator) Run(ctx context.Context, job Job, sink progress.Sink) (Result, error) {
	res, err := o.run(ctx, &job, sink)
	if err != nil {
		o.setState(StateFailed)
		logger.Errorf("update of '%s' failed at step %d/%d: %v", job.App, res.Steps, res.Total, err)
		o.opts.Metrics.RunFinished(models.KindOf(err))
		_ = sink.Send(progress.Failure(err))
		return res, err
	}
	o.setState(StateDone)
	logger.Infof("update of '%s' complete, %d patches applied, level %d", job.App, len(res.Applied), res.Level)
	o.opts.Metrics.RunFinished("")
	_ = sink.Send(progress.Success())
	return res, nil
}

func (o *Orchestrator) run(ctx context.Context, job *Job, sink progress.Sink) (Result, error) {
	res := Result{Level: job.Entry.Patch}

	_ = sink.Send(progress.Step("Contacting update server", 0, 0))
	o.setState(StateFetching)
	began := time.Now()
	patches, err := o.opts.Catalog.Fetch(ctx, job.App, job.Platform, job.Entry.Patch)
	o.opts.Metrics.ObserveStep(StateFetching.String(), time.Since(began))
	if err != nil {
		return res, err
	}
	for _, p := range patches {
		if p.ID > math.MaxUint16 {
			return res, fmt.Errorf("%w: patch id %d exceeds the maximum patch level %d",
				models.ErrCatalogMalformed, p.ID, math.MaxUint16)
		}
	}
	res.Total = len(patches) * stepsPerPatch
	logger.Infof("update of '%s': %d patches available above level %d", job.App, len(patches), job.Entry.Patch)

	if len(patches) > 0 {
		if err := os.MkdirAll(o.opts.WorkDir, 0755); err != nil {
			return res, fmt.Errorf("%w: create work directory '%s': %v", models.ErrDownloadFailed, o.opts.WorkDir, err)
		}
	}

	entry := job.Entry
	for _, p := range patches {
		if err := o.applyPatch(ctx, &entry, p, sink, &res); err != nil {
			return res, err
		}
		res.Applied = append(res.Applied, p.ID)
		res.Level = entry.Patch
		o.opts.Metrics.PatchApplied()
	}

	o.setState(StatePersisting)
	if job.Manifest == nil {
		job.Manifest = models.NewInstallManifest()
	}
	job.Manifest.Put(job.App, entry)
	if err := o.opts.Store.Save(job.Manifest); err != nil {
		return res, err
	}
	o.opts.Metrics.SetPatchLevel(job.App, entry.Patch)
	return res, nil
}

// applyPatch downloads, verifies and applies one patch. The temporary files are removed on return.
func (o *Orchestrator) applyPatch(ctx context.Context, entry *models.InstallEntry, p models.PatchDescriptor,
	sink progress.Sink, res *Result) (err error) {
	patchFile := filepath.Join(o.opts.WorkDir, PatchFileName)
	sigFile := filepath.Join(o.opts.WorkDir, SignatureFileName)
	defer func() {
		for _, f := range []string{patchFile, sigFile} {
			if rerr := os.Remove(f); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
				err = multierror.Append(err, fmt.Errorf("remove temporary file: %w", rerr))
			}
		}
	}()

	step := func(s State, text string, fn func() error) error {
		o.setState(s)
		began := time.Now()
		if err := fn(); err != nil {
			return err
		}
		o.opts.Metrics.ObserveStep(s.String(), time.Since(began))
		res.Steps++
		_ = sink.Send(progress.Step(text, res.Steps, res.Total))
		return nil
	}
	download := func(url, dst string, artifact integrity.Artifact) func() error {
		return func() error {
			n, err := o.opts.Downloader.Download(ctx, url, dst)
			if err != nil {
				return err
			}
			o.opts.Metrics.Downloaded(artifact.String(), n)
			return nil
		}
	}
	verify := func(path string, expected uint32, artifact integrity.Artifact) func() error {
		return func() error {
			err := integrity.VerifyFile(path, expected, artifact)
			var mismatch *integrity.MismatchError
			if errors.As(err, &mismatch) {
				logger.Errorf("patch %d: %s checksum mismatch, downloaded %08x, expected %08x",
					p.ID, artifact, mismatch.Actual, mismatch.Expected)
			}
			return err
		}
	}

	if err := step(StateDownloading, "Downloading patch", download(p.URL, patchFile, integrity.Patch)); err != nil {
		return err
	}
	if err := step(StateVerifying, "Comparing patch checksum", verify(patchFile, p.Hash, integrity.Patch)); err != nil {
		return err
	}
	if err := step(StateDownloadingAux, "Downloading signature", download(p.Sig, sigFile, integrity.Signature)); err != nil {
		return err
	}
	if err := step(StateVerifyingAux, "Comparing signature checksum", verify(sigFile, p.SigHash, integrity.Signature)); err != nil {
		return err
	}
	err = step(StateApplying, "Applying patch", func() error {
		return o.opts.Applicator.Apply(ctx, patchFile, sigFile, entry.Dir)
	})
	if err != nil {
		return err
	}
	entry.Patch = uint16(p.ID)
	return nil
}
