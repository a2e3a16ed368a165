package services

import (
	"errors"
	"sync"
	"time"

	"applauncher/internal/logger"
	"applauncher/internal/models"
	"applauncher/internal/progress"
	"applauncher/internal/updater"

	"github.com/google/uuid"
)

var ErrRunInProgress = errors.New("an update is already running")

type updateRun struct {
	snapshot models.RunSnapshot
	orch     *updater.Orchestrator
}

/**
 * Runs updates on behalf of the HTTP API, one at a time
 * @description
 * - Each run gets a uuid and is followed by a progress consumer goroutine
 * - Only the latest run is kept
 */
type UpdateManager struct {
	mu       sync.Mutex
	pipeline *Pipeline
	tick     time.Duration
	latest   *updateRun
	runs     int
}

func NewUpdateManager(pipeline *Pipeline, tick time.Duration) *UpdateManager {
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}
	return &UpdateManager{pipeline: pipeline, tick: tick}
}

/**
 * Start an update of the configured application
 * @param {string} dir - Install directory for a first install
 * @returns {string} ID of the new run
 * @returns {error} ErrRunInProgress, or the error preparing the job
 */
func (m *UpdateManager) Start(dir string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.latest != nil && !m.latest.snapshot.Complete {
		return "", ErrRunInProgress
	}

	job, err := m.pipeline.PrepareJob(dir)
	if err != nil {
		return "", err
	}
	run := &updateRun{
		snapshot: models.RunSnapshot{
			ID:        uuid.NewString(),
			App:       job.App,
			StartTime: time.Now(),
			Events:    []models.RunEvent{},
		},
		orch: m.pipeline.Orchestrator(),
	}
	m.latest = run
	m.runs++

	ch := run.orch.Start(job)
	go m.follow(run, ch)
	logger.Infof("update run %s of '%s' started", run.snapshot.ID, job.App)
	return run.snapshot.ID, nil
}

func (m *UpdateManager) follow(run *updateRun, ch *progress.Channel) {
	final := progress.Watch(ch, m.tick, func(t progress.Tracker) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if !t.Complete || t.Last.IsTerminal() {
			run.snapshot.Events = append(run.snapshot.Events, models.RunEvent{
				Kind:    t.Last.Kind.String(),
				Text:    t.Last.Text,
				Current: t.Last.Current,
				Total:   t.Last.Total,
			})
		}
		run.snapshot.Operation = t.CurrentOperation
		run.snapshot.Current = t.Current
		run.snapshot.Total = t.Total
		run.snapshot.Failed = t.Failed
		run.snapshot.Reason = t.Reason
		if t.Complete {
			end := time.Now()
			run.snapshot.EndTime = &end
			run.snapshot.Complete = true
		}
	})
	logger.Infof("update run %s finished, failed: %v", run.snapshot.ID, final.Failed)
}

// Latest returns a copy of the most recent run.
func (m *UpdateManager) Latest() (models.RunSnapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.latest == nil {
		return models.RunSnapshot{}, false
	}
	snap := m.latest.snapshot
	snap.Events = make([]models.RunEvent, len(m.latest.snapshot.Events))
	copy(snap.Events, m.latest.snapshot.Events)
	snap.State = m.latest.orch.State().String()
	return snap, true
}

// Runs returns the number of runs started since the manager was created.
func (m *UpdateManager) Runs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}
