package services

import (
	"fmt"
	"io"
	"time"

	"applauncher/internal/progress"
	"applauncher/internal/updater"
)

/**
 * Run an update and print its progress until it completes
 * @param {*updater.Orchestrator} orch - Orchestrator running the job
 * @param {updater.Job} job - Job to run
 * @param {time.Duration} tick - Poll interval of the progress consumer
 * @param {io.Writer} out - Receives one line per progress change
 * @returns {progress.Tracker} Final consumer state
 */
func RunConsole(orch *updater.Orchestrator, job updater.Job, tick time.Duration, out io.Writer) progress.Tracker {
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}
	ch := orch.Start(job)
	return progress.Watch(ch, tick, func(t progress.Tracker) {
		if t.Failed {
			fmt.Fprintln(out, t.Reason)
			return
		}
		fmt.Fprintln(out, t.CurrentOperation)
	})
}
