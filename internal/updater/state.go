package updater

import "fmt"

// State is the position of the orchestrator in the update pipeline.
type State int32

const (
	StateIdle State = iota
	StateFetching
	StateDownloading
	StateVerifying
	StateDownloadingAux
	StateVerifyingAux
	StateApplying
	StatePersisting
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateIdle:           "idle",
	StateFetching:       "fetching",
	StateDownloading:    "downloading",
	StateVerifying:      "verifying",
	StateDownloadingAux: "downloading_signature",
	StateVerifyingAux:   "verifying_signature",
	StateApplying:       "applying",
	StatePersisting:     "persisting",
	StateDone:           "done",
	StateFailed:         "failed",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// Terminal reports whether the run has finished.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
