package progress

import (
	"fmt"
)

// Kind tags a progress event.
type Kind int

const (
	KindStep Kind = iota
	KindSuccess
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

/**
 * One message from the update worker to the progress consumer
 * @property {Kind} Kind - Step, Success or Failure
 * @property {string} Text - Human readable description
 * @property {int} Current - Completed sub-steps so far, Step only
 * @property {int} Total - Sub-steps of the whole run, 0 while unknown
 * @property {error} Err - Cause of a Failure
 */
type Event struct {
	Kind    Kind
	Text    string
	Current int
	Total   int
	Err     error
}

func Step(text string, current, total int) Event {
	return Event{Kind: KindStep, Text: text, Current: current, Total: total}
}

func Success() Event {
	return Event{Kind: KindSuccess, Text: "Update complete."}
}

func Failure(err error) Event {
	return Event{Kind: KindFailure, Text: fmt.Sprintf("ERROR: %v", err), Err: err}
}

// IsTerminal reports whether the event ends a run.
func (e Event) IsTerminal() bool {
	return e.Kind == KindSuccess || e.Kind == KindFailure
}

func (e Event) String() string {
	if e.Kind == KindStep && e.Total > 0 {
		return fmt.Sprintf("%s (%d/%d)...", e.Text, e.Current, e.Total)
	}
	return e.Text
}
