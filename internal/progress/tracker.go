package progress

import (
	"time"
)

/**
 * Consumer side state of an update run
 * @property {string} CurrentOperation - Text of the last event
 * @property {bool} Complete - The run ended, by Success, Failure or disconnect
 * @property {bool} Failed - The run did not end with Success
 * @property {string} Reason - Failure description
 */
type Tracker struct {
	CurrentOperation string
	Current          int
	Total            int
	Complete         bool
	Failed           bool
	Reason           string
	Last             Event
}

func NewTracker() *Tracker {
	return &Tracker{CurrentOperation: "Waiting For Tasks..."}
}

/**
 * Drain at most one event from the channel
 * @param {*Channel} ch - Channel written by the update worker
 * @returns {bool} Whether the tracker state changed
 * @description
 * - Never blocks; an empty channel leaves the state as is
 * - Once Complete is set, further polls do nothing
 * - A closed channel without a terminal event counts as a failure
 */
func (t *Tracker) Poll(ch *Channel) bool {
	if t.Complete {
		return false
	}
	e, status := ch.TryRecv()
	switch status {
	case Empty:
		return false
	case Disconnected:
		t.Complete = true
		t.Failed = true
		if t.Reason == "" {
			t.Reason = "update worker stopped without reporting a result"
		}
		return true
	}
	t.Last = e
	switch e.Kind {
	case KindStep:
		t.CurrentOperation = e.String()
		if e.Total > 0 {
			t.Current, t.Total = e.Current, e.Total
		}
	case KindSuccess:
		t.CurrentOperation = e.Text
		t.Complete = true
	case KindFailure:
		t.CurrentOperation = e.Text
		t.Reason = e.Text
		t.Complete = true
		t.Failed = true
	}
	return true
}

/**
 * Poll a channel on a fixed tick until the run completes
 * @param {*Channel} ch - Channel written by the update worker
 * @param {time.Duration} tick - Poll interval
 * @param {func(Tracker)} onChange - Called with a copy of the state after each change, may be nil
 * @returns {Tracker} Final state
 */
func Watch(ch *Channel, tick time.Duration, onChange func(Tracker)) Tracker {
	t := NewTracker()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for range ticker.C {
		if t.Poll(ch) && onChange != nil {
			onChange(*t)
		}
		if t.Complete {
			break
		}
	}
	return *t
}
