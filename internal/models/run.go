package models

import (
	"time"
)

// RunEvent is the JSON form of one progress event.
type RunEvent struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
}

// RunSnapshot describes an update run started through the HTTP API.
type RunSnapshot struct {
	ID        string     `json:"id"`
	App       string     `json:"app"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	State     string     `json:"state"`
	Operation string     `json:"operation"`
	Current   int        `json:"current"`
	Total     int        `json:"total"`
	Complete  bool       `json:"complete"`
	Failed    bool       `json:"failed"`
	Reason    string     `json:"reason,omitempty"`
	Events    []RunEvent `json:"events"`
}
