package domain

import "time"

// LogEntry is a free-form cause/effect record, independent of ideas.
// It is immutable after creation.
type LogEntry struct {
	ID        string    `json:"id"`
	Method    string    `json:"method"`  // "A: how"
	Outcome   string    `json:"outcome"` // "B: what happened"
	CreatedAt time.Time `json:"createdAt"`
}
