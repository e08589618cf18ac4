// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// Idea is a captured thought with an optional action plan and recorded result.
// Field order is the persisted and exported schema order; do not reorder.
type Idea struct {
	ID         string     `json:"id"`         // Opaque unique id
	Text       string     `json:"text"`       // Immutable after creation
	Category   Category   `json:"category"`   // Immutable after creation
	CreatedAt  time.Time  `json:"createdAt"`  // Creation time
	Executed   bool       `json:"executed"`   // Whether the idea was carried out
	ExecutedAt *time.Time `json:"executedAt"` // Set iff Executed (null otherwise)
	Method     string     `json:"method"`     // Action plan ("how")
	Outcome    string     `json:"outcome"`    // Recorded result
}

// Clone returns a deep copy of the idea.
func (i Idea) Clone() Idea {
	if i.ExecutedAt != nil {
		t := *i.ExecutedAt
		i.ExecutedAt = &t
	}
	return i
}

// IsConsistent reports whether the executed flag agrees with ExecutedAt.
func (i Idea) IsConsistent() bool {
	return i.Executed == (i.ExecutedAt != nil)
}

// IdeaField names a mutable field of an Idea.
type IdeaField string

const (
	FieldMethod  IdeaField = "method"
	FieldOutcome IdeaField = "outcome"
)

// ParseIdeaField accepts only the fields that may change after creation.
func ParseIdeaField(s string) (IdeaField, error) {
	switch f := IdeaField(s); f {
	case FieldMethod, FieldOutcome:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidField, s, FieldMethod, FieldOutcome)
}
