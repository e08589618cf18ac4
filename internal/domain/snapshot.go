package domain

import (
	"fmt"
	"strings"
)

// Snapshot is the complete serializable state of the diary.
// Both collections are ordered most-recently-created first.
type Snapshot struct {
	Ideas []Idea     `json:"ideas"`
	Logs  []LogEntry `json:"logs"`
}

// Clone returns a deep copy with non-nil collections.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Ideas: make([]Idea, len(s.Ideas)),
		Logs:  make([]LogEntry, len(s.Logs)),
	}
	for i, idea := range s.Ideas {
		out.Ideas[i] = idea.Clone()
	}
	copy(out.Logs, s.Logs)
	return out
}

// Validate checks the invariants every loaded or imported snapshot must hold.
func (s Snapshot) Validate() error {
	seen := make(map[string]struct{}, len(s.Ideas))
	for n, idea := range s.Ideas {
		if strings.TrimSpace(idea.ID) == "" {
			return fmt.Errorf("%w: idea #%d has no id", ErrInvalidSnapshot, n)
		}
		if _, dup := seen[idea.ID]; dup {
			return fmt.Errorf("%w: duplicate idea id %q", ErrInvalidSnapshot, idea.ID)
		}
		seen[idea.ID] = struct{}{}
		if !idea.Category.IsValid() {
			return fmt.Errorf("%w: idea %q has unknown category %q", ErrInvalidSnapshot, idea.ID, idea.Category)
		}
		if !idea.IsConsistent() {
			return fmt.Errorf("%w: idea %q executed=%t disagrees with executedAt", ErrInvalidSnapshot, idea.ID, idea.Executed)
		}
	}

	seen = make(map[string]struct{}, len(s.Logs))
	for n, entry := range s.Logs {
		if strings.TrimSpace(entry.ID) == "" {
			return fmt.Errorf("%w: log #%d has no id", ErrInvalidSnapshot, n)
		}
		if _, dup := seen[entry.ID]; dup {
			return fmt.Errorf("%w: duplicate log id %q", ErrInvalidSnapshot, entry.ID)
		}
		seen[entry.ID] = struct{}{}
	}
	return nil
}
