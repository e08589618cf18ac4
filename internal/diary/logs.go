package diary

import (
	"slices"
	"strings"

	"github.com/fukuside/aidea-memo/internal/domain"
)

// LogRepository holds the log collection, most recent first.
type LogRepository struct {
	ids    domain.IDGenerator
	clock  domain.Clock
	commit func()
	items  []domain.LogEntry
}

// Add creates a log entry and prepends it.
// At least one of method and outcome must be non-blank, otherwise it is a no-op.
func (r *LogRepository) Add(method, outcome string) (domain.LogEntry, bool) {
	if strings.TrimSpace(method) == "" && strings.TrimSpace(outcome) == "" {
		return domain.LogEntry{}, false
	}
	entry := domain.LogEntry{
		ID:        r.ids.NewID(),
		Method:    validText(method),
		Outcome:   validText(outcome),
		CreatedAt: domain.Timestamp(r.clock.Now()),
	}
	r.items = slices.Insert(r.items, 0, entry)
	r.commit()
	return entry, true
}

// Delete removes a log entry; an unknown id is a no-op.
func (r *LogRepository) Delete(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.items = slices.Delete(r.items, i, i+1)
	r.commit()
	return true
}

// Get returns the log entry with the given id.
func (r *LogRepository) Get(id string) (domain.LogEntry, bool) {
	i := r.index(id)
	if i < 0 {
		return domain.LogEntry{}, false
	}
	return r.items[i], true
}

// List returns all log entries, most recent first.
func (r *LogRepository) List() []domain.LogEntry {
	out := make([]domain.LogEntry, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of log entries.
func (r *LogRepository) Len() int {
	return len(r.items)
}

func (r *LogRepository) index(id string) int {
	return slices.IndexFunc(r.items, func(e domain.LogEntry) bool { return e.ID == id })
}
