// Package diary holds the in-memory diary state and its repositories.
//
// A Store is opened once per process from the persisted snapshot and owns
// every entity; callers only ever receive copies. Each successful mutation is
// written through to the persister immediately.
package diary

import (
	"fmt"

	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/infra/persist"
)

const logCategory = "diary"

// Persister loads and saves whole snapshots.
type Persister interface {
	Load() persist.LoadResult
	Save(snap domain.Snapshot) error
}

// Store is the single owner of the diary state.
type Store struct {
	persister Persister
	logger    domain.Logger
	ideas     *IdeaRepository
	logs      *LogRepository
	recovered error
	refused   error
	saveErr   error
	saves     int
	loaded    bool
}

// Open loads the persisted snapshot and returns a Store over it.
// Load failures are recovered by the persister; Open itself never fails.
func Open(p Persister, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *Store {
	s := &Store{persister: p, logger: logger}
	s.ideas = &IdeaRepository{ids: ids, clock: clock, commit: s.commit}
	s.logs = &LogRepository{ids: ids, clock: clock, commit: s.commit}

	res := p.Load()
	s.ideas.items = res.Snapshot.Clone().Ideas
	s.logs.items = res.Snapshot.Clone().Logs
	s.recovered = res.Recovered
	s.refused = res.Refused
	s.loaded = res.Refused == nil

	if logger != nil {
		logger.Debug(logCategory, fmt.Sprintf("loaded %d ideas, %d logs", len(s.ideas.items), len(s.logs.items)))
	}
	return s
}

// Ideas returns the idea repository.
func (s *Store) Ideas() *IdeaRepository {
	return s.ideas
}

// Logs returns the log repository.
func (s *Store) Logs() *LogRepository {
	return s.logs
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() domain.Snapshot {
	return domain.Snapshot{Ideas: s.ideas.items, Logs: s.logs.items}.Clone()
}

// Restore replaces the whole state with snap after validating it, then saves once.
// On validation failure the current state is left untouched.
func (s *Store) Restore(snap domain.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	snap = snap.Clone()
	s.ideas.items = snap.Ideas
	s.logs.items = snap.Logs
	s.commit()
	return nil
}

// Flush saves the current state. Saves are already write-through; this is the
// explicit save at shutdown.
func (s *Store) Flush() error {
	if s.refused != nil {
		return s.refused
	}
	if !s.loaded {
		return domain.ErrNotLoaded
	}
	return s.save()
}

// Recovered reports the load failure that reset the state, if any.
func (s *Store) Recovered() error {
	return s.recovered
}

// Refused reports why the persisted snapshot could not be opened, if it was
// left in place. A refused Store never saves.
func (s *Store) Refused() error {
	return s.refused
}

// LastSaveErr returns the error of the most recent save, nil if it succeeded.
// In-memory state stays authoritative either way.
func (s *Store) LastSaveErr() error {
	return s.saveErr
}

// Saves returns how many saves were attempted since Open.
func (s *Store) Saves() int {
	return s.saves
}

// commit runs after every successful mutation.
func (s *Store) commit() {
	if s.refused != nil {
		s.saveErr = s.refused
		return
	}
	if !s.loaded {
		return // never overwrite durable state with startup state
	}
	_ = s.save()
}

func (s *Store) save() error {
	s.saves++
	s.saveErr = s.persister.Save(s.Snapshot())
	return s.saveErr
}
