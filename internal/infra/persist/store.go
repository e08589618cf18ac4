// Package persist loads and saves the diary snapshot in a key-value store.
//
// The snapshot is kept under two logical keys, one JSON array per collection,
// plus a small meta record carrying the schema version and a content digest.
// Loading never fails: a corrupt snapshot is discarded and the keys cleared.
package persist

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/zeebo/blake3"
)

// Logical keys of the persisted snapshot.
const (
	KeyIdeas = "idea_diary_ideas"
	KeyLogs  = "idea_diary_logs"
	KeyMeta  = "idea_diary_meta"
)

// SchemaVersion is the snapshot schema written by Save.
const SchemaVersion = 1

const logCategory = "persist"

// digestKey separates snapshot digests from any other BLAKE3 use.
var digestKey = [32]byte{
	'i', 'd', 'e', 'a', '-', 'd', 'i', 'a', 'r', 'y', '.', 's', 'n', 'a', 'p', 's',
	'h', 'o', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// meta is the JSON representation of the KeyMeta record.
type meta struct {
	SavedAt time.Time `json:"savedAt"`
	Digest  string    `json:"digest"`
	Schema  int       `json:"schema"`
}

// LoadResult is the outcome of Load.
type LoadResult struct {
	Snapshot domain.Snapshot
	// Recovered is non-nil when the persisted snapshot was corrupt and has been
	// discarded. It wraps domain.ErrPersistenceReadCorrupt.
	Recovered error
	// Refused is non-nil when the snapshot was written by a newer schema. The
	// keys are left untouched and Snapshot is empty. It wraps
	// domain.ErrUnsupportedSchema.
	Refused error
}

// Store reads and writes the snapshot through a domain.KeyValueStore.
type Store struct {
	kv     domain.KeyValueStore
	logger domain.Logger
	clock  domain.Clock
}

// New creates a new Store.
func New(kv domain.KeyValueStore, logger domain.Logger, clock domain.Clock) *Store {
	return &Store{kv: kv, logger: logger, clock: clock}
}

// Load reads both collections. Absent keys yield empty collections.
// On any read, parse, or validation failure both collections are discarded,
// every key is removed, and a diagnostic is emitted. A snapshot from a newer
// schema is refused instead and kept as is.
func (s *Store) Load() LoadResult {
	snap, err := s.read()
	if err == nil {
		return LoadResult{Snapshot: snap}
	}
	if errors.Is(err, domain.ErrUnsupportedSchema) {
		s.warn(fmt.Sprintf("load refused, keeping stored data: %v", err))
		return LoadResult{Snapshot: emptySnapshot(), Refused: err}
	}

	recovered := fmt.Errorf("%w: %w", domain.ErrPersistenceReadCorrupt, err)
	s.warn(fmt.Sprintf("load failed, resetting data: %v", err))
	for _, key := range []string{KeyIdeas, KeyLogs, KeyMeta} {
		if rmErr := s.kv.Remove(key); rmErr != nil {
			s.warn(fmt.Sprintf("clear %s: %v", key, rmErr))
		}
	}
	return LoadResult{Snapshot: emptySnapshot(), Recovered: recovered}
}

// Save writes the full snapshot, overwriting prior content.
// The first failing write stops the save; nothing is retried or rolled back.
func (s *Store) Save(snap domain.Snapshot) error {
	ideas, logs, err := encode(snap)
	if err != nil {
		return s.writeFailure(err)
	}

	m, err := json.Marshal(meta{
		Schema:  SchemaVersion,
		Digest:  digest(ideas, logs),
		SavedAt: domain.Timestamp(s.clock.Now()),
	})
	if err != nil {
		return s.writeFailure(err)
	}

	for _, kv := range []struct{ key, value string }{
		{KeyIdeas, ideas},
		{KeyLogs, logs},
		{KeyMeta, string(m)},
	} {
		if err := s.kv.Set(kv.key, kv.value); err != nil {
			return s.writeFailure(err)
		}
	}

	if s.logger != nil {
		s.logger.Debug(logCategory, fmt.Sprintf("saved %d ideas, %d logs", len(snap.Ideas), len(snap.Logs)))
	}
	return nil
}

// Digest returns the content digest of snap as Save would record it.
func Digest(snap domain.Snapshot) (string, error) {
	ideas, logs, err := encode(snap)
	if err != nil {
		return "", err
	}
	return digest(ideas, logs), nil
}

func (s *Store) read() (domain.Snapshot, error) {
	snap := emptySnapshot()

	rawIdeas, hasIdeas, err := s.kv.Get(KeyIdeas)
	if err != nil {
		return snap, err
	}
	rawLogs, hasLogs, err := s.kv.Get(KeyLogs)
	if err != nil {
		return snap, err
	}

	if hasIdeas {
		if err := decodeArray(rawIdeas, &snap.Ideas); err != nil {
			return emptySnapshot(), fmt.Errorf("parse %s: %w", KeyIdeas, err)
		}
	}
	if hasLogs {
		if err := decodeArray(rawLogs, &snap.Logs); err != nil {
			return emptySnapshot(), fmt.Errorf("parse %s: %w", KeyLogs, err)
		}
	}
	if err := snap.Validate(); err != nil {
		return emptySnapshot(), err
	}

	if err := s.checkMeta(rawIdeas, rawLogs); err != nil {
		return emptySnapshot(), err
	}
	return snap, nil
}

// checkMeta rejects snapshots written by a newer schema. A digest mismatch
// means the data was edited out-of-band; it is reported but still loaded.
func (s *Store) checkMeta(rawIdeas, rawLogs string) error {
	rawMeta, ok, err := s.kv.Get(KeyMeta)
	if err != nil {
		return err
	}
	if !ok {
		return nil // written before meta existed
	}

	var m meta
	if err := json.Unmarshal([]byte(rawMeta), &m); err != nil {
		return fmt.Errorf("parse %s: %w", KeyMeta, err)
	}
	if m.Schema > SchemaVersion {
		return fmt.Errorf("%w: %d (supported: %d)", domain.ErrUnsupportedSchema, m.Schema, SchemaVersion)
	}
	if m.Digest != "" && m.Digest != digest(rawIdeas, rawLogs) {
		s.warn("snapshot digest mismatch; data was modified outside the diary")
	}
	return nil
}

func (s *Store) writeFailure(err error) error {
	s.warn(fmt.Sprintf("save failed, keeping in-memory state: %v", err))
	return fmt.Errorf("%w: %w", domain.ErrPersistenceWriteFailure, err)
}

func (s *Store) warn(msg string) {
	if s.logger != nil {
		s.logger.Warn(logCategory, msg)
	}
}

func encode(snap domain.Snapshot) (ideas, logs string, err error) {
	snap = snap.Clone() // nil collections encode as []
	ib, err := json.Marshal(snap.Ideas)
	if err != nil {
		return "", "", fmt.Errorf("marshal ideas: %w", err)
	}
	lb, err := json.Marshal(snap.Logs)
	if err != nil {
		return "", "", fmt.Errorf("marshal logs: %w", err)
	}
	return string(ib), string(lb), nil
}

// decodeArray parses a JSON array. A JSON null is treated as empty.
func decodeArray[T any](raw string, out *[]T) error {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	*out = items
	return nil
}

func digest(ideas, logs string) string {
	h, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		panic("persist: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	_, _ = h.Write([]byte(ideas))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(logs))
	return hex.EncodeToString(h.Sum(nil))
}

func emptySnapshot() domain.Snapshot {
	return domain.Snapshot{Ideas: []domain.Idea{}, Logs: []domain.LogEntry{}}
}
