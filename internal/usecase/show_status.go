package usecase

import (
	"context"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/query"
)

// ShowStatusInput contains the input for the ShowStatus use case.
type ShowStatusInput struct{}

// ShowStatusOutput describes the store and its contents.
type ShowStatusOutput struct {
	Recovered   error // Non-nil when the persisted snapshot was discarded at load
	LastSaveErr error // Non-nil when the most recent save failed
	Backend     string
	DataDir     string
	Counts      query.Counts
}

// ShowStatus is the use case for summarizing the diary.
type ShowStatus struct {
	store   *diary.Store
	backend string
	dataDir string
}

// NewShowStatus creates a new ShowStatus use case.
func NewShowStatus(store *diary.Store, backend, dataDir string) *ShowStatus {
	return &ShowStatus{
		store:   store,
		backend: backend,
		dataDir: dataDir,
	}
}

// Execute returns the totals and the health of the persisted snapshot.
func (uc *ShowStatus) Execute(_ context.Context, _ ShowStatusInput) (*ShowStatusOutput, error) {
	return &ShowStatusOutput{
		Recovered:   uc.store.Recovered(),
		LastSaveErr: uc.store.LastSaveErr(),
		Backend:     uc.backend,
		DataDir:     uc.dataDir,
		Counts:      query.Count(uc.store.Snapshot()),
	}, nil
}
