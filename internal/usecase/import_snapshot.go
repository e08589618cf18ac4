package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/export"
)

// ImportSnapshotInput contains the parameters for restoring a backup.
type ImportSnapshotInput struct {
	Data      []byte // Backup document, plain or zstd-compressed
	Confirmed bool   // The caller accepts that current state is replaced
}

// ImportSnapshotOutput contains the restored totals.
type ImportSnapshotOutput struct {
	Ideas int
	Logs  int
}

// ImportSnapshot is the use case for replacing the diary with a backup.
type ImportSnapshot struct {
	store  *diary.Store
	logger domain.Logger
}

// NewImportSnapshot creates a new ImportSnapshot use case.
func NewImportSnapshot(store *diary.Store, logger domain.Logger) *ImportSnapshot {
	return &ImportSnapshot{
		store:  store,
		logger: logger,
	}
}

// Execute parses the backup and replaces the current state with it.
// The current state is left untouched when the document is invalid.
func (uc *ImportSnapshot) Execute(_ context.Context, in ImportSnapshotInput) (*ImportSnapshotOutput, error) {
	if !in.Confirmed {
		return nil, domain.ErrNotConfirmed
	}

	snap, err := export.Parse(in.Data)
	if err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	if err := uc.store.Restore(snap); err != nil {
		return nil, fmt.Errorf("restore backup: %w", err)
	}

	uc.logger.Info(logCategory, fmt.Sprintf("restored %d ideas, %d logs", len(snap.Ideas), len(snap.Logs)))
	return &ImportSnapshotOutput{
		Ideas: len(snap.Ideas),
		Logs:  len(snap.Logs),
	}, nil
}
