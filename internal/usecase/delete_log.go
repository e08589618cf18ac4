package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
)

// DeleteLogInput contains the parameters for deleting a log entry.
type DeleteLogInput struct {
	ID        string
	Confirmed bool // The caller has confirmed the deletion
}

// DeleteLogOutput contains the deleted entry.
type DeleteLogOutput struct {
	Entry domain.LogEntry
}

// DeleteLog is the use case for removing a log entry.
type DeleteLog struct {
	store  *diary.Store
	logger domain.Logger
}

// NewDeleteLog creates a new DeleteLog use case.
func NewDeleteLog(store *diary.Store, logger domain.Logger) *DeleteLog {
	return &DeleteLog{
		store:  store,
		logger: logger,
	}
}

// Execute deletes the entry once the caller has confirmed.
func (uc *DeleteLog) Execute(_ context.Context, in DeleteLogInput) (*DeleteLogOutput, error) {
	if !in.Confirmed {
		return nil, domain.ErrNotConfirmed
	}

	logs := uc.store.Logs()
	entry, ok := logs.Get(in.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLogNotFound, in.ID)
	}
	logs.Delete(in.ID)

	uc.logger.Info(logCategory, fmt.Sprintf("log deleted: %s", in.ID))
	return &DeleteLogOutput{Entry: entry}, nil
}
