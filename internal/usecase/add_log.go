package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
)

// AddLogInput contains the parameters for adding a log entry.
type AddLogInput struct {
	Method  string // What was done
	Outcome string // What came of it
}

// AddLogOutput contains the result of adding a log entry.
type AddLogOutput struct {
	Entry   domain.LogEntry
	Created bool // False when both fields were blank
}

// AddLog is the use case for recording a cause/effect log entry.
type AddLog struct {
	store  *diary.Store
	logger domain.Logger
}

// NewAddLog creates a new AddLog use case.
func NewAddLog(store *diary.Store, logger domain.Logger) *AddLog {
	return &AddLog{
		store:  store,
		logger: logger,
	}
}

// Execute adds the entry. Blank input is skipped without error.
func (uc *AddLog) Execute(_ context.Context, in AddLogInput) (*AddLogOutput, error) {
	entry, ok := uc.store.Logs().Add(in.Method, in.Outcome)
	if !ok {
		return &AddLogOutput{}, nil
	}

	uc.logger.Info(logCategory, fmt.Sprintf("log added: %s", entry.ID))
	return &AddLogOutput{Entry: entry, Created: true}, nil
}
