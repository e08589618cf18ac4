package usecase

import (
	"context"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/query"
)

// ListLogsInput contains the parameters for listing log entries.
type ListLogsInput struct {
	Search string
}

// ListLogsOutput contains the matching entries.
type ListLogsOutput struct {
	Logs []domain.LogEntry
}

// ListLogs is the use case for the log view.
type ListLogs struct {
	store *diary.Store
}

// NewListLogs creates a new ListLogs use case.
func NewListLogs(store *diary.Store) *ListLogs {
	return &ListLogs{store: store}
}

// Execute returns the entries whose method or outcome matches the search term.
func (uc *ListLogs) Execute(_ context.Context, in ListLogsInput) (*ListLogsOutput, error) {
	return &ListLogsOutput{
		Logs: query.Logs(uc.store.Logs().List(), in.Search),
	}, nil
}
