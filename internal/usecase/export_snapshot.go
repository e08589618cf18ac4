package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/export"
)

// ExportSnapshotInput contains the parameters for exporting a backup.
type ExportSnapshotInput struct {
	Compress bool // Wrap the document in a zstd frame
}

// ExportSnapshotOutput contains the backup document and its suggested file name.
type ExportSnapshotOutput struct {
	Filename string
	Data     []byte
	Ideas    int
	Logs     int
}

// ExportSnapshot is the use case for producing a backup document.
type ExportSnapshot struct {
	store *diary.Store
	clock domain.Clock
}

// NewExportSnapshot creates a new ExportSnapshot use case.
func NewExportSnapshot(store *diary.Store, clock domain.Clock) *ExportSnapshot {
	return &ExportSnapshot{
		store: store,
		clock: clock,
	}
}

// Execute serializes the current state. Writing it out is the caller's job.
func (uc *ExportSnapshot) Execute(_ context.Context, in ExportSnapshotInput) (*ExportSnapshotOutput, error) {
	snap := uc.store.Snapshot()
	data, err := export.Document(snap)
	if err != nil {
		return nil, fmt.Errorf("export snapshot: %w", err)
	}

	now := uc.clock.Now()
	name := export.Filename(now)
	if in.Compress {
		data, err = export.Compress(data)
		if err != nil {
			return nil, fmt.Errorf("compress snapshot: %w", err)
		}
		name = export.CompressedFilename(now)
	}

	return &ExportSnapshotOutput{
		Filename: name,
		Data:     data,
		Ideas:    len(snap.Ideas),
		Logs:     len(snap.Logs),
	}, nil
}
