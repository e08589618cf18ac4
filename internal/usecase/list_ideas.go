package usecase

import (
	"context"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/query"
)

// ListIdeasInput contains the parameters for listing ideas.
type ListIdeasInput struct {
	View   string // open, action, done, all (empty = all)
	Search string // Case-insensitive substring; empty matches everything
}

// ListIdeasOutput contains the matching ideas.
type ListIdeasOutput struct {
	View   domain.View
	Ideas  []domain.Idea
	Counts query.Counts // Totals over the whole store, ignoring filters
}

// ListIdeas is the use case for the filtered idea views.
type ListIdeas struct {
	store *diary.Store
}

// NewListIdeas creates a new ListIdeas use case.
func NewListIdeas(store *diary.Store) *ListIdeas {
	return &ListIdeas{store: store}
}

// Execute returns the ideas in the view that match the search term.
func (uc *ListIdeas) Execute(_ context.Context, in ListIdeasInput) (*ListIdeasOutput, error) {
	view, err := domain.ParseView(in.View)
	if err != nil {
		return nil, err
	}

	snap := uc.store.Snapshot()
	return &ListIdeasOutput{
		View:   view,
		Ideas:  query.Ideas(snap.Ideas, view, in.Search),
		Counts: query.Count(snap),
	}, nil
}
