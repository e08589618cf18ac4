package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
)

// DeleteIdeaInput contains the parameters for deleting an idea.
type DeleteIdeaInput struct {
	ID        string
	Confirmed bool // The caller has confirmed the deletion
}

// DeleteIdeaOutput contains the deleted idea.
type DeleteIdeaOutput struct {
	Idea domain.Idea
}

// DeleteIdea is the use case for removing an idea.
type DeleteIdea struct {
	store  *diary.Store
	logger domain.Logger
}

// NewDeleteIdea creates a new DeleteIdea use case.
func NewDeleteIdea(store *diary.Store, logger domain.Logger) *DeleteIdea {
	return &DeleteIdea{
		store:  store,
		logger: logger,
	}
}

// Execute deletes the idea once the caller has confirmed.
func (uc *DeleteIdea) Execute(_ context.Context, in DeleteIdeaInput) (*DeleteIdeaOutput, error) {
	if !in.Confirmed {
		return nil, domain.ErrNotConfirmed
	}

	ideas := uc.store.Ideas()
	idea, ok := ideas.Get(in.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrIdeaNotFound, in.ID)
	}
	ideas.Delete(in.ID)

	uc.logger.Info(logCategory, fmt.Sprintf("idea deleted: %s", in.ID))
	return &DeleteIdeaOutput{Idea: idea}, nil
}
