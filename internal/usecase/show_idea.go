package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
)

// ShowIdeaInput contains the parameters for showing an idea.
type ShowIdeaInput struct {
	ID string
}

// ShowIdeaOutput contains the idea.
type ShowIdeaOutput struct {
	Idea domain.Idea
}

// ShowIdea is the use case for reading a single idea.
type ShowIdea struct {
	store *diary.Store
}

// NewShowIdea creates a new ShowIdea use case.
func NewShowIdea(store *diary.Store) *ShowIdea {
	return &ShowIdea{store: store}
}

// Execute returns the idea with the given id.
func (uc *ShowIdea) Execute(_ context.Context, in ShowIdeaInput) (*ShowIdeaOutput, error) {
	idea, ok := uc.store.Ideas().Get(in.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrIdeaNotFound, in.ID)
	}
	return &ShowIdeaOutput{Idea: idea}, nil
}
