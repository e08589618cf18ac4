package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
)

// ToggleIdeaInput contains the parameters for toggling an idea.
type ToggleIdeaInput struct {
	ID string
}

// ToggleIdeaOutput contains the idea after the toggle.
type ToggleIdeaOutput struct {
	Idea domain.Idea
}

// ToggleIdea is the use case for marking an idea executed or open again.
type ToggleIdea struct {
	store  *diary.Store
	logger domain.Logger
}

// NewToggleIdea creates a new ToggleIdea use case.
func NewToggleIdea(store *diary.Store, logger domain.Logger) *ToggleIdea {
	return &ToggleIdea{
		store:  store,
		logger: logger,
	}
}

// Execute flips the executed state of the idea.
func (uc *ToggleIdea) Execute(_ context.Context, in ToggleIdeaInput) (*ToggleIdeaOutput, error) {
	idea, ok := uc.store.Ideas().ToggleExecuted(in.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrIdeaNotFound, in.ID)
	}

	uc.logger.Info(logCategory, fmt.Sprintf("idea %s: executed=%t", idea.ID, idea.Executed))
	return &ToggleIdeaOutput{Idea: idea}, nil
}
