// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
)

const logCategory = "usecase"

// AddIdeaInput contains the parameters for adding an idea.
type AddIdeaInput struct {
	Text     string // Idea text (required, non-blank)
	Category string // Category id; empty means the default category
}

// AddIdeaOutput contains the result of adding an idea.
type AddIdeaOutput struct {
	Idea    domain.Idea
	Created bool // False when the input was skipped (blank text)
}

// AddIdea is the use case for capturing a new idea.
type AddIdea struct {
	store  *diary.Store
	logger domain.Logger
}

// NewAddIdea creates a new AddIdea use case.
func NewAddIdea(store *diary.Store, logger domain.Logger) *AddIdea {
	return &AddIdea{
		store:  store,
		logger: logger,
	}
}

// Execute adds an idea. Blank text is skipped without error.
func (uc *AddIdea) Execute(_ context.Context, in AddIdeaInput) (*AddIdeaOutput, error) {
	category := domain.DefaultCategory
	if in.Category != "" {
		c, err := domain.ParseCategory(in.Category)
		if err != nil {
			return nil, err
		}
		category = c
	}

	idea, ok := uc.store.Ideas().Add(in.Text, category)
	if !ok {
		return &AddIdeaOutput{}, nil
	}

	uc.logger.Info(logCategory, fmt.Sprintf("idea added: %s", idea.ID))
	return &AddIdeaOutput{Idea: idea, Created: true}, nil
}
