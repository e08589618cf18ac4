package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
)

// UpdateIdeaFieldInput contains the parameters for editing an idea.
type UpdateIdeaFieldInput struct {
	ID    string
	Field string // "method" or "outcome"
	Value string
}

// UpdateIdeaFieldOutput contains the idea after the edit.
type UpdateIdeaFieldOutput struct {
	Idea domain.Idea
}

// UpdateIdeaField is the use case for setting an idea's method or outcome.
type UpdateIdeaField struct {
	store  *diary.Store
	logger domain.Logger
}

// NewUpdateIdeaField creates a new UpdateIdeaField use case.
func NewUpdateIdeaField(store *diary.Store, logger domain.Logger) *UpdateIdeaField {
	return &UpdateIdeaField{
		store:  store,
		logger: logger,
	}
}

// Execute updates the field. Only method and outcome are editable.
func (uc *UpdateIdeaField) Execute(_ context.Context, in UpdateIdeaFieldInput) (*UpdateIdeaFieldOutput, error) {
	field, err := domain.ParseIdeaField(in.Field)
	if err != nil {
		return nil, err
	}

	ideas := uc.store.Ideas()
	updated, err := ideas.UpdateField(in.ID, field, in.Value)
	if err != nil {
		return nil, fmt.Errorf("update idea: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: %s", domain.ErrIdeaNotFound, in.ID)
	}

	idea, _ := ideas.Get(in.ID)
	uc.logger.Info(logCategory, fmt.Sprintf("idea %s: %s updated", in.ID, field))
	return &UpdateIdeaFieldOutput{Idea: idea}, nil
}
