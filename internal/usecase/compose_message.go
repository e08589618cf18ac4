package usecase

import (
	"context"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
)

// ComposeMessageInput contains the parameters for handing an idea to a mail client.
type ComposeMessageInput struct {
	IdeaID string
	Kind   string // notify, plan, report (empty = notify)
}

// ComposeMessageOutput contains the message that was handed off.
type ComposeMessageOutput struct {
	Subject string
	Body    string
}

// ComposeMessage is the use case for sending an idea out through the mail client.
type ComposeMessage struct {
	store    *diary.Store
	composer domain.MessageComposer
	logger   domain.Logger
}

// NewComposeMessage creates a new ComposeMessage use case.
func NewComposeMessage(store *diary.Store, composer domain.MessageComposer, logger domain.Logger) *ComposeMessage {
	return &ComposeMessage{
		store:    store,
		composer: composer,
		logger:   logger,
	}
}

// Execute renders the idea and hands it off. Delivery is not verified.
func (uc *ComposeMessage) Execute(_ context.Context, in ComposeMessageInput) (*ComposeMessageOutput, error) {
	kind, err := domain.ParseMessageKind(in.Kind)
	if err != nil {
		return nil, err
	}

	idea, ok := uc.store.Ideas().Get(in.IdeaID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrIdeaNotFound, in.IdeaID)
	}

	subject, body := kind.Render(idea)
	if err := uc.composer.Compose(subject, body); err != nil {
		return nil, fmt.Errorf("compose message: %w", err)
	}

	uc.logger.Debug(logCategory, fmt.Sprintf("message %s handed off for idea %s", kind, idea.ID))
	return &ComposeMessageOutput{Subject: subject, Body: body}, nil
}
