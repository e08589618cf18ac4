package diary

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fukuside/aidea-memo/internal/domain"
)

// IdeaRepository holds the idea collection, most recent first.
// Every successful mutation calls commit exactly once.
type IdeaRepository struct {
	ids    domain.IDGenerator
	clock  domain.Clock
	commit func()
	items  []domain.Idea
}

// Add creates an idea and prepends it. Blank text or an unknown category is
// a silent no-op (ok=false).
func (r *IdeaRepository) Add(text string, category domain.Category) (domain.Idea, bool) {
	if strings.TrimSpace(text) == "" || !category.IsValid() {
		return domain.Idea{}, false
	}
	idea := domain.Idea{
		ID:        r.ids.NewID(),
		Text:      validText(text),
		Category:  category,
		CreatedAt: domain.Timestamp(r.clock.Now()),
	}
	r.items = slices.Insert(r.items, 0, idea)
	r.commit()
	return idea.Clone(), true
}

// UpdateField sets the method or outcome of an idea.
// Any other field is rejected with domain.ErrInvalidField; an unknown id is a no-op.
func (r *IdeaRepository) UpdateField(id string, field domain.IdeaField, value string) (bool, error) {
	if field != domain.FieldMethod && field != domain.FieldOutcome {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidField, field)
	}
	i := r.index(id)
	if i < 0 {
		return false, nil
	}
	switch field {
	case domain.FieldMethod:
		r.items[i].Method = validText(value)
	case domain.FieldOutcome:
		r.items[i].Outcome = validText(value)
	}
	r.commit()
	return true, nil
}

// ToggleExecuted flips the executed state, stamping or clearing ExecutedAt with it.
func (r *IdeaRepository) ToggleExecuted(id string) (domain.Idea, bool) {
	i := r.index(id)
	if i < 0 {
		return domain.Idea{}, false
	}
	idea := &r.items[i]
	if idea.Executed {
		idea.Executed = false
		idea.ExecutedAt = nil
	} else {
		now := domain.Timestamp(r.clock.Now())
		idea.Executed = true
		idea.ExecutedAt = &now
	}
	r.commit()
	return idea.Clone(), true
}

// Delete removes an idea. Confirmation is the caller's job; an unknown id is a no-op.
func (r *IdeaRepository) Delete(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.items = slices.Delete(r.items, i, i+1)
	r.commit()
	return true
}

// Get returns a copy of the idea with the given id.
func (r *IdeaRepository) Get(id string) (domain.Idea, bool) {
	i := r.index(id)
	if i < 0 {
		return domain.Idea{}, false
	}
	return r.items[i].Clone(), true
}

// List returns copies of all ideas, most recent first.
func (r *IdeaRepository) List() []domain.Idea {
	out := make([]domain.Idea, len(r.items))
	for i, idea := range r.items {
		out[i] = idea.Clone()
	}
	return out
}

// Len returns the number of ideas.
func (r *IdeaRepository) Len() int {
	return len(r.items)
}

func (r *IdeaRepository) index(id string) int {
	return slices.IndexFunc(r.items, func(i domain.Idea) bool { return i.ID == id })
}

// validText replaces invalid UTF-8 sequences with U+FFFD.
func validText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
