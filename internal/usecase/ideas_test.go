package usecase

import (
	"context"
	"testing"

	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIdea_Execute_Success(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	uc := NewAddIdea(env.store, env.logger)

	// Execute
	out, err := uc.Execute(context.Background(), AddIdeaInput{
		Text:     "write a blog post",
		Category: "private",
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, "id-1", out.Idea.ID)
	assert.Equal(t, domain.CategoryPrivate, out.Idea.Category)
	assert.False(t, out.Idea.Executed)
	assert.Equal(t, 1, env.store.Ideas().Len())
	assert.Equal(t, 1, env.store.Saves())
}

func TestAddIdea_Execute_DefaultCategory(t *testing.T) {
	env := newTestEnv(t)
	uc := NewAddIdea(env.store, env.logger)

	out, err := uc.Execute(context.Background(), AddIdeaInput{Text: "x"})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategory, out.Idea.Category)
}

func TestAddIdea_Execute_BlankTextSkipped(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	uc := NewAddIdea(env.store, env.logger)

	// Execute
	out, err := uc.Execute(context.Background(), AddIdeaInput{Text: "   "})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Equal(t, 0, env.store.Ideas().Len())
	assert.Equal(t, 0, env.store.Saves())
}

func TestAddIdea_Execute_InvalidCategory(t *testing.T) {
	env := newTestEnv(t)
	uc := NewAddIdea(env.store, env.logger)

	_, err := uc.Execute(context.Background(), AddIdeaInput{Text: "x", Category: "hobby"})

	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.Equal(t, 0, env.store.Ideas().Len())
}

func TestUpdateIdeaField_Execute(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		field   string
		wantErr error
	}{
		{name: "method", id: "id-1", field: "method"},
		{name: "outcome", id: "id-1", field: "outcome"},
		{name: "immutable field", id: "id-1", field: "text", wantErr: domain.ErrInvalidField},
		{name: "unknown id", id: "missing", field: "method", wantErr: domain.ErrIdeaNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			env := newTestEnv(t)
			env.store.Ideas().Add("idea", domain.CategoryWork)
			saves := env.store.Saves()
			uc := NewUpdateIdeaField(env.store, env.logger)

			// Execute
			out, err := uc.Execute(context.Background(), UpdateIdeaFieldInput{
				ID:    tt.id,
				Field: tt.field,
				Value: "new value",
			})

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, saves, env.store.Saves())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, saves+1, env.store.Saves())
			if tt.field == "method" {
				assert.Equal(t, "new value", out.Idea.Method)
			} else {
				assert.Equal(t, "new value", out.Idea.Outcome)
			}
		})
	}
}

func TestToggleIdea_Execute(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	env.store.Ideas().Add("idea", domain.CategoryWork)
	uc := NewToggleIdea(env.store, env.logger)

	// Execute: open -> done
	out, err := uc.Execute(context.Background(), ToggleIdeaInput{ID: "id-1"})
	require.NoError(t, err)
	assert.True(t, out.Idea.Executed)
	require.NotNil(t, out.Idea.ExecutedAt)

	// Execute: done -> open
	out, err = uc.Execute(context.Background(), ToggleIdeaInput{ID: "id-1"})
	require.NoError(t, err)
	assert.False(t, out.Idea.Executed)
	assert.Nil(t, out.Idea.ExecutedAt)
}

func TestToggleIdea_Execute_NotFound(t *testing.T) {
	env := newTestEnv(t)
	uc := NewToggleIdea(env.store, env.logger)

	_, err := uc.Execute(context.Background(), ToggleIdeaInput{ID: "missing"})

	assert.ErrorIs(t, err, domain.ErrIdeaNotFound)
	assert.Equal(t, 0, env.store.Saves())
}

func TestDeleteIdea_Execute_Success(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	env.store.Ideas().Add("idea to delete", domain.CategoryWork)
	uc := NewDeleteIdea(env.store, env.logger)

	// Execute
	out, err := uc.Execute(context.Background(), DeleteIdeaInput{ID: "id-1", Confirmed: true})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "idea to delete", out.Idea.Text)
	_, exists := env.store.Ideas().Get("id-1")
	assert.False(t, exists, "idea should be deleted from repository")
}

func TestDeleteIdea_Execute_NotConfirmed(t *testing.T) {
	env := newTestEnv(t)
	env.store.Ideas().Add("keep me", domain.CategoryWork)
	uc := NewDeleteIdea(env.store, env.logger)

	_, err := uc.Execute(context.Background(), DeleteIdeaInput{ID: "id-1"})

	assert.ErrorIs(t, err, domain.ErrNotConfirmed)
	assert.Equal(t, 1, env.store.Ideas().Len())
}

func TestDeleteIdea_Execute_NotFound(t *testing.T) {
	env := newTestEnv(t)
	uc := NewDeleteIdea(env.store, env.logger)

	_, err := uc.Execute(context.Background(), DeleteIdeaInput{ID: "missing", Confirmed: true})

	assert.ErrorIs(t, err, domain.ErrIdeaNotFound)
}

func TestShowIdea_Execute(t *testing.T) {
	env := newTestEnv(t)
	env.store.Ideas().Add("idea", domain.CategoryIdea)
	uc := NewShowIdea(env.store)

	out, err := uc.Execute(context.Background(), ShowIdeaInput{ID: "id-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryIdea, out.Idea.Category)

	_, err = uc.Execute(context.Background(), ShowIdeaInput{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrIdeaNotFound)
}

func TestListIdeas_Execute(t *testing.T) {
	// Setup: id-1 work (done), id-2 private, id-3 idea
	env := newTestEnv(t)
	ideas := env.store.Ideas()
	ideas.Add("Refactor the parser", domain.CategoryWork)
	ideas.Add("Plan a trip", domain.CategoryPrivate)
	ideas.Add("Parser generator", domain.CategoryIdea)
	ideas.ToggleExecuted("id-1")
	uc := NewListIdeas(env.store)

	tests := []struct {
		name    string
		view    string
		search  string
		wantIDs []string
	}{
		{name: "all", view: "", wantIDs: []string{"id-3", "id-2", "id-1"}},
		{name: "open", view: "open", wantIDs: []string{"id-3", "id-2"}},
		{name: "list alias", view: "list", wantIDs: []string{"id-3", "id-2"}},
		{name: "action", view: "action", wantIDs: []string{"id-3", "id-2"}},
		{name: "done", view: "done", wantIDs: []string{"id-1"}},
		{name: "search is case-insensitive", view: "all", search: "PARSER", wantIDs: []string{"id-3", "id-1"}},
		{name: "search matches category label", view: "all", search: "プライベート", wantIDs: []string{"id-2"}},
		{name: "filter and search combine", view: "open", search: "parser", wantIDs: []string{"id-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), ListIdeasInput{View: tt.view, Search: tt.search})
			require.NoError(t, err)

			ids := make([]string, 0, len(out.Ideas))
			for _, idea := range out.Ideas {
				ids = append(ids, idea.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, 2, out.Counts.Open)
			assert.Equal(t, 1, out.Counts.Done)
		})
	}
}

func TestListIdeas_Execute_InvalidView(t *testing.T) {
	env := newTestEnv(t)
	uc := NewListIdeas(env.store)

	_, err := uc.Execute(context.Background(), ListIdeasInput{View: "archived"})

	assert.ErrorIs(t, err, domain.ErrInvalidView)
}

func TestListCategories_Execute(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	env.store.Ideas().Add("a", domain.CategoryWork)
	env.store.Ideas().Add("b", domain.CategoryWork)
	env.store.Ideas().Add("c", domain.CategoryOther)
	uc := NewListCategories(env.store)

	// Execute
	out, err := uc.Execute(context.Background(), ListCategoriesInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []CategorySummary{
		{Category: domain.CategoryWork, Label: "仕事", Ideas: 2},
		{Category: domain.CategoryPrivate, Label: "プライベート", Ideas: 0},
		{Category: domain.CategoryIdea, Label: "アイデア", Ideas: 0},
		{Category: domain.CategoryOther, Label: "その他", Ideas: 1},
	}, out.Categories)
}
