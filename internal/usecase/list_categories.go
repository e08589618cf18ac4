package usecase

import (
	"context"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
)

// CategorySummary is one row of the category table.
type CategorySummary struct {
	Category domain.Category
	Label    string
	Ideas    int
}

// ListCategoriesInput contains the input for the ListCategories use case.
type ListCategoriesInput struct{}

// ListCategoriesOutput contains every category in display order.
type ListCategoriesOutput struct {
	Categories []CategorySummary
}

// ListCategories is the use case for the category table.
type ListCategories struct {
	store *diary.Store
}

// NewListCategories creates a new ListCategories use case.
func NewListCategories(store *diary.Store) *ListCategories {
	return &ListCategories{store: store}
}

// Execute returns each category with its label and idea count.
func (uc *ListCategories) Execute(_ context.Context, _ ListCategoriesInput) (*ListCategoriesOutput, error) {
	counts := make(map[domain.Category]int)
	for _, idea := range uc.store.Ideas().List() {
		counts[idea.Category]++
	}

	all := domain.AllCategories()
	out := make([]CategorySummary, 0, len(all))
	for _, c := range all {
		out = append(out, CategorySummary{Category: c, Label: c.Label(), Ideas: counts[c]})
	}
	return &ListCategoriesOutput{Categories: out}, nil
}
