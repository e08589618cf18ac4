package domain

import (
	"fmt"
	"strings"
)

// Category classifies an idea. The set is closed.
type Category string

const (
	CategoryWork    Category = "work"    // 仕事
	CategoryPrivate Category = "private" // プライベート
	CategoryIdea    Category = "idea"    // アイデア
	CategoryOther   Category = "other"   // その他
)

// DefaultCategory is used when the caller does not pick one.
const DefaultCategory = CategoryWork

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryWork,
		CategoryPrivate,
		CategoryIdea,
		CategoryOther,
	}
}

// Label returns the display label for the category.
// Labels are part of the search contract: ideas match a term against them.
func (c Category) Label() string {
	switch c {
	case CategoryWork:
		return "仕事"
	case CategoryPrivate:
		return "プライベート"
	case CategoryIdea:
		return "アイデア"
	case CategoryOther:
		return "その他"
	}
	return ""
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	return c.Label() != ""
}

// ParseCategory converts a category id into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}
