package domain

import (
	"fmt"
	"strings"
)

// View selects which ideas a listing shows before search is applied.
type View string

const (
	ViewOpen   View = "open"   // Not yet executed
	ViewAction View = "action" // Not yet executed, shown with their plans
	ViewDone   View = "done"   // Executed
	ViewAll    View = "all"    // Unfiltered
)

// AllViews returns every view.
func AllViews() []View {
	return []View{ViewOpen, ViewAction, ViewDone, ViewAll}
}

// Includes reports whether an idea belongs to the view.
func (v View) Includes(i Idea) bool {
	switch v {
	case ViewOpen, ViewAction:
		return !i.Executed
	case ViewDone:
		return i.Executed
	default:
		return true
	}
}

// ParseView converts a view name into a View. An empty name means ViewAll,
// and "list" is accepted as an alias of ViewOpen.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case "", ViewAll:
		return ViewAll, nil
	case "list":
		return ViewOpen, nil
	case ViewOpen, ViewAction, ViewDone:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
}
