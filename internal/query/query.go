// Package query filters and searches diary collections.
//
// Every function is pure: inputs are never modified, results are fresh
// copies, and equal inputs always produce equal results in the same order.
package query

import (
	"strings"

	"github.com/fukuside/aidea-memo/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// Ideas returns the ideas that belong to view and match term, in input order.
// An idea matches when term occurs in its text or its category label.
func Ideas(ideas []domain.Idea, view domain.View, term string) []domain.Idea {
	m := newMatcher(term)
	out := make([]domain.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if !view.Includes(idea) {
			continue
		}
		if !m.match(idea.Text) && !m.match(idea.Category.Label()) {
			continue
		}
		out = append(out, idea.Clone())
	}
	return out
}

// Logs returns the log entries whose method or outcome matches term, in input order.
func Logs(logs []domain.LogEntry, term string) []domain.LogEntry {
	m := newMatcher(term)
	out := make([]domain.LogEntry, 0, len(logs))
	for _, entry := range logs {
		if m.match(entry.Method) || m.match(entry.Outcome) {
			out = append(out, entry)
		}
	}
	return out
}

// Counts holds collection totals by state.
type Counts struct {
	Open int
	Done int
	Logs int
}

// Count tallies a snapshot without filtering by search.
func Count(snap domain.Snapshot) Counts {
	c := Counts{Logs: len(snap.Logs)}
	for _, idea := range snap.Ideas {
		if idea.Executed {
			c.Done++
		} else {
			c.Open++
		}
	}
	return c
}

// matcher does case- and width-insensitive substring matching.
type matcher struct {
	caser  cases.Caser
	folded string
}

func newMatcher(term string) *matcher {
	m := &matcher{caser: cases.Fold()}
	m.folded = m.fold(term)
	return m
}

// match reports whether s contains the term. The empty term matches everything.
func (m *matcher) match(s string) bool {
	if m.folded == "" {
		return true
	}
	return strings.Contains(m.fold(s), m.folded)
}

func (m *matcher) fold(s string) string {
	return m.caser.String(width.Fold.String(s))
}
