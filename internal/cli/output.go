package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fukuside/aidea-memo/internal/domain"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats for --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("invalid format %q (use text, json, or yaml)", format)
}

// ideaRecord is the structured form of an idea for json and yaml output.
type ideaRecord struct {
	CreatedAt     time.Time  `json:"createdAt" yaml:"createdAt"`
	ExecutedAt    *time.Time `json:"executedAt" yaml:"executedAt"`
	ID            string     `json:"id" yaml:"id"`
	Text          string     `json:"text" yaml:"text"`
	Category      string     `json:"category" yaml:"category"`
	CategoryLabel string     `json:"categoryLabel" yaml:"categoryLabel"`
	Method        string     `json:"method" yaml:"method"`
	Outcome       string     `json:"outcome" yaml:"outcome"`
	Executed      bool       `json:"executed" yaml:"executed"`
}

func newIdeaRecord(i domain.Idea) ideaRecord {
	return ideaRecord{
		ID:            i.ID,
		Text:          i.Text,
		Category:      string(i.Category),
		CategoryLabel: i.Category.Label(),
		CreatedAt:     i.CreatedAt,
		Executed:      i.Executed,
		ExecutedAt:    i.ExecutedAt,
		Method:        i.Method,
		Outcome:       i.Outcome,
	}
}

// logRecord is the structured form of a log entry for json and yaml output.
type logRecord struct {
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	ID        string    `json:"id" yaml:"id"`
	Method    string    `json:"method" yaml:"method"`
	Outcome   string    `json:"outcome" yaml:"outcome"`
}

func newLogRecord(e domain.LogEntry) logRecord {
	return logRecord{ID: e.ID, Method: e.Method, Outcome: e.Outcome, CreatedAt: e.CreatedAt}
}

// writeStructured encodes v as json or yaml.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}

// Colors for category badges and states.
var colors = struct {
	Work    lipgloss.Color
	Private lipgloss.Color
	Idea    lipgloss.Color
	Other   lipgloss.Color
	Done    lipgloss.Color
	Muted   lipgloss.Color
}{
	Work:    lipgloss.Color("#74B9FF"), // Light blue
	Private: lipgloss.Color("#FD79A8"), // Pink
	Idea:    lipgloss.Color("#FDCB6E"), // Yellow
	Other:   lipgloss.Color("#A29BFE"), // Lavender
	Done:    lipgloss.Color("#00B894"), // Green
	Muted:   lipgloss.Color("#636E72"), // Gray
}

// styles renders badges when writing to a terminal and plain text otherwise.
type styles struct {
	enabled bool
}

func newStyles(w io.Writer) styles {
	f, ok := w.(*os.File)
	return styles{enabled: ok && term.IsTerminal(int(f.Fd()))}
}

func (s styles) category(c domain.Category) string {
	label := c.Label()
	if !s.enabled {
		return "[" + label + "]"
	}
	color := colors.Other
	switch c {
	case domain.CategoryWork:
		color = colors.Work
	case domain.CategoryPrivate:
		color = colors.Private
	case domain.CategoryIdea:
		color = colors.Idea
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render("[" + label + "]")
}

func (s styles) state(executed bool) string {
	text := "open"
	if executed {
		text = "done"
	}
	if !s.enabled {
		return text
	}
	if executed {
		return lipgloss.NewStyle().Foreground(colors.Done).Render(text)
	}
	return lipgloss.NewStyle().Foreground(colors.Muted).Render(text)
}

// formatTime renders a stored UTC timestamp in local time.
func formatTime(t time.Time) string {
	return t.Local().Format(time.DateTime)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
