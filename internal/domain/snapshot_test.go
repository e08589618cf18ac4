package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Clone(t *testing.T) {
	t.Run("nil collections become empty", func(t *testing.T) {
		clone := Snapshot{}.Clone()
		assert.NotNil(t, clone.Ideas)
		assert.NotNil(t, clone.Logs)
		assert.Empty(t, clone.Ideas)
	})

	t.Run("copies are independent", func(t *testing.T) {
		snap := Snapshot{
			Ideas: []Idea{{ID: "a", Text: "orig"}},
			Logs:  []LogEntry{{ID: "l", Method: "orig"}},
		}
		clone := snap.Clone()
		clone.Ideas[0].Text = "changed"
		clone.Logs[0].Method = "changed"

		assert.Equal(t, "orig", snap.Ideas[0].Text)
		assert.Equal(t, "orig", snap.Logs[0].Method)
	})
}

func TestSnapshot_Validate(t *testing.T) {
	at := time.Now()

	tests := []struct {
		name    string
		snap    Snapshot
		wantErr bool
	}{
		{name: "empty", snap: Snapshot{}},
		{name: "valid", snap: Snapshot{
			Ideas: []Idea{{ID: "a", Category: CategoryWork}, {ID: "b", Category: CategoryIdea, Executed: true, ExecutedAt: &at}},
			Logs:  []LogEntry{{ID: "l"}},
		}},
		{name: "missing idea id", snap: Snapshot{Ideas: []Idea{{Category: CategoryWork}}}, wantErr: true},
		{name: "duplicate idea id", snap: Snapshot{Ideas: []Idea{{ID: "a", Category: CategoryWork}, {ID: "a", Category: CategoryWork}}}, wantErr: true},
		{name: "unknown category", snap: Snapshot{Ideas: []Idea{{ID: "a", Category: "hobby"}}}, wantErr: true},
		{name: "executed without timestamp", snap: Snapshot{Ideas: []Idea{{ID: "a", Category: CategoryWork, Executed: true}}}, wantErr: true},
		{name: "missing log id", snap: Snapshot{Logs: []LogEntry{{Method: "m"}}}, wantErr: true},
		{name: "duplicate log id", snap: Snapshot{Logs: []LogEntry{{ID: "l"}, {ID: "l"}}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSnapshot)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
