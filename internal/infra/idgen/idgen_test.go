package idgen

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fukuside/aidea-memo/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func TestGenerator_NewID_IsUUID(t *testing.T) {
	g := New()

	id := g.NewID()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestGenerator_NewID_Unique(t *testing.T) {
	g := New()
	seen := make(map[string]struct{})

	for range 1000 {
		id := g.NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestGenerator_NewID_FallbackWhenRandomFails(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Unix(1700000000, 123)}
	g := NewWithSource(failingReader{}, clock)

	id := g.NewID()

	assert.Regexp(t, regexp.MustCompile(`^1700000000000000123_[0-9a-f]+$`), id)
	_, err := uuid.Parse(id)
	assert.Error(t, err)
}

func TestGenerator_NewID_FallbackUnique(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Unix(1700000000, 0)}
	g := NewWithSource(failingReader{}, clock)

	a := g.NewID()
	b := g.NewID()

	assert.NotEqual(t, a, b, "random suffix must differ even with a frozen clock")
}
