package cli

import (
	"testing"

	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAdd(t *testing.T) {
	c := newTestContainer(testutil.NewMockKeyValueStore())

	out, err := runRoot(t, c, "log", "add", "--method", "walked", "--outcome", "focused")
	require.NoError(t, err)
	assert.Equal(t, "Added log id-1\n", out)

	out, err = runRoot(t, c, "log", "add")
	require.NoError(t, err)
	assert.Equal(t, "Nothing added: method and outcome are both empty\n", out)

	store, err := c.Store()
	require.NoError(t, err)
	assert.Equal(t, 1, store.Logs().Len())
}

func TestLogList(t *testing.T) {
	// Setup
	c := newTestContainer(testutil.NewMockKeyValueStore())
	store, err := c.Store()
	require.NoError(t, err)
	store.Logs().Add("walked", "")
	store.Logs().Add("", "focused")

	// Execute
	out, err := runRoot(t, c, "log", "list", "--search", "WALK")

	// Assert
	require.NoError(t, err)
	assert.Regexp(t, `^id-1\t\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\twalked\t-\n$`, out)
}

func TestLogDelete(t *testing.T) {
	c := newTestContainer(testutil.NewMockKeyValueStore())
	store, err := c.Store()
	require.NoError(t, err)
	store.Logs().Add("walked", "")

	_, err = runRoot(t, c, "log", "delete", "id-1")
	assert.ErrorIs(t, err, domain.ErrNotConfirmed)

	out, err := runRoot(t, c, "log", "delete", "id-1", "-y")
	require.NoError(t, err)
	assert.Equal(t, "Deleted log id-1\n", out)

	_, err = runRoot(t, c, "log", "delete", "id-1", "-y")
	assert.ErrorIs(t, err, domain.ErrLogNotFound)
}
