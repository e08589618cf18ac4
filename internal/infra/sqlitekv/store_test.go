package sqlitekv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "diary.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	value, ok, err := store.Get("idea_diary_logs")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestStore_SetGetOverwrite(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set("k", "first"))
	require.NoError(t, store.Set("k", "second"))

	value, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestStore_EmptyValueIsPresent(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set("k", ""))

	value, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestStore_Remove(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set("k", "v"))

	require.NoError(t, store.Remove("k"))
	require.NoError(t, store.Remove("k"))

	_, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Set("idea_diary_ideas", "[]"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, ok, err := reopened.Get("idea_diary_ideas")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestStore_SetAfterCloseFails(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Close())

	assert.Error(t, store.Set("k", "v"))
}
