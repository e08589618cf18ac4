package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/infra/persist"
	"github.com/fukuside/aidea-memo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestNew_FileBackend(t *testing.T) {
	// Setup
	configDir := t.TempDir()
	dataDir := t.TempDir()

	// Execute
	c, err := New(Options{ConfigDir: configDir, DataDir: dataDir})
	require.NoError(t, err)

	store, err := c.Store()
	require.NoError(t, err)
	store.Ideas().Add("persist me", domain.CategoryWork)
	require.NoError(t, c.Close())

	// Assert: the snapshot lands in the file store directory
	assert.Equal(t, domain.StoreBackendFile, c.Config.Backend)
	assert.FileExists(t, filepath.Join(domain.FileStoreDir(dataDir), persist.KeyIdeas+".json"))

	// Reopen and read it back
	c2, err := New(Options{ConfigDir: configDir, DataDir: dataDir})
	require.NoError(t, err)
	defer func() { _ = c2.Close() }()
	store2, err := c2.Store()
	require.NoError(t, err)
	require.Equal(t, 1, store2.Ideas().Len())
	assert.Equal(t, "persist me", store2.Ideas().List()[0].Text)
}

func TestNew_SQLiteBackendFromConfig(t *testing.T) {
	// Setup
	configDir := t.TempDir()
	dataDir := t.TempDir()
	writeConfig(t, configDir, "[store]\nbackend = \"sqlite\"\ndir = \""+filepath.ToSlash(dataDir)+"\"\n")

	// Execute
	c, err := New(Options{ConfigDir: configDir})
	require.NoError(t, err)
	store, err := c.Store()
	require.NoError(t, err)
	store.Logs().Add("m", "o")
	require.NoError(t, c.Close())

	// Assert
	assert.Equal(t, dataDir, c.Config.DataDir)
	assert.Equal(t, domain.StoreBackendSQLite, c.Config.Backend)
	assert.FileExists(t, domain.SQLiteStorePath(dataDir))
}

func TestNew_BrokenConfigFallsBackToDefaults(t *testing.T) {
	configDir := t.TempDir()
	writeConfig(t, configDir, "[store\n")

	c, err := New(Options{ConfigDir: configDir, DataDir: t.TempDir()})

	require.NoError(t, err)
	defer func() { _ = c.Close() }()
	assert.Equal(t, domain.StoreBackendFile, c.AppConfig.Store.Backend)
	require.Len(t, c.AppConfig.Warnings, 1)
	assert.Contains(t, c.AppConfig.Warnings[0], "load config")
}

func TestContainer_Composer(t *testing.T) {
	// Setup
	cfg := domain.NewDefaultConfig()
	c := NewWithDeps(Config{}, cfg, testutil.NewMockKeyValueStore(), &testutil.MockIDGenerator{}, &testutil.MockClock{}, &testutil.MockLogger{}, &testutil.MockConfigManager{})

	// Execute / Assert
	_, err := c.Composer("")
	require.NoError(t, err)
	_, err = c.Composer(domain.DeliveryClipboard)
	require.NoError(t, err)
	_, err = c.Composer("pigeon")
	assert.Error(t, err)
}

func TestContainer_CloseFlushesOpenedStore(t *testing.T) {
	// Setup
	kv := testutil.NewMockKeyValueStore()
	c := NewWithDeps(Config{}, domain.NewDefaultConfig(), kv, &testutil.MockIDGenerator{}, &testutil.MockClock{}, &testutil.MockLogger{}, &testutil.MockConfigManager{})
	_, err := c.Store()
	require.NoError(t, err)

	// Execute
	require.NoError(t, c.Close())

	// Assert
	assert.Contains(t, kv.Data, persist.KeyIdeas)
	assert.Contains(t, kv.Data, persist.KeyLogs)
	assert.Contains(t, kv.Data, persist.KeyMeta)
}

func TestContainer_CloseWithoutStoreWritesNothing(t *testing.T) {
	kv := testutil.NewMockKeyValueStore()
	c := NewWithDeps(Config{}, domain.NewDefaultConfig(), kv, &testutil.MockIDGenerator{}, &testutil.MockClock{}, &testutil.MockLogger{}, &testutil.MockConfigManager{})

	require.NoError(t, c.Close())
	assert.Empty(t, kv.Data)
}

func TestContainer_CloseReportsFlushFailure(t *testing.T) {
	kv := testutil.NewMockKeyValueStore()
	c := NewWithDeps(Config{}, domain.NewDefaultConfig(), kv, &testutil.MockIDGenerator{}, &testutil.MockClock{}, &testutil.MockLogger{}, &testutil.MockConfigManager{})
	_, err := c.Store()
	require.NoError(t, err)
	kv.SetErr = assert.AnError

	err = c.Close()

	assert.ErrorIs(t, err, domain.ErrPersistenceWriteFailure)
}

func TestContainer_StoreRefusesNewerSchema(t *testing.T) {
	// Setup
	kv := testutil.NewMockKeyValueStore()
	kv.Data[persist.KeyIdeas] = "[]"
	kv.Data[persist.KeyLogs] = "[]"
	kv.Data[persist.KeyMeta] = `{"schema":99}`
	c := NewWithDeps(Config{}, domain.NewDefaultConfig(), kv, &testutil.MockIDGenerator{}, &testutil.MockClock{}, &testutil.MockLogger{}, &testutil.MockConfigManager{})

	// Execute
	_, err := c.Store()

	// Assert
	assert.ErrorIs(t, err, domain.ErrUnsupportedSchema)
	require.NoError(t, c.Close())
	assert.Equal(t, `{"schema":99}`, kv.Data[persist.KeyMeta])
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", "diary"), expandHome("~/diary"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
}
