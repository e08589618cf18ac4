package cli

import (
	"testing"

	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	// Setup
	c := newTestContainer(testutil.NewMockKeyValueStore())
	store, err := c.Store()
	require.NoError(t, err)
	store.Ideas().Add("a", domain.CategoryWork)
	store.Logs().Add("m", "")

	// Execute
	out, err := runRoot(t, c, "status")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Data dir: /data\nBackend:  file\nIdeas:    1 open, 0 done\nLogs:     1\n", out)
}

func TestStatus_ReportsRecovery(t *testing.T) {
	kv := testutil.NewMockKeyValueStore()
	kv.Data["idea_diary_logs"] = "not json"
	c := newTestContainer(kv)

	out, err := runRoot(t, c, "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Recovered: stored data was unreadable and has been reset")
}

func TestCategories(t *testing.T) {
	c := newTestContainer(testutil.NewMockKeyValueStore())
	store, err := c.Store()
	require.NoError(t, err)
	store.Ideas().Add("a", domain.CategoryIdea)

	out, err := runRoot(t, c, "categories")

	require.NoError(t, err)
	assert.Equal(t, "work\t仕事\t0\nprivate\tプライベート\t0\nidea\tアイデア\t1\nother\tその他\t0\n", out)
}

func TestMail_NoRecipient(t *testing.T) {
	c := newTestContainer(testutil.NewMockKeyValueStore())
	store, err := c.Store()
	require.NoError(t, err)
	store.Ideas().Add("a", domain.CategoryIdea)

	_, err = runRoot(t, c, "mail", "id-1")

	assert.ErrorIs(t, err, domain.ErrNoMailTarget)
}

func TestMail_InvalidKind(t *testing.T) {
	c := newTestContainer(testutil.NewMockKeyValueStore())
	store, err := c.Store()
	require.NoError(t, err)
	store.Ideas().Add("a", domain.CategoryIdea)

	_, err = runRoot(t, c, "mail", "id-1", "--kind", "fax")

	assert.ErrorIs(t, err, domain.ErrInvalidMessageKind)
}

func TestConfigShow(t *testing.T) {
	// Setup
	c := newTestContainer(testutil.NewMockKeyValueStore())
	c.ConfigManager = &testutil.MockConfigManager{InfoResult: domain.ConfigInfo{Path: "/cfg/config.toml"}}

	// Execute
	out, err := runRoot(t, c, "config")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]\n- /cfg/config.toml (not found)\n")
	assert.Contains(t, out, "[Effective Config]\n")
	assert.Contains(t, out, "backend = 'file'")
	assert.NotContains(t, out, "Warnings")
}

func TestConfigInit(t *testing.T) {
	t.Run("creates file", func(t *testing.T) {
		c := newTestContainer(testutil.NewMockKeyValueStore())
		manager := &testutil.MockConfigManager{InfoResult: domain.ConfigInfo{Path: "/cfg/config.toml"}}
		c.ConfigManager = manager

		out, err := runRoot(t, c, "config", "init")

		require.NoError(t, err)
		assert.True(t, manager.InitCalled)
		assert.Equal(t, "Created config file: /cfg/config.toml\n", out)
	})

	t.Run("already exists", func(t *testing.T) {
		c := newTestContainer(testutil.NewMockKeyValueStore())
		c.ConfigManager = &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}

		_, err := runRoot(t, c, "config", "init")

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}

func TestConfigTemplate(t *testing.T) {
	out, err := runRoot(t, newTestContainer(testutil.NewMockKeyValueStore()), "config", "template")

	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate(), out)
}
