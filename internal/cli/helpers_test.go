package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/fukuside/aidea-memo/internal/app"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/testutil"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(kv *testutil.MockKeyValueStore) *app.Container {
	return app.NewWithDeps(
		app.Config{DataDir: "/data", Backend: domain.StoreBackendFile},
		domain.NewDefaultConfig(),
		kv,
		&testutil.MockIDGenerator{},
		&testutil.MockClock{NowTime: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), Advance: time.Second},
		&testutil.MockLogger{},
		&testutil.MockConfigManager{},
	)
}

// runRoot executes the full command tree with args and returns stdout.
func runRoot(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(c, "test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
