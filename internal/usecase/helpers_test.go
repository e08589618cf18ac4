package usecase

import (
	"testing"
	"time"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/infra/persist"
	"github.com/fukuside/aidea-memo/internal/testutil"
)

type testEnv struct {
	store  *diary.Store
	kv     *testutil.MockKeyValueStore
	logger *testutil.MockLogger
	clock  *testutil.MockClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	kv := testutil.NewMockKeyValueStore()
	logger := &testutil.MockLogger{}
	clock := &testutil.MockClock{
		NowTime: time.Date(2025, 1, 2, 3, 4, 5, 678_000_000, time.UTC),
		Advance: time.Second,
	}
	store := diary.Open(persist.New(kv, logger, clock), &testutil.MockIDGenerator{}, clock, logger)
	return &testEnv{store: store, kv: kv, logger: logger, clock: clock}
}
