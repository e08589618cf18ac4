// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"time"

	"github.com/fukuside/aidea-memo/internal/domain"
)

// MockClock is a test double for domain.Clock.
// Advance, when non-zero, moves the clock forward after every call.
type MockClock struct {
	NowTime time.Time
	Advance time.Duration
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	now := m.NowTime
	m.NowTime = m.NowTime.Add(m.Advance)
	return now
}

// MockIDGenerator is a test double for domain.IDGenerator issuing "id-1", "id-2", ...
type MockIDGenerator struct {
	N int
}

// NewID returns the next sequential id.
func (m *MockIDGenerator) NewID() string {
	m.N++
	return fmt.Sprintf("id-%d", m.N)
}

// MockKeyValueStore is an in-memory test double for domain.KeyValueStore.
// Fields are ordered to minimize memory padding.
type MockKeyValueStore struct {
	Data       map[string]string
	SetErr     error // Returned by every Set when non-nil
	GetErr     error // Returned by every Get when non-nil
	RemoveErr  error // Returned by every Remove when non-nil
	SetCalls   int
	RemoveKeys []string
}

// NewMockKeyValueStore creates a new MockKeyValueStore with an initialized map.
func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{Data: make(map[string]string)}
}

// Get returns the stored value.
func (m *MockKeyValueStore) Get(key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

// Set stores a value.
func (m *MockKeyValueStore) Set(key, value string) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = value
	return nil
}

// Remove deletes a value.
func (m *MockKeyValueStore) Remove(key string) error {
	m.RemoveKeys = append(m.RemoveKeys, key)
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.Data, key)
	return nil
}

// LogRecord is one entry captured by MockLogger.
type LogRecord struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records every call.
type MockLogger struct {
	Records []LogRecord
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

func (m *MockLogger) record(level, category, msg string) {
	m.Records = append(m.Records, LogRecord{Level: level, Category: category, Msg: msg})
}

// Count returns the number of records at the given level.
func (m *MockLogger) Count(level string) int {
	n := 0
	for _, r := range m.Records {
		if r.Level == level {
			n++
		}
	}
	return n
}

// ComposedMessage is one message captured by MockComposer.
type ComposedMessage struct {
	Subject string
	Body    string
}

// MockComposer is a test double for domain.MessageComposer.
type MockComposer struct {
	Err      error
	Messages []ComposedMessage
}

// Compose records the message.
func (m *MockComposer) Compose(subject, body string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Messages = append(m.Messages, ComposedMessage{Subject: subject, Body: body})
	return nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InfoResult domain.ConfigInfo
	InitErr    error
	InitCalled bool
}

// Path returns the configured info path.
func (m *MockConfigManager) Path() string {
	return m.InfoResult.Path
}

// Info returns the configured info.
func (m *MockConfigManager) Info() domain.ConfigInfo {
	return m.InfoResult
}

// Init records the call and returns InitErr.
func (m *MockConfigManager) Init() error {
	m.InitCalled = true
	return m.InitErr
}

// Ensure mocks implement their interfaces.
var (
	_ domain.Clock           = (*MockClock)(nil)
	_ domain.IDGenerator     = (*MockIDGenerator)(nil)
	_ domain.KeyValueStore   = (*MockKeyValueStore)(nil)
	_ domain.Logger          = (*MockLogger)(nil)
	_ domain.MessageComposer = (*MockComposer)(nil)
	_ domain.ConfigManager   = (*MockConfigManager)(nil)
)
