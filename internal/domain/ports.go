package domain

import "time"

// KeyValueStore is durable string-keyed storage for the persisted snapshot.
type KeyValueStore interface {
	// Get returns the value for key. ok is false if the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// IDGenerator issues opaque ids unique within the process lifetime.
type IDGenerator interface {
	NewID() string
}

// Logger emits diagnostics.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// MessageComposer hands a composed message to an external mail client.
type MessageComposer interface {
	// Compose delivers subject and body. Delivery is not verified.
	Compose(subject, body string) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the effective configuration (defaults <- global file).
	Load() (*Config, error)
}

// ConfigManager writes configuration files.
type ConfigManager interface {
	// Path returns the config file location.
	Path() string

	// Info reads the config file, reporting Exists=false when it is absent.
	Info() ConfigInfo

	// Init writes a commented template. Returns ErrConfigExists if present.
	Init() error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Timestamp normalizes t to the precision and zone used for stored timestamps.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
