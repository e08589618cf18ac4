package domain

import (
	_ "embed"
	"strings"
)

//go:embed config_template.toml
var configTemplateContent string

// Storage backends for [store] backend.
const (
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
)

// Delivery targets for [mail] delivery.
const (
	DeliveryOpen      = "open"
	DeliveryClipboard = "clipboard"
)

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "info"

// Config represents the application configuration.
type Config struct {
	Warnings []string     `toml:"-"`
	Store    StoreConfig  `toml:"store"`
	Log      LogConfig    `toml:"log"`
	Mail     MailConfig   `toml:"mail"`
	Export   ExportConfig `toml:"export"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Backend string `toml:"backend,omitempty"` // "file" (default) or "sqlite"
	Dir     string `toml:"dir,omitempty"`     // Data directory (default: XDG data dir)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// MailConfig holds outbound message settings from the [mail] section.
type MailConfig struct {
	To       string `toml:"to,omitempty"`       // Recipient address
	Delivery string `toml:"delivery,omitempty"` // "open" (default) or "clipboard"
}

// ExportConfig holds backup settings from the [export] section.
type ExportConfig struct {
	Dir  string `toml:"dir,omitempty"`  // Directory backups are written to
	Zstd bool   `toml:"zstd,omitempty"` // Compress backups by default
}

// ConfigInfo describes the config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: StoreBackendFile,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Mail: MailConfig{
			Delivery: DeliveryOpen,
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}

// Merge overlays the non-zero values of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Store.Backend != "" {
		c.Store.Backend = strings.ToLower(other.Store.Backend)
	}
	if other.Store.Dir != "" {
		c.Store.Dir = other.Store.Dir
	}
	if other.Log.Level != "" {
		c.Log.Level = strings.ToLower(other.Log.Level)
	}
	if other.Mail.To != "" {
		c.Mail.To = other.Mail.To
	}
	if other.Mail.Delivery != "" {
		c.Mail.Delivery = strings.ToLower(other.Mail.Delivery)
	}
	if other.Export.Dir != "" {
		c.Export.Dir = other.Export.Dir
	}
	if other.Export.Zstd {
		c.Export.Zstd = true
	}
	c.Warnings = append(c.Warnings, other.Warnings...)
}

// ConfigTemplate returns the commented template written by `diary config init`.
func ConfigTemplate() string {
	return configTemplateContent
}
