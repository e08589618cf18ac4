// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	globalConfDir string // Path to config directory (e.g., ~/.config/idea-diary)
}

// NewLoader creates a new Loader reading from the XDG config directory.
func NewLoader() *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// DefaultDataDir returns $XDG_DATA_HOME/idea-diary, falling back to ~/.local/share.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DefaultDataDir(dataHome)
}

// Load returns the configuration file merged over the defaults.
// A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.globalConfDir == "" {
		return base, nil
	}

	path := filepath.Join(l.globalConfDir, domain.ConfigFileName)
	cfg, err := loadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	base.Merge(cfg)
	return base, nil
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "backend":
					res.Store.Backend = strings.ToLower(stringField("store", k, v, &warnings))
				case "dir":
					res.Store.Dir = stringField("store", k, v, &warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.Log.Level = strings.ToLower(stringField("log", k, v, &warnings))
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "mail":
			for k, v := range m {
				switch k {
				case "to":
					res.Mail.To = stringField("mail", k, v, &warnings)
				case "delivery":
					res.Mail.Delivery = strings.ToLower(stringField("mail", k, v, &warnings))
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [mail]: %s", k))
				}
			}
		case "export":
			for k, v := range m {
				switch k {
				case "dir":
					res.Export.Dir = stringField("export", k, v, &warnings)
				case "zstd":
					res.Export.Zstd = boolField("export", k, v, &warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [export]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	warnings = append(warnings, validate(res)...)
	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// stringField returns v as a string. Any other type is reported and reads as "".
func stringField(section, key string, v any, warnings *[]string) string {
	s, ok := v.(string)
	if !ok {
		*warnings = append(*warnings, typeWarning(section, key, "string", v))
	}
	return s
}

// boolField returns v as a bool. Any other type is reported and reads as false.
func boolField(section, key string, v any, warnings *[]string) bool {
	b, ok := v.(bool)
	if !ok {
		*warnings = append(*warnings, typeWarning(section, key, "boolean", v))
	}
	return b
}

func typeWarning(section, key, want string, v any) string {
	return fmt.Sprintf("invalid type for [%s] %s: expected %s, got %T", section, key, want, v)
}

// validate drops values outside their closed sets and reports them.
func validate(cfg *domain.Config) []string {
	var warnings []string
	switch cfg.Store.Backend {
	case "", domain.StoreBackendFile, domain.StoreBackendSQLite:
	default:
		warnings = append(warnings, fmt.Sprintf("invalid [store] backend: %s", cfg.Store.Backend))
		cfg.Store.Backend = ""
	}
	switch cfg.Mail.Delivery {
	case "", domain.DeliveryOpen, domain.DeliveryClipboard:
	default:
		warnings = append(warnings, fmt.Sprintf("invalid [mail] delivery: %s", cfg.Mail.Delivery))
		cfg.Mail.Delivery = ""
	}
	return warnings
}
