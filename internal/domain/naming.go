package domain

import "path/filepath"

// AppDirName is the directory name used under the XDG config and data homes.
const AppDirName = "idea-diary"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// GlobalConfigDir returns the config directory under the given config home.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// DefaultDataDir returns the data directory under the given data home.
func DefaultDataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// LogPath returns the path of the diagnostics log.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "diary.log")
}

// FileStoreDir returns the directory used by the file key-value backend.
func FileStoreDir(dataDir string) string {
	return filepath.Join(dataDir, "store")
}

// SQLiteStorePath returns the database path used by the sqlite backend.
func SQLiteStorePath(dataDir string) string {
	return filepath.Join(dataDir, "diary.db")
}
