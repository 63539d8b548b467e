package common

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	AppName           = "hanic"
	ConfigFileName    = "hanic.ini"
	DefaultLayoutName = "2"
	SocketFileName    = "hanic.sock"
	configEnv         = "HANIC_CONFIG"
	socketEnv         = "HANIC_SOCKET"
)

// DefaultConfigPath returns where the user configuration lives when no path is
// given. It does not check that the file exists.
func DefaultConfigPath() string {
	if env := os.Getenv(configEnv); env != "" {
		return env
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, ConfigFileName)
	}
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return filepath.Join(configDir, AppName, ConfigFileName)
	}
	return filepath.Join(os.TempDir(), AppName, ConfigFileName)
}

// ConfigCandidates lists the configuration paths searched in order: an
// explicit path, the working directory, then the user configuration directory.
func ConfigCandidates(explicit string) []string {
	if strings.TrimSpace(explicit) != "" {
		return []string{explicit}
	}
	candidates := []string{}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, ConfigFileName))
	}
	return append(candidates, DefaultConfigPath())
}

// NormalizeName lowercases and trims a user supplied identifier.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultSocketPath returns the unix socket the translation server listens on
// when no path is given.
func DefaultSocketPath() string {
	if env := os.Getenv(socketEnv); env != "" {
		return env
	}
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, SocketFileName)
	}
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return filepath.Join(stateDir, AppName, SocketFileName)
	}
	return filepath.Join(os.TempDir(), SocketFileName)
}

func EnsureSocketDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" || dir == string(filepath.Separator) {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
