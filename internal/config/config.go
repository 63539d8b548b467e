package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/gg582/hanic/internal/common"
	"github.com/gg582/hanic/internal/key"
	"github.com/gg582/hanic/internal/layout"
	"github.com/gg582/hanic/internal/logging"
	"github.com/gg582/hanic/internal/types"
)

const defaultToggleKeys = "hangul, alt_r, ctrl+space"

type Config struct {
	LayoutName  string
	LayoutFile  string
	Layout      *layout.Layout
	DefaultMode types.InputMode
	ToggleKeys  []key.Key
	Log         logging.Config
	// Path is the file the configuration was read from, empty for defaults.
	Path string
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) ConfigError {
	return ConfigError{msg: fmt.Sprintf(format, args...)}
}

func Default() *Config {
	lay, err := layout.Load(common.DefaultLayoutName)
	if err != nil {
		panic(err)
	}
	toggles, err := key.ParseList(defaultToggleKeys)
	if err != nil {
		panic(err)
	}
	return &Config{
		LayoutName:  lay.Name(),
		Layout:      lay,
		DefaultMode: types.ModeHangul,
		ToggleKeys:  toggles,
		Log:         logging.DefaultConfig(),
	}
}

// Load reads an ini file. Relative layout_file paths are resolved against the
// directory of the file.
func Load(path string) (*Config, error) {
	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return nil, configErrorf("failed to read config %s: %v", path, err)
	}
	cfg, err := fromFile(file, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, configErrorf("failed to parse config: %v", err)
	}
	return fromFile(file, "")
}

func fromFile(file *ini.File, baseDir string) (*Config, error) {
	cfg := Default()

	engine := file.Section("engine")
	cfg.LayoutName = engine.Key("layout").MustString(cfg.LayoutName)
	cfg.LayoutFile = strings.TrimSpace(engine.Key("layout_file").String())
	if err := cfg.loadLayout(baseDir); err != nil {
		return nil, err
	}

	if engine.HasKey("default_mode") {
		mode, err := types.ParseMode(engine.Key("default_mode").String())
		if err != nil {
			return nil, ConfigError{msg: err.Error()}
		}
		cfg.DefaultMode = mode
	}

	toggle := file.Section("toggle")
	if toggle.HasKey("keys") {
		keys, err := key.ParseList(toggle.Key("keys").String())
		if err != nil {
			return nil, configErrorf("invalid toggle keys: %v", err)
		}
		if len(keys) == 0 {
			return nil, configErrorf("no toggle keys defined")
		}
		cfg.ToggleKeys = keys
	}

	log := file.Section("log")
	if log.HasKey("level") {
		level, err := logging.ParseLevel(log.Key("level").String())
		if err != nil {
			return nil, ConfigError{msg: err.Error()}
		}
		cfg.Log.Level = level
	}
	if log.HasKey("format") {
		format, err := logging.ParseFormat(log.Key("format").String())
		if err != nil {
			return nil, ConfigError{msg: err.Error()}
		}
		cfg.Log.Format = format
	}
	cfg.Log.Output = log.Key("output").MustString(cfg.Log.Output)
	return cfg, nil
}

func (c *Config) loadLayout(baseDir string) error {
	if c.LayoutFile != "" {
		path := c.LayoutFile
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		lay, err := layout.LoadCustomFile(path)
		if err != nil {
			return ConfigError{msg: err.Error()}
		}
		c.Layout = lay
		c.LayoutName = lay.Name()
		return nil
	}
	lay, err := layout.Load(c.LayoutName)
	if err != nil {
		return configErrorf("%v (available: %s)", err, strings.Join(layout.AvailableLayouts(), ", "))
	}
	c.Layout = lay
	c.LayoutName = lay.Name()
	return nil
}

// Resolve loads the first configuration file found among the candidates. An
// explicit path must exist; without one, missing files fall back to defaults.
func Resolve(cliPath string) (*Config, error) {
	for _, candidate := range common.ConfigCandidates(cliPath) {
		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && cliPath == "" {
				continue
			}
			return nil, configErrorf("config: %v", err)
		}
		if info.IsDir() {
			return nil, configErrorf("config: %s is a directory", candidate)
		}
		return Load(candidate)
	}
	return Default(), nil
}

// IsToggle reports whether k is one of the configured toggle keys.
func (c *Config) IsToggle(k key.Key) bool {
	for _, binding := range c.ToggleKeys {
		if k.Matches(binding) {
			return true
		}
	}
	return false
}

// WithLayout returns a copy of the configuration using another layout.
func (c *Config) WithLayout(name string) (*Config, error) {
	out := *c
	out.LayoutName = name
	out.LayoutFile = ""
	if err := out.loadLayout(""); err != nil {
		return nil, err
	}
	return &out, nil
}
