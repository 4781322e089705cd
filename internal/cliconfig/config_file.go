package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly types.
// Pointers distinguish "unset" from zero values.
type FileConfig struct {
	ServiceURL  string `toml:"service_url"`
	ModelPath   string `toml:"model"`
	Depth       *int   `toml:"depth"`
	HTTPTimeout string `toml:"http_timeout"`
	Watch       *bool  `toml:"watch"`
	Debounce    string `toml:"debounce"`
	LogLevel    string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.modelpost/config.toml, or "" when the home
// directory cannot be resolved.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".modelpost", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("service-url", fc.ServiceURL, &cfg.ServiceURL)
	s.setString("model", fc.ModelPath, &cfg.ModelPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setInt("depth", fc.Depth, &cfg.Depth)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}
	return nil
}

// FileExists reports whether p can be stat'ed.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
