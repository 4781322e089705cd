package cliconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/latexnn/modelpost/pkg/upload"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("modelpost: invalid configuration")

// DefaultDebounce matches the delay the web front end waits before re-posting.
const DefaultDebounce = 500 * time.Millisecond

// Config holds CLI configuration for modelpost.
type Config struct {
	ServiceURL string
	ModelPath  string
	// Depth < 0 omits the depth parameter.
	Depth int

	// HTTPTimeout of zero means no timeout.
	HTTPTimeout time.Duration

	Watch    bool
	Debounce time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ServiceURL: upload.DefaultServiceURL,
		ModelPath:  upload.DefaultModelPath,
		Depth:      -1,
		Debounce:   DefaultDebounce,
		LogLevel:   zerolog.LevelInfoValue,
	}
}

// Validate checks the configuration for errors and normalizes the service URL.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		c.ServiceURL = upload.DefaultServiceURL
	}
	c.ServiceURL = strings.TrimRight(c.ServiceURL, "/")

	u, err := url.Parse(c.ServiceURL)
	if err != nil {
		return fmt.Errorf("%w: service-url: %w", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: service-url must be an absolute http(s) url, got %q", ErrInvalidConfig, c.ServiceURL)
	}

	if c.ModelPath == "" {
		return fmt.Errorf("%w: model path is required", ErrInvalidConfig)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	if c.Watch && c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// configSetter applies values while respecting flag precedence.
// A value is only written when the matching flag was not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt accepts zero; depth=0 is meaningful.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses an environment value into dst.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString treats "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
