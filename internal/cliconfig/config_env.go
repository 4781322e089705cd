package cliconfig

import "os"

// ApplyEnvConfig applies MODELPOST_* environment variables, skipping flags
// in changed. It fails on values that do not parse.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("service-url", os.Getenv("MODELPOST_SERVICE_URL"), &cfg.ServiceURL)
	s.setString("model", os.Getenv("MODELPOST_MODEL"), &cfg.ModelPath)
	s.setString("log-level", os.Getenv("MODELPOST_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("depth", os.Getenv("MODELPOST_DEPTH"), &cfg.Depth); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("MODELPOST_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("MODELPOST_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("MODELPOST_WATCH"), &cfg.Watch)

	return nil
}
