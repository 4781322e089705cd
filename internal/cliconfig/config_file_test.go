package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	zero := 0
	three := 3

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				ServiceURL:  "http://parser:8080",
				ModelPath:   "/models/resnet.onnx",
				Depth:       &three,
				HTTPTimeout: "30s",
				Watch:       &trueVal,
				Debounce:    "1s",
				LogLevel:    "debug",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				ServiceURL:  "http://parser:8080",
				ModelPath:   "/models/resnet.onnx",
				Depth:       3,
				HTTPTimeout: 30 * time.Second,
				Watch:       true,
				Debounce:    time.Second,
				LogLevel:    "debug",
			},
		},
		{
			name:       "depth zero is applied",
			fileConfig: FileConfig{Depth: &zero},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected: func() Config {
				c := DefaultConfig()
				c.Depth = 0
				return c
			}(),
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				ServiceURL: "http://file:1",
				ModelPath:  "/file/model.onnx",
			},
			changed: map[string]bool{"service-url": true},
			initial: Config{ServiceURL: "http://flag:2"},
			expected: Config{
				ServiceURL: "http://flag:2",
				ModelPath:  "/file/model.onnx",
			},
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{HTTPTimeout: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.TrimSpace(`
service_url = "http://127.0.0.1:9000"
model = "models/l2s.onnx"
depth = 2
http_timeout = "5s"
watch = true
debounce = "250ms"
log_level = "warn"
`)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.ServiceURL != "http://127.0.0.1:9000" {
		t.Errorf("ServiceURL = %v", fc.ServiceURL)
	}
	if fc.ModelPath != "models/l2s.onnx" {
		t.Errorf("ModelPath = %v", fc.ModelPath)
	}
	if fc.Depth == nil || *fc.Depth != 2 {
		t.Errorf("Depth = %v, want 2", fc.Depth)
	}
	if fc.HTTPTimeout != "5s" {
		t.Errorf("HTTPTimeout = %v", fc.HTTPTimeout)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Errorf("Watch = %v, want true", fc.Watch)
	}
	if fc.Debounce != "250ms" {
		t.Errorf("Debounce = %v", fc.Debounce)
	}
	if fc.LogLevel != "warn" {
		t.Errorf("LogLevel = %v", fc.LogLevel)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadFileConfig() on missing file expected error")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("depth = [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig() on malformed toml expected error")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "x")
	if FileExists(p) {
		t.Errorf("FileExists(%q) = true before creation", p)
	}
	if err := os.WriteFile(p, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(p) {
		t.Errorf("FileExists(%q) = false after creation", p)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got, want := DefaultConfigPath(), "/home/tester/.modelpost/config.toml"; got != want {
		t.Errorf("DefaultConfigPath() = %v, want %v", got, want)
	}
}
