package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"debounce", cfg.Editor.Debounce, 150 * time.Millisecond},
		{"paste offset", cfg.Editor.PasteOffset, 20.0},
		{"name template", cfg.Editor.NameTemplate, "{{ .Kind }}{{ with .Label }}: {{ . | trunc 48 }}{{ end }}"},
		{"cache size", cfg.Images.CacheSize, 64},
		{"load timeout", cfg.Images.LoadTimeout, 15 * time.Second},
		{"max bytes", cfg.Images.MaxBytes, int64(32 << 20)},
		{"language", cfg.Holidays.Language, "en"},
		{"start day", cfg.Build.StartDay, 1},
		{"preview scale", cfg.Build.PreviewScale, 1.0},
		{"console level", cfg.Logging.ConsoleLogger.Level, "normal"},
		{"file level", cfg.Logging.FileLogger.Level, "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
	if !strings.HasSuffix(cfg.Reporting.Destination, "plancanvas-report.zip") {
		t.Errorf("report destination = %q", cfg.Reporting.Destination)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
editor:
  debounce: 300ms
  paste_offset: 10
images:
  cache_size: 8
  load_timeout: 2s
holidays:
  country: PL
  language: pl
build:
  start_day: 0
  today: "2025-03-17"
logging:
  console:
    level: debug
reporting:
  destination: /tmp/test-report.zip
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Editor.Debounce != 300*time.Millisecond || cfg.Editor.PasteOffset != 10 {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.Images.CacheSize != 8 || cfg.Images.LoadTimeout != 2*time.Second {
		t.Errorf("images = %+v", cfg.Images)
	}
	// values absent from file come from template
	if cfg.Images.MaxBytes != 32<<20 {
		t.Errorf("MaxBytes = %d, want template default", cfg.Images.MaxBytes)
	}
	if cfg.Holidays.Country != "PL" || cfg.Build.StartDay != 0 {
		t.Errorf("holidays/build = %+v %+v", cfg.Holidays, cfg.Build)
	}
	if got := cfg.Build.TodayDate(); got.Year() != 2025 || got.Month() != time.March || got.Day() != 17 {
		t.Errorf("TodayDate() = %v", got)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\neditor:\n  debounce: 1s\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad start day", "version: 1\nbuild:\n  start_day: 7\n"},
		{"bad cache size", "version: 1\nimages:\n  cache_size: 0\n"},
		{"bad today", "version: 1\nbuild:\n  today: 17.03.2025\n"},
		{"bad duration", "version: 1\neditor:\n  debounce: soon\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: chatty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}
	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
	// name template must survive processing unexpanded
	if !strings.Contains(string(data), "{{ .Kind }}") {
		t.Error("name template was expanded")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("dumped config does not decode: %v", err)
	}
	if back.Editor.Debounce != cfg.Editor.Debounce || back.Images.CacheSize != cfg.Images.CacheSize {
		t.Errorf("dump lost values: %+v", back)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestBuildConfig_TodayDate(t *testing.T) {
	now := time.Now()
	got := (&BuildConfig{}).TodayDate()
	if got.Year() != now.Year() || got.YearDay() != now.YearDay() || got.Hour() != 0 {
		t.Errorf("TodayDate() = %v", got)
	}
}
