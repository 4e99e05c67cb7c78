package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Field.Separator != ";" {
		t.Errorf("default separator = %q, want ;", cfg.Field.Separator)
	}
	if cfg.Field.Threshold != 1 {
		t.Errorf("default threshold = %d, want 1", cfg.Field.Threshold)
	}
	if cfg.Separator() != ';' {
		t.Errorf("Separator() = %q, want ';'", cfg.Separator())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[field]\nseparator = \",\"\nthreshold = 3\n\n[dict]\nmin_frequency = 10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Separator() != ',' {
		t.Errorf("separator = %q, want ','", cfg.Separator())
	}
	if cfg.Field.Threshold != 3 {
		t.Errorf("threshold = %d, want 3", cfg.Field.Threshold)
	}
	if cfg.Dict.MinFrequency != 10 {
		t.Errorf("min_frequency = %d, want 10", cfg.Dict.MinFrequency)
	}
	// missing keys keep builtin defaults
	if cfg.Field.MaxLimit != 24 {
		t.Errorf("max_limit = %d, want default 24", cfg.Field.MaxLimit)
	}
}

func TestLoadConfigClampsThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[field]\nthreshold = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Field.Threshold != 1 {
		t.Errorf("threshold = %d, want clamp to 1", cfg.Field.Threshold)
	}
}

func TestSeparatorFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field.Separator = "ab"
	if cfg.Separator() != ';' {
		t.Errorf("multi-byte separator must fall back to ';'")
	}
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Field.Separator != ";" {
		t.Errorf("created config separator = %q", cfg.Field.Separator)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	// loading the file back yields the same defaults
	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig of created file: %v", err)
	}
	if *reloaded != *cfg {
		t.Errorf("reloaded config differs: %+v vs %+v", reloaded, cfg)
	}
}
