package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.Speed != 500*time.Millisecond {
		t.Errorf("expected speed 500ms, got %s", cfg.Speed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	data := "algorithm: insertion\nspeed: 250ms\nsize: 7\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Algorithm != "insertion" || cfg.Speed != 250*time.Millisecond || cfg.Size != 7 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("unset fields should keep defaults, theme = %s", cfg.Theme)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.toml")
	data := "algorithm = \"selection\"\nspeed = \"100ms\"\nlanguage = \"ru\"\n\n[logging]\nformat = \"json\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Algorithm != "selection" || cfg.Speed != 100*time.Millisecond || cfg.Language != "ru" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json format, got %s", cfg.Logging.Format)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SORTVIZ_ALGORITHM", "selection")
	t.Setenv("SORTVIZ_SPEED", "750ms")
	t.Setenv("SORTVIZ_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Algorithm != "selection" {
		t.Errorf("algorithm = %s", cfg.Algorithm)
	}
	if cfg.Speed != 750*time.Millisecond {
		t.Errorf("speed = %s", cfg.Speed)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %s", cfg.Logging.Level)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"cfg.yaml", "cfg.toml"} {
		path := filepath.Join(t.TempDir(), name)
		cfg := DefaultConfig()
		cfg.Algorithm = "insertion"
		cfg.Speed = 300 * time.Millisecond

		if err := Save(path, cfg); err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if loaded.Algorithm != "insertion" || loaded.Speed != 300*time.Millisecond {
			t.Errorf("%s: round trip = %+v", name, loaded)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too fast", func(c *Config) { c.Speed = 10 * time.Millisecond }},
		{"too slow", func(c *Config) { c.Speed = 5 * time.Second }},
		{"negative size", func(c *Config) { c.Size = -1 }},
		{"huge size", func(c *Config) { c.Size = 1000 }},
		{"bad shape", func(c *Config) { c.Shape = "zigzag" }},
		{"no algorithm", func(c *Config) { c.Algorithm = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("worst-case")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	cfg := DefaultConfig()
	p.Apply(cfg)
	if cfg.Algorithm != "bubble" || cfg.Shape != "reversed" || cfg.Size != 8 {
		t.Errorf("applied preset = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset config invalid: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}
