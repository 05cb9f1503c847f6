package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/arraygen"
	"github.com/san-kum/sortviz/internal/playback"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSpeed     = playback.DefaultSpeed
	DefaultLanguage  = "en"
	DefaultTheme     = "cyberpunk"
	DefaultDataDir   = ".sortviz"
	EnvPrefix        = "SORTVIZ_"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm string        `yaml:"algorithm" toml:"algorithm" env:"ALGORITHM"`
	Speed     time.Duration `yaml:"speed" toml:"speed" env:"SPEED"`
	Size      int           `yaml:"size" toml:"size" env:"SIZE"`
	Seed      int64         `yaml:"seed" toml:"seed" env:"SEED"`
	Shape     string        `yaml:"shape" toml:"shape" env:"SHAPE"`
	Language  string        `yaml:"language" toml:"language" env:"LANGUAGE"`
	Theme     string        `yaml:"theme" toml:"theme" env:"THEME"`
	DataDir   string        `yaml:"data_dir" toml:"data_dir" env:"DATA_DIR"`
	Logging   Logging       `yaml:"logging" toml:"logging" envPrefix:"LOG_"`
}

type Logging struct {
	Level  string `yaml:"level" toml:"level" env:"LEVEL"`
	Format string `yaml:"format" toml:"format" env:"FORMAT"` // "json" or "console"
	Output string `yaml:"output" toml:"output" env:"OUTPUT"` // file path, empty for stderr
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Speed:     DefaultSpeed,
		Shape:     string(arraygen.ShapeRandom),
		Language:  DefaultLanguage,
		Theme:     DefaultTheme,
		DataDir:   DefaultDataDir,
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, then applies SORTVIZ_* environment
// overrides. An empty path skips the file. Files ending in .toml are decoded
// as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if isTOML(path) {
			err = toml.Unmarshal(data, cfg)
		} else {
			err = yaml.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any SORTVIZ_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Speed < playback.MinSpeed || c.Speed > playback.MaxSpeed {
		return fmt.Errorf("%w: speed %s outside [%s, %s]", ErrInvalidConfig, c.Speed, playback.MinSpeed, playback.MaxSpeed)
	}
	if c.Size != 0 && (c.Size < 0 || c.Size > 64) {
		return fmt.Errorf("%w: size %d outside [0, 64]", ErrInvalidConfig, c.Size)
	}
	if _, err := arraygen.ParseShape(c.Shape); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Algorithm == "" {
		return fmt.Errorf("%w: algorithm is empty", ErrInvalidConfig)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
