package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "technova/internal/platform/errors"
)

const (
	DefaultTrack       = "Software Engineering"
	DefaultSimulations = 1000
)

type Config struct {
	TracksFile   string `yaml:"tracks_file"`
	DefaultTrack string `yaml:"default_track"`
	Simulations  int    `yaml:"simulations"`
	Seed         uint64 `yaml:"seed"`
	Log          Log    `yaml:"log"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		DefaultTrack: DefaultTrack,
		Simulations:  DefaultSimulations,
		Log:          Log{Level: "info", Format: "text"},
	}
}

// Load reads an optional YAML file, applies TECHNOVA_* environment overrides and validates the result.
// An empty path skips the file and starts from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, errors.Join(apperrors.ErrInvalidConfig, err))
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DefaultTrack) == "" {
		return fmt.Errorf("default_track is required: %w", apperrors.ErrInvalidConfig)
	}
	if c.Simulations < 1 {
		return fmt.Errorf("simulations must be >= 1, got %d: %w", c.Simulations, apperrors.ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q: %w", c.Log.Level, apperrors.ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q: %w", c.Log.Format, apperrors.ErrInvalidConfig)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("TECHNOVA_TRACKS_FILE"); ok {
		c.TracksFile = v
	}
	if v, ok := os.LookupEnv("TECHNOVA_DEFAULT_TRACK"); ok {
		c.DefaultTrack = v
	}
	if v, ok := os.LookupEnv("TECHNOVA_SIMULATIONS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TECHNOVA_SIMULATIONS: %w", errors.Join(apperrors.ErrInvalidConfig, err))
		}
		c.Simulations = n
	}
	if v, ok := os.LookupEnv("TECHNOVA_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TECHNOVA_SEED: %w", errors.Join(apperrors.ErrInvalidConfig, err))
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv("TECHNOVA_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("TECHNOVA_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	return nil
}
