// Package config loads the geodes CLI settings.
//
// Sources, later ones winning:
//
//  1. Default()
//  2. an optional YAML file
//  3. a .env file (variables already set in the environment are kept)
//  4. GEODES_* environment variables
//
// The result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the CLI settings.
type Config struct {
	// QualityHorizon is the horizon of the quality-sum scenario.
	QualityHorizon int `yaml:"quality_horizon" validate:"gte=0,lte=64"`

	// ProductHorizon is the horizon of the top-product scenario.
	ProductHorizon int `yaml:"product_horizon" validate:"gte=0,lte=64"`

	// ProductCount is how many leading blueprints the product covers.
	ProductCount int `yaml:"product_count" validate:"gte=1"`

	// CacheSize bounds the planner memo; 0 disables it.
	CacheSize int `yaml:"cache_size" validate:"gte=0"`

	// MetricsFile, when set, receives a Prometheus text dump after a run.
	MetricsFile string `yaml:"metrics_file"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the puzzle settings: 24 minutes for the quality sum,
// 32 minutes over the first 3 blueprints for the product.
func Default() Config {
	return Config{
		QualityHorizon: 24,
		ProductHorizon: 32,
		ProductCount:   3,
		CacheSize:      128,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty), the given .env files and the environment.
// With no envFiles, ".env" is loaded if it exists.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("config: env files: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overrides cfg with non-empty GEODES_* variables.
func applyEnv(cfg *Config) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"GEODES_QUALITY_HORIZON", &cfg.QualityHorizon},
		{"GEODES_PRODUCT_HORIZON", &cfg.ProductHorizon},
		{"GEODES_PRODUCT_COUNT", &cfg.ProductCount},
		{"GEODES_CACHE_SIZE", &cfg.CacheSize},
	}
	for _, v := range ints {
		raw := strings.TrimSpace(os.Getenv(v.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, v.name, raw, err)
		}
		*v.dst = n
	}

	if raw := strings.TrimSpace(os.Getenv("GEODES_METRICS_FILE")); raw != "" {
		cfg.MetricsFile = raw
	}
	if raw := strings.TrimSpace(os.Getenv("GEODES_LOG_LEVEL")); raw != "" {
		cfg.Log.Level = strings.ToLower(raw)
	}
	if raw := strings.TrimSpace(os.Getenv("GEODES_LOG_FORMAT")); raw != "" {
		cfg.Log.Format = strings.ToLower(raw)
	}

	return nil
}

// NewLogger builds a slog.Logger writing to w as configured.
// Unknown levels fall back to info; Validate rejects them beforehand.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
