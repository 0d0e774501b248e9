// Package config loads the engine's settings: zone paint, grid, constraint
// mode and the brand validation rules. Values come from a YAML file, then
// a local .env file and the process environment override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"designzone/internal/geometry"
	"designzone/internal/validation"
	"designzone/internal/zone"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Constraint modes
const (
	ConstraintBoundingBox = "bbox"
	ConstraintExact       = "exact"
)

// Environment overrides
const (
	EnvLogLevel       = "DESIGNZONE_LOG_LEVEL"
	EnvGridSize       = "DESIGNZONE_GRID_SIZE"
	EnvConstraintMode = "DESIGNZONE_CONSTRAINT_MODE"
	EnvMaxTextLength  = "DESIGNZONE_MAX_TEXT_LENGTH"
	EnvMaxComplexity  = "DESIGNZONE_MAX_COMPLEXITY"
	EnvBlockedWords   = "DESIGNZONE_BLOCKED_WORDS"
)

type Config struct {
	LogLevel       string              `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogDevelopment bool                `yaml:"log_development"`
	GridSize       float64             `yaml:"grid_size" validate:"gt=0"`
	ConstraintMode string              `yaml:"constraint_mode" validate:"oneof=bbox exact"`
	ZoneStyle      ZoneStyle           `yaml:"zone_style"`
	Validation     validation.Settings `yaml:"validation"`
}

// ZoneStyle: outline and label paint. An empty stroke gives each zone its
// own palette color.
type ZoneStyle struct {
	Stroke        string    `yaml:"stroke,omitempty" validate:"omitempty,hexcolor"`
	StrokeWidth   float64   `yaml:"stroke_width" validate:"gt=0"`
	Dash          []float64 `yaml:"dash,omitempty"`
	LabelFontSize float64   `yaml:"label_font_size" validate:"gt=0"`
	LabelFill     string    `yaml:"label_fill" validate:"hexcolor"`
}

func DefaultConfig() *Config {
	style := zone.DefaultStyle()
	return &Config{
		LogLevel:       "info",
		GridSize:       geometry.DefaultGridSize,
		ConstraintMode: ConstraintBoundingBox,
		ZoneStyle: ZoneStyle{
			StrokeWidth:   style.StrokeWidth,
			Dash:          style.Dash,
			LabelFontSize: style.LabelFontSize,
			LabelFill:     style.LabelFill,
		},
	}
}

// Load: defaults, then the YAML file at path (skipped if empty or missing),
// then .env and environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// silent if missing, the variables may come from the host
	_ = godotenv.Load(".env")

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvConstraintMode); v != "" {
		c.ConstraintMode = strings.ToLower(v)
	}

	if v := os.Getenv(EnvGridSize); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid number %q", EnvGridSize, v)
		}
		c.GridSize = f
	}
	if v := os.Getenv(EnvMaxTextLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", EnvMaxTextLength, v)
		}
		c.Validation.MaxTextLength = validation.Int(n)
	}
	if v := os.Getenv(EnvMaxComplexity); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid number %q", EnvMaxComplexity, v)
		}
		c.Validation.MaxComplexity = validation.Float(f)
	}

	if v := os.Getenv(EnvBlockedWords); v != "" {
		var words []string
		for _, w := range strings.Split(v, ",") {
			if w = strings.TrimSpace(w); w != "" {
				words = append(words, w)
			}
		}
		c.Validation.BlockedWords = words
	}
	return nil
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate: checks ranges and enums, then the validation rules themselves
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return fmt.Errorf("invalid config: %s", formatFieldError(validationErrors[0]))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return c.Validation.Validate()
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("'%s' must be greater than %s", fe.Namespace(), fe.Param())
	case "min":
		return fmt.Sprintf("'%s' must be at least %s", fe.Namespace(), fe.Param())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got %v", fe.Namespace(), fe.Param(), fe.Value())
	case "hexcolor":
		return fmt.Sprintf("'%s' is not a hex color: %v", fe.Namespace(), fe.Value())
	default:
		return fmt.Sprintf("'%s' is invalid", fe.Namespace())
	}
}

// ZoneOptions: Manager options for this configuration
func (c *Config) ZoneOptions(logger *zap.Logger) []zone.Option {
	opts := []zone.Option{
		zone.WithLogger(logger),
		zone.WithStyle(zone.Style{
			Stroke:        c.ZoneStyle.Stroke,
			StrokeWidth:   c.ZoneStyle.StrokeWidth,
			Dash:          c.ZoneStyle.Dash,
			LabelFontSize: c.ZoneStyle.LabelFontSize,
			LabelFill:     c.ZoneStyle.LabelFill,
		}),
	}
	if c.ConstraintMode == ConstraintExact {
		opts = append(opts, zone.WithExactConstraints())
	}
	return opts
}
