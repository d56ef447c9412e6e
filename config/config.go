// SPDX-License-Identifier: MIT
// Package: lvplot/config
//
// config.go — CLI configuration.
//
// Resolution order (later wins):
//  1. Default()
//  2. YAML file (unknown keys rejected)
//  3. LVPLOT_* environment variables
//
// Validate runs last; every failure wraps ErrInvalid.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lvplot/chart"
	"github.com/katalvlaran/lvplot/curve"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "LVPLOT_"

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every knob of the lvplot CLI.
type Config struct {
	OutDir   string `yaml:"out_dir"   env:"OUT_DIR"   validate:"notblank"`
	Format   string `yaml:"format"    env:"FORMAT"`
	Locale   string `yaml:"locale"    env:"LOCALE"    validate:"notblank"`
	Shape    string `yaml:"shape"     env:"SHAPE"`
	Width    int    `yaml:"width"     env:"WIDTH"     validate:"gte=1,lte=10000"`
	Height   int    `yaml:"height"    env:"HEIGHT"    validate:"gte=1,lte=10000"`
	DataFile string `yaml:"data_file" env:"DATA"`      // empty selects the built-in study
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"` // debug, info, warn, error
}

// validate checks the struct tags above; enum fields are parsed by their own accessors.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutDir:   "charts",
		Format:   chart.SVG.String(),
		Locale:   "en",
		Shape:    curve.Exponential.String(),
		Width:    chart.DefaultWidth,
		Height:   chart.DefaultHeight,
		LogLevel: "info",
	}
}

// Load resolves the configuration from path (optional) and the process environment.
func Load(path string) (Config, error) {
	return LoadWith(path, nil)
}

// LoadWith is Load with an explicit environment; a nil map reads os.Environ.
func LoadWith(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse config %s: %w", path, errors.Join(ErrInvalid, err))
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", errors.Join(ErrInvalid, err))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			f := fields[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalid, f.Field(), f.Tag(), f.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.ChartFormat(); err != nil {
		return err
	}
	if _, err := c.CurveShape(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// ChartFormat parses Format.
func (c Config) ChartFormat() (chart.Format, error) {
	f, err := chart.ParseFormat(c.Format)
	if err != nil {
		return f, fmt.Errorf("%w: format: %w", ErrInvalid, err)
	}

	return f, nil
}

// CurveShape parses Shape.
func (c Config) CurveShape() (curve.Shape, error) {
	s, err := curve.ParseShape(c.Shape)
	if err != nil {
		return s, fmt.Errorf("%w: shape: %w", ErrInvalid, err)
	}

	return s, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	return lvl, nil
}

// Theme returns the default chart theme sized to Width×Height.
func (c Config) Theme() chart.Theme {
	th := chart.DefaultTheme()
	th.Width, th.Height = c.Width, c.Height

	return th
}

// Logger returns a text slog.Logger writing to w at the configured level.
// An unparseable level falls back to info.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, _ := c.Level()

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
